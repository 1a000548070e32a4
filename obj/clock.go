package obj

// Clock is a playback-speed multiplier. The scene and the battle each run on
// their own clock so the freecam can slow one without the other.
type Clock struct {
	speed float32
}

func NewClock() *Clock {
	return &Clock{speed: 1}
}

func (c *Clock) Frequency() float32 { return c.speed }

func (c *Clock) SetFrequency(v float32) {
	if v < 0 {
		v = 0
	}
	c.speed = v
}

// Scale converts a wall-clock delta into clock time.
func (c *Clock) Scale(dt float32) float32 {
	if c == nil {
		return dt
	}
	return dt * c.speed
}
