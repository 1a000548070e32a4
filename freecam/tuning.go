package freecam

// SpeedModifier scales rotation and translation while a trigger is held.
type SpeedModifier struct {
	Pan  float32
	Move float32
}

// Tuning holds every constant the freecam uses for input, paths and speed.
type Tuning struct {
	// PanDivisor and MoveDivisor turn raw stick deflection into radians and
	// world units per frame.
	PanDivisor  float32
	MoveDivisor float32

	Precise SpeedModifier
	Careful SpeedModifier

	RollStep     float32
	VerticalStep float32
	LookDistance float32

	PathDuration float32
	PathStep     float32

	FrequencyStep float32

	FOVMin float32
	FOVMax float32
}

func DefaultTuning() Tuning {
	return Tuning{
		PanDivisor:    8000,
		MoveDivisor:   10,
		Precise:       SpeedModifier{Pan: 2, Move: 5},
		Careful:       SpeedModifier{Pan: 0.5, Move: 0.2},
		RollStep:      0.1,
		VerticalStep:  5,
		LookDistance:  100,
		PathDuration:  3,
		PathStep:      0.25,
		FrequencyStep: 0.1,
		FOVMin:        5,
		FOVMax:        175,
	}
}

// withDefaults fills zero fields from DefaultTuning so a partial config file
// cannot produce a zero divisor.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	fill := func(v *float32, def float32) {
		if *v <= 0 {
			*v = def
		}
	}
	fill(&t.PanDivisor, d.PanDivisor)
	fill(&t.MoveDivisor, d.MoveDivisor)
	fill(&t.Precise.Pan, d.Precise.Pan)
	fill(&t.Precise.Move, d.Precise.Move)
	fill(&t.Careful.Pan, d.Careful.Pan)
	fill(&t.Careful.Move, d.Careful.Move)
	fill(&t.RollStep, d.RollStep)
	fill(&t.VerticalStep, d.VerticalStep)
	fill(&t.LookDistance, d.LookDistance)
	fill(&t.PathDuration, d.PathDuration)
	fill(&t.PathStep, d.PathStep)
	fill(&t.FrequencyStep, d.FrequencyStep)
	fill(&t.FOVMin, d.FOVMin)
	fill(&t.FOVMax, d.FOVMax)
	if t.FOVMax < t.FOVMin {
		t.FOVMin, t.FOVMax = d.FOVMin, d.FOVMax
	}
	return t
}
