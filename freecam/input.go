package freecam

import "github.com/go-gl/mathgl/mgl32"

// Buttons is the held-button bitset used for speed modifiers, vertical
// strafe and roll.
type Buttons uint16

const (
	ButtonLeftTrigger Buttons = 1 << iota
	ButtonRightTrigger
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDpadUp
	ButtonDpadDown
)

// Control is a logical hotkey.
type Control int

const (
	ControlToggleFreecam Control = iota
	ControlLockMovement
	ControlAddKeyframe
	ControlPathDurationDown
	ControlPathDurationUp
	ControlRemoveLastKeyframe
	ControlClearKeyframes
	ControlStartPlayback
	ControlSceneSpeedDown
	ControlSceneSpeedUp
	controlCount
)

var controlNames = [controlCount]string{
	ControlToggleFreecam:      "toggle_freecam",
	ControlLockMovement:       "lock_movement",
	ControlAddKeyframe:        "add_keyframe",
	ControlPathDurationDown:   "path_duration_down",
	ControlPathDurationUp:     "path_duration_up",
	ControlRemoveLastKeyframe: "remove_last_keyframe",
	ControlClearKeyframes:     "clear_keyframes",
	ControlStartPlayback:      "start_playback",
	ControlSceneSpeedDown:     "scene_speed_down",
	ControlSceneSpeedUp:       "scene_speed_up",
}

func (c Control) String() string {
	if c < 0 || c >= controlCount {
		return "unknown"
	}
	return controlNames[c]
}

// ParseControl maps a config name such as "add_keyframe" to its Control.
func ParseControl(name string) (Control, bool) {
	for c, n := range controlNames {
		if n == name {
			return Control(c), true
		}
	}
	return 0, false
}

// Controls lists every logical control in order.
func Controls() []Control {
	out := make([]Control, 0, controlCount)
	for c := Control(0); c < controlCount; c++ {
		out = append(out, c)
	}
	return out
}

// Input is one frame of controller state. Stick values use the raw pad
// range, roughly -128..127 per axis.
type Input struct {
	LeftStick  mgl32.Vec2
	RightStick mgl32.Vec2
	Held       Buttons

	pressed uint32
}

// Press marks c as pressed this frame.
func (in *Input) Press(c Control) {
	if c < 0 || c >= controlCount {
		return
	}
	in.pressed |= 1 << uint(c)
}

func (in Input) JustPressed(c Control) bool {
	if c < 0 || c >= controlCount {
		return false
	}
	return in.pressed&(1<<uint(c)) != 0
}

func (in Input) Holding(b Buttons) bool {
	return in.Held&b != 0
}
