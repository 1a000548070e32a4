package freecam

import "github.com/go-gl/mathgl/mgl32"

// Camera is the surface a native camera exposes to the freecam.
type Camera interface {
	ViewTransform() mgl32.Mat4
	SetViewTransform(mgl32.Mat4)
	Roll() float32
	SetRoll(float32)
	FOV() float32
	SetFOV(float32)
}

// NativeAngles is implemented by cameras that keep pitch and yaw themselves.
// Values are in the freecam convention (see EulerToQuat).
type NativeAngles interface {
	Pitch() float32
	Yaw() float32
}

// Frequency is a playback speed multiplier owned by the game.
type Frequency interface {
	Frequency() float32
	SetFrequency(float32)
}

// Host resolves the collaborators available this frame. Every lookup may
// fail; a failed lookup means there is nothing to hand off to.
type Host interface {
	SceneCamera() (Camera, bool)
	FieldCamera() (Camera, bool)
	SceneFrequency() (Frequency, bool)
	BattleFrequency() (Frequency, bool)
}

// NativeLock is told when the freecam is switched on or off so the game can
// stop its own camera input.
type NativeLock interface {
	HandleFreecam(active bool)
}

func sceneCamera(h Host) (Camera, bool) {
	if h == nil {
		return nil, false
	}
	cam, ok := h.SceneCamera()
	return cam, ok && cam != nil
}

func fieldCamera(h Host) (Camera, bool) {
	if h == nil {
		return nil, false
	}
	cam, ok := h.FieldCamera()
	return cam, ok && cam != nil
}

// frequency prefers the battle clock and falls back to the scene clock.
func frequency(h Host) (Frequency, bool) {
	if h == nil {
		return nil, false
	}
	if f, ok := h.BattleFrequency(); ok && f != nil {
		return f, true
	}
	f, ok := h.SceneFrequency()
	return f, ok && f != nil
}
