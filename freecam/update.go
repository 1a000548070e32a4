package freecam

import "github.com/milk9111/freecam/common"

// Update is the per-frame driver. It handles hotkeys, runs Tick, and while
// active writes a view built from in into the scene camera.
func (f *Freecam) Update(delta float32, in Input, h Host) {
	if f == nil {
		return
	}

	if in.JustPressed(ControlToggleFreecam) {
		f.Toggle()
	}
	if f.Active() {
		switch {
		case in.JustPressed(ControlSceneSpeedDown):
			f.ChangeSceneSpeed(true, h)
		case in.JustPressed(ControlSceneSpeedUp):
			f.ChangeSceneSpeed(false, h)
		}
		if in.JustPressed(ControlLockMovement) {
			f.ToggleMovementLock()
		}
		f.handlePathControls(in)
	}

	f.Tick(delta, h)

	if !f.Active() {
		return
	}
	f.view = f.UpdateView(in)
	if cam, ok := sceneCamera(h); ok {
		cam.SetViewTransform(f.view)
		cam.SetRoll(f.roll)
	} else {
		f.verbosef("no scene camera this frame")
	}
}

func (f *Freecam) handlePathControls(in Input) {
	if in.JustPressed(ControlAddKeyframe) {
		f.AddKeyframe()
	}
	switch {
	case in.JustPressed(ControlPathDurationDown):
		f.ChangePathDuration(true)
	case in.JustPressed(ControlPathDurationUp):
		f.ChangePathDuration(false)
	}
	if in.JustPressed(ControlRemoveLastKeyframe) {
		f.RemoveLastKeyframe()
	}
	if in.JustPressed(ControlClearKeyframes) {
		f.ClearKeyframes()
	}
	if in.JustPressed(ControlStartPlayback) {
		f.StartPlayback()
	}
}

// Tick performs the one-shot baseline sync after activation, then advances
// a playing path by delta seconds.
func (f *Freecam) Tick(delta float32, h Host) {
	if f == nil {
		return
	}
	if f.awaitingInitialSync {
		if cam, ok := sceneCamera(h); ok {
			f.captureBaseline(cam, true)
			f.view = f.lookAtMatrix()
		} else {
			f.verbosef("no scene camera to sync from")
		}
		f.awaitingInitialSync = false
	}
	if f.Playing() {
		f.advancePath(delta, h)
	}
}

// ChangeSceneSpeed nudges the battle clock, or the scene clock outside
// battle, by one frequency step. The result never drops below zero.
func (f *Freecam) ChangeSceneSpeed(slower bool, h Host) (float32, bool) {
	if f == nil {
		return 0, false
	}
	freq, ok := frequency(h)
	if !ok {
		f.verbosef("no frequency to change")
		return 0, false
	}
	step := f.tuning.FrequencyStep
	if slower {
		step = -step
	}
	v := max(freq.Frequency()+step, 0)
	freq.SetFrequency(v)
	f.verbosef("new game speed: %.02fx", v)
	return v, true
}

// SceneSpeed reads the frequency ChangeSceneSpeed would edit.
func (f *Freecam) SceneSpeed(h Host) (float32, bool) {
	freq, ok := frequency(h)
	if !ok {
		return 0, false
	}
	return freq.Frequency(), true
}

// SetSceneSpeed writes v, floored at zero.
func (f *Freecam) SetSceneSpeed(v float32, h Host) bool {
	freq, ok := frequency(h)
	if !ok {
		return false
	}
	freq.SetFrequency(max(v, 0))
	return true
}

// SetFOV clamps deg to the configured range and applies it to cam.
func (f *Freecam) SetFOV(cam Camera, deg float32) float32 {
	if cam == nil {
		return 0
	}
	t := f.Tuning()
	deg = common.Clamp(deg, t.FOVMin, t.FOVMax)
	cam.SetFOV(deg)
	return deg
}
