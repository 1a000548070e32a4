package freecam

// StartPlayback rewinds the path and starts playing it. It refuses when the
// freecam is off or there are no keyframes.
func (f *Freecam) StartPlayback() bool {
	if f == nil {
		return false
	}
	if len(f.keyframes) == 0 {
		f.verbosef("no nodes have been set for camera path")
		return false
	}
	if !f.Active() {
		f.verbosef("freecam is not active, path not started")
		return false
	}
	f.verbosef("start playing (%v sec)", f.pathDuration)
	f.pathElapsed = 0
	f.pathPercent = 0
	CorrectSigns(f.keyframes)
	f.mode = ActivePlayingPath
	return true
}

// TogglePlayback pauses a playing path, or resumes it. A finished path is
// rewound before resuming.
func (f *Freecam) TogglePlayback() bool {
	if f == nil || len(f.keyframes) == 0 {
		return false
	}
	if f.Playing() {
		f.pausePlayback()
		return false
	}
	if !f.Active() {
		f.verbosef("freecam is not active, path not started")
		return false
	}
	if f.pathElapsed >= f.pathDuration {
		f.pathElapsed = 0
	}
	CorrectSigns(f.keyframes)
	f.mode = ActivePlayingPath
	return true
}

// StopPlayback stops, rewinds and shows the first sample of the path.
func (f *Freecam) StopPlayback(h Host) {
	if f == nil {
		return
	}
	f.pausePlayback()
	f.pathElapsed = 0
	f.pathPercent = 0
	if len(f.keyframes) > 0 {
		f.advancePath(0, h)
	}
}

// Scrub pauses playback and jumps to seconds along the path.
func (f *Freecam) Scrub(seconds float32, h Host) {
	if f == nil {
		return
	}
	f.pausePlayback()
	if seconds < 0 {
		seconds = 0
	}
	if seconds > f.pathDuration {
		seconds = f.pathDuration
	}
	f.pathElapsed = seconds
	if len(f.keyframes) > 0 {
		f.advancePath(0, h)
	}
}

func (f *Freecam) pausePlayback() {
	if f.mode == ActivePlayingPath {
		f.mode = ActiveFree
	}
}

// advancePath moves the playhead by delta, samples the curve and pushes the
// sample into the field camera.
func (f *Freecam) advancePath(delta float32, h Host) {
	f.pathElapsed += delta
	if f.pathElapsed > f.pathDuration {
		f.pathElapsed = f.pathDuration
	}
	f.pathPercent = f.pathElapsed / f.pathDuration

	switch len(f.keyframes) {
	case 0:
		f.verbosef("no nodes have been set for camera path")
		f.pausePlayback()
	case 1:
		// a single point has nowhere to go
		f.pausePlayback()
	}

	if p, ok := Interpolate(f.keyframes, f.pathPercent); ok {
		f.lastInterp = p
		view := f.applyPose(p)
		f.view = view
		if cam, ok := fieldCamera(h); ok {
			cam.SetViewTransform(view)
		} else {
			f.verbosef("no field camera for path sample")
		}
	}

	if f.pathElapsed >= f.pathDuration {
		f.pausePlayback()
	}
}
