package freecam

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var ErrIndexOutOfRange = errors.New("freecam: keyframe index out of range")

func (f *Freecam) checkIndex(i int) error {
	if i < 0 || i >= len(f.keyframes) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(f.keyframes))
	}
	return nil
}

func (f *Freecam) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keyframes)
}

// Keyframes returns a copy of the recorded sequence.
func (f *Freecam) Keyframes() []Pose {
	if f == nil {
		return nil
	}
	out := make([]Pose, len(f.keyframes))
	copy(out, f.keyframes)
	return out
}

// Keyframe returns the pose at i.
func (f *Freecam) Keyframe(i int) (Pose, error) {
	if err := f.checkIndex(i); err != nil {
		return Pose{}, err
	}
	return f.keyframes[i], nil
}

// SetKeyframes replaces the whole sequence, e.g. after loading a path file.
// Playback stops and rewinds.
func (f *Freecam) SetKeyframes(keys []Pose) {
	if f == nil {
		return
	}
	f.keyframes = append(f.keyframes[:0:0], keys...)
	f.preview = -1
	f.pausePlayback()
	f.pathElapsed = 0
	f.pathPercent = 0
}

// AddKeyframe records the live pose at the end of the sequence.
func (f *Freecam) AddKeyframe() Pose {
	p := f.CurrentPose()
	f.AppendKeyframe(p)
	return p
}

func (f *Freecam) AppendKeyframe(p Pose) {
	if f == nil {
		return
	}
	f.keyframes = append(f.keyframes, p)
	f.verbosef("add node #%d %v <pan: %v, pitch: %v, roll: %v>",
		len(f.keyframes), p.Position, f.pan, f.pitch, f.roll)
}

// RemoveLastKeyframe pops the newest keyframe. ok is false when the sequence
// was already empty.
func (f *Freecam) RemoveLastKeyframe() (Pose, bool) {
	if f == nil || len(f.keyframes) == 0 {
		f.verbosef("node list is already empty")
		return Pose{}, false
	}
	n := len(f.keyframes)
	p := f.keyframes[n-1]
	f.keyframes = f.keyframes[:n-1]
	if f.preview == n-1 {
		f.preview = -1
	}
	f.verbosef("removed node #%d %v", n, p.Position)
	return p, true
}

// ClearKeyframes drops every keyframe and returns how many there were.
func (f *Freecam) ClearKeyframes() int {
	if f == nil || len(f.keyframes) == 0 {
		f.verbosef("node list is already empty")
		return 0
	}
	n := len(f.keyframes)
	f.keyframes = f.keyframes[:0]
	f.preview = -1
	f.verbosef("cleared node list (had %d nodes)", n)
	return n
}

func (f *Freecam) RemoveAt(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.keyframes = append(f.keyframes[:i], f.keyframes[i+1:]...)
	switch {
	case f.preview == i:
		f.preview = -1
	case f.preview > i:
		f.preview--
	}
	return nil
}

func (f *Freecam) ReplaceAt(i int, p Pose) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.keyframes[i] = p
	return nil
}

func (f *Freecam) SetKeyframeTranslation(i int, pos mgl32.Vec3) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.keyframes[i].Position = pos
	return nil
}

// SetKeyframeEuler rebuilds the orientation at i from yaw, pitch and roll.
func (f *Freecam) SetKeyframeEuler(i int, yaw, pitch, roll float32) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.keyframes[i].Orientation = EulerToQuat(yaw, pitch, roll)
	return nil
}

func (f *Freecam) KeyframeEuler(i int) (yaw, pitch, roll float32, err error) {
	if err = f.checkIndex(i); err != nil {
		return 0, 0, 0, err
	}
	yaw, pitch, roll = f.keyframes[i].Euler()
	return yaw, pitch, roll, nil
}

// Preview jumps the freecam to keyframe i and remembers i until ExitPreview.
func (f *Freecam) Preview(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}
	f.preview = i
	f.view = f.applyPose(f.keyframes[i])
	return nil
}

func (f *Freecam) ExitPreview() {
	if f == nil {
		return
	}
	f.preview = -1
}

// PreviewIndex reports the keyframe being previewed, if any.
func (f *Freecam) PreviewIndex() (int, bool) {
	if f == nil || f.preview < 0 {
		return -1, false
	}
	return f.preview, true
}
