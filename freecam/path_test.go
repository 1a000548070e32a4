package freecam

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func yawSquarePath() []Pose {
	return []Pose{
		PoseFromEuler(mgl32.Vec3{0, 0, 0}, 0, 0, 0),
		PoseFromEuler(mgl32.Vec3{10, 0, 0}, 0.5, 0, 0),
		PoseFromEuler(mgl32.Vec3{10, 0, 10}, 1, 0, 0),
		PoseFromEuler(mgl32.Vec3{0, 0, 10}, 1.5, 0, 0),
	}
}

func TestPlaybackAdvancesToCompletion(t *testing.T) {
	f := New(Config{})
	field := newFakeCamera(mgl32.Ident4())
	h := &fakeHost{field: field}

	f.Enable()
	f.SetKeyframes(yawSquarePath())
	f.SetPathDuration(4)
	if !f.StartPlayback() {
		t.Fatalf("expected playback to start")
	}

	want := []float32{0.25, 0.5, 0.75, 1}
	for i, p := range want {
		f.Tick(1, h)
		if got := f.PathPercent(); got != p {
			t.Fatalf("tick %d: percent = %v, want %v", i+1, got, p)
		}
		if i < len(want)-1 && !f.Playing() {
			t.Fatalf("tick %d: stopped early", i+1)
		}
	}
	if f.Playing() {
		t.Fatalf("expected playback to stop at the end")
	}
	if f.Mode() != ActiveFree {
		t.Fatalf("expected free mode after the path, got %v", f.Mode())
	}
	if got := f.PathElapsed(); got != 4 {
		t.Fatalf("elapsed = %v, want 4", got)
	}
	if field.viewSets != 4 {
		t.Fatalf("expected 4 field camera writes, got %d", field.viewSets)
	}
	if field.view != f.View() {
		t.Fatalf("field camera does not hold the last sample")
	}

	f.Tick(1, h)
	if field.viewSets != 4 {
		t.Fatalf("a finished path kept writing")
	}
}

func TestPlaybackSampleTracksCurve(t *testing.T) {
	f := New(Config{})
	f.Enable()
	f.SetKeyframes(yawSquarePath())
	f.SetPathDuration(2)
	f.StartPlayback()
	f.Tick(1, &fakeHost{})

	want, _ := Interpolate(yawSquarePath(), 0.5)
	got := f.LastInterp()
	if !vecNear(got.Position, want.Position, 1e-4) {
		t.Fatalf("sample at %v, want %v", got.Position, want.Position)
	}
	if !vecNear(f.Position(), want.Position, 1e-4) {
		t.Fatalf("freecam did not move onto the sample: %v", f.Position())
	}
}

func TestStartPlaybackWithoutKeyframes(t *testing.T) {
	f, buf := newTestFreecam(t)
	f.Enable()
	if f.StartPlayback() {
		t.Fatalf("expected playback to be refused")
	}
	if f.Mode() != ActiveFree {
		t.Fatalf("mode = %v, want active", f.Mode())
	}
	if !strings.Contains(buf.String(), "no nodes have been set for camera path") {
		t.Fatalf("missing notice, log was %q", buf.String())
	}
}

func TestStartPlaybackWhileInactive(t *testing.T) {
	f := New(Config{})
	f.SetKeyframes(yawSquarePath())
	if f.StartPlayback() {
		t.Fatalf("expected playback to be refused while inactive")
	}
	if f.Mode() != Inactive {
		t.Fatalf("mode = %v, want inactive", f.Mode())
	}
}

func TestSingleKeyframeHolds(t *testing.T) {
	f := New(Config{})
	h := &fakeHost{}
	pos := mgl32.Vec3{4, 5, 6}

	f.Enable()
	f.AppendKeyframe(PoseFromEuler(pos, 0.3, 0, 0))
	if !f.StartPlayback() {
		t.Fatalf("expected playback to start")
	}
	f.Tick(0.1, h)
	if f.Playing() {
		t.Fatalf("expected a single keyframe to stop playback")
	}
	if f.LastInterp().Position != pos {
		t.Fatalf("expected to hold keyframe, got %v", f.LastInterp().Position)
	}
}

func TestStartPlaybackRewinds(t *testing.T) {
	f := New(Config{})
	h := &fakeHost{}
	f.Enable()
	f.SetKeyframes(yawSquarePath())
	f.SetPathDuration(1)
	f.StartPlayback()
	f.Tick(2, h)
	if f.Playing() {
		t.Fatalf("expected path to finish")
	}

	f.StartPlayback()
	if f.PathElapsed() != 0 || f.PathPercent() != 0 {
		t.Fatalf("expected rewind, got elapsed %v", f.PathElapsed())
	}
}

func TestTogglePlayback(t *testing.T) {
	f := New(Config{})
	h := &fakeHost{}
	f.Enable()
	f.SetKeyframes(yawSquarePath())
	f.SetPathDuration(4)

	if !f.TogglePlayback() {
		t.Fatalf("expected toggle to start playback")
	}
	f.Tick(1, h)
	if f.TogglePlayback() {
		t.Fatalf("expected toggle to pause")
	}
	f.Tick(1, h)
	if got := f.PathElapsed(); got != 1 {
		t.Fatalf("paused path advanced to %v", got)
	}
	f.TogglePlayback()
	f.Tick(3, h)
	if f.Playing() {
		t.Fatalf("expected path to finish")
	}
	if !f.TogglePlayback() || f.PathElapsed() != 0 {
		t.Fatalf("expected a finished path to restart from zero, elapsed %v", f.PathElapsed())
	}
}

func TestStopPlaybackShowsFirstSample(t *testing.T) {
	f := New(Config{})
	field := newFakeCamera(mgl32.Ident4())
	h := &fakeHost{field: field}
	f.Enable()
	f.SetKeyframes(yawSquarePath())
	f.StartPlayback()
	f.Tick(1, h)

	f.StopPlayback(h)
	if f.Playing() {
		t.Fatalf("expected playback stopped")
	}
	if f.PathElapsed() != 0 {
		t.Fatalf("elapsed = %v, want 0", f.PathElapsed())
	}
	want, _ := Interpolate(yawSquarePath(), 0)
	if !vecNear(f.LastInterp().Position, want.Position, 1e-5) {
		t.Fatalf("sample %v, want %v", f.LastInterp().Position, want.Position)
	}
	if field.view != f.View() {
		t.Fatalf("field camera not updated on stop")
	}
}

func TestScrubPausesAndClamps(t *testing.T) {
	f := New(Config{})
	h := &fakeHost{}
	f.Enable()
	f.SetKeyframes(yawSquarePath())
	f.SetPathDuration(2)
	f.StartPlayback()

	f.Scrub(1, h)
	if f.Playing() {
		t.Fatalf("expected scrub to pause")
	}
	if f.PathPercent() != 0.5 {
		t.Fatalf("percent = %v, want 0.5", f.PathPercent())
	}

	f.Scrub(10, h)
	if f.PathElapsed() != 2 {
		t.Fatalf("elapsed = %v, want clamp to 2", f.PathElapsed())
	}
	f.Scrub(-1, h)
	if f.PathElapsed() != 0 {
		t.Fatalf("elapsed = %v, want clamp to 0", f.PathElapsed())
	}
}

func TestStartPlaybackCorrectsSigns(t *testing.T) {
	f := New(Config{})
	keys := yawSquarePath()
	q := keys[2].Orientation
	keys[2].Orientation = mgl32.Quat{W: -q.W, V: q.V.Mul(-1)}

	f.Enable()
	f.SetKeyframes(keys)
	f.StartPlayback()
	for i, k := range f.Keyframes()[1:] {
		if f.Keyframes()[i].Orientation.Dot(k.Orientation) < 0 {
			t.Fatalf("keyframe %d still in the opposite hemisphere", i+1)
		}
	}
}
