package freecam

import (
	"bytes"
	"log"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/common"
)

type fakeCamera struct {
	view      mgl32.Mat4
	roll      float32
	fov       float32
	viewReads int
	viewSets  int
}

func newFakeCamera(view mgl32.Mat4) *fakeCamera {
	return &fakeCamera{view: view, fov: 45}
}

func (c *fakeCamera) ViewTransform() mgl32.Mat4 {
	c.viewReads++
	return c.view
}

func (c *fakeCamera) SetViewTransform(m mgl32.Mat4) {
	c.viewSets++
	c.view = m
}

func (c *fakeCamera) Roll() float32      { return c.roll }
func (c *fakeCamera) SetRoll(r float32)  { c.roll = r }
func (c *fakeCamera) FOV() float32       { return c.fov }
func (c *fakeCamera) SetFOV(fov float32) { c.fov = fov }

type angledCamera struct {
	*fakeCamera
	pitch float32
	yaw   float32
}

func (c *angledCamera) Pitch() float32 { return c.pitch }
func (c *angledCamera) Yaw() float32   { return c.yaw }

type fakeFrequency struct {
	v float32
}

func (f *fakeFrequency) Frequency() float32     { return f.v }
func (f *fakeFrequency) SetFrequency(v float32) { f.v = v }

type fakeHost struct {
	scene  Camera
	field  Camera
	sceneF *fakeFrequency
	battle *fakeFrequency
}

func (h *fakeHost) SceneCamera() (Camera, bool) { return h.scene, h.scene != nil }
func (h *fakeHost) FieldCamera() (Camera, bool) { return h.field, h.field != nil }

func (h *fakeHost) SceneFrequency() (Frequency, bool) {
	if h.sceneF == nil {
		return nil, false
	}
	return h.sceneF, true
}

func (h *fakeHost) BattleFrequency() (Frequency, bool) {
	if h.battle == nil {
		return nil, false
	}
	return h.battle, true
}

type fakeLock struct {
	calls []bool
}

func (l *fakeLock) HandleFreecam(active bool) { l.calls = append(l.calls, active) }

// newTestFreecam returns a verbose freecam logging into buf.
func newTestFreecam(t *testing.T) (*Freecam, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	f := New(Config{Logger: log.New(&buf, "", 0), Verbose: true})
	return f, &buf
}

// viewFor builds the view matrix the freecam itself would produce for a pose.
func viewFor(pos mgl32.Vec3, pan, pitch float32) mgl32.Mat4 {
	f := New(Config{})
	f.SetPose(PoseFromEuler(pos, pan, pitch, 0))
	return f.View()
}

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if !common.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
