package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// shots are named camera placements a cutscene can cut to.
var shots = map[string][2]mgl32.Vec3{
	"low_corner": {{-220, 12, -220}, {0, 20, 0}},
	"overhead":   {{0, 420, 1}, {0, 0, 0}},
	"side":       {{300, 40, 0}, {0, 0, 0}},
}

// EventCamera is the cutscene camera. It only changes when a cutscene command
// runs, so a freecam that swallows commands keeps full control of it.
type EventCamera struct {
	*Camera

	eye    mgl32.Vec3
	target mgl32.Vec3
	ease   float32
	shake  float32
	phase  float64
}

func NewEventCamera(screenW, screenH int, fov float32) *EventCamera {
	e := &EventCamera{
		Camera: NewCamera(screenW, screenH, fov),
		eye:    mgl32.Vec3{0, 120, 300},
		ease:   0.1,
	}
	e.apply()
	return e
}

func (e *EventCamera) apply() {
	eye := e.eye
	if e.shake > 0 {
		s, c := math.Sincos(e.phase * 37)
		eye = eye.Add(mgl32.Vec3{float32(s) * e.shake, float32(c) * e.shake, 0})
	}
	e.Camera.LookAt(eye, e.target)
}

// MoveDirect eases the eye toward pos.
func (e *EventCamera) MoveDirect(pos mgl32.Vec3) {
	e.eye = e.eye.Add(pos.Sub(e.eye).Mul(e.ease))
	e.apply()
}

func (e *EventCamera) LookAtTarget(target mgl32.Vec3) {
	e.target = target
	e.apply()
}

// SetDirect cuts to eye looking at target.
func (e *EventCamera) SetDirect(eye, target mgl32.Vec3) {
	e.eye = eye
	e.target = target
	e.apply()
}

// SetAsset cuts to a named shot. Unknown names are ignored.
func (e *EventCamera) SetAsset(name string) bool {
	s, ok := shots[name]
	if !ok {
		return false
	}
	e.SetDirect(s[0], s[1])
	return true
}

// Shake jitters the eye by amount for this frame.
func (e *EventCamera) Shake(amount float32) {
	e.shake = amount
	e.phase++
	e.apply()
	e.shake = 0
}

// SetField copies another camera's view and roll.
func (e *EventCamera) SetField(src *Camera) {
	if src == nil {
		return
	}
	e.eye = src.Position()
	e.target = e.eye.Add(src.Forward().Mul(100))
	e.Camera.SetViewTransform(src.ViewTransform())
	e.Camera.SetRoll(src.Roll())
}
