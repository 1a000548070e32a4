package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/common"
	"github.com/milk9111/freecam/prefabs"
)

// OrbitCamera is a native camera controller that circles a target. The field
// and battle modes each own one.
type OrbitCamera struct {
	*Camera

	Target mgl32.Vec3
	Radius float32
	Height float32
	Speed  float32

	angle  float32
	eye    mgl32.Vec3
	smooth float32
	baseRl float32
}

// NewOrbitCamera builds an orbit from its yaml spec.
func NewOrbitCamera(spec prefabs.OrbitSpec, screenW, screenH int) *OrbitCamera {
	o := &OrbitCamera{
		Camera: NewCamera(screenW, screenH, spec.FOV),
		Target: mgl32.Vec3(spec.Target),
		Radius: spec.Radius,
		Height: spec.Height,
		Speed:  spec.Speed,
		smooth: 0.15,
		baseRl: spec.Roll,
	}
	if o.Radius <= 0 {
		o.Radius = 200
	}
	o.eye = o.orbitPoint()
	o.Camera.SetRoll(o.baseRl)
	o.Camera.LookAt(o.eye, o.Target)
	return o
}

func (o *OrbitCamera) orbitPoint() mgl32.Vec3 {
	s, c := math.Sincos(float64(o.angle))
	return o.Target.Add(mgl32.Vec3{float32(c) * o.Radius, o.Height, float32(s) * o.Radius})
}

// Update is the native controller step. It advances the orbit by dt seconds
// and eases the eye toward the orbit point.
func (o *OrbitCamera) Update(dt float32) {
	if o == nil {
		return
	}
	o.angle += o.Speed * dt
	if o.angle > 2*math.Pi {
		o.angle -= 2 * math.Pi
	}
	goal := o.orbitPoint()
	if o.smooth <= 0 {
		o.eye = goal
	} else {
		o.eye = o.eye.Add(goal.Sub(o.eye).Mul(o.smooth))
	}
	o.Camera.SetRoll(o.baseRl)
	o.Camera.LookAt(o.eye, o.Target)
}

// SnapTo places the eye on the orbit immediately.
func (o *OrbitCamera) SnapTo() {
	o.eye = o.orbitPoint()
	o.Camera.LookAt(o.eye, o.Target)
}

// Pitch and Yaw report the native angles in the freecam convention: positive
// pitch looks down and yaw is the pan about world up.
func (o *OrbitCamera) Pitch() float32 {
	d := common.NormalizeOrZero(o.eye.Sub(o.Target))
	return float32(math.Asin(float64(common.Clamp(d.Y(), -1, 1))))
}

func (o *OrbitCamera) Yaw() float32 {
	d := o.eye.Sub(o.Target)
	return float32(math.Atan2(float64(-d.X()), float64(-d.Z())))
}
