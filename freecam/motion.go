package freecam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/common"
)

// speeds picks the rotation and translation multipliers for this frame.
// The left trigger wins over the right one.
func (f *Freecam) speeds(held Buttons) (pan, move float32) {
	switch {
	case held&ButtonLeftTrigger != 0:
		return f.tuning.Precise.Pan, f.tuning.Precise.Move
	case held&ButtonRightTrigger != 0:
		return f.tuning.Careful.Pan, f.tuning.Careful.Move
	default:
		return 1, 1
	}
}

// UpdateView applies one frame of input to the pose and returns the new
// right-handed view matrix.
func (f *Freecam) UpdateView(in Input) mgl32.Mat4 {
	panSpeed, moveSpeed := f.speeds(in.Held)

	f.pan -= in.RightStick.X() / (f.tuning.PanDivisor / panSpeed)
	f.pitch += in.RightStick.Y() / (f.tuning.PanDivisor / panSpeed)

	if !f.movementLocked {
		lh := in.LeftStick.X() / (f.tuning.MoveDivisor / moveSpeed)
		lv := in.LeftStick.Y() / (f.tuning.MoveDivisor / moveSpeed)
		front := f.cameraPos.Sub(f.lookatPos)
		right := common.NormalizeOrZero(common.WorldUp.Cross(front))

		f.cameraPos = f.cameraPos.
			Add(right.Mul(lh)).
			Add(common.NormalizeOrZero(front).Mul(lv))
		if in.Holding(ButtonLeftShoulder) {
			f.cameraPos[1] += f.tuning.VerticalStep * moveSpeed
		}
		if in.Holding(ButtonRightShoulder) {
			f.cameraPos[1] -= f.tuning.VerticalStep * moveSpeed
		}
	}

	if in.Holding(ButtonDpadUp) {
		f.roll += f.tuning.RollStep
	}
	if in.Holding(ButtonDpadDown) {
		f.roll -= f.tuning.RollStep
	}

	return f.lookAtMatrix()
}

// direction is the unit vector from the look-at target back to the camera.
func direction(pan, pitch float32) mgl32.Vec3 {
	sp, cp := math.Sincos(float64(pan))
	st, ct := math.Sincos(float64(pitch))
	return mgl32.Vec3{
		float32(-(sp * ct)),
		float32(st),
		float32(-(cp * ct)),
	}
}

// lookAtMatrix rebuilds the look-at target and up vector from pan and pitch.
// A front vector parallel to +Y leaves right and up at zero.
func (f *Freecam) lookAtMatrix() mgl32.Mat4 {
	f.lookatPos = f.cameraPos.Sub(direction(f.pan, f.pitch).Mul(f.tuning.LookDistance))

	front := f.cameraPos.Sub(f.lookatPos)
	right := common.NormalizeOrZero(common.WorldUp.Cross(front))
	f.upVec = common.NormalizeOrZero(front.Cross(right))

	return mgl32.LookAtV(f.cameraPos, f.lookatPos, f.upVec)
}
