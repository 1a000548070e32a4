package freecam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	axisX = mgl32.Vec3{1, 0, 0}
	axisY = mgl32.Vec3{0, 1, 0}
	axisZ = mgl32.Vec3{0, 0, 1}
)

// Pose is a single camera sample: a position and a unit orientation.
type Pose struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

// NewPose builds a pose from a raw position and orientation. The orientation
// is renormalized; a zero quaternion becomes the identity.
func NewPose(pos mgl32.Vec3, rot mgl32.Quat) Pose {
	return Pose{Position: pos, Orientation: rot.Normalize()}
}

// PoseFromEuler builds a pose from yaw, pitch and roll in radians.
func PoseFromEuler(pos mgl32.Vec3, yaw, pitch, roll float32) Pose {
	return Pose{Position: pos, Orientation: EulerToQuat(yaw, pitch, roll)}
}

// Euler returns the pose orientation as (yaw, pitch, roll).
func (p Pose) Euler() (yaw, pitch, roll float32) {
	return QuatToEuler(p.Orientation)
}

func (p Pose) scale(s float32) Pose {
	return Pose{Position: p.Position.Mul(s), Orientation: p.Orientation.Scale(s)}
}

func (p Pose) add(o Pose) Pose {
	return Pose{Position: p.Position.Add(o.Position), Orientation: p.Orientation.Add(o.Orientation)}
}

// EulerToQuat rotates by yaw about Y, then by pitch about the rotated X, then
// by roll about the rotated Z. Pitch is sign-flipped: decomposing an inverted
// freecam view gives back its pitch as is and its pan offset by pi.
func EulerToQuat(yaw, pitch, roll float32) mgl32.Quat {
	qy := mgl32.QuatRotate(yaw, axisY)
	qx := mgl32.QuatRotate(-pitch, axisX)
	qz := mgl32.QuatRotate(roll, axisZ)
	return qy.Mul(qx).Mul(qz).Normalize()
}

// QuatToEuler is the inverse of EulerToQuat for pitch in (-pi/2, pi/2).
func QuatToEuler(q mgl32.Quat) (yaw, pitch, roll float32) {
	q = q.Normalize()
	w, x, y, z := float64(q.W), float64(q.V[0]), float64(q.V[1]), float64(q.V[2])

	r02 := 2 * (x*z + w*y)
	r10 := 2 * (x*y + w*z)
	r11 := 1 - 2*(x*x+z*z)
	r12 := 2 * (y*z - w*x)
	r22 := 1 - 2*(x*x+y*y)

	return fromRotation(r02, r10, r11, r12, r22)
}

// Mat4ToEuler decomposes the rotation part of an orthonormal transform using
// the same convention as EulerToQuat.
func Mat4ToEuler(m mgl32.Mat4) (yaw, pitch, roll float32) {
	return fromRotation(
		float64(m.At(0, 2)),
		float64(m.At(1, 0)),
		float64(m.At(1, 1)),
		float64(m.At(1, 2)),
		float64(m.At(2, 2)),
	)
}

// R = Ry(yaw) * Rx(-pitch) * Rz(roll); only the five entries below are needed.
func fromRotation(r02, r10, r11, r12, r22 float64) (yaw, pitch, roll float32) {
	if r12 > 1 {
		r12 = 1
	} else if r12 < -1 {
		r12 = -1
	}
	pitch = float32(math.Asin(r12))
	yaw = float32(math.Atan2(r02, r22))
	roll = float32(math.Atan2(r10, r11))
	return yaw, pitch, roll
}
