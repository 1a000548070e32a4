package obj

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/common"
)

const (
	nearPlane = 0.5
	farPlane  = 5000
)

// Camera is the render camera of one game mode. Its view transform and roll
// are the surface the freecam reads from and writes into.
type Camera struct {
	view mgl32.Mat4
	roll float32
	fov  float32

	screenW int
	screenH int
}

// NewCamera creates a camera with the given logical screen size and vertical
// field of view in degrees.
func NewCamera(screenW, screenH int, fov float32) *Camera {
	if fov <= 0 {
		fov = 60
	}
	return &Camera{view: mgl32.Ident4(), fov: fov, screenW: screenW, screenH: screenH}
}

func (c *Camera) ViewTransform() mgl32.Mat4     { return c.view }
func (c *Camera) SetViewTransform(m mgl32.Mat4) { c.view = m }
func (c *Camera) Roll() float32                 { return c.roll }
func (c *Camera) SetRoll(r float32)             { c.roll = r }
func (c *Camera) FOV() float32                  { return c.fov }

func (c *Camera) SetFOV(deg float32) {
	if deg <= 0 {
		return
	}
	c.fov = deg
}

// SetScreenSize updates the logical screen size used for projection.
func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// LookAt points the camera from eye at target with world up.
func (c *Camera) LookAt(eye, target mgl32.Vec3) {
	if eye.Sub(target).Len() == 0 {
		return
	}
	up := common.WorldUp
	if common.NormalizeOrZero(up.Cross(eye.Sub(target))).Len() == 0 {
		// straight up or down, pick any horizontal up
		up = mgl32.Vec3{0, 0, -1}
	}
	c.view = mgl32.LookAtV(eye, target, up)
}

// Position is the camera eye in world space.
func (c *Camera) Position() mgl32.Vec3 {
	return c.view.Inv().Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
}

// Forward is the unit viewing direction in world space.
func (c *Camera) Forward() mgl32.Vec3 {
	inv := c.view.Inv()
	return common.NormalizeOrZero(inv.Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3())
}

func (c *Camera) aspect() float32 {
	if c.screenH == 0 {
		return 1
	}
	return float32(c.screenW) / float32(c.screenH)
}

// ViewProjection is the full transform used for drawing, roll included.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(c.fov), c.aspect(), nearPlane, farPlane)
	rolled := mgl32.HomogRotate3DZ(c.roll).Mul4(c.view)
	return proj.Mul4(rolled)
}

// Project maps a world point to screen pixels. ok is false for points behind
// the near plane.
func (c *Camera) Project(p mgl32.Vec3) (x, y float32, ok bool) {
	return projectWith(c.ViewProjection(), c.screenW, c.screenH, p)
}

func projectWith(vp mgl32.Mat4, w, h int, p mgl32.Vec3) (x, y float32, ok bool) {
	clip := vp.Mul4x1(p.Vec4(1))
	if clip.W() < nearPlane {
		return 0, 0, false
	}
	nx := clip.X() / clip.W()
	ny := clip.Y() / clip.W()
	if math.IsNaN(float64(nx)) || math.IsNaN(float64(ny)) {
		return 0, 0, false
	}
	x = (nx + 1) / 2 * float32(w)
	y = (1 - ny) / 2 * float32(h)
	return x, y, true
}
