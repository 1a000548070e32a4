package obj

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/common"
)

func vecNear(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if !common.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func matNear(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if !common.ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}
