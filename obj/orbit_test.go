package obj

import (
	"math"
	"testing"

	"github.com/milk9111/freecam/common"
	"github.com/milk9111/freecam/freecam"
	"github.com/milk9111/freecam/prefabs"
)

func testOrbit() *OrbitCamera {
	return NewOrbitCamera(prefabs.OrbitSpec{Radius: 200, Height: 80, Speed: 0.5, FOV: 60}, 1280, 720)
}

// wrapAngle maps a to (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func TestOrbitNativeAnglesMatchView(t *testing.T) {
	o := testOrbit()
	for i := 0; i < 5; i++ {
		o.Update(1)
		yaw, pitch, _ := freecam.Mat4ToEuler(o.ViewTransform().Inv())
		if !common.ApproxEqual(pitch, o.Pitch(), 1e-3) {
			t.Fatalf("step %d: view pitch %v, native %v", i, pitch, o.Pitch())
		}
		if d := wrapAngle(float64(yaw) - math.Pi - float64(o.Yaw())); math.Abs(d) > 1e-3 {
			t.Fatalf("step %d: view yaw %v is not native yaw %v offset by pi", i, yaw, o.Yaw())
		}
	}
	if o.Pitch() <= 0 {
		t.Fatalf("camera above its target should pitch down, got %v", o.Pitch())
	}
}

func TestOrbitUpdateMoves(t *testing.T) {
	o := testOrbit()
	before := o.Position()
	o.Update(0.5)
	if o.Position().ApproxEqualThreshold(before, 1e-3) {
		t.Fatalf("orbit did not move")
	}
	o.SnapTo()
	if d := o.Position().Sub(o.Target); math.Abs(float64(d.Y()-80)) > 1e-2 {
		t.Fatalf("snapped height %v, want 80", d.Y())
	}
}

func TestFreecamSyncsFromOrbit(t *testing.T) {
	o := testOrbit()
	o.Update(1)
	host := &World{mode: ModeField, Field: o}
	fc := freecam.New(freecam.Config{})
	fc.Enable()
	fc.Tick(0, host)

	if fc.Pan() != o.Yaw() || fc.Pitch() != o.Pitch() {
		t.Fatalf("freecam (%v, %v), want native (%v, %v)", fc.Pan(), fc.Pitch(), o.Yaw(), o.Pitch())
	}
	if !vecNear(fc.Position(), o.Position(), 1e-2) {
		t.Fatalf("freecam at %v, want %v", fc.Position(), o.Position())
	}
	if !matNear(fc.View(), o.ViewTransform(), 1e-2) {
		t.Fatalf("synced view differs from the native view")
	}
}
