package freecam

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/common"
)

func TestArbitrateFieldAndBattle(t *testing.T) {
	arbiters := map[string]func(*Freecam, Camera, func()) bool{
		"field":  (*Freecam).ArbitrateField,
		"battle": (*Freecam).ArbitrateBattle,
	}
	for name, arbitrate := range arbiters {
		t.Run(name, func(t *testing.T) {
			f := New(Config{})
			cam := newFakeCamera(mgl32.Ident4())
			ran := 0
			native := func() { ran++ }

			if arbitrate(f, cam, native) {
				t.Fatalf("inactive freecam claimed the camera")
			}
			if ran != 1 || cam.viewSets != 0 {
				t.Fatalf("expected native to run alone, ran=%d sets=%d", ran, cam.viewSets)
			}

			f.Enable()
			f.SetPose(PoseFromEuler(mgl32.Vec3{1, 2, 3}, 0.2, 0.1, 0.3))
			if !arbitrate(f, cam, native) {
				t.Fatalf("active freecam did not claim the camera")
			}
			if ran != 1 {
				t.Fatalf("native ran while freecam was active")
			}
			if cam.view != f.View() || cam.roll != f.Roll() {
				t.Fatalf("camera not overwritten with the freecam view")
			}

			if arbitrate(f, nil, native) {
				t.Fatalf("claimed a nil camera")
			}
			if ran != 1 {
				t.Fatalf("native ran for a nil camera while active")
			}
		})
	}
}

func TestArbitrateEventCapturesOnce(t *testing.T) {
	pos := mgl32.Vec3{10, 3, -4}
	cam := newFakeCamera(viewFor(pos, 0.6, 0.2))
	f := New(Config{})
	f.Enable()

	f.ArbitrateEvent(cam)
	if !f.EventParamsInitialized() {
		t.Fatalf("expected baseline latch set")
	}
	if !common.ApproxEqual(f.Pan(), 0.6, 1e-3) || !common.ApproxEqual(f.Pitch(), 0.2, 1e-3) {
		t.Fatalf("baseline angles (%v, %v), want (0.6, 0.2)", f.Pan(), f.Pitch())
	}
	if !vecNear(f.Position(), pos, 1e-3) {
		t.Fatalf("baseline position %v, want %v", f.Position(), pos)
	}
	if !vecNear(f.ReturnPose().Position, pos, 1e-3) {
		t.Fatalf("return pose %v, want %v", f.ReturnPose().Position, pos)
	}

	reads := cam.viewReads
	f.view = f.UpdateView(Input{LeftStick: mgl32.Vec2{30, 0}})
	f.ArbitrateEvent(cam)
	if cam.viewReads != reads {
		t.Fatalf("baseline captured twice")
	}
	if cam.view != f.View() {
		t.Fatalf("event camera does not follow the freecam")
	}
}

func TestArbitrateEventRestoresOnDisable(t *testing.T) {
	pos := mgl32.Vec3{-2, 8, 6}
	original := viewFor(pos, -1.1, 0.4)
	cam := newFakeCamera(original)
	f := New(Config{})
	f.Enable()
	f.ArbitrateEvent(cam)

	for i := 0; i < 5; i++ {
		f.view = f.UpdateView(Input{LeftStick: mgl32.Vec2{20, 40}, RightStick: mgl32.Vec2{100, 0}})
		f.ArbitrateEvent(cam)
	}
	f.Disable()
	f.ArbitrateEvent(cam)

	if f.EventParamsInitialized() {
		t.Fatalf("expected latch cleared after restore")
	}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if !common.ApproxEqual(cam.view.At(r, c), original.At(r, c), 1e-3) {
				t.Fatalf("restored view differs at (%d, %d): %v vs %v", r, c, cam.view, original)
			}
		}
	}

	sets := cam.viewSets
	f.ArbitrateEvent(cam)
	if cam.viewSets != sets {
		t.Fatalf("restore ran twice")
	}
}

func TestArbitrateEventPlayingUsesSample(t *testing.T) {
	cam := newFakeCamera(viewFor(mgl32.Vec3{}, 0, 0))
	f := New(Config{})
	f.Enable()
	f.ArbitrateEvent(cam)

	f.SetKeyframes(squarePath())
	f.SetPathDuration(4)
	f.StartPlayback()
	f.Tick(1, &fakeHost{})
	f.ArbitrateEvent(cam)

	if !vecNear(f.Position(), f.LastInterp().Position, 1e-5) {
		t.Fatalf("freecam at %v, want sample %v", f.Position(), f.LastInterp().Position)
	}
	if cam.view != f.View() {
		t.Fatalf("event camera does not show the path sample")
	}
}

func TestArbitrateEventNilCamera(t *testing.T) {
	f, buf := newTestFreecam(t)
	f.Enable()
	f.ArbitrateEvent(nil)
	if f.EventParamsInitialized() {
		t.Fatalf("latched without a camera")
	}
	if buf.Len() == 0 {
		t.Fatalf("expected a notice for the missing camera")
	}
}

func TestAllowEventCameraCommand(t *testing.T) {
	cmds := []EventCommand{
		EventCameraMoveDirect,
		EventCameraSetAsset,
		EventCameraSetDirect,
		EventCameraShake,
		EventCameraSetField,
		EventCameraOther,
	}
	f := New(Config{})
	for _, c := range cmds {
		if !f.AllowEventCameraCommand(c) {
			t.Errorf("inactive freecam blocked %v", c)
		}
	}
	f.Enable()
	for _, c := range cmds {
		want := c == EventCameraOther
		if got := f.AllowEventCameraCommand(c); got != want {
			t.Errorf("AllowEventCameraCommand(%v) = %v, want %v", c, got, want)
		}
	}
}
