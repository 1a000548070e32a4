package freecam

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// EventCommand is a camera command a cutscene can issue.
type EventCommand int

const (
	EventCameraMoveDirect EventCommand = iota
	EventCameraSetAsset
	EventCameraSetDirect
	EventCameraShake
	EventCameraSetField
	EventCameraOther
)

func (c EventCommand) String() string {
	switch c {
	case EventCameraMoveDirect:
		return "CAMERA MOVE DIRECT"
	case EventCameraSetAsset:
		return "CAMERA SET ASSET"
	case EventCameraSetDirect:
		return "CAMERA SET DIRECT"
	case EventCameraShake:
		return "CAMERA SHAKE"
	case EventCameraSetField:
		return "CAMERA SET FIELD"
	default:
		return "CAMERA"
	}
}

// AllowEventCameraCommand reports whether the cutscene may run cmd. While the
// freecam is active every camera command except EventCameraOther is
// swallowed and should be reported to the cutscene as handled.
func (f *Freecam) AllowEventCameraCommand(cmd EventCommand) bool {
	if !f.Active() {
		return true
	}
	return cmd == EventCameraOther
}

// ArbitrateField runs where the native field camera updates. An active
// freecam overwrites the camera's view and roll; otherwise native runs. It
// reports whether the freecam claimed the camera.
func (f *Freecam) ArbitrateField(cam Camera, native func()) bool {
	return f.claim(cam, native)
}

// ArbitrateBattle has the same contract as ArbitrateField. Battle cameras
// reset themselves, so no baseline is kept.
func (f *Freecam) ArbitrateBattle(cam Camera, native func()) bool {
	return f.claim(cam, native)
}

func (f *Freecam) claim(cam Camera, native func()) bool {
	if !f.Active() {
		if native != nil {
			native()
		}
		return false
	}
	if cam == nil {
		f.verbosef("no camera to claim this frame")
		return false
	}
	cam.SetViewTransform(f.view)
	cam.SetRoll(f.roll)
	return true
}

// ArbitrateEvent runs at the top of the event loop. The first active tick
// captures the event camera as the return pose. Active ticks write the
// freecam view; while a path plays the last sample wins over live input. The
// first inactive tick restores the return pose. The event loop itself always
// runs afterwards.
func (f *Freecam) ArbitrateEvent(cam Camera) {
	if f == nil {
		return
	}
	if cam == nil {
		f.verbosef("no event camera this frame")
		return
	}

	if f.Active() {
		view := f.view
		if !f.eventParamsInitialized {
			f.captureBaseline(cam, false)
			f.eventParamsInitialized = true
			view = f.lookAtMatrix()
			f.view = view
		}
		if f.Playing() {
			view = f.applyPose(f.lastInterp)
			f.view = view
		}
		cam.SetViewTransform(view)
		cam.SetRoll(f.roll)
		return
	}

	if f.eventParamsInitialized {
		view := f.applyPose(f.returnPose)
		f.view = view
		cam.SetViewTransform(view)
		cam.SetRoll(f.roll)
		f.eventParamsInitialized = false
	}
}

// captureBaseline recovers pan, pitch, roll and position from cam and stores
// them as the return pose. The matrix yaw is offset by pi from the freecam
// pan and is rebased here. With useNative, a camera that keeps its own
// angles supplies pitch and yaw directly.
func (f *Freecam) captureBaseline(cam Camera, useNative bool) {
	inv := cam.ViewTransform().Inv()
	yaw, pitch, roll := Mat4ToEuler(inv)
	f.pan = rebasePan(yaw)
	f.pitch = pitch
	f.roll = roll
	if useNative {
		if na, ok := cam.(NativeAngles); ok {
			f.pan = na.Yaw()
			f.pitch = na.Pitch()
		}
	}
	f.cameraPos = inv.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
	f.returnPose = PoseFromEuler(f.cameraPos, f.pan, f.pitch, f.roll)
}

func rebasePan(pan float32) float32 {
	if pan >= 0 {
		return -(math.Pi - pan)
	}
	return pan + math.Pi
}
