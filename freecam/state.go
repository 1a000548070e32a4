package freecam

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/common"
)

// Mode is the top-level freecam state.
type Mode int

const (
	Inactive Mode = iota
	ActiveFree
	ActivePlayingPath
)

func (m Mode) String() string {
	switch m {
	case Inactive:
		return "inactive"
	case ActiveFree:
		return "active"
	case ActivePlayingPath:
		return "playing"
	default:
		return "unknown"
	}
}

// Config configures a Freecam. Zero values fall back to defaults.
type Config struct {
	Tuning  Tuning
	Lock    NativeLock
	Logger  *log.Logger
	Verbose bool
}

// Freecam owns the detached camera pose, the recorded keyframes and playback
// timing. It is driven from a single update loop and is not safe for
// concurrent use.
type Freecam struct {
	mode Mode

	// one-shot latches
	awaitingInitialSync    bool
	eventParamsInitialized bool

	movementLocked bool

	pan   float32
	pitch float32
	roll  float32

	cameraPos mgl32.Vec3
	lookatPos mgl32.Vec3
	upVec     mgl32.Vec3

	keyframes    []Pose
	pathDuration float32
	pathElapsed  float32
	pathPercent  float32

	lastInterp Pose
	returnPose Pose
	preview    int

	view mgl32.Mat4

	tuning  Tuning
	lock    NativeLock
	logger  *log.Logger
	verbose bool
}

func New(cfg Config) *Freecam {
	tuning := cfg.Tuning.withDefaults()
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Freecam{
		upVec:        common.WorldUp,
		pathDuration: tuning.PathDuration,
		lastInterp:   Pose{Orientation: mgl32.QuatIdent()},
		returnPose:   Pose{Orientation: mgl32.QuatIdent()},
		preview:      -1,
		view:         mgl32.Ident4(),
		tuning:       tuning,
		lock:         cfg.Lock,
		logger:       logger,
		verbose:      cfg.Verbose,
	}
}

func (f *Freecam) verbosef(format string, args ...any) {
	if f == nil || !f.verbose || f.logger == nil {
		return
	}
	f.logger.Printf("freecam: "+format, args...)
}

// SetVerbose toggles verbose notices.
func (f *Freecam) SetVerbose(v bool) {
	if f == nil {
		return
	}
	f.verbose = v
}

// Tuning returns the active tuning values.
func (f *Freecam) Tuning() Tuning {
	if f == nil {
		return DefaultTuning()
	}
	return f.tuning
}

// SetTuning swaps tuning values at runtime. The path duration is re-floored
// against the new step.
func (f *Freecam) SetTuning(t Tuning) {
	if f == nil {
		return
	}
	f.tuning = t.withDefaults()
	f.SetPathDuration(f.pathDuration)
}

// Enable switches the freecam on and arms the one-shot baseline sync.
func (f *Freecam) Enable() {
	if f == nil {
		return
	}
	if f.mode == Inactive {
		f.mode = ActiveFree
	}
	f.awaitingInitialSync = true
	if f.lock != nil {
		f.lock.HandleFreecam(true)
	}
	f.verbosef("enable freecam")
}

// Disable switches the freecam off. Any playing path stops.
func (f *Freecam) Disable() {
	if f == nil {
		return
	}
	f.mode = Inactive
	if f.lock != nil {
		f.lock.HandleFreecam(false)
	}
	f.verbosef("disable freecam")
}

func (f *Freecam) Toggle() {
	if f == nil {
		return
	}
	if f.Active() {
		f.Disable()
		return
	}
	f.Enable()
}

func (f *Freecam) Mode() Mode {
	if f == nil {
		return Inactive
	}
	return f.mode
}

func (f *Freecam) Active() bool {
	return f != nil && f.mode != Inactive
}

func (f *Freecam) Playing() bool {
	return f != nil && f.mode == ActivePlayingPath
}

// HUDVisible is false while the freecam owns the camera.
func (f *Freecam) HUDVisible() bool {
	return !f.Active()
}

func (f *Freecam) AwaitingInitialSync() bool {
	return f != nil && f.awaitingInitialSync
}

func (f *Freecam) EventParamsInitialized() bool {
	return f != nil && f.eventParamsInitialized
}

// ToggleMovementLock freezes translation while rotation stays free.
func (f *Freecam) ToggleMovementLock() bool {
	if f == nil {
		return false
	}
	f.movementLocked = !f.movementLocked
	if f.movementLocked {
		f.verbosef("camera is locked")
	} else {
		f.verbosef("camera is unlocked")
	}
	return f.movementLocked
}

func (f *Freecam) MovementLocked() bool {
	return f != nil && f.movementLocked
}

func (f *Freecam) Pan() float32   { return f.pan }
func (f *Freecam) Pitch() float32 { return f.pitch }
func (f *Freecam) Roll() float32  { return f.roll }

func (f *Freecam) Position() mgl32.Vec3 { return f.cameraPos }
func (f *Freecam) LookAt() mgl32.Vec3   { return f.lookatPos }
func (f *Freecam) Up() mgl32.Vec3       { return f.upVec }

// View is the view matrix computed on the last update.
func (f *Freecam) View() mgl32.Mat4 { return f.view }

// CurrentPose packs the live pan, pitch, roll and position into a Pose.
func (f *Freecam) CurrentPose() Pose {
	return PoseFromEuler(f.cameraPos, f.pan, f.pitch, f.roll)
}

// ReturnPose is the baseline captured on activation.
func (f *Freecam) ReturnPose() Pose      { return f.returnPose }
func (f *Freecam) LastInterp() Pose      { return f.lastInterp }
func (f *Freecam) PathDuration() float32 { return f.pathDuration }
func (f *Freecam) PathElapsed() float32  { return f.pathElapsed }
func (f *Freecam) PathPercent() float32  { return f.pathPercent }

// SetPathDuration sets the playback length in seconds, floored at one path
// step so the percent computation never divides by zero.
func (f *Freecam) SetPathDuration(seconds float32) {
	if f == nil {
		return
	}
	if seconds < f.tuning.PathStep {
		seconds = f.tuning.PathStep
	}
	f.pathDuration = seconds
}

// ChangePathDuration moves the duration one step down (shorter) or up.
func (f *Freecam) ChangePathDuration(shorter bool) float32 {
	if f == nil {
		return 0
	}
	step := f.tuning.PathStep
	if shorter {
		step = -step
	}
	f.SetPathDuration(f.pathDuration + step)
	f.verbosef("new node path time: %.02f sec", f.pathDuration)
	return f.pathDuration
}

// applyPose loads p into pan, pitch, roll and position and rebuilds the look
// basis. It returns the resulting view matrix.
func (f *Freecam) applyPose(p Pose) mgl32.Mat4 {
	f.pan, f.pitch, f.roll = p.Euler()
	f.cameraPos = p.Position
	return f.lookAtMatrix()
}

// SetPose moves the freecam to p without touching the keyframes.
func (f *Freecam) SetPose(p Pose) {
	if f == nil {
		return
	}
	f.view = f.applyPose(p)
}
