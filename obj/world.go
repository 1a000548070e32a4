package obj

import (
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/freecam/freecam"
	"github.com/milk9111/freecam/prefabs"
)

// Mode is the game mode deciding which native camera is live.
type Mode int

const (
	ModeField Mode = iota
	ModeEvent
	ModeBattle
)

func (m Mode) String() string {
	switch m {
	case ModeField:
		return "field"
	case ModeEvent:
		return "event"
	case ModeBattle:
		return "battle"
	default:
		return "unknown"
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "field":
		return ModeField, nil
	case "event":
		return ModeEvent, nil
	case "battle":
		return ModeBattle, nil
	}
	return ModeField, fmt.Errorf("unknown mode %q", s)
}

// World is the sandbox game. It owns a native camera per mode and exposes
// them to the freecam as its host.
type World struct {
	mode Mode

	Field  *OrbitCamera
	Event  *EventCamera
	Battle *OrbitCamera

	Arena       *Arena
	SceneClock  *Clock
	BattleClock *Clock
	Cutscene    *Cutscene
	HUD         *HUD

	elapsed float32
	locked  bool
}

func NewWorld(spec *prefabs.SandboxSpec, screenW, screenH int) (*World, error) {
	if spec == nil {
		return nil, fmt.Errorf("world: nil sandbox spec")
	}
	sceneClock := NewClock()
	w := &World{
		Field:       NewOrbitCamera(spec.Field, screenW, screenH),
		Event:       NewEventCamera(screenW, screenH, spec.Event.FOV),
		Battle:      NewOrbitCamera(spec.Battle, screenW, screenH),
		Arena:       NewArena(spec.Scene, sceneClock),
		SceneClock:  sceneClock,
		BattleClock: NewClock(),
		HUD:         NewHUD(),
	}
	if spec.Event.Script != "" {
		cs, err := LoadCutscene(spec.Event.Script)
		if err != nil {
			return nil, err
		}
		w.Cutscene = cs
	}
	return w, nil
}

func (w *World) Mode() Mode { return w.mode }

// SetMode switches game mode. Entering the event mode restarts the cutscene.
func (w *World) SetMode(m Mode) {
	if w.mode == m {
		return
	}
	w.mode = m
	if m == ModeEvent && w.Cutscene != nil {
		w.Cutscene.time = 0
	}
	if m == ModeBattle {
		w.Battle.SnapTo()
	}
}

func (w *World) Elapsed() float32 { return w.elapsed }
func (w *World) Bounces() int     { return w.Arena.Bounces() }
func (w *World) Locked() bool     { return w.locked }

// Camera is the render camera of the current mode.
func (w *World) Camera() *Camera {
	switch w.mode {
	case ModeEvent:
		return w.Event.Camera
	case ModeBattle:
		return w.Battle.Camera
	default:
		return w.Field.Camera
	}
}

// SceneCamera returns the live camera. In the field it is the orbit
// controller itself so the freecam can read its native angles.
func (w *World) SceneCamera() (freecam.Camera, bool) {
	switch w.mode {
	case ModeField:
		return w.Field, true
	case ModeEvent:
		return w.Event, true
	case ModeBattle:
		return w.Battle, true
	}
	return nil, false
}

func (w *World) FieldCamera() (freecam.Camera, bool) {
	if w.mode != ModeField {
		return nil, false
	}
	return w.Field, true
}

func (w *World) SceneFrequency() (freecam.Frequency, bool) {
	return w.SceneClock, w.SceneClock != nil
}

func (w *World) BattleFrequency() (freecam.Frequency, bool) {
	if w.mode != ModeBattle || w.BattleClock == nil {
		return nil, false
	}
	return w.BattleClock, true
}

// HandleFreecam locks or unlocks native camera input.
func (w *World) HandleFreecam(active bool) {
	w.locked = active
}

// Update runs the native side of one frame after the freecam has updated.
// Each mode lets the freecam arbitrate camera authority before or instead of
// its native camera step.
func (w *World) Update(dt float32, fc *freecam.Freecam) {
	w.elapsed += dt
	w.Arena.Step(dt)

	switch w.mode {
	case ModeField:
		fc.ArbitrateField(w.Field, func() { w.Field.Update(w.SceneClock.Scale(dt)) })
	case ModeEvent:
		fc.ArbitrateEvent(w.Event)
		if err := w.Cutscene.Update(w.SceneClock.Scale(dt), w.Event, w.Field.Camera, fc.AllowEventCameraCommand); err != nil {
			log.Printf("freecam: cutscene %s: %v", w.Cutscene.Name, err)
		}
	case ModeBattle:
		fc.ArbitrateBattle(w.Battle, func() { w.Battle.Update(w.BattleClock.Scale(dt)) })
	}

	w.HUD.Visible = fc.HUDVisible()
}

// ReloadCutscene swaps in a recompiled script, keeping its clock.
func (w *World) ReloadCutscene(name string) error {
	cs, err := LoadCutscene(name)
	if err != nil {
		return err
	}
	if w.Cutscene != nil {
		cs.time = w.Cutscene.time
	}
	w.Cutscene = cs
	return nil
}
