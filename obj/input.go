package obj

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/freecam/freecam"
	"github.com/milk9111/freecam/prefabs"
)

// Bindings maps each freecam hotkey to the keyboard keys that fire it.
type Bindings map[freecam.Control][]ebiten.Key

// ParseBindings resolves key names such as "F4" or "NumpadSubtract". Names
// ebiten does not know are returned so the caller can report them.
func ParseBindings(names map[freecam.Control][]string) (Bindings, []string) {
	out := make(Bindings, len(names))
	var bad []string
	for c, keys := range names {
		for _, name := range keys {
			var k ebiten.Key
			if err := k.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
				bad = append(bad, fmt.Sprintf("%s=%s", c, name))
				continue
			}
			out[c] = append(out[c], k)
		}
	}
	return out, bad
}

// Source is the raw device state for one frame.
type Source interface {
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	// Pad reports the first gamepad, if one is connected.
	Pad() (Pad, bool)
}

// Pad holds standard-mapped gamepad state with axes in [-1, 1].
type Pad struct {
	LeftX, LeftY   float64
	RightX, RightY float64
	Buttons        map[ebiten.StandardGamepadButton]bool
}

// Input turns device state into the freecam's per-frame controller snapshot
// plus sandbox shortcuts.
type Input struct {
	bindings Bindings
	pad      prefabs.GamepadSpec

	State freecam.Input

	// sandbox shortcuts for this frame
	Mode          Mode
	ModeRequested bool
	ToggleOverlay bool
	Quit          bool
}

func NewInput(bindings Bindings, pad prefabs.GamepadSpec) *Input {
	if pad.StickScale <= 0 {
		pad.StickScale = 127
	}
	if pad.KeyStick <= 0 {
		pad.KeyStick = pad.StickScale * 0.75
	}
	return &Input{bindings: bindings, pad: pad}
}

// SetBindings swaps bindings after a config reload.
func (i *Input) SetBindings(b Bindings, pad prefabs.GamepadSpec) {
	*i = *NewInput(b, pad)
}

// Update polls ebiten. Call once per tick before the freecam update.
func (i *Input) Update() {
	i.Poll(ebitenSource{})
	if i.Quit {
		os.Exit(0)
	}
}

// Poll fills State and the shortcuts from src.
func (i *Input) Poll(src Source) {
	var in freecam.Input

	for c, keys := range i.bindings {
		for _, k := range keys {
			if src.KeyJustPressed(k) {
				in.Press(c)
				break
			}
		}
	}

	var lx, ly, rx, ry float32
	key := func(k ebiten.Key, v float32) float32 {
		if src.KeyPressed(k) {
			return v
		}
		return 0
	}
	s := i.pad.KeyStick
	lx = key(ebiten.KeyD, s) - key(ebiten.KeyA, s)
	ly = key(ebiten.KeyS, s) - key(ebiten.KeyW, s)
	rx = key(ebiten.KeyRight, s) - key(ebiten.KeyLeft, s)
	ry = key(ebiten.KeyDown, s) - key(ebiten.KeyUp, s)

	held := func(b freecam.Buttons, on bool) {
		if on {
			in.Held |= b
		}
	}
	held(freecam.ButtonLeftTrigger, src.KeyPressed(ebiten.KeyShiftLeft))
	held(freecam.ButtonRightTrigger, src.KeyPressed(ebiten.KeyControlLeft))
	held(freecam.ButtonLeftShoulder, src.KeyPressed(ebiten.KeyE))
	held(freecam.ButtonRightShoulder, src.KeyPressed(ebiten.KeyQ))
	held(freecam.ButtonDpadUp, src.KeyPressed(ebiten.KeyC))
	held(freecam.ButtonDpadDown, src.KeyPressed(ebiten.KeyZ))

	if pad, ok := src.Pad(); ok {
		if x, y := i.stick(pad.LeftX, pad.LeftY); x != 0 || y != 0 {
			lx, ly = x, y
		}
		if x, y := i.stick(pad.RightX, pad.RightY); x != 0 || y != 0 {
			rx, ry = x, y
		}
		held(freecam.ButtonLeftTrigger, pad.Buttons[ebiten.StandardGamepadButtonFrontBottomLeft])
		held(freecam.ButtonRightTrigger, pad.Buttons[ebiten.StandardGamepadButtonFrontBottomRight])
		held(freecam.ButtonLeftShoulder, pad.Buttons[ebiten.StandardGamepadButtonFrontTopLeft])
		held(freecam.ButtonRightShoulder, pad.Buttons[ebiten.StandardGamepadButtonFrontTopRight])
		held(freecam.ButtonDpadUp, pad.Buttons[ebiten.StandardGamepadButtonLeftTop])
		held(freecam.ButtonDpadDown, pad.Buttons[ebiten.StandardGamepadButtonLeftBottom])
	}

	in.LeftStick = mgl32.Vec2{lx, ly}
	in.RightStick = mgl32.Vec2{rx, ry}
	i.State = in

	i.ModeRequested = true
	switch {
	case src.KeyJustPressed(ebiten.KeyF1):
		i.Mode = ModeField
	case src.KeyJustPressed(ebiten.KeyF2):
		i.Mode = ModeEvent
	case src.KeyJustPressed(ebiten.KeyF3):
		i.Mode = ModeBattle
	default:
		i.ModeRequested = false
	}
	i.ToggleOverlay = src.KeyJustPressed(ebiten.KeyTab)
	i.Quit = src.KeyJustPressed(ebiten.KeyF12)
}

// stick applies the deadzone and scales to the raw pad range.
func (i *Input) stick(x, y float64) (float32, float32) {
	if math.Hypot(x, y) < float64(i.pad.Deadzone) {
		return 0, 0
	}
	return float32(x) * i.pad.StickScale, float32(y) * i.pad.StickScale
}

type ebitenSource struct{}

func (ebitenSource) KeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenSource) KeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

var padButtons = []ebiten.StandardGamepadButton{
	ebiten.StandardGamepadButtonFrontBottomLeft,
	ebiten.StandardGamepadButtonFrontBottomRight,
	ebiten.StandardGamepadButtonFrontTopLeft,
	ebiten.StandardGamepadButtonFrontTopRight,
	ebiten.StandardGamepadButtonLeftTop,
	ebiten.StandardGamepadButtonLeftBottom,
}

func (ebitenSource) Pad() (Pad, bool) {
	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return Pad{}, false
	}
	gid := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return Pad{}, false
	}
	p := Pad{
		LeftX:   ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal),
		LeftY:   ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical),
		RightX:  ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickHorizontal),
		RightY:  ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisRightStickVertical),
		Buttons: make(map[ebiten.StandardGamepadButton]bool, len(padButtons)),
	}
	for _, b := range padButtons {
		p.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(gid, b)
	}
	return p, true
}
