package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transition fades to black, switches game mode, then fades back in.
type Transition struct {
	Active   bool
	Phase    int // 1: fade-out, 2: fade-in
	Frames   int
	Duration int
	Target   Mode
	overlay  *ebiten.Image
	// OnSwitch runs at the darkest frame.
	OnSwitch func(target Mode)
}

func NewTransition() *Transition {
	return &Transition{Duration: 15}
}

// Enter starts a transition to target. It is ignored while one is running.
func (t *Transition) Enter(target Mode) {
	if t.Active {
		return
	}
	t.Active = true
	t.Phase = 1
	t.Frames = 0
	t.Target = target
}

// Update advances the transition and reports whether it is still running.
func (t *Transition) Update() bool {
	if !t.Active {
		return false
	}
	t.Frames++
	switch t.Phase {
	case 1:
		if t.Frames >= t.Duration {
			if t.OnSwitch != nil {
				t.OnSwitch(t.Target)
			}
			t.Phase = 2
			t.Frames = 0
		}
	case 2:
		if t.Frames >= t.Duration {
			t.Active = false
			t.Phase = 0
			t.Frames = 0
		}
	}
	return t.Active
}

// Alpha is the overlay opacity for the current frame.
func (t *Transition) Alpha() float32 {
	if !t.Active || t.Duration <= 0 {
		return 0
	}
	a := float32(t.Frames) / float32(t.Duration)
	if a > 1 {
		a = 1
	}
	if t.Phase == 2 {
		a = 1 - a
	}
	return a
}

func (t *Transition) Draw(screen *ebiten.Image) {
	alpha := t.Alpha()
	if alpha <= 0 {
		return
	}
	if t.overlay == nil {
		t.overlay = ebiten.NewImage(1, 1)
		t.overlay.Fill(color.Black)
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(t.overlay, op)
}
