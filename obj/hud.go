package obj

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUDElement is one piece of native game HUD.
type HUDElement struct {
	Name string
	X, Y float64
	Text func(w *World) string
}

// HUD is the native overlay the freecam hides while it owns the camera.
type HUD struct {
	Visible  bool
	Elements []HUDElement
	face     ebtext.Face
}

func NewHUD() *HUD {
	return &HUD{
		Visible: true,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		Elements: []HUDElement{
			{Name: "panel_map", X: 1100, Y: 20, Text: func(w *World) string { return "[map]" }},
			{Name: "date", X: 20, Y: 20, Text: func(w *World) string { return fmt.Sprintf("Day %d", 1+int(w.Elapsed()/60)) }},
			{Name: "mission_list", X: 20, Y: 44, Text: func(w *World) string { return "> Watch the balls" }},
			{Name: "party_panel", X: 1100, Y: 640, Text: func(w *World) string { return w.Mode().String() }},
			{Name: "roadmap", X: 20, Y: 640, Text: func(w *World) string { return "F1 field  F2 event  F3 battle" }},
			{Name: "coin_counter", X: 1100, Y: 44, Text: func(w *World) string { return fmt.Sprintf("%d coins", w.Bounces()) }},
		},
	}
}

// Lines returns the text of every element, for tests and logging.
func (h *HUD) Lines(w *World) []string {
	if h == nil || !h.Visible {
		return nil
	}
	out := make([]string, 0, len(h.Elements))
	for _, e := range h.Elements {
		out = append(out, e.Text(w))
	}
	return out
}

func (h *HUD) Draw(screen *ebiten.Image, w *World) {
	if h == nil || !h.Visible {
		return
	}
	for _, e := range h.Elements {
		s := e.Text(w)
		width, height := ebtext.Measure(s, h.face, 0)
		vector.FillRect(screen, float32(e.X-4), float32(e.Y-2), float32(width+8), float32(height+4), color.RGBA{A: 160}, false)
		op := &ebtext.DrawOptions{}
		op.GeoM.Translate(e.X, e.Y)
		op.ColorScale.ScaleWithColor(color.White)
		ebtext.Draw(screen, s, h.face, op)
	}
}
