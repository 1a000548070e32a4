package obj

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// Draw renders the arena shapes in perspective through cam.
func (a *Arena) Draw(screen *ebiten.Image, cam *Camera, ball color.Color) {
	if a == nil || a.space == nil || screen == nil || cam == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cp.DrawSpace(a.space, &arenaDrawer{
		screen: screen,
		arena:  a,
		vp:     cam.ViewProjection(),
		w:      w,
		h:      h,
		ball:   ball,
	})
}

type arenaDrawer struct {
	screen *ebiten.Image
	arena  *Arena
	vp     mgl32.Mat4
	w, h   int
	ball   color.Color
}

func (d *arenaDrawer) line(a, b mgl32.Vec3, c color.Color) {
	strokeProjected(d.screen, d.vp, d.w, d.h, a, b, 1, c)
}

// DrawLine strokes the world segment a-b through cam. Segments with an end
// behind the near plane are skipped.
func DrawLine(screen *ebiten.Image, cam *Camera, a, b mgl32.Vec3, width float32, c color.Color) {
	if screen == nil || cam == nil {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	strokeProjected(screen, cam.ViewProjection(), w, h, a, b, width, c)
}

// DrawGrid draws floor lines every step units between lo and hi on y = 0.
func DrawGrid(screen *ebiten.Image, cam *Camera, lo, hi mgl32.Vec3, step float32, c color.Color) {
	if screen == nil || cam == nil || step <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := cam.ViewProjection()
	for x := lo.X(); x <= hi.X(); x += step {
		strokeProjected(screen, vp, w, h, mgl32.Vec3{x, 0, lo.Z()}, mgl32.Vec3{x, 0, hi.Z()}, 1, c)
	}
	for z := lo.Z(); z <= hi.Z(); z += step {
		strokeProjected(screen, vp, w, h, mgl32.Vec3{lo.X(), 0, z}, mgl32.Vec3{hi.X(), 0, z}, 1, c)
	}
}

func strokeProjected(screen *ebiten.Image, vp mgl32.Mat4, w, h int, a, b mgl32.Vec3, width float32, c color.Color) {
	ax, ay, ok := projectWith(vp, w, h, a)
	if !ok {
		return
	}
	bx, by, ok := projectWith(vp, w, h, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, ax, ay, bx, by, width, c, true)
}

func (d *arenaDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	var c color.Color = fcolorToRGBA(outline)
	if d.ball != nil {
		c = d.ball
	}
	y := d.arena.radius
	steps := 16
	prev := d.arena.toWorld(cp.Vector{X: pos.X + radius, Y: pos.Y}, y)
	for i := 1; i <= steps; i++ {
		th := float64(i) * (2 * math.Pi / float64(steps))
		cur := d.arena.toWorld(cp.Vector{X: pos.X + math.Cos(th)*radius, Y: pos.Y + math.Sin(th)*radius}, y)
		d.line(prev, cur, c)
		prev = cur
	}
	// spoke shows the body angle
	tip := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.line(d.arena.toWorld(pos, y), d.arena.toWorld(tip, y), c)
}

func (d *arenaDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(d.arena.toWorld(a, 0), d.arena.toWorld(b, 0), fcolorToRGBA(fill))
}

// DrawFatSegment draws walls as a low fence.
func (d *arenaDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	top := 2 * d.arena.radius
	d.line(d.arena.toWorld(a, 0), d.arena.toWorld(b, 0), c)
	d.line(d.arena.toWorld(a, top), d.arena.toWorld(b, top), c)
	d.line(d.arena.toWorld(a, 0), d.arena.toWorld(a, top), c)
}

func (d *arenaDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		j := (i + 1) % count
		d.line(d.arena.toWorld(verts[i], 0), d.arena.toWorld(verts[j], 0), c)
	}
}

func (d *arenaDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	p := d.arena.toWorld(pos, 0)
	l := float32(size / 2)
	c := fcolorToRGBA(fill)
	d.line(p.Sub(mgl32.Vec3{l, 0, 0}), p.Add(mgl32.Vec3{l, 0, 0}), c)
	d.line(p.Sub(mgl32.Vec3{0, 0, l}), p.Add(mgl32.Vec3{0, 0, l}), c)
}

func (d *arenaDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *arenaDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *arenaDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	}
	return cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
}

func (d *arenaDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *arenaDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *arenaDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	clamp := func(v float32) uint8 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
