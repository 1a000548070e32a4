package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/freecam/common"
	"github.com/milk9111/freecam/freecam"
	"github.com/milk9111/freecam/obj"
	"github.com/milk9111/freecam/pathstore"
	"github.com/milk9111/freecam/prefabs"
)

// pathSegments is how finely the keyframe curve is drawn.
const pathSegments = 64

type Options struct {
	Debug    bool
	Mode     obj.Mode
	PathFile string
	Watch    bool
}

type palette struct {
	background color.Color
	grid       color.Color
	ball       color.Color
	path       color.Color
	keyframe   color.Color
}

type Game struct {
	frames int
	debug  bool

	fc         *freecam.Freecam
	world      *obj.World
	input      *obj.Input
	transition *obj.Transition
	overlay    *Overlay
	watcher    *prefabs.Watcher
	slots      *pathstore.Slots
	clip       Clipboard
	colors     palette

	status string
}

func NewGame(fcSpec *prefabs.FreecamSpec, sbSpec *prefabs.SandboxSpec, opts Options) (*Game, error) {
	world, err := obj.NewWorld(sbSpec, common.BaseWidth, common.BaseHeight)
	if err != nil {
		return nil, err
	}
	world.SetMode(opts.Mode)

	g := &Game{
		debug:      opts.Debug,
		world:      world,
		transition: obj.NewTransition(),
		clip:       newClipboard(),
		colors: palette{
			background: sbSpec.Palette.Background.Or(color.RGBA{16, 16, 24, 255}),
			grid:       sbSpec.Palette.Grid.Or(color.RGBA{42, 42, 64, 255}),
			ball:       sbSpec.Palette.Ball.Or(color.RGBA{224, 176, 64, 255}),
			path:       sbSpec.Palette.Path.Or(color.RGBA{64, 192, 224, 255}),
			keyframe:   sbSpec.Palette.Keyframe.Or(color.RGBA{240, 64, 96, 255}),
		},
	}
	g.fc = freecam.New(freecam.Config{Lock: world})
	g.applyFreecamSpec(fcSpec)
	g.transition.OnSwitch = world.SetMode

	if slots, err := pathstore.OpenSlots(sbSpec.SlotsApp); err != nil {
		log.Printf("freecam: path slots disabled: %v", err)
	} else {
		g.slots = slots
	}

	if opts.PathFile != "" {
		path, err := g.loadPathFile(opts.PathFile)
		g.setStatus(err, "loaded %s", path)
	}

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.ScriptDir)
		if err != nil {
			log.Printf("freecam: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.overlay = NewOverlay(g)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	dt := float32(1) / float32(ebiten.TPS())

	g.input.Update()
	if g.watcher != nil {
		g.handleChanges(g.watcher.Poll())
	}
	if g.input.ToggleOverlay {
		g.overlay.Toggle()
	}
	if g.input.ModeRequested && g.input.Mode != g.world.Mode() {
		g.transition.Enter(g.input.Mode)
	}
	g.transition.Update()

	g.fc.Update(dt, g.input.State, g.world)
	g.world.Update(dt, g.fc)

	g.overlay.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.colors.background)

	cam := g.world.Camera()
	lo, hi := g.world.Arena.Bounds()
	obj.DrawGrid(screen, cam, lo, hi, 50, g.colors.grid)
	g.world.Arena.Draw(screen, cam, g.colors.ball)
	g.drawPath(screen, cam)

	g.world.HUD.Draw(screen, g.world)
	g.transition.Draw(screen)
	g.overlay.Draw(screen)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    freecam: %s", g.frames, ebiten.ActualFPS(), g.fc.Mode()), 0, common.BaseHeight-16)
	}
}

// drawPath draws the keyframe curve and a marker with a view tick per node.
func (g *Game) drawPath(screen *ebiten.Image, cam *obj.Camera) {
	keys := g.fc.Keyframes()
	if len(keys) == 0 {
		return
	}
	if len(keys) > 1 {
		prev, _ := freecam.Interpolate(keys, 0)
		for i := 1; i <= pathSegments; i++ {
			next, _ := freecam.Interpolate(keys, float32(i)/pathSegments)
			obj.DrawLine(screen, cam, prev.Position, next.Position, 2, g.colors.path)
			prev = next
		}
	}
	for _, k := range keys {
		p := k.Position
		for _, axis := range []mgl32.Vec3{{4, 0, 0}, {0, 4, 0}, {0, 0, 4}} {
			obj.DrawLine(screen, cam, p.Sub(axis), p.Add(axis), 2, g.colors.keyframe)
		}
		obj.DrawLine(screen, cam, p, p.Add(poseForward(k).Mul(20)), 1, g.colors.keyframe)
	}
}

// poseForward is the view direction of a freecam pose.
func poseForward(p freecam.Pose) mgl32.Vec3 {
	yaw, pitch, _ := p.Euler()
	sy, cy := math.Sincos(float64(yaw))
	sp, cp := math.Sincos(float64(pitch))
	return mgl32.Vec3{float32(sy * cp), float32(-sp), float32(cy * cp)}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
