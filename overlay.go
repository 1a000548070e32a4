package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/freecam/freecam"
	"golang.org/x/image/font/basicfont"
)

const (
	fovStep   = 5
	scrubStep = 0.25
)

type keyframeEntry struct {
	Index int
	Pose  freecam.Pose
}

// Overlay is the debug panel for editing keyframes and driving playback.
type Overlay struct {
	ui      *ebitenui.UI
	visible bool

	g       *Game
	list    *widget.List
	status  *widget.Text
	name    *widget.TextInput
	pose    [6]*widget.TextInput
	fov     *widget.TextInput
	speed   *widget.TextInput
	entries []freecam.Pose
}

func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func newOverlayTheme(face *ebtext.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: face,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.White,
				Selected:            color.RGBA{255, 220, 120, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{60, 60, 90, 255},
				SelectedBackground:  color.RGBA{50, 50, 80, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{20, 20, 28, 220}),
				Mask: solidNineSlice(color.RGBA{20, 20, 28, 220}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.NRGBA{A: 200}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}),
				Hover:   solidNineSlice(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255}),
				Pressed: solidNineSlice(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}),
			},
			TextFace:  face,
			TextColor: &widget.ButtonTextColor{Idle: color.White},
		},
	}
}

// NewOverlay builds the freecam panel docked on the right edge. It starts
// hidden; Tab toggles it.
func NewOverlay(g *Game) *Overlay {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	o := &Overlay{g: g, ui: &ebitenui.UI{}}
	o.ui.PrimaryTheme = newOverlayTheme(&face)
	theme := o.ui.PrimaryTheme

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 12, Bottom: 12, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(360, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text("Freecam", &face, color.White),
	))
	o.status = widget.NewText(
		widget.TextOpts.Text("", &face, color.RGBA{200, 200, 200, 255}),
	)
	panel.AddChild(o.status)

	o.list = widget.NewList(
		widget.ListOpts.Entries([]any{}),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if entry, ok := e.(keyframeEntry); ok {
				return keyframeLabel(entry.Index, entry.Pose)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			entry, ok := args.Entry.(keyframeEntry)
			if !ok {
				return
			}
			g.setStatus(g.fc.Preview(entry.Index), "previewing node %d", entry.Index)
			o.fillPose(entry.Index)
		}),
	)
	panel.AddChild(o.list)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, &face, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}
	row := func(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
		c := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)))
		c.AddChild(children...)
		return c
	}
	input := func(width int) *widget.TextInput {
		return widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 24)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
				Disabled: solidNineSlice(color.RGBA{200, 200, 200, 255}),
			}),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 120},
				Caret:    color.Black,
			}),
			widget.TextInputOpts.Face(&face),
		)
	}
	selected := func() (int, bool) {
		sel, ok := o.list.SelectedEntry().(keyframeEntry)
		return sel.Index, ok
	}

	fc := g.fc
	panel.AddChild(row(
		button("Add", func() { fc.AddKeyframe() }),
		button("Remove", func() {
			if i, ok := selected(); ok {
				g.setStatus(fc.RemoveAt(i), "removed node %d", i)
				return
			}
			fc.RemoveLastKeyframe()
		}),
		button("Replace", func() {
			if i, ok := selected(); ok {
				g.setStatus(fc.ReplaceAt(i, fc.CurrentPose()), "replaced node %d", i)
				o.fillPose(i)
			}
		}),
		button("Clear", func() { fc.ClearKeyframes() }),
		button("Live", func() { fc.ExitPreview() }),
	))
	panel.AddChild(row(
		button("Play/Pause", func() { fc.TogglePlayback() }),
		button("Stop", func() { fc.StopPlayback(g.world) }),
		button("<<", func() { g.scrub(-scrubStep) }),
		button(">>", func() { g.scrub(scrubStep) }),
	))
	panel.AddChild(row(
		button("Time -", func() { fc.ChangePathDuration(true) }),
		button("Time +", func() { fc.ChangePathDuration(false) }),
		button("FOV -", func() { g.adjustFOV(-fovStep) }),
		button("FOV +", func() { g.adjustFOV(fovStep) }),
	))
	panel.AddChild(row(
		button("Speed -", func() { fc.ChangeSceneSpeed(true, g.world) }),
		button("Speed +", func() { fc.ChangeSceneSpeed(false, g.world) }),
		button("Lock", func() { fc.ToggleMovementLock() }),
		button("Freecam", func() { fc.Toggle() }),
	))
	panel.AddChild(row(
		button("Copy pose", func() { g.setStatus(g.copyPose(), "pose copied") }),
		button("Paste pose", func() { g.setStatus(g.pastePose(), "pose pasted as node %d", fc.Len()-1) }),
	))

	for i := range o.pose {
		o.pose[i] = input(72)
	}
	panel.AddChild(row(o.pose[0], o.pose[1], o.pose[2], button("Set pos", func() {
		i, ok := selected()
		if !ok {
			g.setStatus(nil, "select a node first")
			return
		}
		g.setStatus(g.setKeyframeTranslation(i, o.pose[0].GetText(), o.pose[1].GetText(), o.pose[2].GetText()), "moved node %d", i)
		o.fillPose(i)
	})))
	panel.AddChild(row(o.pose[3], o.pose[4], o.pose[5], button("Set rot", func() {
		i, ok := selected()
		if !ok {
			g.setStatus(nil, "select a node first")
			return
		}
		g.setStatus(g.setKeyframeEuler(i, o.pose[3].GetText(), o.pose[4].GetText(), o.pose[5].GetText()), "rotated node %d", i)
		o.fillPose(i)
	})))

	o.fov = input(80)
	o.speed = input(80)
	panel.AddChild(row(
		o.fov,
		button("Set FOV", func() {
			v, err := g.setFOV(o.fov.GetText())
			g.setStatus(err, "fov %.0f", v)
		}),
		o.speed,
		button("Set speed", func() {
			v, err := g.setSceneSpeed(o.speed.GetText())
			g.setStatus(err, "speed %.2fx", v)
		}),
	))

	o.name = input(336)
	panel.AddChild(o.name)
	panel.AddChild(row(
		button("Save file", func() {
			path, err := g.savePathFile(o.name.GetText())
			g.setStatus(err, "saved %s", path)
		}),
		button("Load file", func() {
			path, err := g.loadPathFile(o.name.GetText())
			g.setStatus(err, "loaded %s", path)
		}),
		button("Save slot", func() {
			name := strings.TrimSpace(o.name.GetText())
			g.setStatus(g.saveSlot(name), "saved slot %s", name)
		}),
		button("Load slot", func() {
			name := strings.TrimSpace(o.name.GetText())
			g.setStatus(g.loadSlot(name), "loaded slot %s", name)
		}),
	))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	o.ui.Container = root
	return o
}

func (o *Overlay) Toggle() {
	o.visible = !o.visible
}

func (o *Overlay) Visible() bool { return o.visible }

// Update refreshes the list and status, then runs the UI while shown.
func (o *Overlay) Update() {
	if o == nil || !o.visible {
		return
	}
	o.refresh()
	o.ui.Update()
}

func (o *Overlay) refresh() {
	keys := o.g.fc.Keyframes()
	if !samePoses(keys, o.entries) {
		entries := make([]any, len(keys))
		for i, k := range keys {
			entries[i] = keyframeEntry{Index: i, Pose: k}
		}
		o.list.SetEntries(entries)
		o.entries = keys
	}
	o.status.Label = strings.Join(o.g.statusLines(), "\n")
}

// fillPose loads node i into the position and rotation inputs.
func (o *Overlay) fillPose(i int) {
	fields, err := o.g.keyframeFields(i)
	if err != nil {
		return
	}
	for j, in := range o.pose {
		in.SetText(fields[j])
	}
}

func samePoses(a, b []freecam.Pose) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.visible {
		return
	}
	o.ui.Draw(screen)
}
