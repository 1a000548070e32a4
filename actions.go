package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/freecam"
	"github.com/milk9111/freecam/obj"
	"github.com/milk9111/freecam/pathstore"
	"github.com/milk9111/freecam/prefabs"
	"golang.design/x/clipboard"
)

// Clipboard is the text clipboard used to copy and paste poses.
type Clipboard interface {
	Read() []byte
	Write(data []byte)
}

type systemClipboard struct{}

func (systemClipboard) Read() []byte      { return clipboard.Read(clipboard.FmtText) }
func (systemClipboard) Write(data []byte) { clipboard.Write(clipboard.FmtText, data) }

// memClipboard stands in when the system clipboard is unavailable.
type memClipboard struct {
	data []byte
}

func (m *memClipboard) Read() []byte      { return m.data }
func (m *memClipboard) Write(data []byte) { m.data = append(m.data[:0], data...) }

func newClipboard() Clipboard {
	if err := clipboard.Init(); err != nil {
		log.Printf("freecam: clipboard unavailable, using in-memory copy: %v", err)
		return &memClipboard{}
	}
	return systemClipboard{}
}

// setStatus records the overlay status line and logs failures once.
func (g *Game) setStatus(err error, format string, args ...any) {
	if err != nil {
		g.status = fmt.Sprintf("error: %v", err)
		log.Printf("freecam: %v", err)
		return
	}
	g.status = fmt.Sprintf(format, args...)
}

func (g *Game) copyPose() error {
	data, err := pathstore.MarshalPose(g.fc.CurrentPose())
	if err != nil {
		return fmt.Errorf("copy pose: %w", err)
	}
	g.clip.Write(data)
	return nil
}

// pastePose appends the clipboard pose as a new keyframe.
func (g *Game) pastePose() error {
	p, err := pathstore.UnmarshalPose(g.clip.Read())
	if err != nil {
		return fmt.Errorf("paste pose: %w", err)
	}
	g.fc.AppendKeyframe(p)
	return nil
}

func pathFileName(name string) string {
	name = strings.TrimSpace(name)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return name
	}
	return pathstore.WithExt(name)
}

func (g *Game) savePathFile(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("save path: no file name")
	}
	path := pathFileName(name)
	p := pathstore.Path{Poses: g.fc.Keyframes(), Duration: g.fc.PathDuration()}
	if err := pathstore.SavePath(path, p); err != nil {
		return "", err
	}
	return path, nil
}

// loadPathFile replaces the keyframes and, when the file records one, the
// path duration. A failed load leaves both untouched.
func (g *Game) loadPathFile(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("load path: no file name")
	}
	path := pathFileName(name)
	p, err := pathstore.LoadPath(path)
	if err != nil {
		return "", err
	}
	g.fc.SetKeyframes(p.Poses)
	if p.Duration > 0 {
		g.fc.SetPathDuration(p.Duration)
	}
	return path, nil
}

func (g *Game) saveSlot(name string) error {
	if g.slots == nil {
		return fmt.Errorf("save slot: slots unavailable")
	}
	return g.slots.Save(strings.TrimSpace(name), g.fc.Keyframes())
}

func (g *Game) loadSlot(name string) error {
	if g.slots == nil {
		return fmt.Errorf("load slot: slots unavailable")
	}
	poses, err := g.slots.Load(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	g.fc.SetKeyframes(poses)
	return nil
}

// applyFreecamSpec pushes tuning and bindings from spec into the running
// freecam and input.
func (g *Game) applyFreecamSpec(spec *prefabs.FreecamSpec) {
	g.fc.SetTuning(spec.FreecamTuning())
	g.fc.SetVerbose(spec.Verbose || g.debug)

	names, unknown := spec.ControlBindings()
	for _, name := range unknown {
		log.Printf("freecam: unknown control %q in %s", name, prefabs.FreecamFile)
	}
	bindings, bad := obj.ParseBindings(names)
	for _, b := range bad {
		log.Printf("freecam: unknown key binding %s", b)
	}
	if g.input == nil {
		g.input = obj.NewInput(bindings, spec.Gamepad)
		return
	}
	g.input.SetBindings(bindings, spec.Gamepad)
}

// handleChanges reacts to hot-reload events from the prefab watcher.
func (g *Game) handleChanges(changes []prefabs.Change) {
	for _, ch := range changes {
		switch ch.Kind {
		case prefabs.SpecChanged:
			if ch.Name() != prefabs.FreecamFile {
				continue
			}
			spec, err := prefabs.LoadFreecamSpec()
			if err != nil {
				g.setStatus(err, "")
				continue
			}
			g.applyFreecamSpec(spec)
			g.setStatus(nil, "reloaded %s", ch.Name())
		case prefabs.ScriptChanged:
			name := strings.TrimSuffix(ch.Name(), filepath.Ext(ch.Name()))
			if g.world.Cutscene == nil || g.world.Cutscene.Name != name {
				continue
			}
			if err := g.world.ReloadCutscene(name); err != nil {
				g.setStatus(err, "")
				continue
			}
			g.setStatus(nil, "reloaded cutscene %s", name)
		}
	}
}

// adjustFOV nudges the live camera FOV within the freecam range.
func (g *Game) adjustFOV(delta float32) float32 {
	cam, ok := g.world.SceneCamera()
	if !ok {
		return 0
	}
	return g.fc.SetFOV(cam, cam.FOV()+delta)
}

// setFOV applies a typed FOV in degrees and returns the clamped value.
func (g *Game) setFOV(text string) (float32, error) {
	v, err := parseFloat("fov", text)
	if err != nil {
		return 0, err
	}
	cam, ok := g.world.SceneCamera()
	if !ok {
		return 0, fmt.Errorf("fov: no scene camera")
	}
	return g.fc.SetFOV(cam, v), nil
}

// setSceneSpeed applies a typed scene speed multiplier.
func (g *Game) setSceneSpeed(text string) (float32, error) {
	v, err := parseFloat("speed", text)
	if err != nil {
		return 0, err
	}
	if !g.fc.SetSceneSpeed(v, g.world) {
		return 0, fmt.Errorf("speed: no scene clock")
	}
	speed, _ := g.fc.SceneSpeed(g.world)
	return speed, nil
}

// keyframeFields formats node i as x, y, z, yaw, pitch, roll for editing.
func (g *Game) keyframeFields(i int) ([6]string, error) {
	var out [6]string
	k, err := g.fc.Keyframe(i)
	if err != nil {
		return out, err
	}
	yaw, pitch, roll, err := g.fc.KeyframeEuler(i)
	if err != nil {
		return out, err
	}
	for j, v := range []float32{k.Position[0], k.Position[1], k.Position[2], yaw, pitch, roll} {
		out[j] = strconv.FormatFloat(float64(v), 'f', 3, 32)
	}
	return out, nil
}

// setKeyframeTranslation moves node i to the typed x, y, z.
func (g *Game) setKeyframeTranslation(i int, x, y, z string) error {
	v, err := parseVec3("position", x, y, z)
	if err != nil {
		return err
	}
	return g.fc.SetKeyframeTranslation(i, v)
}

// setKeyframeEuler turns node i to the typed yaw, pitch, roll in radians.
func (g *Game) setKeyframeEuler(i int, yaw, pitch, roll string) error {
	v, err := parseVec3("rotation", yaw, pitch, roll)
	if err != nil {
		return err
	}
	return g.fc.SetKeyframeEuler(i, v[0], v[1], v[2])
}

func parseFloat(field, text string) (float32, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q is not a finite number", field, text)
	}
	return float32(v), nil
}

func parseVec3(field string, a, b, c string) (mgl32.Vec3, error) {
	var v mgl32.Vec3
	for i, text := range []string{a, b, c} {
		f, err := parseFloat(field, text)
		if err != nil {
			return mgl32.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}

func (g *Game) scrub(delta float32) {
	g.fc.Scrub(g.fc.PathElapsed()+delta, g.world)
}

// statusLines summarizes freecam state for the overlay.
func (g *Game) statusLines() []string {
	fc := g.fc
	speed, _ := fc.SceneSpeed(g.world)
	lines := []string{
		fmt.Sprintf("mode %s  game %s  locked %v", fc.Mode(), g.world.Mode(), fc.MovementLocked()),
		fmt.Sprintf("keys %d  path %.2fs  t %.2fs (%.0f%%)", fc.Len(), fc.PathDuration(), fc.PathElapsed(), fc.PathPercent()*100),
		fmt.Sprintf("speed %.2fx  fov %.0f", speed, g.world.Camera().FOV()),
	}
	if i, ok := fc.PreviewIndex(); ok {
		lines = append(lines, fmt.Sprintf("previewing node %d", i))
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}
	return lines
}

func keyframeLabel(i int, p freecam.Pose) string {
	yaw, pitch, roll := p.Euler()
	return fmt.Sprintf("%d. (%.0f, %.0f, %.0f) y%.2f p%.2f r%.2f",
		i, p.Position.X(), p.Position.Y(), p.Position.Z(), yaw, pitch, roll)
}
