package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/freecam/freecam"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

const (
	FreecamFile = "freecam.yaml"
	SandboxFile = "sandbox.yaml"
)

type FreecamSpec struct {
	Verbose       bool                `yaml:"verbose"`
	Tuning        TuningSpec          `yaml:"tuning"`
	Path          PathTimingSpec      `yaml:"path"`
	FrequencyStep float32             `yaml:"frequency_step"`
	FOV           RangeSpec           `yaml:"fov"`
	Gamepad       GamepadSpec         `yaml:"gamepad"`
	Bindings      map[string][]string `yaml:"bindings"`
}

type TuningSpec struct {
	PanDivisor   float32      `yaml:"pan_divisor"`
	MoveDivisor  float32      `yaml:"move_divisor"`
	Precise      ModifierSpec `yaml:"precise"`
	Careful      ModifierSpec `yaml:"careful"`
	RollStep     float32      `yaml:"roll_step"`
	VerticalStep float32      `yaml:"vertical_step"`
	LookDistance float32      `yaml:"look_distance"`
}

type ModifierSpec struct {
	Pan  float32 `yaml:"pan"`
	Move float32 `yaml:"move"`
}

type PathTimingSpec struct {
	Duration float32 `yaml:"duration"`
	Step     float32 `yaml:"step"`
}

type RangeSpec struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

// GamepadSpec scales normalized pad axes to the raw stick range the motion
// mapper expects. Axis values inside Deadzone read as zero. KeyStick is the
// stick magnitude the keyboard fallback produces.
type GamepadSpec struct {
	StickScale float32 `yaml:"stick_scale"`
	Deadzone   float32 `yaml:"deadzone"`
	KeyStick   float32 `yaml:"key_stick"`
}

func LoadFreecamSpec() (*FreecamSpec, error) {
	spec, err := LoadSpec[FreecamSpec](FreecamFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// FreecamTuning maps the spec onto freecam.Tuning. Missing values keep their
// defaults.
func (s *FreecamSpec) FreecamTuning() freecam.Tuning {
	t := freecam.DefaultTuning()
	if s == nil {
		return t
	}
	set := func(dst *float32, v float32) {
		if v > 0 {
			*dst = v
		}
	}
	set(&t.PanDivisor, s.Tuning.PanDivisor)
	set(&t.MoveDivisor, s.Tuning.MoveDivisor)
	set(&t.Precise.Pan, s.Tuning.Precise.Pan)
	set(&t.Precise.Move, s.Tuning.Precise.Move)
	set(&t.Careful.Pan, s.Tuning.Careful.Pan)
	set(&t.Careful.Move, s.Tuning.Careful.Move)
	set(&t.RollStep, s.Tuning.RollStep)
	set(&t.VerticalStep, s.Tuning.VerticalStep)
	set(&t.LookDistance, s.Tuning.LookDistance)
	set(&t.PathDuration, s.Path.Duration)
	set(&t.PathStep, s.Path.Step)
	set(&t.FrequencyStep, s.FrequencyStep)
	set(&t.FOVMin, s.FOV.Min)
	set(&t.FOVMax, s.FOV.Max)
	if t.FOVMin > t.FOVMax {
		t.FOVMin, t.FOVMax = t.FOVMax, t.FOVMin
	}
	return t
}

// ControlBindings resolves binding names to freecam controls. Unknown names
// are returned separately so the caller can log them.
func (s *FreecamSpec) ControlBindings() (map[freecam.Control][]string, []string) {
	out := make(map[freecam.Control][]string)
	var unknown []string
	if s == nil {
		return out, nil
	}
	for name, keys := range s.Bindings {
		c, ok := freecam.ParseControl(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		out[c] = append(out[c], keys...)
	}
	return out, unknown
}

type SandboxSpec struct {
	Scene    SceneSpec   `yaml:"scene"`
	Field    OrbitSpec   `yaml:"field"`
	Battle   OrbitSpec   `yaml:"battle"`
	Event    EventSpec   `yaml:"event"`
	Palette  PaletteSpec `yaml:"palette"`
	SlotsApp string      `yaml:"slots_app"`
}

type SceneSpec struct {
	Balls      int     `yaml:"balls"`
	BallRadius float64 `yaml:"ball_radius"`
	Width      float64 `yaml:"width"`
	Depth      float64 `yaml:"depth"`
	Gravity    float64 `yaml:"gravity"`
	Elasticity float64 `yaml:"elasticity"`
	Iterations int     `yaml:"iterations"`
	Seed       int64   `yaml:"seed"`
}

// OrbitSpec describes a native camera circling a target.
type OrbitSpec struct {
	Radius float32    `yaml:"radius"`
	Height float32    `yaml:"height"`
	Speed  float32    `yaml:"speed"`
	FOV    float32    `yaml:"fov"`
	Target [3]float32 `yaml:"target,flow"`
	Roll   float32    `yaml:"roll"`
}

type EventSpec struct {
	Script string  `yaml:"script"`
	FOV    float32 `yaml:"fov"`
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Grid       *YAMLColor `yaml:"grid"`
	Ball       *YAMLColor `yaml:"ball"`
	Path       *YAMLColor `yaml:"path"`
	Keyframe   *YAMLColor `yaml:"keyframe"`
}

func LoadSandboxSpec() (*SandboxSpec, error) {
	spec, err := LoadSpec[SandboxSpec](SandboxFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Or returns c, or fallback when c was not set in yaml.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
