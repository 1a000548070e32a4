package obj

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/freecam"
	"github.com/milk9111/freecam/prefabs"
)

// CommandGate decides whether a cutscene camera command may run. A refused
// command is still reported to the script as handled.
type CommandGate func(freecam.EventCommand) bool

const cutsceneDispatchScript = `
if __phase == "update" {
	update(__camera, __time)
}
`

// Cutscene runs a tengo script whose update(camera, time) issues event
// camera commands every frame.
type Cutscene struct {
	Name string

	compiled *tengo.Compiled
	time     float64

	// per-frame command tallies, for the HUD
	Ran       int
	Swallowed int
}

func LoadCutscene(name string) (*Cutscene, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("cutscene %s: %w", name, err)
	}
	return NewCutscene(name, src)
}

func NewCutscene(name string, src []byte) (*Cutscene, error) {
	script := tengo.NewScript([]byte(string(src) + "\n" + cutsceneDispatchScript))
	_ = script.Add("__phase", "")
	_ = script.Add("__camera", map[string]any{})
	_ = script.Add("__time", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("cutscene %s: compile: %w", name, err)
	}
	c := &Cutscene{Name: name, compiled: compiled}
	if err := c.run("noop", &tengo.ImmutableMap{Value: map[string]tengo.Object{}}); err != nil {
		return nil, fmt.Errorf("cutscene %s: %w", name, err)
	}
	if !compiled.IsDefined("update") {
		return nil, fmt.Errorf("cutscene %s: no update function", name)
	}
	return c, nil
}

// Time is the cutscene clock in seconds.
func (c *Cutscene) Time() float64 { return c.time }

// Update advances the clock by dt and runs the script once.
func (c *Cutscene) Update(dt float32, cam *EventCamera, field *Camera, gate CommandGate) error {
	if c == nil || c.compiled == nil || cam == nil {
		return nil
	}
	c.time += float64(dt)
	c.Ran, c.Swallowed = 0, 0
	return c.run("update", c.engine(cam, field, gate))
}

func (c *Cutscene) run(phase string, camera *tengo.ImmutableMap) error {
	if err := c.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := c.compiled.Set("__camera", camera); err != nil {
		return err
	}
	if err := c.compiled.Set("__time", c.time); err != nil {
		return err
	}
	return c.compiled.Run()
}

func (c *Cutscene) engine(cam *EventCamera, field *Camera, gate CommandGate) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	command := func(name string, cmd freecam.EventCommand, minArgs int, fn func(args []tengo.Object) bool) {
		values[name] = &tengo.UserFunction{Name: name, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < minArgs {
				return tengo.FalseValue, nil
			}
			if gate != nil && !gate(cmd) {
				c.Swallowed++
				return tengo.TrueValue, nil
			}
			c.Ran++
			if !fn(args) {
				return tengo.FalseValue, nil
			}
			return tengo.TrueValue, nil
		}}
	}

	command("move_direct", freecam.EventCameraMoveDirect, 3, func(args []tengo.Object) bool {
		cam.MoveDirect(objectAsVec3(args))
		return true
	})
	command("look_at", freecam.EventCameraMoveDirect, 3, func(args []tengo.Object) bool {
		cam.LookAtTarget(objectAsVec3(args))
		return true
	})
	command("set_direct", freecam.EventCameraSetDirect, 6, func(args []tengo.Object) bool {
		cam.SetDirect(objectAsVec3(args[:3]), objectAsVec3(args[3:6]))
		return true
	})
	command("set_asset", freecam.EventCameraSetAsset, 1, func(args []tengo.Object) bool {
		return cam.SetAsset(strings.TrimSpace(objectAsString(args[0])))
	})
	command("shake", freecam.EventCameraShake, 1, func(args []tengo.Object) bool {
		cam.Shake(objectAsFloat(args[0]))
		return true
	})
	command("set_field", freecam.EventCameraSetField, 0, func(args []tengo.Object) bool {
		cam.SetField(field)
		return field != nil
	})
	command("fov", freecam.EventCameraOther, 1, func(args []tengo.Object) bool {
		cam.SetFOV(objectAsFloat(args[0]))
		return true
	})

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}

func objectAsFloat(obj tengo.Object) float32 {
	switch v := obj.(type) {
	case *tengo.Float:
		return float32(v.Value)
	case *tengo.Int:
		return float32(v.Value)
	default:
		return 0
	}
}

func objectAsVec3(args []tengo.Object) mgl32.Vec3 {
	var out mgl32.Vec3
	for i := 0; i < 3 && i < len(args); i++ {
		out[i] = objectAsFloat(args[i])
	}
	return out
}
