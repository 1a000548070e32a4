package pathstore

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/freecam/freecam"
	"gopkg.in/yaml.v3"
)

// PoseSpec is the editable form of a pose. Angles are in radians and use the
// same yaw, pitch, roll convention as freecam.PoseFromEuler. When Quat is set
// it wins over the angles.
type PoseSpec struct {
	X     float32     `yaml:"x"`
	Y     float32     `yaml:"y"`
	Z     float32     `yaml:"z"`
	Yaw   float32     `yaml:"yaw"`
	Pitch float32     `yaml:"pitch"`
	Roll  float32     `yaml:"roll"`
	Quat  *[4]float32 `yaml:"quat,omitempty,flow"`
}

// PathSpec is the yaml document form of a path file.
type PathSpec struct {
	Duration float32    `yaml:"duration,omitempty"`
	Nodes    []PoseSpec `yaml:"nodes"`
}

func NewPoseSpec(p freecam.Pose) PoseSpec {
	yaw, pitch, roll := p.Euler()
	q := p.Orientation
	return PoseSpec{
		X:     p.Position[0],
		Y:     p.Position[1],
		Z:     p.Position[2],
		Yaw:   yaw,
		Pitch: pitch,
		Roll:  roll,
		Quat:  &[4]float32{q.V[0], q.V[1], q.V[2], q.W},
	}
}

func (s PoseSpec) Pose() freecam.Pose {
	pos := mgl32.Vec3{s.X, s.Y, s.Z}
	if s.Quat != nil {
		q := s.Quat
		return freecam.NewPose(pos, mgl32.Quat{W: q[3], V: mgl32.Vec3{q[0], q[1], q[2]}})
	}
	return freecam.PoseFromEuler(pos, s.Yaw, s.Pitch, s.Roll)
}

func MarshalYAML(poses []freecam.Pose) ([]byte, error) {
	return MarshalPathSpec(PathSpec{Nodes: poseSpecs(poses)})
}

// MarshalPath renders p as a path document, duration included.
func MarshalPath(p Path) ([]byte, error) {
	return MarshalPathSpec(PathSpec{Duration: p.Duration, Nodes: poseSpecs(p.Poses)})
}

func MarshalPathSpec(doc PathSpec) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("pathstore: marshal yaml: %w", err)
	}
	return data, nil
}

func UnmarshalYAML(data []byte) ([]freecam.Pose, error) {
	doc, err := UnmarshalPathSpec(data)
	if err != nil {
		return nil, err
	}
	return doc.Poses(), nil
}

func (doc PathSpec) Poses() []freecam.Pose {
	poses := make([]freecam.Pose, len(doc.Nodes))
	for i, n := range doc.Nodes {
		poses[i] = n.Pose()
	}
	return poses
}

func UnmarshalPathSpec(data []byte) (PathSpec, error) {
	var doc PathSpec
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return PathSpec{}, fmt.Errorf("pathstore: unmarshal yaml: %w", err)
	}
	return doc, nil
}

// MarshalPose renders a single pose, used for clipboard copy.
func MarshalPose(p freecam.Pose) ([]byte, error) {
	data, err := yaml.Marshal(NewPoseSpec(p))
	if err != nil {
		return nil, fmt.Errorf("pathstore: marshal pose: %w", err)
	}
	return data, nil
}

// UnmarshalPose parses a single pose. Text without any pose fields is an
// error so pasting random clipboard content does not add a keyframe at the
// origin.
func UnmarshalPose(data []byte) (freecam.Pose, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return freecam.Pose{}, fmt.Errorf("pathstore: unmarshal pose: %w", err)
	}
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return freecam.Pose{}, fmt.Errorf("pathstore: unmarshal pose: not a mapping")
	}
	var spec PoseSpec
	if err := node.Content[0].Decode(&spec); err != nil {
		return freecam.Pose{}, fmt.Errorf("pathstore: unmarshal pose: %w", err)
	}
	return spec.Pose(), nil
}

func poseSpecs(poses []freecam.Pose) []PoseSpec {
	out := make([]PoseSpec, len(poses))
	for i, p := range poses {
		out[i] = NewPoseSpec(p)
	}
	return out
}
