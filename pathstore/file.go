package pathstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/freecam/freecam"
)

// Ext is the extension of binary path files.
const Ext = ".p5path"

// WithExt appends Ext unless name already carries it.
func WithExt(name string) string {
	if strings.EqualFold(filepath.Ext(name), Ext) {
		return name
	}
	return name + Ext
}

// Path is a keyframe sequence with its playback length. Duration is zero
// when the file does not record one; binary files never do.
type Path struct {
	Poses    []freecam.Pose
	Duration float32
}

// LoadFile reads a path file. The format is picked by extension: .yaml and
// .yml are read as a path document, anything else as the binary codec.
func LoadFile(path string) ([]freecam.Pose, error) {
	p, err := LoadPath(path)
	return p.Poses, err
}

// SaveFile writes poses to path in the format its extension names.
func SaveFile(path string, poses []freecam.Pose) error {
	return SavePath(path, Path{Poses: poses})
}

// LoadPath is LoadFile keeping the duration of yaml documents.
func LoadPath(path string) (Path, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Path{}, fmt.Errorf("pathstore: read %s: %w", path, err)
	}
	var p Path
	if isYAML(path) {
		var doc PathSpec
		if doc, err = UnmarshalPathSpec(data); err == nil {
			p = Path{Poses: doc.Poses(), Duration: max(doc.Duration, 0)}
		}
	} else {
		p.Poses, err = Decode(data)
	}
	if err != nil {
		return Path{}, fmt.Errorf("pathstore: load %s: %w", path, err)
	}
	return p, nil
}

// SavePath writes p to path. The duration is only kept by yaml documents.
func SavePath(path string, p Path) error {
	var data []byte
	if isYAML(path) {
		var err error
		if data, err = MarshalPath(p); err != nil {
			return fmt.Errorf("pathstore: save %s: %w", path, err)
		}
	} else {
		data = Encode(p.Poses)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("pathstore: save %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("pathstore: save %s: %w", path, err)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
