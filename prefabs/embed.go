package prefabs

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Dir and ScriptDir are where on-disk overrides live, relative to the
// working directory. A file there shadows the embedded copy of the same name.
const (
	Dir       = "prefabs"
	ScriptDir = Dir + "/scripts"
)

//go:embed *.yaml scripts/*.tengo
var bundled embed.FS

// Load reads a config document such as freecam.yaml.
func Load(name string) ([]byte, error) {
	return readOverride(bundled, specName(name))
}

// LoadScript reads a cutscene script. name may be bare ("cutscene") or carry
// the scripts/ directory and .tengo extension.
func LoadScript(name string) ([]byte, error) {
	return readOverride(bundled, scriptName(name))
}

// readOverride reads name from Dir on disk, falling back to files.
func readOverride(files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("prefabs: empty name")
	}
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(name))); err == nil {
		return data, nil
	}
	data, err := fs.ReadFile(files, name)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	return data, nil
}

// specName turns a user path into a slash path relative to Dir.
func specName(name string) string {
	s := path.Clean(filepath.ToSlash(strings.TrimSpace(name)))
	if s == "." {
		return ""
	}
	return strings.TrimPrefix(s, Dir+"/")
}

func scriptName(name string) string {
	s := strings.TrimPrefix(specName(name), "scripts/")
	if s == "" {
		return ""
	}
	if path.Ext(s) == "" {
		s += ".tengo"
	}
	return "scripts/" + s
}
