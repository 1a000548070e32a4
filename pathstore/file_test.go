package pathstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/freecam/freecam"
)

func TestWithExt(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "orbit", want: "orbit.p5path"},
		{in: "orbit.p5path", want: "orbit.p5path"},
		{in: "ORBIT.P5PATH", want: "ORBIT.P5PATH"},
		{in: "orbit.yaml", want: "orbit.yaml.p5path"},
	}
	for _, tt := range tests {
		if got := WithExt(tt.in); got != tt.want {
			t.Errorf("WithExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"nested/path.p5path", "path.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			in := samplePoses()[:2]
			if err := SaveFile(path, in); err != nil {
				t.Fatalf("SaveFile: %v", err)
			}
			out, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if len(out) != len(in) {
				t.Fatalf("loaded %d poses, want %d", len(out), len(in))
			}
			for i := range in {
				if !posesNear(in[i], out[i], 1e-5) {
					t.Fatalf("pose %d: %v vs %v", i, in[i], out[i])
				}
			}
		})
	}
}

func TestSaveFileBinaryMatchesEncode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.p5path")
	in := samplePoses()
	if err := SaveFile(path, in); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != string(Encode(in)) {
		t.Fatalf("file bytes differ from Encode output")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFile(filepath.Join(dir, "missing.p5path")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
	bad := filepath.Join(dir, "bad.p5path")
	if err := os.WriteFile(bad, []byte{1, 0}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Fatalf("expected error for a truncated file")
	}
}

func posesNear(a, b freecam.Pose, eps float32) bool {
	return a.Position.ApproxEqualThreshold(b.Position, eps) &&
		a.Orientation.Normalize().ApproxEqualThreshold(b.Orientation.Normalize(), eps)
}

func TestSaveLoadPathDuration(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{name: "path.yaml", in: 7.5, want: 7.5},
		{name: "path.yml", in: 0, want: 0},
		{name: "path.p5path", in: 7.5, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := SavePath(path, Path{Poses: samplePoses()[:2], Duration: tt.in}); err != nil {
				t.Fatalf("SavePath: %v", err)
			}
			p, err := LoadPath(path)
			if err != nil {
				t.Fatalf("LoadPath: %v", err)
			}
			if len(p.Poses) != 2 {
				t.Fatalf("loaded %d poses, want 2", len(p.Poses))
			}
			if p.Duration != tt.want {
				t.Fatalf("duration = %v, want %v", p.Duration, tt.want)
			}
		})
	}
}

func TestLoadPathNegativeDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg.yaml")
	if err := os.WriteFile(path, []byte("duration: -3\nnodes:\n  - {x: 1, y: 2, z: 3}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p, err := LoadPath(path)
	if err != nil {
		t.Fatalf("LoadPath: %v", err)
	}
	if p.Duration != 0 || len(p.Poses) != 1 {
		t.Fatalf("got %+v, want one pose and no duration", p)
	}
}
