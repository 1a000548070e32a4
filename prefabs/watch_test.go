package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{path: "prefabs/freecam.yaml", kind: SpecChanged, ok: true},
		{path: "x.YML", kind: SpecChanged, ok: true},
		{path: "scripts/cutscene.tengo", kind: ScriptChanged, ok: true},
		{path: "notes.txt"},
		{path: "freecam.yaml~"},
	}
	for _, tt := range tests {
		kind, ok := classify(tt.path)
		if ok != tt.ok || (ok && kind != tt.kind) {
			t.Errorf("classify(%q) = (%v, %v), want (%v, %v)", tt.path, kind, ok, tt.kind, tt.ok)
		}
	}
}

func TestWatcherReportsSpecWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "freecam.yaml"), []byte("verbose: true\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case c := <-w.Events:
		if c.Name() != "freecam.yaml" || c.Kind != SpecChanged {
			t.Fatalf("unexpected change %+v", c)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no change reported")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("closed watcher returned %v", got)
	}
}
