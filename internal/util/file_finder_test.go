package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFinder(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0777); err != nil {
		t.Fatalf("preparing test tree: %v", err)
	}
	want := filepath.Join(nested, "icon.png")
	if err := os.WriteFile(want, []byte("png"), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}
	found, err := Finder{Root: root}.Find("icon.png")
	if err != nil {
		t.Fatalf("unexpected find error: %v", err)
	}
	abs, err := filepath.Abs(want)
	if err != nil {
		t.Fatalf("resolving absolute path: %v", err)
	}
	if found != abs {
		t.Fatalf("found path got=%q, want=%q", found, abs)
	}
	missing, err := Finder{Root: root}.Find("nope.png")
	if err != nil {
		t.Fatalf("unexpected find error: %v", err)
	}
	if missing != "" {
		t.Fatalf("missing file path got=%q, want empty", missing)
	}
}
