package iconcodec

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~jackmordaunt/iconcodec/icns"
	"git.sr.ht/~jackmordaunt/iconcodec/ico"
)

// TestIconSetLoadDefault falls back to the embedded default icon when the
// tree contains no icon.png.
func TestIconSetLoadDefault(t *testing.T) {
	set := IconSet{}
	if err := set.Load(t.TempDir()); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	assertContainers(t, &set)
}

// TestIconSetLoadFindsIcon picks up an icon.png nested below the root.
func TestIconSetLoadFindsIcon(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "assets")
	if err := os.MkdirAll(nested, 0777); err != nil {
		t.Fatalf("preparing test tree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(nested, "icon.png"), defaultIcon, 0644); err != nil {
		t.Fatalf("writing test icon: %v", err)
	}
	set := IconSet{}
	if err := set.Load(root); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	assertContainers(t, &set)
}

func assertContainers(t *testing.T, set *IconSet) {
	t.Helper()
	if set.Source == nil {
		t.Fatalf("source image not populated")
	}
	icoBytes, err := io.ReadAll(set.ICO)
	if err != nil {
		t.Fatalf("reading ico buffer: %v", err)
	}
	if _, err := ico.Decode(icoBytes); err != nil {
		t.Fatalf("ico container does not decode: %v", err)
	}
	icnsBytes, err := io.ReadAll(set.ICNS)
	if err != nil {
		t.Fatalf("reading icns buffer: %v", err)
	}
	if _, err := icns.Decode(icnsBytes); err != nil {
		t.Fatalf("icns container does not decode: %v", err)
	}
	// The buffers reset after a full read so later consumers see the same
	// bytes.
	again, err := io.ReadAll(set.ICO)
	if err != nil {
		t.Fatalf("re-reading ico buffer: %v", err)
	}
	if len(again) != len(icoBytes) {
		t.Fatalf("re-read length got=%d, want=%d", len(again), len(icoBytes))
	}
}
