package iconcodec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"git.sr.ht/~jackmordaunt/iconcodec/icns"
	"git.sr.ht/~jackmordaunt/iconcodec/ico"
)

// testImage produces a source image with some colour variation so scaling
// has something to chew on.
func testImage(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xFF})
		}
	}
	return img
}

func TestIcoFromImage(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	if err := IcoFromImage(buffer, testImage(300)); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	f, err := ico.Decode(buffer.Bytes())
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if got, want := len(f.Entries), len(icoSizes); got != want {
		t.Fatalf("entry count got=%d, want=%d", got, want)
	}
	for i, size := range icoSizes {
		e := f.Entries[i]
		if e.Width != size || e.Height != size {
			t.Fatalf("entry %d dimensions got=%dx%d, want=%dx%d", i, e.Width, e.Height, size, size)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(e.Data))
		if err != nil {
			t.Fatalf("entry %d payload is not png: %v", i, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Fatalf("entry %d png dimensions got=%dx%d, want=%dx%d", i, cfg.Width, cfg.Height, size, size)
		}
	}
}

func TestIcnsFromImage(t *testing.T) {
	buffer := bytes.NewBuffer(nil)
	if err := IcnsFromImage(buffer, testImage(300)); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	f, err := icns.Decode(buffer.Bytes())
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if got, want := len(f.Entries), len(icnsSizes); got != want {
		t.Fatalf("chunk count got=%d, want=%d", got, want)
	}
	for i, size := range icnsSizes {
		e := f.Entries[i]
		if e.Size != size {
			t.Fatalf("chunk %d size got=%d, want=%d", i, e.Size, size)
		}
		cfg, err := png.DecodeConfig(bytes.NewReader(e.Data))
		if err != nil {
			t.Fatalf("chunk %d payload is not png: %v", i, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Fatalf("chunk %d png dimensions got=%dx%d, want=%dx%d", i, cfg.Width, cfg.Height, size, size)
		}
	}
}
