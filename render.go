package iconcodec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"git.sr.ht/~jackmordaunt/iconcodec/icns"
	"git.sr.ht/~jackmordaunt/iconcodec/ico"
)

// Standard size ladders for each platform's icon container.
var (
	icoSizes  = []int{256, 128, 64, 48, 32, 16}
	icnsSizes = []int{1024, 512, 256, 128, 64, 32, 16}
)

// renderPNG scales src to a square of the given size and encodes it as PNG.
func renderPNG(src image.Image, size int) ([]byte, error) {
	var (
		rect   = image.Rect(0, 0, size, size)
		raw    = image.NewRGBA(rect)
		buffer = bytes.NewBuffer(nil)
		scale  = draw.CatmullRom
	)
	scale.Scale(raw, rect, src, src.Bounds(), draw.Over, nil)
	if err := png.Encode(buffer, raw); err != nil {
		return nil, fmt.Errorf("encoding png data: %w", err)
	}
	return buffer.Bytes(), nil
}

// IcoFromImage renders src at the standard Windows icon sizes and writes
// the result to dst as an ICO container.
func IcoFromImage(dst io.Writer, src image.Image) error {
	images := make([]ico.Image, 0, len(icoSizes))
	for _, size := range icoSizes {
		data, err := renderPNG(src, size)
		if err != nil {
			return fmt.Errorf("rendering %dpx icon: %w", size, err)
		}
		images = append(images, ico.Image{Width: size, Height: size, Data: data})
	}
	buf, err := ico.Encode(images)
	if err != nil {
		return fmt.Errorf("encoding ico: %w", err)
	}
	if _, err := dst.Write(buf); err != nil {
		return fmt.Errorf("writing ico data: %w", err)
	}
	return nil
}

// IcnsFromImage renders src at the standard Apple icon sizes and writes
// the result to dst as an ICNS container.
func IcnsFromImage(dst io.Writer, src image.Image) error {
	images := make([]icns.Image, 0, len(icnsSizes))
	for _, size := range icnsSizes {
		data, err := renderPNG(src, size)
		if err != nil {
			return fmt.Errorf("rendering %dpx icon: %w", size, err)
		}
		images = append(images, icns.Image{Size: size, Data: data})
	}
	buf, err := icns.Encode(images)
	if err != nil {
		return fmt.Errorf("encoding icns: %w", err)
	}
	if _, err := dst.Write(buf); err != nil {
		return fmt.Errorf("writing icns data: %w", err)
	}
	return nil
}
