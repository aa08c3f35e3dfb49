package iconcodec

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"git.sr.ht/~jackmordaunt/iconcodec/internal/util"
)

//go:embed default.png
var defaultIcon []byte

// IconSet holds a source image and its encoded platform containers.
//
// The containers are buffered in memory as re-readable readers so they can
// be consumed more than once (written to disk, embedded into a resource
// object, packed into a disk image).
type IconSet struct {
	// Source is the image the containers are rendered from.
	Source image.Image
	// ICO contains the icon encoded as a Windows ICO container.
	ICO io.Reader
	// ICNS contains the icon encoded as an Apple ICNS container.
	ICNS io.Reader
}

// Load populates the set, searching root recursively for "icon.png" when no
// source image has been supplied and falling back to the embedded default
// icon with a warning.
func (s *IconSet) Load(root string) error {
	if s.Source == nil {
		icon, err := util.Finder{Root: root}.Find("icon.png")
		if err != nil {
			return fmt.Errorf("finding icon: %w", err)
		}
		iconby := defaultIcon
		if icon != "" {
			iconby, err = os.ReadFile(icon)
			if err != nil {
				return fmt.Errorf("reading icon: %w", err)
			}
		} else {
			fmt.Printf("warning: icon not found (icon.png); using default\n")
		}
		img, err := png.Decode(bytes.NewBuffer(iconby))
		if err != nil {
			return fmt.Errorf("decoding icon: %w", err)
		}
		s.Source = img
	}
	if s.ICO == nil {
		buffer := bytes.NewBuffer(nil)
		if err := IcoFromImage(buffer, s.Source); err != nil {
			return fmt.Errorf("ico: converting icon: %w", err)
		}
		s.ICO = util.NewCopyBuffer(buffer.Bytes())
	}
	if s.ICNS == nil {
		buffer := bytes.NewBuffer(nil)
		if err := IcnsFromImage(buffer, s.Source); err != nil {
			return fmt.Errorf("icns: converting icon: %w", err)
		}
		s.ICNS = util.NewCopyBuffer(buffer.Bytes())
	}
	return nil
}
