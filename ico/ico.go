// Package ico encodes and decodes the Windows ICO icon container format.
//
// An ICO file is a little-endian 6-byte header followed by a directory of
// fixed 16-byte entries and the raw image payloads they point at. Payloads
// are opaque to this package (commonly PNG or BMP); no pixel decoding is
// performed.
package ico

import (
	"encoding/binary"
	"errors"
	"fmt"

	"git.sr.ht/~jackmordaunt/iconcodec/internal/validate"
)

const (
	headerSize = 6
	entrySize  = 16
)

// Errors returned by Decode, each marking a distinct malformation.
var (
	ErrHeaderTooSmall     = errors.New("ico: buffer too small for header")
	ErrBadReservedField   = errors.New("ico: reserved field must be zero")
	ErrBadImageType       = errors.New("ico: image type must be 1")
	ErrNoImages           = errors.New("ico: file contains no images")
	ErrDirectoryTruncated = errors.New("ico: buffer too small for directory")
	ErrImageOutOfBounds   = errors.New("ico: image data extends past end of buffer")
)

// Image is one icon bitmap to encode. Data is carried through verbatim.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// Entry is one decoded directory entry. Data is a sub-slice of the buffer
// passed to Decode and shares its lifetime; it is never copied.
type Entry struct {
	Width  int
	Height int
	BPP    int
	Data   []byte
}

// Info summarises one directory entry without exposing its payload.
type Info struct {
	Width    int
	Height   int
	BPP      int
	DataSize int
}

// File is a decoded ICO container.
type File struct {
	Entries []Entry
}

// dimByte collapses a logical dimension to its on-disk byte. The format has
// no way to store 256 or 512; both become 0 and decode back as 256.
func dimByte(d int) byte {
	if d == 256 || d == 512 {
		return 0
	}
	return byte(d)
}

// Encode serialises images into an ICO buffer, preserving input order.
// Output is byte-identical across runs for identical input.
func Encode(images []Image) ([]byte, error) {
	err := validate.Images(len(images), func(i int) []validate.Field {
		return []validate.Field{
			{Name: "width", Missing: images[i].Width == 0},
			{Name: "height", Missing: images[i].Height == 0},
			{Name: "data", Missing: images[i].Data == nil},
		}
	})
	if err != nil {
		return nil, err
	}
	var (
		dirSize = len(images) * entrySize
		total   = headerSize + dirSize
	)
	for _, img := range images {
		total += len(img.Data)
	}
	buf := make([]byte, total)
	binary.LittleEndian.PutUint16(buf[0:2], 0)
	binary.LittleEndian.PutUint16(buf[2:4], 1)
	binary.LittleEndian.PutUint16(buf[4:6], uint16(len(images)))
	offset := uint32(headerSize + dirSize)
	for i, img := range images {
		entry := buf[headerSize+i*entrySize:]
		entry[0] = dimByte(img.Width)
		entry[1] = dimByte(img.Height)
		entry[2] = 0 // color palette
		entry[3] = 0 // reserved
		binary.LittleEndian.PutUint16(entry[4:6], 1)  // color planes
		binary.LittleEndian.PutUint16(entry[6:8], 32) // bits per pixel
		binary.LittleEndian.PutUint32(entry[8:12], uint32(len(img.Data)))
		binary.LittleEndian.PutUint32(entry[12:16], offset)
		copy(buf[offset:], img.Data)
		offset += uint32(len(img.Data))
	}
	return buf, nil
}

// Decode parses an ICO buffer. Entry payloads are zero-copy views into buf;
// the caller must keep buf alive and unmutated for as long as they are used.
func Decode(buf []byte) (*File, error) {
	if len(buf) < headerSize {
		return nil, ErrHeaderTooSmall
	}
	if binary.LittleEndian.Uint16(buf[0:2]) != 0 {
		return nil, ErrBadReservedField
	}
	if binary.LittleEndian.Uint16(buf[2:4]) != 1 {
		return nil, ErrBadImageType
	}
	count := int(binary.LittleEndian.Uint16(buf[4:6]))
	if count == 0 {
		return nil, ErrNoImages
	}
	if len(buf) < headerSize+count*entrySize {
		return nil, ErrDirectoryTruncated
	}
	f := &File{Entries: make([]Entry, 0, count)}
	for i := 0; i < count; i++ {
		var (
			entry  = buf[headerSize+i*entrySize:]
			width  = int(entry[0])
			height = int(entry[1])
			bpp    = int(binary.LittleEndian.Uint16(entry[6:8]))
			size   = binary.LittleEndian.Uint32(entry[8:12])
			offset = binary.LittleEndian.Uint32(entry[12:16])
		)
		// On-disk 0 stands in for both 256 and 512; only 256 is
		// recoverable.
		if width == 0 {
			width = 256
		}
		if height == 0 {
			height = 256
		}
		if uint64(offset)+uint64(size) > uint64(len(buf)) {
			return nil, fmt.Errorf("entry %d: %w", i, ErrImageOutOfBounds)
		}
		f.Entries = append(f.Entries, Entry{
			Width:  width,
			Height: height,
			BPP:    bpp,
			Data:   buf[offset : offset+size],
		})
	}
	return f, nil
}

// Image returns the payload of the first entry matching the given
// dimensions, or nil if no entry matches.
func (f *File) Image(width, height int) []byte {
	for _, e := range f.Entries {
		if e.Width == width && e.Height == height {
			return e.Data
		}
	}
	return nil
}

// Info lists every entry's metadata in parse order.
func (f *File) Info() []Info {
	info := make([]Info, len(f.Entries))
	for i, e := range f.Entries {
		info[i] = Info{
			Width:    e.Width,
			Height:   e.Height,
			BPP:      e.BPP,
			DataSize: len(e.Data),
		}
	}
	return info
}
