// Package icns encodes and decodes the Apple ICNS icon container format.
//
// An ICNS file is an 8-byte header ("icns" magic plus a big-endian total
// size) followed by self-describing chunks: a four-character type tag, a
// big-endian chunk length covering header and payload, then the payload
// itself. Payloads are opaque to this package (commonly PNG or JPEG2000).
package icns

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"git.sr.ht/~jackmordaunt/iconcodec/internal/validate"
)

const (
	headerSize      = 8
	chunkHeaderSize = 8
)

var magic = []byte("icns")

// The size and tag pairings are fixed by the format rather than derived
// from a pattern, so both directions are lookup tables.
var typeForSize = map[int]string{
	16:   "icp3",
	32:   "icp4",
	64:   "icp6",
	128:  "ic07",
	256:  "ic08",
	512:  "ic09",
	1024: "ic10",
}

var sizeForType = map[string]int{
	"icp3": 16,
	"icp4": 32,
	"icp6": 64,
	"ic07": 128,
	"ic08": 256,
	"ic09": 512,
	"ic10": 1024,
}

// Errors returned by Encode and Decode, each marking a distinct failure.
var (
	ErrNoValidImages    = errors.New("icns: no images with a supported size and non-empty data")
	ErrHeaderTooSmall   = errors.New("icns: buffer too small for header")
	ErrBadMagic         = errors.New("icns: missing icns magic")
	ErrDeclaredSize     = errors.New("icns: declared size exceeds buffer length")
	ErrChunkTruncated   = errors.New("icns: chunk header truncated")
	ErrChunkLength      = errors.New("icns: chunk length smaller than its header")
	ErrChunkOutOfBounds = errors.New("icns: chunk data extends past end of buffer")
)

// Image is one icon bitmap to encode. Size selects the chunk type tag and
// must be one of 16, 32, 64, 128, 256, 512 or 1024.
type Image struct {
	Size int
	Data []byte
}

// Entry is one decoded chunk. Size is 0 when the type tag is not a
// recognised icon size. Data is a sub-slice of the buffer passed to Decode
// and shares its lifetime; it is never copied.
type Entry struct {
	Type string
	Size int
	Data []byte
}

// Info summarises one chunk without exposing its payload.
type Info struct {
	Type     string
	Size     int
	DataSize int
}

// File is a decoded ICNS container.
type File struct {
	Entries []Entry
}

// Encode serialises images into an ICNS buffer. Images whose size has no
// chunk type or whose payload is empty are silently dropped; encoding only
// fails if nothing survives the filter.
func Encode(images []Image) ([]byte, error) {
	err := validate.Images(len(images), func(i int) []validate.Field {
		return []validate.Field{
			{Name: "size", Missing: images[i].Size == 0},
			{Name: "data", Missing: images[i].Data == nil},
		}
	})
	if err != nil {
		return nil, err
	}
	var valid []Image
	for _, img := range images {
		if _, ok := typeForSize[img.Size]; ok && len(img.Data) > 0 {
			valid = append(valid, img)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidImages
	}
	total := headerSize
	for _, img := range valid {
		total += chunkHeaderSize + len(img.Data)
	}
	buf := make([]byte, total)
	copy(buf[0:4], magic)
	binary.BigEndian.PutUint32(buf[4:8], uint32(total))
	offset := headerSize
	for _, img := range valid {
		copy(buf[offset:offset+4], typeForSize[img.Size])
		binary.BigEndian.PutUint32(buf[offset+4:offset+8], uint32(chunkHeaderSize+len(img.Data)))
		copy(buf[offset+8:], img.Data)
		offset += chunkHeaderSize + len(img.Data)
	}
	return buf, nil
}

// Decode parses an ICNS buffer. Chunk payloads are zero-copy views into
// buf; the caller must keep buf alive and unmutated for as long as they are
// used. Chunks with unrecognised type tags are kept with Size 0.
func Decode(buf []byte) (*File, error) {
	if len(buf) < headerSize {
		return nil, ErrHeaderTooSmall
	}
	if !bytes.Equal(buf[0:4], magic) {
		return nil, ErrBadMagic
	}
	declared := int(binary.BigEndian.Uint32(buf[4:8]))
	if declared > len(buf) {
		return nil, ErrDeclaredSize
	}
	f := &File{}
	for offset := headerSize; offset < declared; {
		if offset+chunkHeaderSize > len(buf) {
			return nil, fmt.Errorf("offset %d: %w", offset, ErrChunkTruncated)
		}
		var (
			tag    = string(buf[offset : offset+4])
			length = int(binary.BigEndian.Uint32(buf[offset+4 : offset+8]))
		)
		if length < chunkHeaderSize {
			return nil, fmt.Errorf("offset %d: %w", offset, ErrChunkLength)
		}
		if offset+length > len(buf) {
			return nil, fmt.Errorf("offset %d: %w", offset, ErrChunkOutOfBounds)
		}
		f.Entries = append(f.Entries, Entry{
			Type: tag,
			Size: sizeForType[tag],
			Data: buf[offset+chunkHeaderSize : offset+length],
		})
		offset += length
	}
	return f, nil
}

// Image returns the payload of the first chunk whose mapped size matches,
// or nil if no chunk matches.
func (f *File) Image(size int) []byte {
	for _, e := range f.Entries {
		if e.Size == size && e.Size != 0 {
			return e.Data
		}
	}
	return nil
}

// Info lists every chunk's metadata in parse order, unknown types included.
func (f *File) Info() []Info {
	info := make([]Info, len(f.Entries))
	for i, e := range f.Entries {
		info[i] = Info{
			Type:     e.Type,
			Size:     e.Size,
			DataSize: len(e.Data),
		}
	}
	return info
}
