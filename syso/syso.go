// Package syso compiles ICO icon files into COFF .syso resource objects
// that the Go linker picks up automatically, giving Windows binaries their
// application icon.
package syso

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/akavel/rsrc/binutil"
	"github.com/akavel/rsrc/coff"

	"git.sr.ht/~jackmordaunt/iconcodec/ico"
)

// Embed icons into an output .syso file for consumption by the Go linker.
// arch is a GOARCH value such as "amd64" or "386".
func Embed(output string, arch string, icons ...string) error {
	nextID := idGenerator()
	coffData := coff.NewRSRC()
	if err := coffData.Arch(arch); err != nil {
		return fmt.Errorf("setting architecture: %w", err)
	}
	for _, icon := range icons {
		if err := addIcon(coffData, icon, nextID); err != nil {
			return fmt.Errorf("adding icon: %w", err)
		}
	}
	coffData.Freeze()
	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()
	return write(coffData, out)
}

// on storing icons, see: http://blogs.msdn.com/b/oldnewthing/archive/2012/07/20/10331787.aspx
type iconDir struct {
	Reserved uint16 // must be 0
	Type     uint16 // 1 for icons
	Count    uint16
}

type iconEntry struct {
	Width    byte // 0 if >= 256
	Height   byte // 0 if >= 256
	Colors   byte
	Reserved byte
	Planes   uint16
	BPP      uint16
	Size     uint32
	Id       uint16
}

// Dir and Entries are exported so the reflective COFF writer can reach
// them.
type iconGroup struct {
	Dir     iconDir
	Entries []iconEntry
}

func (group iconGroup) Size() int64 {
	return int64(binary.Size(group.Dir) + len(group.Entries)*binary.Size(iconEntry{}))
}

// resourceDim collapses a dimension to the byte the resource directory
// stores, matching the on-disk ICO convention.
func resourceDim(d int) byte {
	if d >= 256 {
		return 0
	}
	return byte(d)
}

func addIcon(out *coff.Coff, icon string, newid func() uint16) error {
	by, err := os.ReadFile(icon)
	if err != nil {
		return err
	}
	f, err := ico.Decode(by)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", icon, err)
	}
	group := iconGroup{Dir: iconDir{
		Type:  1,
		Count: uint16(len(f.Entries)),
	}}
	for _, entry := range f.Entries {
		id := newid()
		out.AddResource(coff.RT_ICON, id, bytes.NewReader(entry.Data))
		group.Entries = append(group.Entries, iconEntry{
			Width:  resourceDim(entry.Width),
			Height: resourceDim(entry.Height),
			Planes: 1,
			BPP:    uint16(entry.BPP),
			Size:   uint32(len(entry.Data)),
			Id:     id,
		})
	}
	out.AddResource(coff.RT_GROUP_ICON, newid(), group)
	return nil
}

func write(coffData *coff.Coff, out io.Writer) error {
	w := binutil.Writer{W: out}
	if err := binutil.Walk(coffData, func(v reflect.Value, path string) error {
		if binutil.Plain(v.Kind()) {
			w.WriteLE(v.Interface())
			return nil
		}
		vv, ok := v.Interface().(binutil.SizedReader)
		if ok {
			w.WriteFromSized(vv)
			return binutil.WALK_SKIP
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walking coff: %w", err)
	}
	if w.Err != nil {
		return fmt.Errorf("writing output: %s", w.Err)
	}
	return nil
}

func idGenerator() func() uint16 {
	id := uint16(0)
	return func() uint16 {
		id++
		return id
	}
}
