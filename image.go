package iconcodec

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/kdomanski/iso9660"
)

// WriteImage packs the named blobs into an ISO9660 disk image written to
// dst, labelled with id. Files are added in sorted name order so identical
// input produces an identical image.
func WriteImage(dst io.Writer, id string, files map[string][]byte) error {
	if id == "" {
		id = "unspecified"
	}
	if len(files) == 0 {
		return fmt.Errorf("no files to write to image")
	}
	writer, err := iso9660.NewWriter()
	if err != nil {
		return fmt.Errorf("initialising writer: %w", err)
	}
	defer writer.Cleanup()
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writer.AddFile(bytes.NewReader(files[name]), name); err != nil {
			return fmt.Errorf("adding file %s to image: %w", name, err)
		}
	}
	if err := writer.WriteTo(dst, id); err != nil {
		return fmt.Errorf("writing ISO image: %w", err)
	}
	return nil
}
