// Package validate implements the contract check both icon encoders run
// before any bytes are written.
package validate

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates an encoder was handed nothing to encode.
var ErrEmptyInput = errors.New("validate: no images provided")

// MissingFieldError identifies the image and the required field it lacks.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("validate: image %d: missing required field %q", e.Index, e.Field)
}

// Field reports whether a named required field is absent from a descriptor.
type Field struct {
	Name    string
	Missing bool
}

// Images checks count descriptors against their required fields, failing on
// the first violation. fields is invoked once per descriptor index.
func Images(count int, fields func(i int) []Field) error {
	if count == 0 {
		return ErrEmptyInput
	}
	for i := 0; i < count; i++ {
		for _, f := range fields(i) {
			if f.Missing {
				return &MissingFieldError{Index: i, Field: f.Name}
			}
		}
	}
	return nil
}
