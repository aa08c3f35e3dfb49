package util

import (
	"fmt"
	"strings"
)

// MultiError combines the errors from independent output targets into a
// single error value, so one failing target does not mask the others.
type MultiError []error

func (me MultiError) IsEmpty() bool {
	return len(me) == 0
}

func (me MultiError) Error() string {
	if len(me) == 1 {
		return me[0].Error()
	}
	var b strings.Builder
	b.WriteString("[\n")
	for ii, err := range me {
		fmt.Fprintf(&b, "\t%d: %s\n", ii+1, err)
	}
	b.WriteString("]\n")
	return b.String()
}
