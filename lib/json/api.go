// Package json wraps encoding/json with the output conventions of the
// netconfig tools.
package json

import (
	"io"
)

// WriteWithIndent writes value as JSON, indenting nested elements with
// indent and terminating the output with a newline.
func WriteWithIndent(w io.Writer, indent string, value interface{}) error {
	return writeWithIndent(w, indent, value)
}
