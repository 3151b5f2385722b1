// Package html holds helpers shared by the status pages.
package html

import (
	"io"
	"net/http"
)

type TableWriter struct {
	doHighlighting bool
	lastBackground string
	writer         io.Writer
}

// HandleFunc registers handler on serveMux, adding the security headers to
// every response.
func HandleFunc(serveMux *http.ServeMux, pattern string,
	handler func(w http.ResponseWriter, req *http.Request)) {
	handleFunc(serveMux, pattern, handler)
}

func SetSecurityHeaders(w http.ResponseWriter) {
	setSecurityHeaders(w)
}

// NewTableWriter writes the heading row of a table. The caller writes the
// <table> and </table> tags.
func NewTableWriter(writer io.Writer, doHighlighting bool,
	columns ...string) (*TableWriter, error) {
	return newTableWriter(writer, doHighlighting, columns)
}

// WriteRow writes one row. Column text is HTML-escaped.
func (tw *TableWriter) WriteRow(foreground, background string,
	columns ...string) error {
	return tw.writeRow(foreground, background, columns)
}

func WriteFooter(writer io.Writer) {
	writeFooter(writer)
}

func WriteHeader(writer io.Writer) {
	writeHeader(writer)
}
