// Package ui - Terminal user interface
// Colored CLI output and plain-text tables.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool

	bold   *color.Color
	header *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	blue   *color.Color
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	w := &Writer{
		out:     out,
		noColor: noColor,
		bold:    color.New(color.Bold),
		header:  color.New(color.Bold, color.FgCyan),
		green:   color.New(color.FgGreen),
		yellow:  color.New(color.FgYellow),
		red:     color.New(color.FgRed),
		blue:    color.New(color.FgBlue),
	}
	if noColor {
		for _, c := range []*color.Color{w.bold, w.header, w.green, w.yellow, w.red, w.blue} {
			c.DisableColor()
		}
	}
	return w
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println("%s", w.header.Sprint(title))
	w.Println("")
}

// Emphasis prints a bold line
func (w *Writer) Emphasis(format string, args ...interface{}) {
	w.Println("%s", w.bold.Sprintf(format, args...))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	w.Println("%s%s", w.green.Sprint("✓ "), fmt.Sprintf(format, args...))
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	w.Println("%s%s", w.yellow.Sprint("⚠ "), fmt.Sprintf(format, args...))
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	w.Println("%s%s", w.red.Sprint("✗ "), fmt.Sprintf(format, args...))
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	w.Println("%s%s", w.blue.Sprint("ℹ "), fmt.Sprintf(format, args...))
}

// Statement decorates a heading with three copies of decoration on
// each side, e.g. "--- Fixed Expenses ---".
func Statement(statement, decoration string) string {
	d := strings.Repeat(decoration, 3)
	return d + " " + statement + " " + d
}
