// Package output renders command results as tables, plain text, or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"
)

// Mode selects how results are rendered.
type Mode string

const (
	// ModeAuto picks ModeText on a terminal and plain tab-separated
	// text otherwise.
	ModeAuto Mode = "auto"
	// ModeText renders styled tables.
	ModeText Mode = "text"
	// ModeJSON renders machine-readable JSON.
	ModeJSON Mode = "json"
)

// Renderer writes command output in the configured mode.
type Renderer struct {
	out  io.Writer
	errW io.Writer
	mode Mode
	tty  bool
}

// NewRenderer creates a renderer for the given writers and mode.
func NewRenderer(out, errW io.Writer, mode Mode) *Renderer {
	r := &Renderer{out: out, errW: errW, mode: mode}
	if f, ok := out.(*os.File); ok {
		r.tty = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// Mode returns the effective render mode after auto-detection.
func (r *Renderer) Mode() Mode {
	if r.mode != ModeAuto {
		return r.mode
	}
	if r.tty {
		return ModeText
	}
	return ModeAuto
}

// JSONEnabled reports whether results should be emitted as JSON.
func (r *Renderer) JSONEnabled() bool {
	return r.mode == ModeJSON
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table writes a table with the given header and rows. In text mode it
// renders a styled table; otherwise tab-separated plain text that is
// stable for scripts to consume.
func (r *Renderer) Table(header []string, rows [][]string) {
	if r.Mode() == ModeText {
		t := table.NewWriter()
		t.SetOutputMirror(r.out)
		t.SetStyle(table.StyleLight)

		headerRow := make(table.Row, len(header))
		for i, h := range header {
			headerRow[i] = h
		}
		t.AppendHeader(headerRow)

		for _, row := range rows {
			tr := make(table.Row, len(row))
			for i, cell := range row {
				tr[i] = cell
			}
			t.AppendRow(tr)
		}
		t.Render()
		return
	}

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				_, _ = fmt.Fprint(r.out, "\t")
			}
			_, _ = fmt.Fprint(r.out, cell)
		}
		_, _ = fmt.Fprintln(r.out)
	}
}

// Textf writes formatted informational text.
func (r *Renderer) Textf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

// Errorf writes formatted text to the error stream.
func (r *Renderer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.errW, format, args...)
}
