// Package diagfmt renders diagnostic lists for humans and machines. It
// formats compiler diagnostics only; rendering the diagram itself belongs to
// external tools.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ramen/diag"
	"ramen/source"
)

// Pretty writes diagnostics in a human-readable form, one entry per block:
//
//	name:line:col: ERROR [SYN2003]: container 'A' must declare at least one element
//	  12 | A {}
//	     |   ^~
//
// The bag is expected to be sorted already; Pretty preserves its order.
func Pretty(w io.Writer, items []diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range items {
		writeOne(w, d, fs, opts)
	}
}

func writeOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := severityColor(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		file.Name, start.Line, start.Col,
		sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message)

	if opts.Context {
		writeContext(w, file, d.Primary, start, opts)
	}

	for _, note := range d.Notes {
		noteStart, _ := fs.Resolve(note.Span)
		fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
			file.Name, noteStart.Line, noteStart.Col, note.Msg)
	}
}

// writeContext prints the offending line with a gutter and an underline
// covering the span (clamped to the line end).
func writeContext(w io.Writer, file *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}

	gutter := fmt.Sprintf("%4d | ", start.Line)
	fmt.Fprintf(w, "%s%s\n", gutter, line)

	// columns are byte-based; measure display width of the prefix and the
	// underlined run so wide runes stay aligned
	prefixBytes := int(start.Col) - 1
	if prefixBytes > len(line) {
		prefixBytes = len(line)
	}
	spanBytes := int(sp.Len())
	if prefixBytes+spanBytes > len(line) {
		spanBytes = len(line) - prefixBytes
	}

	pad := runewidth.StringWidth(line[:prefixBytes])
	width := runewidth.StringWidth(line[prefixBytes : prefixBytes+spanBytes])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	mc := markerColor(opts.Color)
	fmt.Fprintf(w, "%s%s%s\n",
		strings.Repeat(" ", len(gutter)-2)+"| ",
		strings.Repeat(" ", pad),
		mc.Sprint(marker))
}

func severityColor(sev diag.Severity, enabled bool) *color.Color {
	var c *color.Color
	switch sev {
	case diag.SevError:
		c = color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan)
	}
	if !enabled {
		c.DisableColor()
	}
	return c
}

func markerColor(enabled bool) *color.Color {
	c := color.New(color.FgRed)
	if !enabled {
		c.DisableColor()
	}
	return c
}
