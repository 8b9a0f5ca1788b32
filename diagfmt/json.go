package diagfmt

import (
	"encoding/json"
	"io"

	"ramen/diag"
	"ramen/source"
)

// LocationJSON is a resolved source position for JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line"`
	Column    uint32 `json:"column"`
	Length    uint32 `json:"length"`
}

// NoteJSON is a secondary note attached to a diagnostic.
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// DiagnosticJSON is one diagnostic in JSON form.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// SummaryJSON counts diagnostics by severity.
type SummaryJSON struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// Output is the root object of the JSON rendering.
type Output struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Summary     SummaryJSON      `json:"summary"`
	Success     bool             `json:"success"`
}

// JSON writes diagnostics as one indented JSON document, preserving order.
func JSON(w io.Writer, items []diag.Diagnostic, fs *source.FileSet) error {
	out := Output{
		Diagnostics: make([]DiagnosticJSON, 0, len(items)),
	}

	for _, d := range items {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Location: locJSON(d.Primary, fs),
		}
		for _, n := range d.Notes {
			dj.Notes = append(dj.Notes, NoteJSON{
				Message:  n.Msg,
				Location: locJSON(n.Span, fs),
			})
		}
		out.Diagnostics = append(out.Diagnostics, dj)

		switch d.Severity {
		case diag.SevError:
			out.Summary.Errors++
		case diag.SevWarning:
			out.Summary.Warnings++
		}
	}
	out.Success = out.Summary.Errors == 0

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func locJSON(sp source.Span, fs *source.FileSet) LocationJSON {
	file := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	return LocationJSON{
		File:      file.Name,
		StartByte: sp.Start,
		EndByte:   sp.End,
		Line:      start.Line,
		Column:    start.Col,
		Length:    sp.Len(),
	}
}
