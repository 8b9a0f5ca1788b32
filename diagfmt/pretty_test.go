package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ramen/diag"
	"ramen/source"
)

func fixture() ([]diag.Diagnostic, *source.FileSet) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.ramen", []byte("app\nEmpty {}\n"))

	items := []diag.Diagnostic{
		diag.NewError(diag.SynEmptyContainer,
			source.Span{File: id, Start: 10, End: 12},
			"container 'Empty' must declare at least one element"),
		diag.NewWarning(diag.MetaUnrecognizedKey,
			source.Span{File: id, Start: 0, End: 3},
			`unrecognized property key "glow"`),
	}
	return items, fs
}

func TestPrettyPlain(t *testing.T) {
	items, fs := fixture()
	var buf bytes.Buffer
	Pretty(&buf, items, fs, PrettyOpts{})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines without context:\n%s", len(lines), out)
	}
	if lines[0] != "demo.ramen:2:7: ERROR [SYN2003]: container 'Empty' must declare at least one element" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "WARNING [MET5002]") {
		t.Errorf("unexpected second line: %q", lines[1])
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output must not contain ANSI escapes")
	}
}

func TestPrettyContext(t *testing.T) {
	items, fs := fixture()
	var buf bytes.Buffer
	Pretty(&buf, items[:1], fs, PrettyOpts{Context: true})

	out := buf.String()
	if !strings.Contains(out, "   2 | Empty {}") {
		t.Errorf("context line missing:\n%s", out)
	}
	if !strings.Contains(out, "^~") {
		t.Errorf("underline marker missing:\n%s", out)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("demo.ramen", []byte("a\na\n"))
	d := diag.NewError(diag.ScopeDuplicateName,
		source.Span{File: id, Start: 2, End: 3}, "dup").
		WithNote(source.Span{File: id, Start: 0, End: 1}, "previous declaration here")

	var buf bytes.Buffer
	Pretty(&buf, []diag.Diagnostic{d}, fs, PrettyOpts{})
	if !strings.Contains(buf.String(), "note: demo.ramen:1:1: previous declaration here") {
		t.Errorf("note missing:\n%s", buf.String())
	}
}

func TestJSONOutput(t *testing.T) {
	items, fs := fixture()
	var buf bytes.Buffer
	if err := JSON(&buf, items, fs); err != nil {
		t.Fatal(err)
	}

	var out Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Diagnostics) != 2 {
		t.Fatalf("got %d diagnostics", len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.Severity != "ERROR" || first.Code != "SYN2003" {
		t.Errorf("bad first entry: %+v", first)
	}
	if first.Location.Line != 2 || first.Location.Column != 7 || first.Location.Length != 2 {
		t.Errorf("bad location: %+v", first.Location)
	}
	if out.Summary.Errors != 1 || out.Summary.Warnings != 1 {
		t.Errorf("bad summary: %+v", out.Summary)
	}
	if out.Success {
		t.Error("success must be false with errors present")
	}
}

func TestJSONEmpty(t *testing.T) {
	fs := source.NewFileSet()
	var buf bytes.Buffer
	if err := JSON(&buf, nil, fs); err != nil {
		t.Fatal(err)
	}
	var out Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if !out.Success || len(out.Diagnostics) != 0 {
		t.Errorf("empty list must be a success: %+v", out)
	}
}
