package diag

import (
	"ramen/source"
)

// Located is a diagnostic materialized to the wire shape consumers expect:
// severity, code, message and a 1-based line/column plus byte length.
type Located struct {
	Severity Severity
	Code     Code
	Message  string
	Line     uint32
	Column   uint32
	Length   uint32
}

// Locate resolves a diagnostic's primary span against the file set.
func Locate(d Diagnostic, fs *source.FileSet) Located {
	start, _ := fs.Resolve(d.Primary)
	return Located{
		Severity: d.Severity,
		Code:     d.Code,
		Message:  d.Message,
		Line:     start.Line,
		Column:   start.Col,
		Length:   d.Primary.Len(),
	}
}

// LocateAll resolves every diagnostic in order.
func LocateAll(items []Diagnostic, fs *source.FileSet) []Located {
	out := make([]Located, 0, len(items))
	for _, d := range items {
		out = append(out, Locate(d, fs))
	}
	return out
}
