package diagfmt

// PrettyOpts controls the human-readable renderer.
type PrettyOpts struct {
	// Color enables ANSI severity colors.
	Color bool
	// Context prints the offending source line with an underline marker.
	Context bool
}
