package source

type (
	// FileID uniquely identifies a source text within a FileSet.
	FileID uint32
	// FileFlags encodes normalization metadata about a source text.
	FileFlags uint8
)

const (
	// FileVirtual marks content supplied from memory (tests, editors, stdin).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds one Ramen source text together with its line index and hash.
type File struct {
	ID      FileID
	Name    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position, both components 1-based.
type LineCol struct {
	Line uint32
	Col  uint32
}
