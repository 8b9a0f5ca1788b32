package ast

type (
	// FileID identifies one parsed document.
	FileID uint32
	// StmtID identifies a statement node.
	StmtID uint32
	// RefExprID identifies a reference expression.
	RefExprID uint32
	// PropID identifies a property assignment inside a metadata block.
	PropID uint32
)

const (
	NoFileID    FileID    = 0
	NoStmtID    StmtID    = 0
	NoRefExprID RefExprID = 0
	NoPropID    PropID    = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id RefExprID) IsValid() bool { return id != NoRefExprID }
func (id PropID) IsValid() bool    { return id != NoPropID }
