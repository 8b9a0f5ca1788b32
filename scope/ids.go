package scope

type (
	// ScopeID identifies a scope in the tree's arena.
	ScopeID uint32
	// ElemID identifies a declared element (node or container).
	ElemID uint32
)

const (
	NoScopeID ScopeID = 0
	NoElemID  ElemID  = 0
)

func (id ScopeID) IsValid() bool { return id != NoScopeID }
func (id ElemID) IsValid() bool  { return id != NoElemID }
