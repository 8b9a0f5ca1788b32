package ast

import (
	"ramen/source"
)

type StmtKind uint8

const (
	StmtInvalid StmtKind = iota
	StmtContainer
	StmtNode
	StmtEdge
	StmtMetadata
)

// Stmt is one declaration; Payload indexes the per-kind arena matching Kind.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload uint32
}

// ContainerStmt is a named block of nested statements.
type ContainerStmt struct {
	Name     string
	NameSpan source.Span
	Body     []StmtID
}

// NodeStmt is a leaf declaration, optionally tagged with a scope-local refId.
type NodeStmt struct {
	Name     string
	NameSpan source.Span
	Ref      string // "" when the node carries no refId
	RefSpan  source.Span
}

// EdgeStmt connects two reference expressions with a direction and an
// optional label.
type EdgeStmt struct {
	Src      RefExprID
	Dst      RefExprID
	Dir      EdgeDir
	Label    string
	HasLabel bool
}

// MetadataStmt attaches property assignments to a referenced element.
type MetadataStmt struct {
	Target RefExprID
	Props  []PropID
}

// PropValueKind is the type of a property assignment's right-hand side.
type PropValueKind uint8

const (
	// PropString is a single-line string value.
	PropString PropValueKind = iota
	// PropText is a multi-line string value.
	PropText
	// PropNumber is a numeric value.
	PropNumber
)

func (k PropValueKind) String() string {
	switch k {
	case PropString:
		return "string"
	case PropText:
		return "multiline string"
	case PropNumber:
		return "number"
	}
	return "?"
}

// PropValue is a validated-later property value; Num is set only for
// PropNumber, Str for the string kinds.
type PropValue struct {
	Kind PropValueKind
	Str  string
	Num  float64
	Span source.Span
}

// Prop is one key/value assignment inside a metadata block.
type Prop struct {
	Key     string
	KeySpan source.Span
	Value   PropValue
}

// Stmts owns the statement arena plus one payload arena per statement kind.
type Stmts struct {
	Arena      *Arena[Stmt]
	Containers *Arena[ContainerStmt]
	Nodes      *Arena[NodeStmt]
	Edges      *Arena[EdgeStmt]
	Metadatas  *Arena[MetadataStmt]
	Props      *Arena[Prop]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:      NewArena[Stmt](capHint),
		Containers: NewArena[ContainerStmt](capHint / 4),
		Nodes:      NewArena[NodeStmt](capHint),
		Edges:      NewArena[EdgeStmt](capHint / 2),
		Metadatas:  NewArena[MetadataStmt](capHint / 4),
		Props:      NewArena[Prop](capHint),
	}
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) Container(st *Stmt) *ContainerStmt {
	return s.Containers.Get(st.Payload)
}

func (s *Stmts) Node(st *Stmt) *NodeStmt {
	return s.Nodes.Get(st.Payload)
}

func (s *Stmts) Edge(st *Stmt) *EdgeStmt {
	return s.Edges.Get(st.Payload)
}

func (s *Stmts) Metadata(st *Stmt) *MetadataStmt {
	return s.Metadatas.Get(st.Payload)
}

func (s *Stmts) Prop(id PropID) *Prop {
	return s.Props.Get(uint32(id))
}

func (s *Stmts) NewContainer(span source.Span, payload ContainerStmt) StmtID {
	p := s.Containers.Allocate(payload)
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtContainer, Span: span, Payload: p}))
}

func (s *Stmts) NewNode(span source.Span, payload NodeStmt) StmtID {
	p := s.Nodes.Allocate(payload)
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtNode, Span: span, Payload: p}))
}

func (s *Stmts) NewEdge(span source.Span, payload EdgeStmt) StmtID {
	p := s.Edges.Allocate(payload)
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtEdge, Span: span, Payload: p}))
}

func (s *Stmts) NewMetadata(span source.Span, payload MetadataStmt) StmtID {
	p := s.Metadatas.Allocate(payload)
	return StmtID(s.Arena.Allocate(Stmt{Kind: StmtMetadata, Span: span, Payload: p}))
}

func (s *Stmts) NewProp(prop Prop) PropID {
	return PropID(s.Props.Allocate(prop))
}
