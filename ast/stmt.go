package ast

import "swiftify/typesys"

// ExprStmt wraps an expression used in statement position.
type ExprStmt struct {
	StmtBase
	X Expr
}

// VarDecl declares one or more local variables sharing a declaration
// keyword (`let`/`var`); each entry may have its own type and initializer.
type VarDecl struct {
	StmtBase
	Entries []VarDeclEntry
}

// VarDeclEntry is one declarator within a VarDecl.
type VarDeclEntry struct {
	Name        string
	Type        typesys.Type
	Init        Expr
	Ownership   Ownership
	IsConstant  bool
}

// Ownership records the Swift-relevant memory semantics carried over from
// the Objective-C property/variable qualifiers (spec §4.1).
type Ownership int

const (
	OwnershipStrong Ownership = iota
	OwnershipWeak
	OwnershipUnowned
)

// If is an if/else-if/else chain. Branches holds every `if`/`else if`
// condition+body pair; Else is the trailing unconditional branch, if any.
type If struct {
	StmtBase
	Branches []CondBranch
	Else     *Compound
}

// CondBranch is one conditional branch of an If.
type CondBranch struct {
	Cond Expr
	Body *Compound
}

// Switch is a Swift switch statement. Lowering always produces a non-empty
// Default (spec §3.2 invariant, §4.1: "a default branch is always present").
type Switch struct {
	StmtBase
	Subject Expr
	Cases   []SwitchCase
	Default *Compound
}

// SwitchCase is one case of a Switch; Patterns holds the label expressions
// (including range-expression patterns), and Fallthrough marks that this
// case's body falls into the next one.
type SwitchCase struct {
	Patterns    []Expr
	Body        *Compound
	Fallthrough bool
}

// While is `while cond { body }`.
type While struct {
	StmtBase
	Cond Expr
	Body *Compound
}

// RepeatWhile is `repeat { body } while cond`.
type RepeatWhile struct {
	StmtBase
	Body *Compound
	Cond Expr
}

// ForIn is `for name in seq { body }`, produced both from a recognised
// counted C-style loop (spec §4.1's counted-loop recognition, where Seq is a
// Range) and from an Objective-C fast-enumeration loop.
type ForIn struct {
	StmtBase
	Name string
	Seq  Expr
	Body *Compound
}

// Range is a Swift range expression, `a..<b` (half-open) or `a...b`
// (closed), used as the Seq of a ForIn produced by counted-loop recognition.
type Range struct {
	ExprBase
	Lo, Hi  Expr
	Closed  bool
}

// Do is a `do { body } catch { ... }` block. Catches may be empty for a
// plain `do` block used only for scoping (e.g. the @synchronized lowering).
type Do struct {
	StmtBase
	Body    *Compound
	Catches []CatchClause
}

// CatchClause is one `catch` arm of a Do.
type CatchClause struct {
	Pattern string // bound error name, or "" for a bare `catch`
	Body    *Compound
}

// Defer is `defer { body }`.
type Defer struct {
	StmtBase
	Body *Compound
}

// Throw is `throw expr`.
type Throw struct {
	StmtBase
	X Expr
}

// Break is `break` or `break label`.
type Break struct {
	StmtBase
	TargetLabel string
}

// Continue is `continue` or `continue label`.
type Continue struct {
	StmtBase
	TargetLabel string
}

// Fallthrough is Swift's explicit `fallthrough`.
type Fallthrough struct {
	StmtBase
}

// Return is `return` or `return expr`.
type Return struct {
	StmtBase
	X Expr // nil for a bare `return`
}

// Compound is a block of statements. Lowering flattens any Compound nested
// directly inside another Compound (spec §3.2 invariant); it is still its
// own node type because if/while/etc bodies and function bodies all need a
// place to hang a statement list.
type Compound struct {
	StmtBase
	Stmts []Statement
}

// LocalFunction is a Swift nested function declaration.
type LocalFunction struct {
	StmtBase
	Name   string
	Params []Param
	Return typesys.Type
	Body   *Compound
}

// Param is one parameter of a LocalFunction or closure.
type Param struct {
	Name string
	Type typesys.Type
}

// Unknown wraps a parse-tree context lowering could not translate (spec
// §4.1, §7 category 1). SourceText is the verbatim Objective-C text the
// emitter reproduces as a block comment; OriginRule names the grammar rule
// that was not recognised, for diagnostics.
type Unknown struct {
	StmtBase
	SourceText string
	OriginRule string
}

var (
	_ Statement = (*ExprStmt)(nil)
	_ Statement = (*VarDecl)(nil)
	_ Statement = (*If)(nil)
	_ Statement = (*Switch)(nil)
	_ Statement = (*While)(nil)
	_ Statement = (*RepeatWhile)(nil)
	_ Statement = (*ForIn)(nil)
	_ Statement = (*Do)(nil)
	_ Statement = (*Defer)(nil)
	_ Statement = (*Throw)(nil)
	_ Statement = (*Break)(nil)
	_ Statement = (*Continue)(nil)
	_ Statement = (*Fallthrough)(nil)
	_ Statement = (*Return)(nil)
	_ Statement = (*Compound)(nil)
	_ Statement = (*LocalFunction)(nil)
	_ Statement = (*Unknown)(nil)
)
