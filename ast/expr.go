package ast

import (
	"swiftify/report"
	"swiftify/typesys"
)

// Expr is the parent interface for every Swift expression node (spec §3.2).
type Expr interface {
	Span() *report.TextSpan

	// ResolvedType is filled in by the expression-type-inference pass (spec
	// §4.4 item 5); it is nil at construction and stays nil if inference
	// could not determine a type (spec §7 category 2).
	ResolvedType() typesys.Type
	SetResolvedType(typesys.Type)

	exprNode()
}

// ExprBase is embedded by every concrete Expr.
type ExprBase struct {
	span         *report.TextSpan
	resolvedType typesys.Type
}

func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{span: span}
}

func (eb *ExprBase) Span() *report.TextSpan         { return eb.span }
func (eb *ExprBase) ResolvedType() typesys.Type     { return eb.resolvedType }
func (eb *ExprBase) SetResolvedType(t typesys.Type) { eb.resolvedType = t }
func (*ExprBase) exprNode()                         {}

// -----------------------------------------------------------------------------
// Expression variants (spec §3.2).

// Constant is a literal value: a number, string, boolean, or nil literal.
type Constant struct {
	ExprBase
	Kind  ConstantKind
	Value string
}

type ConstantKind int

const (
	ConstInt ConstantKind = iota
	ConstFloat
	ConstString
	ConstBool
	ConstNil
)

// Identifier is a named value reference.
type Identifier struct {
	ExprBase
	Name string

	// ResolvedScope records where identifier resolution (spec §4.4 item 4)
	// found this name's declaration: "local", "param", "member", "type", or
	// "global"; empty if no visible declaration matched. Kept as a plain
	// scope tag rather than a pointer into package intent, since ast must
	// not import intent (intent.Body already embeds *ast.Compound the other
	// way).
	ResolvedScope string
}

// Binary is a binary operator application, e.g. `a + b`.
type Binary struct {
	ExprBase
	Op       string
	Lhs, Rhs Expr
}

// Assignment is `lhs = rhs` or a compound form (`lhs += rhs`); Op is "" for
// plain assignment and the compound operator spelling (e.g. "+=") otherwise.
type Assignment struct {
	ExprBase
	Op       string
	Lhs, Rhs Expr
}

// PostfixCall is a function/method call, e.g. `f(a, b)`.
type PostfixCall struct {
	ExprBase
	Callee Expr
	Args   []Expr
}

// PostfixSubscript is `base[index]`.
type PostfixSubscript struct {
	ExprBase
	Base, Index Expr
}

// PostfixMember is `base.member`.
type PostfixMember struct {
	ExprBase
	Base   Expr
	Member string
}

// Unary is a unary operator application, e.g. `-x`, `!x`, `&x`.
type Unary struct {
	ExprBase
	Op      string
	Operand Expr
}

// Cast is `operand as Type` (or `as!`/`as?` when Force/Optional is set).
type Cast struct {
	ExprBase
	Operand  Expr
	Target   typesys.Type
	Force    bool
	Optional bool
}

// Ternary is `cond ? then : else`.
type Ternary struct {
	ExprBase
	Cond, Then, Else Expr
}

// BlockLiteral is a Swift closure literal, e.g. `{ x in x + 1 }`.
type BlockLiteral struct {
	ExprBase
	Params []string
	Body   *Compound
}

// Parens is a parenthesized sub-expression, kept distinct from its inner
// expression so that re-emission can decide whether parentheses are still
// needed rather than always reproducing the source's grouping.
type Parens struct {
	ExprBase
	Inner Expr
}
