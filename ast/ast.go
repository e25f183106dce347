// Package ast is the Swift-shaped statement/expression AST that lowering
// produces and that intention passes consume and rewrite (spec §3.2). It is
// a closed sum type per node family: Statement and Expr are implemented by a
// fixed set of structs so that lowering and the CFG builder can exhaustively
// switch over node kind, the way the teacher's own ast package does for its
// (unrelated) Chai AST.
package ast

import "swiftify/report"

// Statement is the parent interface for every Swift statement node.
type Statement interface {
	Span() *report.TextSpan

	// Label returns the statement's loop/switch label, if any (e.g.
	// `outer: while ... `). Empty string means unlabeled.
	Label() string
	SetLabel(string)

	// Comments returns the leading and trailing comments attached to this
	// statement by lowering or by a later pass. Either may be nil.
	Comments() (leading, trailing []string)
	SetComments(leading, trailing []string)

	stmtNode()
}

// StmtBase is embedded by every concrete Statement to provide the shared
// span/label/comment bookkeeping without repeating it per node type.
type StmtBase struct {
	span              *report.TextSpan
	label             string
	leading, trailing []string
}

// NewStmtBase creates a statement base spanning the given source range.
func NewStmtBase(span *report.TextSpan) StmtBase {
	return StmtBase{span: span}
}

func (sb *StmtBase) Span() *report.TextSpan { return sb.span }

func (sb *StmtBase) Label() string     { return sb.label }
func (sb *StmtBase) SetLabel(l string) { sb.label = l }

func (sb *StmtBase) Comments() (leading, trailing []string) { return sb.leading, sb.trailing }
func (sb *StmtBase) SetComments(leading, trailing []string) {
	sb.leading, sb.trailing = leading, trailing
}

func (*StmtBase) stmtNode() {}
