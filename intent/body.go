package intent

import "swiftify/ast"

// Body is the compound-statement AST backing a method, initializer,
// function, or property accessor (spec §3.1). It is the attachment point
// between the intention graph and the Swift AST produced by lowering.
type Body struct {
	Base

	Block *ast.Compound
}

// NewBody wraps a lowered compound statement as a body intention.
func NewBody(block *ast.Compound) *Body {
	return &Body{Block: block}
}

var _ Intention = (*Body)(nil)
