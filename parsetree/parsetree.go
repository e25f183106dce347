// Package parsetree defines the core's one contract with the Objective-C
// grammar lexer/parser, which is out of scope for this repository (spec
// §1, §6): "a parse-tree reader object exposing: child context accessors by
// grammar rule, token-text retrieval, and source-range queries. The core
// never reads files directly." Lowering (package lower) is written entirely
// against this interface; any concrete ANTLR- or tree-sitter-backed grammar
// can be wired in by implementing it.
package parsetree

import "swiftify/report"

// Node is one context node of an externally produced Objective-C parse
// tree. It is read by lowering only -- nothing in the core mutates it.
type Node interface {
	// Rule is the grammar rule name this node was produced for (e.g.
	// "forStatement", "ifStatement"). Used for diagnostics and to name the
	// rule in an Unknown statement when no lowering function matches.
	Rule() string

	// Child returns the first direct child produced for the given grammar
	// rule, or nil if there is none.
	Child(rule string) Node

	// Children returns every direct child produced for the given grammar
	// rule, in source order.
	Children(rule string) []Node

	// FirstChild returns this node's first direct child regardless of its
	// rule, or nil if it has none. Lowering uses this for role-tagged
	// wrapper contexts (e.g. a call expression's "callee" or "arg"
	// slot) whose single child is whatever expression rule actually
	// occupies that position.
	FirstChild() Node

	// Text returns the verbatim source text this node spans, used both for
	// token retrieval (identifiers, literals, spelled-out types) and for
	// preserving unrecognised constructs verbatim in Unknown nodes.
	Text() string

	// Span returns the source range this node covers.
	Span() *report.TextSpan
}
