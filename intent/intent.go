// Package intent implements the Intention Graph (spec §3.1, §4.2): a
// mutable, hierarchical model of the Swift program being synthesised.
// Intentions form a tree by ownership -- every node but the graph's files
// has exactly one parent -- and a graph by cross-reference, since a method
// body's AST can reference any other intention by name. The whole graph is
// built during lowering, mutated in place by intention passes (package
// passes), and discarded in one piece at the end of a run; individual
// intentions are never freed early (spec §3.1 Lifecycle).
package intent

import "swiftify/parsetree"

// Intention is the parent interface implemented by every node kind in the
// graph. It intentionally exposes only the ownership back-edge and
// provenance -- everything kind-specific lives on the concrete struct, the
// same way the teacher's AST nodes share only a span through ASTBase.
type Intention interface {
	// Parent is the unique intention that owns this one, or nil for a root
	// (a File). It is a non-owning back-edge: removing this intention from
	// its parent's child list must also clear this to nil (spec §3.1).
	Parent() Intention

	// Origin is the Objective-C parse-tree node this intention was derived
	// from, if any. It is read-only -- passes must never mutate it (spec
	// §3.1).
	Origin() parsetree.Node

	setParent(Intention)
}

// Base is embedded by every concrete intention kind to provide the parent
// back-edge and provenance uniformly.
type Base struct {
	parent Intention
	origin parsetree.Node
}

// NewBase creates a base with the given provenance. origin may be nil for
// intentions synthesised by a pass rather than derived from source (e.g. a
// synthesised property accessor).
func NewBase(origin parsetree.Node) Base {
	return Base{origin: origin}
}

func (b *Base) Parent() Intention      { return b.parent }
func (b *Base) Origin() parsetree.Node { return b.origin }
func (b *Base) setParent(p Intention)  { b.parent = p }
