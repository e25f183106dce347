package cmd

import "swiftify/intent"

// Emitter consumes a finalized Intention Graph (every body lowered, every
// expression's resolved type filled in as far as inference could reach)
// and produces Swift source. It is the external collaborator named in spec
// §1/§6: this repository's core stops at the Intention Graph and does not
// know about Swift source text, formatting, or trivia, so no concrete
// Emitter ships here. `translate` reports a diagnostic and exits cleanly
// when none is registered, rather than fabricating one.
type Emitter interface {
	Emit(g *intent.Graph) error
}
