package report

import "fmt"

// EventKind enumerates the structured diagnostic events the core emits to
// external listeners per spec §6. These are distinct from the human-facing
// Messages above: a caller that wants to count "how many rules went
// unrecognized" or drive a progress UI off "pass converged" should consume
// these instead of scraping message text.
type EventKind int

const (
	// RuleNotRecognized fires whenever lowering could not find a translation
	// rule for a parse-tree context and fell back to an `unknown` node.
	RuleNotRecognized EventKind = iota

	// UnknownTypeEncountered is the kind for an Objective-C type expression
	// the type mapper passes through unchanged. No code in this repository
	// emits it: typesys.MapperContext.Map takes no Reporter.
	UnknownTypeEncountered

	// PassConverged fires after each intention pass run in each scheduler
	// sweep; its message records the sweep number and whether the pass
	// changed the graph.
	PassConverged

	// ProtocolInheritanceCycle fires once per cycle discovered among
	// protocol types' Supertype (refinement) links.
	ProtocolInheritanceCycle
)

// Event is one structured diagnostic. Span may be nil for events that are
// not tied to a single source location (e.g. PassConverged).
type Event struct {
	Kind    EventKind
	Span    *TextSpan
	Message string
}

// Emit records a structured event. Emit never blocks and never fails: the
// core's contract is that event production can never be a source of
// backpressure on the pipeline.
func (r *Reporter) Emit(kind EventKind, span *TextSpan, format string, args ...interface{}) {
	r.m.Lock()
	defer r.m.Unlock()

	r.events = append(r.events, Event{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)})
}

// Events returns a snapshot of every structured event recorded so far.
func (r *Reporter) Events() []Event {
	r.m.Lock()
	defer r.m.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}
