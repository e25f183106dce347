// Package listener implements the file-collection listener hook (spec §6):
// observers notified when an input file references another via
// #import/#include. Callbacks must be pure observers and may not mutate the
// graph, so they are handed a read-only Reference rather than the live
// intention graph or any of its nodes.
package listener

import "swiftify/report"

// Reference describes one #import/#include edge discovered while
// collecting input files, before lowering has built any intentions for
// either file.
type Reference struct {
	FromPath string
	ToPath   string
	Span     *report.TextSpan
}

// ImportObserver is notified of every discovered import edge.
type ImportObserver interface {
	OnImport(Reference)
}

// ImportObserverFunc adapts a plain function to ImportObserver.
type ImportObserverFunc func(Reference)

func (f ImportObserverFunc) OnImport(ref Reference) { f(ref) }

// Registry fans a discovered import edge out to every registered observer.
// It is the one piece of mutable state here, and it is intentionally not
// part of the intention graph: registering or firing observers never
// touches Graph.
type Registry struct {
	observers []ImportObserver
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an observer.
func (r *Registry) Register(o ImportObserver) {
	r.observers = append(r.observers, o)
}

// Notify fans ref out to every registered observer, in registration order.
func (r *Registry) Notify(ref Reference) {
	for _, o := range r.observers {
		o.OnImport(ref)
	}
}
