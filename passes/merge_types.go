package passes

import (
	"swiftify/intent"
	"swiftify/report"
)

// MergeTypeFragments implements spec §4.4 item 1: fold every type fragment
// (an Objective-C category or class-extension lowers to its own Type
// intention sharing its base class's name) into one canonical identity per
// fully-qualified name. intent.Graph.AddType already carries the merge
// logic (spec §3.1: "its identity is the fully-qualified type name"); this
// pass is what actually walks every file's declared fragments and runs it,
// since a fragment only gets merged once something calls AddType on it --
// lowering adds a type to its owning File but does not itself register it
// with the graph.
type MergeTypeFragments struct{}

func (MergeTypeFragments) Name() string { return "merge-type-fragments" }

func (MergeTypeFragments) Run(g *intent.Graph, _ *report.Reporter) bool {
	changed := false
	for _, f := range g.Files {
		for i, t := range f.Types {
			canonical := g.AddType(t)
			if canonical != t {
				f.Types[i] = canonical
				changed = true
			}
		}
	}
	return changed
}
