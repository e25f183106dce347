// Package passes implements the Intention Passes (spec §4.4): the fixed
// catalogue of graph-wide analyses and rewrites that run after lowering has
// produced a complete Intention Graph. Each pass inspects and mutates the
// whole graph in place and reports whether it changed anything; the
// scheduler in this file reruns the catalogue, in declared order, until a
// full sweep changes nothing or an iteration cap is hit (spec §4.4's
// "passes are not commutative" contract -- order is part of the
// specification, not an implementation detail left to a topological sort).
package passes

import (
	"swiftify/intent"
	"swiftify/report"
)

// Pass is one entry in the standard pass catalogue. Run mutates g in place
// and reports whether it changed anything, the signal the scheduler uses to
// decide whether another sweep is needed.
type Pass interface {
	Name() string
	Run(g *intent.Graph, rep *report.Reporter) bool
}

// DefaultMaxIterations is the scheduler's iteration cap (spec §4.4:
// "default 16").
const DefaultMaxIterations = 16

// StandardCatalogue returns the seven passes of spec §4.4, in the declared
// order the scheduler must preserve.
func StandardCatalogue() []Pass {
	return []Pass{
		MergeTypeFragments{},
		SynthesizeAccessors{},
		PromoteReadonly{},
		ResolveIdentifiers{},
		InferExpressionTypes{},
		DeadCodeElimination{},
		PropagateNullability{},
	}
}

// Run applies the catalogue to g until a full sweep reports no change or
// maxIterations sweeps have run, whichever comes first. It returns the
// number of sweeps actually executed and reports report.PassConverged once
// per pass per sweep, carrying whether that run changed the graph.
func Run(g *intent.Graph, rep *report.Reporter, catalogue []Pass, maxIterations int) int {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	sweep := 0
	for ; sweep < maxIterations; sweep++ {
		anyChanged := false
		for _, p := range catalogue {
			changed := p.Run(g, rep)
			rep.Emit(report.PassConverged, nil, "pass %q sweep %d: changed=%v", p.Name(), sweep, changed)
			anyChanged = anyChanged || changed
		}
		if !anyChanged {
			sweep++
			break
		}
	}
	return sweep
}
