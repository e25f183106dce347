package passes

import (
	"swiftify/ast"
	"swiftify/cfg"
	"swiftify/intent"
	"swiftify/report"
)

// DeadCodeElimination implements spec §4.4 item 6: build each body's CFG on
// demand, expand any subgraphs (a LocalFunction's nested body) so every
// statement at every nesting depth is a node of one graph, prune what
// entry cannot reach, and then drop the corresponding statements from the
// AST -- CFG construction and analysis already did the reachability work
// in package cfg; this pass is just the bridge back from "node not in the
// pruned graph" to "statement removed from its Compound".
type DeadCodeElimination struct{}

func (DeadCodeElimination) Name() string { return "dead-code-elimination" }

func (DeadCodeElimination) Run(g *intent.Graph, _ *report.Reporter) bool {
	changed := false
	for _, t := range g.Types() {
		for _, m := range t.Methods {
			if pruneBody(m.Body) {
				changed = true
			}
		}
		for _, p := range t.Properties {
			if pruneBody(p.Getter) {
				changed = true
			}
			if pruneBody(p.Setter) {
				changed = true
			}
		}
	}
	for _, f := range g.Files {
		for _, gf := range f.Globals {
			if pruneBody(gf.Body) {
				changed = true
			}
		}
	}
	return changed
}

func pruneBody(b *intent.Body) bool {
	if b == nil || b.Block == nil || len(b.Block.Stmts) == 0 {
		return false
	}

	graph := cfg.Build(b.Block)
	cfg.ExpandSubgraphs(graph)
	cfg.MarkBackEdges(graph)
	cfg.Prune(graph)

	reachable := make(map[ast.Statement]bool, len(graph.Nodes))
	for _, n := range graph.Nodes {
		if n.Stmt != nil {
			reachable[n.Stmt] = true
		}
	}

	filtered, changed := pruneStmts(b.Block.Stmts, reachable)
	b.Block.Stmts = filtered
	return changed
}

// pruneStmts drops every statement not present in reachable, and recurses
// into the nested bodies of every statement that survives.
func pruneStmts(stmts []ast.Statement, reachable map[ast.Statement]bool) ([]ast.Statement, bool) {
	changed := false
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		if !reachable[s] {
			changed = true
			continue
		}
		if pruneNested(s, reachable) {
			changed = true
		}
		out = append(out, s)
	}
	return out, changed
}

func pruneScope(c *ast.Compound, reachable map[ast.Statement]bool) bool {
	if c == nil {
		return false
	}
	filtered, changed := pruneStmts(c.Stmts, reachable)
	c.Stmts = filtered
	return changed
}

func pruneNested(s ast.Statement, reachable map[ast.Statement]bool) bool {
	changed := false
	switch st := s.(type) {
	case *ast.If:
		for i := range st.Branches {
			if pruneScope(st.Branches[i].Body, reachable) {
				changed = true
			}
		}
		if pruneScope(st.Else, reachable) {
			changed = true
		}
	case *ast.Switch:
		for i := range st.Cases {
			if pruneScope(st.Cases[i].Body, reachable) {
				changed = true
			}
		}
		if pruneScope(st.Default, reachable) {
			changed = true
		}
	case *ast.While:
		changed = pruneScope(st.Body, reachable)
	case *ast.RepeatWhile:
		changed = pruneScope(st.Body, reachable)
	case *ast.ForIn:
		changed = pruneScope(st.Body, reachable)
	case *ast.Do:
		if pruneScope(st.Body, reachable) {
			changed = true
		}
		for i := range st.Catches {
			if pruneScope(st.Catches[i].Body, reachable) {
				changed = true
			}
		}
	case *ast.Defer:
		changed = pruneScope(st.Body, reachable)
	case *ast.Compound:
		changed = pruneScope(st, reachable)
	case *ast.LocalFunction:
		changed = pruneScope(st.Body, reachable)
	}
	return changed
}
