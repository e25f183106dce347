package cfg

// MarkBackEdges flags every edge whose target is already on the current
// depth-first path from entry as a back edge (spec glossary: "an edge whose
// target precedes its source in DFS order from entry"). The construction
// rules already mark a loop's own body-to-header edge as a back edge at
// build time; running this afterward re-derives the same flag from the
// graph's shape alone, which matters once ExpandSubgraphs or manual graph
// surgery has changed the topology underneath those original edges.
//
// spec §4.3 describes this as a breadth-first traversal, but a back edge is
// only meaningful relative to a DFS path (a BFS frontier has no notion of
// "nodes currently on the path from entry"); this implementation follows
// the glossary's DFS definition instead.
func MarkBackEdges(g *Graph) {
	onPath := make(map[*Node]bool, len(g.Nodes))
	visited := make(map[*Node]bool, len(g.Nodes))

	var visit func(n *Node)
	visit = func(n *Node) {
		visited[n] = true
		onPath[n] = true
		for _, e := range n.succs {
			if onPath[e.To] {
				e.BackEdge = true
			} else if !visited[e.To] {
				visit(e.To)
			}
		}
		onPath[n] = false
	}
	visit(g.Entry)
}

// Prune removes every node unreachable from entry, and the edges that
// referenced them (spec §4.3: "any node unreachable from entry is
// removed"). Entry and exit are always kept even if exit happens to be
// unreachable, to preserve the one-entry/one-exit well-formedness
// invariant (spec §8); an unreachable exit is itself a sign the body ends
// in an infinite loop with no throw.
func Prune(g *Graph) {
	reachable := reachableFrom(g.Entry)
	reachable[g.Exit] = true

	kept := make([]*Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if reachable[n] {
			kept = append(kept, n)
		}
	}
	g.Nodes = kept

	keptEdges := make([]*Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if reachable[e.From] && reachable[e.To] {
			keptEdges = append(keptEdges, e)
		} else {
			e.From.succs = removeEdgeFromList(e.From.succs, e)
			e.To.preds = removeEdgeFromList(e.To.preds, e)
		}
	}
	g.Edges = keptEdges
}

func reachableFrom(start *Node) map[*Node]bool {
	seen := map[*Node]bool{start: true}
	stack := []*Node{start}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.succs {
			if !seen[e.To] {
				seen[e.To] = true
				stack = append(stack, e.To)
			}
		}
	}
	return seen
}
