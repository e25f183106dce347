package cfg

// ExpandSubgraphs replaces every NodeSubgraph node in g with its inner
// graph's contents (spec §4.3 post-construction operation): for every
// predecessor edge `u -> N` and every successor edge `entry -> v` of the
// inner graph, it synthesises `u -> v`; symmetrically, for every successor
// edge `N -> w` and every predecessor edge `u -> exit` of the inner graph,
// it synthesises `u -> w`. The outer edge's back-edge flag propagates to
// every edge synthesised from it. Nested subgraphs are expanded first
// (inner graphs are fully flattened before they are spliced in).
func ExpandSubgraphs(g *Graph) {
	for _, n := range append([]*Node{}, g.Nodes...) {
		if n.Kind == NodeSubgraph {
			ExpandSubgraphs(n.Subgraph)
			spliceSubgraph(g, n)
		}
	}
}

func spliceSubgraph(g *Graph, n *Node) {
	inner := n.Subgraph
	inEdges := append([]*Edge{}, n.preds...)
	outEdges := append([]*Edge{}, n.succs...)

	for _, in := range inner.Nodes {
		if in == inner.Entry || in == inner.Exit {
			continue
		}
		g.addNode(in)
	}
	for _, e := range inner.Edges {
		if e.From == inner.Entry || e.To == inner.Exit {
			continue
		}
		g.Edges = append(g.Edges, e)
	}

	for _, ue := range inEdges {
		for _, ee := range inner.Entry.succs {
			g.addEdge(ue.From, ee.To, ue.BackEdge || ee.BackEdge, ee.Label)
		}
		g.removeEdge(ue)
	}
	for _, we := range outEdges {
		for _, ee := range inner.Exit.preds {
			g.addEdge(ee.From, we.To, we.BackEdge || ee.BackEdge, we.Label)
		}
		g.removeEdge(we)
	}

	g.removeNode(n)
}

func (g *Graph) removeNode(n *Node) {
	for i, x := range g.Nodes {
		if x == n {
			g.Nodes = append(g.Nodes[:i:i], g.Nodes[i+1:]...)
			return
		}
	}
}
