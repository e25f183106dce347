package cfg

// ShallowCopy returns a new Graph with its own Nodes/Edges slices, but
// sharing the underlying *Node/*Edge values with g: mutating a node's
// fields through either graph is visible in both.
func (g *Graph) ShallowCopy() *Graph {
	return &Graph{
		Entry: g.Entry,
		Exit:  g.Exit,
		Nodes: append([]*Node{}, g.Nodes...),
		Edges: append([]*Edge{}, g.Edges...),
	}
}

// DeepCopy clones every node and edge. AST statements referenced by Stmt
// are not cloned -- they are not owned by the CFG -- so the copy still
// points at the same source statements as g.
func (g *Graph) DeepCopy() *Graph {
	ng := &Graph{}
	nodeMap := make(map[*Node]*Node, len(g.Nodes))
	for _, n := range g.Nodes {
		nn := &Node{Kind: n.Kind, Stmt: n.Stmt, Index: n.Index, ScopeVar: n.ScopeVar}
		if n.Subgraph != nil {
			nn.Subgraph = n.Subgraph.DeepCopy()
		}
		nodeMap[n] = nn
		ng.Nodes = append(ng.Nodes, nn)
	}
	for _, e := range g.Edges {
		ng.addEdge(nodeMap[e.From], nodeMap[e.To], e.BackEdge, e.Label)
	}
	ng.Entry = nodeMap[g.Entry]
	ng.Exit = nodeMap[g.Exit]
	return ng
}

// Equal reports whether a and b are structurally identical up to node
// identity: same shape, with corresponding nodes carrying the same Kind,
// Index, ScopeVar and Stmt reference, and corresponding edges carrying the
// same BackEdge flag and Label. It walks both graphs together from their
// entry nodes so it terminates on cyclic graphs.
func Equal(a, b *Graph) bool {
	if len(a.Nodes) != len(b.Nodes) || len(a.Edges) != len(b.Edges) {
		return false
	}
	matched := make(map[*Node]*Node)
	if !equalFrom(a.Entry, b.Entry, matched) {
		return false
	}
	return equalFrom(a.Exit, b.Exit, matched)
}

func equalFrom(x, y *Node, matched map[*Node]*Node) bool {
	if m, ok := matched[x]; ok {
		return m == y
	}
	if !nodesEqual(x, y) || len(x.succs) != len(y.succs) {
		return false
	}
	matched[x] = y
	for i, ex := range x.succs {
		ey := y.succs[i]
		if ex.BackEdge != ey.BackEdge || ex.Label != ey.Label {
			return false
		}
		if !equalFrom(ex.To, ey.To, matched) {
			return false
		}
	}
	return true
}

func nodesEqual(x, y *Node) bool {
	if x.Kind != y.Kind || x.Index != y.Index || x.ScopeVar != y.ScopeVar || x.Stmt != y.Stmt {
		return false
	}
	if (x.Subgraph == nil) != (y.Subgraph == nil) {
		return false
	}
	if x.Subgraph != nil {
		return Equal(x.Subgraph, y.Subgraph)
	}
	return true
}
