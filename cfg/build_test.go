package cfg

import (
	"testing"

	"swiftify/ast"
)

func exprStmt() *ast.ExprStmt {
	return &ast.ExprStmt{X: &ast.Identifier{Name: "x"}}
}

// TestBuildIfElseShape checks the worked example from spec §5:
// `if(c){A}else{B};C` builds to {entry, c, A, B, C, exit} with edges
// entry->c, c->A, c->B, A->C, B->C, C->exit and no back edges.
func TestBuildIfElseShape(t *testing.T) {
	a := exprStmt()
	bStmt := exprStmt()
	c := exprStmt()
	ifStmt := &ast.If{
		Branches: []ast.CondBranch{{
			Cond: &ast.Identifier{Name: "c"},
			Body: &ast.Compound{Stmts: []ast.Statement{a}},
		}},
		Else: &ast.Compound{Stmts: []ast.Statement{bStmt}},
	}
	body := &ast.Compound{Stmts: []ast.Statement{ifStmt, c}}

	g := Build(body)
	Prune(g)
	MarkBackEdges(g)

	if len(g.Nodes) != 6 {
		t.Fatalf("expected 6 nodes (entry, c, A, B, C, exit), got %d", len(g.Nodes))
	}
	if len(g.Edges) != 6 {
		t.Fatalf("expected 6 edges, got %d", len(g.Edges))
	}
	for _, e := range g.Edges {
		if e.BackEdge {
			t.Errorf("unexpected back edge %+v in an acyclic graph", e)
		}
	}

	// entry has exactly one successor: the decision node for `if`.
	if len(g.Entry.succs) != 1 {
		t.Fatalf("expected entry to have 1 successor, got %d", len(g.Entry.succs))
	}
	decision := g.Entry.succs[0].To
	if decision.Stmt != ast.Statement(ifStmt) {
		t.Fatalf("expected entry's successor to be the if decision node")
	}
	if len(decision.succs) != 2 {
		t.Fatalf("expected the if decision node to have 2 successors (true/false), got %d", len(decision.succs))
	}

	// Both branch bodies converge on the same node (C's statement node).
	trueTail := decision.succs[0].To
	falseTail := decision.succs[1].To
	if len(trueTail.succs) != 1 || len(falseTail.succs) != 1 {
		t.Fatalf("expected each branch body to have exactly one successor")
	}
	if trueTail.succs[0].To != falseTail.succs[0].To {
		t.Fatalf("expected both branches to converge on the same merge node")
	}
	merge := trueTail.succs[0].To
	if merge.Stmt != ast.Statement(c) {
		t.Fatalf("expected the merge node to be C's statement node")
	}
	if len(merge.succs) != 1 || merge.succs[0].To != g.Exit {
		t.Fatalf("expected C to flow directly to exit")
	}
}

// TestBuildWhileBackEdge checks that a while loop whose body holds a
// continue and a break yields at least one edge flagged as a back edge.
func TestBuildWhileBackEdge(t *testing.T) {
	brk := &ast.Break{}
	cont := &ast.Continue{}
	whileStmt := &ast.While{
		Cond: &ast.Identifier{Name: "c"},
		Body: &ast.Compound{Stmts: []ast.Statement{cont, brk}},
	}
	g := Build(&ast.Compound{Stmts: []ast.Statement{whileStmt}})
	MarkBackEdges(g)

	var backEdges int
	for _, e := range g.Edges {
		if e.BackEdge {
			backEdges++
		}
	}
	if backEdges == 0 {
		t.Fatalf("expected at least one back edge in a while loop")
	}
}

// TestBuildDeferOnReturn checks that a defer registered before a return
// runs between the return statement and exit.
func TestBuildDeferOnReturn(t *testing.T) {
	deferStmt := &ast.Defer{Body: &ast.Compound{Stmts: []ast.Statement{exprStmt()}}}
	ret := &ast.Return{}
	g := Build(&ast.Compound{Stmts: []ast.Statement{deferStmt, ret}})

	// entry -> defer declaration node -> return node -> deferred body node -> exit
	if len(g.Entry.succs) != 1 {
		t.Fatalf("expected 1 successor from entry")
	}
	deferNode := g.Entry.succs[0].To
	if deferNode.Stmt != ast.Statement(deferStmt) {
		t.Fatalf("expected entry's successor to be the defer declaration")
	}
	if len(deferNode.succs) != 1 {
		t.Fatalf("expected the defer declaration node to have exactly one successor")
	}
	retNode := deferNode.succs[0].To
	if retNode.Stmt != ast.Statement(ret) {
		t.Fatalf("expected the defer declaration's successor to be the return statement")
	}
	if len(retNode.succs) != 1 {
		t.Fatalf("expected the return node to have exactly one successor")
	}
	deferredBody := retNode.succs[0].To
	if deferredBody.Kind != NodeStmt {
		t.Fatalf("expected the deferred body's statement to be threaded in before exit")
	}
	if len(deferredBody.succs) != 1 || deferredBody.succs[0].To != g.Exit {
		t.Fatalf("expected the deferred body to flow to exit")
	}
}

// TestDeepCopyEqual verifies the round-trip property from spec §8:
// cfg.ShallowCopy().DeepCopy() is structurally equal to cfg.
func TestDeepCopyEqual(t *testing.T) {
	ifStmt := &ast.If{
		Branches: []ast.CondBranch{{
			Cond: &ast.Identifier{Name: "c"},
			Body: &ast.Compound{Stmts: []ast.Statement{exprStmt()}},
		}},
	}
	g := Build(&ast.Compound{Stmts: []ast.Statement{ifStmt, exprStmt()}})

	copied := g.ShallowCopy().DeepCopy()
	if !Equal(g, copied) {
		t.Fatalf("expected DeepCopy to be structurally equal to the original")
	}
	if copied.Entry == g.Entry {
		t.Fatalf("expected DeepCopy to allocate new nodes, not share the original entry")
	}
}

// TestExpandSubgraphs checks that a nested function's subgraph node
// disappears after expansion, replaced by direct edges into and out of its
// inner flow.
func TestExpandSubgraphs(t *testing.T) {
	nested := &ast.LocalFunction{
		Name: "helper",
		Body: &ast.Compound{Stmts: []ast.Statement{exprStmt()}},
	}
	g := Build(&ast.Compound{Stmts: []ast.Statement{nested, exprStmt()}})

	var sawSubgraph bool
	for _, n := range g.Nodes {
		if n.Kind == NodeSubgraph {
			sawSubgraph = true
		}
	}
	if !sawSubgraph {
		t.Fatalf("expected a NodeSubgraph node for the nested function before expansion")
	}

	ExpandSubgraphs(g)
	for _, n := range g.Nodes {
		if n.Kind == NodeSubgraph {
			t.Fatalf("expected no NodeSubgraph nodes after ExpandSubgraphs")
		}
	}
	if reach := reachableFrom(g.Entry); !reach[g.Exit] {
		t.Fatalf("expected exit to remain reachable after expansion")
	}
}
