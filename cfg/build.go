package cfg

import "swiftify/ast"

// loopFrame records what a break/continue inside the current loop must
// target, and how many defers were active when the loop was entered so
// that jumping out only runs the defers registered since (spec §4.3:
// "the deferred body is wired so that every exit edge from the enclosing
// scope first flows through it").
type loopFrame struct {
	continueTarget *Node
	breakTarget    *Node
	deferDepth     int
}

// catchFrame records the nearest enclosing catch dispatch point a throw
// must route to (spec §4.3: "throw... wire[s]... to the nearest enclosing
// catch").
type catchFrame struct {
	dispatch   *Node
	deferDepth int
}

type builder struct {
	g      *Graph
	loops  []loopFrame
	catches []catchFrame
	defers []*ast.Defer
}

// Build constructs the CFG for one method/function body (spec §4.3
// contract): entry dominates every reachable node, and every non-exit path
// reaches either exit or a terminal statement.
func Build(body *ast.Compound) *Graph {
	g := newGraph()
	b := &builder{g: g}
	var stmts []ast.Statement
	if body != nil {
		stmts = body.Stmts
	}
	tails := b.buildScoped(stmts, []*Node{g.Entry})
	connectAll(g, tails, g.Exit)
	return g
}

func connectAll(g *Graph, froms []*Node, to *Node) {
	for _, f := range froms {
		g.addEdge(f, to, false, "")
	}
}

// labelNewEdges labels every edge appended to n.succs since index before,
// leaving any edge that already carries a label untouched.
func labelNewEdges(n *Node, before int, label string) {
	for _, e := range n.succs[before:] {
		if e.Label == "" {
			e.Label = label
		}
	}
}

// threadDefers wires preds through the active defer bodies registered from
// index `from` to the top of the stack, innermost first (LIFO unwind), and
// returns the resulting tail(s).
func (b *builder) threadDefers(preds []*Node, from int) []*Node {
	cur := preds
	for i := len(b.defers) - 1; i >= from; i-- {
		var stmts []ast.Statement
		if b.defers[i].Body != nil {
			stmts = b.defers[i].Body.Stmts
		}
		cur = b.buildStmts(stmts, cur)
	}
	return cur
}

// buildScoped builds stmts as one lexical scope: defers registered directly
// in it (not inside a nested scope) run on normal fallthrough exit before
// the scope's tail is returned to the caller.
func (b *builder) buildScoped(stmts []ast.Statement, preds []*Node) []*Node {
	if len(stmts) == 0 {
		j := b.g.addNode(&Node{Kind: NodeJunction})
		connectAll(b.g, preds, j)
		return []*Node{j}
	}
	depth := len(b.defers)
	cur := b.buildStmts(stmts, preds)
	cur = b.threadDefers(cur, depth)
	b.defers = b.defers[:depth]
	return cur
}

// buildBody is buildScoped for a possibly-nil *ast.Compound.
func (b *builder) buildBody(body *ast.Compound, preds []*Node) []*Node {
	var stmts []ast.Statement
	if body != nil {
		stmts = body.Stmts
	}
	return b.buildScoped(stmts, preds)
}

func (b *builder) buildStmts(stmts []ast.Statement, preds []*Node) []*Node {
	cur := preds
	for _, s := range stmts {
		cur = b.buildStmt(s, cur)
		if cur == nil {
			// Every remaining statement in this list is unreachable; later
			// dead-code elimination (spec §5 item 6) removes them from the
			// AST once the CFG confirms it. Construction still needs a
			// dangling node to hang the rest off so it can be pruned by
			// Prune rather than dropped silently here.
			j := b.g.addNode(&Node{Kind: NodeJunction})
			cur = []*Node{j}
		}
	}
	return cur
}

// buildStmt builds one statement, connecting it from preds, and returns the
// node(s) control falls through to afterward -- nil if the statement never
// falls through (return, throw, break, continue).
func (b *builder) buildStmt(s ast.Statement, preds []*Node) []*Node {
	switch st := s.(type) {
	case *ast.Compound:
		return b.buildScoped(st.Stmts, preds)

	case *ast.If:
		return b.buildIf(st, preds)
	case *ast.Switch:
		return b.buildSwitch(st, preds)
	case *ast.While:
		return b.buildWhile(st, preds)
	case *ast.RepeatWhile:
		return b.buildRepeatWhile(st, preds)
	case *ast.ForIn:
		return b.buildForIn(st, preds)
	case *ast.Do:
		return b.buildDo(st, preds)

	case *ast.Defer:
		n := b.g.addNode(&Node{Kind: NodeStmt, Stmt: s})
		connectAll(b.g, preds, n)
		b.defers = append(b.defers, st)
		return []*Node{n}

	case *ast.Return:
		n := b.g.addNode(&Node{Kind: NodeStmt, Stmt: s})
		connectAll(b.g, preds, n)
		tails := b.threadDefers([]*Node{n}, 0)
		connectAll(b.g, tails, b.g.Exit)
		return nil

	case *ast.Throw:
		n := b.g.addNode(&Node{Kind: NodeStmt, Stmt: s})
		connectAll(b.g, preds, n)
		if len(b.catches) > 0 {
			frame := b.catches[len(b.catches)-1]
			tails := b.threadDefers([]*Node{n}, frame.deferDepth)
			connectAll(b.g, tails, frame.dispatch)
		} else {
			tails := b.threadDefers([]*Node{n}, 0)
			connectAll(b.g, tails, b.g.Exit)
		}
		return nil

	case *ast.Break:
		return b.buildJump(s, preds, findLoop(b.loops, st.TargetLabel).breakTarget, findLoop(b.loops, st.TargetLabel).deferDepth)

	case *ast.Continue:
		return b.buildJump(s, preds, findLoop(b.loops, st.TargetLabel).continueTarget, findLoop(b.loops, st.TargetLabel).deferDepth)

	case *ast.LocalFunction:
		inner := Build(st.Body)
		n := b.g.addNode(&Node{Kind: NodeSubgraph, Stmt: s, Subgraph: inner})
		connectAll(b.g, preds, n)
		return []*Node{n}

	default:
		// ExprStmt, VarDecl, Fallthrough, Unknown: single opaque node.
		n := b.g.addNode(&Node{Kind: NodeStmt, Stmt: s})
		connectAll(b.g, preds, n)
		return []*Node{n}
	}
}

// buildJump threads preds through the defers registered since deferDepth
// and connects the result to target -- the shared shape of break/continue.
func (b *builder) buildJump(s ast.Statement, preds []*Node, target *Node, deferDepth int) []*Node {
	n := b.g.addNode(&Node{Kind: NodeStmt, Stmt: s})
	connectAll(b.g, preds, n)
	tails := b.threadDefers([]*Node{n}, deferDepth)
	connectAll(b.g, tails, target)
	return nil
}

// findLoop resolves a break/continue's target loop frame. Labelled
// break/continue (targeting an outer loop by name) is not distinguished
// from the innermost loop here: the surface language this pipeline
// translates from has no labelled loops, so TargetLabel is always empty in
// practice and the innermost frame is always the right one.
func findLoop(loops []loopFrame, _ string) loopFrame {
	return loops[len(loops)-1]
}

func (b *builder) buildIf(st *ast.If, preds []*Node) []*Node {
	var tails []*Node
	cur := preds
	for i, branch := range st.Branches {
		dn := b.g.addNode(&Node{Kind: NodeStmt, Stmt: st, Index: i})
		connectAll(b.g, cur, dn)
		before := len(dn.succs)
		bodyTails := b.buildBody(branch.Body, []*Node{dn})
		labelNewEdges(dn, before, "true")
		tails = append(tails, bodyTails...)
		cur = []*Node{dn}
	}
	if st.Else != nil {
		before := len(cur[0].succs)
		elseTails := b.buildBody(st.Else, cur)
		labelNewEdges(cur[0], before, "false")
		tails = append(tails, elseTails...)
	} else {
		tails = append(tails, cur...)
	}
	return tails
}

func (b *builder) buildSwitch(st *ast.Switch, preds []*Node) []*Node {
	dn := b.g.addNode(&Node{Kind: NodeStmt, Stmt: st})
	connectAll(b.g, preds, dn)

	type spec struct {
		body        *ast.Compound
		fallsThrough bool
	}
	specs := make([]spec, 0, len(st.Cases)+1)
	for _, c := range st.Cases {
		specs = append(specs, spec{body: c.Body, fallsThrough: c.Fallthrough})
	}
	specs = append(specs, spec{body: st.Default})

	var tails []*Node
	var prevTails []*Node
	prevFell := false
	for i, sp := range specs {
		from := []*Node{dn}
		if prevFell {
			from = append(from, prevTails...)
		}
		before := len(dn.succs)
		bodyTails := b.buildBody(sp.body, from)
		label := "case"
		if i == len(specs)-1 {
			label = "default"
		}
		labelNewEdges(dn, before, label)
		if sp.fallsThrough {
			prevTails = bodyTails
			prevFell = true
		} else {
			tails = append(tails, bodyTails...)
			prevFell = false
		}
	}
	if prevFell {
		tails = append(tails, prevTails...)
	}
	return tails
}

func (b *builder) buildWhile(st *ast.While, preds []*Node) []*Node {
	dn := b.g.addNode(&Node{Kind: NodeStmt, Stmt: st})
	connectAll(b.g, preds, dn)
	breakNode := b.g.addNode(&Node{Kind: NodeJunction})
	b.loops = append(b.loops, loopFrame{continueTarget: dn, breakTarget: breakNode, deferDepth: len(b.defers)})
	before := len(dn.succs)
	bodyTails := b.buildBody(st.Body, []*Node{dn})
	labelNewEdges(dn, before, "true")
	for _, t := range bodyTails {
		b.g.addEdge(t, dn, true, "")
	}
	b.loops = b.loops[:len(b.loops)-1]
	b.g.addEdge(dn, breakNode, false, "false")
	return []*Node{breakNode}
}

func (b *builder) buildRepeatWhile(st *ast.RepeatWhile, preds []*Node) []*Node {
	bodyEntry := b.g.addNode(&Node{Kind: NodeJunction})
	connectAll(b.g, preds, bodyEntry)
	breakNode := b.g.addNode(&Node{Kind: NodeJunction})
	dn := b.g.addNode(&Node{Kind: NodeStmt, Stmt: st})
	b.loops = append(b.loops, loopFrame{continueTarget: dn, breakTarget: breakNode, deferDepth: len(b.defers)})
	bodyTails := b.buildBody(st.Body, []*Node{bodyEntry})
	connectAll(b.g, bodyTails, dn)
	b.loops = b.loops[:len(b.loops)-1]
	b.g.addEdge(dn, bodyEntry, true, "true")
	b.g.addEdge(dn, breakNode, false, "false")
	return []*Node{breakNode}
}

func (b *builder) buildForIn(st *ast.ForIn, preds []*Node) []*Node {
	dn := b.g.addNode(&Node{Kind: NodeStmt, Stmt: st})
	connectAll(b.g, preds, dn)
	breakNode := b.g.addNode(&Node{Kind: NodeJunction})
	b.loops = append(b.loops, loopFrame{continueTarget: dn, breakTarget: breakNode, deferDepth: len(b.defers)})
	before := len(dn.succs)
	bodyTails := b.buildBody(st.Body, []*Node{dn})
	labelNewEdges(dn, before, "next")
	for _, t := range bodyTails {
		b.g.addEdge(t, dn, true, "")
	}
	b.loops = b.loops[:len(b.loops)-1]
	b.g.addEdge(dn, breakNode, false, "done")
	return []*Node{breakNode}
}

func (b *builder) buildDo(st *ast.Do, preds []*Node) []*Node {
	dn := b.g.addNode(&Node{Kind: NodeStmt, Stmt: st})
	connectAll(b.g, preds, dn)

	if len(st.Catches) == 0 {
		return b.buildBody(st.Body, []*Node{dn})
	}

	catchDispatch := b.g.addNode(&Node{Kind: NodeJunction})
	b.catches = append(b.catches, catchFrame{dispatch: catchDispatch, deferDepth: len(b.defers)})
	bodyTails := b.buildBody(st.Body, []*Node{dn})
	b.catches = b.catches[:len(b.catches)-1]

	tails := append([]*Node{}, bodyTails...)
	for _, c := range st.Catches {
		before := len(catchDispatch.succs)
		catchTails := b.buildBody(c.Body, []*Node{catchDispatch})
		labelNewEdges(catchDispatch, before, "catch")
		tails = append(tails, catchTails...)
	}
	return tails
}
