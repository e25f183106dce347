package lower

import (
	"testing"

	"swiftify/ast"
	"swiftify/parsetree"
	"swiftify/report"
	"swiftify/typesys"
)

var testSpan = &report.TextSpan{StartLine: 1, EndLine: 1}

func newLowerer() *Lowerer {
	return NewLowerer(report.NewReporter(report.LogLevelSilent), typesys.NewMapperContext())
}

func role(name string, inner *parsetree.Literal) *parsetree.Literal {
	l := parsetree.NewLiteral(name, "", testSpan)
	if inner != nil {
		l.WithChildren(inner)
	}
	return l
}

func ident(name string) *parsetree.Literal {
	return parsetree.NewLiteral("identifierExpr", name, testSpan)
}

func intLit(v string) *parsetree.Literal {
	return parsetree.NewLiteral("intLiteral", v, testSpan)
}

func compound(stmts ...*parsetree.Literal) *parsetree.Literal {
	c := parsetree.NewLiteral("compoundStatement", "", testSpan)
	for _, s := range stmts {
		wrapped := parsetree.NewLiteral("statement", "", testSpan).WithChildren(s)
		c.WithChildren(wrapped)
	}
	return c
}

func exprStmt(inner *parsetree.Literal) *parsetree.Literal {
	return parsetree.NewLiteral("expressionStatement", "", testSpan).WithChildren(role("expr", inner))
}

func breakStmt() *parsetree.Literal {
	return parsetree.NewLiteral("breakStatement", "", testSpan)
}

func TestLowerIfElseIfChain(t *testing.T) {
	inner := parsetree.NewLiteral("ifStatement", "", testSpan).WithChildren(
		role("cond", ident("c2")),
		role("body", compound(exprStmt(ident("b2")))),
		role("else", compound(exprStmt(ident("c")))),
	)
	outer := parsetree.NewLiteral("ifStatement", "", testSpan).WithChildren(
		role("cond", ident("c1")),
		role("body", compound(exprStmt(ident("b1")))),
		role("else", inner),
	)

	l := newLowerer()
	stmts := l.lowerStmt(outer)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	ifStmt, ok := stmts[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", stmts[0])
	}
	if len(ifStmt.Branches) != 2 {
		t.Fatalf("expected 2 branches from the else-if chain, got %d", len(ifStmt.Branches))
	}
	if ifStmt.Else == nil || len(ifStmt.Else.Stmts) != 1 {
		t.Fatalf("expected a trailing else with one statement, got %+v", ifStmt.Else)
	}
}

func TestLowerSwitchFallthrough(t *testing.T) {
	sw := parsetree.NewLiteral("switchStatement", "", testSpan).WithChildren(
		role("subject", ident("x")),
		parsetree.NewLiteral("case", "", testSpan).WithChildren(
			role("pattern", intLit("1")),
			role("body", compound(exprStmt(ident("a")), breakStmt())),
		),
		parsetree.NewLiteral("case", "", testSpan).WithChildren(
			role("pattern", intLit("2")),
			role("body", compound(exprStmt(ident("b")))),
		),
	)

	l := newLowerer()
	got := l.lowerSwitch(sw)
	if len(got.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(got.Cases))
	}
	if got.Cases[0].Fallthrough {
		t.Errorf("case ending in break should not fall through")
	}
	if len(got.Cases[0].Body.Stmts) != 1 {
		t.Errorf("trailing break should be stripped from the case body")
	}
	if !got.Cases[1].Fallthrough {
		t.Errorf("case with no trailing break/return/continue should fall through")
	}
	if got.Default == nil || len(got.Default.Stmts) != 1 {
		t.Fatalf("missing default should be synthesised as a lone break")
	}
	if _, ok := got.Default.Stmts[0].(*ast.Break); !ok {
		t.Errorf("synthesised default should contain a Break, got %T", got.Default.Stmts[0])
	}
}

func declarator(name, typeSpelling string, init *parsetree.Literal) *parsetree.Literal {
	d := parsetree.NewLiteral("declarator", "", testSpan)
	d.WithChildren(parsetree.NewLiteral("name", name, testSpan))
	d.WithChildren(parsetree.NewLiteral("type", typeSpelling, testSpan))
	d.WithChildren(role("init", init))
	return d
}

func counterForNode(bodyStmts ...*parsetree.Literal) *parsetree.Literal {
	initStmt := parsetree.NewLiteral("declarationStatement", "", testSpan).WithChildren(
		declarator("i", "int", intLit("0")),
	)
	step := parsetree.NewLiteral("assignmentExpr", "+=", testSpan).WithChildren(
		role("lhs", ident("i")),
		role("rhs", intLit("1")),
	)
	cond := parsetree.NewLiteral("binaryExpr", "<", testSpan).WithChildren(
		role("lhs", ident("i")),
		role("rhs", intLit("10")),
	)
	return parsetree.NewLiteral("forStatement", "", testSpan).WithChildren(
		role("init", initStmt),
		role("cond", cond),
		role("step", step),
		role("body", compound(bodyStmts...)),
	)
}

func TestLowerForRecognizesCountedLoop(t *testing.T) {
	forNode := counterForNode(exprStmt(ident("doWork")))

	l := newLowerer()
	stmts := l.lowerFor(forNode)
	if len(stmts) != 1 {
		t.Fatalf("expected a single ForIn for a recognised counted loop, got %d statements", len(stmts))
	}
	forIn, ok := stmts[0].(*ast.ForIn)
	if !ok {
		t.Fatalf("expected *ast.ForIn, got %T", stmts[0])
	}
	if forIn.Name != "i" {
		t.Errorf("expected induction variable %q, got %q", "i", forIn.Name)
	}
	rng, ok := forIn.Seq.(*ast.Range)
	if !ok {
		t.Fatalf("expected Seq to be a Range, got %T", forIn.Seq)
	}
	if rng.Closed {
		t.Errorf("`<` bound should produce a half-open range")
	}
}

func TestLowerForFallsBackWhenInductionVariableReassigned(t *testing.T) {
	reassign := exprStmt(parsetree.NewLiteral("assignmentExpr", "=", testSpan).WithChildren(
		role("lhs", ident("i")),
		role("rhs", intLit("5")),
	))
	forNode := counterForNode(reassign)

	l := newLowerer()
	stmts := l.lowerFor(forNode)
	if len(stmts) != 2 {
		t.Fatalf("expected the general { init; while } form (2 statements) when the body reassigns the induction variable, got %d", len(stmts))
	}
	if _, ok := stmts[0].(*ast.VarDecl); !ok {
		t.Errorf("expected the first statement to be the lowered init, got %T", stmts[0])
	}
	whileStmt, ok := stmts[1].(*ast.While)
	if !ok {
		t.Fatalf("expected the second statement to be a While, got %T", stmts[1])
	}
	if len(whileStmt.Body.Stmts) == 0 {
		t.Fatalf("expected the while body to carry the step as a defer plus the original body")
	}
	if _, ok := whileStmt.Body.Stmts[0].(*ast.Defer); !ok {
		t.Errorf("expected the step to be threaded in as a leading defer, got %T", whileStmt.Body.Stmts[0])
	}
}

func TestLowerSynchronized(t *testing.T) {
	node := parsetree.NewLiteral("synchronizedStatement", "", testSpan).WithChildren(
		role("lock", ident("lockObj")),
		role("body", compound(exprStmt(ident("protected")))),
	)

	l := newLowerer()
	stmts := l.lowerStmt(node)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	doStmt, ok := stmts[0].(*ast.Do)
	if !ok {
		t.Fatalf("expected *ast.Do, got %T", stmts[0])
	}
	if len(doStmt.Body.Stmts) != 4 {
		t.Fatalf("expected lock decl + enter call + defer + body statement, got %d", len(doStmt.Body.Stmts))
	}
	if _, ok := doStmt.Body.Stmts[0].(*ast.VarDecl); !ok {
		t.Errorf("expected the lock target to be declared first, got %T", doStmt.Body.Stmts[0])
	}
	if _, ok := doStmt.Body.Stmts[2].(*ast.Defer); !ok {
		t.Errorf("expected objc_sync_exit to be deferred, got %T", doStmt.Body.Stmts[2])
	}
}

func TestLowerAutoreleasepool(t *testing.T) {
	node := parsetree.NewLiteral("autoreleasepoolStatement", "", testSpan).WithChildren(
		role("body", compound(exprStmt(ident("work")))),
	)

	l := newLowerer()
	stmts := l.lowerStmt(node)
	exprStmtOut, ok := stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", stmts[0])
	}
	call, ok := exprStmtOut.X.(*ast.PostfixCall)
	if !ok {
		t.Fatalf("expected a PostfixCall, got %T", exprStmtOut.X)
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok || callee.Name != "autoreleasepool" {
		t.Errorf("expected a call to autoreleasepool, got %+v", call.Callee)
	}
	if len(call.Args) != 1 {
		t.Fatalf("expected exactly one trailing-closure argument, got %d", len(call.Args))
	}
	if _, ok := call.Args[0].(*ast.BlockLiteral); !ok {
		t.Errorf("expected the argument to be a BlockLiteral, got %T", call.Args[0])
	}
}

func TestLowerUnrecognizedStatementDegradesToUnknown(t *testing.T) {
	node := parsetree.NewLiteral("someFutureGrammarRule", "@weird(1, 2)", testSpan)

	l := newLowerer()
	stmts := l.lowerStmt(node)
	unk, ok := stmts[0].(*ast.Unknown)
	if !ok {
		t.Fatalf("expected *ast.Unknown, got %T", stmts[0])
	}
	if unk.SourceText != "@weird(1, 2)" {
		t.Errorf("expected verbatim source text to be preserved, got %q", unk.SourceText)
	}
	if unk.OriginRule != "someFutureGrammarRule" {
		t.Errorf("expected origin rule to be recorded, got %q", unk.OriginRule)
	}
}
