package lower

import (
	"swiftify/ast"
	"swiftify/parsetree"
)

func (l *Lowerer) lowerWhile(node parsetree.Node) *ast.While {
	return &ast.While{
		StmtBase: ast.NewStmtBase(node.Span()),
		Cond:     l.roleExpr(node, "cond"),
		Body:     l.roleBody(node, "body"),
	}
}

func (l *Lowerer) lowerRepeatWhile(node parsetree.Node) *ast.RepeatWhile {
	return &ast.RepeatWhile{
		StmtBase: ast.NewStmtBase(node.Span()),
		Body:     l.roleBody(node, "body"),
		Cond:     l.roleExpr(node, "cond"),
	}
}

func (l *Lowerer) lowerForIn(node parsetree.Node) *ast.ForIn {
	forIn := &ast.ForIn{
		StmtBase: ast.NewStmtBase(node.Span()),
		Seq:      l.roleExpr(node, "seq"),
		Body:     l.roleBody(node, "body"),
	}
	if varRole := node.Child("var"); varRole != nil {
		if n := varRole.Child("name"); n != nil {
			forIn.Name = n.Text()
		}
	}
	return forIn
}

// lowerFor lowers a C-style forStatement (spec §4.1). It first attempts to
// recognise a counted loop -- a single integer induction variable compared
// against an integer-literal bound and incremented by exactly one, never
// reassigned in the body -- and emits a Swift `for v in a..<b` / `a...b`.
// Any other shape falls back to the general form, `{ init; while (cond ??
// true) { defer { step }; body } }`, which preserves C's run-step-on-every-
// exit semantics (including `continue`) via `defer`.
func (l *Lowerer) lowerFor(node parsetree.Node) []ast.Statement {
	span := node.Span()
	initRole := node.Child("init")
	var initNode parsetree.Node
	if initRole != nil {
		initNode = initRole.FirstChild()
	}
	stepRole := node.Child("step")
	var stepNode parsetree.Node
	if stepRole != nil {
		stepNode = stepRole.FirstChild()
	}
	cond := l.roleExpr(node, "cond")
	body := l.roleBody(node, "body")

	if rng, name, ok := l.recognizeCountedLoop(initNode, stepNode, cond, body); ok {
		return []ast.Statement{&ast.ForIn{StmtBase: ast.NewStmtBase(span), Name: name, Seq: rng, Body: body}}
	}

	var initStmt ast.Statement
	if initNode != nil {
		if stmts := l.lowerStmt(initNode); len(stmts) > 0 {
			initStmt = stmts[0]
		}
	}

	var stepStmt ast.Statement
	if stepNode != nil {
		stepStmt = &ast.ExprStmt{StmtBase: ast.NewStmtBase(span), X: l.lowerExpr(stepNode)}
	}

	whileCond := cond
	if whileCond == nil {
		whileCond = &ast.Constant{ExprBase: ast.NewExprBase(span), Kind: ast.ConstBool, Value: "true"}
	}

	whileBody := &ast.Compound{}
	if stepStmt != nil {
		whileBody.Stmts = append(whileBody.Stmts, &ast.Defer{
			StmtBase: ast.NewStmtBase(span),
			Body:     &ast.Compound{Stmts: []ast.Statement{stepStmt}},
		})
	}
	whileBody.Stmts = append(whileBody.Stmts, body.Stmts...)

	whileStmt := &ast.While{StmtBase: ast.NewStmtBase(span), Cond: whileCond, Body: whileBody}

	var out []ast.Statement
	if initStmt != nil {
		out = append(out, initStmt)
	}
	out = append(out, whileStmt)
	return out
}

// recognizeCountedLoop implements spec §4.1's counted-loop recognition.
// initNode must lower to a single integer-typed declarator `v = a`; cond
// must be `v < b` or `v <= b` with b an integer literal; stepNode must
// lower to `v += 1`; and v must not be reassigned anywhere in body.
func (l *Lowerer) recognizeCountedLoop(initNode, stepNode parsetree.Node, cond ast.Expr, body *ast.Compound) (ast.Expr, string, bool) {
	if initNode == nil || initNode.Rule() != "declarationStatement" || stepNode == nil || cond == nil {
		return nil, "", false
	}

	decls := initNode.Children("declarator")
	if len(decls) != 1 {
		return nil, "", false
	}
	decl := decls[0]
	nameNode := decl.Child("name")
	if nameNode == nil {
		return nil, "", false
	}
	name := nameNode.Text()

	typeNode := decl.Child("type")
	if typeNode == nil || !isIntegerSpelling(typeNode.Text()) {
		return nil, "", false
	}

	lo := l.roleExpr(decl, "init")
	if lo == nil {
		return nil, "", false
	}

	binCond, ok := cond.(*ast.Binary)
	if !ok || (binCond.Op != "<" && binCond.Op != "<=") {
		return nil, "", false
	}
	lhsID, ok := binCond.Lhs.(*ast.Identifier)
	if !ok || lhsID.Name != name {
		return nil, "", false
	}
	hi := binCond.Rhs
	if c, ok := hi.(*ast.Constant); !ok || c.Kind != ast.ConstInt {
		return nil, "", false
	}

	step := l.lowerExpr(stepNode)
	assign, ok := step.(*ast.Assignment)
	if !ok || assign.Op != "+=" {
		return nil, "", false
	}
	stepID, ok := assign.Lhs.(*ast.Identifier)
	if !ok || stepID.Name != name {
		return nil, "", false
	}
	stepVal, ok := assign.Rhs.(*ast.Constant)
	if !ok || stepVal.Kind != ast.ConstInt || stepVal.Value != "1" {
		return nil, "", false
	}

	if assignsIdentifier(body.Stmts, name) {
		return nil, "", false
	}

	return &ast.Range{ExprBase: ast.NewExprBase(nil), Lo: lo, Hi: hi, Closed: binCond.Op == "<="}, name, true
}

func isIntegerSpelling(spelled string) bool {
	switch spelled {
	case "int", "long", "short", "NSInteger", "NSUInteger", "unsigned", "size_t":
		return true
	default:
		return false
	}
}

// assignsIdentifier reports whether name is reassigned anywhere in stmts,
// walking every nested statement and expression position (spec §4.1: "not
// assigned anywhere inside body, checked by walking all expression
// positions including nested blocks").
func assignsIdentifier(stmts []ast.Statement, name string) bool {
	for _, s := range stmts {
		if stmtAssigns(s, name) {
			return true
		}
	}
	return false
}

func stmtAssigns(s ast.Statement, name string) bool {
	switch st := s.(type) {
	case *ast.ExprStmt:
		return exprAssigns(st.X, name)
	case *ast.VarDecl:
		for _, e := range st.Entries {
			if exprAssigns(e.Init, name) {
				return true
			}
		}
		return false
	case *ast.If:
		for _, b := range st.Branches {
			if exprAssigns(b.Cond, name) || (b.Body != nil && assignsIdentifier(b.Body.Stmts, name)) {
				return true
			}
		}
		return st.Else != nil && assignsIdentifier(st.Else.Stmts, name)
	case *ast.Switch:
		if exprAssigns(st.Subject, name) {
			return true
		}
		for _, c := range st.Cases {
			if c.Body != nil && assignsIdentifier(c.Body.Stmts, name) {
				return true
			}
		}
		return st.Default != nil && assignsIdentifier(st.Default.Stmts, name)
	case *ast.While:
		return exprAssigns(st.Cond, name) || (st.Body != nil && assignsIdentifier(st.Body.Stmts, name))
	case *ast.RepeatWhile:
		return exprAssigns(st.Cond, name) || (st.Body != nil && assignsIdentifier(st.Body.Stmts, name))
	case *ast.ForIn:
		return exprAssigns(st.Seq, name) || (st.Body != nil && assignsIdentifier(st.Body.Stmts, name))
	case *ast.Do:
		if st.Body != nil && assignsIdentifier(st.Body.Stmts, name) {
			return true
		}
		for _, c := range st.Catches {
			if c.Body != nil && assignsIdentifier(c.Body.Stmts, name) {
				return true
			}
		}
		return false
	case *ast.Defer:
		return st.Body != nil && assignsIdentifier(st.Body.Stmts, name)
	case *ast.Throw:
		return exprAssigns(st.X, name)
	case *ast.Return:
		return exprAssigns(st.X, name)
	case *ast.Compound:
		return assignsIdentifier(st.Stmts, name)
	default:
		return false
	}
}

func exprAssigns(e ast.Expr, name string) bool {
	switch ex := e.(type) {
	case nil:
		return false
	case *ast.Assignment:
		if id, ok := ex.Lhs.(*ast.Identifier); ok && id.Name == name {
			return true
		}
		return exprAssigns(ex.Lhs, name) || exprAssigns(ex.Rhs, name)
	case *ast.Unary:
		if (ex.Op == "++" || ex.Op == "--") {
			if id, ok := ex.Operand.(*ast.Identifier); ok && id.Name == name {
				return true
			}
		}
		return exprAssigns(ex.Operand, name)
	case *ast.Binary:
		return exprAssigns(ex.Lhs, name) || exprAssigns(ex.Rhs, name)
	case *ast.PostfixCall:
		if exprAssigns(ex.Callee, name) {
			return true
		}
		for _, a := range ex.Args {
			if exprAssigns(a, name) {
				return true
			}
		}
		return false
	case *ast.PostfixSubscript:
		return exprAssigns(ex.Base, name) || exprAssigns(ex.Index, name)
	case *ast.PostfixMember:
		return exprAssigns(ex.Base, name)
	case *ast.Cast:
		return exprAssigns(ex.Operand, name)
	case *ast.Ternary:
		return exprAssigns(ex.Cond, name) || exprAssigns(ex.Then, name) || exprAssigns(ex.Else, name)
	case *ast.Parens:
		return exprAssigns(ex.Inner, name)
	case *ast.BlockLiteral:
		return ex.Body != nil && assignsIdentifier(ex.Body.Stmts, name)
	default:
		return false
	}
}
