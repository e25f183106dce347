package lower

import (
	"swiftify/ast"
	"swiftify/parsetree"
	"swiftify/report"
	"swiftify/typesys"
)

// lowerStmt lowers one statement parse-tree context (the single child of a
// "statement" wrapper, e.g. an ifStatement). It returns a slice
// rather than a single statement so a nested compoundStatement can splice
// its contents directly into the caller's list (spec §3.2's flattening
// invariant) instead of nesting one Compound inside another.
func (l *Lowerer) lowerStmt(node parsetree.Node) []ast.Statement {
	switch node.Rule() {
	case "compoundStatement":
		return l.lowerStmtList(node)
	case "expressionStatement":
		return []ast.Statement{&ast.ExprStmt{
			StmtBase: ast.NewStmtBase(node.Span()),
			X:        l.roleExpr(node, "expr"),
		}}
	case "declarationStatement":
		return []ast.Statement{l.lowerVarDecl(node)}
	case "ifStatement":
		return []ast.Statement{l.lowerIf(node)}
	case "switchStatement":
		return []ast.Statement{l.lowerSwitch(node)}
	case "whileStatement":
		return []ast.Statement{l.lowerWhile(node)}
	case "doWhileStatement":
		return []ast.Statement{l.lowerRepeatWhile(node)}
	case "forStatement":
		return l.lowerFor(node)
	case "forInStatement":
		return []ast.Statement{l.lowerForIn(node)}
	case "synchronizedStatement":
		return []ast.Statement{l.lowerSynchronized(node)}
	case "autoreleasepoolStatement":
		return []ast.Statement{l.lowerAutoreleasepool(node)}
	case "returnStatement":
		return []ast.Statement{&ast.Return{
			StmtBase: ast.NewStmtBase(node.Span()),
			X:        l.roleExpr(node, "value"),
		}}
	case "breakStatement":
		return []ast.Statement{&ast.Break{StmtBase: ast.NewStmtBase(node.Span())}}
	case "continueStatement":
		return []ast.Statement{&ast.Continue{StmtBase: ast.NewStmtBase(node.Span())}}
	default:
		return []ast.Statement{l.unknown(node)}
	}
}

// lowerVarDecl lowers a declarationStatement's declarators (spec §4.1: for
// each declarator, re-parse the spelled-out type, map it, derive ownership
// and constness, attach the optional initializer).
func (l *Lowerer) lowerVarDecl(node parsetree.Node) *ast.VarDecl {
	vd := &ast.VarDecl{StmtBase: ast.NewStmtBase(node.Span())}
	for _, decl := range node.Children("declarator") {
		entry := ast.VarDeclEntry{
			Init: l.roleExpr(decl, "init"),
		}
		if nameNode := decl.Child("name"); nameNode != nil {
			entry.Name = nameNode.Text()
		}
		if typeNode := decl.Child("type"); typeNode != nil {
			entry.Type = l.mapType(typeNode.Text())
		} else {
			entry.Type = typesys.AnyObject
		}
		switch {
		case decl.Child("weak") != nil:
			entry.Ownership = ast.OwnershipWeak
		case decl.Child("unowned") != nil:
			entry.Ownership = ast.OwnershipUnowned
		default:
			entry.Ownership = ast.OwnershipStrong
		}
		entry.IsConstant = decl.Child("const") != nil
		vd.Entries = append(vd.Entries, entry)
	}
	return vd
}

// lowerIf lowers an ifStatement, folding a chained `else if` into
// additional Branches rather than nesting Else compounds (spec §4.1: `if
// (e) S1 else S2` maps trivially; an else-if chain is the same shape
// repeated).
func (l *Lowerer) lowerIf(node parsetree.Node) *ast.If {
	ifStmt := &ast.If{StmtBase: ast.NewStmtBase(node.Span())}
	l.appendIfBranch(node, ifStmt)
	return ifStmt
}

func (l *Lowerer) appendIfBranch(node parsetree.Node, ifStmt *ast.If) {
	ifStmt.Branches = append(ifStmt.Branches, ast.CondBranch{
		Cond: l.roleExpr(node, "cond"),
		Body: l.roleBody(node, "body"),
	})

	elseRole := node.Child("else")
	if elseRole == nil {
		return
	}
	elseInner := elseRole.FirstChild()
	if elseInner == nil {
		return
	}
	if elseInner.Rule() == "ifStatement" {
		l.appendIfBranch(elseInner, ifStmt)
		return
	}
	ifStmt.Else = l.LowerBody(elseInner)
}

// lowerSwitch lowers a switchStatement (spec §4.1: each case's label list
// becomes a pattern list; a default branch is always present, synthesised
// as a lone `break` when the input has none or it lowers to nothing). A
// case whose body does not end in `break`, `return`, `continue` or `throw`
// becomes a Swift case with Fallthrough set, since Swift's
// switch does not fall through implicitly the way Objective-C's does; a
// trailing `break` is consumed here rather than carried into the Swift
// case body, since Swift cases already stop at their own end.
func (l *Lowerer) lowerSwitch(node parsetree.Node) *ast.Switch {
	sw := &ast.Switch{
		StmtBase: ast.NewStmtBase(node.Span()),
		Subject:  l.roleExpr(node, "subject"),
	}

	for _, caseNode := range node.Children("case") {
		var patterns []ast.Expr
		for _, p := range caseNode.Children("pattern") {
			if inner := p.FirstChild(); inner != nil {
				patterns = append(patterns, l.lowerExpr(inner))
			}
		}
		body, fallsThrough := l.lowerCaseBody(caseNode.Child("body"))
		sw.Cases = append(sw.Cases, ast.SwitchCase{Patterns: patterns, Body: body, Fallthrough: fallsThrough})
	}

	if defRole := node.Child("default"); defRole != nil {
		body, _ := l.lowerCaseBody(defRole)
		if len(body.Stmts) == 0 {
			body.Stmts = []ast.Statement{&ast.Break{}}
		}
		sw.Default = body
	} else {
		sw.Default = &ast.Compound{Stmts: []ast.Statement{&ast.Break{}}}
	}

	return sw
}

func (l *Lowerer) lowerCaseBody(bodyRole parsetree.Node) (*ast.Compound, bool) {
	if bodyRole == nil {
		return &ast.Compound{}, false
	}
	inner := bodyRole.FirstChild()
	if inner == nil {
		return &ast.Compound{}, false
	}
	stmts := l.lowerStmtList(inner)
	if len(stmts) == 0 {
		return &ast.Compound{}, true
	}
	switch stmts[len(stmts)-1].(type) {
	case *ast.Break:
		return &ast.Compound{Stmts: stmts[:len(stmts)-1]}, false
	case *ast.Return, *ast.Continue, *ast.Throw:
		return &ast.Compound{Stmts: stmts}, false
	default:
		return &ast.Compound{Stmts: stmts}, true
	}
}

// lowerSynchronized lowers `@synchronized(e) S` (spec §4.1) into
// `do { let _lockTarget = e; objc_sync_enter(_lockTarget); defer {
// objc_sync_exit(_lockTarget) }; S }`.
func (l *Lowerer) lowerSynchronized(node parsetree.Node) ast.Statement {
	span := node.Span()
	lock := l.roleExpr(node, "lock")
	body := l.roleBody(node, "body")
	const lockVar = "_lockTarget"

	stmts := []ast.Statement{
		&ast.VarDecl{
			StmtBase: ast.NewStmtBase(span),
			Entries:  []ast.VarDeclEntry{{Name: lockVar, Type: typesys.AnyObject, Init: lock, IsConstant: true}},
		},
		&ast.ExprStmt{StmtBase: ast.NewStmtBase(span), X: syncCall(span, "objc_sync_enter", lockVar)},
		&ast.Defer{
			StmtBase: ast.NewStmtBase(span),
			Body: &ast.Compound{Stmts: []ast.Statement{
				&ast.ExprStmt{StmtBase: ast.NewStmtBase(span), X: syncCall(span, "objc_sync_exit", lockVar)},
			}},
		},
	}
	stmts = append(stmts, body.Stmts...)

	return &ast.Do{StmtBase: ast.NewStmtBase(span), Body: &ast.Compound{Stmts: stmts}}
}

// lowerAutoreleasepool lowers `@autoreleasepool S` into
// `autoreleasepool { S }` (spec §4.1), a call with a trailing closure
// expressed as an ExprStmt wrapping a PostfixCall whose sole argument is a
// parameterless BlockLiteral.
func (l *Lowerer) lowerAutoreleasepool(node parsetree.Node) ast.Statement {
	span := node.Span()
	body := l.roleBody(node, "body")
	call := &ast.PostfixCall{
		ExprBase: ast.NewExprBase(span),
		Callee:   &ast.Identifier{ExprBase: ast.NewExprBase(span), Name: "autoreleasepool"},
		Args:     []ast.Expr{&ast.BlockLiteral{ExprBase: ast.NewExprBase(span), Body: body}},
	}
	return &ast.ExprStmt{StmtBase: ast.NewStmtBase(span), X: call}
}

func syncCall(span *report.TextSpan, fn, arg string) ast.Expr {
	return &ast.PostfixCall{
		ExprBase: ast.NewExprBase(span),
		Callee:   &ast.Identifier{ExprBase: ast.NewExprBase(span), Name: fn},
		Args:     []ast.Expr{&ast.Identifier{ExprBase: ast.NewExprBase(span), Name: arg}},
	}
}
