package lower

import (
	"swiftify/ast"
	"swiftify/parsetree"
	"swiftify/report"
)

// lowerExpr lowers one expression parse-tree context. Unlike lowerStmt it
// always returns a single node -- an unrecognised expression rule degrades
// to an Identifier carrying the verbatim source text rather than an
// ast.Unknown, since Unknown implements Statement and no expression position
// can hold one; the surrounding statement still gets reported and wrapped by
// lowerStmt/unknown when the construct as a whole cannot be recognised.
func (l *Lowerer) lowerExpr(node parsetree.Node) ast.Expr {
	if node == nil {
		return nil
	}
	switch node.Rule() {
	case "parenExpr":
		return &ast.Parens{ExprBase: ast.NewExprBase(node.Span()), Inner: l.roleExpr(node, "expr")}
	case "identifierExpr":
		return &ast.Identifier{ExprBase: ast.NewExprBase(node.Span()), Name: node.Text()}
	case "intLiteral":
		return &ast.Constant{ExprBase: ast.NewExprBase(node.Span()), Kind: ast.ConstInt, Value: node.Text()}
	case "floatLiteral":
		return &ast.Constant{ExprBase: ast.NewExprBase(node.Span()), Kind: ast.ConstFloat, Value: node.Text()}
	case "stringLiteral":
		return &ast.Constant{ExprBase: ast.NewExprBase(node.Span()), Kind: ast.ConstString, Value: node.Text()}
	case "boolLiteral":
		return &ast.Constant{ExprBase: ast.NewExprBase(node.Span()), Kind: ast.ConstBool, Value: node.Text()}
	case "nilLiteral":
		return &ast.Constant{ExprBase: ast.NewExprBase(node.Span()), Kind: ast.ConstNil, Value: node.Text()}
	case "binaryExpr":
		return &ast.Binary{
			ExprBase: ast.NewExprBase(node.Span()),
			Op:       node.Text(),
			Lhs:      l.roleExpr(node, "lhs"),
			Rhs:      l.roleExpr(node, "rhs"),
		}
	case "assignmentExpr":
		op := node.Text()
		if op == "=" {
			op = ""
		}
		return &ast.Assignment{
			ExprBase: ast.NewExprBase(node.Span()),
			Op:       op,
			Lhs:      l.roleExpr(node, "lhs"),
			Rhs:      l.roleExpr(node, "rhs"),
		}
	case "unaryExpr":
		return &ast.Unary{
			ExprBase: ast.NewExprBase(node.Span()),
			Op:       node.Text(),
			Operand:  l.roleExpr(node, "operand"),
		}
	case "callExpr":
		call := &ast.PostfixCall{
			ExprBase: ast.NewExprBase(node.Span()),
			Callee:   l.roleExpr(node, "callee"),
		}
		for _, a := range node.Children("arg") {
			if inner := a.FirstChild(); inner != nil {
				call.Args = append(call.Args, l.lowerExpr(inner))
			}
		}
		return call
	case "subscriptExpr":
		return &ast.PostfixSubscript{
			ExprBase: ast.NewExprBase(node.Span()),
			Base:     l.roleExpr(node, "base"),
			Index:    l.roleExpr(node, "index"),
		}
	case "memberExpr":
		return &ast.PostfixMember{
			ExprBase: ast.NewExprBase(node.Span()),
			Base:     l.roleExpr(node, "base"),
			Member:   node.Text(),
		}
	case "castExpr":
		cast := &ast.Cast{
			ExprBase: ast.NewExprBase(node.Span()),
			Operand:  l.roleExpr(node, "operand"),
		}
		if typeNode := node.Child("type"); typeNode != nil {
			cast.Target = l.mapType(typeNode.Text())
		}
		if node.Child("force") != nil {
			cast.Force = true
		}
		if node.Child("optional") != nil {
			cast.Optional = true
		}
		return cast
	case "ternaryExpr":
		return &ast.Ternary{
			ExprBase: ast.NewExprBase(node.Span()),
			Cond:     l.roleExpr(node, "cond"),
			Then:     l.roleExpr(node, "then"),
			Else:     l.roleExpr(node, "else"),
		}
	case "blockExpr":
		block := &ast.BlockLiteral{ExprBase: ast.NewExprBase(node.Span())}
		for _, p := range node.Children("param") {
			block.Params = append(block.Params, p.Text())
		}
		if bodyRole := node.Child("body"); bodyRole != nil {
			if inner := bodyRole.FirstChild(); inner != nil {
				block.Body = l.LowerBody(inner)
			}
		}
		if block.Body == nil {
			block.Body = &ast.Compound{}
		}
		return block
	default:
		l.rep.Emit(report.RuleNotRecognized, node.Span(), "no expression lowering rule for %q", node.Rule())
		return &ast.Identifier{ExprBase: ast.NewExprBase(node.Span()), Name: node.Text()}
	}
}
