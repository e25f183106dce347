// Package lower implements AST Lowering (spec §4.1): translating an
// Objective-C parse tree, read only through the parsetree.Node contract,
// into the Swift-shaped statement/expression AST in package ast. Nothing
// here ever fails outright -- a construct with no matching rule degrades to
// an ast.Unknown wrapping the verbatim source (spec §4.1's "translation
// must never fail" contract), the way the teacher's own lowerer falls back
// to a best-effort MIR node rather than aborting a whole file over one
// unsupported statement.
package lower

import (
	"swiftify/ast"
	"swiftify/parsetree"
	"swiftify/report"
	"swiftify/typesys"
)

// Lowerer holds the state one body's worth of lowering needs: the
// diagnostics sink and the type-mapper context shared across the whole run.
// A Lowerer carries no per-body mutable state of its own -- unlike the
// teacher's Lowerer, which accumulates a def-dependency graph and a temp
// name counter across a whole package, this pipeline lowers one method body
// at a time and threads no state between bodies.
type Lowerer struct {
	rep     *report.Reporter
	typeCtx *typesys.MapperContext
}

// NewLowerer creates a Lowerer reporting into rep and mapping types through
// typeCtx.
func NewLowerer(rep *report.Reporter, typeCtx *typesys.MapperContext) *Lowerer {
	return &Lowerer{rep: rep, typeCtx: typeCtx}
}

// LowerBody lowers a compoundStatement parse-tree context into a Swift
// Compound, the shape every method/function/property-accessor body attaches
// to its owning intention (spec §3.1's Body intention kind).
func (l *Lowerer) LowerBody(node parsetree.Node) *ast.Compound {
	if node == nil {
		return &ast.Compound{}
	}
	return &ast.Compound{Stmts: l.lowerStmtList(node)}
}

// lowerStmtList lowers every "statement" child of node, in source order,
// flattening any nested compoundStatement directly into this list (spec
// §3.2: "A CompoundStatement directly nested inside another
// CompoundStatement is flattened during lowering").
func (l *Lowerer) lowerStmtList(node parsetree.Node) []ast.Statement {
	var out []ast.Statement
	for _, child := range node.Children("statement") {
		inner := child.FirstChild()
		if inner == nil {
			continue
		}
		out = append(out, l.lowerStmt(inner)...)
	}
	return out
}

// unknown wraps a parse-tree context lowering could not translate, and
// reports the gap as a structured event (SPEC_FULL §C.1) so a caller can
// track translation coverage without scraping message text.
func (l *Lowerer) unknown(node parsetree.Node) *ast.Unknown {
	l.rep.Emit(report.RuleNotRecognized, node.Span(), "no lowering rule for %q", node.Rule())
	return &ast.Unknown{
		StmtBase:   ast.NewStmtBase(node.Span()),
		SourceText: node.Text(),
		OriginRule: node.Rule(),
	}
}

// roleExpr resolves a role-tagged single-expression slot (e.g. a call
// expression's "callee", a binary expression's "lhs"): node.Child(role) is
// a thin wrapper whose one child is whatever expression rule actually
// occupies that position.
func (l *Lowerer) roleExpr(node parsetree.Node, role string) ast.Expr {
	roleNode := node.Child(role)
	if roleNode == nil {
		return nil
	}
	inner := roleNode.FirstChild()
	if inner == nil {
		return nil
	}
	return l.lowerExpr(inner)
}

// roleBody resolves a role-tagged compoundStatement slot (an if/while/etc's
// "body", "then", "else").
func (l *Lowerer) roleBody(node parsetree.Node, role string) *ast.Compound {
	roleNode := node.Child(role)
	if roleNode == nil {
		return &ast.Compound{}
	}
	inner := roleNode.FirstChild()
	if inner == nil {
		return &ast.Compound{}
	}
	return l.LowerBody(inner)
}

// mapType re-parses a spelled-out Objective-C type and maps it to Swift
// (spec §4.1's variable-declaration rule).
func (l *Lowerer) mapType(spelled string) typesys.Type {
	return l.typeCtx.Map(typesys.ParseTypeExpr(spelled))
}
