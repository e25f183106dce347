package passes

import (
	"swiftify/ast"
	"swiftify/intent"
	"swiftify/report"
)

// SynthesizeAccessors implements spec §4.4 item 2: a property declared
// `@property` but never given a getter/setter body in the source gets a
// trivial backing-field accessor pair synthesised for it; conversely, a
// computed property whose getter/setter are themselves trivial wrappers
// around a single backing field collapses back down to plain stored form
// (ModeField), since a trivial computed property and a stored property are
// semantically identical in Swift and the stored form is what the rest of
// the pipeline (and the eventual emitter) should see.
type SynthesizeAccessors struct{}

func (SynthesizeAccessors) Name() string { return "synthesize-accessors" }

func (SynthesizeAccessors) Run(g *intent.Graph, _ *report.Reporter) bool {
	changed := false
	for _, t := range g.Types() {
		for _, p := range t.Properties {
			if resolveAccessors(p) {
				changed = true
			}
		}
	}
	return changed
}

// resolveAccessors reaches the fixed point for one property within a
// single call: fill in whatever accessor is missing with its trivial
// backing-field form, then immediately collapse back to ModeField if the
// (possibly just-synthesised) pair turns out to be exactly that trivial
// shape. Without the immediate re-check, a property declared but never
// given a body would synthesise trivial accessors on one run and only
// collapse them on the next, so a re-run over the collapsed result would
// never be the very next run -- this keeps synthesis and its collapse in
// the same sweep so a second Run reports no change.
func resolveAccessors(p *intent.Property) bool {
	changed := synthesizeTrivialAccessors(p)
	if collapseTrivialAccessors(p) {
		changed = true
	}
	return changed
}

func backingFieldName(p *intent.Property) string { return "_" + p.Name }

// synthesizeTrivialAccessors fills in a missing getter (and, for a
// ModeProperty, a missing setter) with a trivial `self._name` /
// `self._name = newValue` body.
func synthesizeTrivialAccessors(p *intent.Property) bool {
	if p.Mode == intent.ModeField {
		return false
	}
	changed := false
	if p.Getter == nil {
		p.SetGetter(intent.NewBody(trivialGetterBody(p)))
		changed = true
	}
	if p.Mode == intent.ModeProperty && p.Setter == nil {
		p.SetSetter(intent.NewBody(trivialSetterBody(p)))
		changed = true
	}
	return changed
}

// collapseTrivialAccessors reports (and performs) the reverse direction:
// when an already-synthesised or hand-written accessor pair is exactly the
// trivial `self._name` shape, the property is demoted to ModeField and its
// accessor bodies dropped, since a stored property conveys the same
// semantics with no accessor indirection.
func collapseTrivialAccessors(p *intent.Property) bool {
	if p.Mode == intent.ModeField {
		return false
	}
	if !isTrivialGetter(p.Getter, p) {
		return false
	}
	if p.Mode == intent.ModeProperty && !isTrivialSetter(p.Setter, p) {
		return false
	}

	p.Mode = intent.ModeField
	p.SetGetter(nil)
	p.SetSetter(nil)
	return true
}

func propertySpan(p *intent.Property) *report.TextSpan {
	if p.Origin() == nil {
		return nil
	}
	return p.Origin().Span()
}

func trivialGetterBody(p *intent.Property) *ast.Compound {
	span := propertySpan(p)
	return &ast.Compound{Stmts: []ast.Statement{
		&ast.Return{StmtBase: ast.NewStmtBase(span), X: backingMemberExpr(p, span)},
	}}
}

func trivialSetterBody(p *intent.Property) *ast.Compound {
	span := propertySpan(p)
	return &ast.Compound{Stmts: []ast.Statement{
		&ast.ExprStmt{StmtBase: ast.NewStmtBase(span), X: &ast.Assignment{
			ExprBase: ast.NewExprBase(span),
			Lhs:      backingMemberExpr(p, span),
			Rhs:      &ast.Identifier{ExprBase: ast.NewExprBase(span), Name: "newValue"},
		}},
	}}
}

func backingMemberExpr(p *intent.Property, span *report.TextSpan) ast.Expr {
	return &ast.PostfixMember{
		ExprBase: ast.NewExprBase(span),
		Base:     &ast.Identifier{ExprBase: ast.NewExprBase(span), Name: "self"},
		Member:   backingFieldName(p),
	}
}

func isTrivialGetter(b *intent.Body, p *intent.Property) bool {
	if b == nil || b.Block == nil || len(b.Block.Stmts) != 1 {
		return false
	}
	ret, ok := b.Block.Stmts[0].(*ast.Return)
	if !ok {
		return false
	}
	return isBackingMember(ret.X, p)
}

func isTrivialSetter(b *intent.Body, p *intent.Property) bool {
	if b == nil || b.Block == nil || len(b.Block.Stmts) != 1 {
		return false
	}
	es, ok := b.Block.Stmts[0].(*ast.ExprStmt)
	if !ok {
		return false
	}
	assign, ok := es.X.(*ast.Assignment)
	if !ok || assign.Op != "" {
		return false
	}
	rhs, ok := assign.Rhs.(*ast.Identifier)
	return ok && rhs.Name == "newValue" && isBackingMember(assign.Lhs, p)
}

func isBackingMember(e ast.Expr, p *intent.Property) bool {
	m, ok := e.(*ast.PostfixMember)
	if !ok || m.Member != backingFieldName(p) {
		return false
	}
	base, ok := m.Base.(*ast.Identifier)
	return ok && base.Name == "self"
}
