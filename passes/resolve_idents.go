package passes

import (
	"swiftify/ast"
	"swiftify/intent"
	"swiftify/report"
)

// ResolveIdentifiers implements spec §4.4 item 4: every identifier
// expression inside a method/function/accessor body is resolved to the
// nearest declaration, checked in order local -> parameter -> instance
// member -> enclosing type -> global. The result is recorded on the
// identifier itself (ast.Identifier.ResolvedScope) rather than in a
// separate symbol table, so later passes (expression-type inference, the
// eventual emitter) can read it straight off the AST node they already
// have in hand.
type ResolveIdentifiers struct{}

func (ResolveIdentifiers) Name() string { return "resolve-identifiers" }

func (ResolveIdentifiers) Run(g *intent.Graph, _ *report.Reporter) bool {
	globals := collectGlobalNames(g)
	changed := false

	for _, t := range g.Types() {
		members := collectMemberNames(t)
		for _, m := range t.Methods {
			if resolveBody(m.Body, paramNames(m.Signature), members, t.TypeName, globals) {
				changed = true
			}
		}
		for _, p := range t.Properties {
			if resolveBody(p.Getter, nil, members, t.TypeName, globals) {
				changed = true
			}
			setterParams := map[string]bool{"newValue": true}
			if resolveBody(p.Setter, setterParams, members, t.TypeName, globals) {
				changed = true
			}
		}
	}

	for _, f := range g.Files {
		for _, gf := range f.Globals {
			if resolveBody(gf.Body, paramNames(gf.Signature), nil, "", globals) {
				changed = true
			}
		}
	}

	return changed
}

func paramNames(sig intent.Signature) map[string]bool {
	out := make(map[string]bool, len(sig.Params))
	for _, p := range sig.Params {
		out[p.Name] = true
	}
	return out
}

func collectMemberNames(t *intent.Type) map[string]bool {
	out := make(map[string]bool, len(t.Properties)+len(t.Methods))
	for _, p := range t.Properties {
		out[p.Name] = true
	}
	for _, m := range t.Methods {
		out[m.Signature.Name] = true
	}
	return out
}

func collectGlobalNames(g *intent.Graph) map[string]bool {
	out := make(map[string]bool)
	for _, t := range g.Types() {
		out[t.TypeName] = true
	}
	for _, f := range g.Files {
		for _, gf := range f.Globals {
			out[gf.Signature.Name] = true
		}
	}
	return out
}

// identResolver carries the static context for one body's worth of
// resolution, plus the mutable local-scope stack the walk pushes and pops
// as it descends into nested compounds (spec §4.4 item 4's scope order
// mirrors the teacher walker's pushScope/popScope/lookup shape).
type identResolver struct {
	params, members, globals map[string]bool
	typeName                 string
	locals                   []map[string]bool
	changed                  bool
}

func resolveBody(b *intent.Body, params, members map[string]bool, typeName string, globals map[string]bool) bool {
	if b == nil || b.Block == nil {
		return false
	}
	r := &identResolver{params: params, members: members, typeName: typeName, globals: globals}
	r.pushScope()
	r.walkStmts(b.Block.Stmts)
	r.popScope()
	return r.changed
}

func (r *identResolver) pushScope() { r.locals = append(r.locals, make(map[string]bool)) }
func (r *identResolver) popScope()  { r.locals = r.locals[:len(r.locals)-1] }

func (r *identResolver) declareLocal(name string) {
	if name == "" {
		return
	}
	r.locals[len(r.locals)-1][name] = true
}

func (r *identResolver) resolve(id *ast.Identifier) {
	switch {
	case r.inLocals(id.Name):
		r.setScope(id, "local")
	case r.params != nil && r.params[id.Name]:
		r.setScope(id, "param")
	case r.members != nil && r.members[id.Name]:
		r.setScope(id, "member")
	case r.typeName != "" && id.Name == r.typeName:
		r.setScope(id, "type")
	case r.globals[id.Name]:
		r.setScope(id, "global")
	default:
		r.setScope(id, "")
	}
}

func (r *identResolver) setScope(id *ast.Identifier, scope string) {
	if id.ResolvedScope != scope {
		id.ResolvedScope = scope
		r.changed = true
	}
}

func (r *identResolver) inLocals(name string) bool {
	for i := len(r.locals) - 1; i >= 0; i-- {
		if r.locals[i][name] {
			return true
		}
	}
	return false
}

func (r *identResolver) walkStmts(stmts []ast.Statement) {
	for _, s := range stmts {
		r.walkStmt(s)
	}
}

func (r *identResolver) walkStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.ExprStmt:
		r.walkExpr(st.X)
	case *ast.VarDecl:
		for _, e := range st.Entries {
			r.walkExpr(e.Init)
			r.declareLocal(e.Name)
		}
	case *ast.If:
		for _, b := range st.Branches {
			r.walkExpr(b.Cond)
			r.walkScope(b.Body)
		}
		if st.Else != nil {
			r.walkScope(st.Else)
		}
	case *ast.Switch:
		r.walkExpr(st.Subject)
		for _, c := range st.Cases {
			for _, p := range c.Patterns {
				r.walkExpr(p)
			}
			r.walkScope(c.Body)
		}
		r.walkScope(st.Default)
	case *ast.While:
		r.walkExpr(st.Cond)
		r.walkScope(st.Body)
	case *ast.RepeatWhile:
		r.walkScope(st.Body)
		r.walkExpr(st.Cond)
	case *ast.ForIn:
		r.walkExpr(st.Seq)
		r.pushScope()
		r.declareLocal(st.Name)
		if st.Body != nil {
			r.walkStmts(st.Body.Stmts)
		}
		r.popScope()
	case *ast.Do:
		r.walkScope(st.Body)
		for _, c := range st.Catches {
			r.pushScope()
			r.declareLocal(c.Pattern)
			if c.Body != nil {
				r.walkStmts(c.Body.Stmts)
			}
			r.popScope()
		}
	case *ast.Defer:
		r.walkScope(st.Body)
	case *ast.Throw:
		r.walkExpr(st.X)
	case *ast.Return:
		r.walkExpr(st.X)
	case *ast.Compound:
		r.walkScope(st)
	case *ast.LocalFunction:
		r.pushScope()
		for _, p := range st.Params {
			r.declareLocal(p.Name)
		}
		if st.Body != nil {
			r.walkStmts(st.Body.Stmts)
		}
		r.popScope()
	}
}

func (r *identResolver) walkScope(c *ast.Compound) {
	if c == nil {
		return
	}
	r.pushScope()
	r.walkStmts(c.Stmts)
	r.popScope()
}

func (r *identResolver) walkExpr(e ast.Expr) {
	switch ex := e.(type) {
	case nil:
	case *ast.Identifier:
		r.resolve(ex)
	case *ast.Binary:
		r.walkExpr(ex.Lhs)
		r.walkExpr(ex.Rhs)
	case *ast.Assignment:
		r.walkExpr(ex.Lhs)
		r.walkExpr(ex.Rhs)
	case *ast.Unary:
		r.walkExpr(ex.Operand)
	case *ast.PostfixCall:
		r.walkExpr(ex.Callee)
		for _, a := range ex.Args {
			r.walkExpr(a)
		}
	case *ast.PostfixSubscript:
		r.walkExpr(ex.Base)
		r.walkExpr(ex.Index)
	case *ast.PostfixMember:
		r.walkExpr(ex.Base)
	case *ast.Cast:
		r.walkExpr(ex.Operand)
	case *ast.Ternary:
		r.walkExpr(ex.Cond)
		r.walkExpr(ex.Then)
		r.walkExpr(ex.Else)
	case *ast.Parens:
		r.walkExpr(ex.Inner)
	case *ast.BlockLiteral:
		r.pushScope()
		for _, p := range ex.Params {
			r.declareLocal(p)
		}
		if ex.Body != nil {
			r.walkStmts(ex.Body.Stmts)
		}
		r.popScope()
	}
}
