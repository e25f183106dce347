package passes

import (
	"swiftify/ast"
	"swiftify/intent"
	"swiftify/report"
	"swiftify/typesys"
	"swiftify/util"
)

// InferExpressionTypes implements spec §4.4 item 5: bottom-up expression
// type inference over every method/function/accessor body, using the
// type-mapper's tables (constants map directly, calls and member accesses
// resolve against the graph's own declared signatures) rather than a
// separate unification engine -- this pipeline never needs to solve for an
// unknown, only to propagate what lowering and declarations already pinned
// down. A leaf inference cannot determine stays nil (spec §7 category 2),
// exactly as it started.
type InferExpressionTypes struct{}

func (InferExpressionTypes) Name() string { return "infer-expression-types" }

func (InferExpressionTypes) Run(g *intent.Graph, _ *report.Reporter) bool {
	changed := false
	for _, t := range g.Types() {
		for _, m := range t.Methods {
			if inferBody(g, t, m.Body, localParamTypes(m.Signature)) {
				changed = true
			}
		}
		for _, p := range t.Properties {
			if inferBody(g, t, p.Getter, nil) {
				changed = true
			}
			if inferBody(g, t, p.Setter, map[string]typesys.Type{"newValue": p.Type}) {
				changed = true
			}
		}
	}
	for _, f := range g.Files {
		for _, gf := range f.Globals {
			if inferBody(g, nil, gf.Body, localParamTypes(gf.Signature)) {
				changed = true
			}
		}
	}
	return changed
}

func localParamTypes(sig intent.Signature) map[string]typesys.Type {
	out := make(map[string]typesys.Type, len(sig.Params))
	for _, p := range sig.Params {
		out[p.Name] = p.Type
	}
	return out
}

type typeInferrer struct {
	g       *intent.Graph
	owner   *intent.Type
	params  map[string]typesys.Type
	locals  []map[string]typesys.Type
	changed bool
}

func inferBody(g *intent.Graph, owner *intent.Type, b *intent.Body, params map[string]typesys.Type) bool {
	if b == nil || b.Block == nil {
		return false
	}
	inf := &typeInferrer{g: g, owner: owner, params: params}
	inf.pushScope()
	inf.walkStmts(b.Block.Stmts)
	inf.popScope()
	return inf.changed
}

func (inf *typeInferrer) pushScope() { inf.locals = append(inf.locals, make(map[string]typesys.Type)) }
func (inf *typeInferrer) popScope()  { inf.locals = inf.locals[:len(inf.locals)-1] }

func (inf *typeInferrer) declareLocal(name string, t typesys.Type) {
	if name == "" {
		return
	}
	inf.locals[len(inf.locals)-1][name] = t
}

func (inf *typeInferrer) lookupLocal(name string) typesys.Type {
	for i := len(inf.locals) - 1; i >= 0; i-- {
		if t, ok := inf.locals[i][name]; ok {
			return t
		}
	}
	return nil
}

func (inf *typeInferrer) setType(e ast.Expr, t typesys.Type) typesys.Type {
	if e == nil {
		return t
	}
	prev := e.ResolvedType()
	if (prev == nil) != (t == nil) || (prev != nil && t != nil && !prev.Equal(t)) {
		inf.changed = true
	}
	e.SetResolvedType(t)
	return t
}

func (inf *typeInferrer) walkStmts(stmts []ast.Statement) {
	for _, s := range stmts {
		inf.walkStmt(s)
	}
}

func (inf *typeInferrer) walkStmt(s ast.Statement) {
	switch st := s.(type) {
	case *ast.ExprStmt:
		inf.infer(st.X)
	case *ast.VarDecl:
		for _, e := range st.Entries {
			if e.Init != nil {
				inf.infer(e.Init)
			}
			inf.declareLocal(e.Name, e.Type)
		}
	case *ast.If:
		for _, b := range st.Branches {
			inf.infer(b.Cond)
			inf.walkScope(b.Body)
		}
		inf.walkScope(st.Else)
	case *ast.Switch:
		inf.infer(st.Subject)
		for _, c := range st.Cases {
			for _, p := range c.Patterns {
				inf.infer(p)
			}
			inf.walkScope(c.Body)
		}
		inf.walkScope(st.Default)
	case *ast.While:
		inf.infer(st.Cond)
		inf.walkScope(st.Body)
	case *ast.RepeatWhile:
		inf.walkScope(st.Body)
		inf.infer(st.Cond)
	case *ast.ForIn:
		seqType := inf.infer(st.Seq)
		inf.pushScope()
		inf.declareLocal(st.Name, elementTypeOf(seqType))
		if st.Body != nil {
			inf.walkStmts(st.Body.Stmts)
		}
		inf.popScope()
	case *ast.Do:
		inf.walkScope(st.Body)
		for _, c := range st.Catches {
			inf.walkScope(c.Body)
		}
	case *ast.Defer:
		inf.walkScope(st.Body)
	case *ast.Throw:
		inf.infer(st.X)
	case *ast.Return:
		inf.infer(st.X)
	case *ast.Compound:
		inf.walkScope(st)
	case *ast.LocalFunction:
		inf.pushScope()
		for _, p := range st.Params {
			inf.declareLocal(p.Name, p.Type)
		}
		if st.Body != nil {
			inf.walkStmts(st.Body.Stmts)
		}
		inf.popScope()
	}
}

func (inf *typeInferrer) walkScope(c *ast.Compound) {
	if c == nil {
		return
	}
	inf.pushScope()
	inf.walkStmts(c.Stmts)
	inf.popScope()
}

// elementTypeOf returns the per-iteration type a ForIn binds its loop
// variable to: an Array's element, a Range's bound type (always Int, since
// the counted-loop recogniser only ever builds a Range over integer
// bounds), or nil for anything else (fast enumeration over an
// unrecognised sequence type).
func elementTypeOf(seqType typesys.Type) typesys.Type {
	switch v := seqType.(type) {
	case typesys.Array:
		return v.Elem
	default:
		return nil
	}
}

// infer computes e's type bottom-up, recording it via SetResolvedType, and
// returns it so callers composing a larger expression (e.g. a ForIn's
// sequence) can use it without a redundant lookup.
func (inf *typeInferrer) infer(e ast.Expr) typesys.Type {
	switch ex := e.(type) {
	case nil:
		return nil
	case *ast.Constant:
		return inf.setType(ex, constantType(ex.Kind))
	case *ast.Identifier:
		return inf.setType(ex, inf.identifierType(ex.Name))
	case *ast.Range:
		inf.infer(ex.Lo)
		inf.infer(ex.Hi)
		return inf.setType(ex, typesys.Array{Elem: typesys.Int})
	case *ast.Binary:
		lt := inf.infer(ex.Lhs)
		rt := inf.infer(ex.Rhs)
		return inf.setType(ex, binaryResultType(ex.Op, lt, rt))
	case *ast.Assignment:
		inf.infer(ex.Lhs)
		rt := inf.infer(ex.Rhs)
		return inf.setType(ex, rt)
	case *ast.Unary:
		ot := inf.infer(ex.Operand)
		return inf.setType(ex, unaryResultType(ex.Op, ot))
	case *ast.PostfixCall:
		inf.infer(ex.Callee)
		for _, a := range ex.Args {
			inf.infer(a)
		}
		return inf.setType(ex, inf.callResultType(ex.Callee))
	case *ast.PostfixSubscript:
		bt := inf.infer(ex.Base)
		inf.infer(ex.Index)
		return inf.setType(ex, subscriptResultType(bt))
	case *ast.PostfixMember:
		bt := inf.infer(ex.Base)
		return inf.setType(ex, inf.memberType(bt, ex.Member))
	case *ast.Cast:
		inf.infer(ex.Operand)
		if ex.Optional {
			return inf.setType(ex, typesys.Optional{Wrapped: ex.Target})
		}
		return inf.setType(ex, ex.Target)
	case *ast.Ternary:
		inf.infer(ex.Cond)
		tt := inf.infer(ex.Then)
		et := inf.infer(ex.Else)
		if tt != nil && et != nil && tt.Equal(et) {
			return inf.setType(ex, tt)
		}
		return inf.setType(ex, nil)
	case *ast.Parens:
		return inf.setType(ex, inf.infer(ex.Inner))
	case *ast.BlockLiteral:
		inf.pushScope()
		for _, p := range ex.Params {
			inf.declareLocal(p, nil)
		}
		if ex.Body != nil {
			inf.walkStmts(ex.Body.Stmts)
		}
		inf.popScope()
		return inf.setType(ex, nil)
	default:
		return nil
	}
}

func constantType(k ast.ConstantKind) typesys.Type {
	switch k {
	case ast.ConstInt:
		return typesys.Int
	case ast.ConstFloat:
		return typesys.Double
	case ast.ConstString:
		return typesys.String
	case ast.ConstBool:
		return typesys.Bool
	default:
		return nil
	}
}

func (inf *typeInferrer) identifierType(name string) typesys.Type {
	if t := inf.lookupLocal(name); t != nil {
		return t
	}
	if inf.params != nil {
		if t, ok := inf.params[name]; ok {
			return t
		}
	}
	if inf.owner != nil {
		if p, ok := inf.owner.LookupProperty(name); ok {
			return p.Type
		}
	}
	return nil
}

var comparisonOps = []string{"==", "!=", "<", "<=", ">", ">=", "&&", "||"}

func isComparisonOp(op string) bool {
	return util.Contains(comparisonOps, op)
}

func binaryResultType(op string, lt, rt typesys.Type) typesys.Type {
	if isComparisonOp(op) {
		return typesys.Bool
	}
	if lt != nil && rt != nil && lt.Equal(rt) {
		return lt
	}
	return nil
}

func unaryResultType(op string, operand typesys.Type) typesys.Type {
	switch op {
	case "!":
		return typesys.Bool
	case "&":
		return nil
	default:
		return operand
	}
}

func subscriptResultType(base typesys.Type) typesys.Type {
	switch v := base.(type) {
	case typesys.Array:
		return v.Elem
	case typesys.Dictionary:
		return typesys.Optional{Wrapped: v.Value}
	default:
		return nil
	}
}

func (inf *typeInferrer) memberType(base typesys.Type, member string) typesys.Type {
	named, ok := base.(typesys.Named)
	if !ok {
		return nil
	}
	t, ok := inf.g.LookupType(named.Name)
	if !ok {
		return nil
	}
	if p, ok := t.LookupProperty(member); ok {
		return p.Type
	}
	return nil
}

// callResultType resolves a direct call to a known global function or
// method by name; any other callee shape (a computed closure, a
// dynamically dispatched selector the graph can't statically match)
// leaves the call's type unresolved.
func (inf *typeInferrer) callResultType(callee ast.Expr) typesys.Type {
	id, ok := callee.(*ast.Identifier)
	if !ok {
		return nil
	}
	for _, f := range inf.g.Files {
		for _, gf := range f.Globals {
			if gf.Signature.Name == id.Name {
				return gf.Signature.Return
			}
		}
	}
	if inf.owner != nil {
		if m, ok := inf.owner.LookupMethodBySelector(id.Name); ok {
			return m.Signature.Return
		}
	}
	return nil
}
