package passes

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"swiftify/ast"
	"swiftify/intent"
	"swiftify/report"
	"swiftify/typesys"
)

// typeSnapshot is a cmp-friendly projection of an *intent.Type: the real
// type embeds intent.Base, whose parent/origin fields are unexported and
// would otherwise need an AllowUnexported escape hatch just to diff two
// type fragments by name.
type typeSnapshot struct {
	TypeName      string
	PropertyNames []string
	MethodNames   []string
}

func snapshotType(t *intent.Type) typeSnapshot {
	s := typeSnapshot{TypeName: t.TypeName}
	for _, p := range t.Properties {
		s.PropertyNames = append(s.PropertyNames, p.Name)
	}
	for _, m := range t.Methods {
		s.MethodNames = append(s.MethodNames, m.Signature.Name)
	}
	return s
}

func newTestReporter() *report.Reporter { return report.NewReporter(report.LogLevelSilent) }

func TestMergeTypeFragments(t *testing.T) {
	g := intent.NewGraph()
	f := intent.NewFile("Foo.m", false)
	g.AddFile(f)

	base := intent.NewType(intent.TypeClass, "Foo", false)
	base.AddProperty(intent.NewProperty("name", typesys.String), nil)
	f.AddType(base, nil)

	category := intent.NewType(intent.TypeClass, "Foo", false)
	category.AddMethod(intent.NewMethod(intent.Signature{Name: "greet"}, intent.AccessInternal), nil)
	f.AddType(category, nil)

	changed := MergeTypeFragments{}.Run(g, newTestReporter())
	if !changed {
		t.Fatalf("expected the second Foo fragment to trigger a merge")
	}

	canonical, ok := g.LookupType("Foo")
	if !ok {
		t.Fatalf("expected Foo to be registered in the graph")
	}
	want := typeSnapshot{TypeName: "Foo", PropertyNames: []string{"name"}, MethodNames: []string{"greet"}}
	if diff := cmp.Diff(want, snapshotType(canonical)); diff != "" {
		t.Errorf("merged type fragment snapshot mismatch (-want +got):\n%s", diff)
	}
	if f.Types[0] != canonical || f.Types[1] != canonical {
		t.Errorf("expected both file-local fragment slots to now point at the canonical type")
	}
}

// TestSynthesizeAccessorsCollapsesInOneRun checks spec §8 scenario 6:
// running the property-synthesis pass twice is idempotent. A declared but
// unimplemented property must reach its final ModeField shape in the very
// first Run, so the second Run reports no change.
func TestSynthesizeAccessorsCollapsesInOneRun(t *testing.T) {
	typ := intent.NewType(intent.TypeClass, "Foo", false)
	prop := intent.NewProperty("count", typesys.Int)
	prop.Mode = intent.ModeProperty
	typ.AddProperty(prop, nil)

	g := intent.NewGraph()
	f := intent.NewFile("Foo.m", false)
	f.AddType(typ, nil)
	g.AddFile(f)
	g.AddType(typ)

	pass := SynthesizeAccessors{}
	if !pass.Run(g, newTestReporter()) {
		t.Fatalf("expected the first run to synthesise and collapse the trivial accessors")
	}
	if prop.Mode != intent.ModeField || prop.Getter != nil || prop.Setter != nil {
		t.Fatalf("expected collapse to ModeField with no accessor bodies, got mode=%v getter=%v setter=%v",
			prop.Mode, prop.Getter, prop.Setter)
	}

	if pass.Run(g, newTestReporter()) {
		t.Errorf("expected the second run over the now-stable ModeField property to report no change")
	}
}

func TestPromoteReadonly(t *testing.T) {
	typ := intent.NewType(intent.TypeClass, "Foo", false)
	prop := intent.NewProperty("name", typesys.String)
	prop.Attributes["readonly"] = true
	prop.SetSetter(intent.NewBody(&ast.Compound{}))
	typ.AddProperty(prop, nil)

	g := intent.NewGraph()
	g.AddType(typ)

	if !(PromoteReadonly{}.Run(g, newTestReporter())) {
		t.Fatalf("expected a readonly field to be promoted")
	}
	if prop.Mode != intent.ModeComputed {
		t.Errorf("expected ModeComputed, got %v", prop.Mode)
	}
	if prop.Setter != nil {
		t.Errorf("expected the setter to be dropped for a `{ get }` property")
	}
}

func exprBase() ast.ExprBase { return ast.NewExprBase(nil) }
func stmtBase() ast.StmtBase { return ast.NewStmtBase(nil) }

func TestResolveIdentifiers(t *testing.T) {
	typ := intent.NewType(intent.TypeClass, "Foo", false)
	typ.AddProperty(intent.NewProperty("total", typesys.Int), nil)

	lhs := &ast.Identifier{ExprBase: exprBase(), Name: "x"}
	rhs := &ast.Identifier{ExprBase: exprBase(), Name: "total"}
	body := &ast.Compound{Stmts: []ast.Statement{
		&ast.Return{StmtBase: stmtBase(), X: &ast.Binary{ExprBase: exprBase(), Op: "+", Lhs: lhs, Rhs: rhs}},
	}}
	method := intent.NewMethod(intent.Signature{Name: "sum", Params: []intent.MethodParam{{Name: "x", Type: typesys.Int}}}, intent.AccessInternal)
	method.SetBody(intent.NewBody(body))
	typ.AddMethod(method, nil)

	g := intent.NewGraph()
	g.AddType(typ)

	if !(ResolveIdentifiers{}.Run(g, newTestReporter())) {
		t.Fatalf("expected identifier resolution to record a change")
	}
	if lhs.ResolvedScope != "param" {
		t.Errorf("expected %q resolved as param, got %q", "x", lhs.ResolvedScope)
	}
	if rhs.ResolvedScope != "member" {
		t.Errorf("expected %q resolved as member, got %q", "total", rhs.ResolvedScope)
	}
}

func TestInferExpressionTypes(t *testing.T) {
	typ := intent.NewType(intent.TypeClass, "Foo", false)
	sum := &ast.Binary{ExprBase: exprBase(), Op: "+",
		Lhs: &ast.Constant{ExprBase: exprBase(), Kind: ast.ConstInt, Value: "1"},
		Rhs: &ast.Constant{ExprBase: exprBase(), Kind: ast.ConstInt, Value: "2"},
	}
	body := &ast.Compound{Stmts: []ast.Statement{
		&ast.Return{StmtBase: stmtBase(), X: sum},
	}}
	method := intent.NewMethod(intent.Signature{Name: "sum", Return: typesys.Int}, intent.AccessInternal)
	method.SetBody(intent.NewBody(body))
	typ.AddMethod(method, nil)

	g := intent.NewGraph()
	g.AddType(typ)

	if !(InferExpressionTypes{}.Run(g, newTestReporter())) {
		t.Fatalf("expected type inference to record a change")
	}
	if sum.ResolvedType() == nil || !sum.ResolvedType().Equal(typesys.Int) {
		t.Errorf("expected 1 + 2 to infer as Int, got %v", sum.ResolvedType())
	}
}

func TestDeadCodeEliminationRemovesUnreachableStatement(t *testing.T) {
	live := &ast.ExprStmt{StmtBase: stmtBase(), X: &ast.Identifier{ExprBase: exprBase(), Name: "before"}}
	ret := &ast.Return{StmtBase: stmtBase()}
	dead := &ast.ExprStmt{StmtBase: stmtBase(), X: &ast.Identifier{ExprBase: exprBase(), Name: "after"}}
	body := &ast.Compound{Stmts: []ast.Statement{live, ret, dead}}

	typ := intent.NewType(intent.TypeClass, "Foo", false)
	method := intent.NewMethod(intent.Signature{Name: "m"}, intent.AccessInternal)
	method.SetBody(intent.NewBody(body))
	typ.AddMethod(method, nil)

	g := intent.NewGraph()
	g.AddType(typ)

	if !(DeadCodeElimination{}.Run(g, newTestReporter())) {
		t.Fatalf("expected dead-code elimination to record a change")
	}
	if len(body.Stmts) != 2 {
		t.Fatalf("expected the unreachable trailing statement to be dropped, got %d statements", len(body.Stmts))
	}
	if body.Stmts[0] != live || body.Stmts[1] != ret {
		t.Errorf("expected the surviving statements to be [live, return] in order")
	}
}

func TestPropagateNullability(t *testing.T) {
	typ := intent.NewType(intent.TypeClass, "Foo", true)
	prop := intent.NewProperty("delegate", typesys.Optional{Wrapped: typesys.AnyObject})
	typ.AddProperty(prop, nil)

	g := intent.NewGraph()
	g.AddType(typ)

	if !(PropagateNullability{}.Run(g, newTestReporter())) {
		t.Fatalf("expected nullability propagation to unwrap the implicit optional")
	}
	if !prop.Type.Equal(typesys.AnyObject) {
		t.Errorf("expected delegate's type to become AnyObject, got %v", prop.Type.Repr())
	}
}

func TestPropagateNullabilityRespectsExplicitNullable(t *testing.T) {
	typ := intent.NewType(intent.TypeClass, "Foo", true)
	prop := intent.NewProperty("delegate", typesys.Optional{Wrapped: typesys.AnyObject})
	prop.Attributes["nullable"] = true
	typ.AddProperty(prop, nil)

	g := intent.NewGraph()
	g.AddType(typ)

	if (PropagateNullability{}.Run(g, newTestReporter())) {
		t.Errorf("expected an explicitly nullable property to be left alone")
	}
}

func TestSchedulerRunsCatalogueInOrderUntilStable(t *testing.T) {
	typ := intent.NewType(intent.TypeClass, "Foo", false)
	prop := intent.NewProperty("count", typesys.Int)
	prop.Mode = intent.ModeProperty
	typ.AddProperty(prop, nil)

	g := intent.NewGraph()
	g.AddType(typ)

	sweeps := Run(g, newTestReporter(), StandardCatalogue(), DefaultMaxIterations)
	if sweeps == 0 || sweeps > DefaultMaxIterations {
		t.Fatalf("expected between 1 and %d sweeps, got %d", DefaultMaxIterations, sweeps)
	}

	again := Run(g, newTestReporter(), StandardCatalogue(), DefaultMaxIterations)
	if again != 1 {
		t.Errorf("expected a run over an already-stable graph to converge in a single sweep, got %d", again)
	}
}
