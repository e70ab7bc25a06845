package lower_test

import (
	"testing"

	"flc/internal/ast"
	"flc/internal/hir"
	"flc/internal/lower"
	"flc/internal/resolve"
	"flc/internal/scan"
	"flc/internal/scope"
	"flc/internal/source"
	"flc/internal/vfs"
)

func sp(start, end int) source.Span {
	return source.Span{File: 1, Start: uint32(start), End: uint32(end)}
}

func tyInt(b *ast.Builder, bits string) ast.NodeIndex {
	return b.Leaf(ast.TyInt, sp(0, 0), bits+":s")
}

// buildFixture assembles one package containing a struct, an enum, a union,
// and a function of two int params whose body adds them together, entirely
// through the ast.Builder (no lexer/parser involved).
func buildFixture(t *testing.T) (*vfs.Vfs, *scope.Store, *hir.Store, scope.ID) {
	t.Helper()

	vb := vfs.NewBuilder("proj")
	root := vb.Build().Root
	mainFile := vb.AddFile(root, "main.fl", nil)
	v := vb.Build()

	b := ast.NewBuilder(1)

	xField := b.Node2(ast.StructField, sp(0, 0), "x", tyInt(b, "64"), ast.NoNodeIndex)
	structDef := b.Multi(ast.StructDef, sp(0, 0), "Point", []ast.NodeIndex{xField})

	redVariant := b.Multi(ast.EnumVariant, sp(0, 0), "Red", nil)
	valueField := b.Node2(ast.StructField, sp(0, 0), "value", tyInt(b, "64"), ast.NoNodeIndex)
	customVariant := b.Multi(ast.EnumVariant, sp(0, 0), "Custom", []ast.NodeIndex{valueField})
	enumDef := b.Multi(ast.EnumDef, sp(0, 0), "Color", []ast.NodeIndex{redVariant, customVariant})

	unionMember := b.Node1(ast.UnionMember, sp(0, 0), "i", tyInt(b, "64"))
	unionDef := b.Multi(ast.UnionDef, sp(0, 0), "Num", []ast.NodeIndex{unionMember})

	xParam := b.Node2(ast.Param, sp(0, 0), "x", tyInt(b, "64"), ast.NoNodeIndex)
	yParam := b.Node2(ast.Param, sp(0, 0), "y", tyInt(b, "64"), ast.NoNodeIndex)

	xRef := b.Leaf(ast.Id, sp(0, 0), "x")
	yRef := b.Leaf(ast.Id, sp(0, 0), "y")
	sum := b.Node2(ast.BinaryApply, sp(0, 0), "+", xRef, yRef)

	addFn := b.NodeFull(ast.FunctionDef, sp(0, 0), "add",
		[]ast.NodeIndex{tyInt(b, "64"), sum},
		[]ast.NodeIndex{xParam, yParam})

	b.FileScope(sp(0, 0), []ast.NodeIndex{structDef, enumDef, unionDef, addFn})
	v.PutAST(mainFile, b.Build())

	scopes := scope.New()
	h := hir.New()
	s := scan.New(v, scopes, h)

	pkgScope, err := s.ScanPackage(v.Root, h.InternStr("proj"), scopes.Root)
	if err != nil {
		t.Fatalf("ScanPackage: %v", err)
	}

	r := resolve.New(v, scopes, h, s.Pending)
	if errs := r.ResolveAll(); len(errs) != 0 {
		t.Fatalf("ResolveAll: %v", errs)
	}

	return v, scopes, h, pkgScope
}

func TestLowerAllProducesOneDefinitionPerRootItem(t *testing.T) {
	v, scopes, h, pkgScope := buildFixture(t)
	l := lower.New(v, scopes, h)

	defs, errs := l.LowerAll(pkgScope)
	if len(errs) != 0 {
		t.Fatalf("LowerAll errors: %v", errs)
	}
	// Point, Color, Num, add.
	if len(defs) != 4 {
		t.Fatalf("len(defs) = %d, want 4", len(defs))
	}
}

func TestLowerStructDefLowersItsField(t *testing.T) {
	v, scopes, h, pkgScope := buildFixture(t)
	l := lower.New(v, scopes, h)
	if _, errs := l.LowerAll(pkgScope); len(errs) != 0 {
		t.Fatalf("LowerAll errors: %v", errs)
	}

	item, ok := scopes.Lookup(h.InternStr("Point"), pkgScope)
	if !ok {
		t.Fatalf("Lookup(Point) failed")
	}
	mapping, ok := h.Get(item.HirID)
	if !ok || mapping.Kind != hir.MappingDefinition {
		t.Fatalf("Point mapping = %+v, %v; want MappingDefinition", mapping, ok)
	}
	def := h.Definition(mapping.Def)
	if def.Kind != hir.DefStruct || len(def.Defs) != 1 {
		t.Fatalf("Point definition = %+v, want one field", def)
	}
	field := h.Definition(def.Defs[0])
	if field.Kind != hir.DefStructField || h.Str(field.Name) != "x" {
		t.Fatalf("Point field = %+v, want field named x", field)
	}
}

func TestLowerEnumDefLowersUnitAndStructVariants(t *testing.T) {
	v, scopes, h, pkgScope := buildFixture(t)
	l := lower.New(v, scopes, h)
	if _, errs := l.LowerAll(pkgScope); len(errs) != 0 {
		t.Fatalf("LowerAll errors: %v", errs)
	}

	item, ok := scopes.Lookup(h.InternStr("Color"), pkgScope)
	if !ok {
		t.Fatalf("Lookup(Color) failed")
	}
	mapping, _ := h.Get(item.HirID)
	def := h.Definition(mapping.Def)
	if def.Kind != hir.DefEnum || len(def.Defs) != 2 {
		t.Fatalf("Color definition = %+v, want two variants", def)
	}

	red := h.Definition(def.Defs[0])
	if red.Kind != hir.DefEnumVariant {
		t.Fatalf("Red variant kind = %v, want DefEnumVariant", red.Kind)
	}
	custom := h.Definition(def.Defs[1])
	if custom.Kind != hir.DefEnumVariantWithStruct || len(custom.Defs) != 1 {
		t.Fatalf("Custom variant = %+v, want one field", custom)
	}
}

func TestLowerUnionDefLowersMembers(t *testing.T) {
	v, scopes, h, pkgScope := buildFixture(t)
	l := lower.New(v, scopes, h)
	if _, errs := l.LowerAll(pkgScope); len(errs) != 0 {
		t.Fatalf("LowerAll errors: %v", errs)
	}

	item, ok := scopes.Lookup(h.InternStr("Num"), pkgScope)
	if !ok {
		t.Fatalf("Lookup(Num) failed")
	}
	mapping, _ := h.Get(item.HirID)
	def := h.Definition(mapping.Def)
	if def.Kind != hir.DefUnion || len(def.Defs) != 1 {
		t.Fatalf("Num definition = %+v, want one member", def)
	}
	member := h.Definition(def.Defs[0])
	if member.Kind != hir.DefUnionMember || h.Str(member.Name) != "i" {
		t.Fatalf("Num member = %+v, want member named i", member)
	}
}

func TestLowerFunctionDefBindsParamsAndLowersBody(t *testing.T) {
	v, scopes, h, pkgScope := buildFixture(t)
	l := lower.New(v, scopes, h)
	if _, errs := l.LowerAll(pkgScope); len(errs) != 0 {
		t.Fatalf("LowerAll errors: %v", errs)
	}

	item, ok := scopes.Lookup(h.InternStr("add"), pkgScope)
	if !ok {
		t.Fatalf("Lookup(add) failed")
	}
	mapping, _ := h.Get(item.HirID)
	def := h.Definition(mapping.Def)
	if def.Kind != hir.DefFunction || len(def.Function.Params) != 2 {
		t.Fatalf("add definition = %+v, want two params", def)
	}

	body := h.Expr(def.Function.Body)
	if body.Kind != hir.ExprBinaryApply || body.BinOp != hir.BinaryAdd {
		t.Fatalf("add body = %+v, want a BinaryAdd application", body)
	}

	left := h.Expr(body.Left)
	right := h.Expr(body.Right)
	if left.Kind != hir.ExprRef || right.Kind != hir.ExprRef {
		t.Fatalf("add body operands = %+v, %+v, want ExprRef each", left, right)
	}
}

// buildClauseFixture assembles a one-function package whose only function
// declares a `decl n = 0` clause and returns `n` directly, exercising
// clause lowering and clause-search resolution end to end.
func buildClauseFixture(t *testing.T) (*vfs.Vfs, *scope.Store, *hir.Store, scope.ID) {
	t.Helper()

	vb := vfs.NewBuilder("proj")
	root := vb.Build().Root
	mainFile := vb.AddFile(root, "main.fl", nil)
	v := vb.Build()

	b := ast.NewBuilder(1)

	defaultVal := b.Leaf(ast.IntLit, sp(0, 0), "0")
	declClause := b.Node1(ast.ClauseDecl, sp(0, 0), "n", defaultVal)
	clauseList := b.Multi(ast.ClauseList, sp(0, 0), "", []ast.NodeIndex{declClause})

	bodyRef := b.Leaf(ast.Id, sp(0, 0), "n")
	fn := b.NodeFull(ast.FunctionDef, sp(0, 0), "useClause",
		[]ast.NodeIndex{tyInt(b, "64"), bodyRef, clauseList}, nil)

	b.FileScope(sp(0, 0), []ast.NodeIndex{fn})
	v.PutAST(mainFile, b.Build())

	scopes := scope.New()
	h := hir.New()
	s := scan.New(v, scopes, h)

	pkgScope, err := s.ScanPackage(v.Root, h.InternStr("proj"), scopes.Root)
	if err != nil {
		t.Fatalf("ScanPackage: %v", err)
	}
	r := resolve.New(v, scopes, h, s.Pending)
	if errs := r.ResolveAll(); len(errs) != 0 {
		t.Fatalf("ResolveAll: %v", errs)
	}
	return v, scopes, h, pkgScope
}

func TestLowerFunctionDefLowersClauseAndResolvesItInBody(t *testing.T) {
	v, scopes, h, pkgScope := buildClauseFixture(t)
	l := lower.New(v, scopes, h)

	if _, errs := l.LowerAll(pkgScope); len(errs) != 0 {
		t.Fatalf("LowerAll errors: %v", errs)
	}

	item, ok := scopes.Lookup(h.InternStr("useClause"), pkgScope)
	if !ok {
		t.Fatalf("Lookup(useClause) failed")
	}
	mapping, _ := h.Get(item.HirID)
	def := h.Definition(mapping.Def)
	if len(def.Function.Clauses) != 1 {
		t.Fatalf("useClause clauses = %+v, want exactly one", def.Function.Clauses)
	}

	clause := h.Clause(def.Function.Clauses[0])
	if clause.Kind != hir.ClauseDecl || h.Str(clause.Name) != "n" {
		t.Fatalf("clause = %+v, want Decl(n)", clause)
	}
	if h.Expr(clause.Default).Kind != hir.ExprIntLiteral {
		t.Fatalf("clause default = %+v, want an int literal", h.Expr(clause.Default))
	}

	// the body expression `n` must resolve through Store.Resolve's clause
	// search in the function's own body scope, not a plain item lookup.
	entries, ok := scopes.ScopeClauses(scope.ID(def.Function.BodyScope))
	if !ok || len(entries) != 1 || entries[0].HirID != clause.HirID {
		t.Fatalf("ScopeClauses(bodyScope) = %+v, %v; want the clause's own HirID", entries, ok)
	}

	body := h.Expr(def.Function.Body)
	if body.Kind != hir.ExprRef || body.Ref != clause.HirID {
		t.Fatalf("body = %+v, want ExprRef to the clause's HirId %v", body, clause.HirID)
	}
}

func TestLowerItemIsIdempotent(t *testing.T) {
	v, scopes, h, pkgScope := buildFixture(t)
	l := lower.New(v, scopes, h)

	defs1, errs := l.LowerAll(pkgScope)
	if len(errs) != 0 {
		t.Fatalf("first LowerAll errors: %v", errs)
	}
	fingerprint1, err := h.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint after first LowerAll: %v", err)
	}

	defs2, errs := l.LowerAll(pkgScope)
	if len(errs) != 0 {
		t.Fatalf("second LowerAll errors: %v", errs)
	}
	fingerprint2, err := h.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint after second LowerAll: %v", err)
	}

	for i := range defs1 {
		if defs1[i] != defs2[i] {
			t.Fatalf("re-lowering item %d produced a different handle: %v != %v", i, defs1[i], defs2[i])
		}
	}
	if string(fingerprint1) != string(fingerprint2) {
		t.Fatalf("re-lowering the same package mutated the HIR store: fingerprints differ")
	}
}
