package ast_test

import (
	"testing"

	"flc/internal/ast"
	"flc/internal/source"
)

func sp(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestBuilderFileScopeRoundTrip(t *testing.T) {
	b := ast.NewBuilder(1)
	name := b.Leaf(ast.Id, sp(3, 6), "foo")
	fn := b.NodeFull(ast.FunctionDef, sp(0, 20), "foo", []ast.NodeIndex{ast.NoNodeIndex, ast.NoNodeIndex}, nil)
	root := b.FileScope(sp(0, 20), []ast.NodeIndex{fn})
	a := b.Build()

	if a.Root != root {
		t.Fatalf("Root = %v, want %v", a.Root, root)
	}
	kind, ok := a.GetNodeKind(root)
	if !ok || kind != ast.FileScope {
		t.Fatalf("GetNodeKind(root) = %v, %v; want FileScope, true", kind, ok)
	}
	items, ok := a.GetMultiChildSlice(root)
	if !ok || len(items) != 1 || items[0] != fn {
		t.Fatalf("GetMultiChildSlice(root) = %v, %v; want [%v], true", items, ok, fn)
	}
	fnKind, _ := a.GetNodeKind(fn)
	if fnKind != ast.FunctionDef {
		t.Fatalf("GetNodeKind(fn) = %v, want FunctionDef", fnKind)
	}
	if !fnKind.IsItemKind() {
		t.Fatalf("FunctionDef.IsItemKind() = false, want true")
	}

	_ = name // constructed but unreferenced by this fixture, as a standalone Id node
}

func TestGetNodeKindOutOfRange(t *testing.T) {
	a := ast.NewAst(1)
	if _, ok := a.GetNodeKind(ast.NodeIndex(99)); ok {
		t.Fatalf("GetNodeKind(99) on empty Ast: ok = true, want false")
	}
	if _, ok := a.GetNodeKind(ast.NoNodeIndex); ok {
		t.Fatalf("GetNodeKind(NoNodeIndex): ok = true, want false")
	}
}

func TestSourceContent(t *testing.T) {
	b := ast.NewBuilder(1)
	lit := b.Leaf(ast.IntLit, sp(4, 6), "42")
	a := b.Build()
	content := []byte("let x = 42")
	got, ok := a.SourceContent(lit, content)
	if !ok || got != "42" {
		t.Fatalf("SourceContent = %q, %v; want \"42\", true", got, ok)
	}
}

func TestNodeKindIsItemKind(t *testing.T) {
	itemKinds := []ast.NodeKind{ast.ModuleDef, ast.StructDef, ast.EnumDef, ast.UnionDef, ast.FunctionDef, ast.UseStatement}
	for _, k := range itemKinds {
		if !k.IsItemKind() {
			t.Errorf("%v.IsItemKind() = false, want true", k)
		}
	}
	nonItemKinds := []ast.NodeKind{ast.Id, ast.IntLit, ast.Block, ast.FnApply, ast.FileScope}
	for _, k := range nonItemKinds {
		if k.IsItemKind() {
			t.Errorf("%v.IsItemKind() = true, want false", k)
		}
	}
}
