package vfs_test

import (
	"testing"

	"flc/internal/ast"
	"flc/internal/vfs"
)

func TestBuilderRootIsDirectory(t *testing.T) {
	b := vfs.NewBuilder("proj")
	v := b.Build()
	src := b.AddSpecialDirectory(v.Root, "src", vfs.Src)
	_ = src
	root, ok := v.Node(v.Root)
	if !ok || root.Kind != vfs.Directory {
		t.Fatalf("root node missing or wrong kind: %+v, %v", root, ok)
	}
}

func TestEntryFileNames(t *testing.T) {
	b := vfs.NewBuilder("proj")
	srcID := b.AddSpecialDirectory(b.Build().Root, "src", vfs.Src)
	main := b.AddFile(srcID, "main.fl", []byte("fn main() {}"))
	b.AddFile(srcID, "helper.fl", []byte("fn helper() {}"))
	v := b.Build()

	if got := v.EntryFile(srcID); got != main {
		t.Fatalf("EntryFile(src) = %v, want %v", got, main)
	}
}

func TestEntryFileNoneFound(t *testing.T) {
	b := vfs.NewBuilder("proj")
	dirID := b.AddDirectory(b.Build().Root, "sub")
	b.AddFile(dirID, "helper.fl", nil)
	v := b.Build()

	if got := v.EntryFile(dirID); got != vfs.NoNodeID {
		t.Fatalf("EntryFile(sub) = %v, want NoNodeID", got)
	}
}

func TestPutGetAST(t *testing.T) {
	v := vfs.New()
	a := ast.NewAst(1)
	v.PutAST(5, a)
	got, ok := v.GetAST(5)
	if !ok || got != a {
		t.Fatalf("GetAST(5) = %v, %v; want original ast, true", got, ok)
	}
	if _, ok := v.GetAST(6); ok {
		t.Fatalf("GetAST(6) = _, true; want false")
	}
}
