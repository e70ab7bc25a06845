package ast

import "flc/internal/source"

// Builder constructs an Ast bottom-up, for use in tests and other fixture
// code that needs a concrete AST without going through the lexer/parser.
type Builder struct {
	ast *Ast
}

// NewBuilder creates a Builder for the given file.
func NewBuilder(file FileID) *Builder {
	return &Builder{ast: NewAst(file)}
}

// Leaf pushes a node with no children (literals, Continue, TyAny, TyUnit, ...).
func (b *Builder) Leaf(kind NodeKind, span source.Span, text string) NodeIndex {
	return b.ast.Push(Node{Kind: kind, Span: span, Text: text})
}

// Node1 pushes a node with a single ordered child.
func (b *Builder) Node1(kind NodeKind, span source.Span, text string, child NodeIndex) NodeIndex {
	return b.ast.Push(Node{Kind: kind, Span: span, Text: text, Children: []NodeIndex{child}})
}

// Node2 pushes a node with two ordered children.
func (b *Builder) Node2(kind NodeKind, span source.Span, text string, c1, c2 NodeIndex) NodeIndex {
	return b.ast.Push(Node{Kind: kind, Span: span, Text: text, Children: []NodeIndex{c1, c2}})
}

// Node3 pushes a node with three ordered children.
func (b *Builder) Node3(kind NodeKind, span source.Span, text string, c1, c2, c3 NodeIndex) NodeIndex {
	return b.ast.Push(Node{Kind: kind, Span: span, Text: text, Children: []NodeIndex{c1, c2, c3}})
}

// Multi pushes a node whose payload is a MultiChild list (item lists, ExprList,
// Tuple, Object, StructDef fields, and so on).
func (b *Builder) Multi(kind NodeKind, span source.Span, text string, items []NodeIndex) NodeIndex {
	return b.ast.Push(Node{Kind: kind, Span: span, Text: text, MultiChild: items})
}

// NodeFull pushes a node with both an ordered Children list and a MultiChild
// list (Match's scrutinee plus its MatchArm list, FunctionDef's
// return/body children plus its Param list, and so on).
func (b *Builder) NodeFull(kind NodeKind, span source.Span, text string, children, multi []NodeIndex) NodeIndex {
	return b.ast.Push(Node{Kind: kind, Span: span, Text: text, Children: children, MultiChild: multi})
}

// FileScope pushes the file's root node and sets it as the Ast's root.
func (b *Builder) FileScope(span source.Span, items []NodeIndex) NodeIndex {
	idx := b.Multi(FileScope, span, "", items)
	b.ast.Root = idx
	return idx
}

// Build returns the constructed Ast.
func (b *Builder) Build() *Ast {
	return b.ast
}
