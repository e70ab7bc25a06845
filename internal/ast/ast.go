package ast

import (
	"flc/internal/source"
)

// Node is one entry in a file's flat node store. The meaning of Children,
// MultiChild, and Text is fixed per Kind — see the doc comments on the
// NodeKind constants.
type Node struct {
	Kind       NodeKind
	Span       source.Span
	Children   []NodeIndex
	MultiChild []NodeIndex
	Text       string
}

// Ast is the flat, NodeIndex-addressed AST for a single source file. The
// root is always a single FileScope node whose MultiChild lists the file's
// top-level items.
type Ast struct {
	File  FileID
	Root  NodeIndex
	nodes []Node // 1-based; index 0 is the NoNodeIndex sentinel and is unused
}

// NewAst creates an empty Ast for the given file.
func NewAst(file FileID) *Ast {
	return &Ast{
		File:  file,
		nodes: make([]Node, 1), // reserve index 0
	}
}

// Push appends a node and returns its NodeIndex.
func (a *Ast) Push(n Node) NodeIndex {
	a.nodes = append(a.nodes, n)
	return NodeIndex(len(a.nodes) - 1)
}

// GetNodeKind returns the kind of the node at idx, and false if idx is out of range.
func (a *Ast) GetNodeKind(idx NodeIndex) (NodeKind, bool) {
	n, ok := a.get(idx)
	if !ok {
		return InvalidKind, false
	}
	return n.Kind, true
}

// GetChildren returns the primary ordered children of the node at idx.
func (a *Ast) GetChildren(idx NodeIndex) []NodeIndex {
	n, ok := a.get(idx)
	if !ok {
		return nil
	}
	return n.Children
}

// GetMultiChildSlice returns the secondary child list of the node at idx, or
// (nil, false) if the node has none.
func (a *Ast) GetMultiChildSlice(idx NodeIndex) ([]NodeIndex, bool) {
	n, ok := a.get(idx)
	if !ok || n.MultiChild == nil {
		return nil, false
	}
	return n.MultiChild, true
}

// GetSpan returns the span of the node at idx.
func (a *Ast) GetSpan(idx NodeIndex) (source.Span, bool) {
	n, ok := a.get(idx)
	if !ok {
		return source.Span{}, false
	}
	return n.Span, true
}

// GetNode returns the full node at idx.
func (a *Ast) GetNode(idx NodeIndex) (Node, bool) {
	return a.get(idx)
}

// SourceContent returns the source text covered by the node at idx, given
// the source bytes for a.File.
func (a *Ast) SourceContent(idx NodeIndex, content []byte) (string, bool) {
	n, ok := a.get(idx)
	if !ok {
		return "", false
	}
	if int(n.Span.End) > len(content) || n.Span.Start > n.Span.End {
		return "", false
	}
	return string(content[n.Span.Start:n.Span.End]), true
}

func (a *Ast) get(idx NodeIndex) (Node, bool) {
	if !idx.IsValid() || int(idx) >= len(a.nodes) {
		return Node{}, false
	}
	return a.nodes[idx], true
}

// Len returns the number of live nodes (excluding the index-0 sentinel).
func (a *Ast) Len() int {
	return len(a.nodes) - 1
}
