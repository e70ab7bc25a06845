// Package testkit holds small invariant checks shared across package tests,
// so each package's tests assert "this tree is well-formed" the same way
// instead of re-deriving span containment logic per package.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"flc/internal/ast"
	"flc/internal/source"
)

// CheckSpanInvariants walks every node reachable from a's root and checks:
//  1. the root's span is non-empty and within the file's content bounds.
//  2. every child's span is non-empty and fully contained in its parent's span.
//  3. a parent's span covers the union of its children's spans.
func CheckSpanInvariants(a *ast.Ast, sf *source.File) error {
	if a == nil || sf == nil {
		return fmt.Errorf("nil ast or file")
	}
	if !a.Root.IsValid() {
		return fmt.Errorf("ast has no root")
	}

	rootSpan, ok := a.GetSpan(a.Root)
	if !ok {
		return fmt.Errorf("root node not found")
	}
	if rootSpan.Empty() {
		return fmt.Errorf("root span is empty: %v", rootSpan)
	}
	if rootSpan.File != sf.ID {
		return fmt.Errorf("root span points to a different file: got=%d want=%d", rootSpan.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if rootSpan.End > lenContent {
		return fmt.Errorf("root span end beyond content: %d > %d", rootSpan.End, lenContent)
	}

	return checkChildren(a, a.Root, sf.ID)
}

func checkChildren(a *ast.Ast, idx ast.NodeIndex, file source.FileID) error {
	node, ok := a.GetNode(idx)
	if !ok {
		return fmt.Errorf("node %d not found", idx)
	}

	var children []ast.NodeIndex
	children = append(children, node.Children...)
	if multi, ok := a.GetMultiChildSlice(idx); ok {
		children = append(children, multi...)
	}

	var union source.Span
	haveChild := false
	for _, c := range children {
		if !c.IsValid() {
			continue
		}
		childSpan, ok := a.GetSpan(c)
		if !ok {
			return fmt.Errorf("child node %d not found", c)
		}
		if childSpan.Empty() {
			return fmt.Errorf("empty child span at node %d: %v", c, childSpan)
		}
		if childSpan.File != file {
			return fmt.Errorf("child span file mismatch at node %d: got=%d want=%d", c, childSpan.File, file)
		}
		if childSpan.Start < node.Span.Start || childSpan.End > node.Span.End {
			return fmt.Errorf("child span %v at node %d is outside parent span %v", childSpan, c, node.Span)
		}

		if !haveChild {
			union = childSpan
			haveChild = true
		} else {
			union = union.Cover(childSpan)
		}

		if err := checkChildren(a, c, file); err != nil {
			return err
		}
	}

	if haveChild && (union.Start < node.Span.Start || union.End > node.Span.End) {
		return fmt.Errorf("node %d span %v does not cover union of its children %v", idx, node.Span, union)
	}
	return nil
}
