package lower

import (
	"flc/internal/ast"
	"flc/internal/hir"
	"flc/internal/scope"
)

// lowerClauses lowers node's optional clause-list child (Children[at], if
// present and valid) and registers each clause against scopeID, returning
// the handles in declaration order for the owning Definition/FunctionBody
// to carry. A node with no clause list (at out of range, or NoNodeIndex at
// that index) lowers to an empty, nil-safe result.
func (l *Lowerer) lowerClauses(a *ast.Ast, node ast.NodeIndex, at int, scopeID scope.ID) ([]hir.ClauseHandle, error) {
	children := a.GetChildren(node)
	if at >= len(children) || !children[at].IsValid() {
		return nil, nil
	}
	clauseNodes, _ := a.GetMultiChildSlice(children[at])
	handles := make([]hir.ClauseHandle, 0, len(clauseNodes))
	for _, cn := range clauseNodes {
		h, err := l.lowerClause(a, cn, scopeID)
		if err != nil {
			return nil, err
		}
		handles = append(handles, h)
	}
	return handles, nil
}

// lowerClause lowers one ClauseTypeDecl/ClauseTypeTraitBounded/ClauseDecl
// node, mints the HirId that names its declared symbol, interns the
// resulting hir.Clause, and registers it against scopeID so Store.Resolve
// can find the symbol by name from inside the clause's scope.
func (l *Lowerer) lowerClause(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.ClauseHandle, error) {
	node, ok := a.GetNode(idx)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "clause node not found"}
	}

	var clause hir.Clause
	clause.Name = l.Hir.InternStr(node.Text)

	switch node.Kind {
	case ast.ClauseTypeDecl:
		clause.Kind = hir.ClauseTypeDecl

	case ast.ClauseTypeTraitBounded:
		clause.Kind = hir.ClauseTypeTraitBounded
		if len(node.Children) >= 1 && node.Children[0].IsValid() {
			bound, err := l.lowerExpr(a, node.Children[0], scopeID)
			if err != nil {
				return 0, err
			}
			clause.Bound = bound
		}

	case ast.ClauseDecl:
		clause.Kind = hir.ClauseDecl
		if len(node.Children) >= 1 && node.Children[0].IsValid() {
			def, err := l.lowerExpr(a, node.Children[0], scopeID)
			if err != nil {
				return 0, err
			}
			clause.Default = def
		}
		for _, pn := range node.MultiChild {
			pat, err := l.lowerPattern(pn, a, scopeID)
			if err != nil {
				return 0, err
			}
			clause.Patterns = append(clause.Patterns, pat)
		}

	default:
		return 0, &Error{Kind: UnsupportedItem, Span: node.Span, Msg: "unexpected node kind " + node.Kind.String() + " in clause list"}
	}

	hirID := l.Hir.Reserve()
	clause.HirID = hirID
	handle := l.Hir.InternClause(clause)
	l.Hir.Update(hirID, hir.HirMapping{Kind: hir.MappingClause, Clause: handle})

	if err := l.Scopes.AddClause(scopeID, scope.ClauseEntry{Symbol: clause.Name, HirID: hirID, Handle: handle}); err != nil {
		return 0, &Error{Kind: InternalError, Msg: err.Error()}
	}
	return handle, nil
}
