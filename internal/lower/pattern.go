package lower

import (
	"flc/internal/ast"
	"flc/internal/hir"
	"flc/internal/scope"
)

// lowerPattern lowers a pattern node. Patterns reuse ordinary expression node
// kinds (Id, the literal kinds) rather than having dedicated NodeKinds of
// their own: an Id spelled "_" is a wildcard, any other Id binds a fresh
// local name into scopeID, and a literal node matches that literal's value.
func (l *Lowerer) lowerPattern(idx ast.NodeIndex, a *ast.Ast, scopeID scope.ID) (hir.PatternHandle, error) {
	if !idx.IsValid() {
		return 0, nil
	}
	node, ok := a.GetNode(idx)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "pattern node not found"}
	}

	switch node.Kind {
	case ast.Id:
		if node.Text == "_" {
			return l.Hir.InternPattern(hir.Pattern{Kind: hir.PatternWildcard}), nil
		}
		return l.bindPatternVariable(node, scopeID)

	case ast.IntLit, ast.RealLit, ast.BoolLit, ast.CharLit, ast.StringLit, ast.SymbolLit:
		expr, err := l.lowerExpr(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternPattern(hir.Pattern{Kind: hir.PatternLiteral, Expr: expr}), nil

	default:
		return 0, &Error{Kind: UnsupportedItem, Span: node.Span, Msg: "no lowering rule for pattern node kind " + node.Kind.String()}
	}
}

// bindPatternVariable mints a fresh HirId for a pattern-bound name and
// registers it as an ordinary item in scopeID, so later lowerExpr calls over
// the same scope (the rest of the enclosing block, a match arm's body) can
// resolve references to it through the normal Id lookup path.
func (l *Lowerer) bindPatternVariable(node ast.Node, scopeID scope.ID) (hir.PatternHandle, error) {
	name := l.Hir.InternStr(node.Text)
	hirID := l.Hir.Put(hir.HirMapping{Kind: hir.MappingExpr})
	if err := l.Scopes.AddItem(scope.Item{Symbol: name, HirID: hirID}, scopeID); err != nil {
		return 0, &Error{Kind: InternalError, Msg: err.Error()}
	}
	return l.Hir.InternPattern(hir.Pattern{Kind: hir.PatternVariable, Name: name}), nil
}
