package lower

import (
	"strconv"
	"strings"

	"flc/internal/ast"
	"flc/internal/hir"
	"flc/internal/scope"
)

var binaryOps = map[string]hir.BinaryOp{
	"+":   hir.BinaryAdd,
	"-":   hir.BinarySub,
	"*":   hir.BinaryMul,
	"/":   hir.BinaryDiv,
	"%":   hir.BinaryMod,
	"++":  hir.BinaryAddAdd,
	"&&":  hir.BinaryBoolAnd,
	"and": hir.BinaryBoolAnd,
	"||":  hir.BinaryBoolOr,
	"or":  hir.BinaryBoolOr,
}

var unaryOps = map[string]hir.UnaryOp{
	"-": hir.UnaryNeg,
	"!": hir.UnaryNot,
	"&": hir.UnaryRefer,
	"*": hir.UnaryDeref,
}

// lowerExpr lowers one expression (or type-expression) AST node to an
// interned hir.Expr, resolving any identifier it contains against scopeID.
// idx == ast.NoNodeIndex lowers to handle 0 (an absent optional child, e.g.
// a missing else branch or inferred return type).
func (l *Lowerer) lowerExpr(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.ExprHandle, error) {
	if !idx.IsValid() {
		return 0, nil
	}
	node, ok := a.GetNode(idx)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "expr node not found"}
	}

	switch node.Kind {
	case ast.IntLit:
		n, err := strconv.ParseInt(node.Text, 10, 64)
		if err != nil {
			return 0, &Error{Kind: LiteralError, Span: node.Span, Msg: "invalid int literal: " + node.Text}
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprIntLiteral, Int: n}), nil

	case ast.RealLit:
		mantissa, exp, err := splitReal(node.Text)
		if err != nil {
			return 0, &Error{Kind: LiteralError, Span: node.Span, Msg: "invalid real literal: " + node.Text}
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprRealLiteral, RealMantissa: mantissa, RealExp: exp}), nil

	case ast.BoolLit:
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprBoolLiteral, Bool: node.Text == "true"}), nil

	case ast.CharLit:
		runes := []rune(node.Text)
		if len(runes) != 1 {
			return 0, &Error{Kind: LiteralError, Span: node.Span, Msg: "invalid char literal: " + node.Text}
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprCharLiteral, Char: runes[0]}), nil

	case ast.StringLit:
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprStrLiteral, Str: l.Hir.InternStr(node.Text)}), nil

	case ast.SymbolLit:
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprSymbolLiteral, Str: l.Hir.InternStr(node.Text)}), nil

	case ast.Id:
		return l.lowerIdRef(node, scopeID)

	case ast.ExprList:
		items, err := l.lowerExprList(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprList, Items: items}), nil

	case ast.Tuple:
		items, err := l.lowerExprList(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTuple, Items: items}), nil

	case ast.Object:
		items, props, err := l.lowerObjectFields(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprObject, Items: items, Props: props}), nil

	case ast.Range:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "Range missing its bounds"}
		}
		from, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		to, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprRange, From: from, To: to, Inclusive: node.Text == "incl"}), nil

	case ast.Block:
		items, err := l.lowerExprList(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprBlock, Items: items}), nil

	case ast.If:
		children := a.GetChildren(idx)
		if len(children) != 3 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "If missing a child"}
		}
		cond, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		then, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		elseOpt, err := l.lowerExpr(a, children[2], scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprIf, Cond: cond, Then: then, ElseOpt: elseOpt}), nil

	case ast.When:
		clauses, _ := a.GetMultiChildSlice(idx)
		conds := make([]hir.ExprHandle, 0, len(clauses))
		bodies := make([]hir.ExprHandle, 0, len(clauses))
		for _, c := range clauses {
			cc := a.GetChildren(c)
			if len(cc) != 2 {
				return 0, &Error{Kind: InternalError, Msg: "WhenClause missing a child"}
			}
			cond, err := l.lowerExpr(a, cc[0], scopeID)
			if err != nil {
				return 0, err
			}
			body, err := l.lowerExpr(a, cc[1], scopeID)
			if err != nil {
				return 0, err
			}
			conds = append(conds, cond)
			bodies = append(bodies, body)
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprWhen, Items: conds, Items2: bodies}), nil

	case ast.Match:
		return l.lowerMatch(a, idx, scopeID)

	case ast.While:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "While missing a child"}
		}
		cond, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		body, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprWhile, Cond: cond, Body: body}), nil

	case ast.For:
		children := a.GetChildren(idx)
		if len(children) != 3 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "For missing a child"}
		}
		pat, err := l.lowerPattern(children[0], a, scopeID)
		if err != nil {
			return 0, err
		}
		iter, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		body, err := l.lowerExpr(a, children[2], scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprFor, Pat: pat, Left: iter, Body: body}), nil

	case ast.Let, ast.Const:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "Let/Const missing a child"}
		}
		value, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		pat, err := l.lowerPattern(children[0], a, scopeID)
		if err != nil {
			return 0, err
		}
		kind := hir.ExprLet
		if node.Kind == ast.Const {
			kind = hir.ExprConst
		}
		return l.Hir.InternExpr(hir.Expr{Kind: kind, Pat: pat, Left: value}), nil

	case ast.Assign:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "Assign missing a child"}
		}
		target, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		value, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprAssign, Target: target, Left: value}), nil

	case ast.Break:
		value, err := l.lowerOptionalChild(a, idx, 0, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprBreak, ElseOpt: value}), nil

	case ast.Continue:
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprContinue}), nil

	case ast.Return:
		value, err := l.lowerOptionalChild(a, idx, 0, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprReturn, ElseOpt: value}), nil

	case ast.Resume:
		value, err := l.lowerOptionalChild(a, idx, 0, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprResume, ElseOpt: value}), nil

	case ast.FnApply:
		return l.lowerFnApply(a, idx, scopeID)

	case ast.UnaryApply:
		children := a.GetChildren(idx)
		if len(children) != 1 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "UnaryApply missing its operand"}
		}
		operand, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		op, ok := unaryOps[node.Text]
		if !ok {
			return 0, &Error{Kind: LiteralError, Span: node.Span, Msg: "unknown unary operator: " + node.Text}
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprUnaryApply, Operand: operand, Op: op}), nil

	case ast.BinaryApply:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "BinaryApply missing a side"}
		}
		left, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		right, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		op, ok := binaryOps[strings.ToLower(node.Text)]
		if !ok {
			return 0, &Error{Kind: LiteralError, Span: node.Span, Msg: "unknown binary operator: " + node.Text}
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprBinaryApply, Left: left, Right: right, BinOp: op}), nil

	case ast.ObjectApply:
		children := a.GetChildren(idx)
		if len(children) != 1 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "ObjectApply missing its callee"}
		}
		callee, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		items, props, err := l.lowerObjectFields(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprObjectApply, Callee: callee, Items: items, Props: props}), nil

	case ast.Index:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "Index missing a child"}
		}
		left, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		right, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprIndex, Left: left, Right: right}), nil

	case ast.Matches:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "Matches missing a child"}
		}
		left, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		pat, err := l.lowerPattern(children[1], a, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprMatches, Left: left, Pat: pat}), nil

	case ast.TyAny:
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyAny}), nil
	case ast.TyUnit:
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyVoid}), nil

	case ast.TyInt:
		bits, signed, err := splitIntType(node.Text)
		if err != nil {
			return 0, &Error{Kind: LiteralError, Span: node.Span, Msg: "invalid int type: " + node.Text}
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyInt, Bits: bits, Signed: signed}), nil

	case ast.TyFloat:
		bits, err := strconv.ParseUint(node.Text, 10, 8)
		if err != nil {
			return 0, &Error{Kind: LiteralError, Span: node.Span, Msg: "invalid float type: " + node.Text}
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyFloat, Bits: uint8(bits)}), nil

	case ast.TyTuple:
		items, err := l.lowerExprList(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyTuple, Items: items}), nil

	case ast.TyOptional:
		inner, err := l.lowerOptionalChild(a, idx, 0, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyOptional, TyInner: inner}), nil

	case ast.TyPointer:
		inner, err := l.lowerOptionalChild(a, idx, 0, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyPointer, TyInner: inner}), nil

	case ast.TyArray:
		children := a.GetChildren(idx)
		if len(children) != 2 {
			return 0, &Error{Kind: InternalError, Span: node.Span, Msg: "TyArray missing a child"}
		}
		elem, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return 0, err
		}
		size, err := l.lowerExpr(a, children[1], scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyArray, TyInner: elem, TySize: size}), nil

	case ast.TyScheme:
		paramNodes, _ := a.GetMultiChildSlice(idx)
		params := make([]hir.ParamHandle, 0, len(paramNodes))
		for _, pn := range paramNodes {
			pnode, _ := a.GetNode(pn)
			sym := l.Hir.InternStr(pnode.Text)
			params = append(params, l.Hir.InternParam(hir.Param{Kind: hir.ParamTyped, Name: sym}))
		}
		body, err := l.lowerOptionalChild(a, idx, 0, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyScheme, Params: params, TyInner: body}), nil

	case ast.TyNamed:
		args, err := l.lowerExprList(a, idx, scopeID)
		if err != nil {
			return 0, err
		}
		// Def (the resolved target Definition) is left 0: matching a
		// TyNamed to its declaration is a type-checking concern, not a
		// lowering one.
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyNamed, Str: l.Hir.InternStr(node.Text), Items: args}), nil

	case ast.TyAlias:
		target, err := l.lowerOptionalChild(a, idx, 0, scopeID)
		if err != nil {
			return 0, err
		}
		return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprTyAlias, Str: l.Hir.InternStr(node.Text), TyInner: target}), nil

	default:
		return 0, &Error{Kind: UnsupportedItem, Span: node.Span, Msg: "no lowering rule for node kind " + node.Kind.String()}
	}
}

func (l *Lowerer) lowerIdRef(node ast.Node, scopeID scope.ID) (hir.ExprHandle, error) {
	sym := l.Hir.InternStr(node.Text)
	item, ok := l.Scopes.Resolve(sym, scopeID)
	if !ok {
		return 0, &Error{Kind: UnresolvedIdentifier, Span: node.Span, Msg: "no such name: " + node.Text}
	}
	return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprRef, Ref: item.HirID}), nil
}

// lowerExprList lowers node's MultiChild elements in order.
func (l *Lowerer) lowerExprList(a *ast.Ast, node ast.NodeIndex, scopeID scope.ID) ([]hir.ExprHandle, error) {
	elems, _ := a.GetMultiChildSlice(node)
	out := make([]hir.ExprHandle, 0, len(elems))
	for _, e := range elems {
		h, err := l.lowerExpr(a, e, scopeID)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

// lowerObjectFields lowers node's MultiChild ObjectField children into
// parallel value/name lists.
func (l *Lowerer) lowerObjectFields(a *ast.Ast, node ast.NodeIndex, scopeID scope.ID) ([]hir.ExprHandle, []hir.Property, error) {
	fields, _ := a.GetMultiChildSlice(node)
	items := make([]hir.ExprHandle, 0, len(fields))
	props := make([]hir.Property, 0, len(fields))
	for _, f := range fields {
		fnode, ok := a.GetNode(f)
		if !ok {
			return nil, nil, &Error{Kind: InternalError, Msg: "object field node not found"}
		}
		children := a.GetChildren(f)
		if len(children) != 1 {
			return nil, nil, &Error{Kind: InternalError, Span: fnode.Span, Msg: "ObjectField missing its value"}
		}
		value, err := l.lowerExpr(a, children[0], scopeID)
		if err != nil {
			return nil, nil, err
		}
		name := l.Hir.InternStr(fnode.Text)
		items = append(items, value)
		props = append(props, hir.Property{Name: name, Value: value})
	}
	return items, props, nil
}

// lowerFnApply lowers FnApply's callee, positional ArgList, and
// OptionalArgList children.
func (l *Lowerer) lowerFnApply(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.ExprHandle, error) {
	children := a.GetChildren(idx)
	if len(children) != 3 {
		return 0, &Error{Kind: InternalError, Msg: "FnApply missing a child"}
	}
	callee, err := l.lowerExpr(a, children[0], scopeID)
	if err != nil {
		return 0, err
	}

	var args []hir.ExprHandle
	if children[1].IsValid() {
		if args, err = l.lowerExprList(a, children[1], scopeID); err != nil {
			return 0, err
		}
	}

	var props []hir.Property
	if children[2].IsValid() {
		optArgs, _ := a.GetMultiChildSlice(children[2])
		props = make([]hir.Property, 0, len(optArgs))
		for _, oa := range optArgs {
			oaNode, ok := a.GetNode(oa)
			if !ok {
				return 0, &Error{Kind: InternalError, Msg: "optional arg node not found"}
			}
			oaChildren := a.GetChildren(oa)
			if len(oaChildren) != 1 {
				return 0, &Error{Kind: InternalError, Span: oaNode.Span, Msg: "OptionalArg missing its value"}
			}
			value, err := l.lowerExpr(a, oaChildren[0], scopeID)
			if err != nil {
				return 0, err
			}
			props = append(props, hir.Property{Name: l.Hir.InternStr(oaNode.Text), Value: value})
		}
	}

	return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprFnApply, Callee: callee, Items: args, Props: props}), nil
}

func (l *Lowerer) lowerMatch(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.ExprHandle, error) {
	children := a.GetChildren(idx)
	if len(children) != 1 {
		return 0, &Error{Kind: InternalError, Msg: "Match missing its scrutinee"}
	}
	subject, err := l.lowerExpr(a, children[0], scopeID)
	if err != nil {
		return 0, err
	}

	arms, _ := a.GetMultiChildSlice(idx)
	pats := make([]hir.PatternHandle, 0, len(arms))
	bodies := make([]hir.ExprHandle, 0, len(arms))
	guards := make([]hir.ExprHandle, 0, len(arms))
	for _, arm := range arms {
		armNode, ok := a.GetNode(arm)
		if !ok {
			return 0, &Error{Kind: InternalError, Msg: "match arm node not found"}
		}
		ac := a.GetChildren(arm)
		if len(ac) != 3 {
			return 0, &Error{Kind: InternalError, Span: armNode.Span, Msg: "MatchArm missing a child"}
		}
		pat, err := l.lowerPattern(ac[0], a, scopeID)
		if err != nil {
			return 0, err
		}
		guard, err := l.lowerOptionalChildAt(a, ac[1], scopeID)
		if err != nil {
			return 0, err
		}
		body, err := l.lowerExpr(a, ac[2], scopeID)
		if err != nil {
			return 0, err
		}
		pats = append(pats, pat)
		bodies = append(bodies, body)
		guards = append(guards, guard)
	}
	// Items2 carries each arm's optional guard, parallel to Pats/Items (0 =
	// no guard), as documented on ExprMatch.
	return l.Hir.InternExpr(hir.Expr{Kind: hir.ExprMatch, Left: subject, Pats: pats, Items: bodies, Items2: guards}), nil
}

func (l *Lowerer) lowerOptionalChild(a *ast.Ast, node ast.NodeIndex, childPos int, scopeID scope.ID) (hir.ExprHandle, error) {
	children := a.GetChildren(node)
	if childPos >= len(children) {
		return 0, nil
	}
	return l.lowerExpr(a, children[childPos], scopeID)
}

func (l *Lowerer) lowerOptionalChildAt(a *ast.Ast, child ast.NodeIndex, scopeID scope.ID) (hir.ExprHandle, error) {
	return l.lowerExpr(a, child, scopeID)
}

func splitReal(text string) (int64, int32, error) {
	dot := strings.IndexByte(text, '.')
	if dot < 0 {
		n, err := strconv.ParseInt(text, 10, 64)
		return n, 0, err
	}
	digits := text[:dot] + text[dot+1:]
	mantissa, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return mantissa, -int32(len(text) - dot - 1), nil
}

func splitIntType(text string) (uint8, bool, error) {
	parts := strings.SplitN(text, ":", 2)
	if len(parts) != 2 {
		return 0, false, strconv.ErrSyntax
	}
	bits, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return 0, false, err
	}
	switch parts[1] {
	case "s":
		return uint8(bits), true, nil
	case "u":
		return uint8(bits), false, nil
	default:
		return 0, false, strconv.ErrSyntax
	}
}
