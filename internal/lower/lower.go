// Package lower turns the scope tree and its "unresolved" hir.HirMapping
// entries (produced by package scan and resolved by package resolve) into
// finished hir.Definition values. Lowering is idempotent: an item whose
// mapping is already MappingDefinition is returned as-is rather than
// recomputed, since the same item can be reached from more than one call
// site (a struct referenced both as a type annotation and as a constructor
// callee, for instance).
package lower

import (
	"flc/internal/ast"
	"flc/internal/hir"
	"flc/internal/scope"
	"flc/internal/vfs"
)

// Lowerer drives AST-to-HIR lowering over a Vfs/Scope/Hir triple already
// populated by scan and resolve.
type Lowerer struct {
	Vfs    *vfs.Vfs
	Scopes *scope.Store
	Hir    *hir.Store
}

// New creates a Lowerer over the given stores.
func New(v *vfs.Vfs, scopes *scope.Store, h *hir.Store) *Lowerer {
	return &Lowerer{Vfs: v, Scopes: scopes, Hir: h}
}

// LowerAll lowers every item directly in rootScope (one per discovered
// package) and everything reachable from it, returning one DefinitionHandle
// per root item. Lowering stops at the first error within a given root
// item's subtree but still attempts the remaining root items.
func (l *Lowerer) LowerAll(rootScope scope.ID) ([]hir.DefinitionHandle, []error) {
	items, ok := l.Scopes.Items(rootScope)
	if !ok {
		return nil, []error{&Error{Kind: InternalError, Msg: "root scope not found"}}
	}

	var defs []hir.DefinitionHandle
	var errs []error
	for _, item := range items {
		def, err := l.lowerItem(item)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, errs
}

// lowerItem dispatches on item's current HirMapping. A MappingDefinition
// mapping is returned unchanged (the idempotence guarantee); every
// Unresolved* mapping lowers its subtree and rewrites the mapping to
// MappingDefinition in place.
func (l *Lowerer) lowerItem(item scope.Item) (hir.DefinitionHandle, error) {
	mapping, ok := l.Hir.Get(item.HirID)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "item has no hir mapping"}
	}

	switch mapping.Kind {
	case hir.MappingDefinition:
		return mapping.Def, nil

	case hir.MappingUnresolvedPackage:
		return l.lowerContainer(item, hir.DefPackage)
	case hir.MappingUnresolvedFileScope:
		return l.lowerContainer(item, hir.DefFileScope)
	case hir.MappingUnresolvedDirectoryModule:
		return l.lowerDirectoryModule(item, mapping)
	case hir.MappingUnresolved:
		return l.lowerUnresolved(item, mapping)

	default:
		return 0, &Error{Kind: UnsupportedItem, Msg: "item mapping has no lowering rule"}
	}
}

// lowerContainer lowers every item already scanned into item's own scope
// and wraps the results in a Definition of the given kind. Used for
// packages and file scopes alike: both are "a scope full of items with a
// name", differing only in the Definition tag attached.
//
// Scope is set to item's OWN scope id, not any owner's — re-lowering must
// keep returning the same scope_id every time, and the owning scope is the
// only value that is stable across calls.
func (l *Lowerer) lowerContainer(item scope.Item, kind hir.DefinitionKind) (hir.DefinitionHandle, error) {
	defs, err := l.lowerScopeItems(item.ScopeID)
	if err != nil {
		return 0, err
	}
	def := hir.Definition{Kind: kind, Name: item.Symbol, Defs: defs, Scope: hir.ScopeRef(item.ScopeID)}
	handle := l.Hir.InternDefinition(def)
	l.Hir.Update(item.HirID, hir.HirMapping{Kind: hir.MappingDefinition, Def: handle})
	return handle, nil
}

// lowerDirectoryModule treats a directory module exactly like a container:
// its entry file's (or its own, if no entry file) items were already
// scanned directly into its scope.
func (l *Lowerer) lowerDirectoryModule(item scope.Item, mapping hir.HirMapping) (hir.DefinitionHandle, error) {
	return l.lowerContainer(item, hir.DefModule)
}

// lowerScopeItems lowers every item in scopeID, stopping at the first
// error.
func (l *Lowerer) lowerScopeItems(scopeID scope.ID) ([]hir.DefinitionHandle, error) {
	items, ok := l.Scopes.Items(scopeID)
	if !ok {
		return nil, &Error{Kind: InternalError, Msg: "scope not found"}
	}
	defs := make([]hir.DefinitionHandle, 0, len(items))
	for _, item := range items {
		def, err := l.lowerItem(item)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// lowerUnresolved dispatches a MappingUnresolved item on the AST node kind
// it points at.
func (l *Lowerer) lowerUnresolved(item scope.Item, mapping hir.HirMapping) (hir.DefinitionHandle, error) {
	a, ok := l.Vfs.GetAST(mapping.File)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "no cached ast for item's file"}
	}
	kind, ok := a.GetNodeKind(mapping.Node)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "item node not found"}
	}

	switch kind {
	case ast.ModuleDef:
		return l.lowerContainer(item, hir.DefModule)
	case ast.StructDef:
		return l.lowerStructDef(a, mapping.Node, item)
	case ast.EnumDef:
		return l.lowerEnumDef(a, mapping.Node, item)
	case ast.UnionDef:
		return l.lowerUnionDef(a, mapping.Node, item)
	case ast.FunctionDef:
		return l.lowerFunctionDef(a, mapping.Node, item, mapping)
	default:
		span, _ := a.GetSpan(mapping.Node)
		return 0, &Error{Kind: UnsupportedItem, Span: span, Msg: "unexpected node kind " + kind.String() + " behind an unresolved item"}
	}
}

func (l *Lowerer) lowerStructDef(a *ast.Ast, node ast.NodeIndex, item scope.Item) (hir.DefinitionHandle, error) {
	clauses, err := l.lowerClauses(a, node, 0, item.ScopeID)
	if err != nil {
		return 0, err
	}

	fieldNodes, _ := a.GetMultiChildSlice(node)
	fieldDefs := make([]hir.DefinitionHandle, 0, len(fieldNodes))
	for _, fn := range fieldNodes {
		def, err := l.lowerStructField(a, fn, item.ScopeID)
		if err != nil {
			return 0, err
		}
		fieldDefs = append(fieldDefs, def)
	}

	def := hir.Definition{Kind: hir.DefStruct, Name: item.Symbol, Defs: fieldDefs, Clauses: clauses, Scope: hir.ScopeRef(item.ScopeID)}
	handle := l.Hir.InternDefinition(def)
	l.Hir.Update(item.HirID, hir.HirMapping{Kind: hir.MappingDefinition, Def: handle})
	return handle, nil
}

func (l *Lowerer) lowerStructField(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.DefinitionHandle, error) {
	node, ok := a.GetNode(idx)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "struct field node not found"}
	}
	children := a.GetChildren(idx)

	var typeHandle, defaultHandle hir.ExprHandle
	var err error
	if len(children) >= 1 && children[0].IsValid() {
		if typeHandle, err = l.lowerExpr(a, children[0], scopeID); err != nil {
			return 0, err
		}
	}
	if len(children) >= 2 && children[1].IsValid() {
		if defaultHandle, err = l.lowerExpr(a, children[1], scopeID); err != nil {
			return 0, err
		}
	}

	name := l.Hir.InternStr(node.Text)
	def := hir.Definition{Kind: hir.DefStructField, Name: name, FieldType: typeHandle, FieldDefault: defaultHandle}
	return l.Hir.InternDefinition(def), nil
}

func (l *Lowerer) lowerEnumDef(a *ast.Ast, node ast.NodeIndex, item scope.Item) (hir.DefinitionHandle, error) {
	clauses, err := l.lowerClauses(a, node, 0, item.ScopeID)
	if err != nil {
		return 0, err
	}

	variantNodes, _ := a.GetMultiChildSlice(node)
	variantDefs := make([]hir.DefinitionHandle, 0, len(variantNodes))
	for _, vn := range variantNodes {
		def, err := l.lowerEnumVariant(a, vn, item.ScopeID)
		if err != nil {
			return 0, err
		}
		variantDefs = append(variantDefs, def)
	}

	def := hir.Definition{Kind: hir.DefEnum, Name: item.Symbol, Defs: variantDefs, Clauses: clauses, Scope: hir.ScopeRef(item.ScopeID)}
	handle := l.Hir.InternDefinition(def)
	l.Hir.Update(item.HirID, hir.HirMapping{Kind: hir.MappingDefinition, Def: handle})
	return handle, nil
}

func (l *Lowerer) lowerEnumVariant(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.DefinitionHandle, error) {
	node, ok := a.GetNode(idx)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "enum variant node not found"}
	}
	name := l.Hir.InternStr(node.Text)

	fieldNodes, hasFields := a.GetMultiChildSlice(idx)
	if !hasFields || len(fieldNodes) == 0 {
		return l.Hir.InternDefinition(hir.Definition{Kind: hir.DefEnumVariant, Name: name}), nil
	}

	fieldDefs := make([]hir.DefinitionHandle, 0, len(fieldNodes))
	for _, fn := range fieldNodes {
		def, err := l.lowerStructField(a, fn, scopeID)
		if err != nil {
			return 0, err
		}
		fieldDefs = append(fieldDefs, def)
	}
	return l.Hir.InternDefinition(hir.Definition{Kind: hir.DefEnumVariantWithStruct, Name: name, Defs: fieldDefs}), nil
}

func (l *Lowerer) lowerUnionDef(a *ast.Ast, node ast.NodeIndex, item scope.Item) (hir.DefinitionHandle, error) {
	clauses, err := l.lowerClauses(a, node, 0, item.ScopeID)
	if err != nil {
		return 0, err
	}

	memberNodes, _ := a.GetMultiChildSlice(node)
	memberDefs := make([]hir.DefinitionHandle, 0, len(memberNodes))
	for _, mn := range memberNodes {
		def, err := l.lowerUnionMember(a, mn, item.ScopeID)
		if err != nil {
			return 0, err
		}
		memberDefs = append(memberDefs, def)
	}

	def := hir.Definition{Kind: hir.DefUnion, Name: item.Symbol, Defs: memberDefs, Clauses: clauses, Scope: hir.ScopeRef(item.ScopeID)}
	handle := l.Hir.InternDefinition(def)
	l.Hir.Update(item.HirID, hir.HirMapping{Kind: hir.MappingDefinition, Def: handle})
	return handle, nil
}

func (l *Lowerer) lowerUnionMember(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.DefinitionHandle, error) {
	node, ok := a.GetNode(idx)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "union member node not found"}
	}
	children := a.GetChildren(idx)
	var typeHandle hir.ExprHandle
	var err error
	if len(children) >= 1 && children[0].IsValid() {
		if typeHandle, err = l.lowerExpr(a, children[0], scopeID); err != nil {
			return 0, err
		}
	}
	name := l.Hir.InternStr(node.Text)
	return l.Hir.InternDefinition(hir.Definition{Kind: hir.DefUnionMember, Name: name, FieldType: typeHandle}), nil
}

func (l *Lowerer) lowerFunctionDef(a *ast.Ast, node ast.NodeIndex, item scope.Item, mapping hir.HirMapping) (hir.DefinitionHandle, error) {
	funcNode, ok := a.GetNode(node)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "function node not found"}
	}

	// A plain function declares no nested item namespace of its own
	// (scan.go never mints one for FunctionDef), so its parameters and
	// locals get a fresh body scope here, parented at the scope the
	// function itself was declared in (mapping.OwnerScope, recorded by the
	// scanner at discovery time).
	parentScope := scope.ID(mapping.OwnerScope)
	if !parentScope.IsValid() {
		parentScope = l.Scopes.Root
	}
	bodyScope, err := l.Scopes.AddScope(hir.NoSymbol, parentScope, true, item.HirID)
	if err != nil {
		return 0, &Error{Kind: InternalError, Msg: err.Error()}
	}

	// Clauses (generic type parameters, contracts) lower first so they are
	// in scope while the params, return type, and body are lowered.
	clauses, err := l.lowerClauses(a, node, 2, bodyScope)
	if err != nil {
		return 0, err
	}

	paramNodes, _ := a.GetMultiChildSlice(node)
	params := make([]hir.ParamHandle, 0, len(paramNodes))
	for _, pn := range paramNodes {
		p, err := l.lowerParam(a, pn, bodyScope)
		if err != nil {
			return 0, err
		}
		params = append(params, p)
	}

	children := a.GetChildren(node)
	var returnType, body hir.ExprHandle
	if len(children) >= 1 && children[0].IsValid() {
		if returnType, err = l.lowerExpr(a, children[0], bodyScope); err != nil {
			return 0, err
		}
	}
	if len(children) >= 2 {
		if body, err = l.lowerExpr(a, children[1], bodyScope); err != nil {
			return 0, err
		}
	}

	name := l.Hir.InternStr(funcNode.Text)
	fn := hir.FunctionBody{
		FnKind:    hir.FnNormal,
		Name:      name,
		Clauses:   clauses,
		Params:    params,
		Body:      body,
		BodyScope: hir.ScopeRef(bodyScope),
	}
	def := hir.Definition{Kind: hir.DefFunction, Name: name, FieldType: returnType, Function: fn}
	handle := l.Hir.InternDefinition(def)
	l.Hir.Update(item.HirID, hir.HirMapping{Kind: hir.MappingDefinition, Def: handle})
	return handle, nil
}

func (l *Lowerer) lowerParam(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID) (hir.ParamHandle, error) {
	node, ok := a.GetNode(idx)
	if !ok {
		return 0, &Error{Kind: InternalError, Msg: "param node not found"}
	}
	children := a.GetChildren(idx)

	var typeHandle, defaultHandle hir.ExprHandle
	var err error
	if len(children) >= 1 && children[0].IsValid() {
		if typeHandle, err = l.lowerExpr(a, children[0], scopeID); err != nil {
			return 0, err
		}
	}
	if len(children) >= 2 && children[1].IsValid() {
		if defaultHandle, err = l.lowerExpr(a, children[1], scopeID); err != nil {
			return 0, err
		}
	}

	name := l.Hir.InternStr(node.Text)
	hirID := l.Hir.Put(hir.HirMapping{Kind: hir.MappingParam})
	if err := l.Scopes.AddItem(scope.Item{Symbol: name, HirID: hirID}, scopeID); err != nil {
		return 0, &Error{Kind: InternalError, Msg: err.Error()}
	}

	p := hir.Param{Kind: hir.ParamTyped, Name: name, Type: typeHandle, Default: defaultHandle}
	handle := l.Hir.InternParam(p)
	l.Hir.Update(hirID, hir.HirMapping{Kind: hir.MappingParam, Param: handle})
	return handle, nil
}
