// Package resolve drains the PendingImport list the AST Scanner produces,
// turning each `use` statement's path AST into a concrete scope.Import edge
// recorded against the scope it was declared in. Resolution is
// demand-driven and scope-at-a-time: resolving one scope's imports may
// force another scope's imports to resolve first (to know what it
// exports), and a scope caught mid-resolution while being forced again is
// reported as a cyclic import rather than looping forever.
package resolve

import (
	"flc/internal/ast"
	"flc/internal/hir"
	"flc/internal/scan"
	"flc/internal/scope"
	"flc/internal/vfs"
)

// Resolver drains a set of PendingImport entries against a Vfs/Scope/Hir
// triple already populated by a scan.Scanner.
type Resolver struct {
	Vfs    *vfs.Vfs
	Scopes *scope.Store
	Hir    *hir.Store

	pending   map[scope.ID][]scan.PendingImport
	resolving map[scope.ID]bool
}

// New creates a Resolver over the given pending import list, grouped by the
// scope each `use` statement was declared in.
func New(v *vfs.Vfs, scopes *scope.Store, h *hir.Store, pendingImports []scan.PendingImport) *Resolver {
	r := &Resolver{
		Vfs:       v,
		Scopes:    scopes,
		Hir:       h,
		pending:   make(map[scope.ID][]scan.PendingImport),
		resolving: make(map[scope.ID]bool),
	}
	for _, pi := range pendingImports {
		r.pending[pi.Scope] = append(r.pending[pi.Scope], pi)
	}
	return r
}

// SeedBuiltinImport records a bootstrap `Import::All` edge from builtin into
// project, so every name in the builtin scope is visible from project
// without an explicit `use` statement (the standard prelude import).
func (r *Resolver) SeedBuiltinImport(builtin, project scope.ID) error {
	if err := r.Scopes.AddImport(project, scope.Import{Kind: scope.ImportAll, Scope: builtin}); err != nil {
		return &Error{Kind: InternalError, Scope: project, Msg: err.Error()}
	}
	return nil
}

// ResolveAll drains every pending scope's imports, returning every error
// encountered (resolution of one scope does not stop because another
// failed).
func (r *Resolver) ResolveAll() []error {
	var errs []error
	for scopeID := range r.pending {
		if err := r.resolveScopeImports(scopeID); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// resolveScopeImports resolves every still-pending `use` statement declared
// directly in scopeID. It is idempotent: a scope with nothing left pending
// (already resolved, or never had any imports) is a no-op.
func (r *Resolver) resolveScopeImports(scopeID scope.ID) error {
	if r.resolving[scopeID] {
		return &Error{Kind: CyclicImport, Scope: scopeID, Msg: "import cycle detected while resolving scope"}
	}
	imports, ok := r.pending[scopeID]
	if !ok {
		return nil
	}

	r.resolving[scopeID] = true
	delete(r.pending, scopeID)
	defer delete(r.resolving, scopeID)

	for _, pi := range imports {
		if err := r.resolvePath(pi); err != nil {
			return err
		}
	}
	return nil
}

// ensureScopeResolved forces targetScope's own pending imports to resolve
// before it is used as the source of another import, so `use a::b::*` sees
// everything `a::b` itself imports.
func (r *Resolver) ensureScopeResolved(targetScope scope.ID) error {
	return r.resolveScopeImports(targetScope)
}

// resolvePath resolves one `use` statement's path node and records the
// resulting Import edge against the scope it was declared in.
func (r *Resolver) resolvePath(pi scan.PendingImport) error {
	a, ok := r.Vfs.GetAST(pi.File)
	if !ok {
		return &Error{Kind: InternalError, Scope: pi.Scope, Msg: "no cached ast for pending import's file"}
	}

	children := a.GetChildren(pi.Node)
	if len(children) != 1 {
		return &Error{Kind: InternalError, Scope: pi.Scope, Msg: "use statement missing its path child"}
	}
	pathNode := children[0]

	kind, ok := a.GetNodeKind(pathNode)
	if !ok {
		return &Error{Kind: InternalError, Scope: pi.Scope, Msg: "use path node not found"}
	}

	span, _ := a.GetSpan(pathNode)

	switch kind {
	case ast.Id:
		return &Error{Kind: BareIdentifierImport, Scope: pi.Scope, Span: span, Msg: "bare identifier is not a valid use target"}

	case ast.PathSelectAll:
		innerChildren := a.GetChildren(pathNode)
		if len(innerChildren) != 1 {
			return &Error{Kind: InternalError, Scope: pi.Scope, Span: span, Msg: "PathSelectAll missing its inner path"}
		}
		item, err := r.resolvePathInner(a, innerChildren[0], pi.Scope)
		if err != nil {
			return err
		}
		if !item.ScopeID.IsValid() {
			return &Error{Kind: ModuleNotFound, Scope: pi.Scope, Span: span, Msg: "use path does not name a module"}
		}
		if err := r.ensureScopeResolved(item.ScopeID); err != nil {
			return err
		}
		return r.addImport(pi.Scope, scope.Import{Kind: scope.ImportAll, Scope: item.ScopeID})

	case ast.PathSelectMulti:
		innerChildren := a.GetChildren(pathNode)
		if len(innerChildren) != 1 {
			return &Error{Kind: InternalError, Scope: pi.Scope, Span: span, Msg: "PathSelectMulti missing its inner path"}
		}
		item, err := r.resolvePathInner(a, innerChildren[0], pi.Scope)
		if err != nil {
			return err
		}
		if !item.ScopeID.IsValid() {
			return &Error{Kind: ModuleNotFound, Scope: pi.Scope, Span: span, Msg: "use path does not name a module"}
		}
		if err := r.ensureScopeResolved(item.ScopeID); err != nil {
			return err
		}
		names, _ := a.GetMultiChildSlice(pathNode)
		var symbols []hir.Symbol
		for _, nameNode := range names {
			node, ok := a.GetNode(nameNode)
			if !ok {
				return &Error{Kind: InternalError, Scope: pi.Scope, Msg: "selected name node not found"}
			}
			sym := r.Hir.InternStr(node.Text)
			if _, ok := r.Scopes.Lookup(sym, item.ScopeID); !ok {
				nameSpan, _ := a.GetSpan(nameNode)
				return &Error{Kind: UnresolvedIdentifier, Scope: item.ScopeID, Span: nameSpan, Msg: "no such name: " + node.Text}
			}
			symbols = append(symbols, sym)
		}
		return r.addImport(pi.Scope, scope.Import{Kind: scope.ImportMulti, Scope: item.ScopeID, Names: symbols})

	default:
		children := a.GetChildren(pathNode)
		if len(children) != 1 {
			return &Error{Kind: InternalError, Scope: pi.Scope, Span: span, Msg: "use path missing its left side"}
		}
		left, err := r.resolvePathInner(a, children[0], pi.Scope)
		if err != nil {
			return err
		}
		node, _ := a.GetNode(pathNode)
		sym := r.Hir.InternStr(node.Text)
		return r.addImport(pi.Scope, scope.Import{Kind: scope.ImportSingle, Scope: left.ScopeID, Name: sym})
	}
}

// resolvePathInner resolves one path AST node (Id, SuperPath, or
// PathSelect) to the scope.Item it names, relative to currentScope.
func (r *Resolver) resolvePathInner(a *ast.Ast, node ast.NodeIndex, currentScope scope.ID) (scope.Item, error) {
	kind, ok := a.GetNodeKind(node)
	if !ok {
		return scope.Item{}, &Error{Kind: InternalError, Scope: currentScope, Msg: "path node not found"}
	}
	span, _ := a.GetSpan(node)

	switch kind {
	case ast.Id:
		n, _ := a.GetNode(node)
		sym := r.Hir.InternStr(n.Text)
		item, ok := r.Scopes.Resolve(sym, currentScope)
		if !ok {
			return scope.Item{}, &Error{Kind: UnresolvedIdentifier, Scope: currentScope, Span: span, Msg: "no such name: " + n.Text}
		}
		if item.ScopeID.IsValid() {
			if err := r.ensureScopeResolved(item.ScopeID); err != nil {
				return scope.Item{}, err
			}
		}
		return item, nil

	case ast.SuperPath:
		children := a.GetChildren(node)
		if len(children) != 1 {
			return scope.Item{}, &Error{Kind: InternalError, Scope: currentScope, Span: span, Msg: "SuperPath missing its inner path"}
		}
		parent, ok := r.Scopes.ScopeParent(currentScope)
		if !ok || !parent.IsValid() {
			return scope.Item{}, &Error{Kind: ModuleNotFound, Scope: currentScope, Span: span, Msg: "super used at the root scope"}
		}
		return r.resolvePathInner(a, children[0], parent)

	case ast.PathSelect:
		children := a.GetChildren(node)
		if len(children) != 1 {
			return scope.Item{}, &Error{Kind: InternalError, Scope: currentScope, Span: span, Msg: "PathSelect missing its left path"}
		}
		left, err := r.resolvePathInner(a, children[0], currentScope)
		if err != nil {
			return scope.Item{}, err
		}
		if !left.ScopeID.IsValid() {
			return scope.Item{}, &Error{Kind: ModuleNotFound, Scope: currentScope, Span: span, Msg: "left side of path is not a module"}
		}
		n, _ := a.GetNode(node)
		sym := r.Hir.InternStr(n.Text)
		item, ok := r.Scopes.Lookup(sym, left.ScopeID)
		if !ok {
			return scope.Item{}, &Error{Kind: UnresolvedIdentifier, Scope: left.ScopeID, Span: span, Msg: "no such name: " + n.Text}
		}
		return item, nil

	default:
		return scope.Item{}, &Error{Kind: InternalError, Scope: currentScope, Span: span, Msg: "unexpected node kind in path: " + kind.String()}
	}
}

func (r *Resolver) addImport(scopeID scope.ID, imp scope.Import) error {
	if err := r.Scopes.AddImport(scopeID, imp); err != nil {
		return &Error{Kind: InternalError, Scope: scopeID, Msg: err.Error()}
	}
	return nil
}
