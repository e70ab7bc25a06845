// Package scan walks a project's Vfs tree and the cached Ast of every file
// in it, populating a scope.Store with one Item per item-level AST node and
// minting an "unresolved" hir.HirMapping for each, without lowering
// anything. UseStatement nodes are recorded as PendingImport entries for
// the import resolver to consume afterward.
package scan

import (
	"flc/internal/ast"
	"flc/internal/hir"
	"flc/internal/scope"
	"flc/internal/vfs"
)

// PendingImport names one UseStatement node still waiting on import
// resolution, and the scope it was declared in.
type PendingImport struct {
	Scope scope.ID
	File  vfs.NodeID
	Node  ast.NodeIndex
}

// Scanner drives both the VFS walk (which scope of which directory/file
// layer to open) and the AST walk (which items inside one file belong to
// that scope).
type Scanner struct {
	Vfs     *vfs.Vfs
	Scopes  *scope.Store
	Hir     *hir.Store
	Pending []PendingImport
}

// New creates a Scanner writing into scopes and hir, reading from v.
func New(v *vfs.Vfs, scopes *scope.Store, h *hir.Store) *Scanner {
	return &Scanner{Vfs: v, Scopes: scopes, Hir: h}
}

// ScanPackage scans a package root directory (one containing a main.fl or
// lib.fl) into a new scope parented at parentScope, named name, and returns
// that scope.
func (s *Scanner) ScanPackage(dir vfs.NodeID, name hir.Symbol, parentScope scope.ID) (scope.ID, error) {
	node, ok := s.Vfs.Node(dir)
	if !ok {
		return scope.NoID, &Error{Kind: InternalError, File: dir, Msg: "package root directory not found in vfs"}
	}

	hirID := s.Hir.Reserve()
	pkgScope, err := s.Scopes.AddScope(name, parentScope, false, hirID)
	if err != nil {
		return scope.NoID, &Error{Kind: ScopeCreationFailed, File: dir, Msg: err.Error()}
	}
	s.Hir.Update(hirID, hir.HirMapping{Kind: hir.MappingUnresolvedPackage, File: dir, OwnerScope: hir.ScopeRef(parentScope)})

	entry := s.Vfs.EntryFile(dir)
	if entry.IsValid() {
		if err := s.scanFileInto(entry, pkgScope); err != nil {
			return pkgScope, err
		}
	}
	for _, childID := range node.Children {
		if childID == entry {
			continue
		}
		if err := s.scanChild(childID, pkgScope); err != nil {
			return pkgScope, err
		}
	}
	return pkgScope, nil
}

// scanChild routes one non-entry child of a directory to the directory or
// file-scope handler depending on its vfs kind.
func (s *Scanner) scanChild(id vfs.NodeID, parentScope scope.ID) error {
	node, ok := s.Vfs.Node(id)
	if !ok {
		return &Error{Kind: InternalError, File: id, Msg: "vfs child not found"}
	}
	switch node.Kind {
	case vfs.Directory, vfs.SpecialDirectory:
		return s.scanDirectoryModule(id, parentScope)
	case vfs.File, vfs.SpecialFile:
		return s.scanFileScopeModule(id, parentScope)
	default:
		return nil
	}
}

// scanDirectoryModule scans a subdirectory as a directory module: its own
// mod.fl (if any) is scanned directly into the directory's scope, and every
// other child becomes a nested file-scope or directory-module scope.
func (s *Scanner) scanDirectoryModule(dir vfs.NodeID, parentScope scope.ID) error {
	node, ok := s.Vfs.Node(dir)
	if !ok {
		return &Error{Kind: InternalError, File: dir, Msg: "directory not found in vfs"}
	}

	name := s.Hir.InternStr(node.Name)
	hirID := s.Hir.Reserve()
	dirScope, err := s.Scopes.AddScope(name, parentScope, false, hirID)
	if err != nil {
		return &Error{Kind: ScopeCreationFailed, File: dir, Msg: err.Error()}
	}
	s.Hir.Update(hirID, hir.HirMapping{Kind: hir.MappingUnresolvedDirectoryModule, File: dir, OwnerScope: hir.ScopeRef(parentScope)})

	entry := s.Vfs.EntryFile(dir)
	if entry.IsValid() {
		if err := s.scanFileInto(entry, dirScope); err != nil {
			return err
		}
	}
	for _, childID := range node.Children {
		if childID == entry {
			continue
		}
		if err := s.scanChild(childID, dirScope); err != nil {
			return err
		}
	}
	return nil
}

// scanFileScopeModule scans a non-entry .fl file as its own file-scope
// submodule: a fresh scope named after the file, holding that file's items.
func (s *Scanner) scanFileScopeModule(file vfs.NodeID, parentScope scope.ID) error {
	node, ok := s.Vfs.Node(file)
	if !ok {
		return &Error{Kind: InternalError, File: file, Msg: "file not found in vfs"}
	}

	name := s.Hir.InternStr(trimFlExt(node.Name))
	hirID := s.Hir.Reserve()
	fileScope, err := s.Scopes.AddScope(name, parentScope, false, hirID)
	if err != nil {
		return &Error{Kind: ScopeCreationFailed, File: file, Msg: err.Error()}
	}
	s.Hir.Update(hirID, hir.HirMapping{Kind: hir.MappingUnresolvedFileScope, File: file, OwnerScope: hir.ScopeRef(parentScope)})

	return s.scanFileInto(file, fileScope)
}

// scanFileInto scans file's cached root item list directly into scopeID,
// with no extra scope layer of its own (used by package/directory entry
// files, whose items belong to the owning package/directory scope).
func (s *Scanner) scanFileInto(file vfs.NodeID, scopeID scope.ID) error {
	a, ok := s.Vfs.GetAST(file)
	if !ok {
		return &Error{Kind: FileParsingFailed, File: file, Msg: "no cached ast for file"}
	}
	return s.ScanItems(a, a.Root, scopeID, file)
}

// ScanItems dispatches every item-kind child listed under node into
// scopeID. node is a FileScope or ModuleDef whose MultiChild holds its body
// items.
func (s *Scanner) ScanItems(a *ast.Ast, node ast.NodeIndex, scopeID scope.ID, file vfs.NodeID) error {
	children, ok := a.GetMultiChildSlice(node)
	if !ok {
		children = a.GetChildren(node)
	}
	for _, child := range children {
		if err := s.scanItem(a, child, scopeID, file); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scanner) scanItem(a *ast.Ast, idx ast.NodeIndex, scopeID scope.ID, file vfs.NodeID) error {
	kind, ok := a.GetNodeKind(idx)
	if !ok {
		return &Error{Kind: InternalError, File: file, Msg: "item node not found"}
	}
	switch kind {
	case ast.ModuleDef:
		return s.scanRecursiveItem(a, idx, scopeID, file)
	case ast.StructDef, ast.EnumDef, ast.UnionDef:
		return s.scanTypeDef(a, idx, scopeID, file)
	case ast.FunctionDef:
		return s.scanFunctionDef(a, idx, scopeID, file)
	case ast.UseStatement:
		s.Pending = append(s.Pending, PendingImport{Scope: scopeID, File: file, Node: idx})
		return nil
	default:
		span, _ := a.GetSpan(idx)
		return &Error{Kind: InvalidNodeType, File: file, Span: span, Msg: "unexpected node kind " + kind.String() + " in item list"}
	}
}

// scanRecursiveItem handles a ModuleDef:
// mint a new scope for the item's own namespace, record it as an
// "unresolved" item in the parent scope, then recurse into its body items
// inside the new scope.
func (s *Scanner) scanRecursiveItem(a *ast.Ast, idx ast.NodeIndex, parentScope scope.ID, file vfs.NodeID) error {
	node, ok := a.GetNode(idx)
	if !ok {
		return &Error{Kind: InternalError, File: file, Msg: "item node not found"}
	}

	name := s.Hir.InternStr(node.Text)
	hirID := s.Hir.Reserve()
	itemScope, err := s.Scopes.AddScope(name, parentScope, false, hirID)
	if err != nil {
		return &Error{Kind: ScopeCreationFailed, File: file, Span: node.Span, Msg: err.Error()}
	}
	s.Hir.Update(hirID, hir.HirMapping{Kind: hir.MappingUnresolved, File: file, Node: idx, OwnerScope: hir.ScopeRef(parentScope)})

	return s.ScanItems(a, idx, itemScope, file)
}

// scanTypeDef handles StructDef/EnumDef/UnionDef: mints a new (currently
// empty) scope for the type's own namespace and records it as an
// "unresolved" item in the parent scope. Unlike ModuleDef, a type def's
// MultiChild holds field/variant/member payload nodes, not further items,
// so there is nothing to recurse into here; the lowerer reads those payload
// nodes directly off the AST instead.
func (s *Scanner) scanTypeDef(a *ast.Ast, idx ast.NodeIndex, parentScope scope.ID, file vfs.NodeID) error {
	node, ok := a.GetNode(idx)
	if !ok {
		return &Error{Kind: InternalError, File: file, Msg: "item node not found"}
	}

	name := s.Hir.InternStr(node.Text)
	hirID := s.Hir.Reserve()
	itemScope, err := s.Scopes.AddScope(name, parentScope, false, hirID)
	if err != nil {
		return &Error{Kind: ScopeCreationFailed, File: file, Span: node.Span, Msg: err.Error()}
	}
	s.Hir.Update(hirID, hir.HirMapping{Kind: hir.MappingUnresolved, File: file, Node: idx, OwnerScope: hir.ScopeRef(parentScope)})
	return nil
}

// scanFunctionDef records a function as a leaf item: no nested scope, since
// a function's body is lowered, not scanned, and cannot itself hold nested
// items the scanner needs to see.
func (s *Scanner) scanFunctionDef(a *ast.Ast, idx ast.NodeIndex, parentScope scope.ID, file vfs.NodeID) error {
	node, ok := a.GetNode(idx)
	if !ok {
		return &Error{Kind: InternalError, File: file, Msg: "function node not found"}
	}

	name := s.Hir.InternStr(node.Text)
	hirID := s.Hir.Put(hir.HirMapping{Kind: hir.MappingUnresolved, File: file, Node: idx, OwnerScope: hir.ScopeRef(parentScope)})
	if err := s.Scopes.AddItem(scope.Item{Symbol: name, HirID: hirID, ScopeID: scope.NoID}, parentScope); err != nil {
		return &Error{Kind: ScopeCreationFailed, File: file, Span: node.Span, Msg: err.Error()}
	}
	return nil
}

func trimFlExt(name string) string {
	const ext = ".fl"
	if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
		return name[:len(name)-len(ext)]
	}
	return name
}
