package hir

import (
	"flc/internal/ast"
	"flc/internal/vfs"
)

// MappingKind tags which fields of HirMapping are meaningful.
type MappingKind uint8

const (
	InvalidMapping MappingKind = iota

	// MappingUnresolved: an item discovered by the AST Scanner that still
	// points at raw AST, not yet lowered. File/Node name the source
	// location; Owner is the HirId of the enclosing item.
	MappingUnresolved
	// MappingUnresolvedFileScope: a regular source file's implicit module,
	// not yet lowered.
	MappingUnresolvedFileScope
	// MappingUnresolvedDirectoryModule: a directory's implicit module, not
	// yet lowered (its entry file, if any, is found via vfs.EntryFile).
	MappingUnresolvedDirectoryModule
	// MappingUnresolvedPackage: a package root directory, not yet lowered.
	MappingUnresolvedPackage
	// MappingDefinition: a finished, lowered item.
	MappingDefinition
	// MappingExpr/MappingPattern/MappingParam/MappingClause: a lowered
	// sub-expression-level HIR node, for HirIds minted below the
	// definition granularity (e.g. a Reserve()'d placeholder later filled
	// with an interned Expr).
	MappingExpr
	MappingPattern
	MappingParam
	MappingClause
)

// HirMapping is the flattened tagged-union payload the Store's HIR map
// associates with each HirId.
type HirMapping struct {
	Kind MappingKind

	// File is the vfs node this mapping refers to: the source file for
	// MappingUnresolved/MappingUnresolvedFileScope, or the directory for
	// MappingUnresolvedDirectoryModule/MappingUnresolvedPackage.
	File  vfs.NodeID
	Node  ast.NodeIndex
	Owner HirId

	// OwnerScope is the scope this item was discovered in (its lexical
	// parent, for resolving outer names while lowering a function body).
	// Opaque here for the same reason as ScopeRef elsewhere: hir does not
	// import package scope.
	OwnerScope ScopeRef

	Def     DefinitionHandle
	Expr    ExprHandle
	Pattern PatternHandle
	Param   ParamHandle
	Clause  ClauseHandle
}
