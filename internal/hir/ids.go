// Package hir is the interning arena and HIR map for the compiler front
// end: it owns every Expr, Pattern, Definition, Param, and Clause produced
// by lowering, deduplicating structurally-equal values behind small integer
// handles, plus the HirId-indexed map that tracks each item's lowering
// state (unresolved AST reference, in-flight placeholder, or finished
// Definition).
package hir

// HirId is a stable identifier minted once per item (module, struct,
// function, file scope, ...) the moment it is first discovered, independent
// of whether it has been lowered yet. 0 is the null sentinel.
type HirId uint32

// NoHirId is the invalid/null HirId.
const NoHirId HirId = 0

// IsValid reports whether id refers to a real item.
func (id HirId) IsValid() bool { return id != NoHirId }

// Symbol is an interned string handle (identifier and literal text share
// one string arena). 0 is invalid.
type Symbol uint32

// NoSymbol is the invalid Symbol.
const NoSymbol Symbol = 0

// IsValid reports whether s refers to an interned string.
func (s Symbol) IsValid() bool { return s != NoSymbol }

// ScopeRef is an opaque reference to a scope owned by package scope's
// Store. hir does not import package scope (scope already imports hir for
// HirId/Clause/Definition, and Go forbids import cycles), so this is kept
// as a plain numeric handle here; callers convert with scope.ID(ref) and
// hir.ScopeRef(id) at the package boundary.
type ScopeRef uint32

// ExprHandle references an interned Expr. 0 is invalid.
type ExprHandle uint32

// PatternHandle references an interned Pattern. 0 is invalid.
type PatternHandle uint32

// DefinitionHandle references an interned Definition. 0 is invalid.
type DefinitionHandle uint32

// ParamHandle references an interned Param. 0 is invalid.
type ParamHandle uint32

// ClauseHandle references an interned Clause. 0 is invalid.
type ClauseHandle uint32

func (h ExprHandle) IsValid() bool       { return h != 0 }
func (h PatternHandle) IsValid() bool    { return h != 0 }
func (h DefinitionHandle) IsValid() bool { return h != 0 }
func (h ParamHandle) IsValid() bool      { return h != 0 }
func (h ClauseHandle) IsValid() bool     { return h != 0 }
