package hir

// ClauseKind tags which fields of Clause are meaningful.
type ClauseKind uint8

const (
	InvalidClause ClauseKind = iota
	ClauseTypeDecl         // Name
	ClauseTypeTraitBounded // Name, Bound
	ClauseDecl             // Name, Patterns (alternatives), Default (0 = required)
	ClauseRequires
	ClauseEnsures
	ClauseDecreases
	ClauseOutcomes
)

// Clause is the flattened representation of a generic/contract clause
// attached to a Struct, Enum, Union, or Function definition.
type Clause struct {
	Kind     ClauseKind
	Name     Symbol
	Bound    ExprHandle
	Patterns []PatternHandle
	Default  ExprHandle // 0 = no default, meaning the clause is required

	// HirID names this clause's own declared symbol (TypeDecl/
	// TypeTraitBounded/Decl only; zero for the contract clause kinds,
	// which declare nothing resolvable by name). Scope search finds a
	// clause by Name and returns this id as the match's Item.HirID, the
	// same shape a found scope Item would have.
	HirID HirId
}
