package ast

// NodeKind tags the shape of a Node in the flat Ast store. Each kind has a
// fixed convention for how it uses Node.Text, Node.Children, and
// Node.MultiChild — documented per kind below rather than with a dedicated
// payload type per kind, matching the external contract's flat node shape
// (spec's "numeric node index addresses tagged nodes in a flat store").
type NodeKind uint8

const (
	// InvalidKind marks a node that was never assigned a real kind.
	InvalidKind NodeKind = iota

	// List is a generic ordered sequence node (block statement lists,
	// argument lists, etc. that don't need their own kind). MultiChild
	// holds the elements.
	List
	// FileScope is the root item-list of one file's AST. MultiChild holds
	// the file's top-level items. Distinct from ModuleDef only so that
	// downstream tooling can tell "this is a file root" from "this is a
	// nested module" — the lowerer treats both identically.
	FileScope

	// ModuleDef: Text = name, MultiChild = body items.
	ModuleDef
	// StructDef: Text = name, Children = [clauseListNode] (may be
	// NoNodeIndex), MultiChild = StructField nodes.
	StructDef
	// StructField: Text = field name, Children = [typeExpr] or
	// [typeExpr, defaultExpr].
	StructField
	// EnumDef: Text = name, Children = [clauseListNode] (may be
	// NoNodeIndex), MultiChild = EnumVariant nodes.
	EnumDef
	// EnumVariant: Text = variant name, MultiChild = StructField nodes
	// (empty for a unit variant).
	EnumVariant
	// UnionDef: Text = name, Children = [clauseListNode] (may be
	// NoNodeIndex), MultiChild = UnionMember nodes.
	UnionDef
	// UnionMember: Text = member name, Children = [typeExpr].
	UnionMember
	// FunctionDef: Text = name, Children = [returnTypeExpr, bodyExpr,
	// clauseListNode] (returnTypeExpr may be NoNodeIndex for inferred
	// return type, clauseListNode may be NoNodeIndex when the function has
	// no generic/contract clauses), MultiChild = Param nodes.
	FunctionDef
	// Param: Text = param name, Children = [typeExpr, defaultExpr], either
	// may be NoNodeIndex (no default / inferred type).
	Param

	// ClauseList: MultiChild = ClauseTypeDecl/ClauseTypeTraitBounded/
	// ClauseDecl nodes, attached to a StructDef/EnumDef/UnionDef/
	// FunctionDef's generic/contract clause slot.
	ClauseList
	// ClauseTypeDecl: Text = declared type-parameter name, e.g. the `T` in
	// `struct Box<T>`.
	ClauseTypeDecl
	// ClauseTypeTraitBounded: Text = declared type-parameter name,
	// Children = [boundTypeExpr], e.g. the `T: Comparable` in
	// `struct Box<T: Comparable>`.
	ClauseTypeTraitBounded
	// ClauseDecl: Text = declared symbol name, Children = [defaultExpr]
	// (may be NoNodeIndex, meaning the clause is required), MultiChild =
	// pattern alternative nodes the declared symbol must match.
	ClauseDecl

	// UseStatement: Children = [pathNode].
	UseStatement
	// Id: Text = identifier text (also used for path segments).
	Id
	// SuperPath: Children = [innerPath].
	SuperPath
	// PathSelect: Text = selected name, Children = [leftPath].
	PathSelect
	// PathSelectAll: Children = [path].
	PathSelectAll
	// PathSelectMulti: Children = [path], MultiChild = Id nodes (selected names).
	PathSelectMulti

	// ArgList: MultiChild = positional argument expressions.
	ArgList
	// OptionalArgList: MultiChild = OptionalArg nodes.
	OptionalArgList
	// OptionalArg: Text = parameter name, Children = [valueExpr].
	OptionalArg
	// ObjectField: Text = field name, Children = [valueExpr].
	ObjectField
	// WhenClause: Children = [condExpr, bodyExpr].
	WhenClause
	// MatchArm: Children = [patternNode, guardExpr, bodyExpr]; guardExpr
	// may be NoNodeIndex.
	MatchArm

	// Literal expressions: Text = literal source spelling.
	IntLit
	RealLit
	BoolLit
	CharLit
	StringLit
	SymbolLit

	// ExprList: MultiChild = elements ('list literal', e.g. `[a, b, c]`).
	ExprList
	// Tuple: MultiChild = elements.
	Tuple
	// Object: MultiChild = ObjectField nodes.
	Object
	// Range: Children = [fromExpr, toExpr]; Text = "incl" for `..=`, "" for `..`.
	Range
	// Block: MultiChild = statement expressions, last one is the tail value.
	Block

	// If: Children = [condExpr, thenExpr, elseExpr] (elseExpr may be NoNodeIndex).
	If
	// When: MultiChild = WhenClause nodes.
	When
	// Match: Children = [scrutineeExpr], MultiChild = MatchArm nodes.
	Match
	// While: Children = [condExpr, bodyExpr].
	While
	// For: Children = [patternNode, iterExpr, bodyExpr].
	For
	// Let: Text = "mut" if mutable, Children = [patternNode, valueExpr].
	Let
	// Const: Children = [patternNode, valueExpr].
	Const
	// Assign: Children = [targetExpr, valueExpr].
	Assign
	// Break: Children = [valueExpr] (may be NoNodeIndex).
	Break
	// Continue has no payload.
	Continue
	// Return: Children = [valueExpr] (may be NoNodeIndex).
	Return
	// Resume: Children = [valueExpr] (may be NoNodeIndex).
	Resume

	// FnApply: Children = [calleeExpr, argListNode, optionalArgListNode]
	// (the latter two may be NoNodeIndex when empty).
	FnApply
	// UnaryApply: Text = operator spelling, Children = [operandExpr].
	UnaryApply
	// BinaryApply: Text = operator spelling, Children = [leftExpr, rightExpr].
	BinaryApply
	// ObjectApply: Children = [calleeExpr], MultiChild = ObjectField nodes.
	ObjectApply
	// Index: Children = [receiverExpr, indexExpr].
	Index
	// Matches: Children = [scrutineeExpr, patternNode].
	Matches

	// TyAny, TyUnit have no payload.
	TyAny
	TyUnit
	// TyInt: Text = "<bits>:<s|u>", e.g. "64:s".
	TyInt
	// TyFloat: Text = "<bits>", e.g. "32".
	TyFloat
	// TyTuple: MultiChild = element type expressions.
	TyTuple
	// TyOptional: Children = [innerTypeExpr].
	TyOptional
	// TyPointer: Children = [pointeeTypeExpr].
	TyPointer
	// TyArray: Children = [elemTypeExpr, sizeExpr].
	TyArray
	// TyScheme: MultiChild = type-parameter Id nodes, Children = [bodyTypeExpr].
	TyScheme
	// TyNamed: Text = name, MultiChild = type-argument expressions (generic
	// instantiation arguments, empty for a plain name).
	TyNamed
	// TyAlias: Text = alias name, Children = [targetTypeExpr].
	TyAlias
)

var nodeKindNames = map[NodeKind]string{
	InvalidKind: "Invalid", List: "List", FileScope: "FileScope",
	ModuleDef: "ModuleDef", StructDef: "StructDef", StructField: "StructField",
	EnumDef: "EnumDef", EnumVariant: "EnumVariant", UnionDef: "UnionDef",
	UnionMember: "UnionMember", FunctionDef: "FunctionDef", Param: "Param",
	ClauseList: "ClauseList", ClauseTypeDecl: "ClauseTypeDecl",
	ClauseTypeTraitBounded: "ClauseTypeTraitBounded", ClauseDecl: "ClauseDecl",
	UseStatement: "UseStatement", Id: "Id", SuperPath: "SuperPath",
	PathSelect: "PathSelect", PathSelectAll: "PathSelectAll", PathSelectMulti: "PathSelectMulti",
	ArgList: "ArgList", OptionalArgList: "OptionalArgList", OptionalArg: "OptionalArg",
	ObjectField: "ObjectField", WhenClause: "WhenClause", MatchArm: "MatchArm",
	IntLit: "IntLit", RealLit: "RealLit", BoolLit: "BoolLit", CharLit: "CharLit",
	StringLit: "StringLit", SymbolLit: "SymbolLit",
	ExprList: "ExprList", Tuple: "Tuple", Object: "Object", Range: "Range", Block: "Block",
	If: "If", When: "When", Match: "Match", While: "While", For: "For",
	Let: "Let", Const: "Const", Assign: "Assign", Break: "Break", Continue: "Continue",
	Return: "Return", Resume: "Resume",
	FnApply: "FnApply", UnaryApply: "UnaryApply", BinaryApply: "BinaryApply",
	ObjectApply: "ObjectApply", Index: "Index", Matches: "Matches",
	TyAny: "TyAny", TyUnit: "TyUnit", TyInt: "TyInt", TyFloat: "TyFloat",
	TyTuple: "TyTuple", TyOptional: "TyOptional", TyPointer: "TyPointer",
	TyArray: "TyArray", TyScheme: "TyScheme", TyNamed: "TyNamed", TyAlias: "TyAlias",
}

func (k NodeKind) String() string {
	if n, ok := nodeKindNames[k]; ok {
		return n
	}
	return "Unknown"
}

// IsItemKind reports whether k can appear in a scope's top-level item list
// (the kinds the AST Scanner dispatches on).
func (k NodeKind) IsItemKind() bool {
	switch k {
	case ModuleDef, StructDef, EnumDef, UnionDef, FunctionDef, UseStatement:
		return true
	default:
		return false
	}
}
