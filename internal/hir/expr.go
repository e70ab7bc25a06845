package hir

// ExprKind tags which fields of Expr are meaningful.
type ExprKind uint8

const (
	InvalidExpr ExprKind = iota

	ExprRef // Ref: HirId of the referenced definition

	ExprIntLiteral
	ExprBoolLiteral
	ExprRealLiteral
	ExprStrLiteral
	ExprCharLiteral
	ExprSymbolLiteral

	ExprNull
	ExprUndefined
	ExprUnit
	ExprAny

	ExprList  // Items
	ExprTuple // Items
	ExprObject // Items (values) + Props (names, parallel to Items)
	ExprRange  // From, To, Inclusive
	ExprPattern // Pat

	ExprFnApply     // Callee, Items (args), Props (optional args)
	ExprUnaryApply  // Operand, Op
	ExprBinaryApply // Left, Right, Op
	ExprObjectApply // Callee, Items (args), Props (optional args), Object
	ExprIndex       // Left (receiver), Right (index)
	ExprMatches     // Left (scrutinee), Pat

	ExprIf    // Cond, Then, ElseOpt (0 = no else)
	ExprWhen  // Items (conditions), Items2 (branches), parallel arrays
	ExprMatch // Left (subject), Pats (arm patterns), Items (arm bodies), Items2 (arm guards, 0 = none); all parallel arrays
	ExprWhile // Cond, Body
	ExprFor   // Pat, Left (iterable), Body
	ExprLet   // Pat, Left (value)
	ExprConst // Pat, Left (value)
	ExprAssign // Target, Left (value)
	ExprBlock  // Items (statements, last is tail value)
	ExprExprStatement // Left (inner expr)
	ExprBreak    // ElseOpt reused as optional value, Str as optional label
	ExprContinue // Str as optional label
	ExprReturn   // ElseOpt reused as optional value
	ExprResume   // ElseOpt reused as optional value

	ExprTyVoid
	ExprTyNoReturn
	ExprTyAny
	ExprTyInteger
	ExprTyReal
	ExprTyChar
	ExprTySymbol
	ExprTyObject
	ExprTyStr
	ExprTyBool
	ExprTyInt   // Bits, Signed
	ExprTyFloat // Bits
	ExprTyOptional // TyInner
	ExprTyTuple    // Items
	ExprTyPointer  // TyInner
	ExprTyArray    // TyInner (element), TySize (size expr)
	ExprTyScheme   // Params, TyInner (body)
	ExprTyNamed    // Str (name), Items (generic type-argument handles, empty for a plain name), Def (target definition, may be 0 before resolution)
	ExprTyAlias    // Str (alias name), TyInner (target type)
)

// UnaryOp is the operator carried by an ExprUnaryApply node.
type UnaryOp uint8

const (
	UnaryInvalid UnaryOp = iota
	UnaryNeg
	UnaryNot
	UnaryRefer
	UnaryDeref
)

// BinaryOp is the operator carried by an ExprBinaryApply node.
type BinaryOp uint8

const (
	BinaryInvalid BinaryOp = iota
	BinaryAdd
	BinarySub
	BinaryDiv
	BinaryMul
	BinaryMod
	BinaryBoolAnd
	BinaryBoolOr
	BinaryAddAdd
)

// Property is a named Expr, used for object literal fields and optional
// call arguments.
type Property struct {
	Name  Symbol
	Value ExprHandle
}

// Expr is the flattened, comparable-by-content representation of every
// expression form the language has. Kind selects which fields apply; see
// the per-constant comments on ExprKind. Interning (Store.InternExpr) hands
// back the same ExprHandle for two structurally equal Exprs, so sharing is
// automatic rather than something lowering code has to arrange.
type Expr struct {
	Kind ExprKind

	Ref HirId

	Int  int64
	Bool bool
	Char rune
	Str  Symbol

	// RealMantissa/RealExp together represent a real literal the way the
	// lexer's decimal text was split at lowering time (mantissa digits,
	// decimal exponent), avoiding a lossy float64 round trip before type
	// checking gets a chance to pick a concrete width.
	RealMantissa int64
	RealExp      int32

	Items  []ExprHandle
	Items2 []ExprHandle
	Props  []Property
	Pats   []PatternHandle

	From, To  ExprHandle
	Inclusive bool

	Pat PatternHandle

	Callee, Operand      ExprHandle
	Left, Right          ExprHandle
	Object, Index        ExprHandle
	Cond, Then, ElseOpt  ExprHandle
	Body, Target         ExprHandle

	Op UnaryOp
	BinOp BinaryOp

	Bits   uint8
	Signed bool

	TyInner ExprHandle
	TySize  ExprHandle
	Params  []ParamHandle
	Def     DefinitionHandle
}
