package hir

// ParamKind tags which fields of Param are meaningful.
type ParamKind uint8

const (
	InvalidParam ParamKind = iota
	ParamItself             // IsRef
	ParamTyped              // Name, Type, Default (0 = required)
	ParamAutoCollectTuple   // Name, Type
	ParamAutoCollectObject  // Name, Type
)

// Param is the flattened representation of one function parameter.
type Param struct {
	Kind    ParamKind
	Name    Symbol
	Type    ExprHandle
	Default ExprHandle // 0 = no default, meaning the parameter is required
	IsRef   bool
}
