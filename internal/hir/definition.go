package hir

// DefinitionKind tags which fields of Definition are meaningful.
type DefinitionKind uint8

const (
	InvalidDefinition DefinitionKind = iota

	DefModule
	DefStruct
	DefStructField // Name, FieldType, FieldDefault (0 = none)
	DefEnum
	DefEnumVariant             // Name
	DefEnumVariantWithStruct   // Name, Defs (nested fields)
	DefEnumVariantWithTuple    // Name, Exprs (element types)
	DefEnumVariantWithPattern  // Name, Pat
	DefEnumVariantWithSubEnum  // Name, Defs (nested variants)
	DefUnion
	DefUnionMember // Name, FieldType
	DefFunction
	DefFileScope // Name, Defs, Scope
	DefPackage   // Name, Defs, Scope
)

// FnKind distinguishes a plain function from a method receiving an implicit
// receiver.
type FnKind uint8

const (
	FnNormal FnKind = iota
	FnMethod
	FnRefMethod
)

// Definition is the flattened representation of every top-level or nested
// item the lowerer can produce. Kind selects which fields apply.
type Definition struct {
	Kind DefinitionKind

	Name Symbol

	// Struct/Enum/Union carry clauses (generic constraints, contracts; a
	// function's are in FunctionBody.Clauses); Defs carries the item's body (fields,
	// variants, nested definitions); Scope is the ScopeRef that owns the
	// item's member names.
	Clauses []ClauseHandle
	Defs    []DefinitionHandle
	Scope   ScopeRef

	// StructField / EnumVariantWithPattern / Function shared payload.
	FieldType    ExprHandle
	FieldDefault ExprHandle // 0 = no default
	Pat          PatternHandle
	Exprs        []ExprHandle

	Function FunctionBody
}

// FunctionBody is Definition's payload when Kind == DefFunction.
type FunctionBody struct {
	FnKind    FnKind
	Name      Symbol
	Clauses   []ClauseHandle
	Params    []ParamHandle
	Body      ExprHandle
	// BodyScope is the ScopeRef created for the function's own body (its
	// parameters and locals), distinct from Definition.Scope which callers
	// leave zero for a plain function: idempotent lowering reuses the
	// item's own scope_id, it never re-derives it from the owner.
	BodyScope ScopeRef
}
