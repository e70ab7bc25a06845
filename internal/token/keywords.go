package token

var keywords = map[string]Kind{
	"module":   KwModule,
	"struct":   KwStruct,
	"enum":     KwEnum,
	"union":    KwUnion,
	"fn":       KwFn,
	"use":      KwUse,
	"super":    KwSuper,
	"as":       KwAs,
	"pub":      KwPub,
	"mut":      KwMut,
	"const":    KwConst,
	"let":      KwLet,
	"if":       KwIf,
	"else":     KwElse,
	"when":     KwWhen,
	"match":    KwMatch,
	"matches":  KwMatches,
	"while":    KwWhile,
	"for":      KwFor,
	"in":       KwIn,
	"do":       KwDo,
	"break":    KwBreak,
	"continue": KwContinue,
	"return":   KwReturn,
	"resume":   KwResume,
	"and":      KwAnd,
	"or":       KwOr,
	"is":       KwIs,
	"true":     KwTrue,
	"false":    KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
