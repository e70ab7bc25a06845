package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
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

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Заведомо НЕ ключевые слова
	notKw := []string{
		"Fn", "LET", "Module", // регистр важен — понижение делает лексер
		"Int", "Float32", "Bool", // имена типов — Ident
		"identifier", "toString",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
