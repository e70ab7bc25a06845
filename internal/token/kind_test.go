package token_test

import (
	"testing"

	"flc/internal/source"
	"flc/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.RealLit, token.CharLit, token.StringLit, token.SymbolLit,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen, token.MacroLit}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.SeparatedPlus, token.Minus, token.SeparatedMinus,
		token.Star, token.SeparatedStar, token.Slash, token.SeparatedSlash,
		token.Percent, token.PlusPlus,
		token.Lt, token.SeparatedLt, token.Gt, token.SeparatedGt, token.LtEq, token.GtEq,
		token.EqEq, token.BangEq, token.Bang, token.Question, token.QuestionQuestion,
		token.Assign, token.Arrow, token.FatArrow,
		token.Colon, token.ColonColon, token.Semicolon, token.Comma,
		token.Dot, token.Quote, token.DotDot, token.DotDotEq,
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.Hash, token.At, token.Pipe, token.Amp, token.Underscore,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.IntLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwFn).IsIdent() {
		t.Fatalf("KwFn must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwModule, token.KwStruct, token.KwEnum, token.KwUnion, token.KwFn, token.KwUse,
		token.KwSuper, token.KwAs, token.KwPub, token.KwMut, token.KwConst, token.KwLet,
		token.KwIf, token.KwElse, token.KwWhen, token.KwMatch, token.KwMatches,
		token.KwWhile, token.KwFor, token.KwIn, token.KwDo, token.KwBreak, token.KwContinue,
		token.KwReturn, token.KwResume, token.KwAnd, token.KwOr, token.KwIs,
		token.KwTrue, token.KwFalse,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.Plus, token.IntLit}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestIsSeparated(t *testing.T) {
	sep := []token.Kind{
		token.SeparatedPlus, token.SeparatedMinus, token.SeparatedStar,
		token.SeparatedSlash, token.SeparatedLt, token.SeparatedGt,
	}
	for _, k := range sep {
		if !tok(k).IsSeparated() {
			t.Fatalf("%v should be separated", k)
		}
	}
	adj := []token.Kind{token.Plus, token.Minus, token.Star, token.Slash, token.Lt, token.Gt, token.Ident}
	for _, k := range adj {
		if tok(k).IsSeparated() {
			t.Fatalf("%v must NOT be separated", k)
		}
	}
}
