package token

import (
	"flc/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, character, string, or symbol literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RealLit, CharLit, StringLit, SymbolLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, SeparatedPlus, Minus, SeparatedMinus, Star, SeparatedStar, Slash, SeparatedSlash,
		Percent, PlusPlus, Lt, SeparatedLt, Gt, SeparatedGt, LtEq, GtEq, EqEq, BangEq, Bang,
		Question, QuestionQuestion, Assign, Arrow, FatArrow, Colon, ColonColon, Semicolon,
		Comma, Dot, Quote, DotDot, DotDotEq, LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		Hash, At, Pipe, Amp, Underscore:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwModule, KwStruct, KwEnum, KwUnion, KwFn, KwUse, KwSuper, KwAs, KwPub, KwMut, KwConst,
		KwLet, KwIf, KwElse, KwWhen, KwMatch, KwMatches, KwWhile, KwFor, KwIn, KwDo, KwBreak,
		KwContinue, KwReturn, KwResume, KwAnd, KwOr, KwIs, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsSeparated reports whether the token kind is the whitespace-surrounded
// variant of a dual-kind operator (SeparatedPlus vs Plus, and so on).
func (t Token) IsSeparated() bool {
	switch t.Kind {
	case SeparatedPlus, SeparatedMinus, SeparatedStar, SeparatedSlash, SeparatedLt, SeparatedGt:
		return true
	default:
		return false
	}
}
