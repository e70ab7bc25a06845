package lexer

import (
	"flc/internal/source"
	"flc/internal/token"
)

// Lexer converts source content into a stream of tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

// New creates a new Lexer for the provided file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	precededBySpace := lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '#':
		if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '{' {
			tok = lx.scanMacroLit()
			break
		}
		tok = lx.scanOperatorOrPunct()

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanCharOrQuote()

	case ch == ':':
		if b0, ok := lx.peekIdentStartAfter(1); ok && b0 {
			tok = lx.scanSymbolLit()
			break
		}
		tok = lx.scanOperatorOrPunct()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	followedBySpace := lx.peekIsTriviaStart()
	tok = lx.disambiguateSeparated(tok, precededBySpace, followedBySpace)

	tok.Leading = lx.hold
	lx.hold = nil

	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Push injects a token back into the lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// peekIsTriviaStart reports whether the very next byte begins whitespace,
// a comment, or EOF — used to decide if an operator is "separated".
func (lx *Lexer) peekIsTriviaStart() bool {
	if lx.cursor.EOF() {
		return true
	}
	b := lx.cursor.Peek()
	if b == ' ' || b == '\t' || b == '\n' {
		return true
	}
	if b == '/' {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '/' && (b1 == '/' || b1 == '*') {
			return true
		}
	}
	return false
}

// disambiguateSeparated rewrites dual-form operator kinds (Plus/SeparatedPlus,
// etc.) based on whether whitespace surrounds the operator on both sides.
func (lx *Lexer) disambiguateSeparated(tok token.Token, before, after bool) token.Token {
	if !before || !after {
		return tok
	}
	switch tok.Kind {
	case token.Plus:
		tok.Kind = token.SeparatedPlus
	case token.Minus:
		tok.Kind = token.SeparatedMinus
	case token.Star:
		tok.Kind = token.SeparatedStar
	case token.Slash:
		tok.Kind = token.SeparatedSlash
	case token.Lt:
		tok.Kind = token.SeparatedLt
	case token.Gt:
		tok.Kind = token.SeparatedGt
	}
	return tok
}

func (lx *Lexer) peekIdentStartAfter(n int) (bool, bool) {
	off := lx.cursor.Off + uint32(n)
	if off >= lx.cursor.limit() {
		return false, false
	}
	b := lx.file.Content[off]
	return isIdentStartByte(b), true
}
