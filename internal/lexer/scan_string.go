package lexer

import (
	"flc/internal/diag"
	"flc/internal/token"
)

// scanString sканирует "..." со строгой валидацией escape-последовательностей.
// Поддерживаемые escapes: \n \t \r \\ \' \" \0 \a \b \f \v \x{..} \u{..}.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.scanEscape()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.CodeUnterminatedString, headSpan(sp, 1), "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.CodeUnterminatedString, headSpan(sp, 1), "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanCharOrQuote disambiguates a leading "'" between a char literal 'x' and
// the bare projection operator token (Quote) used postfix as in obj'field.
func (lx *Lexer) scanCharOrQuote() token.Token {
	start := lx.cursor.Mark()

	// Lookahead: "'" immediately followed eventually by a closing "'" within
	// a short run (accounting for one escape) marks a char literal; otherwise
	// treat the apostrophe as the standalone projection operator.
	save := lx.cursor
	lx.cursor.Bump() // opening "'"

	if lx.cursor.Peek() == '\'' {
		// Empty char literal: ''
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.CodeEmptyChar, sp, "empty character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if lx.cursor.EOF() {
		lx.cursor = save
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Quote, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	if lx.cursor.Peek() == '\\' {
		lx.scanEscape()
	} else {
		lx.bumpRune()
	}

	if lx.cursor.Peek() == '\'' {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.CharLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	// Not a char literal (e.g. "'field" projection) — roll back and emit Quote.
	lx.cursor = save
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Quote, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanSymbolLit scans a :name symbol literal. Caller has already verified
// that an identifier-start byte follows the leading ':'.
func (lx *Lexer) scanSymbolLit() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // ':'
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			break
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.SymbolLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// scanEscape consumes a backslash escape sequence, reporting InvalidEscape
// for unrecognized escape characters or malformed \x{..}/\u{..} forms.
func (lx *Lexer) scanEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.CodeInvalidEscape, sp, "incomplete escape sequence")
		return
	}
	c := lx.cursor.Peek()
	switch c {
	case 'n', 't', 'r', '\\', '\'', '"', '0', 'a', 'b', 'f', 'v':
		lx.cursor.Bump()
	case 'x', 'u':
		lx.cursor.Bump()
		if lx.cursor.Peek() != '{' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.CodeInvalidEscape, sp, "expected '{' after \\"+string(c))
			return
		}
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '}' {
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.CodeInvalidEscape, sp, "invalid hex digit in unicode escape")
				return
			}
			lx.cursor.Bump()
		}
		if lx.cursor.Peek() == '}' {
			lx.cursor.Bump()
		} else {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.CodeInvalidEscape, sp, "unterminated unicode escape")
		}
	default:
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.CodeInvalidEscape, sp, "invalid escape character")
	}
}
