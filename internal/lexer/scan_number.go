package lexer

import (
	"flc/internal/diag"
	"flc/internal/token"
)

// scanNumber sканирует числовые литералы: decimal integers, 0x/0o/0b
// prefixed integers, and decimal reals with optional exponent.
// Malformed forms (e.g. "0x" with no digits, or "1." with no digit after
// the point) are reported as InvalidNumber and lexing continues past the
// malformed run. An 'e'/'E' not followed by a digit is not part of the
// number; it is left for the next token.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.RealLit
		lx.eatDigitRun()
		return lx.finishNumber(start, kind, true)
	}

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'x', 'X':
			lx.cursor.Bump()
			n := lx.eatHexRun()
			if n == 0 {
				return lx.invalidNumber(start, "expected hex digit after '0x'")
			}
			return lx.finishNumber(start, token.IntLit, false)
		case 'o', 'O':
			lx.cursor.Bump()
			n := lx.eatOctalRun()
			if n == 0 {
				return lx.invalidNumber(start, "expected octal digit after '0o'")
			}
			return lx.finishNumber(start, token.IntLit, false)
		case 'b', 'B':
			lx.cursor.Bump()
			n := lx.eatBinaryRun()
			if n == 0 {
				return lx.invalidNumber(start, "expected binary digit after '0b'")
			}
			return lx.finishNumber(start, token.IntLit, false)
		}
	} else {
		lx.eatDigitRun()
	}

	if lx.cursor.Peek() == '.' {
		if b0, b1, ok := lx.cursor.Peek2(); !(ok && b0 == '.' && (b1 == '.' || b1 == '=')) {
			lx.cursor.Bump()
			kind = token.RealLit
			if !isDec(lx.cursor.Peek()) {
				return lx.invalidNumber(start, "expected digit after '.'")
			}
			lx.eatDigitRun()
		}
	}

	return lx.finishNumber(start, kind, true)
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind, allowExp bool) token.Token {
	if allowExp && (lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E') {
		save := lx.cursor
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			lx.cursor = save
		} else {
			kind = token.RealLit
			lx.eatDigitRun()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) invalidNumber(start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.CodeInvalidNumber, headSpan(sp, 1), msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) eatDigitRun() int {
	n := 0
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
		n++
	}
	return n
}

func (lx *Lexer) eatHexRun() int {
	n := 0
	for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
		n++
	}
	return n
}

func (lx *Lexer) eatOctalRun() int {
	n := 0
	for {
		b := lx.cursor.Peek()
		if (b >= '0' && b <= '7') || b == '_' {
			lx.cursor.Bump()
			n++
			continue
		}
		break
	}
	return n
}

func (lx *Lexer) eatBinaryRun() int {
	n := 0
	for {
		b := lx.cursor.Peek()
		if b == '0' || b == '1' || b == '_' {
			lx.cursor.Bump()
			n++
			continue
		}
		break
	}
	return n
}
