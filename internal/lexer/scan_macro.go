package lexer

import (
	"flc/internal/diag"
	"flc/internal/token"
)

// scanMacroLit sканирует #{ ... } macro-block literal. Caller has already
// confirmed the '#' is immediately followed by '{'. Brace nesting inside the
// block is tracked so that balanced '{'/'}' pairs within the macro body do
// not terminate it early.
func (lx *Lexer) scanMacroLit() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'
	lx.cursor.Bump() // '{'

	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		b := lx.cursor.Peek()
		switch b {
		case '{':
			depth++
			lx.cursor.Bump()
		case '}':
			depth--
			lx.cursor.Bump()
		default:
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	if depth > 0 {
		lx.errLex(diag.CodeUnterminatedMacro, headSpan(sp, 2), "unterminated macro literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	return token.Token{Kind: token.MacroLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
