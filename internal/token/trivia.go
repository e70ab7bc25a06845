package token

import "flc/internal/source"

// TriviaKind classifies types of non-code elements.
type TriviaKind uint8

const (
	// TriviaSpace represents horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline represents a newline character.
	TriviaNewline
	// TriviaLineComment represents a line comment.
	TriviaLineComment
	// TriviaBlockComment represents a block comment.
	TriviaBlockComment
)

// Trivia represents a non-code source element like comments or whitespace.
// Trivia bytes are not part of any token's span, but the union of all trivia
// and token spans in a file covers the whole input (lexer totality).
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
