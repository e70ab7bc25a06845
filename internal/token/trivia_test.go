package token_test

import (
	"testing"

	"flc/internal/source"
	"flc/internal/token"
)

func TestTriviaShape(t *testing.T) {
	tv := token.Trivia{
		Kind: token.TriviaLineComment,
		Span: source.Span{Start: 0, End: 10},
		Text: "// hello",
	}
	tk := token.Token{
		Kind:    token.KwFn,
		Span:    source.Span{Start: 42, End: 44},
		Text:    "fn",
		Leading: []token.Trivia{tv},
	}
	if len(tk.Leading) != 1 || tk.Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("leading comment trivia must be present")
	}
}

func TestTriviaKinds(t *testing.T) {
	kinds := []token.TriviaKind{
		token.TriviaSpace, token.TriviaNewline, token.TriviaLineComment, token.TriviaBlockComment,
	}
	seen := map[token.TriviaKind]bool{}
	for _, k := range kinds {
		seen[k] = true
	}
	if len(seen) != 4 {
		t.Fatalf("trivia kinds must be distinct, got %d", len(seen))
	}
}
