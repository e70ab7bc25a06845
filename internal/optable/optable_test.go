package optable_test

import (
	"testing"

	"flc/internal/optable"
	"flc/internal/token"
)

func TestExprPrecedenceOrdering(t *testing.T) {
	impl, _ := optable.ExprPrecedence(token.FatArrow)
	or, _ := optable.ExprPrecedence(token.KwOr)
	and, _ := optable.ExprPrecedence(token.KwAnd)
	cmp, _ := optable.ExprPrecedence(token.EqEq)
	arrow, _ := optable.ExprPrecedence(token.Arrow)
	add, _ := optable.ExprPrecedence(token.SeparatedPlus)
	mul, _ := optable.ExprPrecedence(token.SeparatedStar)
	pipe, _ := optable.ExprPrecedence(token.Pipe)
	proj, _ := optable.ExprPrecedence(token.Dot)

	levels := []optable.Level{impl, or, and, cmp, arrow, add, mul, pipe, proj}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Fatalf("levels not strictly increasing at %d: %v", i, levels)
		}
	}
}

func TestExprPrecedenceUnknownKind(t *testing.T) {
	if _, ok := optable.ExprPrecedence(token.KwModule); ok {
		t.Fatalf("KwModule should not have an expression precedence")
	}
}

func TestIsExprPrefix(t *testing.T) {
	for _, k := range []token.Kind{token.Plus, token.Minus, token.Bang, token.Amp} {
		if _, ok := optable.IsExprPrefix(k); !ok {
			t.Errorf("IsExprPrefix(%v) = false, want true", k)
		}
	}
	if _, ok := optable.IsExprPrefix(token.Star); ok {
		t.Errorf("IsExprPrefix(Star) = true, want false")
	}
}

func TestPatternPrecedenceOrdering(t *testing.T) {
	guard, _ := optable.PatternPrecedence(token.KwIs)
	as, _ := optable.PatternPrecedence(token.KwAs)
	or, _ := optable.PatternPrecedence(token.KwOr)
	prop, _ := optable.PatternPrecedence(token.Question)
	post, _ := optable.PatternPrecedence(token.LParen)
	proj, _ := optable.PatternPrecedence(token.Dot)

	levels := []optable.Level{guard, as, or, prop, post, proj}
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Fatalf("pattern levels not strictly increasing at %d: %v", i, levels)
		}
	}
}

func TestExprBinaryText(t *testing.T) {
	cases := map[token.Kind]string{
		token.SeparatedPlus: "+",
		token.KwAnd:         "and",
		token.FatArrow:      "=>",
	}
	for k, want := range cases {
		got, ok := optable.ExprBinaryText(k)
		if !ok || got != want {
			t.Errorf("ExprBinaryText(%v) = %q, %v; want %q, true", k, got, ok, want)
		}
	}
}
