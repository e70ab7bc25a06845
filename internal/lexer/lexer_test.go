package lexer_test

import (
	"testing"

	"flc/internal/diag"
	"flc/internal/lexer"
	"flc/internal/source"
	"flc/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, name string, sev diag.Severity, primary source.Span, msg, label, help string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Name:     name,
		Message:  msg,
		Primary:  primary,
		Label:    label,
		Help:     help,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func makeLexer(t *testing.T, content string) (*lexer.Lexer, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte(content))
	file := fs.Get(id)
	rep := &testReporter{}
	return lexer.New(file, lexer.Options{Reporter: rep}), rep
}

func allKinds(t *testing.T, content string) []token.Kind {
	t.Helper()
	lx, _ := makeLexer(t, content)
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func assertKinds(t *testing.T, content string, want []token.Kind) {
	t.Helper()
	got := allKinds(t, content)
	if len(got) != len(want) {
		t.Fatalf("content %q: got %d tokens %v, want %d %v", content, len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("content %q: token %d = %v, want %v (all: %v)", content, i, got[i], want[i], got)
		}
	}
}

// S1 — lex literal: "hello\n" 'a' 42 1.5 0x
func TestScenario_S1_LexLiteral(t *testing.T) {
	lx, rep := makeLexer(t, `"hello\n" 'a' 42 1.5 0x`)
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.StringLit, token.CharLit, token.IntLit, token.RealLit, token.Invalid}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(kinds), kinds, len(want), want)
	}
	for i := range kinds {
		if kinds[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
	if !rep.HasErrors() {
		t.Fatalf("expected InvalidNumber diagnostic for trailing 0x")
	}
	found := false
	for _, d := range rep.diagnostics {
		if d.Code == diag.CodeInvalidNumber {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.CodeInvalidNumber, got %+v", rep.diagnostics)
	}
}

// property 3 — whitespace disambiguation of dual-form operators.
func TestProperty_WhitespaceDisambiguation_Comparison(t *testing.T) {
	assertKinds(t, "a < b > c", []token.Kind{
		token.Ident, token.SeparatedLt, token.Ident, token.SeparatedGt, token.Ident,
	})
}

func TestProperty_WhitespaceDisambiguation_Generic(t *testing.T) {
	assertKinds(t, "a<b,c>(x)", []token.Kind{
		token.Ident, token.Lt, token.Ident, token.Comma, token.Ident, token.Gt,
		token.LParen, token.Ident, token.RParen,
	})
}

func TestProperty_WhitespaceDisambiguation_PlusMinus(t *testing.T) {
	assertKinds(t, "a + b", []token.Kind{token.Ident, token.SeparatedPlus, token.Ident})
	assertKinds(t, "-a", []token.Kind{token.Minus, token.Ident})
	assertKinds(t, "a - -b", []token.Kind{token.Ident, token.SeparatedMinus, token.Minus, token.Ident})
}

// property 2 — totality: every byte of input belongs to some token or trivia span.
func TestProperty_Totality(t *testing.T) {
	contents := []string{
		"fn main() { let x = 1 + 2 }",
		"  // comment\n/* block */ x",
		`"str" 'c' :sym #{ nested { } }`,
	}
	for _, content := range contents {
		lx, _ := makeLexer(t, content)
		var lastEnd uint32
		for {
			tok := lx.Next()
			for _, tv := range tok.Leading {
				if tv.Span.Start != lastEnd {
					t.Fatalf("content %q: trivia gap at %d (want %d)", content, tv.Span.Start, lastEnd)
				}
				lastEnd = tv.Span.End
			}
			if tok.Kind == token.EOF {
				break
			}
			if tok.Span.Start != lastEnd {
				t.Fatalf("content %q: token gap before %v at %d (want %d)", content, tok.Kind, tok.Span.Start, lastEnd)
			}
			lastEnd = tok.Span.End
		}
	}
}

func TestKeywordsAndIdents(t *testing.T) {
	assertKinds(t, "fn module struct enum union", []token.Kind{
		token.KwFn, token.KwModule, token.KwStruct, token.KwEnum, token.KwUnion,
	})
	assertKinds(t, "fnx Module", []token.Kind{token.Ident, token.KwModule})
}

func TestNumberLiterals(t *testing.T) {
	assertKinds(t, "0xFF 0o17 0b101 42 1.5 1e10 1.5e-3", []token.Kind{
		token.IntLit, token.IntLit, token.IntLit, token.IntLit,
		token.RealLit, token.RealLit, token.RealLit,
	})
}

func TestUnterminatedString(t *testing.T) {
	lx, rep := makeLexer(t, `"abc`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	if !rep.HasErrors() {
		t.Fatalf("expected UnterminatedString diagnostic")
	}
}

func TestEmptyChar(t *testing.T) {
	lx, rep := makeLexer(t, `''`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	found := false
	for _, d := range rep.diagnostics {
		if d.Code == diag.CodeEmptyChar {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected EmptyChar diagnostic, got %+v", rep.diagnostics)
	}
}

func TestSymbolLiteral(t *testing.T) {
	assertKinds(t, ":name :Another_1", []token.Kind{token.SymbolLit, token.SymbolLit})
}

func TestMacroLit(t *testing.T) {
	assertKinds(t, `#{ fn x() { } }`, []token.Kind{token.MacroLit})
}

func TestUnterminatedMacro(t *testing.T) {
	lx, rep := makeLexer(t, `#{ fn x()`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid, got %v", tok.Kind)
	}
	found := false
	for _, d := range rep.diagnostics {
		if d.Code == diag.CodeUnterminatedMacro {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected UnterminatedMacro diagnostic, got %+v", rep.diagnostics)
	}
}

func TestInvalidEscape(t *testing.T) {
	lx, rep := makeLexer(t, `"bad\qescape"`)
	tok := lx.Next()
	if tok.Kind != token.StringLit {
		t.Fatalf("expected StringLit despite invalid escape, got %v", tok.Kind)
	}
	found := false
	for _, d := range rep.diagnostics {
		if d.Code == diag.CodeInvalidEscape {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected InvalidEscape diagnostic, got %+v", rep.diagnostics)
	}
}

func TestPeekAndPush(t *testing.T) {
	lx, _ := makeLexer(t, "a b")
	first := lx.Peek()
	if first.Kind != token.Ident || first.Text != "a" {
		t.Fatalf("Peek() = %+v, want Ident 'a'", first)
	}
	second := lx.Next()
	if second.Text != "a" {
		t.Fatalf("Next() after Peek() = %+v, want same token", second)
	}
	third := lx.Next()
	if third.Text != "b" {
		t.Fatalf("Next() = %+v, want 'b'", third)
	}
	lx.Push(third)
	if again := lx.Next(); again.Text != "b" {
		t.Fatalf("Next() after Push() = %+v, want pushed 'b'", again)
	}
}

func TestProjectionQuoteVsCharLiteral(t *testing.T) {
	assertKinds(t, "obj'field", []token.Kind{token.Ident, token.Quote, token.Ident})
	assertKinds(t, "'a'", []token.Kind{token.CharLit})
}
