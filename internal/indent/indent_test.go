package indent

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/kobzarvs/qconsole/internal/lexer"
)

func newTestEngine() *Engine {
	return New(lexer.DefaultGrammar(), "\t")
}

func TestDepthSkipsLiterals(t *testing.T) {
	e := newTestEngine()
	cases := []struct {
		src  string
		want int
	}{
		{"", 0},
		{"{", 1},
		{"f(a[0]) {", 1},
		{"{ {", 2},
		{"{ }", 0},
		{"}", -1},
		{`{ "}" `, 1},
		{"{ '{' ", 1},
		{"{ // }", 1},
		{"{ /* } */", 1},
		{"{ /* } ", 1},
		{`{ @"}` + "\n" + `}"`, 1},
		{`{ $"{x}"`, 1},
	}
	for _, tc := range cases {
		text := []rune(tc.src)
		if got := e.Depth(text, len(text)); got != tc.want {
			t.Fatalf("Depth(%q) = %d, want %d", tc.src, got, tc.want)
		}
	}
}

func TestDepthStopsAtEnd(t *testing.T) {
	e := newTestEngine()
	text := []rune("{ { } }")
	if got := e.Depth(text, 3); got != 2 {
		t.Fatalf("Depth(..., 3) = %d, want 2", got)
	}
	if got := e.Depth(text, 100); got != 0 {
		t.Fatalf("Depth(..., 100) = %d, want 0", got)
	}
}

func TestNewlineAfterOpenBrace(t *testing.T) {
	e := newTestEngine()
	text := []rune("{\n")
	edit := e.Apply(text, 2, "\n")
	if got := string(edit.Text); got != "{\n\t" {
		t.Fatalf("text = %q, want %q", got, "{\n\t")
	}
	if edit.Caret != 3 {
		t.Fatalf("caret = %d, want 3", edit.Caret)
	}
	if !edit.Changed || edit.Depth != 1 || edit.Delta != 1 {
		t.Fatalf("edit = %+v, want changed depth 1 delta 1", edit)
	}
}

func TestNewlineBeforeCloseBrace(t *testing.T) {
	e := newTestEngine()
	// Enter pressed between "{" and "}": the new line carries the brace.
	text := []rune("if (x) {\n\t{\n  }")
	caret := strings.Index(string(text), "  }")
	edit := e.Apply(text, caret, "\n")
	want := "if (x) {\n\t{\n\t  }"
	if got := string(edit.Text); got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if edit.Caret != caret+1 {
		t.Fatalf("caret = %d, want %d", edit.Caret, caret+1)
	}
}

func TestNewlineAtDepthZero(t *testing.T) {
	e := newTestEngine()
	text := []rune("x = 1;\n")
	edit := e.Apply(text, len(text), "\n")
	if edit.Changed || string(edit.Text) != string(text) || edit.Caret != len(text) {
		t.Fatalf("edit = %+v, want unchanged", edit)
	}
}

func TestNewlineIgnoresBracesInComment(t *testing.T) {
	e := newTestEngine()
	text := []rune("// {\n")
	if edit := e.Apply(text, len(text), "\n"); edit.Changed {
		t.Fatalf("edit = %+v, want unchanged", edit)
	}
}

func TestCloseBracketAlreadyIndented(t *testing.T) {
	e := newTestEngine()
	text := []rune("{\n{\n\t}")
	edit := e.Apply(text, len(text), "}")
	if edit.Changed {
		t.Fatalf("edit = %+v, want unchanged", edit)
	}
	if edit.Depth != 1 {
		t.Fatalf("depth = %d, want 1", edit.Depth)
	}
}

func TestCloseBracketRemovesUnits(t *testing.T) {
	e := newTestEngine()
	text := []rune("{\n\t\t}")
	edit := e.Apply(text, len(text), "}")
	if got := string(edit.Text); got != "{\n}" {
		t.Fatalf("text = %q, want %q", got, "{\n}")
	}
	if edit.Caret != 3 || edit.Delta != -2 {
		t.Fatalf("caret = %d delta = %d, want 3 -2", edit.Caret, edit.Delta)
	}
}

func TestCloseBracketAddsUnits(t *testing.T) {
	e := newTestEngine()
	text := []rune("{\n{\n{\n}")
	edit := e.Apply(text, len(text), "}")
	want := "{\n{\n{\n\t\t}"
	if got := string(edit.Text); got != want {
		t.Fatalf("text = %q, want %q", got, want)
	}
	if edit.Caret != len([]rune(want)) {
		t.Fatalf("caret = %d, want %d", edit.Caret, len([]rune(want)))
	}
}

func TestCloseBracketAfterContentUntouched(t *testing.T) {
	e := newTestEngine()
	text := []rune("{\n{\n\t\tfoo();}")
	edit := e.Apply(text, len(text), "}")
	if edit.Changed || string(edit.Text) != string(text) || edit.Caret != len(text) {
		t.Fatalf("edit = %+v, want unchanged", edit)
	}
}

func TestCloseBracketUnbalancedKeepsText(t *testing.T) {
	e := newTestEngine()
	text := []rune("}")
	if edit := e.Apply(text, 1, "}"); edit.Changed {
		t.Fatalf("edit = %+v, want unchanged", edit)
	}
	text = []rune("\t}")
	edit := e.Apply(text, 2, "}")
	if got := string(edit.Text); got != "}" || edit.Caret != 1 {
		t.Fatalf("text = %q caret = %d, want %q 1", got, edit.Caret, "}")
	}
}

func TestSpacesUnit(t *testing.T) {
	e := New(lexer.DefaultGrammar(), "    ")
	edit := e.Apply([]rune("{\n"), 2, "\n")
	if got := string(edit.Text); got != "{\n    " || edit.Caret != 6 {
		t.Fatalf("text = %q caret = %d, want %q 6", got, edit.Caret, "{\n    ")
	}
	edit = e.Apply([]rune("{\n        }"), 11, "}")
	if got := string(edit.Text); got != "{\n}" || edit.Caret != 3 {
		t.Fatalf("text = %q caret = %d, want %q 3", got, edit.Caret, "{\n}")
	}
}

func TestApplyIgnoresOtherInput(t *testing.T) {
	e := newTestEngine()
	text := []rune("{\n}")
	for _, ins := range []string{"", "a", "\n\n", "}}", "{\n"} {
		if edit := e.Apply(text, len(text), ins); edit.Changed {
			t.Fatalf("Apply(%q) = %+v, want unchanged", ins, edit)
		}
	}
	// Caret does not follow the claimed insertion.
	if edit := e.Apply([]rune("{x"), 2, "\n"); edit.Changed {
		t.Fatalf("edit = %+v, want unchanged", edit)
	}
	if edit := e.Apply(text, 0, "}"); edit.Changed {
		t.Fatalf("edit = %+v, want unchanged", edit)
	}
}

func TestPending(t *testing.T) {
	e := newTestEngine()
	cases := []struct {
		src  string
		want bool
	}{
		{"x = 1;", false},
		{"if (x) {", true},
		{"if (x) { }", false},
		{"/* open", true},
		{"/* closed */", false},
		{`s = @"multi`, true},
		{`s = "plain`, false},
		{"", false},
	}
	for _, tc := range cases {
		if got := e.Pending([]rune(tc.src)); got != tc.want {
			t.Fatalf("Pending(%q) = %v, want %v", tc.src, got, tc.want)
		}
	}
}

var indentAlphabet = []rune("ab{}()[] \t\n\"/*;")

func TestPropertyNewlineOnlyInsertsUnits(t *testing.T) {
	e := newTestEngine()
	rapid.Check(t, func(t *rapid.T) {
		before := rapid.SliceOf(rapid.SampledFrom(indentAlphabet)).Draw(t, "before")
		after := rapid.SliceOf(rapid.SampledFrom(indentAlphabet)).Draw(t, "after")
		text := append(append(append([]rune{}, before...), '\n'), after...)
		caret := len(before) + 1
		edit := e.Apply(text, caret, "\n")
		added := edit.Caret - caret
		if added < 0 || len(edit.Text) != len(text)+added {
			t.Fatalf("caret moved %d, text grew %d", added, len(edit.Text)-len(text))
		}
		if string(edit.Text[:caret]) != string(text[:caret]) || string(edit.Text[edit.Caret:]) != string(text[caret:]) {
			t.Fatalf("edit touched text outside the insertion: %q -> %q", string(text), string(edit.Text))
		}
		if strings.Trim(string(edit.Text[caret:edit.Caret]), "\t") != "" {
			t.Fatalf("inserted %q, want tabs only", string(edit.Text[caret:edit.Caret]))
		}
	})
}

func TestPropertyCloseBracketKeepsBracketAndCaret(t *testing.T) {
	e := newTestEngine()
	rapid.Check(t, func(t *rapid.T) {
		before := rapid.SliceOf(rapid.SampledFrom(indentAlphabet)).Draw(t, "before")
		after := rapid.SliceOf(rapid.SampledFrom(indentAlphabet)).Draw(t, "after")
		text := append(append(append([]rune{}, before...), '}'), after...)
		caret := len(before) + 1
		edit := e.Apply(text, caret, "}")
		if edit.Caret < 1 || edit.Caret > len(edit.Text) || edit.Text[edit.Caret-1] != '}' {
			t.Fatalf("caret %d no longer follows the bracket in %q", edit.Caret, string(edit.Text))
		}
		if string(edit.Text[edit.Caret:]) != string(after) {
			t.Fatalf("text after caret changed: %q -> %q", string(after), string(edit.Text[edit.Caret:]))
		}
		if len(edit.Text)-len(text) != edit.Caret-caret {
			t.Fatalf("length change %d != caret change %d", len(edit.Text)-len(text), edit.Caret-caret)
		}
	})
}
