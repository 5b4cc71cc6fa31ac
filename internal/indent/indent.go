// Package indent re-derives indentation after a single typed character. It
// replays the comment and string strategies from the start of the buffer so
// brackets inside literals do not count, then adjusts the leading
// whitespace around the caret.
package indent

import (
	"strings"

	"github.com/kobzarvs/qconsole/internal/lexer"
)

// Edit is the outcome of one indent decision. Text aliases the input when
// nothing changed.
type Edit struct {
	Text  []rune
	Caret int
	// Depth is the bracket depth the line was indented to.
	Depth int
	// Delta is the change in indent units; negative when units were removed.
	Delta   int
	Changed bool
}

// Engine is immutable and safe for concurrent use.
type Engine struct {
	literals *lexer.Chain
	unit     []rune
	open     string
	close    string
}

// New builds an engine for g. An empty unit means one tab.
func New(g lexer.Grammar, unit string) *Engine {
	if unit == "" {
		unit = "\t"
	}
	open, close := g.OpenBrackets, g.CloseBrackets
	if open == "" && close == "" {
		open, close = "{([", "})]"
	}
	return &Engine{
		literals: lexer.NewChain(
			lexer.NewCommentStrategy(g.LineComment, g.BlockCommentOpen, g.BlockCommentClose),
			lexer.NewStringStrategy(g.StringDelimiters, g.VerbatimPrefix, g.InterpolatedPrefix, g.Escape),
		),
		unit:  []rune(unit),
		open:  open,
		close: close,
	}
}

// Unit returns the indent unit.
func (e *Engine) Unit() string {
	return string(e.unit)
}

func (e *Engine) isOpen(r rune) bool {
	return strings.ContainsRune(e.open, r)
}

func (e *Engine) isClose(r rune) bool {
	return strings.ContainsRune(e.close, r)
}

// Depth returns the bracket depth of text[:end]: open brackets add one and
// close brackets subtract one unless they sit inside a string or comment.
// The result may be negative for unbalanced input.
func (e *Engine) Depth(text []rune, end int) int {
	if end > len(text) {
		end = len(text)
	}
	depth := 0
	count := func(from, to int) {
		for _, r := range text[from:to] {
			switch {
			case e.isOpen(r):
				depth++
			case e.isClose(r):
				depth--
			}
		}
	}
	pos := 0
	for span := range e.literals.Spans(text, 0, end-1) {
		count(pos, span.Start)
		pos = span.End + 1
	}
	if pos < end {
		count(pos, end)
	}
	return depth
}

// Pending reports whether text ends inside an unfinished construct: an
// unclosed bracket, block comment or verbatim string.
func (e *Engine) Pending(text []rune) bool {
	if e.Depth(text, len(text)) > 0 {
		return true
	}
	var last lexer.Span
	found := false
	for span := range e.literals.Spans(text, 0, len(text)-1) {
		last, found = span, true
	}
	return found && last.Open && last.End == len(text)-1
}

// Newline handles a newline just typed at caret-1. The new line gets one
// unit per open bracket, one fewer when it starts with a close bracket.
func (e *Engine) Newline(text []rune, caret int) Edit {
	unchanged := Edit{Text: text, Caret: caret}
	if caret < 1 || caret > len(text) || text[caret-1] != '\n' {
		return unchanged
	}
	depth := e.Depth(text, caret-1)
	i := caret
	for i < len(text) && isHorizontalSpace(text[i]) {
		i++
	}
	if i < len(text) && e.isClose(text[i]) {
		depth--
	}
	unchanged.Depth = depth
	if depth <= 0 {
		return unchanged
	}
	ins := e.units(depth)
	return Edit{
		Text:    splice(text, caret, caret, ins),
		Caret:   caret + len(ins),
		Depth:   depth,
		Delta:   depth,
		Changed: true,
	}
}

// CloseBracket handles a close bracket just typed at caret-1. When the
// bracket is the first non-whitespace rune on its line, the leading indent
// is grown or shrunk to the depth the bracket closes to; otherwise the line
// is left alone.
func (e *Engine) CloseBracket(text []rune, caret int) Edit {
	unchanged := Edit{Text: text, Caret: caret}
	if caret < 1 || caret > len(text) || !e.isClose(text[caret-1]) {
		return unchanged
	}
	bracket := caret - 1
	depth := e.Depth(text, bracket) - 1

	lineStart := bracket
	for lineStart > 0 && text[lineStart-1] != '\n' {
		lineStart--
		if !isHorizontalSpace(text[lineStart]) {
			return unchanged
		}
	}
	unchanged.Depth = depth

	present := 0
	for i := lineStart; i+len(e.unit) <= bracket && hasPrefix(text[i:], e.unit); i += len(e.unit) {
		present++
	}
	delta := depth - present
	switch {
	case delta > 0:
		ins := e.units(delta)
		return Edit{
			Text:    splice(text, bracket, bracket, ins),
			Caret:   caret + len(ins),
			Depth:   depth,
			Delta:   delta,
			Changed: true,
		}
	case delta < 0:
		n := -delta * len(e.unit)
		if avail := bracket - lineStart; n > avail {
			n = avail
		}
		if n == 0 {
			return unchanged
		}
		return Edit{
			Text:    splice(text, bracket-n, bracket, nil),
			Caret:   caret - n,
			Depth:   depth,
			Delta:   delta,
			Changed: true,
		}
	}
	return unchanged
}

// Apply dispatches on the text just inserted before caret. Anything other
// than a single newline or close bracket, pastes included, passes through.
func (e *Engine) Apply(text []rune, caret int, inserted string) Edit {
	r := []rune(inserted)
	if len(r) != 1 {
		return Edit{Text: text, Caret: caret}
	}
	switch {
	case r[0] == '\n':
		return e.Newline(text, caret)
	case e.isClose(r[0]):
		return e.CloseBracket(text, caret)
	}
	return Edit{Text: text, Caret: caret}
}

func (e *Engine) units(n int) []rune {
	out := make([]rune, 0, n*len(e.unit))
	for i := 0; i < n; i++ {
		out = append(out, e.unit...)
	}
	return out
}

// splice returns a new slice with text[from:to] replaced by ins.
func splice(text []rune, from, to int, ins []rune) []rune {
	out := make([]rune, 0, len(text)-(to-from)+len(ins))
	out = append(out, text[:from]...)
	out = append(out, ins...)
	return append(out, text[to:]...)
}

func hasPrefix(s, prefix []rune) bool {
	if len(prefix) == 0 || len(s) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if s[i] != r {
			return false
		}
	}
	return true
}

func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}
