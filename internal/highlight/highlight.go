// Package highlight turns lexer spans into styled text for a visible window
// and reports whether the caret sits inside a string or comment.
package highlight

import (
	"strings"

	"github.com/kobzarvs/qconsole/internal/lexer"
)

// Segment is a run of the window: either plain text (Tag empty) or one span.
type Segment struct {
	Start int
	Text  string
	Tag   lexer.StyleTag
}

// Styled reports whether the segment came from a span.
func (s Segment) Styled() bool {
	return s.Tag != ""
}

// Markup wraps styled text in open/close markers keyed by tag.
type Markup interface {
	Wrap(tag lexer.StyleTag, text string) string
}

// Renderer drives a lexer chain over a window.
type Renderer struct {
	chain  *lexer.Chain
	markup Markup
}

func NewRenderer(chain *lexer.Chain, markup Markup) *Renderer {
	return &Renderer{chain: chain, markup: markup}
}

// Segments splits text[start:end+1] into plain and styled runs. The second
// result is the literal flag of the last span whose extent, counting one
// past its effective end, holds caret.
func (r *Renderer) Segments(text []rune, start, end, caret int) ([]Segment, bool) {
	if start < 0 {
		start = 0
	}
	if end >= len(text) {
		end = len(text) - 1
	}
	var segs []Segment
	inLiteral := false
	pos := start
	for span := range r.chain.Spans(text, start, end) {
		if span.Start > pos {
			segs = append(segs, Segment{Start: pos, Text: string(text[pos:span.Start])})
		}
		segs = append(segs, Segment{Start: span.Start, Text: span.Text(text), Tag: span.Tag})
		pos = span.End + 1
		if span.Contains(text, caret) {
			inLiteral = span.Literal
		}
	}
	if end >= pos {
		segs = append(segs, Segment{Start: pos, Text: string(text[pos : end+1])})
	}
	return segs, inLiteral
}

// Render returns the window with every span wrapped by the markup,
// preceded by leadingBlankLines newlines so the fragment lines up with a
// scrolled viewport.
func (r *Renderer) Render(text []rune, start, end, leadingBlankLines, caret int) (string, bool) {
	segs, inLiteral := r.Segments(text, start, end, caret)
	var b strings.Builder
	for i := 0; i < leadingBlankLines; i++ {
		b.WriteByte('\n')
	}
	for _, seg := range segs {
		if seg.Styled() && r.markup != nil {
			b.WriteString(r.markup.Wrap(seg.Tag, seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String(), inLiteral
}

// RenderString is Render over a string.
func (r *Renderer) RenderString(text string, start, end, leadingBlankLines, caret int) (string, bool) {
	return r.Render([]rune(text), start, end, leadingBlankLines, caret)
}
