// Package lexer classifies partial source text into highlight spans. It
// never fails: unterminated literals consume to a boundary and anything no
// strategy recognises is left as plain text.
package lexer

import "iter"

// numberSuffixes are the type suffixes accepted after numeric literals.
const numberSuffixes = "fFdDmMuUlL"

// Chain runs strategies in priority order over a text window. A Chain is
// immutable after construction and safe for concurrent use; every call to
// Spans owns its Cursor.
type Chain struct {
	strategies []Strategy
	delims     *DelimiterSet
}

// New builds the standard chain for g: comments, strings, symbols, numbers,
// keywords. The order is significant: the first strategy to match wins.
func New(g Grammar) *Chain {
	return NewChain(
		NewCommentStrategy(g.LineComment, g.BlockCommentOpen, g.BlockCommentClose),
		NewStringStrategy(g.StringDelimiters, g.VerbatimPrefix, g.InterpolatedPrefix, g.Escape),
		NewSymbolStrategy(g.Symbols),
		NewNumberStrategy(numberSuffixes),
		NewKeywordStrategy(g.Keywords),
	)
}

// NewChain builds a chain from strategies in the given priority order.
func NewChain(strategies ...Strategy) *Chain {
	groups := make([]string, 0, len(strategies))
	for _, s := range strategies {
		groups = append(groups, s.Delimiters())
	}
	return &Chain{
		strategies: strategies,
		delims:     NewDelimiterSet(groups...),
	}
}

// Delimiters returns the shared delimiter set.
func (ch *Chain) Delimiters() *DelimiterSet {
	return ch.delims
}

// Spans yields the classified spans of text[start:end+1] in order. The range
// is clamped to the text. The sequence may be ranged over repeatedly and
// stopped early.
func (ch *Chain) Spans(text []rune, start, end int) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		start, end, ok := clampRange(len(text), start, end)
		if !ok {
			return
		}
		c := NewCursor(text, start, end, ch.delims)
		for !c.AtEnd() {
			if isSpace(c.Current()) {
				c.Commit()
				c.Rollback()
				continue
			}
			begin := c.Committed() + 1
			matched := false
			for _, s := range ch.strategies {
				m, ok := s.Match(c)
				if ok && c.Committed() >= begin {
					matched = true
					span := Span{
						Start:       begin,
						End:         c.Committed(),
						Tag:         m.Tag,
						Literal:     m.Literal,
						ToEndOfLine: m.ToEndOfLine,
						Open:        m.Open,
					}
					c.Rollback()
					if !yield(span) {
						return
					}
					break
				}
				c.Rollback()
			}
			if !matched {
				// Plain rune: commit it alone and move on.
				c.Commit()
				c.Rollback()
			}
		}
	}
}

// Collect returns all spans of the window.
func (ch *Chain) Collect(text []rune, start, end int) []Span {
	var out []Span
	for span := range ch.Spans(text, start, end) {
		out = append(out, span)
	}
	return out
}

func clampRange(n, start, end int) (int, int, bool) {
	if start < 0 {
		start = 0
	}
	if end >= n {
		end = n - 1
	}
	if n == 0 || end < start {
		return 0, 0, false
	}
	return start, end, true
}
