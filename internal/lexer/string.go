package lexer

import "strings"

// StringStrategy matches quoted literals: plain and char literals with
// escapes, verbatim literals (prefix, doubled quote as escape, may span
// lines) and interpolated literals (prefix, {holes}). Unterminated plain and
// interpolated literals stop at the end of the line; verbatim ones run to
// the end of the window.
type StringStrategy struct {
	quotes       string
	verbatim     rune
	interpolated rune
	escape       rune
}

func NewStringStrategy(quotes string, verbatim, interpolated, escape rune) *StringStrategy {
	return &StringStrategy{
		quotes:       quotes,
		verbatim:     verbatim,
		interpolated: interpolated,
		escape:       escape,
	}
}

func (s *StringStrategy) Delimiters() string {
	var b strings.Builder
	b.WriteString(s.quotes)
	if s.verbatim != 0 {
		b.WriteRune(s.verbatim)
	}
	if s.interpolated != 0 {
		b.WriteRune(s.interpolated)
	}
	return b.String()
}

func (s *StringStrategy) isQuote(r rune) bool {
	return r != 0 && strings.ContainsRune(s.quotes, r)
}

func (s *StringStrategy) Match(c *Cursor) (Match, bool) {
	var verbatim, interpolated bool
	// Prefixes may appear in either order, at most once each.
	for {
		r := c.Current()
		if s.verbatim != 0 && r == s.verbatim && !verbatim {
			verbatim = true
		} else if s.interpolated != 0 && r == s.interpolated && !interpolated {
			interpolated = true
		} else {
			break
		}
		c.PeekNext()
	}
	quote := c.Current()
	if c.AtEnd() || !s.isQuote(quote) {
		return Match{}, false
	}

	holes := 0
	open := false
	for {
		r := c.PeekNext()
		if c.AtEnd() {
			c.RollbackBy(1)
			open = verbatim
			break
		}
		if r == '\n' && !verbatim {
			c.RollbackBy(1)
			break
		}
		if interpolated && r == '{' {
			if c.PeekNext() == '{' && holes == 0 {
				continue
			}
			c.RollbackBy(1)
			holes++
			continue
		}
		if interpolated && r == '}' && holes > 0 {
			holes--
			continue
		}
		if !verbatim && s.escape != 0 && r == s.escape {
			next := c.PeekNext()
			if c.AtEnd() || next == '\n' {
				c.RollbackBy(1)
				break
			}
			continue
		}
		if r == quote && holes == 0 {
			if verbatim {
				if c.PeekNext() == quote && !c.AtEnd() {
					continue
				}
				c.RollbackBy(1)
			}
			break
		}
	}
	c.Commit()
	return Match{Tag: TagString, Literal: true, Open: open}, true
}
