package lexer

import "unicode"

// sentinel is returned for every read outside the scan window.
const sentinel = ' '

// Cursor scans a bounded window of text. The committed index is the last
// confirmed token boundary; the lookahead index is the tentative read
// position. Strategies move the lookahead with PeekNext and confirm a token
// with Commit. The chain calls Rollback after every attempt.
//
// A Cursor is owned by a single classification pass and must not be shared.
type Cursor struct {
	text      []rune
	end       int
	committed int
	lookahead int
	delims    *DelimiterSet
}

// NewCursor returns a cursor positioned before start.
func NewCursor(text []rune, start, end int, delims *DelimiterSet) *Cursor {
	c := &Cursor{delims: delims}
	c.Reset(text, start, end)
	return c
}

// Reset rewinds the cursor to the beginning of a new window.
func (c *Cursor) Reset(text []rune, start, end int) {
	c.text = text
	c.end = end
	c.committed = start - 1
	c.lookahead = start
}

// Committed returns the last committed index.
func (c *Cursor) Committed() int { return c.committed }

// Lookahead returns the tentative scan position.
func (c *Cursor) Lookahead() int { return c.lookahead }

func (c *Cursor) at(i int) rune {
	if i < 0 || i > c.end || i >= len(c.text) {
		return sentinel
	}
	return c.text[i]
}

// Current returns the rune under the lookahead index.
func (c *Cursor) Current() rune {
	return c.at(c.lookahead)
}

// Previous returns the rune just before the lookahead index. It may read
// before the window start so boundary checks see the real neighbour.
func (c *Cursor) Previous() rune {
	return c.at(c.lookahead - 1)
}

// PrevNonSpace returns the nearest non-whitespace rune before the lookahead,
// or the sentinel if there is none.
func (c *Cursor) PrevNonSpace() rune {
	for i := c.lookahead - 1; i >= 0 && i < len(c.text); i-- {
		if r := c.text[i]; !unicode.IsSpace(r) {
			return r
		}
	}
	return sentinel
}

// PeekNext advances the lookahead by one and returns the new current rune.
func (c *Cursor) PeekNext() rune {
	return c.PeekN(1)
}

// PeekN advances the lookahead by n and returns the new current rune.
func (c *Cursor) PeekN(n int) rune {
	c.lookahead += n
	return c.Current()
}

// Commit confirms everything up to the lookahead index.
func (c *Cursor) Commit() {
	c.committed = min(c.end, c.lookahead)
}

// Rollback returns the lookahead to the first uncommitted index.
func (c *Cursor) Rollback() {
	c.lookahead = c.committed + 1
}

// RollbackBy moves the lookahead back n runes, never below the first
// uncommitted index.
func (c *Cursor) RollbackBy(n int) {
	c.lookahead = max(c.committed+1, c.lookahead-n)
}

// AtEnd reports whether the lookahead has left the window.
func (c *Cursor) AtEnd() bool {
	return c.lookahead > c.end
}

// Consume matches s starting at the current rune. On success the lookahead
// rests on the last rune of s; on failure it is restored.
func (c *Cursor) Consume(s []rune) bool {
	if len(s) == 0 {
		return false
	}
	from := c.lookahead
	for i, r := range s {
		if i > 0 {
			c.PeekNext()
		}
		if c.AtEnd() || c.Current() != r {
			c.lookahead = from
			return false
		}
	}
	return true
}

// IsDelimiter reports whether r separates tokens. orWhitespace and orAlnum
// widen the test to whitespace and to letters/digits respectively.
func (c *Cursor) IsDelimiter(r rune, orWhitespace, orAlnum bool) bool {
	if c.delims != nil && c.delims.Contains(r) {
		return true
	}
	if orWhitespace && unicode.IsSpace(r) {
		return true
	}
	if orAlnum && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return true
	}
	return false
}
