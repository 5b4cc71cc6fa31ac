package lexer

import "strings"

// closesOperand lists runes after which a sign is a binary operator.
const closesOperand = `)]}"'`

// NumberStrategy matches integer, real and hex literals with optional type
// suffixes. The rune before the literal must be whitespace or a delimiter.
type NumberStrategy struct {
	suffixes string
}

func NewNumberStrategy(suffixes string) *NumberStrategy {
	return &NumberStrategy{suffixes: suffixes}
}

func (s *NumberStrategy) Delimiters() string {
	return ""
}

func (s *NumberStrategy) Match(c *Cursor) (Match, bool) {
	if !boundary(c, c.Previous()) {
		return Match{}, false
	}
	r := c.Current()
	if r == '+' || r == '-' {
		if !unarySign(c) {
			return Match{}, false
		}
		r = c.PeekNext()
	}
	if !isDigit(r) {
		return Match{}, false
	}

	if r == '0' {
		from := c.Lookahead()
		x := c.PeekNext()
		if (x == 'x' || x == 'X') && isHexDigit(c.PeekNext()) {
			for {
				if h := c.PeekNext(); !isHexDigit(h) && h != '_' {
					break
				}
			}
			return s.finish(c)
		}
		c.RollbackBy(c.Lookahead() - from)
	}

	seenDot, seenExp := false, false
body:
	for {
		r := c.PeekNext()
		switch {
		case isDigit(r) || r == '_':
		case r == '.' && !seenDot && !seenExp:
			if !isDigit(c.PeekNext()) {
				c.RollbackBy(1)
				break body
			}
			seenDot = true
		case (r == 'e' || r == 'E') && !seenExp:
			n := c.PeekNext()
			if n == '+' || n == '-' {
				if !isDigit(c.PeekNext()) {
					c.RollbackBy(2)
					break body
				}
			} else if !isDigit(n) {
				c.RollbackBy(1)
				break body
			}
			seenExp = true
		default:
			break body
		}
	}
	return s.finish(c)
}

// finish consumes suffix runes and commits if the literal ends on a
// boundary. The lookahead must rest on the first rune after the digits.
func (s *NumberStrategy) finish(c *Cursor) (Match, bool) {
	for n := 0; n < 2 && !c.AtEnd() && strings.ContainsRune(s.suffixes, c.Current()); n++ {
		c.PeekNext()
	}
	if !c.AtEnd() && !boundary(c, c.Current()) {
		return Match{}, false
	}
	c.RollbackBy(1)
	c.Commit()
	return Match{Tag: TagNumber}, true
}

func unarySign(c *Cursor) bool {
	p := c.PrevNonSpace()
	if p == sentinel {
		return true
	}
	return c.IsDelimiter(p, false, false) && !strings.ContainsRune(closesOperand, p)
}
