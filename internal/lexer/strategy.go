package lexer

import "unicode"

// Strategy recognises one family of tokens. Match is called with the
// lookahead on the first uncommitted rune. It commits only after it has
// identified a complete token; on false the chain rolls the cursor back.
//
// Strategies hold no per-call state and may be shared between goroutines.
type Strategy interface {
	Match(c *Cursor) (Match, bool)
	// Delimiters returns the runes that may separate this strategy's tokens.
	Delimiters() string
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\f' || r == '\v' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// boundary reports whether r can sit next to a word-like token.
func boundary(c *Cursor, r rune) bool {
	return c.IsDelimiter(r, true, false)
}
