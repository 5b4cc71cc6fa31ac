package lexer

import "strings"

// KeywordStrategy matches whole words from a fixed set. The word must be
// bounded by whitespace or delimiters on both sides.
type KeywordStrategy struct {
	words  map[string]struct{}
	maxLen int
}

func NewKeywordStrategy(keywords []string) *KeywordStrategy {
	s := &KeywordStrategy{words: make(map[string]struct{}, len(keywords))}
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		s.words[kw] = struct{}{}
		s.maxLen = max(s.maxLen, len([]rune(kw)))
	}
	return s
}

func (s *KeywordStrategy) Delimiters() string {
	return ""
}

func (s *KeywordStrategy) Match(c *Cursor) (Match, bool) {
	if len(s.words) == 0 || !boundary(c, c.Previous()) {
		return Match{}, false
	}
	var b strings.Builder
	n := 0
	for r := c.Current(); !c.AtEnd() && isIdentRune(r); r = c.PeekNext() {
		if n == s.maxLen {
			return Match{}, false
		}
		b.WriteRune(r)
		n++
	}
	if n == 0 || !boundary(c, c.Current()) {
		return Match{}, false
	}
	if _, ok := s.words[b.String()]; !ok {
		return Match{}, false
	}
	c.RollbackBy(1)
	c.Commit()
	return Match{Tag: TagKeyword}, true
}
