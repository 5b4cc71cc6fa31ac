package lexer

import (
	"sort"
	"strings"
)

// SymbolStrategy matches operators and punctuation from a fixed table,
// longest first.
type SymbolStrategy struct {
	symbols [][]rune
	delims  string
}

func NewSymbolStrategy(symbols []string) *SymbolStrategy {
	s := &SymbolStrategy{}
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, sym := range symbols {
		if sym == "" {
			continue
		}
		rs := []rune(sym)
		s.symbols = append(s.symbols, rs)
		for _, r := range rs {
			if !seen[r] {
				seen[r] = true
				b.WriteRune(r)
			}
		}
	}
	sort.SliceStable(s.symbols, func(i, j int) bool {
		return len(s.symbols[i]) > len(s.symbols[j])
	})
	s.delims = b.String()
	return s
}

func (s *SymbolStrategy) Delimiters() string {
	return s.delims
}

func (s *SymbolStrategy) Match(c *Cursor) (Match, bool) {
	first := c.Current()
	for _, sym := range s.symbols {
		if sym[0] != first {
			continue
		}
		if c.Consume(sym) {
			c.Commit()
			return Match{Tag: TagOperator}, true
		}
	}
	return Match{}, false
}
