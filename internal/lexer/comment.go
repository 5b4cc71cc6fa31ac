package lexer

// CommentStrategy matches line comments and block comments. An unterminated
// block comment runs to the end of the window.
type CommentStrategy struct {
	line       []rune
	blockOpen  []rune
	blockClose []rune
}

func NewCommentStrategy(line, blockOpen, blockClose string) *CommentStrategy {
	s := &CommentStrategy{line: []rune(line)}
	if blockOpen != "" && blockClose != "" {
		s.blockOpen = []rune(blockOpen)
		s.blockClose = []rune(blockClose)
	}
	return s
}

func (s *CommentStrategy) Delimiters() string {
	return string(s.line) + string(s.blockOpen) + string(s.blockClose)
}

func (s *CommentStrategy) Match(c *Cursor) (Match, bool) {
	if c.Consume(s.line) {
		for {
			r := c.PeekNext()
			if c.AtEnd() || r == '\n' {
				c.RollbackBy(1)
				break
			}
		}
		c.Commit()
		return Match{Tag: TagComment, Literal: true, ToEndOfLine: true}, true
	}
	if c.Consume(s.blockOpen) {
		open := false
		for {
			c.PeekNext()
			if c.AtEnd() {
				c.RollbackBy(1)
				open = true
				break
			}
			if c.Consume(s.blockClose) {
				break
			}
		}
		c.Commit()
		return Match{Tag: TagComment, Literal: true, Open: open}, true
	}
	return Match{}, false
}
