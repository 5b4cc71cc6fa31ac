package lexer

// StyleTag names the highlight class of a span. The values match the theme's
// syntax-* keys.
type StyleTag string

const (
	TagComment  StyleTag = "comment"
	TagString   StyleTag = "string"
	TagOperator StyleTag = "operator"
	TagNumber   StyleTag = "number"
	TagKeyword  StyleTag = "keyword"
)

// Span is one classified token. Start and End are inclusive absolute
// offsets into the full text.
type Span struct {
	Start int
	End   int
	Tag   StyleTag
	// Literal is set for strings and comments.
	Literal bool
	// ToEndOfLine is set for line comments only.
	ToEndOfLine bool
	// Open is set when a multi-line literal (block comment, verbatim string)
	// reached the end of the window without its closing delimiter.
	Open bool
}

// Match describes a token recognised by a strategy. The chain turns it into
// a Span using the cursor boundaries.
type Match struct {
	Tag         StyleTag
	Literal     bool
	ToEndOfLine bool
	Open        bool
}

// Text returns the covered runes of text as a string.
func (s Span) Text(text []rune) string {
	if s.Start < 0 || s.End >= len(text) || s.End < s.Start {
		return ""
	}
	return string(text[s.Start : s.End+1])
}

// EffectiveEnd returns End, or for line comments the last index before the
// next newline, which may lie past the scanned window.
func (s Span) EffectiveEnd(text []rune) int {
	if !s.ToEndOfLine {
		return s.End
	}
	end := s.End
	for end+1 < len(text) && text[end+1] != '\n' {
		end++
	}
	return end
}

// Contains reports whether caret sits within the span, counting the
// position right after its effective end.
func (s Span) Contains(text []rune, caret int) bool {
	return caret >= s.Start && caret <= s.EffectiveEnd(text)+1
}
