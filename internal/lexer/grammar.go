package lexer

// Grammar holds the data tables that retarget the lexer at a C-family
// language. Empty fields disable the corresponding construct.
type Grammar struct {
	Keywords          []string
	Symbols           []string
	LineComment       string
	BlockCommentOpen  string
	BlockCommentClose string
	// StringDelimiters lists the quote runes, e.g. `"'`.
	StringDelimiters   string
	VerbatimPrefix     rune
	InterpolatedPrefix rune
	Escape             rune
	OpenBrackets       string
	CloseBrackets      string
}

// DefaultGrammar returns the built-in C#-family scripting grammar.
func DefaultGrammar() Grammar {
	return Grammar{
		Keywords: []string{
			"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
			"char", "checked", "class", "const", "continue", "decimal", "default",
			"delegate", "do", "double", "else", "enum", "event", "explicit",
			"extern", "false", "finally", "fixed", "float", "for", "foreach",
			"goto", "if", "implicit", "in", "int", "interface", "internal", "is",
			"lock", "long", "namespace", "new", "null", "object", "operator",
			"out", "override", "params", "private", "protected", "public",
			"readonly", "ref", "return", "sbyte", "sealed", "short", "sizeof",
			"stackalloc", "static", "string", "struct", "switch", "this", "throw",
			"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe",
			"ushort", "using", "var", "virtual", "void", "volatile", "while",
			"async", "await", "dynamic", "get", "set", "nameof", "yield", "when",
		},
		Symbols: []string{
			"<<=", ">>=", "??=", "...",
			"++", "--", "&&", "||", "==", "!=", "<=", ">=", "+=", "-=", "*=",
			"/=", "%=", "&=", "|=", "^=", "<<", ">>", "=>", "??", "?.", "::",
			"+", "-", "*", "/", "%", "&", "|", "^", "!", "~", "=", "<", ">",
			"?", ":", ";", ",", ".", "(", ")", "[", "]", "{", "}",
		},
		LineComment:        "//",
		BlockCommentOpen:   "/*",
		BlockCommentClose:  "*/",
		StringDelimiters:   `"'`,
		VerbatimPrefix:     '@',
		InterpolatedPrefix: '$',
		Escape:             '\\',
		OpenBrackets:       "{([",
		CloseBrackets:      "})]",
	}
}

// DelimiterSet is the union of the runes strategies declare as token
// separators. It is read-only once built.
type DelimiterSet struct {
	runes map[rune]struct{}
}

// NewDelimiterSet builds a set from the given rune strings.
func NewDelimiterSet(groups ...string) *DelimiterSet {
	d := &DelimiterSet{runes: make(map[rune]struct{})}
	for _, g := range groups {
		for _, r := range g {
			d.runes[r] = struct{}{}
		}
	}
	return d
}

// Contains reports membership.
func (d *DelimiterSet) Contains(r rune) bool {
	if d == nil {
		return false
	}
	_, ok := d.runes[r]
	return ok
}
