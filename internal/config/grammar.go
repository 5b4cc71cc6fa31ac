package config

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/kobzarvs/qconsole/internal/lexer"
)

// GrammarOptions is the [grammar] table. Single-rune fields are strings so
// they read naturally in TOML; only the first rune is used.
type GrammarOptions struct {
	Grammar            string   `toml:"grammar"`
	Keywords           []string `toml:"keywords"`
	Symbols            []string `toml:"symbols"`
	LineComment        string   `toml:"line-comment"`
	BlockCommentOpen   string   `toml:"block-comment-open"`
	BlockCommentClose  string   `toml:"block-comment-close"`
	StringDelimiters   string   `toml:"string-delimiters"`
	VerbatimPrefix     string   `toml:"verbatim-prefix"`
	InterpolatedPrefix string   `toml:"interpolated-prefix"`
	Escape             string   `toml:"escape"`
	OpenBrackets       string   `toml:"open-brackets"`
	CloseBrackets      string   `toml:"close-brackets"`
}

func DefaultGrammar() GrammarOptions {
	g := lexer.DefaultGrammar()
	return GrammarOptions{
		Keywords:           append([]string(nil), g.Keywords...),
		Symbols:            append([]string(nil), g.Symbols...),
		LineComment:        g.LineComment,
		BlockCommentOpen:   g.BlockCommentOpen,
		BlockCommentClose:  g.BlockCommentClose,
		StringDelimiters:   g.StringDelimiters,
		VerbatimPrefix:     runeString(g.VerbatimPrefix),
		InterpolatedPrefix: runeString(g.InterpolatedPrefix),
		Escape:             runeString(g.Escape),
		OpenBrackets:       g.OpenBrackets,
		CloseBrackets:      g.CloseBrackets,
	}
}

// Lexer converts the options into the lexer's grammar tables.
func (g GrammarOptions) Lexer() lexer.Grammar {
	return lexer.Grammar{
		Keywords:           g.Keywords,
		Symbols:            g.Symbols,
		LineComment:        g.LineComment,
		BlockCommentOpen:   g.BlockCommentOpen,
		BlockCommentClose:  g.BlockCommentClose,
		StringDelimiters:   g.StringDelimiters,
		VerbatimPrefix:     firstRune(g.VerbatimPrefix),
		InterpolatedPrefix: firstRune(g.InterpolatedPrefix),
		Escape:             firstRune(g.Escape),
		OpenBrackets:       g.OpenBrackets,
		CloseBrackets:      g.CloseBrackets,
	}
}

func (g GrammarOptions) isZero() bool {
	return g.Grammar == "" && len(g.Keywords) == 0 && len(g.Symbols) == 0 &&
		g.LineComment == "" && g.BlockCommentOpen == "" && g.BlockCommentClose == "" &&
		g.StringDelimiters == "" && g.VerbatimPrefix == "" && g.InterpolatedPrefix == "" &&
		g.Escape == "" && g.OpenBrackets == "" && g.CloseBrackets == ""
}

func mergeGrammar(dst *GrammarOptions, src GrammarOptions) {
	if len(src.Keywords) > 0 {
		dst.Keywords = src.Keywords
	}
	if len(src.Symbols) > 0 {
		dst.Symbols = src.Symbols
	}
	if src.LineComment != "" {
		dst.LineComment = src.LineComment
	}
	if src.BlockCommentOpen != "" {
		dst.BlockCommentOpen = src.BlockCommentOpen
	}
	if src.BlockCommentClose != "" {
		dst.BlockCommentClose = src.BlockCommentClose
	}
	if src.StringDelimiters != "" {
		dst.StringDelimiters = src.StringDelimiters
	}
	if src.VerbatimPrefix != "" {
		dst.VerbatimPrefix = src.VerbatimPrefix
	}
	if src.InterpolatedPrefix != "" {
		dst.InterpolatedPrefix = src.InterpolatedPrefix
	}
	if src.Escape != "" {
		dst.Escape = src.Escape
	}
	if src.OpenBrackets != "" {
		dst.OpenBrackets = src.OpenBrackets
	}
	if src.CloseBrackets != "" {
		dst.CloseBrackets = src.CloseBrackets
	}
}

func GrammarPath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "grammar", name+".toml"), nil
}

// LoadGrammar reads grammar/<name>.toml. Like themes, the file may hold the
// fields at the top level or under a [grammar] table.
func LoadGrammar(name string) (GrammarOptions, error) {
	path, err := GrammarPath(name)
	if err != nil {
		return GrammarOptions{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return GrammarOptions{}, err
	}
	var g GrammarOptions
	if _, err := toml.Decode(string(data), &g); err == nil && !g.isZero() {
		return g, nil
	}
	var wrap struct {
		Grammar GrammarOptions `toml:"grammar"`
	}
	if _, err := toml.Decode(string(data), &wrap); err != nil {
		return GrammarOptions{}, fmt.Errorf("parse grammar %s: %w", name, err)
	}
	return wrap.Grammar, nil
}

func firstRune(s string) rune {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func runeString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}
