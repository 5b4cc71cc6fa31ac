package highlight

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kobzarvs/qconsole/internal/config"
	"github.com/kobzarvs/qconsole/internal/lexer"
)

// Palette maps style tags to "#RRGGBB" colours.
type Palette map[lexer.StyleTag]string

// PaletteFromTheme picks the syntax colours out of a theme.
func PaletteFromTheme(t config.Theme) Palette {
	return Palette{
		lexer.TagComment:  t.SyntaxComment,
		lexer.TagString:   t.SyntaxString,
		lexer.TagOperator: t.SyntaxOperator,
		lexer.TagNumber:   t.SyntaxNumber,
		lexer.TagKeyword:  t.SyntaxKeyword,
	}
}

// TagMarkup emits rich-text colour tags: <color=#RRGGBB>text</color>.
// Tags without a colour fall back to <tag>text</tag>.
type TagMarkup struct {
	Palette Palette
}

func (m TagMarkup) Wrap(tag lexer.StyleTag, text string) string {
	if c := m.Palette[tag]; c != "" {
		return fmt.Sprintf("<color=%s>%s</color>", c, text)
	}
	return fmt.Sprintf("<%s>%s</%s>", tag, text, tag)
}

// ANSIMarkup colours spans with terminal escape sequences.
type ANSIMarkup struct {
	styles map[lexer.StyleTag]lipgloss.Style
}

// NewANSIMarkup builds styles for w. A nil profile keeps lipgloss' own
// terminal detection.
func NewANSIMarkup(w io.Writer, p Palette, profile *termenv.Profile) *ANSIMarkup {
	r := lipgloss.NewRenderer(w)
	if profile != nil {
		r.SetColorProfile(*profile)
	}
	m := &ANSIMarkup{styles: make(map[lexer.StyleTag]lipgloss.Style, len(p))}
	for tag, c := range p {
		if c == "" {
			continue
		}
		m.styles[tag] = r.NewStyle().
			Foreground(lipgloss.Color(c)).
			TabWidth(lipgloss.NoTabConversion)
	}
	return m
}

func (m *ANSIMarkup) Wrap(tag lexer.StyleTag, text string) string {
	style, ok := m.styles[tag]
	if !ok {
		return text
	}
	// Render line by line: lipgloss pads multi-line blocks to equal width.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
