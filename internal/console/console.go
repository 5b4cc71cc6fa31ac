// Package console is the full-screen host: a rune buffer with a caret and a
// scrolled viewport. Each keystroke is routed through the indent engine and
// each frame re-lexes only the visible lines.
package console

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qconsole/internal/config"
	"github.com/kobzarvs/qconsole/internal/gitinfo"
	"github.com/kobzarvs/qconsole/internal/highlight"
	"github.com/kobzarvs/qconsole/internal/indent"
	"github.com/kobzarvs/qconsole/internal/lexer"
	"github.com/kobzarvs/qconsole/internal/logger"
)

type Console struct {
	text  []rune
	caret int

	scroll       int // first visible line
	viewHeight   int
	tabWidth     int
	scrollMargin int

	chain    *lexer.Chain
	renderer *highlight.Renderer
	indent   *indent.Engine

	inLiteral     bool
	filename      string
	branch        string
	dirty         bool
	statusMessage string

	styleMain    tcell.Style
	styleStatus  tcell.Style
	styleLiteral tcell.Style
	styleSyntax  map[lexer.StyleTag]tcell.Style
}

func New(cfg config.Config) *Console {
	c := &Console{}
	c.ApplyConfig(cfg)
	return c
}

// ApplyConfig swaps in new options, theme and grammar. The buffer and
// caret are kept.
func (c *Console) ApplyConfig(cfg config.Config) {
	c.tabWidth = max(cfg.Console.TabWidth, 1)
	c.scrollMargin = cfg.Console.ScrollMargin

	g := cfg.Grammar.Lexer()
	c.chain = lexer.New(g)
	c.renderer = highlight.NewRenderer(c.chain, nil)
	c.indent = indent.New(g, cfg.Console.IndentUnit)

	mainFg := parseColor(cfg.Theme.Foreground, tcell.ColorWhite)
	mainBg := parseColor(cfg.Theme.Background, tcell.ColorBlack)
	statusFg := parseColor(cfg.Theme.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(cfg.Theme.StatuslineBackground, tcell.ColorGray)
	literalFg := parseColor(cfg.Theme.LiteralIndicator, statusFg)
	syntax := func(name string) tcell.Style {
		return tcell.StyleDefault.Foreground(parseColor(name, mainFg)).Background(mainBg)
	}
	c.styleMain = tcell.StyleDefault.Foreground(mainFg).Background(mainBg)
	c.styleStatus = tcell.StyleDefault.Foreground(statusFg).Background(statusBg)
	c.styleLiteral = tcell.StyleDefault.Foreground(literalFg).Background(statusBg).Bold(true)
	c.styleSyntax = map[lexer.StyleTag]tcell.Style{
		lexer.TagKeyword:  syntax(cfg.Theme.SyntaxKeyword),
		lexer.TagString:   syntax(cfg.Theme.SyntaxString),
		lexer.TagComment:  syntax(cfg.Theme.SyntaxComment),
		lexer.TagNumber:   syntax(cfg.Theme.SyntaxNumber),
		lexer.TagOperator: syntax(cfg.Theme.SyntaxOperator),
	}
}

func (c *Console) OpenFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.SetText(string(data))
	c.filename = path
	c.branch = gitinfo.Branch(path)
	logger.Info("file opened", "path", path, "runes", len(c.text))
	return nil
}

func (c *Console) Save() error {
	if c.filename == "" {
		return fmt.Errorf("no file name")
	}
	if err := os.WriteFile(c.filename, []byte(string(c.text)), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", c.filename, err)
	}
	c.dirty = false
	logger.Info("file saved", "path", c.filename)
	return nil
}

// SetText replaces the buffer and puts the caret at the start.
func (c *Console) SetText(s string) {
	c.text = []rune(s)
	c.caret = 0
	c.scroll = 0
	c.dirty = false
	c.inLiteral = false
}

func (c *Console) Text() string {
	return string(c.text)
}

func (c *Console) Caret() int {
	return c.caret
}

// SetCaret moves the caret, clamped to the buffer.
func (c *Console) SetCaret(pos int) {
	c.caret = clamp(pos, 0, len(c.text))
}

// InLiteral reports whether the caret was inside a string or comment when
// the last frame was rendered.
func (c *Console) InLiteral() bool {
	return c.inLiteral
}

func (c *Console) Filename() string {
	return c.filename
}

// Scroll is the first visible line.
func (c *Console) Scroll() int {
	return c.scroll
}

// SetScroll sets the first visible line; the next frame clamps it so the
// caret stays in view.
func (c *Console) SetScroll(line int) {
	c.scroll = clamp(line, 0, lineCount(c.text)-1)
}

func (c *Console) Dirty() bool {
	return c.dirty
}

func (c *Console) SetStatusMessage(msg string) {
	c.statusMessage = msg
}

// HandleKey applies one key event and reports whether the console should
// quit.
func (c *Console) HandleKey(ev *tcell.EventKey) bool {
	c.statusMessage = ""
	switch ev.Key() {
	case tcell.KeyCtrlQ, tcell.KeyCtrlC:
		return true
	case tcell.KeyCtrlS:
		if err := c.Save(); err != nil {
			c.statusMessage = err.Error()
			logger.Warn("save failed", "error", err)
		} else {
			c.statusMessage = "saved"
		}
	case tcell.KeyRune:
		c.insert(string(ev.Rune()))
	case tcell.KeyEnter:
		c.insert("\n")
	case tcell.KeyTab:
		c.insert(c.indent.Unit())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.backspace()
	case tcell.KeyDelete:
		c.deleteChar()
	case tcell.KeyLeft:
		c.SetCaret(c.caret - 1)
	case tcell.KeyRight:
		c.SetCaret(c.caret + 1)
	case tcell.KeyUp:
		c.moveVertical(-1)
	case tcell.KeyDown:
		c.moveVertical(1)
	case tcell.KeyPgUp:
		c.moveVertical(-max(c.viewHeight-1, 1))
	case tcell.KeyPgDn:
		c.moveVertical(max(c.viewHeight-1, 1))
	case tcell.KeyHome, tcell.KeyCtrlA:
		c.caret = lineStart(c.text, c.caret)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		c.caret = lineEnd(c.text, c.caret)
	}
	return false
}

// Insert types s at the caret. A single newline or close bracket is then
// handed to the indent engine.
func (c *Console) Insert(s string) {
	c.insert(s)
}

func (c *Console) insert(s string) {
	if s == "" {
		return
	}
	ins := []rune(s)
	text := make([]rune, 0, len(c.text)+len(ins))
	text = append(text, c.text[:c.caret]...)
	text = append(text, ins...)
	text = append(text, c.text[c.caret:]...)
	c.text = text
	c.caret += len(ins)
	c.dirty = true

	edit := c.indent.Apply(c.text, c.caret, s)
	if edit.Changed {
		logger.Debug("indent applied", "depth", edit.Depth, "delta", edit.Delta, "caret", edit.Caret)
	}
	c.text = edit.Text
	c.caret = edit.Caret
}

func (c *Console) backspace() {
	if c.caret == 0 {
		return
	}
	c.text = append(c.text[:c.caret-1], c.text[c.caret:]...)
	c.caret--
	c.dirty = true
}

func (c *Console) deleteChar() {
	if c.caret >= len(c.text) {
		return
	}
	c.text = append(c.text[:c.caret], c.text[c.caret+1:]...)
	c.dirty = true
}

// moveVertical keeps the visual column where the target line allows.
func (c *Console) moveVertical(lines int) {
	row, _ := position(c.text, c.caret)
	start := lineStart(c.text, c.caret)
	want := visualCol(c.text[start:c.caret], c.caret-start, c.tabWidth)
	target := clamp(row+lines, 0, lineCount(c.text)-1)
	ts := lineOffset(c.text, target)
	te := lineEnd(c.text, ts)
	c.caret = ts + visualToLogicalCol(c.text[ts:te], want, c.tabWidth)
}

func (c *Console) ensureCaretVisible(viewHeight int) {
	if viewHeight <= 0 {
		return
	}
	row, _ := position(c.text, c.caret)
	margin := c.scrollMargin
	if margin*2 >= viewHeight {
		margin = (viewHeight - 1) / 2
	}
	if row < c.scroll+margin {
		c.scroll = row - margin
	}
	if row >= c.scroll+viewHeight-margin {
		c.scroll = row - viewHeight + margin + 1
	}
	if maxScroll := max(lineCount(c.text)-viewHeight, 0); c.scroll > maxScroll {
		c.scroll = maxScroll
	}
	if c.scroll < 0 {
		c.scroll = 0
	}
}

// VisibleRange returns the inclusive rune range of the lines in view and
// the number of lines scrolled off above it. end < start when the window
// holds no text.
func (c *Console) VisibleRange() (start, end, leadingBlankLines int) {
	start = lineOffset(c.text, c.scroll)
	h := max(c.viewHeight, 1)
	last := min(c.scroll+h-1, lineCount(c.text)-1)
	end = lineEnd(c.text, lineOffset(c.text, last)) - 1
	return start, end, c.scroll
}

// Fragment renders the visible lines with m, padded for the scroll offset.
func (c *Console) Fragment(m highlight.Markup) (string, bool) {
	start, end, lead := c.VisibleRange()
	r := highlight.NewRenderer(c.chain, m)
	return r.Render(c.text, start, end, lead, c.caret)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
