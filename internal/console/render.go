package console

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/qconsole/internal/lexer"
)

// Render paints the visible lines and the status line, and refreshes the
// caret-in-literal flag.
func (c *Console) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	statusY := h - 1
	viewHeight := max(h-1, 0)
	c.viewHeight = viewHeight
	c.ensureCaretVisible(viewHeight)

	s.SetStyle(c.styleMain)
	s.Clear()

	start, end, _ := c.VisibleRange()
	segs, inLiteral := c.renderer.Segments(c.text, start, end, c.caret)
	c.inLiteral = inLiteral

	tags := make([]lexer.StyleTag, max(end-start+1, 0))
	for _, seg := range segs {
		if !seg.Styled() {
			continue
		}
		for i := range []rune(seg.Text) {
			tags[seg.Start-start+i] = seg.Tag
		}
	}

	x, y, col := 0, 0, 0
	for i := start; i <= end && y < viewHeight; i++ {
		r := c.text[i]
		if r == '\n' {
			clearFrom(s, x, y, w, c.styleMain)
			x, y, col = 0, y+1, 0
			continue
		}
		style := c.styleMain
		if tag := tags[i-start]; tag != "" {
			if st, ok := c.styleSyntax[tag]; ok {
				style = st
			}
		}
		width := cellWidth(r, col, c.tabWidth)
		if r == '\t' {
			for j := 0; j < width; j++ {
				if x+j < w {
					s.SetContent(x+j, y, ' ', nil, style)
				}
			}
		} else if x+width <= w {
			s.SetContent(x, y, r, nil, style)
		}
		x += width
		col += width
	}
	if y < viewHeight {
		clearFrom(s, x, y, w, c.styleMain)
	}

	if statusY >= 0 {
		c.renderStatusline(s, w, statusY)
	}

	row, _ := position(c.text, c.caret)
	cy := row - c.scroll
	if cy < 0 || cy >= viewHeight {
		s.HideCursor()
		s.Show()
		return
	}
	ls := lineStart(c.text, c.caret)
	cx := min(visualCol(c.text[ls:c.caret], c.caret-ls, c.tabWidth), w-1)
	s.SetCursorStyle(tcell.CursorStyleSteadyBar)
	s.ShowCursor(cx, cy)
	s.Show()
}

func (c *Console) renderStatusline(s tcell.Screen, w, y int) {
	name := c.filename
	if name == "" {
		name = "[scratch]"
	} else {
		name = filepath.Base(name)
	}
	dirty := ""
	if c.dirty {
		dirty = "*"
	}
	status := fmt.Sprintf(" QCONSOLE | %s%s ", name, dirty)
	if c.branch != "" {
		status += "| " + c.branch + " "
	}
	if c.statusMessage != "" {
		status += "| " + c.statusMessage + " "
	}
	row, _ := position(c.text, c.caret)
	ls := lineStart(c.text, c.caret)
	col := visualCol(c.text[ls:c.caret], c.caret-ls, c.tabWidth) + 1
	right := fmt.Sprintf(" Ln %d, Col %d ", row+1, col)
	literal := ""
	if c.inLiteral {
		literal = literalBadge
		right = " " + literal + " |" + right
	}

	line := composeStatusLine(status, right, w)
	badgeAt := -1
	if literal != "" {
		badgeAt = strings.Index(string(line), literal)
		if badgeAt >= 0 {
			badgeAt = len([]rune(string(line)[:badgeAt]))
		}
	}
	for x, r := range line {
		if x >= w {
			break
		}
		style := c.styleStatus
		if badgeAt >= 0 && x >= badgeAt && x < badgeAt+len([]rune(literal)) {
			style = c.styleLiteral
		}
		s.SetContent(x, y, r, nil, style)
	}
}

// literalBadge marks the caret as inside a string or comment.
const literalBadge = "LITERAL"

func clearFrom(s tcell.Screen, x, y, w int, style tcell.Style) {
	for ; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

func composeStatusLine(left, right string, width int) []rune {
	if width <= 0 {
		return nil
	}
	leftRunes := []rune(left)
	rightRunes := []rune(right)
	if len(leftRunes)+len(rightRunes) > width {
		if len(rightRunes) >= width {
			rightRunes = rightRunes[len(rightRunes)-width:]
			leftRunes = nil
		} else {
			leftRunes = leftRunes[:width-len(rightRunes)]
		}
	}
	line := make([]rune, 0, width)
	line = append(line, leftRunes...)
	for i := len(leftRunes) + len(rightRunes); i < width; i++ {
		line = append(line, ' ')
	}
	return append(line, rightRunes...)
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		v, err := strconv.ParseUint(name[1:], 16, 32)
		if err != nil {
			return fallback
		}
		return tcell.NewHexColor(int32(v))
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
