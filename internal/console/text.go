package console

import "github.com/mattn/go-runewidth"

// position returns the zero-based line and rune column of pos.
func position(text []rune, pos int) (row, col int) {
	pos = clamp(pos, 0, len(text))
	for i := 0; i < pos; i++ {
		if text[i] == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return row, col
}

func lineStart(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for pos > 0 && text[pos-1] != '\n' {
		pos--
	}
	return pos
}

// lineEnd returns the index of the newline ending pos's line, or len(text).
func lineEnd(text []rune, pos int) int {
	pos = clamp(pos, 0, len(text))
	for pos < len(text) && text[pos] != '\n' {
		pos++
	}
	return pos
}

func lineCount(text []rune) int {
	n := 1
	for _, r := range text {
		if r == '\n' {
			n++
		}
	}
	return n
}

// lineOffset returns where line row starts; rows past the end map to
// len(text).
func lineOffset(text []rune, row int) int {
	if row <= 0 {
		return 0
	}
	for i, r := range text {
		if r == '\n' {
			row--
			if row == 0 {
				return i + 1
			}
		}
	}
	return len(text)
}

func visualCol(line []rune, logicalCol int, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	logicalCol = clamp(logicalCol, 0, len(line))
	col := 0
	for i := 0; i < logicalCol; i++ {
		col += cellWidth(line[i], col, tabWidth)
	}
	return col
}

func visualToLogicalCol(line []rune, visualX int, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	if visualX <= 0 {
		return 0
	}
	col := 0
	for i, r := range line {
		advance := cellWidth(r, col, tabWidth)
		if col+advance > visualX {
			return i
		}
		col += advance
		if col >= visualX {
			return i + 1
		}
	}
	return len(line)
}

// cellWidth is the number of screen cells r takes at visual column col.
func cellWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		return tabWidth - (col % tabWidth)
	}
	return max(runewidth.RuneWidth(r), 1)
}
