package lexer

import "testing"

func TestCursorSentinelPastEnd(t *testing.T) {
	text := []rune("abc")
	c := NewCursor(text, 0, 1, nil)
	if got := c.Current(); got != 'a' {
		t.Fatalf("Current = %q, want 'a'", got)
	}
	if got := c.Previous(); got != sentinel {
		t.Fatalf("Previous at start = %q, want sentinel", got)
	}
	if got := c.PeekNext(); got != 'b' {
		t.Fatalf("PeekNext = %q, want 'b'", got)
	}
	// 'c' exists in the text but lies outside the window.
	if got := c.PeekNext(); got != sentinel {
		t.Fatalf("PeekNext past window = %q, want sentinel", got)
	}
	if !c.AtEnd() {
		t.Fatalf("AtEnd = false, want true")
	}
	if got := c.PeekN(10); got != sentinel {
		t.Fatalf("PeekN far past window = %q, want sentinel", got)
	}
}

func TestCursorCommitClampsToEnd(t *testing.T) {
	c := NewCursor([]rune("abcdef"), 1, 3, nil)
	if c.Committed() != 0 {
		t.Fatalf("Committed = %d, want 0", c.Committed())
	}
	c.PeekN(5)
	c.Commit()
	if c.Committed() != 3 {
		t.Fatalf("Committed = %d, want 3", c.Committed())
	}
	c.Rollback()
	if c.Lookahead() != 4 {
		t.Fatalf("Lookahead = %d, want 4", c.Lookahead())
	}
}

func TestCursorRollbackByFloor(t *testing.T) {
	c := NewCursor([]rune("abcdef"), 0, 5, nil)
	c.PeekN(2)
	c.Commit()
	c.PeekN(3)
	c.RollbackBy(10)
	if c.Lookahead() != c.Committed()+1 {
		t.Fatalf("Lookahead = %d, want %d", c.Lookahead(), c.Committed()+1)
	}
	c.PeekN(2)
	c.RollbackBy(1)
	if c.Lookahead() != 4 {
		t.Fatalf("Lookahead = %d, want 4", c.Lookahead())
	}
}

func TestCursorConsume(t *testing.T) {
	c := NewCursor([]rune("/*x*/"), 0, 4, nil)
	if c.Consume([]rune("//")) {
		t.Fatalf("Consume(//) = true, want false")
	}
	if c.Lookahead() != 0 {
		t.Fatalf("Lookahead after failed Consume = %d, want 0", c.Lookahead())
	}
	if !c.Consume([]rune("/*")) {
		t.Fatalf("Consume(/*) = false, want true")
	}
	if c.Lookahead() != 1 {
		t.Fatalf("Lookahead after Consume = %d, want 1", c.Lookahead())
	}
}

func TestCursorConsumeStopsAtWindow(t *testing.T) {
	c := NewCursor([]rune("*/"), 0, 0, nil)
	if c.Consume([]rune("*/")) {
		t.Fatalf("Consume across window end = true, want false")
	}
}

func TestCursorIsDelimiter(t *testing.T) {
	c := NewCursor([]rune(""), 0, -1, NewDelimiterSet("+-", "("))
	tests := []struct {
		r                     rune
		orWhitespace, orAlnum bool
		want                  bool
	}{
		{'+', false, false, true},
		{'(', false, false, true},
		{' ', false, false, false},
		{' ', true, false, true},
		{'a', false, false, false},
		{'a', false, true, true},
		{'7', false, true, true},
		{'#', true, true, false},
	}
	for _, tt := range tests {
		if got := c.IsDelimiter(tt.r, tt.orWhitespace, tt.orAlnum); got != tt.want {
			t.Fatalf("IsDelimiter(%q, %v, %v) = %v, want %v", tt.r, tt.orWhitespace, tt.orAlnum, got, tt.want)
		}
	}
}

func TestCursorPrevNonSpace(t *testing.T) {
	c := NewCursor([]rune("x  -1"), 3, 4, nil)
	if got := c.PrevNonSpace(); got != 'x' {
		t.Fatalf("PrevNonSpace = %q, want 'x'", got)
	}
	c = NewCursor([]rune("  -1"), 2, 3, nil)
	if got := c.PrevNonSpace(); got != sentinel {
		t.Fatalf("PrevNonSpace = %q, want sentinel", got)
	}
}
