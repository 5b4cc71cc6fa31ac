// Package repl is the line-mode host. Entries may span several lines: the
// continuation prompt appears while a bracket, block comment or verbatim
// string is still open, and each continuation line is pre-filled with the
// indent the engine computes for it.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/kobzarvs/qconsole/internal/highlight"
	"github.com/kobzarvs/qconsole/internal/indent"
	"github.com/kobzarvs/qconsole/internal/lexer"
	"github.com/kobzarvs/qconsole/internal/logger"
)

const (
	promptMain = "> "
	promptCont = ". "
)

// LineEditor is the subset of *liner.State the loop needs.
type LineEditor interface {
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
	AppendHistory(item string)
}

type REPL struct {
	chain    *lexer.Chain
	renderer *highlight.Renderer
	indent   *indent.Engine
	out      io.Writer
	spans    bool
}

// New builds a REPL writing highlighted entries to out with markup m.
func New(g lexer.Grammar, unit string, m highlight.Markup, out io.Writer) *REPL {
	chain := lexer.New(g)
	return &REPL{
		chain:    chain,
		renderer: highlight.NewRenderer(chain, m),
		indent:   indent.New(g, unit),
		out:      out,
	}
}

// ReadEntry reads one complete entry. ok is false at end of input.
func (r *REPL) ReadEntry(ln LineEditor) (entry string, ok bool, err error) {
	var buf []rune
	for {
		prompt, prefill := promptMain, ""
		if len(buf) > 0 {
			prompt = promptCont
			prefill = r.continuationIndent(buf)
		}
		line, err := ln.PromptWithSuggestion(prompt, prefill, len([]rune(prefill)))
		if errors.Is(err, io.EOF) {
			return "", false, nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			logger.Debug("entry aborted", "runes", len(buf))
			return "", true, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("prompt: %w", err)
		}
		if len(buf) > 0 {
			buf = append(buf, '\n')
		}
		buf = r.appendLine(buf, []rune(line))
		if !r.indent.Pending(buf) {
			return string(buf), true, nil
		}
	}
}

// continuationIndent is the whitespace a newline typed at the end of buf
// would receive.
func (r *REPL) continuationIndent(buf []rune) string {
	text := make([]rune, len(buf)+1)
	copy(text, buf)
	text[len(buf)] = '\n'
	edit := r.indent.Apply(text, len(text), "\n")
	return string(edit.Text[len(text):edit.Caret])
}

// appendLine adds line to buf. A line that opens with a close bracket is
// re-indented as if the bracket had just been typed.
func (r *REPL) appendLine(buf, line []rune) []rune {
	j := 0
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	if j == len(line) {
		return append(buf, line...)
	}
	head := append(append([]rune{}, buf...), line[:j+1]...)
	edit := r.indent.Apply(head, len(head), string(line[j]))
	return append(edit.Text, line[j+1:]...)
}

// Run reads entries until end of input or :quit, echoing each highlighted.
func (r *REPL) Run(ln LineEditor) error {
	for {
		entry, ok, err := r.ReadEntry(ln)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if r.command(trimmed) {
				return nil
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
		r.echo(entry)
	}
}

func (r *REPL) command(cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true
	case ":spans":
		r.spans = !r.spans
		fmt.Fprintf(r.out, "span listing %s\n", onOff(r.spans))
	case ":help":
		fmt.Fprintln(r.out, ":spans  toggle the span listing\n:quit   leave")
	default:
		fmt.Fprintln(r.out, "unknown command. Type :help for a list.")
	}
	return false
}

func (r *REPL) echo(entry string) {
	text := []rune(entry)
	out, _ := r.renderer.Render(text, 0, len(text)-1, 0, len(text))
	fmt.Fprintln(r.out, out)
	if !r.spans {
		return
	}
	for span := range r.chain.Spans(text, 0, len(text)-1) {
		fmt.Fprintf(r.out, "  %4d..%-4d %-8s %q\n", span.Start, span.End, span.Tag, span.Text(text))
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
