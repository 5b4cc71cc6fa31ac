package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/kobzarvs/qconsole/internal/highlight"
	"github.com/kobzarvs/qconsole/internal/lexer"
)

type highlightOptions struct {
	start  int
	end    int
	caret  int
	format string
	color  string
}

func newHighlightCmd(root *rootOptions) *cobra.Command {
	opts := &highlightOptions{}
	cmd := &cobra.Command{
		Use:   "highlight [file]",
		Short: "Render a range of a file (or stdin) with highlight markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return runHighlight(cmd.OutOrStdout(), cmd.ErrOrStderr(), root, opts, []rune(string(src)))
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.start, "start", 0, "first rune offset of the range")
	f.IntVar(&opts.end, "end", -1, "last rune offset of the range (-1 for end of input)")
	f.IntVar(&opts.caret, "caret", -1, "caret offset; reports whether it sits in a string or comment")
	f.StringVar(&opts.format, "format", "", "output format: ansi, tags, plain or spans (default from config)")
	f.StringVar(&opts.color, "color", "auto", "ansi colour: auto, always or never")
	return cmd
}

type spanJSON struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Tag     string `json:"tag"`
	Literal bool   `json:"literal"`
	Text    string `json:"text"`
}

func runHighlight(out, errOut io.Writer, root *rootOptions, opts *highlightOptions, text []rune) error {
	end := opts.end
	if end < 0 || end >= len(text) {
		end = len(text) - 1
	}
	chain := lexer.New(root.cfg.Grammar.Lexer())
	palette := highlight.PaletteFromTheme(root.cfg.Theme)

	format := opts.format
	if format == "" {
		format = root.cfg.Console.Markup
	}
	var m highlight.Markup
	switch format {
	case "ansi", "":
		var profile *termenv.Profile
		switch opts.color {
		case "always":
			p := termenv.TrueColor
			profile = &p
		case "never":
			p := termenv.Ascii
			profile = &p
		case "auto":
		default:
			return fmt.Errorf("unknown --color %q", opts.color)
		}
		m = highlight.NewANSIMarkup(out, palette, profile)
	case "tags":
		m = highlight.TagMarkup{Palette: palette}
	case "plain":
	case "spans":
		spans := []spanJSON{}
		for s := range chain.Spans(text, opts.start, end) {
			spans = append(spans, spanJSON{Start: s.Start, End: s.End, Tag: string(s.Tag), Literal: s.Literal, Text: s.Text(text)})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(spans)
	default:
		return fmt.Errorf("unknown --format %q", format)
	}

	rendered, inLiteral := highlight.NewRenderer(chain, m).Render(text, opts.start, end, 0, opts.caret)
	if _, err := io.WriteString(out, rendered); err != nil {
		return err
	}
	if opts.caret >= 0 {
		fmt.Fprintf(errOut, "caret %d in literal: %v\n", opts.caret, inLiteral)
	}
	return nil
}
