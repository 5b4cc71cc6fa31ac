package main

import (
	"github.com/spf13/cobra"

	"github.com/kobzarvs/qconsole/internal/highlight"
	"github.com/kobzarvs/qconsole/internal/repl"
)

func newReplCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Line-mode console with continuation prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			palette := highlight.PaletteFromTheme(opts.cfg.Theme)
			var m highlight.Markup = highlight.NewANSIMarkup(out, palette, nil)
			if opts.cfg.Console.Markup == "tags" {
				m = highlight.TagMarkup{Palette: palette}
			}
			r := repl.New(opts.cfg.Grammar.Lexer(), opts.cfg.Console.IndentUnit, m, out)
			return repl.RunTerminal(r)
		},
	}
}
