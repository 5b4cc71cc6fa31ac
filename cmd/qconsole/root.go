package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kobzarvs/qconsole/internal/app"
	"github.com/kobzarvs/qconsole/internal/config"
	"github.com/kobzarvs/qconsole/internal/logger"
)

var version = "dev"

type rootOptions struct {
	debug bool
	cfg   config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "qconsole [file]",
		Short:         "A scripting console with incremental highlighting and auto-indent",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.New(opts.cfg, args).Run()
		},
	}
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log at debug level")
	cmd.AddCommand(newReplCmd(opts), newHighlightCmd(opts))
	return cmd
}

func (o *rootOptions) setup() error {
	if err := logger.Init(o.debug); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	o.cfg = cfg
	logger.Debug("config loaded", "grammar", cfg.Grammar.Grammar, "markup", cfg.Console.Markup, "theme", cfg.Theme.Theme)
	return nil
}
