package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/lgastako/loglint/checker"
	"github.com/lgastako/loglint/lint"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	var cfg lint.Config

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(1, nil)
			server := checker.NewLSPServer(cfg, version)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&cfg.IgnorePercentFormats, "ignore-percent-formats", false, "do not report use of the % operator on format strings")
	cmd.Flags().BoolVar(&cfg.SuppressWarnings, "suppress-warnings", false, "report only errors, no warnings")

	return cmd
}
