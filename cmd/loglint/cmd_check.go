package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/lgastako/loglint/checker"
	"github.com/lgastako/loglint/lint"
)

func newCheckCmd() *cobra.Command {
	var cfg lint.Config
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check Python files or directories for broken logging statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				commonlog.Configure(2, nil)
			}

			sink := lint.NewTextSink(os.Stdout)
			c := checker.New(cfg, sink)
			if err := c.CheckPaths(args); err != nil {
				return err
			}
			if sink.Errors() > 0 {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return fmt.Errorf("found %d problem(s)", sink.Errors())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg.IgnorePercentFormats, "ignore-percent-formats", false, "do not report use of the % operator on format strings")
	cmd.Flags().BoolVar(&cfg.SuppressWarnings, "suppress-warnings", false, "report only errors, no warnings")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each file as it is checked")

	return cmd
}
