package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/lgastako/loglint/checker"
	"github.com/lgastako/loglint/lint"
)

func newWatchCmd() *cobra.Command {
	var cfg lint.Config

	cmd := &cobra.Command{
		Use:   "watch <path>...",
		Short: "Re-check Python files whenever they change",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(1, nil)

			sink := lint.NewTextSink(os.Stdout)
			c := checker.New(cfg, sink)

			// Initial pass so the watch starts from a known state.
			if err := c.CheckPaths(args); err != nil {
				return err
			}

			w, err := checker.NewWatcher(c, args)
			if err != nil {
				return err
			}
			defer w.Close()

			return w.Run()
		},
	}

	cmd.Flags().BoolVar(&cfg.IgnorePercentFormats, "ignore-percent-formats", false, "do not report use of the % operator on format strings")
	cmd.Flags().BoolVar(&cfg.SuppressWarnings, "suppress-warnings", false, "report only errors, no warnings")

	return cmd
}
