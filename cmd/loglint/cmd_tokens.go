package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lgastako/loglint/python"
)

func newTokensCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a Python file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			for _, tok := range python.Tokenize(data, args[0]) {
				if tok.Kind.Insignificant() && !all {
					continue
				}
				fmt.Printf("%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tok.Kind, tok.Text)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "include insignificant tokens (indentation, comments, blank newlines)")

	return cmd
}
