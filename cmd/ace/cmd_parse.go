package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/ace/format"
	"github.com/dhamidi/ace/syntax"
	"github.com/dhamidi/ace/workspace"
)

const defaultFile = "main.ace"

func newParseCmd() *cobra.Command {
	var outputFormat string
	var expr string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse an expression file (default " + defaultFile + ") and print its tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			var tree syntax.Expr
			if cmd.Flags().Changed("expr") {
				if len(args) > 0 {
					return fmt.Errorf("--expr and a file argument are mutually exclusive")
				}
				tree, err = syntax.Parse(expr)
				if err != nil {
					return fmt.Errorf("parse expression: %w", err)
				}
			} else {
				filename := defaultFile
				if len(args) > 0 {
					filename = args[0]
				}
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
				tree, err = workspace.ParseContent(data)
				if err != nil {
					return fmt.Errorf("parse %s: %w", filename, err)
				}
				log.Debugf("parsed %s", filename)
			}

			if err := encoder.Encode(tree); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format ("+strings.Join(format.Names, ", ")+")")
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "parse this expression instead of a file")

	return cmd
}
