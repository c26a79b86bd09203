package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/ace/syntax"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "grammar",
		Short:         "Inspect the EBNF description of the expression language",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newGrammarPrintCmd())
	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarMatchCmd())

	return cmd
}

func newGrammarPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the built-in grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), syntax.GrammarSource())
			return err
		},
	}
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check [file]",
		Short:         "Parse and verify an EBNF grammar file (default: the built-in grammar)",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := ""
			if len(args) > 0 {
				filename = args[0]
			}

			grammar, err := loadGrammar(filename)
			if err != nil {
				printErrors(cmd.ErrOrStderr(), errors.Unwrap(err))
				return err
			}

			if err := ebnf.Verify(grammar, startProduction); err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			if filename == "" {
				filename = "built-in grammar"
			}
			log.Infof("%s verified from %s", filename, startProduction)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", syntax.StartProduction, "start production for verification")

	return cmd
}

func newGrammarMatchCmd() *cobra.Command {
	var grammarFile string
	var startProduction string

	cmd := &cobra.Command{
		Use:          "match <text>",
		Short:        "Check whether text is a sentence of a grammar (default: the built-in grammar)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := loadGrammar(grammarFile)
			if err != nil {
				return err
			}

			if !syntax.RecognizeGrammar(grammar, startProduction, args[0]) {
				return fmt.Errorf("%q does not match %s", args[0], startProduction)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&grammarFile, "grammar", "", "EBNF grammar file")
	cmd.Flags().StringVar(&startProduction, "start", syntax.StartProduction, "start production")

	return cmd
}

func loadGrammar(filename string) (ebnf.Grammar, error) {
	if filename == "" {
		return syntax.Grammar()
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	grammar, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return grammar, nil
}

func printErrors(w io.Writer, err error) {
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			fmt.Fprintln(w, v.Index(i).Interface())
		}
	} else {
		fmt.Fprintln(w, err)
	}
}
