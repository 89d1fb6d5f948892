package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/lus/lustre"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var withTrivia bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Lex a .lus file and print its token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			src, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read %s: %w", filename, err)
			}

			tokens, err := lustre.Lex(src, filename)
			if err != nil {
				return err
			}
			for _, tok := range tokens {
				if tok.Kind.IsTrivia() && !withTrivia {
					continue
				}
				fmt.Printf("%d:%d\t%s\t%q\n", tok.Span.Start.Line, tok.Span.Start.Column, tok.Kind, tok.Literal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTrivia, "trivia", false, "include whitespace and comment tokens")

	return cmd
}
