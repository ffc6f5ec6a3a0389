package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kale/kale/parser"
	"github.com/spf13/cobra"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <file>",
		Short: "Dump the token stream of a kale source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open source file: %w", err)
			}
			defer f.Close()

			lexer := parser.NewLexer(f, filename)
			for {
				tok := lexer.NextToken()
				fmt.Println(tok)
				if tok.Kind == parser.TokenEOF {
					return nil
				}
			}
		},
	}
}
