package main

import (
	"fmt"

	"github.com/dhamidi/kale/kale/grammar"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the language",
		RunE: func(cmd *cobra.Command, args []string) error {
			if check {
				if _, err := grammar.Load(); err != nil {
					return fmt.Errorf("grammar check: %w", err)
				}
				fmt.Println("grammar ok")
				return nil
			}
			fmt.Print(grammar.Source)
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "verify the grammar instead of printing it")

	return cmd
}
