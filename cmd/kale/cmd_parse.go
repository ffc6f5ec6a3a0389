package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/kale/format"
	"github.com/dhamidi/kale/kale/parser"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a kale source file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			f, err := os.Open(filename)
			if err != nil {
				return fmt.Errorf("open source file: %w", err)
			}
			defer f.Close()

			nodes, err := parser.ParseProgram(f, parser.WithFile(filename))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			switch outputFormat {
			case "json":
				enc := format.NewASTJSONEncoder(os.Stdout)
				if err := enc.EncodeAll(nodes); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "tree":
				enc := format.NewTreeEncoder(os.Stdout)
				for _, node := range nodes {
					if err := enc.Encode(node); err != nil {
						return fmt.Errorf("encode tree: %w", err)
					}
				}
			case "sexpr":
				for _, node := range nodes {
					fmt.Println(node)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, tree, sexpr)")

	return cmd
}
