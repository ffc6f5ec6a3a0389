package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/kale/format"
	"github.com/dhamidi/kale/kale/parser"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	var showAST bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Read and parse kale constructs interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(os.Stdin, os.Stdout, showAST)
		},
	}

	cmd.Flags().BoolVar(&showAST, "ast", false, "print the syntax tree of each construct")

	return cmd
}

func runRepl(in io.Reader, out io.Writer, showAST bool) error {
	enc := format.NewTreeEncoder(out)
	scanner := bufio.NewScanner(in)

	fmt.Fprint(out, "ready> ")
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			replLine(out, enc, line, showAST)
		}
		fmt.Fprint(out, "ready> ")
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func replLine(out io.Writer, enc *format.TreeEncoder, line string, showAST bool) {
	p := parser.New(strings.NewReader(line), parser.WithFile("<stdin>"))
	for {
		node, err := p.Next()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			p.Skip()
			continue
		}

		switch n := node.(type) {
		case *parser.Function:
			if n.Proto.Anonymous() {
				fmt.Fprintln(out, "Parsed a top-level expression.")
			} else {
				fmt.Fprintln(out, "Parsed a function definition.")
			}
		case *parser.Prototype:
			fmt.Fprintln(out, "Parsed an extern.")
		}
		if showAST {
			enc.Encode(node)
		}
	}
}
