// Package parser provides the lexer and parser for the kale expression
// language, producing immutable syntax trees for later analysis or
// code generation.
//
// # Overview
//
// The front end is a synchronous pull pipeline: the parser asks the
// lexer for a token exactly when it needs one, and the lexer asks the
// character source for a character exactly when it needs one. Neither
// stage buffers more than a single unit of lookahead.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│   Lexer     │────▶│   Parser    │
//	│ (io.Reader) │     │  (tokens)   │     │   (AST)     │
//	└─────────────┘     └─────────────┘     └─────────────┘
//
// # Language
//
// kale is a small expression-oriented language:
//
//	# compute the n-th fibonacci number
//	def fib(n) fib(n-1)+fib(n-2)
//
//	extern sin(x)
//
//	fib(10) * 2
//
// A source is a sequence of function definitions (def), external
// declarations (extern), and bare expressions. Bare expressions are
// wrapped in an anonymous zero-parameter Function so every top-level
// construct is uniform for an evaluation stage.
//
// # Parsing model
//
// Primaries, parenthesized expressions, and calls are parsed by
// recursive descent; binary operator chains are folded by precedence
// climbing against a fixed table (see Precedence). All operators
// associate left; a strictly tighter-binding operator immediately to
// the right binds first.
//
// Syntax errors are returned as *SyntaxError values carrying a message
// and position. The parser performs no backtracking and no recovery:
// an error at any depth aborts the enclosing top-level construct with
// no partial tree. Drivers that want to continue can call Skip and try
// Next again.
//
// # Usage
//
//	p := parser.New(strings.NewReader(src), parser.WithFile("fib.kale"))
//	for {
//		node, err := p.Next()
//		if err == io.EOF {
//			break
//		}
//		if err != nil {
//			// report and either stop or p.Skip() to resynchronize
//		}
//		// consume node: *parser.Function or *parser.Prototype
//	}
//
// A Parser and its Lexer must be confined to one goroutine; the
// precedence table is read-only and shared safely by all instances.
package parser
