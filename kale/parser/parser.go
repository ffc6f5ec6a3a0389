package parser

import (
	"fmt"
	"io"
)

// SyntaxError is the only failure kind produced by parsing. The lexer
// never fails; unrecognized characters become single-character tokens
// and are rejected here if no production accepts them.
type SyntaxError struct {
	Msg string
	Pos Position
	Got Token
}

func (e *SyntaxError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

type Option func(*Parser)

// WithFile sets the file name reported in token and node positions.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// Parser builds syntax trees from a character stream. It maintains one
// token of lookahead and must be confined to a single goroutine.
type Parser struct {
	file string
	lex  *Lexer
	cur  Token
}

func New(r io.Reader, opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	p.lex = NewLexer(r, p.file)
	p.cur = p.lex.NextToken()
	return p
}

// Next returns the next top-level construct: a *Function for a def or
// a bare expression, or a *Prototype for an extern. Stray semicolons
// between constructs are skipped. Returns io.EOF at end of input. On a
// syntax error no partial tree is returned and already-consumed tokens
// are not rewound; the caller decides whether to resynchronize (see
// Skip) or stop.
func (p *Parser) Next() (Node, error) {
	for {
		switch {
		case p.cur.Kind == TokenEOF:
			return nil, io.EOF
		case p.cur.IsSymbol(';'):
			p.advance()
		case p.cur.Kind == TokenDef:
			fn, err := p.parseDefinition()
			if err != nil {
				return nil, err
			}
			return fn, nil
		case p.cur.Kind == TokenExtern:
			proto, err := p.parseExtern()
			if err != nil {
				return nil, err
			}
			return proto, nil
		default:
			fn, err := p.parseTopLevelExpr()
			if err != nil {
				return nil, err
			}
			return fn, nil
		}
	}
}

// Skip discards the current token so a driver can attempt to continue
// with the next construct after a syntax error.
func (p *Parser) Skip() {
	if p.cur.Kind != TokenEOF {
		p.advance()
	}
}

// Sync discards tokens up to the start of the next likely construct: a
// 'def' or 'extern' keyword, a ';', or end of input. Drivers that
// report several errors per source call it after a failed Next so one
// broken construct yields one error instead of a cascade.
func (p *Parser) Sync() {
	for {
		switch {
		case p.cur.Kind == TokenEOF:
			return
		case p.cur.Kind == TokenDef, p.cur.Kind == TokenExtern:
			return
		case p.cur.IsSymbol(';'):
			return
		default:
			p.advance()
		}
	}
}

// ParseExpression parses a single expression from the current
// position.
func (p *Parser) ParseExpression() (Expr, error) {
	return p.parseExpression()
}

// ParseProgram parses an entire source, returning its top-level
// constructs in order, or the first syntax error with no partial
// result.
func ParseProgram(r io.Reader, opts ...Option) ([]Node, error) {
	p := New(r, opts...)
	var nodes []Node
	for {
		node, err := p.Next()
		if err == io.EOF {
			return nodes, nil
		}
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
}

func (p *Parser) advance() Token {
	tok := p.cur
	p.cur = p.lex.NextToken()
	return tok
}

func (p *Parser) syntaxError(msg string) *SyntaxError {
	return &SyntaxError{
		Msg: msg,
		Pos: p.cur.Span.Start,
		Got: p.cur,
	}
}

func (p *Parser) parsePrimary() (Expr, error) {
	switch {
	case p.cur.Kind == TokenIdent:
		return p.parseIdentifierExpr()
	case p.cur.Kind == TokenNumber:
		return p.parseNumberExpr(), nil
	case p.cur.IsSymbol('('):
		return p.parseParenExpr()
	default:
		return nil, p.syntaxError("Unknown token, expected an expression")
	}
}

func (p *Parser) parseNumberExpr() Expr {
	tok := p.advance()
	return &NumberExpr{Span: tok.Span, Value: tok.Value}
}

// parseParenExpr returns the inner expression directly; parentheses
// affect grouping only and are not represented in the tree.
func (p *Parser) parseParenExpr() (Expr, error) {
	p.advance() // '('
	inner, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.cur.IsSymbol(')') {
		return nil, p.syntaxError("Expected ')'")
	}
	p.advance()
	return inner, nil
}

func (p *Parser) parseIdentifierExpr() (Expr, error) {
	name := p.advance()
	if !p.cur.IsSymbol('(') {
		return &VariableExpr{Span: name.Span, Name: name.Literal}, nil
	}

	p.advance() // '('
	var args []Expr
	// An immediate ')' is an empty argument list; the loop below only
	// runs when at least one argument is present.
	if !p.cur.IsSymbol(')') {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.cur.IsSymbol(')') {
				break
			}
			if !p.cur.IsSymbol(',') {
				return nil, p.syntaxError("Expected ')' or ',' in argument list")
			}
			p.advance()
		}
	}
	closing := p.advance() // ')'
	return &CallExpr{
		Span:   Span{Start: name.Span.Start, End: closing.Span.End},
		Callee: name.Literal,
		Args:   args,
	}, nil
}

func (p *Parser) parseExpression() (Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

func (p *Parser) tokenPrecedence() int {
	if p.cur.Kind != TokenSymbol {
		return -1
	}
	return Precedence(p.cur.Rune())
}

// parseBinOpRHS folds a chain of binary operators onto lhs by
// precedence climbing. Operators of equal strength associate left. An
// operator immediately to the right that binds strictly tighter than
// the one just consumed takes the freshly parsed primary as its own
// left-hand side before the combination happens, so "1+2*3" groups as
// "1+(2*3)".
func (p *Parser) parseBinOpRHS(minPrec int, lhs Expr) (Expr, error) {
	for {
		prec := p.tokenPrecedence()
		if prec < minPrec {
			return lhs, nil
		}

		op := p.advance()
		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if next := p.tokenPrecedence(); next > prec {
			rhs, err = p.parseBinOpRHS(prec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &BinaryExpr{
			Span:  Span{Start: NodeSpan(lhs).Start, End: NodeSpan(rhs).End},
			Op:    op.Rune(),
			Left:  lhs,
			Right: rhs,
		}
	}
}

func (p *Parser) parsePrototype() (*Prototype, error) {
	if p.cur.Kind != TokenIdent {
		return nil, p.syntaxError("Expected function name in prototype")
	}
	name := p.advance()

	if !p.cur.IsSymbol('(') {
		return nil, p.syntaxError("Expected '(' in prototype")
	}
	p.advance()

	var params []string
	for p.cur.Kind == TokenIdent {
		params = append(params, p.advance().Literal)
	}
	if !p.cur.IsSymbol(')') {
		return nil, p.syntaxError("Expected ')' in prototype")
	}
	closing := p.advance()

	return &Prototype{
		Span:   Span{Start: name.Span.Start, End: closing.Span.End},
		Name:   name.Literal,
		Params: params,
	}, nil
}

func (p *Parser) parseDefinition() (*Function, error) {
	kw := p.advance() // 'def'
	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Function{
		Span:  Span{Start: kw.Span.Start, End: NodeSpan(body).End},
		Proto: proto,
		Body:  body,
	}, nil
}

func (p *Parser) parseExtern() (*Prototype, error) {
	p.advance() // 'extern'
	return p.parsePrototype()
}

func (p *Parser) parseTopLevelExpr() (*Function, error) {
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	span := NodeSpan(body)
	return &Function{
		Span:  span,
		Proto: &Prototype{Span: span},
		Body:  body,
	}, nil
}
