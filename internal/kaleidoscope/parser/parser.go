package parser

import (
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/ast"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
)

type TokenReader interface {
	Next() (lexer.Token, error)
}

// Parser builds an AST from a token stream with one token of lookahead and
// no backtracking. It is not safe for concurrent use.
type Parser struct {
	lexer       TokenReader
	precedence  PrecedenceTable
	current     lexer.Token
	initialized bool
}

func New(lexer TokenReader, options ...func(*Parser)) *Parser {
	parser := Parser{
		lexer:      lexer,
		precedence: DefaultPrecedence,
	}

	for _, apply := range options {
		apply(&parser)
	}

	return &parser
}

func WithPrecedenceTable(table PrecedenceTable) func(*Parser) {
	return func(p *Parser) {
		p.precedence = table
	}
}

// Parse returns the next top-level item: a *ast.FunctionDef for definitions
// and bare expressions, or a *ast.Prototype for extern declarations. It
// returns a nil node once the input is exhausted.
//
// The first call reads the first token. Later calls continue from the token
// left behind by the previous item, so a trailing ";" is visible to the caller
// through Current.
func (p *Parser) Parse() (ast.Node, error) {
	if err := p.prime(); err != nil {
		return nil, err
	}

	var (
		node ast.Node
		err  error
	)

	switch p.current.Kind {
	case lexer.TokenKindDef:
		node, err = p.parseDefinition()

	case lexer.TokenKindExtern:
		node, err = p.parseExtern()

	case lexer.TokenKindEndOfInput:
		return nil, nil

	default:
		node, err = p.parseTopLevelExpression()
	}

	if err != nil {
		return nil, err
	}

	return node, nil
}

// Current returns the lookahead token, reading the first token if needed.
func (p *Parser) Current() (lexer.Token, error) {
	if err := p.prime(); err != nil {
		return lexer.Token{}, err
	}

	return p.current, nil
}

// Skip discards the lookahead token.
func (p *Parser) Skip() error {
	if err := p.prime(); err != nil {
		return err
	}

	return p.advance()
}

func (p *Parser) prime() error {
	if p.initialized {
		return nil
	}

	if err := p.advance(); err != nil {
		return err
	}

	p.initialized = true

	return nil
}

func (p *Parser) advance() error {
	token, err := p.lexer.Next()
	if err != nil {
		return err
	}

	p.current = token

	return nil
}

func (p *Parser) expect(kind lexer.TokenKind, expected string) error {
	if p.current.Kind != kind {
		return p.syntaxError(expected)
	}

	return p.advance()
}

func (p *Parser) syntaxError(expected string) error {
	return &SyntaxError{
		Expected: expected,
		Token:    p.current,
	}
}

func (p *Parser) parseDefinition() (*ast.FunctionDef, error) {
	// consume "def"
	if err := p.advance(); err != nil {
		return nil, err
	}

	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}

	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	fn := &ast.FunctionDef{
		Prototype: proto,
		Body:      body,
	}

	return fn, nil
}

func (p *Parser) parseExtern() (*ast.Prototype, error) {
	// consume "extern"
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p.parsePrototype()
}

func (p *Parser) parseTopLevelExpression() (*ast.FunctionDef, error) {
	body, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	fn := &ast.FunctionDef{
		Prototype: &ast.Prototype{
			Name:       "",
			Parameters: []string{},
		},
		Body: body,
	}

	return fn, nil
}

func (p *Parser) parsePrototype() (*ast.Prototype, error) {
	if p.current.Kind != lexer.TokenKindIdentifier {
		return nil, p.syntaxError("function name")
	}

	name := p.current.Text

	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.expect(lexer.TokenKindOpenParen, "'(' after function name"); err != nil {
		return nil, err
	}

	params := make([]string, 0)

	if p.current.Kind != lexer.TokenKindCloseParen {
		for {
			if p.current.Kind != lexer.TokenKindIdentifier {
				return nil, p.syntaxError("parameter name")
			}

			params = append(params, p.current.Text)

			if err := p.advance(); err != nil {
				return nil, err
			}

			if p.current.Kind == lexer.TokenKindCloseParen {
				break
			}

			if err := p.expect(lexer.TokenKindComma, "',' or ')' in parameter list"); err != nil {
				return nil, err
			}
		}
	}

	// consume ")"
	if err := p.advance(); err != nil {
		return nil, err
	}

	proto := &ast.Prototype{
		Name:       name,
		Parameters: params,
	}

	return proto, nil
}

func (p *Parser) parseExpression() (ast.Node, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	return p.parseBinaryExpression(OperatorPrecedenceUnset, left)
}

// parseBinaryExpression absorbs operators binding at least as tight as
// minPrec into left. A right operand is handed to a nested call only when the
// operator after it binds strictly tighter, which keeps equal precedence
// left-associative.
func (p *Parser) parseBinaryExpression(minPrec OperatorPrecedence, left ast.Node) (ast.Node, error) {
	for {
		if p.current.Kind != lexer.TokenKindOperator {
			return left, nil
		}

		operator := p.current

		prec, err := p.precedence.Lookup(operator.Char, operator.Position)
		if err != nil {
			return nil, err
		}

		if prec < minPrec {
			return left, nil
		}

		// consume operator
		if err := p.advance(); err != nil {
			return nil, err
		}

		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		if p.current.Kind == lexer.TokenKindOperator {
			nextPrec, err := p.precedence.Lookup(p.current.Char, p.current.Position)
			if err != nil {
				return nil, err
			}

			if nextPrec > prec {
				right, err = p.parseBinaryExpression(prec+1, right)
				if err != nil {
					return nil, err
				}
			}
		}

		left = &ast.BinaryOperation{
			Operator: operator.Char,
			Left:     left,
			Right:    right,
		}
	}
}

func (p *Parser) parsePrimary() (ast.Node, error) {
	switch p.current.Kind {
	case lexer.TokenKindNumber:
		return p.parseNumber()

	case lexer.TokenKindIdentifier:
		return p.parseIdentifier()

	case lexer.TokenKindOpenParen:
		return p.parseGroupedExpression()

	default:
		return nil, p.syntaxError("primary expression")
	}
}

func (p *Parser) parseNumber() (ast.Node, error) {
	number := &ast.NumberLiteral{
		Value: p.current.Value,
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	return number, nil
}

func (p *Parser) parseIdentifier() (ast.Node, error) {
	name := p.current.Text

	if err := p.advance(); err != nil {
		return nil, err
	}

	if p.current.Kind != lexer.TokenKindOpenParen {
		return &ast.Identifier{Name: name}, nil
	}

	// consume "("
	if err := p.advance(); err != nil {
		return nil, err
	}

	args, err := p.parseCallArgumentList()
	if err != nil {
		return nil, err
	}

	call := &ast.Call{
		Callee:    name,
		Arguments: args,
	}

	return call, nil
}

func (p *Parser) parseCallArgumentList() ([]ast.Node, error) {
	args := make([]ast.Node, 0)

	if p.current.Kind != lexer.TokenKindCloseParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			args = append(args, arg)

			if p.current.Kind == lexer.TokenKindCloseParen {
				break
			}

			if err := p.expect(lexer.TokenKindComma, "',' or ')' after call argument"); err != nil {
				return nil, err
			}
		}
	}

	// consume ")"
	if err := p.advance(); err != nil {
		return nil, err
	}

	return args, nil
}

func (p *Parser) parseGroupedExpression() (ast.Node, error) {
	// consume "("
	if err := p.advance(); err != nil {
		return nil, err
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if err := p.expect(lexer.TokenKindCloseParen, "')'"); err != nil {
		return nil, err
	}

	return expr, nil
}
