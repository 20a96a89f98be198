package parser_test

import (
	"testing"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/ast"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/parser"
	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLexer struct {
	pos    int
	reads  int
	tokens []lexer.Token
}

func (l *fakeLexer) Next() (lexer.Token, error) {
	l.reads++

	if l.pos >= len(l.tokens) {
		return lexer.Token{Kind: lexer.TokenKindEndOfInput}, nil
	}

	token := l.tokens[l.pos]
	l.pos += 1

	return token, nil
}

func num(value float64) *ast.NumberLiteral {
	return &ast.NumberLiteral{Value: value}
}

func ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

func binary(op rune, left, right ast.Node) *ast.BinaryOperation {
	return &ast.BinaryOperation{Operator: op, Left: left, Right: right}
}

func call(callee string, args ...ast.Node) *ast.Call {
	if args == nil {
		args = []ast.Node{}
	}

	return &ast.Call{Callee: callee, Arguments: args}
}

func anonymous(body ast.Node) *ast.FunctionDef {
	return &ast.FunctionDef{
		Prototype: &ast.Prototype{Name: "", Parameters: []string{}},
		Body:      body,
	}
}

func parseSource(t *testing.T, source string, options ...func(*parser.Parser)) (ast.Node, error) {
	t.Helper()

	p := parser.New(lexer.New(source), options...)

	return p.Parse()
}

func TestParser(t *testing.T) {
	t.Run("tokens", func(t *testing.T) {
		type testCase struct {
			name        string
			inputTokens []lexer.Token
			outputNode  ast.Node
		}

		testCases := []testCase{
			{
				name: "number", // 12
				inputTokens: []lexer.Token{
					{Kind: lexer.TokenKindNumber, Value: 12},
				},
				outputNode: anonymous(num(12)),
			},
			{
				name: "identifier", // x
				inputTokens: []lexer.Token{
					{Kind: lexer.TokenKindIdentifier, Text: "x"},
				},
				outputNode: anonymous(ident("x")),
			},
			{
				name: "function call", // f()
				inputTokens: []lexer.Token{
					{Kind: lexer.TokenKindIdentifier, Text: "f"},
					{Kind: lexer.TokenKindOpenParen},
					{Kind: lexer.TokenKindCloseParen},
				},
				outputNode: anonymous(call("f")),
			},
			{
				name: "extern", // extern sin(a)
				inputTokens: []lexer.Token{
					{Kind: lexer.TokenKindExtern},
					{Kind: lexer.TokenKindIdentifier, Text: "sin"},
					{Kind: lexer.TokenKindOpenParen},
					{Kind: lexer.TokenKindIdentifier, Text: "a"},
					{Kind: lexer.TokenKindCloseParen},
				},
				outputNode: &ast.Prototype{Name: "sin", Parameters: []string{"a"}},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				lexer := &fakeLexer{
					tokens: tc.inputTokens,
				}

				p := parser.New(lexer)

				t.Log("input tokens:")
				t.Log(pretty.Sprint(tc.inputTokens))

				t.Log("expected node:")
				t.Log(pretty.Sprint(tc.outputNode))

				node, err := p.Parse()
				require.NoError(t, err)

				t.Log("got node:")
				t.Log(pretty.Sprint(node))

				require.Equal(t, tc.outputNode, node)
			})
		}
	})

	t.Run("expressions", func(t *testing.T) {
		type testCase struct {
			name       string
			input      string
			outputNode ast.Node
		}

		testCases := []testCase{
			{
				name:       "number",
				input:      "3.14",
				outputNode: anonymous(num(3.14)),
			},
			{
				name:       "multiplication binds tighter than addition",
				input:      "1 + 2 * 3",
				outputNode: anonymous(binary('+', num(1), binary('*', num(2), num(3)))),
			},
			{
				name:       "multiplication first",
				input:      "1 * 2 + 3",
				outputNode: anonymous(binary('+', binary('*', num(1), num(2)), num(3))),
			},
			{
				name:       "subtraction is left associative",
				input:      "1 - 2 - 3",
				outputNode: anonymous(binary('-', binary('-', num(1), num(2)), num(3))),
			},
			{
				name:       "mixed additive operators are left associative",
				input:      "a + b - c + d",
				outputNode: anonymous(binary('+', binary('-', binary('+', ident("a"), ident("b")), ident("c")), ident("d"))),
			},
			{
				name:       "comparison binds loosest",
				input:      "1 < 2 + 3",
				outputNode: anonymous(binary('<', num(1), binary('+', num(2), num(3)))),
			},
			{
				name:       "comparison after arithmetic",
				input:      "a + b * c < d",
				outputNode: anonymous(binary('<', binary('+', ident("a"), binary('*', ident("b"), ident("c"))), ident("d"))),
			},
			{
				name:  "three precedence levels",
				input: "a < b * c + d",
				outputNode: anonymous(binary('<',
					ident("a"),
					binary('+', binary('*', ident("b"), ident("c")), ident("d")),
				)),
			},
			{
				name:  "nested climb returns to outer threshold",
				input: "1 + 2 * 3 - 4",
				outputNode: anonymous(binary('-',
					binary('+', num(1), binary('*', num(2), num(3))),
					num(4),
				)),
			},
			{
				name:       "parentheses override precedence",
				input:      "(1 + 2) * 3",
				outputNode: anonymous(binary('*', binary('+', num(1), num(2)), num(3))),
			},
			{
				name:       "parentheses keep no grouping node",
				input:      "((x))",
				outputNode: anonymous(ident("x")),
			},
			{
				name:       "call without arguments",
				input:      "f()",
				outputNode: anonymous(call("f")),
			},
			{
				name:       "call with arguments in order",
				input:      "f(1, 2, x)",
				outputNode: anonymous(call("f", num(1), num(2), ident("x"))),
			},
			{
				name:       "call with expression arguments",
				input:      "f(a + 1, g(b) * 2)",
				outputNode: anonymous(call("f", binary('+', ident("a"), num(1)), binary('*', call("g", ident("b")), num(2)))),
			},
			{
				name:       "call as operand",
				input:      "sin(x) + 1",
				outputNode: anonymous(binary('+', call("sin", ident("x")), num(1))),
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				t.Log("expected node:")
				t.Log(pretty.Sprint(tc.outputNode))

				node, err := parseSource(t, tc.input)
				require.NoError(t, err)

				t.Log("got node:")
				t.Log(pretty.Sprint(node))

				require.Equal(t, tc.outputNode, node)
			})
		}
	})

	t.Run("parenthesized and plain forms differ", func(t *testing.T) {
		grouped, err := parseSource(t, "(1 + 2) * 3")
		require.NoError(t, err)

		plain, err := parseSource(t, "1 + 2 * 3")
		require.NoError(t, err)

		assert.NotEqual(t, grouped, plain)
	})

	t.Run("definitions", func(t *testing.T) {
		type testCase struct {
			name       string
			input      string
			outputNode ast.Node
		}

		testCases := []testCase{
			{
				name:  "definition",
				input: "def add(x, y) x + y",
				outputNode: &ast.FunctionDef{
					Prototype: &ast.Prototype{Name: "add", Parameters: []string{"x", "y"}},
					Body:      binary('+', ident("x"), ident("y")),
				},
			},
			{
				name:  "definition without parameters",
				input: "def one() 1",
				outputNode: &ast.FunctionDef{
					Prototype: &ast.Prototype{Name: "one", Parameters: []string{}},
					Body:      num(1),
				},
			},
			{
				name:  "duplicate parameters are kept",
				input: "def f(x, x) x",
				outputNode: &ast.FunctionDef{
					Prototype: &ast.Prototype{Name: "f", Parameters: []string{"x", "x"}},
					Body:      ident("x"),
				},
			},
			{
				name:  "body spans lines",
				input: "def add(x, y)\n  x + (y * 2.0);",
				outputNode: &ast.FunctionDef{
					Prototype: &ast.Prototype{Name: "add", Parameters: []string{"x", "y"}},
					Body:      binary('+', ident("x"), binary('*', ident("y"), num(2))),
				},
			},
			{
				name:       "extern",
				input:      "extern sin(x)",
				outputNode: &ast.Prototype{Name: "sin", Parameters: []string{"x"}},
			},
			{
				name:       "extern without parameters",
				input:      "extern rand()",
				outputNode: &ast.Prototype{Name: "rand", Parameters: []string{}},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				node, err := parseSource(t, tc.input)
				require.NoError(t, err)

				t.Log("got node:")
				t.Log(pretty.Sprint(node))

				require.Equal(t, tc.outputNode, node)
			})
		}
	})

	t.Run("top-level expression is anonymous function", func(t *testing.T) {
		node, err := parseSource(t, "1 + 2")
		require.NoError(t, err)

		fn, ok := node.(*ast.FunctionDef)
		require.True(t, ok, "expected *ast.FunctionDef, got %T", node)

		assert.True(t, fn.IsAnonymous())
		assert.Empty(t, fn.Prototype.Name)
		assert.Empty(t, fn.Prototype.Parameters)
		assert.Equal(t, binary('+', num(1), num(2)), fn.Body)
	})

	t.Run("empty input", func(t *testing.T) {
		for _, input := range []string{"", "   ", "\n\t\n"} {
			node, err := parseSource(t, input)
			require.NoError(t, err)
			assert.Nil(t, node)
		}
	})

	t.Run("trailing semicolon is left for the caller", func(t *testing.T) {
		p := parser.New(lexer.New("def f(x) x; f(2)"))

		node, err := p.Parse()
		require.NoError(t, err)
		require.IsType(t, &ast.FunctionDef{}, node)

		token, err := p.Current()
		require.NoError(t, err)
		require.Equal(t, lexer.TokenKindSemicolon, token.Kind)

		require.NoError(t, p.Skip())

		node, err = p.Parse()
		require.NoError(t, err)
		require.Equal(t, anonymous(call("f", num(2))), node)

		node, err = p.Parse()
		require.NoError(t, err)
		assert.Nil(t, node)
	})

	t.Run("reads tokens lazily", func(t *testing.T) {
		lex := &fakeLexer{
			tokens: []lexer.Token{
				{Kind: lexer.TokenKindNumber, Value: 1},
				{Kind: lexer.TokenKindSemicolon},
				{Kind: lexer.TokenKindNumber, Value: 2},
			},
		}

		p := parser.New(lex)

		_, err := p.Parse()
		require.NoError(t, err)

		// "1" and the lookahead ";"
		assert.Equal(t, 2, lex.reads)
	})
}
