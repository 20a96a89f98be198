package diagnostic_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/diagnostic"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseError(t *testing.T, source string) error {
	t.Helper()

	_, err := parser.New(lexer.New(source)).Parse()
	require.Error(t, err)

	return err
}

func TestRender(t *testing.T) {
	t.Run("syntax error with context", func(t *testing.T) {
		source := "def f(x)\n  (x + 1 ;\nf(1)"

		err := parseError(t, source)
		got := diagnostic.Render(err, "add.ks", source)

		expected := strings.Join([]string{
			"syntax error in add.ks at 2:10: expected ')', got Semicolon at 2:10",
			"",
			"   1 | def f(x)",
			"   2 |   (x + 1 ;",
			"     |          ^",
			"   3 | f(1)",
			"",
		}, "\n")

		assert.Equal(t, expected, got)
	})

	t.Run("precedence error without name", func(t *testing.T) {
		source := "1 / 2"

		err := parseError(t, source)
		got := diagnostic.Render(err, "", source)

		expected := strings.Join([]string{
			"precedence error at 1:3: operator '/' at 1:3 has no precedence",
			"",
			"   1 | 1 / 2",
			"     |   ^",
			"",
		}, "\n")

		assert.Equal(t, expected, got)
	})

	t.Run("wrapped number error", func(t *testing.T) {
		source := "1e"

		numberErr := &lexer.NumberError{
			Text:     "1",
			Position: lexer.Point{Line: 1, Column: 1},
			Err:      errors.New("boom"),
		}

		got := diagnostic.Render(fmt.Errorf("parse stdin: %w", numberErr), "", source)

		assert.True(t, strings.HasPrefix(got, "number error at 1:1: parse stdin: "), got)
		assert.Contains(t, got, "     | ^\n")
	})

	t.Run("out of range location is clamped", func(t *testing.T) {
		err := &parser.SyntaxError{
			Expected: "')'",
			Token:    lexer.Token{Kind: lexer.TokenKindEndOfInput, Position: lexer.Point{Line: 9, Column: 0}},
		}

		got := diagnostic.Render(err, "", "x")

		assert.Contains(t, got, "at 1:1:")
		assert.Contains(t, got, "   1 | x\n     | ^\n")
	})

	t.Run("plain error", func(t *testing.T) {
		err := errors.New("read file: not found")

		assert.Equal(t, "read file: not found", diagnostic.Render(err, "a.ks", "x"))
	})
}
