package parser

import (
	"errors"
	"fmt"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
)

var (
	ErrSyntax                 = errors.New("syntax error")
	ErrUnknownOperator        = errors.New("operator has no precedence")
	ErrInvalidPrecedenceTable = errors.New("invalid precedence table")
)

// SyntaxError reports the construct the parser expected and the token it
// found instead.
type SyntaxError struct {
	Expected string
	Token    lexer.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, got %s at %s", e.Expected, e.Token, e.Token.Position)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

func (e *SyntaxError) Location() lexer.Point {
	return e.Token.Position
}

// PrecedenceError reports an operator that lexes but is missing from the
// precedence table. The input is well formed; the table is incomplete.
type PrecedenceError struct {
	Operator rune
	Position lexer.Point
}

func (e *PrecedenceError) Error() string {
	return fmt.Sprintf("operator '%c' at %s has no precedence", e.Operator, e.Position)
}

func (e *PrecedenceError) Is(target error) bool {
	return target == ErrUnknownOperator
}

func (e *PrecedenceError) Location() lexer.Point {
	return e.Position
}
