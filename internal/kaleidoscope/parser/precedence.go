package parser

import (
	"fmt"
	"maps"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
)

type OperatorPrecedence int

const (
	OperatorPrecedenceUnset      OperatorPrecedence = 0
	OperatorPrecedenceComparison OperatorPrecedence = 10 // "<"
	OperatorPrecedenceAdditive   OperatorPrecedence = 20 // "+" "-"
	OperatorPrecedenceMultiply   OperatorPrecedence = 40 // "*"
)

// PrecedenceTable maps binary operators to binding powers; higher binds
// tighter. A table is immutable once built.
type PrecedenceTable struct {
	operators map[rune]OperatorPrecedence
}

// DefaultPrecedence has no entries for "/", ">" and "=". Using them as binary
// operators fails with ErrUnknownOperator.
var DefaultPrecedence = PrecedenceTable{
	operators: map[rune]OperatorPrecedence{
		'<': OperatorPrecedenceComparison,
		'+': OperatorPrecedenceAdditive,
		'-': OperatorPrecedenceAdditive,
		'*': OperatorPrecedenceMultiply,
	},
}

// NewPrecedenceTable builds a table from operators. Every key must lex as an
// operator and every precedence must be positive.
func NewPrecedenceTable(operators map[rune]int) (PrecedenceTable, error) {
	table := make(map[rune]OperatorPrecedence, len(operators))

	for op, prec := range operators {
		if !lexer.IsOperatorCharacter(op) {
			return PrecedenceTable{}, fmt.Errorf("operator %q: %w", op, ErrInvalidPrecedenceTable)
		}

		if prec <= 0 {
			return PrecedenceTable{}, fmt.Errorf("operator %q: precedence %d must be positive: %w", op, prec, ErrInvalidPrecedenceTable)
		}

		table[op] = OperatorPrecedence(prec)
	}

	return PrecedenceTable{operators: table}, nil
}

// Extend returns a copy of t with operators added or overridden.
func (t PrecedenceTable) Extend(operators map[rune]int) (PrecedenceTable, error) {
	extra, err := NewPrecedenceTable(operators)
	if err != nil {
		return PrecedenceTable{}, err
	}

	merged := maps.Clone(t.operators)
	if merged == nil {
		merged = make(map[rune]OperatorPrecedence, len(extra.operators))
	}

	maps.Copy(merged, extra.operators)

	return PrecedenceTable{operators: merged}, nil
}

// Lookup returns the precedence of op. A missing entry is reported as a
// *PrecedenceError located at position.
func (t PrecedenceTable) Lookup(op rune, position lexer.Point) (OperatorPrecedence, error) {
	prec, ok := t.operators[op]
	if !ok {
		return OperatorPrecedenceUnset, &PrecedenceError{Operator: op, Position: position}
	}

	return prec, nil
}

// Operators returns a copy of the table contents.
func (t PrecedenceTable) Operators() map[rune]int {
	out := make(map[rune]int, len(t.operators))
	for op, prec := range t.operators {
		out[op] = int(prec)
	}

	return out
}
