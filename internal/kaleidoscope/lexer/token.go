package lexer

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	TokenKindEndOfInput TokenKind = iota
	TokenKindDef
	TokenKindExtern
	TokenKindIdentifier
	TokenKindNumber
	TokenKindOpenParen
	TokenKindCloseParen
	TokenKindOperator
	TokenKindComma
	TokenKindSemicolon
	TokenKindUnknown
)

var tokenKindNames = map[TokenKind]string{
	TokenKindEndOfInput: "EndOfInput",
	TokenKindDef:        "Def",
	TokenKindExtern:     "Extern",
	TokenKindIdentifier: "Identifier",
	TokenKindNumber:     "Number",
	TokenKindOpenParen:  "OpenParen",
	TokenKindCloseParen: "CloseParen",
	TokenKindOperator:   "Operator",
	TokenKindComma:      "Comma",
	TokenKindSemicolon:  "Semicolon",
	TokenKindUnknown:    "Unknown",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("TokenKind(%d)", int(k))
}

type Point struct {
	Line   int
	Column int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a classified lexeme. Only the payload field matching Kind is set:
// Text for identifiers, Value for numbers and Char for operators and unknown
// characters.
type Token struct {
	Kind     TokenKind
	Text     string
	Value    float64
	Char     rune
	Position Point
}

func (t Token) Is(kind TokenKind) bool {
	return t.Kind == kind
}

// IsOperator reports whether the token is the operator op.
func (t Token) IsOperator(op rune) bool {
	return t.Kind == TokenKindOperator && t.Char == op
}

func (t Token) String() string {
	switch t.Kind {
	case TokenKindIdentifier:
		return fmt.Sprintf("Identifier(%q)", t.Text)

	case TokenKindNumber:
		return fmt.Sprintf("Number(%s)", strconv.FormatFloat(t.Value, 'g', -1, 64))

	case TokenKindOperator, TokenKindUnknown:
		return fmt.Sprintf("%s('%c')", t.Kind, t.Char)

	default:
		return t.Kind.String()
	}
}
