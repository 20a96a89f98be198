package lexer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

var ErrInvalidNumber = errors.New("invalid number")

// NumberError is returned when a numeral cannot be converted to float64.
// It is fatal: the lexer does not try to recover from it.
type NumberError struct {
	Text     string
	Position Point
	Err      error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("invalid number %q at %s: %v", e.Text, e.Position, e.Err)
}

func (e *NumberError) Is(target error) bool {
	return target == ErrInvalidNumber
}

func (e *NumberError) Unwrap() error {
	return e.Err
}

func (e *NumberError) Location() Point {
	return e.Position
}

const (
	keywordDef    = "def"
	keywordExtern = "extern"
)

type Lexer struct {
	input    []byte
	point    Point
	position int
}

func New(input string) *Lexer {
	return &Lexer{
		input:    []byte(input),
		point:    Point{Line: 1, Column: 1},
		position: 0,
	}
}

// Next returns the next token. Once the input is exhausted every call returns
// an EndOfInput token at the same position.
func (l *Lexer) Next() (Token, error) {
	l.advanceWhitespace()

	startPoint := l.point

	r, _, err := l.peek()
	if err == io.EOF {
		return Token{Kind: TokenKindEndOfInput, Position: startPoint}, nil
	}

	if isLetter(r) {
		return l.readIdentifier(), nil
	}

	if isDigit(r) {
		return l.readNumber()
	}

	l.read()

	token := Token{Position: startPoint}

	switch r {
	case '(':
		token.Kind = TokenKindOpenParen

	case ')':
		token.Kind = TokenKindCloseParen

	case ',':
		token.Kind = TokenKindComma

	case ';':
		token.Kind = TokenKindSemicolon

	default:
		token.Kind = TokenKindUnknown
		if IsOperatorCharacter(r) {
			token.Kind = TokenKindOperator
		}

		token.Char = r
	}

	return token, nil
}

// Tokenize reads the whole input, including the final EndOfInput token.
func Tokenize(input string) ([]Token, error) {
	l := New(input)

	tokens := make([]Token, 0)
	for {
		token, err := l.Next()
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)

		if token.Kind == TokenKindEndOfInput {
			return tokens, nil
		}
	}
}

func (l *Lexer) advanceWhitespace() {
	for {
		r, _, err := l.peek()
		if err == io.EOF {
			return
		}

		if !isWhitespace(r) {
			return
		}

		l.read()

		if r == '\n' {
			l.point.Line++
			l.point.Column = 1
		}
	}
}

func (l *Lexer) readIdentifier() Token {
	startPoint := l.point
	startPos := l.position

	r := l.read()
	invariant(!isLetter(r), "readIdentifier: first character is not a letter")

	for {
		r, _, err := l.peek()
		if err == io.EOF {
			break
		}

		if !isLetter(r) && !isDigit(r) {
			break
		}

		l.read()
	}

	text := string(l.input[startPos:l.position])

	switch text {
	case keywordDef:
		return Token{Kind: TokenKindDef, Position: startPoint}

	case keywordExtern:
		return Token{Kind: TokenKindExtern, Position: startPoint}

	default:
		return Token{Kind: TokenKindIdentifier, Text: text, Position: startPoint}
	}
}

func (l *Lexer) readNumber() (Token, error) {
	startPoint := l.point
	startPos := l.position

	l.readDigits()

	if r, _, err := l.peek(); err == nil && r == '.' {
		l.read()
		l.readDigits()
	}

	text := string(l.input[startPos:l.position])

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, &NumberError{Text: text, Position: startPoint, Err: err}
	}

	token := Token{
		Kind:     TokenKindNumber,
		Value:    value,
		Position: startPoint,
	}

	return token, nil
}

func (l *Lexer) readDigits() {
	for {
		r, _, err := l.peek()
		if err == io.EOF || !isDigit(r) {
			return
		}

		l.read()
	}
}

// peek decodes the rune under the cursor. Invalid UTF-8 decodes as
// utf8.RuneError with size 1 and is later reported as an Unknown token.
func (l *Lexer) peek() (rune, int, error) {
	if l.position >= len(l.input) {
		return 0, 0, io.EOF
	}

	r, size := utf8.DecodeRune(l.input[l.position:])

	return r, size, nil
}

func (l *Lexer) read() rune {
	r, size, err := l.peek()
	invariant(err != nil, "read: called at end of input")

	l.position += size
	l.point.Column++

	return r
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true

	default:
		return false
	}
}

// IsOperatorCharacter reports whether r lexes as an Operator token.
func IsOperatorCharacter(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '<', '>', '=':
		return true

	default:
		return false
	}
}

func invariant(assertion bool, message string) {
	if assertion {
		panic(message)
	}
}
