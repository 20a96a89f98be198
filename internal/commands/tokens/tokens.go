package tokens

import (
	"fmt"
	"io"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
)

// Write prints every token of source, EndOfInput included, one per line as
// "line:column<TAB>token".
func Write(w io.Writer, name string, source string) error {
	lex := lexer.New(source)

	for {
		token, err := lex.Next()
		if err != nil {
			return &program.ParseError{Name: name, Source: source, Err: err}
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\n", token.Position, token); err != nil {
			return fmt.Errorf("write token: %w", err)
		}

		if token.Is(lexer.TokenKindEndOfInput) {
			return nil
		}
	}
}
