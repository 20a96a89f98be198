package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/artuross/kaleidoscope/internal/commands/internal/output"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/diagnostic"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/parser"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
	"github.com/artuross/kaleidoscope/internal/kaleidoscopeconfig"
	"github.com/artuross/kaleidoscope/internal/log/semconv"
	"github.com/rs/zerolog"
)

const sourceName = "<repl>"

// Session buffers REPL input until it forms complete items, then prints them.
type Session struct {
	driver  *program.Driver
	stdout  io.Writer
	stderr  io.Writer
	pending strings.Builder
}

func NewSession(driver *program.Driver, stdout io.Writer, stderr io.Writer) *Session {
	return &Session{
		driver: driver,
		stdout: stdout,
		stderr: stderr,
	}
}

// Pending reports whether earlier lines are waiting for more input.
func (s *Session) Pending() bool {
	return s.pending.Len() > 0
}

func (s *Session) Reset() {
	s.pending.Reset()
}

// Feed adds one line of input. Complete input is parsed and printed as a
// tree. Input that ends in the middle of an item is kept until the next
// line. Errors in the input are rendered to stderr; only I/O and context
// errors are returned.
func (s *Session) Feed(ctx context.Context, line string) error {
	if s.pending.Len() > 0 {
		s.pending.WriteByte('\n')
	}

	s.pending.WriteString(line)

	source := s.pending.String()
	if strings.TrimSpace(source) == "" {
		s.Reset()
		return nil
	}

	prog, err := s.driver.Parse(ctx, sourceName, source)
	if err != nil && isIncomplete(err) {
		zerolog.Ctx(ctx).Debug().Int(semconv.SourceBytes, len(source)).Msg("waiting for more input")
		return nil
	}

	s.Reset()

	if err != nil {
		var parseErr *program.ParseError
		if !errors.As(err, &parseErr) || !program.IsSourceError(err) {
			return err
		}

		if _, err := fmt.Fprint(s.stderr, diagnostic.Render(parseErr.Err, "", source)); err != nil {
			return fmt.Errorf("write diagnostic: %w", err)
		}

		return nil
	}

	if err := output.WriteProgram(s.stdout, prog, kaleidoscopeconfig.OutputFormatTree); err != nil {
		return fmt.Errorf("write program: %w", err)
	}

	return nil
}

// isIncomplete reports whether err is a syntax error at the end of input,
// i.e. more text could still make the input valid.
func isIncomplete(err error) bool {
	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return false
	}

	return syntaxErr.Token.Is(lexer.TokenKindEndOfInput)
}
