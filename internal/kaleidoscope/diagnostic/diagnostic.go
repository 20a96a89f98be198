// Package diagnostic renders located front-end errors as a header followed by
// the offending source line and a caret under the reported column:
//
//	syntax error in add.ks at 2:9: expected ')', got EndOfInput at 2:9
//
//	   1 | def f(x)
//	   2 |   (x + 1
//	     |         ^
//
// Errors without a location are rendered as their plain message.
package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/parser"
)

// Located is implemented by errors carrying a 1-based source position.
type Located interface {
	error
	Location() lexer.Point
}

// Render formats err against source. name, if not empty, is included in the
// header.
func Render(err error, name string, source string) string {
	var located Located
	if !errors.As(err, &located) {
		return err.Error()
	}

	point := located.Location()

	return snippet(source, header(err), name, point.Line, point.Column, err.Error())
}

func header(err error) string {
	switch {
	case errors.Is(err, parser.ErrSyntax):
		return "syntax error"

	case errors.Is(err, parser.ErrUnknownOperator):
		return "precedence error"

	case errors.Is(err, lexer.ErrInvalidNumber):
		return "number error"

	default:
		return "error"
	}
}

// snippet shows at most one line before and one line after the reported
// line. Out of range coordinates are clamped.
func snippet(source, header, name string, line, column int, message string) string {
	lines := strings.Split(source, "\n")

	line = max(1, min(line, len(lines)))
	column = max(1, column)

	var b strings.Builder
	if name != "" {
		fmt.Fprintf(&b, "%s in %s at %d:%d: %s\n\n", header, name, line, column, message)
	} else {
		fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, column, message)
	}

	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}

	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", column-1))

	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}

	return b.String()
}
