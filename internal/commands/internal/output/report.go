package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/diagnostic"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
	"github.com/artuross/kaleidoscope/internal/log/semconv"
	"github.com/rs/zerolog"
)

// ReportError logs err. When err was caused by source text, the rendered
// diagnostic is also written to w.
func ReportError(logger *zerolog.Logger, w io.Writer, msg string, err error) {
	var parseErr *program.ParseError
	if !errors.As(err, &parseErr) || !program.IsSourceError(err) {
		logger.Error().Err(err).Msg(msg)
		return
	}

	event := logger.Error().Err(err).Str(semconv.SourceName, parseErr.Name)

	var located diagnostic.Located
	if errors.As(err, &located) {
		location := located.Location()
		event = event.Int(semconv.ErrorLine, location.Line).Int(semconv.ErrorColumn, location.Column)
	}

	event.Msg(msg)

	fmt.Fprint(w, diagnostic.Render(parseErr.Err, parseErr.Name, parseErr.Source))
}
