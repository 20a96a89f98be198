package commandinit

import (
	"fmt"
	"io"

	"github.com/artuross/kaleidoscope/internal/defaults"
	"github.com/rs/zerolog"
)

// NewLogger builds the console logger used by every command. The level is
// read from KALEIDOSCOPE_LOG_LEVEL and defaults to info.
func NewLogger(w io.Writer, command string, getEnv func(string) string) (zerolog.Logger, error) {
	levelName := getEnv(defaults.EnvLogLevel)
	if levelName == "" {
		levelName = defaults.LogLevel
	}

	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parse env var %s: %w", defaults.EnvLogLevel, err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().Timestamp().Str("command", command).
		Logger()

	return logger, nil
}
