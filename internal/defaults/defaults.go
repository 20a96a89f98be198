package defaults

import (
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	// Environment variable overriding the log level (zerolog level names).
	EnvLogLevel = "KALEIDOSCOPE_LOG_LEVEL"

	// Environment variable pointing at a config file, used when --config is not set.
	EnvConfigFile = "KALEIDOSCOPE_CONFIG"

	// Environment variable overriding the REPL history file.
	EnvHistoryFile = "KALEIDOSCOPE_HISTORY_FILE"

	HistoryFileName = ".kaleidoscope_history"
	LogLevel        = "info"
	OutputFormat    = "tree"
)

var TracerProvider = noop.NewTracerProvider()
