package config

import (
	"errors"
	"fmt"

	"github.com/artuross/kaleidoscope/internal/defaults"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/parser"
	"github.com/artuross/kaleidoscope/internal/kaleidoscopeconfig"
)

var ErrNoSource = errors.New("either --expr or at least one FILE is required")

type Flagger interface {
	String(name string) string
	Bool(name string) bool
}

type Config struct {
	ConfigFilePath string
	Expression     string
	Files          []string
	Format         kaleidoscopeconfig.OutputFormat
	Precedence     parser.PrecedenceTable
	Trace          bool
}

func Read(flags Flagger, args []string, getEnv func(string) string) (*Config, error) {
	// source - exactly one kind
	expression := flags.String("expr")
	if expression == "" && len(args) == 0 {
		return nil, ErrNoSource
	}

	if expression != "" && len(args) > 0 {
		return nil, fmt.Errorf("flag --expr cannot be combined with FILE arguments")
	}

	// config file - flag wins over env
	configFilePath := flags.String("config")
	if configFilePath == "" {
		configFilePath = getEnv(defaults.EnvConfigFile)
	}

	fileConfig := &kaleidoscopeconfig.Config{}
	if configFilePath != "" {
		var err error

		fileConfig, err = kaleidoscopeconfig.ReadConfigFile(configFilePath)
		if err != nil {
			return nil, err
		}
	}

	precedence, err := fileConfig.PrecedenceTable()
	if err != nil {
		return nil, err
	}

	// output format - flag, then config file, then default
	format := kaleidoscopeconfig.OutputFormat(flags.String("format"))
	if format == "" {
		format = fileConfig.Format
	}

	if format == "" {
		format = defaults.OutputFormat
	}

	switch format {
	case kaleidoscopeconfig.OutputFormatTree, kaleidoscopeconfig.OutputFormatJSON:

	default:
		return nil, fmt.Errorf("flag --format must be %q or %q, got %q", kaleidoscopeconfig.OutputFormatTree, kaleidoscopeconfig.OutputFormatJSON, format)
	}

	cfg := Config{
		ConfigFilePath: configFilePath,
		Expression:     expression,
		Files:          args,
		Format:         format,
		Precedence:     precedence,
		Trace:          flags.Bool("trace"),
	}

	return &cfg, nil
}
