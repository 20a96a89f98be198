package kaleidoscopeconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/parser"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config file format")
	ErrInvalidConfig     = errors.New("invalid config")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type OutputFormat string

const (
	OutputFormatTree OutputFormat = "tree"
	OutputFormatJSON OutputFormat = "json"
)

// Config is the optional front-end config file. Precedence entries are added
// to (or override) the default operator table.
type Config struct {
	Precedence map[string]int `json:"precedence" toml:"precedence" yaml:"precedence"`
	Format     OutputFormat   `json:"format" toml:"format" yaml:"format"`
}

// FormatFromPath detects the file format by extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil

	case ".toml":
		return FormatTOML, nil

	case ".yaml", ".yml":
		return FormatYAML, nil

	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

func ReadConfigFile(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	return config, nil
}

func Decode(data []byte, format Format) (*Config, error) {
	var config Config

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("unmarshal json: %w", err)
		}

	case FormatTOML:
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&config); err != nil {
			return nil, fmt.Errorf("unmarshal toml: %w", err)
		}

	case FormatYAML:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("unmarshal yaml: %w", err)
		}

	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Format {
	case "", OutputFormatTree, OutputFormatJSON:

	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalidConfig)
	}

	for op := range c.Precedence {
		if utf8.RuneCountInString(op) != 1 {
			return fmt.Errorf("precedence key %q must be a single character: %w", op, ErrInvalidConfig)
		}
	}

	return nil
}

// PrecedenceTable returns the default operator table extended with the
// configured entries.
func (c *Config) PrecedenceTable() (parser.PrecedenceTable, error) {
	if len(c.Precedence) == 0 {
		return parser.DefaultPrecedence, nil
	}

	operators := make(map[rune]int, len(c.Precedence))
	for op, prec := range c.Precedence {
		r, _ := utf8.DecodeRuneInString(op)
		operators[r] = prec
	}

	table, err := parser.DefaultPrecedence.Extend(operators)
	if err != nil {
		return parser.PrecedenceTable{}, fmt.Errorf("build precedence table: %w", err)
	}

	return table, nil
}
