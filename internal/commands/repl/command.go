package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/artuross/kaleidoscope/internal/commandinit"
	"github.com/artuross/kaleidoscope/internal/defaults"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
	"github.com/artuross/kaleidoscope/internal/kaleidoscopeconfig"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	cli "github.com/urfave/cli/v2"
)

const (
	promptMain     = "ready> "
	promptContinue = "...> "

	commandQuit = ":quit"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Starts an interactive prompt that prints the AST of every entered item.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a .json, .toml or .yaml config file.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	logger, err := commandinit.NewLogger(os.Stderr, "repl", os.Getenv)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx = logger.WithContext(ctx)

	driver, err := newDriver(cliCtx.String("config"), os.Getenv)
	if err != nil {
		logger.Error().Err(err).Msg("invalid config")
		return commandinit.ErrCommandFailed
	}

	historyPath, err := historyFilePath(os.Getenv, os.UserHomeDir)
	if err != nil {
		logger.Error().Err(err).Msg("resolve history file")
		return commandinit.ErrCommandFailed
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	loadHistory(line, historyPath, &logger)
	defer saveHistory(line, historyPath, &logger)

	session := NewSession(driver, os.Stdout, os.Stderr)

	for {
		prompt := promptMain
		if session.Pending() {
			prompt = promptContinue
		}

		input, err := line.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil

		case errors.Is(err, liner.ErrPromptAborted):
			session.Reset()
			continue

		case err != nil:
			logger.Error().Err(err).Msg("read input")
			return commandinit.ErrCommandFailed
		}

		if !session.Pending() && strings.TrimSpace(input) == commandQuit {
			return nil
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		if err := session.Feed(ctx, input); err != nil {
			logger.Error().Err(err).Msg("evaluate input")
			return commandinit.ErrCommandFailed
		}
	}
}

func newDriver(configFilePath string, getEnv func(string) string) (*program.Driver, error) {
	if configFilePath == "" {
		configFilePath = getEnv(defaults.EnvConfigFile)
	}

	if configFilePath == "" {
		return program.New(), nil
	}

	cfg, err := kaleidoscopeconfig.ReadConfigFile(configFilePath)
	if err != nil {
		return nil, err
	}

	table, err := cfg.PrecedenceTable()
	if err != nil {
		return nil, err
	}

	return program.New(program.WithPrecedenceTable(table)), nil
}

func historyFilePath(getEnv func(string) string, homeDir func() (string, error)) (string, error) {
	if path := getEnv(defaults.EnvHistoryFile); path != "" {
		return path, nil
	}

	home, err := homeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, defaults.HistoryFileName), nil
}

// history is best-effort; failures are only logged
func loadHistory(line *liner.State, path string, logger *zerolog.Logger) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return
	}

	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("open history file")
		return
	}
	defer file.Close()

	if _, err := line.ReadHistory(file); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("read history file")
	}
}

func saveHistory(line *liner.State, path string, logger *zerolog.Logger) {
	file, err := os.Create(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("create history file")
		return
	}
	defer file.Close()

	if _, err := line.WriteHistory(file); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("write history file")
	}
}
