package tokens

import (
	"errors"
	"fmt"
	"os"

	"github.com/artuross/kaleidoscope/internal/commandinit"
	"github.com/artuross/kaleidoscope/internal/commands/internal/output"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Prints the token stream of a source file or an expression.",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "expr",
				Usage: "Source to tokenize instead of FILE.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	logger, err := commandinit.NewLogger(os.Stderr, "tokens", os.Getenv)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	name, source, err := readSource(cliCtx.String("expr"), cliCtx.Args().Slice())
	if err != nil {
		logger.Error().Err(err).Msg("read source")
		return commandinit.ErrCommandFailed
	}

	if err := Write(os.Stdout, name, source); err != nil {
		output.ReportError(&logger, os.Stderr, "tokenize source", err)
		return commandinit.ErrCommandFailed
	}

	return nil
}

func readSource(expression string, args []string) (string, string, error) {
	switch {
	case expression != "" && len(args) > 0:
		return "", "", errors.New("flag --expr cannot be combined with a FILE argument")

	case expression != "":
		return "<expr>", expression, nil

	case len(args) != 1:
		return "", "", errors.New("either --expr or exactly one FILE is required")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read source file: %w", err)
	}

	return args[0], string(data), nil
}
