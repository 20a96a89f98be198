package parse

import (
	"fmt"
	"os"

	"github.com/artuross/kaleidoscope/internal/commandinit"
	"github.com/artuross/kaleidoscope/internal/commands/internal/output"
	"github.com/artuross/kaleidoscope/internal/commands/parse/config"
	"github.com/artuross/kaleidoscope/internal/commands/parse/exec"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
	cli "github.com/urfave/cli/v2"
)

func NewCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parses source files or an expression and prints the AST.",
		ArgsUsage: "[FILE...]",
		Flags: []cli.Flag{
			// one of these must be set
			&cli.StringFlag{
				Name:  "expr",
				Usage: "Source to parse instead of FILE arguments.",
			},

			// optional
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: tree or json. Defaults to the config file value, then tree.",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a .json, .toml or .yaml config file.",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "Export spans over OTLP/gRPC.",
			},
		},
		Action: run,
	}
}

func run(cliCtx *cli.Context) error {
	ctx := cliCtx.Context

	logger, err := commandinit.NewLogger(os.Stderr, "parse", os.Getenv)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx = logger.WithContext(ctx)

	cfg, err := config.Read(cliCtx, cliCtx.Args().Slice(), os.Getenv)
	if err != nil {
		logger.Error().Err(err).Msg("invalid config")
		return commandinit.ErrCommandFailed
	}

	tracerProvider, tpShutdown, err := commandinit.NewTracerProvider(ctx, cfg.Trace)
	if err != nil {
		logger.Error().Err(err).Msg("init OTEL provider")
		return commandinit.ErrCommandFailed
	}
	defer tpShutdown(ctx)

	driver := program.New(
		program.WithTracerProvider(tracerProvider),
		program.WithPrecedenceTable(cfg.Precedence),
	)

	execConfig := exec.Config{
		Expression: cfg.Expression,
		Files:      cfg.Files,
		Format:     cfg.Format,
	}

	executor := exec.NewExecutor(driver, os.Stdout, exec.WithTracerProvider(tracerProvider))
	if err := executor.Run(ctx, execConfig); err != nil {
		output.ReportError(&logger, os.Stderr, "run command", err)
		return commandinit.ErrCommandFailed
	}

	return nil
}
