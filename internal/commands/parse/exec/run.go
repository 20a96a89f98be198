package exec

import (
	"context"
	"fmt"
	"io"

	"github.com/artuross/kaleidoscope/internal/commands/internal/output"
	"github.com/artuross/kaleidoscope/internal/defaults"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
	"github.com/artuross/kaleidoscope/internal/kaleidoscopeconfig"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/artuross/kaleidoscope/internal/commands/parse/exec"

	// name of the source given with --expr
	ExpressionSourceName = "<expr>"
)

type Config struct {
	Expression string
	Files      []string
	Format     kaleidoscopeconfig.OutputFormat
}

type Executor struct {
	driver *program.Driver
	stdout io.Writer
	tracer trace.Tracer
}

func NewExecutor(driver *program.Driver, stdout io.Writer, options ...func(*Executor)) *Executor {
	executor := Executor{
		driver: driver,
		stdout: stdout,
		tracer: defaults.TracerProvider.Tracer(tracerName),
	}

	for _, apply := range options {
		apply(&executor)
	}

	return &executor
}

func WithTracerProvider(tp trace.TracerProvider) func(*Executor) {
	return func(e *Executor) {
		e.tracer = tp.Tracer(tracerName)
	}
}

func (e *Executor) Run(ctx context.Context, config Config) error {
	ctx, span := e.tracer.Start(
		ctx,
		"run",
		trace.WithAttributes(
			attribute.Int("file_count", len(config.Files)),
			attribute.String("format", string(config.Format)),
		),
	)
	defer span.End()

	programs, err := e.parse(ctx, config)
	if err != nil {
		return fmt.Errorf("parse sources: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Int("program_count", len(programs)).Msg("parsed sources")

	withHeaders := len(programs) > 1 && config.Format != kaleidoscopeconfig.OutputFormatJSON

	for index, prog := range programs {
		if withHeaders {
			if err := writeHeader(e.stdout, index, prog.Name); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}

		if err := output.WriteProgram(e.stdout, prog, config.Format); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

func (e *Executor) parse(ctx context.Context, config Config) ([]*program.Program, error) {
	if len(config.Files) > 0 {
		return e.driver.ParseFiles(ctx, config.Files)
	}

	prog, err := e.driver.Parse(ctx, ExpressionSourceName, config.Expression)
	if err != nil {
		return nil, err
	}

	return []*program.Program{prog}, nil
}

func writeHeader(w io.Writer, index int, name string) error {
	if index > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "== %s ==\n", name)
	return err
}
