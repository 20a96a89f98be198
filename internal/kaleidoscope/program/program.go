package program

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/artuross/kaleidoscope/internal/defaults"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/ast"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/lexer"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/parser"
	"github.com/artuross/kaleidoscope/internal/log/semconv"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	tracerName = "github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
)

// ParseError is returned by Driver.Parse. It keeps the source so callers can
// render a diagnostic.
type ParseError struct {
	Name   string
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Name, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Program is a fully parsed source buffer.
type Program struct {
	ID    string
	Name  string
	Items []ast.Node
}

// Driver parses whole source buffers. Each call uses its own lexer and parser,
// so a Driver may be shared between goroutines.
type Driver struct {
	tracer     trace.Tracer
	precedence parser.PrecedenceTable
}

func New(options ...func(*Driver)) *Driver {
	driver := Driver{
		tracer:     defaults.TracerProvider.Tracer(tracerName),
		precedence: parser.DefaultPrecedence,
	}

	for _, apply := range options {
		apply(&driver)
	}

	return &driver
}

func WithTracerProvider(tp trace.TracerProvider) func(*Driver) {
	return func(d *Driver) {
		d.tracer = tp.Tracer(tracerName)
	}
}

func WithPrecedenceTable(table parser.PrecedenceTable) func(*Driver) {
	return func(d *Driver) {
		d.precedence = table
	}
}

// Parse reads every top-level item of source. Semicolons between items are
// statement terminators and are skipped. The first error aborts the parse.
func (d *Driver) Parse(ctx context.Context, name string, source string) (*Program, error) {
	id := uuid.NewString()

	ctx, span := d.tracer.Start(
		ctx,
		"program.Parse",
		trace.WithAttributes(
			attribute.String(semconv.ParseID, id),
			attribute.String(semconv.SourceName, name),
			attribute.Int(semconv.SourceBytes, len(source)),
		),
	)
	defer span.End()

	logger := zerolog.Ctx(ctx).With().
		Str(semconv.ParseID, id).
		Str(semconv.SourceName, name).
		Logger()

	items, err := d.parseItems(ctx, &logger, source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")

		return nil, &ParseError{Name: name, Source: source, Err: err}
	}

	span.SetAttributes(attribute.Int(semconv.ItemCount, len(items)))

	logger.Debug().Int(semconv.ItemCount, len(items)).Msg("parsed program")

	program := Program{
		ID:    id,
		Name:  name,
		Items: items,
	}

	return &program, nil
}

func (d *Driver) parseItems(ctx context.Context, logger *zerolog.Logger, source string) ([]ast.Node, error) {
	p := parser.New(lexer.New(source), parser.WithPrecedenceTable(d.precedence))

	items := make([]ast.Node, 0)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := p.Current()
		if err != nil {
			return nil, err
		}

		switch token.Kind {
		case lexer.TokenKindEndOfInput:
			return items, nil

		case lexer.TokenKindSemicolon:
			if err := p.Skip(); err != nil {
				return nil, err
			}

			continue
		}

		node, err := p.Parse()
		if err != nil {
			return nil, err
		}

		logger.Debug().
			Int(semconv.ItemIndex, len(items)).
			Str(semconv.NodeKind, node.Kind().String()).
			Msg("parsed item")

		items = append(items, node)
	}
}

// ParseFiles parses every file concurrently. Results are in the order of
// paths. The first failure cancels the remaining parses.
func (d *Driver) ParseFiles(ctx context.Context, paths []string) ([]*Program, error) {
	programs := make([]*Program, len(paths))

	group, ctx := errgroup.WithContext(ctx)

	for index, path := range paths {
		group.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read source file: %w", err)
			}

			program, err := d.Parse(ctx, path, string(data))
			if err != nil {
				return err
			}

			programs[index] = program

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return programs, nil
}

// IsSourceError reports whether err was caused by the parsed text rather
// than by the environment.
func IsSourceError(err error) bool {
	return errors.Is(err, parser.ErrSyntax) ||
		errors.Is(err, parser.ErrUnknownOperator) ||
		errors.Is(err, lexer.ErrInvalidNumber)
}
