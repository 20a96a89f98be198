package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/artuross/kaleidoscope/internal/kaleidoscope/ast"
	"github.com/artuross/kaleidoscope/internal/kaleidoscope/program"
	"github.com/artuross/kaleidoscope/internal/kaleidoscopeconfig"
)

type jsonProgram struct {
	Name  string            `json:"name"`
	Items []json.RawMessage `json:"items"`
}

// WriteProgram prints every item of prog in the requested format. Tree output
// separates items with an empty line; JSON output is one object per program.
func WriteProgram(w io.Writer, prog *program.Program, format kaleidoscopeconfig.OutputFormat) error {
	switch format {
	case kaleidoscopeconfig.OutputFormatJSON:
		return writeJSON(w, prog)

	case kaleidoscopeconfig.OutputFormatTree, "":
		return writeTree(w, prog)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeTree(w io.Writer, prog *program.Program) error {
	for index, item := range prog.Items {
		if index > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if err := ast.Fprint(w, item); err != nil {
			return fmt.Errorf("print item %d: %w", index, err)
		}
	}

	return nil
}

func writeJSON(w io.Writer, prog *program.Program) error {
	out := jsonProgram{
		Name:  prog.Name,
		Items: make([]json.RawMessage, 0, len(prog.Items)),
	}

	for index, item := range prog.Items {
		data, err := ast.MarshalJSON(item)
		if err != nil {
			return fmt.Errorf("marshal item %d: %w", index, err)
		}

		out.Items = append(out.Items, data)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode program: %w", err)
	}

	return nil
}
