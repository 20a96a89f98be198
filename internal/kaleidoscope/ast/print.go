package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Fprint writes node as an indented tree, one node per line, children
// indented by two spaces below their parent.
func Fprint(w io.Writer, node Node) error {
	p := printer{w: w}

	return Walk(&p, node)
}

// Sprint is Fprint into a string.
func Sprint(node Node) string {
	var b strings.Builder

	// strings.Builder never fails
	_ = Fprint(&b, node)

	return b.String()
}

type printer struct {
	w      io.Writer
	indent int
}

func (p *printer) VisitNumberLiteral(node *NumberLiteral) error {
	return p.line("Number %s", formatNumber(node.Value))
}

func (p *printer) VisitIdentifier(node *Identifier) error {
	return p.line("Identifier %s", node.Name)
}

func (p *printer) VisitBinaryOperation(node *BinaryOperation) error {
	if err := p.line("BinaryOperation %c", node.Operator); err != nil {
		return err
	}

	return p.children(node.Left, node.Right)
}

func (p *printer) VisitCall(node *Call) error {
	if err := p.line("Call %s", node.Callee); err != nil {
		return err
	}

	return p.children(node.Arguments...)
}

func (p *printer) VisitPrototype(node *Prototype) error {
	name := node.Name
	if name == "" {
		name = "<anonymous>"
	}

	if err := p.line("Prototype %s:", name); err != nil {
		return err
	}

	p.indent++
	defer func() { p.indent-- }()

	for _, param := range node.Parameters {
		if err := p.line("- %s", param); err != nil {
			return err
		}
	}

	return nil
}

func (p *printer) VisitFunctionDef(node *FunctionDef) error {
	if err := p.line("Function"); err != nil {
		return err
	}

	return p.children(node.Prototype, node.Body)
}

func (p *printer) children(nodes ...Node) error {
	p.indent++
	defer func() { p.indent-- }()

	for _, child := range nodes {
		if err := Walk(p, child); err != nil {
			return err
		}
	}

	return nil
}

func (p *printer) line(format string, args ...any) error {
	_, err := fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))

	return err
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
