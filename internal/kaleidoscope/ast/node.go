package ast

var (
	_ Node = (*BinaryOperation)(nil)
	_ Node = (*Call)(nil)
	_ Node = (*FunctionDef)(nil)
	_ Node = (*Identifier)(nil)
	_ Node = (*NumberLiteral)(nil)
	_ Node = (*Prototype)(nil)
)

type NodeKind int

const (
	NodeKindNumberLiteral NodeKind = iota + 1
	NodeKindIdentifier
	NodeKindBinaryOperation
	NodeKindCall
	NodeKindPrototype
	NodeKindFunctionDef
)

func (k NodeKind) String() string {
	switch k {
	case NodeKindNumberLiteral:
		return "NumberLiteral"

	case NodeKindIdentifier:
		return "Identifier"

	case NodeKindBinaryOperation:
		return "BinaryOperation"

	case NodeKindCall:
		return "Call"

	case NodeKindPrototype:
		return "Prototype"

	case NodeKindFunctionDef:
		return "FunctionDef"

	default:
		return "Unknown"
	}
}

// Node is implemented only by the types in this package. Children are owned
// by exactly one parent and nodes are not modified after construction.
type Node interface {
	Kind() NodeKind
	isNode()
}

type (
	NumberLiteral struct {
		Value float64
	}

	Identifier struct {
		Name string
	}

	BinaryOperation struct {
		Operator rune
		Left     Node
		Right    Node
	}

	Call struct {
		Callee    string
		Arguments []Node
	}

	Prototype struct {
		Name       string
		Parameters []string
	}

	FunctionDef struct {
		Prototype *Prototype
		Body      Node
	}
)

func (n *NumberLiteral) Kind() NodeKind   { return NodeKindNumberLiteral }
func (n *Identifier) Kind() NodeKind      { return NodeKindIdentifier }
func (n *BinaryOperation) Kind() NodeKind { return NodeKindBinaryOperation }
func (n *Call) Kind() NodeKind            { return NodeKindCall }
func (n *Prototype) Kind() NodeKind       { return NodeKindPrototype }
func (n *FunctionDef) Kind() NodeKind     { return NodeKindFunctionDef }

func (n *NumberLiteral) isNode()   {}
func (n *Identifier) isNode()      {}
func (n *BinaryOperation) isNode() {}
func (n *Call) isNode()            {}
func (n *Prototype) isNode()       {}
func (n *FunctionDef) isNode()     {}

// IsAnonymous reports whether the function wraps a bare top-level expression.
func (n *FunctionDef) IsAnonymous() bool {
	return n.Prototype != nil && n.Prototype.Name == "" && len(n.Prototype.Parameters) == 0
}
