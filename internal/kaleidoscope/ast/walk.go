package ast

import "fmt"

// Visitor has one method per node variant. Adding a variant breaks every
// implementation until it handles the new case.
type Visitor interface {
	VisitNumberLiteral(node *NumberLiteral) error
	VisitIdentifier(node *Identifier) error
	VisitBinaryOperation(node *BinaryOperation) error
	VisitCall(node *Call) error
	VisitPrototype(node *Prototype) error
	VisitFunctionDef(node *FunctionDef) error
}

// Walk dispatches node to the matching Visitor method. Visitors descend into
// children themselves by calling Walk again.
func Walk(v Visitor, node Node) error {
	switch node.Kind() {
	case NodeKindNumberLiteral:
		return v.VisitNumberLiteral(node.(*NumberLiteral))

	case NodeKindIdentifier:
		return v.VisitIdentifier(node.(*Identifier))

	case NodeKindBinaryOperation:
		return v.VisitBinaryOperation(node.(*BinaryOperation))

	case NodeKindCall:
		return v.VisitCall(node.(*Call))

	case NodeKindPrototype:
		return v.VisitPrototype(node.(*Prototype))

	case NodeKindFunctionDef:
		return v.VisitFunctionDef(node.(*FunctionDef))

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node kind %s", node.Kind()))
	}
}
