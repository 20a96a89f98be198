package ast

import (
	"encoding/json"
)

type jsonNode struct {
	Kind       string      `json:"kind"`
	Value      *float64    `json:"value,omitempty"`
	Name       string      `json:"name,omitempty"`
	Operator   string      `json:"operator,omitempty"`
	Left       *jsonNode   `json:"left,omitempty"`
	Right      *jsonNode   `json:"right,omitempty"`
	Callee     string      `json:"callee,omitempty"`
	Arguments  []*jsonNode `json:"arguments,omitempty"`
	Parameters []string    `json:"parameters,omitempty"`
	Prototype  *jsonNode   `json:"prototype,omitempty"`
	Body       *jsonNode   `json:"body,omitempty"`
}

// MarshalJSON encodes node as a tree of objects tagged by "kind".
func MarshalJSON(node Node) ([]byte, error) {
	jn, err := toJSONNode(node)
	if err != nil {
		return nil, err
	}

	return json.Marshal(jn)
}

func toJSONNode(node Node) (*jsonNode, error) {
	var e jsonEncoder
	if err := Walk(&e, node); err != nil {
		return nil, err
	}

	return e.out, nil
}

type jsonEncoder struct {
	out *jsonNode
}

func (e *jsonEncoder) VisitNumberLiteral(node *NumberLiteral) error {
	value := node.Value
	e.out = &jsonNode{Kind: node.Kind().String(), Value: &value}

	return nil
}

func (e *jsonEncoder) VisitIdentifier(node *Identifier) error {
	e.out = &jsonNode{Kind: node.Kind().String(), Name: node.Name}

	return nil
}

func (e *jsonEncoder) VisitBinaryOperation(node *BinaryOperation) error {
	left, err := toJSONNode(node.Left)
	if err != nil {
		return err
	}

	right, err := toJSONNode(node.Right)
	if err != nil {
		return err
	}

	e.out = &jsonNode{
		Kind:     node.Kind().String(),
		Operator: string(node.Operator),
		Left:     left,
		Right:    right,
	}

	return nil
}

func (e *jsonEncoder) VisitCall(node *Call) error {
	args := make([]*jsonNode, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		jn, err := toJSONNode(arg)
		if err != nil {
			return err
		}

		args = append(args, jn)
	}

	e.out = &jsonNode{
		Kind:      node.Kind().String(),
		Callee:    node.Callee,
		Arguments: args,
	}

	return nil
}

func (e *jsonEncoder) VisitPrototype(node *Prototype) error {
	e.out = &jsonNode{
		Kind:       node.Kind().String(),
		Name:       node.Name,
		Parameters: node.Parameters,
	}

	return nil
}

func (e *jsonEncoder) VisitFunctionDef(node *FunctionDef) error {
	proto, err := toJSONNode(node.Prototype)
	if err != nil {
		return err
	}

	body, err := toJSONNode(node.Body)
	if err != nil {
		return err
	}

	e.out = &jsonNode{
		Kind:      node.Kind().String(),
		Prototype: proto,
		Body:      body,
	}

	return nil
}
