package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/ace/syntax"
)

type ASTJSONEncoder struct {
	w io.Writer
}

func NewASTJSONEncoder(w io.Writer) *ASTJSONEncoder {
	return &ASTJSONEncoder{w: w}
}

func (e *ASTJSONEncoder) Encode(expr syntax.Expr) error {
	text, err := e.MarshalText(expr)
	if err != nil {
		return err
	}
	return writeLine(e.w, text)
}

func (e *ASTJSONEncoder) MarshalText(expr syntax.Expr) ([]byte, error) {
	node, err := exprToJSON(expr)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(node, "", "  ")
}

type astJSONNode struct {
	Kind  string       `json:"kind"`
	Value *int64       `json:"value,omitempty"`
	Op    string       `json:"op,omitempty"`
	Left  *astJSONNode `json:"left,omitempty"`
	Right *astJSONNode `json:"right,omitempty"`
}

func exprToJSON(expr syntax.Expr) (*astJSONNode, error) {
	switch e := expr.(type) {
	case syntax.Int:
		v := int64(e)
		return &astJSONNode{Kind: "int", Value: &v}, nil
	case *syntax.BinOp:
		left, err := exprToJSON(e.Left)
		if err != nil {
			return nil, err
		}
		right, err := exprToJSON(e.Right)
		if err != nil {
			return nil, err
		}
		return &astJSONNode{Kind: "binop", Op: e.Op.String(), Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("unsupported expression %T", expr)
	}
}
