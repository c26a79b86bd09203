package format

import (
	"io"

	"github.com/dhamidi/ace/syntax"
)

// TextEncoder writes the debug form of a tree, e.g.
// BinOp(Int(1), Add, Int(2)).
type TextEncoder struct {
	w io.Writer
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(expr syntax.Expr) error {
	text, err := e.MarshalText(expr)
	if err != nil {
		return err
	}
	return writeLine(e.w, text)
}

func (e *TextEncoder) MarshalText(expr syntax.Expr) ([]byte, error) {
	return []byte(expr.String()), nil
}
