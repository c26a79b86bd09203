package format

import (
	"io"

	"github.com/alecthomas/repr"

	"github.com/dhamidi/ace/syntax"
)

// ReprEncoder dumps the tree as Go values.
type ReprEncoder struct {
	w io.Writer
}

func NewReprEncoder(w io.Writer) *ReprEncoder {
	return &ReprEncoder{w: w}
}

func (e *ReprEncoder) Encode(expr syntax.Expr) error {
	text, err := e.MarshalText(expr)
	if err != nil {
		return err
	}
	return writeLine(e.w, text)
}

func (e *ReprEncoder) MarshalText(expr syntax.Expr) ([]byte, error) {
	return []byte(repr.String(expr, repr.Indent("  "))), nil
}
