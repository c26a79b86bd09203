// Package format prints expression trees.
package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/ace/syntax"
)

type Encoder interface {
	Encode(expr syntax.Expr) error
	MarshalText(expr syntax.Expr) ([]byte, error)
}

// Names lists the encoders known to NewEncoder.
var Names = []string{"text", "json", "repr", "source"}

// NewEncoder returns the encoder registered under name, writing to w.
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewASTJSONEncoder(w), nil
	case "repr":
		return NewReprEncoder(w), nil
	case "source":
		return NewSourceEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s", name)
	}
}

func writeLine(w io.Writer, text []byte) error {
	if _, err := w.Write(text); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
