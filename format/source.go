package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/ace/syntax"
)

// SourceEncoder prints a tree back as an expression that parses to the same
// tree, adding only the parentheses the grammar needs.
type SourceEncoder struct {
	w io.Writer
}

func NewSourceEncoder(w io.Writer) *SourceEncoder {
	return &SourceEncoder{w: w}
}

func (e *SourceEncoder) Encode(expr syntax.Expr) error {
	text, err := e.MarshalText(expr)
	if err != nil {
		return err
	}
	return writeLine(e.w, text)
}

func (e *SourceEncoder) MarshalText(expr syntax.Expr) ([]byte, error) {
	var sb strings.Builder
	if err := writeSource(&sb, expr); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func precedence(op syntax.OpCode) (int, string, bool) {
	switch op {
	case syntax.Add:
		return 1, "+", true
	case syntax.Sub:
		return 1, "-", true
	case syntax.Mul:
		return 2, "*", true
	case syntax.Div:
		return 2, "/", true
	default:
		return 0, "", false
	}
}

func writeSource(sb *strings.Builder, expr syntax.Expr) error {
	switch e := expr.(type) {
	case syntax.Int:
		if e < 0 {
			return fmt.Errorf("negative literal %d has no source form", int64(e))
		}
		sb.WriteString(strconv.FormatInt(int64(e), 10))
		return nil
	case *syntax.BinOp:
		prec, symbol, ok := precedence(e.Op)
		if !ok {
			return fmt.Errorf("operator %s has no source form", e.Op)
		}
		// The left operand of a level is one level tighter; the right
		// operand recurses into the same level.
		if err := writeOperand(sb, e.Left, func(p int) bool { return p <= prec }); err != nil {
			return err
		}
		sb.WriteString(" " + symbol + " ")
		return writeOperand(sb, e.Right, func(p int) bool { return p < prec })
	default:
		return fmt.Errorf("unsupported expression %T", expr)
	}
}

func writeOperand(sb *strings.Builder, expr syntax.Expr, needsParens func(int) bool) error {
	b, ok := expr.(*syntax.BinOp)
	if !ok {
		return writeSource(sb, expr)
	}
	prec, _, _ := precedence(b.Op)
	if !needsParens(prec) {
		return writeSource(sb, expr)
	}
	sb.WriteString("(")
	if err := writeSource(sb, expr); err != nil {
		return err
	}
	sb.WriteString(")")
	return nil
}
