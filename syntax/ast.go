package syntax

import (
	"fmt"
	"strconv"
)

// OpCode identifies a binary operator.
type OpCode int

const (
	Add OpCode = iota
	Sub
	Mul
	Div
	// Mod and Pow are part of the operator set but no grammar rule
	// produces them yet.
	Mod
	Pow
)

func (op OpCode) String() string {
	switch op {
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Mul:
		return "Mul"
	case Div:
		return "Div"
	case Mod:
		return "Mod"
	case Pow:
		return "Pow"
	default:
		return fmt.Sprintf("OpCode(%d)", int(op))
	}
}

// Expr is a node of the expression tree: either an Int or a *BinOp.
type Expr interface {
	String() string
	expr()
}

// Int is an integer literal.
type Int int64

func (Int) expr() {}

func (i Int) String() string {
	return "Int(" + strconv.FormatInt(int64(i), 10) + ")"
}

// BinOp applies Op to Left and Right. A BinOp is the only owner of its
// operands; trees never share nodes.
type BinOp struct {
	Left  Expr
	Op    OpCode
	Right Expr
}

func (*BinOp) expr() {}

func (b *BinOp) String() string {
	return fmt.Sprintf("BinOp(%s, %s, %s)", b.Left, b.Op, b.Right)
}
