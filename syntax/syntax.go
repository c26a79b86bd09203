// Package syntax implements the arithmetic expression grammar on top of the
// parse combinators.
//
// The grammar has two precedence levels:
//
//	additive       = multiplicative [ ("+" | "-") additive ]
//	multiplicative = atom [ ("*" | "/") multiplicative ]
//	atom           = integer | "(" additive ")"
//
// Whitespace is allowed around operators and inside parentheses only.
// Because the recursive call sits on the right operand, chains of the same
// level group to the right: 6-3-2 parses as 6-(3-2).
package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/dhamidi/ace/parse"
)

// ErrSyntax is returned when the input is not a complete expression.
var ErrSyntax = errors.New("syntax error")

var integerPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^[0-9]+`)
})

type grammar struct {
	additive       parse.Parser[Expr]
	multiplicative parse.Parser[Expr]
	atom           parse.Parser[Expr]
}

var rules = sync.OnceValue(newGrammar)

func newGrammar() *grammar {
	g := &grammar{}

	additive := parse.Lazy(func() parse.Parser[Expr] { return g.additive })
	multiplicative := parse.Lazy(func() parse.Parser[Expr] { return g.multiplicative })

	g.atom = parse.Alternate[Expr](
		parse.Func[Expr](Integer),
		parse.Wrap[struct{}, Expr, struct{}](
			parse.Literal("("),
			parse.WrapSpace0[Expr](additive),
			parse.Literal(")"),
		),
	)
	g.multiplicative = infix(g.atom, parse.Alternate[OpCode](
		Opcode("*", Mul),
		Opcode("/", Div),
	), multiplicative)
	g.additive = infix(g.multiplicative, parse.Alternate[OpCode](
		Opcode("+", Add),
		Opcode("-", Sub),
	), additive)

	return g
}

// infix builds "operand [op self]". A dangling operator leaves the input
// right after operand, exactly as if only operand had been tried.
func infix(operand parse.Parser[Expr], op parse.Parser[OpCode], self parse.Parser[Expr]) parse.Func[Expr] {
	tail := parse.Opt[parse.Pair[OpCode, Expr]](
		parse.Concat[OpCode, Expr](parse.WrapSpace0[OpCode](op), self),
	)
	return parse.Map(
		parse.Concat[Expr, *parse.Pair[OpCode, Expr]](operand, tail),
		func(p parse.Pair[Expr, *parse.Pair[OpCode, Expr]]) Expr {
			if p.Second == nil {
				return p.First
			}
			return &BinOp{Left: p.First, Op: p.Second.First, Right: p.Second.Second}
		},
	)
}

// Opcode matches the operator text and yields op.
func Opcode(text string, op OpCode) parse.Func[OpCode] {
	return parse.Map(parse.Literal(text), func(struct{}) OpCode { return op })
}

// Integer matches a run of decimal digits. Runs that do not fit in an int64
// do not match.
func Integer(in parse.Input) parse.Result[Expr] {
	r := parse.Match(integerPattern()).Parse(in)
	if !r.OK {
		return parse.Failure[Expr](in)
	}
	n, err := strconv.ParseInt(r.Value, 10, 64)
	if err != nil {
		return parse.Failure[Expr](in)
	}
	return parse.Success[Expr](r.Input, Int(n))
}

// Additive is the top-level rule: sums and differences of products.
func Additive() parse.Parser[Expr] {
	return rules().additive
}

// Multiplicative is products and quotients of atoms.
func Multiplicative() parse.Parser[Expr] {
	return rules().multiplicative
}

// Atom is an integer or a parenthesized expression.
func Atom() parse.Parser[Expr] {
	return rules().atom
}

// Parse parses text as a single expression. All of text must be consumed,
// including any leading or trailing whitespace, which the grammar does not
// allow.
func Parse(text string) (Expr, error) {
	r := parse.Parse[Expr](parse.All(Additive()), text)
	if !r.OK {
		return nil, fmt.Errorf("%w: not a complete expression", ErrSyntax)
	}
	return r.Value, nil
}

// MustParse is like Parse but panics if text does not parse.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}
