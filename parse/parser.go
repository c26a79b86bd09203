// Package parse provides backtracking parser combinators over immutable
// string input.
//
// A Parser consumes a prefix of its Input and either succeeds with a value
// and the remaining input, or fails and hands back the input it was given so
// that an alternative can be tried from the same position.
package parse

// Input is an immutable view over the unconsumed part of a source string.
// Advancing never modifies an Input; it returns a new one.
type Input struct {
	src string
	off int
}

// NewInput returns an Input positioned at the start of src.
func NewInput(src string) Input {
	return Input{src: src}
}

// Rest returns the text that has not been consumed yet.
func (in Input) Rest() string {
	return in.src[in.off:]
}

// Offset returns the byte offset of the input position within the source.
func (in Input) Offset() int {
	return in.off
}

// Empty reports whether all of the source has been consumed.
func (in Input) Empty() bool {
	return in.off >= len(in.src)
}

// Advance returns the input n bytes further along.
func (in Input) Advance(n int) Input {
	return Input{src: in.src, off: in.off + n}
}

// Result is the outcome of running a parser.
// On success Input holds the remaining input. On failure it holds the
// input the parser was given, unchanged.
type Result[V any] struct {
	Input Input
	Value V
	OK    bool
}

// Success builds a successful result.
func Success[V any](rest Input, value V) Result[V] {
	return Result[V]{Input: rest, Value: value, OK: true}
}

// Failure builds a failed result positioned at in.
func Failure[V any](in Input) Result[V] {
	return Result[V]{Input: in}
}

// Parser is anything that can parse an Input into a V.
type Parser[V any] interface {
	Parse(in Input) Result[V]
}

// Func adapts an ordinary function to the Parser interface.
type Func[V any] func(in Input) Result[V]

func (f Func[V]) Parse(in Input) Result[V] {
	return f(in)
}

// Parse runs p over the whole of text, starting at offset zero.
func Parse[V any](p Parser[V], text string) Result[V] {
	return p.Parse(NewInput(text))
}
