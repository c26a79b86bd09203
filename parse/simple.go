package parse

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

var commentPattern = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`^/\*[\S\s]*?\*/`)
})

// AnyChar consumes a single rune. It fails only on empty input.
// Bytes that are not valid UTF-8 are consumed one at a time as
// utf8.RuneError.
func AnyChar(in Input) Result[rune] {
	if in.Empty() {
		return Failure[rune](in)
	}
	r, size := utf8.DecodeRuneInString(in.Rest())
	return Success(in.Advance(size), r)
}

// Literal matches exactly the text expected.
func Literal(expected string) Func[struct{}] {
	return func(in Input) Result[struct{}] {
		if !strings.HasPrefix(in.Rest(), expected) {
			return Failure[struct{}](in)
		}
		return Success(in.Advance(len(expected)), struct{}{})
	}
}

// Match succeeds with the text matched by re at the start of the input.
// re must be anchored with ^.
func Match(re *regexp.Regexp) Func[string] {
	return func(in Input) Result[string] {
		loc := re.FindStringIndex(in.Rest())
		if loc == nil || loc[0] != 0 {
			return Failure[string](in)
		}
		return Success(in.Advance(loc[1]), in.Rest()[:loc[1]])
	}
}

// Comment matches the shortest /* ... */ block comment.
func Comment(in Input) Result[struct{}] {
	return Map(Match(commentPattern()), func(string) struct{} { return struct{}{} }).Parse(in)
}

// WSChar matches a single whitespace rune.
func WSChar() Func[rune] {
	return Pred(Func[rune](AnyChar), unicode.IsSpace)
}

// Space0 matches zero or more whitespace runes.
func Space0() Func[[]rune] {
	return Many[rune](WSChar())
}

// Space1 matches one or more whitespace runes.
func Space1() Func[[]rune] {
	return Some[rune](WSChar())
}

// WrapSpace0 matches p with optional whitespace on either side.
func WrapSpace0[V any](p Parser[V]) Func[V] {
	return Wrap[[]rune, V, []rune](Space0(), p, Space0())
}
