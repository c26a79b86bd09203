package syntax

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

// Recognize reports whether text is a sentence of the built-in EBNF grammar.
// It works from the grammar description alone and shares no code with
// Parse, so the two can be checked against each other.
func Recognize(text string) (bool, error) {
	g, err := Grammar()
	if err != nil {
		return false, err
	}
	return RecognizeGrammar(g, StartProduction, text), nil
}

// RecognizeGrammar reports whether all of text can be derived from the
// production start of g. Left-recursive productions never match.
func RecognizeGrammar(g ebnf.Grammar, start, text string) bool {
	r := &recognizer{
		grammar:  g,
		input:    text,
		memo:     make(map[memoKey][]int),
		visiting: make(map[memoKey]int),
		cutDepth: noCut,
	}
	for _, end := range r.matchName(start, 0) {
		if end == len(text) {
			return true
		}
	}
	return false
}

type memoKey struct {
	name   string
	offset int
}

const noCut = math.MaxInt

// recognizer computes, for an expression and a start offset, every offset
// at which a match of the expression can end.
//
// visiting maps the productions currently being matched to their nesting
// depth. cutDepth is the shallowest of them that was hit again and cut
// short while matching the current production; results that depend on a
// cut above themselves are incomplete and are not memoized.
type recognizer struct {
	grammar  ebnf.Grammar
	input    string
	memo     map[memoKey][]int
	visiting map[memoKey]int
	cutDepth int
}

func (r *recognizer) match(expr ebnf.Expression, offset int) []int {
	switch e := expr.(type) {
	case nil:
		return []int{offset}

	case *ebnf.Token:
		if strings.HasPrefix(r.input[offset:], e.String) {
			return []int{offset + len(e.String)}
		}
		return nil

	case *ebnf.Range:
		return r.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		ends := []int{offset}
		for _, item := range e {
			var next []int
			for _, end := range ends {
				next = append(next, r.match(item, end)...)
			}
			ends = dedup(next)
			if len(ends) == 0 {
				return nil
			}
		}
		return ends

	case ebnf.Alternative:
		var ends []int
		for _, alt := range e {
			ends = append(ends, r.match(alt, offset)...)
		}
		return dedup(ends)

	case *ebnf.Repetition:
		seen := map[int]bool{offset: true}
		ends := []int{offset}
		frontier := []int{offset}
		for len(frontier) > 0 {
			var next []int
			for _, pos := range frontier {
				for _, end := range r.match(e.Body, pos) {
					if !seen[end] {
						seen[end] = true
						next = append(next, end)
					}
				}
			}
			ends = append(ends, next...)
			frontier = next
		}
		return dedup(ends)

	case *ebnf.Option:
		return dedup(append([]int{offset}, r.match(e.Body, offset)...))

	case *ebnf.Group:
		return r.match(e.Body, offset)

	case *ebnf.Name:
		return r.matchName(e.String, offset)

	default:
		return nil
	}
}

// matchName matches a named production with memoization and cycle detection.
func (r *recognizer) matchName(name string, offset int) []int {
	key := memoKey{name: name, offset: offset}

	if ends, ok := r.memo[key]; ok {
		return ends
	}
	if depth, ok := r.visiting[key]; ok {
		r.cutDepth = min(r.cutDepth, depth)
		return nil
	}

	prod, ok := r.grammar[name]
	if !ok {
		r.memo[key] = nil
		return nil
	}

	depth := len(r.visiting)
	outer := r.cutDepth
	r.cutDepth = noCut

	r.visiting[key] = depth
	ends := r.match(prod.Expr, offset)
	delete(r.visiting, key)

	if r.cutDepth >= depth {
		r.memo[key] = ends
		r.cutDepth = outer
	} else {
		r.cutDepth = min(outer, r.cutDepth)
	}
	return ends
}

func (r *recognizer) matchRange(begin, end string, offset int) []int {
	if offset >= len(r.input) {
		return nil
	}
	lo, _ := utf8.DecodeRuneInString(begin)
	hi, _ := utf8.DecodeRuneInString(end)
	ch, size := utf8.DecodeRuneInString(r.input[offset:])
	if ch < lo || ch > hi {
		return nil
	}
	return []int{offset + size}
}

func dedup(offsets []int) []int {
	if len(offsets) < 2 {
		return offsets
	}
	sort.Ints(offsets)
	out := offsets[:1]
	for _, o := range offsets[1:] {
		if o != out[len(out)-1] {
			out = append(out, o)
		}
	}
	return out
}
