package parse

// Pair holds the values of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Concat runs p1 and then p2 on what p1 left over.
func Concat[A, B any](p1 Parser[A], p2 Parser[B]) Func[Pair[A, B]] {
	return func(in Input) Result[Pair[A, B]] {
		r1 := p1.Parse(in)
		if !r1.OK {
			return Failure[Pair[A, B]](in)
		}
		r2 := p2.Parse(r1.Input)
		if !r2.OK {
			return Failure[Pair[A, B]](in)
		}
		return Success(r2.Input, Pair[A, B]{First: r1.Value, Second: r2.Value})
	}
}

// Alter is ordered choice: p2 is only tried, from the same input, when p1
// fails.
func Alter[V any](p1, p2 Parser[V]) Func[V] {
	return func(in Input) Result[V] {
		if r := p1.Parse(in); r.OK {
			return r
		}
		return p2.Parse(in)
	}
}

// Opt never fails. When p does not match it succeeds with a nil value
// without consuming anything.
func Opt[V any](p Parser[V]) Func[*V] {
	return func(in Input) Result[*V] {
		r := p.Parse(in)
		if !r.OK {
			return Success[*V](in, nil)
		}
		v := r.Value
		return Success(r.Input, &v)
	}
}

// Many applies p until it fails and collects the values, possibly none.
// p must consume input whenever it succeeds, or Many will not terminate.
func Many[V any](p Parser[V]) Func[[]V] {
	return func(in Input) Result[[]V] {
		var values []V
		for {
			r := p.Parse(in)
			if !r.OK {
				return Success(in, values)
			}
			in = r.Input
			values = append(values, r.Value)
		}
	}
}

// Some is like Many but requires at least one match.
func Some[V any](p Parser[V]) Func[[]V] {
	many := Many(p)
	return func(in Input) Result[[]V] {
		first := p.Parse(in)
		if !first.OK {
			return Failure[[]V](in)
		}
		rest := many.Parse(first.Input)
		return Success(rest.Input, append([]V{first.Value}, rest.Value...))
	}
}

// Map transforms the value of a successful parse with f.
func Map[A, B any](p Parser[A], f func(A) B) Func[B] {
	return func(in Input) Result[B] {
		r := p.Parse(in)
		if !r.OK {
			return Failure[B](in)
		}
		return Success(r.Input, f(r.Value))
	}
}

// Left runs p1 then p2 and keeps the value of p1.
func Left[A, B any](p1 Parser[A], p2 Parser[B]) Func[A] {
	return Map[Pair[A, B], A](Concat(p1, p2), func(p Pair[A, B]) A { return p.First })
}

// Right runs p1 then p2 and keeps the value of p2.
func Right[A, B any](p1 Parser[A], p2 Parser[B]) Func[B] {
	return Map[Pair[A, B], B](Concat(p1, p2), func(p Pair[A, B]) B { return p.Second })
}

// Wrap parses p between lp and rp and keeps only the value of p.
func Wrap[L, V, R any](lp Parser[L], p Parser[V], rp Parser[R]) Func[V] {
	return Left[V, R](Right[L, V](lp, p), rp)
}

// Pred succeeds only when the value parsed by p satisfies predicate.
// A rejected value leaves the input as if p had not run.
func Pred[V any](p Parser[V], predicate func(V) bool) Func[V] {
	return func(in Input) Result[V] {
		r := p.Parse(in)
		if r.OK && predicate(r.Value) {
			return r
		}
		return Failure[V](in)
	}
}

// All succeeds only if p consumes the entire remaining input.
func All[V any](p Parser[V]) Func[V] {
	return func(in Input) Result[V] {
		r := p.Parse(in)
		if !r.OK || !r.Input.Empty() {
			return Failure[V](in)
		}
		return r
	}
}

// Lazy defers obtaining a parser until parse time, which lets grammar rules
// refer to each other before they are all built.
func Lazy[V any](get func() Parser[V]) Func[V] {
	return func(in Input) Result[V] {
		return get().Parse(in)
	}
}
