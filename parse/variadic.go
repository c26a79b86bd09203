package parse

// Alternate tries each parser in order from the same input and returns the
// first success. With no parsers it always fails.
func Alternate[V any](ps ...Parser[V]) Func[V] {
	switch len(ps) {
	case 0:
		return func(in Input) Result[V] { return Failure[V](in) }
	case 1:
		return ps[0].Parse
	}
	return Alter[V](ps[0], Alternate(ps[1:]...))
}

// Sequence runs the parsers one after another and collects their values.
// If any of them fails, the whole sequence fails at the original input.
func Sequence[V any](ps ...Parser[V]) Func[[]V] {
	return func(in Input) Result[[]V] {
		values := make([]V, 0, len(ps))
		cur := in
		for _, p := range ps {
			r := p.Parse(cur)
			if !r.OK {
				return Failure[[]V](in)
			}
			values = append(values, r.Value)
			cur = r.Input
		}
		return Success(cur, values)
	}
}
