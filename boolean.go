package possible

// Or returns p when it is Present, otherwise b. Both Null and Absent take the
// fallback, which may itself resolve to any of the three states. b is
// evaluated eagerly; use OrElse when computing the fallback is costly.
func (p Possible[T]) Or(b Possible[T]) Possible[T] {
	if p.state == StatePresent {
		return p
	}
	return b
}

// OrElse returns p when it is Present, otherwise the result of fn.
func (p Possible[T]) OrElse(fn func() Possible[T]) Possible[T] {
	if p.state == StatePresent {
		return p
	}
	return fn()
}

// And returns b when a is Present, letting b's own Null or Absent propagate.
// A Null a short-circuits to Null and an Absent a short-circuits to Absent:
// the emptier state wins without consulting b.
func And[T, U any](a Possible[T], b Possible[U]) Possible[U] {
	switch a.state {
	case StatePresent:
		return b
	case StateNull:
		return Null[U]()
	case StateAbsent:
		return Absent[U]()
	}
	return Absent[U]()
}

// AndThen calls fn with a's payload when a is Present and returns its result
// verbatim, so a step returning Null downgrades the whole chain to Null and
// one returning Absent downgrades it to Absent. Null and Absent inputs pass
// through without invoking fn.
func AndThen[T, U any](a Possible[T], fn func(T) Possible[U]) Possible[U] {
	switch a.state {
	case StatePresent:
		return fn(a.value)
	case StateNull:
		return Null[U]()
	case StateAbsent:
		return Absent[U]()
	}
	return Absent[U]()
}
