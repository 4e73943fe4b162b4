package possible

// Get returns the payload and whether it was Present. The tri-state collapses
// to Go's comma-ok idiom here; Null and Absent both report false.
func (p Possible[T]) Get() (T, bool) {
	if p.state == StatePresent {
		return p.value, true
	}
	var zero T
	return zero, false
}

// GetOr returns the payload when Present, otherwise def. Null and Absent are
// treated identically. Never panics.
func (p Possible[T]) GetOr(def T) T {
	if p.state == StatePresent {
		return p.value
	}
	return def
}

// GetOrElse returns the payload when Present, otherwise the result of fn.
func (p Possible[T]) GetOrElse(fn func() T) T {
	if p.state == StatePresent {
		return p.value
	}
	return fn()
}

// GetOrZero returns the payload when Present, otherwise the zero value of T.
func (p Possible[T]) GetOrZero() T {
	if p.state == StatePresent {
		return p.value
	}
	var zero T
	return zero
}

// MustGet returns the payload or panics. The panic message names which empty
// state was hit so debugging never conflates an explicit null with a field
// that was never supplied. Prefer GetOr and friends outside of tests and
// program initialisation.
func (p Possible[T]) MustGet() T {
	switch p.state {
	case StatePresent:
		return p.value
	case StateNull:
		panic("possible: MustGet called on a Null value")
	}
	panic("possible: MustGet called on an Absent value")
}

// Expect returns the payload or panics with msg plus the empty state that was
// encountered.
func (p Possible[T]) Expect(msg string) T {
	switch p.state {
	case StatePresent:
		return p.value
	case StateNull:
		panic(msg + ": value is Null")
	}
	panic(msg + ": value is Absent")
}
