package possible

// Map transforms a Present payload with fn. Null and Absent pass through
// untouched and fn is never called for them.
func Map[T, U any](p Possible[T], fn func(T) U) Possible[U] {
	switch p.state {
	case StatePresent:
		return Of(fn(p.value))
	case StateNull:
		return Null[U]()
	case StateAbsent:
		return Absent[U]()
	}
	return Absent[U]()
}

// MapOr applies fn to a Present payload, or returns def for Null and Absent
// alike. def is evaluated eagerly; see MapOrElse.
func MapOr[T, U any](p Possible[T], def U, fn func(T) U) U {
	if p.state == StatePresent {
		return fn(p.value)
	}
	return def
}

// MapOrElse applies fn to a Present payload, or computes the fallback for
// Null and Absent alike.
func MapOrElse[T, U any](p Possible[T], def func() U, fn func(T) U) U {
	if p.state == StatePresent {
		return fn(p.value)
	}
	return def()
}

// OkOr returns the payload when p is Present, otherwise err. Which kind of
// emptiness caused the error is not preserved; callers that care should
// inspect State first.
func (p Possible[T]) OkOr(err error) (T, error) {
	if p.state == StatePresent {
		return p.value, nil
	}
	var zero T
	return zero, err
}

// OkOrElse returns the payload when p is Present, otherwise the error
// produced by fn.
func (p Possible[T]) OkOrElse(fn func() error) (T, error) {
	if p.state == StatePresent {
		return p.value, nil
	}
	var zero T
	return zero, fn()
}
