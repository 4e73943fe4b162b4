package possible

import "cmp"

// FromPtr converts Go's pointer-style optional. A nil pointer becomes Null,
// never Absent: a two-state optional cannot say "the field was never
// supplied", so the conversion does not invent it.
func FromPtr[T any](v *T) Possible[T] {
	if v == nil {
		return Null[T]()
	}
	return Of(*v)
}

// FromOK converts Go's comma-ok optional. !ok becomes Null for the same
// reason FromPtr maps nil to Null.
func FromOK[T any](v T, ok bool) Possible[T] {
	if !ok {
		return Null[T]()
	}
	return Of(v)
}

// ToPtr projects onto a two-state pointer optional, pointing at a copy of the
// payload. The projection is lossy: Null and Absent both become
// nil, and FromPtr on the result can only ever recover Null.
func (p Possible[T]) ToPtr() *T {
	if p.state != StatePresent {
		return nil
	}
	v := p.value
	return &v
}

// Transpose swaps the nesting of a fallible optional. The (Possible, error)
// pair stands in for an optional result: a non-nil err dominates and comes
// back with an Absent value, otherwise p passes through error-free. It is the
// inverse direction of OkOr, bridging comma-error returns into the container:
//
//	n, err := strconv.Atoi(raw)
//	count, err := possible.Transpose(possible.Of(n), err)
func Transpose[T any](p Possible[T], err error) (Possible[T], error) {
	if err != nil {
		return Absent[T](), err
	}
	return p, nil
}

// Equal reports structural equality: same variant, and for Present, equal
// payloads. For comparable T this is what == already does; Equal exists for
// symmetry with Compare and for call sites that read better with a name.
func Equal[T comparable](a, b Possible[T]) bool {
	return a == b
}

// Contains reports whether p is Present and holds v.
func Contains[T comparable](p Possible[T], v T) bool {
	return p.state == StatePresent && p.value == v
}

// Compare orders Present before Null before Absent, and two Present values by
// their payloads. The total order makes Possible usable as a sort key.
func Compare[T cmp.Ordered](a, b Possible[T]) int {
	if a.state == StatePresent && b.state == StatePresent {
		return cmp.Compare(a.value, b.value)
	}
	// Present sorts first, then Null, then Absent.
	return cmp.Compare(rank(a.state), rank(b.state))
}

func rank(s State) int {
	switch s {
	case StatePresent:
		return 0
	case StateNull:
		return 1
	case StateAbsent:
		return 2
	}
	return 3
}

// Flatten collapses one level of nesting. A Present outer layer yields the
// inner value as-is; Null and Absent outer layers reproduce themselves.
func Flatten[T any](p Possible[Possible[T]]) Possible[T] {
	switch p.state {
	case StatePresent:
		return p.value
	case StateNull:
		return Null[T]()
	case StateAbsent:
		return Absent[T]()
	}
	return Absent[T]()
}
