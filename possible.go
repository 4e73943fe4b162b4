// Package possible provides a tri-state optional value that keeps "a present
// value", "an explicitly null value", and "a value that was never supplied"
// apart. Two-state optionals collapse the last two, which loses information
// when round-tripping formats like JSON where `"field": null` and a missing
// key mean different things.
//
// The zero value of Possible is Absent. That is deliberate: a struct field
// that a decoder never touches must read back as "never supplied", not as an
// explicit null the caller did not write.
package possible

import "fmt"

// State identifies which of the three variants a Possible holds.
type State uint8

const (
	// StateAbsent means the value was never supplied. Zero value on purpose.
	StateAbsent State = iota
	// StateNull means the value exists but is explicitly empty.
	StateNull
	// StatePresent means a concrete value is held.
	StatePresent
)

// String returns the variant name.
func (s State) String() string {
	switch s {
	case StateAbsent:
		return "Absent"
	case StateNull:
		return "Null"
	case StatePresent:
		return "Present"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Possible holds zero or one value of T plus the distinction between an
// explicit null and outright absence. It has value semantics: assignment
// copies, and for comparable T two instances compare equal with == iff they
// are the same variant holding equal payloads.
type Possible[T any] struct {
	value T
	state State
}

// Of wraps v as a Present value.
func Of[T any](v T) Possible[T] {
	return Possible[T]{value: v, state: StatePresent}
}

// Null returns the explicitly-null value.
func Null[T any]() Possible[T] {
	return Possible[T]{state: StateNull}
}

// Absent returns the never-supplied value. Identical to the zero value.
func Absent[T any]() Possible[T] {
	return Possible[T]{}
}

// State reports which variant p holds.
func (p Possible[T]) State() State {
	return p.state
}

// IsPresent reports whether p holds a concrete value.
func (p Possible[T]) IsPresent() bool {
	return p.state == StatePresent
}

// IsNull reports whether p is the explicit null.
func (p Possible[T]) IsNull() bool {
	return p.state == StateNull
}

// IsAbsent reports whether p was never supplied.
func (p Possible[T]) IsAbsent() bool {
	return p.state == StateAbsent
}

// IsEmpty reports whether p holds no value, regardless of which kind of
// emptiness that is.
func (p Possible[T]) IsEmpty() bool {
	return p.state != StatePresent
}

// String renders the variant for debugging, e.g. "Present(42)".
func (p Possible[T]) String() string {
	switch p.state {
	case StatePresent:
		return fmt.Sprintf("Present(%v)", p.value)
	case StateNull:
		return "Null"
	}
	return "Absent"
}
