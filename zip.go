package possible

// Pair groups the payloads combined by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip combines two values into a Present pair only when both are Present.
// When the operands disagree the emptier state wins: any Absent operand makes
// the result Absent, otherwise any Null operand makes it Null.
func Zip[A, B any](a Possible[A], b Possible[B]) Possible[Pair[A, B]] {
	if a.state == StateAbsent || b.state == StateAbsent {
		return Absent[Pair[A, B]]()
	}
	if a.state == StateNull || b.state == StateNull {
		return Null[Pair[A, B]]()
	}
	return Of(Pair[A, B]{First: a.value, Second: b.value})
}

// Unzip splits a pair back into its halves. Null and Absent inputs reproduce
// themselves on both sides.
func Unzip[A, B any](p Possible[Pair[A, B]]) (Possible[A], Possible[B]) {
	switch p.state {
	case StatePresent:
		return Of(p.value.First), Of(p.value.Second)
	case StateNull:
		return Null[A](), Null[B]()
	case StateAbsent:
		return Absent[A](), Absent[B]()
	}
	return Absent[A](), Absent[B]()
}
