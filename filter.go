package possible

// Filter keeps a Present value only when pred accepts it. A rejected value
// downgrades to Null, recording "a value existed but was refused" as distinct
// from "no value was ever given". Null and Absent pass through unchanged and
// pred is not called for them.
func (p Possible[T]) Filter(pred func(T) bool) Possible[T] {
	if p.state != StatePresent {
		return p
	}
	if pred(p.value) {
		return p
	}
	return Null[T]()
}
