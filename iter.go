package possible

import "iter"

// Seq returns a lazy sequence over the payload: one element for Present, none
// for Null or Absent. Each call to Seq starts a fresh traversal; a single
// traversal is not restartable mid-stream.
func (p Possible[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if p.state == StatePresent {
			yield(p.value)
		}
	}
}

// Collect gathers a sequence of tri-state elements into a tri-state slice.
// The result is Present of all payloads iff every element is Present; the
// first Null or Absent element aborts the traversal and yields Null of the
// whole. Which kind of emptiness aborted is not preserved at the collection
// level.
func Collect[T any](seq iter.Seq[Possible[T]]) Possible[[]T] {
	var out []T
	for e := range seq {
		if e.state != StatePresent {
			return Null[[]T]()
		}
		out = append(out, e.value)
	}
	return Of(out)
}

// CollectSlice is Collect over an already-materialised slice.
func CollectSlice[T any](elems []Possible[T]) Possible[[]T] {
	out := make([]T, 0, len(elems))
	for _, e := range elems {
		if e.state != StatePresent {
			return Null[[]T]()
		}
		out = append(out, e.value)
	}
	return Of(out)
}
