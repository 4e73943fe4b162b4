package possible

// Mutating operations. Each one fully swaps the variant or leaves the
// container untouched; no partially-written state is ever observable. The
// payload slot is zeroed whenever the container leaves the Present state so
// old values do not linger.

// Take moves the value out, leaving the container Absent. It never leaves
// Null behind: taking a value must read back as "nothing was supplied", not
// as a null the caller never wrote. The prior content is returned whole, so
// Take on a Null container yields Null.
func (p *Possible[T]) Take() Possible[T] {
	prev := *p
	*p = Possible[T]{}
	return prev
}

// Replace stores v as Present and returns the prior content unchanged.
func (p *Possible[T]) Replace(v T) Possible[T] {
	prev := *p
	*p = Of(v)
	return prev
}

// Set stores v as Present, dropping whatever was there.
func (p *Possible[T]) Set(v T) {
	*p = Of(v)
}

// SetNull makes the container explicitly null.
func (p *Possible[T]) SetNull() {
	*p = Null[T]()
}

// Clear resets the container to Absent.
func (p *Possible[T]) Clear() {
	*p = Possible[T]{}
}

// Insert stores v as Present and returns a pointer to the stored payload,
// valid until the next mutation.
func (p *Possible[T]) Insert(v T) *T {
	*p = Of(v)
	return &p.value
}

// GetOrInsert stores v when the container is Null or Absent, then returns a
// pointer to the payload. An already-Present value is kept.
func (p *Possible[T]) GetOrInsert(v T) *T {
	if p.state != StatePresent {
		*p = Of(v)
	}
	return &p.value
}

// GetOrInsertZero stores the zero value of T when the container is Null or
// Absent, then returns a pointer to the payload.
func (p *Possible[T]) GetOrInsertZero() *T {
	if p.state != StatePresent {
		var zero T
		*p = Of(zero)
	}
	return &p.value
}

// GetOrInsertFunc stores the result of fn when the container is Null or
// Absent, then returns a pointer to the payload. fn is not called when a
// value is already Present.
func (p *Possible[T]) GetOrInsertFunc(fn func() T) *T {
	if p.state != StatePresent {
		*p = Of(fn())
	}
	return &p.value
}

// Ptr returns a pointer to the payload when Present, letting callers mutate
// it in place, and nil otherwise. The pointer is valid until the next
// mutation of the container.
func (p *Possible[T]) Ptr() *T {
	if p.state == StatePresent {
		return &p.value
	}
	return nil
}
