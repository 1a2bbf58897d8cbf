package vector

import "fmt"

// Iterator designates a position within a vector: an offset plus a
// reference to the container, covering [Begin(), End()]. Iterators are
// logically invalidated by any mutation that reallocates or shifts
// elements; using a stale iterator is a caller error that is not detected
// at runtime.
type Iterator[T any] struct {
	vec *Vector[T]
	inx int
}

// Begin returns an iterator at the first element (equal to End() for an
// empty vector).
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v}
}

// End returns the one-past-end iterator. It designates a valid insertion
// position but no element.
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, inx: v.size}
}

// Next returns the iterator one position further.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{vec: it.vec, inx: it.inx + 1}
}

// Advance returns the iterator n positions further.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	return Iterator[T]{vec: it.vec, inx: it.inx + n}
}

// Index returns the iterator's offset from Begin().
func (it Iterator[T]) Index() int { return it.inx }

// Eq returns true if both iterators designate the same position of the
// same vector.
func (it Iterator[T]) Eq(other Iterator[T]) bool {
	return it.vec == other.vec && it.inx == other.inx
}

// Elem returns the address of the designated element, valid until the next
// mutating operation. The iterator must designate an element, not End().
func (it Iterator[T]) Elem() *T {
	assertThat(it.vec != nil, "iterator not bound to a vector")
	assertThat(it.inx >= 0 && it.inx < it.vec.size,
		"iterator out of bounds: position %d with length %d", it.inx, it.vec.size)
	return it.vec.data.At(it.inx)
}

// Value returns the designated element.
func (it Iterator[T]) Value() T {
	return *it.Elem()
}

// Each calls f with index and value of every live element, front to back.
// f must not mutate the vector.
func (v *Vector[T]) Each(f func(i int, val T)) {
	for i := 0; i < v.size; i++ {
		f(i, *v.data.At(i))
	}
}

// Insert places val at the position designated by pos, shifting the tail
// one slot to the right, and returns an iterator to the inserted element.
// pos may be anywhere in [Begin(), End()]; inserting at End() with spare
// capacity is O(1). The argument is relinquished by the caller. Strong
// guarantee.
func (v *Vector[T]) Insert(pos Iterator[T], val T) (Iterator[T], error) {
	return v.Emplace(pos, func() (T, error) { return val, nil })
}

// Emplace inserts an element built by ctor at the position designated by
// pos (see Insert). When insertion forces a growth, the element is
// constructed directly at its target offset in the new buffer. A nil ctor
// default-constructs. Strong guarantee: any failure leaves the vector
// untouched.
func (v *Vector[T]) Emplace(pos Iterator[T], ctor func() (T, error)) (Iterator[T], error) {
	assertThat(pos.vec == v, "iterator bound to a different vector")
	assertThat(pos.inx >= 0 && pos.inx <= v.size,
		"insertion position out of bounds: %d with length %d", pos.inx, v.size)
	if ctor == nil {
		ctor = v.lc.construct
	}
	at := pos.inx
	if at == v.size {
		if _, err := v.EmplaceBack(ctor); err != nil {
			return Iterator[T]{}, err
		}
		return Iterator[T]{vec: v, inx: at}, nil
	}
	if v.size < v.data.Cap() {
		// In-place shift: build the incoming element first — the only step
		// that can fail — then relocate the tail right and place it.
		val, err := ctor()
		if err != nil {
			return Iterator[T]{}, fmt.Errorf("vector: element construction failed: %w", err)
		}
		for i := v.size; i > at; i-- {
			*v.data.At(i) = v.lc.relocate(v.data.At(i - 1))
		}
		*v.data.At(at) = val
		v.size++
		return Iterator[T]{vec: v, inx: at}, nil
	}
	if _, err := v.emplaceGrow(at, ctor); err != nil {
		return Iterator[T]{}, err
	}
	return Iterator[T]{vec: v, inx: at}, nil
}

// Erase removes the element designated by pos, shifting the tail one slot
// to the left, and returns an iterator to the element that followed the
// removed one. pos must designate an element.
//
// For relocating element types Erase cannot fail. For duplicating types
// (Clone without Move) the shift duplicates each tail element into its new
// slot; a failing clone mid-shift surfaces the error with the vector still
// valid — all slots live, size unchanged — but slots left of the failure
// already rewritten (weak guarantee).
func (v *Vector[T]) Erase(pos Iterator[T]) (Iterator[T], error) {
	assertThat(pos.vec == v, "iterator bound to a different vector")
	assertThat(pos.inx >= 0 && pos.inx < v.size,
		"erase position out of bounds: %d with length %d", pos.inx, v.size)
	at := pos.inx
	if v.lc.relocates() {
		v.lc.dispose(v.data.At(at))
		for i := at; i < v.size-1; i++ {
			*v.data.At(i) = v.lc.relocate(v.data.At(i + 1))
		}
		v.size--
		return Iterator[T]{vec: v, inx: at}, nil
	}
	for i := at; i < v.size-1; i++ {
		dup, err := v.lc.clone(*v.data.At(i + 1))
		if err != nil {
			return Iterator[T]{}, fmt.Errorf("vector: element clone failed during erase: %w", err)
		}
		v.lc.dispose(v.data.At(i))
		*v.data.At(i) = dup
	}
	v.size--
	v.lc.dispose(v.data.At(v.size))
	return Iterator[T]{vec: v, inx: at}, nil
}
