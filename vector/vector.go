package vector

import (
	"fmt"

	"github.com/npillmayer/vec/maybe"
	"github.com/npillmayer/vec/mem"
)

// Vector is a growable array of T. It owns exactly one storage buffer and
// a logical size: slots [0, size) hold live values, slots [size, cap) are
// raw. The zero value is NOT ready for use — create vectors with New or
// NewSize so they carry their allocator and lifecycle.
type Vector[T any] struct {
	data  mem.RawBuffer[T]
	size  int
	lc    Lifecycle[T]
	alloc mem.Allocator
}

// New creates an empty vector of capacity 0.
//
// Use it like this:
//
//	v := vector.New(vector.WithAllocator[int](mem.Limited(4096)))
func New[T any](opts ...Option[T]) Vector[T] {
	v := Vector[T]{alloc: mem.DefaultAllocator()}
	for _, option := range opts {
		v = option(v)
	}
	return v
}

// NewSize creates a vector of n default-constructed elements. If a
// mid-construction failure occurs, everything built so far is retired and
// the error is returned.
func NewSize[T any](n int, opts ...Option[T]) (Vector[T], error) {
	v := New(opts...)
	if err := v.Resize(n); err != nil {
		v.Drop()
		return Vector[T]{}, err
	}
	return v, nil
}

// Option is a type to help initializing vectors at creation time.
type Option[T any] func(Vector[T]) Vector[T]

// WithAllocator makes the vector account its storage against a. The
// default is the package-wide unlimited allocator.
func WithAllocator[T any](a mem.Allocator) Option[T] {
	return func(v Vector[T]) Vector[T] {
		v.alloc = a
		return v
	}
}

// WithLifecycle installs element lifecycle hooks (see Lifecycle).
func WithLifecycle[T any](lc Lifecycle[T]) Option[T] {
	return func(v Vector[T]) Vector[T] {
		v.lc = lc
		return v
	}
}

// --- API -------------------------------------------------------------------

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of element slots the vector's buffer holds.
func (v *Vector[T]) Cap() int { return v.data.Cap() }

// IsEmpty returns true if the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool { return v.size == 0 }

// Get returns the element at index i. i must be < Len().
func (v *Vector[T]) Get(i int) T {
	assertThat(i >= 0 && i < v.size, "vector index out of bounds: %d with length %d", i, v.size)
	return *v.data.At(i)
}

// At returns the address of the element at index i, for in-place reads and
// writes. Writing through the pointer overwrites the slot without invoking
// lifecycle hooks; use Set for a lifecycle-correct replacement. The
// address is valid only until the next mutating operation. i must be
// < Len().
func (v *Vector[T]) At(i int) *T {
	assertThat(i >= 0 && i < v.size, "vector index out of bounds: %d with length %d", i, v.size)
	return v.data.At(i)
}

// Set replaces the element at index i, retiring the previous value.
// i must be < Len().
func (v *Vector[T]) Set(i int, val T) {
	assertThat(i >= 0 && i < v.size, "vector index out of bounds: %d with length %d", i, v.size)
	v.lc.dispose(v.data.At(i))
	*v.data.At(i) = val
}

// First returns the first element, or Nothing for an empty vector.
func (v *Vector[T]) First() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.data.At(0))
}

// Last returns the last element, or Nothing for an empty vector.
func (v *Vector[T]) Last() maybe.Maybe[T] {
	if v.size == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(*v.data.At(v.size - 1))
}

// Reserve grows the vector's capacity to exactly newCap, migrating all
// live elements into a fresh buffer. A no-op if newCap does not exceed the
// current capacity. Strong guarantee: on any failure the vector is exactly
// as it was before the call.
func (v *Vector[T]) Reserve(newCap int) error {
	if newCap <= v.data.Cap() {
		return nil
	}
	grown, err := mem.Alloc[T](v.alloc, newCap)
	if err != nil {
		return err
	}
	if err := v.migrateAll(&grown); err != nil {
		grown.Release()
		return err
	}
	v.data.Swap(&grown)
	grown.Release() // the old storage
	tracer().Debugf("vector grew to capacity %d", newCap)
	return nil
}

// Resize sets the logical size to newSize. Shrinking retires the elements
// beyond the new size; growing reserves capacity and default-constructs
// the new tail. The size is committed only once every construction has
// succeeded (a failed grow unwinds the partial tail, though a capacity
// increase may persist).
func (v *Vector[T]) Resize(newSize int) error {
	assertThat(newSize >= 0, "negative vector size %d", newSize)
	if newSize < v.size {
		for i := newSize; i < v.size; i++ {
			v.lc.dispose(v.data.At(i))
		}
		v.size = newSize
		return nil
	}
	if err := v.Reserve(newSize); err != nil {
		return err
	}
	for i := v.size; i < newSize; i++ {
		val, err := v.lc.construct()
		if err != nil {
			for j := i - 1; j >= v.size; j-- {
				v.lc.dispose(v.data.At(j))
			}
			return fmt.Errorf("vector: resize construction failed: %w", err)
		}
		*v.data.At(i) = val
	}
	v.size = newSize
	return nil
}

// PushBack appends val, growing the buffer if necessary, and returns the
// address of the new element (valid until the next mutation). The argument
// is relinquished by the caller — it is placed, never cloned.
func (v *Vector[T]) PushBack(val T) (*T, error) {
	if v.size < v.data.Cap() {
		slot := v.data.At(v.size)
		*slot = val
		v.size++
		return slot, nil
	}
	return v.emplaceGrow(v.size, func() (T, error) { return val, nil })
}

// EmplaceBack appends an element built by ctor, constructing it directly
// for its destination: with spare capacity no intermediate value exists,
// and on growth the element is built for the new buffer before any
// migration starts. A nil ctor default-constructs. Strong guarantee.
func (v *Vector[T]) EmplaceBack(ctor func() (T, error)) (*T, error) {
	if ctor == nil {
		ctor = v.lc.construct
	}
	if v.size < v.data.Cap() {
		val, err := ctor()
		if err != nil {
			return nil, fmt.Errorf("vector: element construction failed: %w", err)
		}
		slot := v.data.At(v.size)
		*slot = val
		v.size++
		return slot, nil
	}
	return v.emplaceGrow(v.size, ctor)
}

// PopBack retires the last element. The vector must not be empty. Never
// fails.
func (v *Vector[T]) PopBack() {
	assertThat(v.size > 0, "attempt to pop from an empty vector")
	v.size--
	v.lc.dispose(v.data.At(v.size))
}

// Clone duplicates the vector: the copy holds element-wise duplicates in a
// buffer of its own (capacity trimmed to the length) and is independently
// destructible. Strong guarantee.
func (v *Vector[T]) Clone() (Vector[T], error) {
	return v.cloneWith(v.alloc, v.lc)
}

// cloneWith duplicates the receiver's elements into a new vector governed
// by the given allocator and lifecycle.
func (v *Vector[T]) cloneWith(alloc mem.Allocator, lc Lifecycle[T]) (Vector[T], error) {
	w := Vector[T]{lc: lc, alloc: alloc}
	buf, err := mem.Alloc[T](alloc, v.size)
	if err != nil {
		return Vector[T]{}, err
	}
	for i := 0; i < v.size; i++ {
		dup, err := v.lc.clone(*v.data.At(i))
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				lc.dispose(buf.At(j))
			}
			buf.Release()
			return Vector[T]{}, fmt.Errorf("vector: element clone failed: %w", err)
		}
		*buf.At(i) = dup
	}
	w.data.Swap(&buf)
	w.size = v.size
	return w, nil
}

// CloneFrom turns the vector into a duplicate of rhs (copy assignment).
// If rhs does not fit the current capacity, a full duplicate is built and
// swapped in (strong guarantee). Otherwise the existing buffer is reused:
// overlapping slots are replaced one by one and the tail retired or
// extended — on a mid-way clone failure the vector stays valid but keeps
// the slots already rewritten.
func (v *Vector[T]) CloneFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	if rhs.size > v.data.Cap() {
		tmp, err := rhs.cloneWith(v.alloc, v.lc)
		if err != nil {
			return err
		}
		v.Swap(&tmp)
		tmp.Drop()
		return nil
	}
	n := v.size
	if rhs.size < n {
		n = rhs.size
	}
	for i := 0; i < n; i++ {
		dup, err := v.lc.clone(*rhs.data.At(i))
		if err != nil {
			return fmt.Errorf("vector: element clone failed: %w", err)
		}
		v.lc.dispose(v.data.At(i))
		*v.data.At(i) = dup
	}
	for i := rhs.size; i < v.size; i++ { // rhs shorter: retire excess
		v.lc.dispose(v.data.At(i))
	}
	for i := v.size; i < rhs.size; i++ { // rhs longer: clone extra tail
		dup, err := v.lc.clone(*rhs.data.At(i))
		if err != nil {
			for j := i - 1; j >= v.size; j-- {
				v.lc.dispose(v.data.At(j))
			}
			return fmt.Errorf("vector: element clone failed: %w", err)
		}
		*v.data.At(i) = dup
	}
	v.size = rhs.size
	return nil
}

// Take steals the vector's contents (move construction): the returned
// vector owns the buffer and elements, the receiver ends up valid and
// empty with its storage released.
func (v *Vector[T]) Take() Vector[T] {
	w := Vector[T]{lc: v.lc, alloc: v.alloc}
	w.data.Swap(&v.data)
	w.size = v.size
	v.size = 0
	return w
}

// MoveFrom steals rhs's contents (move assignment), retiring the
// receiver's own elements first. rhs ends up valid and empty.
func (v *Vector[T]) MoveFrom(rhs *Vector[T]) {
	if v == rhs {
		return
	}
	v.Drop()
	v.data.Swap(&rhs.data)
	v.size = rhs.size
	v.lc = rhs.lc
	v.alloc = rhs.alloc
	rhs.size = 0
}

// Swap exchanges the contents of two vectors in O(1). Never fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.lc, other.lc = other.lc, v.lc
	v.alloc, other.alloc = other.alloc, v.alloc
}

// Drop retires all elements and releases the buffer, returning its bytes
// to the allocator. The vector stays usable as an empty one.
func (v *Vector[T]) Drop() {
	for i := 0; i < v.size; i++ {
		v.lc.dispose(v.data.At(i))
	}
	v.size = 0
	v.data.Release()
}
