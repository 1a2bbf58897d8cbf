package mem

import (
	"fmt"
	"unsafe"
)

// RawBuffer owns storage for exactly Cap() elements of type T. The buffer
// treats every slot as raw storage: it never constructs, clones or
// disposes element values, and therefore has no failure modes besides the
// initial allocation.
//
// A RawBuffer is not copyable — its allocation identity is unique. Pass it
// by pointer and transfer ownership with Swap. The zero value is an empty
// buffer of capacity 0.
type RawBuffer[T any] struct {
	slots []T
	alloc Allocator
}

// Alloc reserves storage for capacity elements of T with allocator a.
// A capacity of 0 yields an empty buffer without touching the allocator.
// If the allocator denies the reservation, no storage is retained and the
// error is returned as-is.
func Alloc[T any](a Allocator, capacity int) (RawBuffer[T], error) {
	assertThat(capacity >= 0, "negative buffer capacity %d", capacity)
	if a == nil {
		a = DefaultAllocator()
	}
	if capacity == 0 {
		return RawBuffer[T]{alloc: a}, nil
	}
	if err := a.Reserve(capacity * elemSize[T]()); err != nil {
		return RawBuffer[T]{}, err
	}
	tracer().Debugf("allocated buffer for %d slots of %d bytes", capacity, elemSize[T]())
	return RawBuffer[T]{slots: make([]T, capacity), alloc: a}, nil
}

// Cap returns the number of element slots the buffer holds.
func (b *RawBuffer[T]) Cap() int {
	return len(b.slots)
}

// At returns the address of slot i. The slot may hold a live value or raw
// storage; the buffer does not know. i must be < Cap().
func (b *RawBuffer[T]) At(i int) *T {
	assertThat(i < len(b.slots), "slot index out of bounds: %d with capacity %d", i, len(b.slots))
	return &b.slots[i]
}

// Window returns the slot range [i, j) for bulk transfer. Both bounds may
// equal Cap() — the one-past-end sentinel — so Window(0, Cap()) addresses
// the whole buffer and Window(k, k) is an empty range at any valid offset.
func (b *RawBuffer[T]) Window(i, j int) []T {
	assertThat(0 <= i && i <= j && j <= len(b.slots),
		"slot range out of bounds: [%d, %d) with capacity %d", i, j, len(b.slots))
	return b.slots[i:j]
}

// Swap exchanges storage ownership between two buffers. O(1), never fails.
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
	b.alloc, other.alloc = other.alloc, b.alloc
}

// Allocator returns the allocator the buffer accounts against.
func (b *RawBuffer[T]) Allocator() Allocator {
	if b.alloc == nil {
		return DefaultAllocator()
	}
	return b.alloc
}

// Release frees the buffer's storage, returning the reserved bytes to the
// allocator. Any live values the owning container still keeps in the
// buffer's slots must have been disposed beforehand — Release will not do
// it. Releasing an empty buffer is a no-op; the buffer is reusable as an
// empty one afterwards.
func (b *RawBuffer[T]) Release() {
	if b.slots == nil {
		return
	}
	b.alloc.Free(len(b.slots) * elemSize[T]())
	b.slots = nil
}

// elemSize returns the storage footprint of one element slot, in bytes.
func elemSize[T any]() int {
	var t T
	return int(unsafe.Sizeof(t))
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("mem: "+msg, msgargs...)
		panic(msg)
	}
}
