package vector

import (
	"fmt"

	"github.com/npillmayer/vec/mem"
)

// migrateAll transfers every live element into dst, which must hold at
// least v.size slots. Relocating types are moved slot by slot, which
// cannot fail. Duplicating types are cloned with all sources kept intact;
// if a clone fails, the duplicates built so far are retired in reverse
// order and dst is left raw — the caller still owns an unmodified vector.
// On success the source slots are raw and dst holds the elements.
func (v *Vector[T]) migrateAll(dst *mem.RawBuffer[T]) error {
	if v.lc.relocates() {
		for i := 0; i < v.size; i++ {
			*dst.At(i) = v.lc.relocate(v.data.At(i))
		}
		return nil
	}
	for i := 0; i < v.size; i++ {
		dup, err := v.lc.clone(*v.data.At(i))
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.lc.dispose(dst.At(j))
			}
			return fmt.Errorf("vector: element clone failed during migration: %w", err)
		}
		*dst.At(i) = dup
	}
	for i := 0; i < v.size; i++ { // all duplicates built; retire originals
		v.lc.dispose(v.data.At(i))
	}
	return nil
}

// emplaceGrow inserts an element built by ctor at index `at` while growing
// into a fresh buffer: the element is constructed directly at its target
// offset, then the prefix [0, at) and suffix [at, size) migrate around it.
// Any failure unwinds the new buffer completely and leaves the vector
// untouched (strong guarantee). Returns the address of the new element.
func (v *Vector[T]) emplaceGrow(at int, ctor func() (T, error)) (*T, error) {
	grown, err := mem.Alloc[T](v.alloc, grownCapacity(v.size))
	if err != nil {
		return nil, err
	}
	val, err := ctor()
	if err != nil {
		grown.Release()
		return nil, fmt.Errorf("vector: element construction failed: %w", err)
	}
	slot := grown.At(at)
	*slot = val
	if err := v.migrateAround(&grown, at); err != nil {
		v.lc.dispose(slot)
		grown.Release()
		return nil, err
	}
	v.data.Swap(&grown)
	grown.Release() // the old storage
	v.size++
	tracer().Debugf("vector grew to capacity %d inserting at %d", v.data.Cap(), at)
	return slot, nil
}

// migrateAround is migrateAll with a one-slot gap at index `at` in dst,
// already occupied by the incoming element: prefix [0, at) keeps its
// offsets, suffix [at, size) lands one slot further. The unwind ladder on
// clone failure retires exactly what this call built — a failing prefix
// clone tears down the duplicated prefix, a failing suffix clone
// additionally the fully-built prefix — but never the incoming element at
// `at`, which the caller constructed and unwinds itself.
func (v *Vector[T]) migrateAround(dst *mem.RawBuffer[T], at int) error {
	if v.lc.relocates() {
		for i := 0; i < at; i++ {
			*dst.At(i) = v.lc.relocate(v.data.At(i))
		}
		for i := at; i < v.size; i++ {
			*dst.At(i + 1) = v.lc.relocate(v.data.At(i))
		}
		return nil
	}
	for i := 0; i < at; i++ {
		dup, err := v.lc.clone(*v.data.At(i))
		if err != nil {
			for j := i - 1; j >= 0; j-- {
				v.lc.dispose(dst.At(j))
			}
			return fmt.Errorf("vector: element clone failed during migration: %w", err)
		}
		*dst.At(i) = dup
	}
	for i := at; i < v.size; i++ {
		dup, err := v.lc.clone(*v.data.At(i))
		if err != nil {
			for j := i; j > at; j-- {
				v.lc.dispose(dst.At(j))
			}
			for j := at - 1; j >= 0; j-- {
				v.lc.dispose(dst.At(j))
			}
			return fmt.Errorf("vector: element clone failed during migration: %w", err)
		}
		*dst.At(i + 1) = dup
	}
	for i := 0; i < v.size; i++ {
		v.lc.dispose(v.data.At(i))
	}
	return nil
}
