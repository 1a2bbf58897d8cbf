package vector

// Lifecycle bundles the element-type capabilities a vector needs when it
// creates, duplicates, relocates or retires element values. Every hook is
// optional; a nil hook selects the plain-data behavior noted below, so the
// zero Lifecycle describes an ordinary value type.
//
// Hooks that may fail return an error; the vector propagates it after
// unwinding whatever partial work the failed operation had done.
type Lifecycle[T any] struct {
	// New produces a value for default-construction (NewSize, Resize
	// growth, Emplace with a nil constructor). Nil: the zero value.
	New func() (T, error)
	// Clone duplicates a value, e.g. by deep-copying owned resources.
	// Nil: plain assignment is a correct duplicate.
	Clone func(T) (T, error)
	// Move relocates a value out of a slot, leaving the slot raw. It must
	// not fail. Nil: bitwise transfer plus zero-clearing the source.
	Move func(src *T) T
	// Dispose retires a live value before its slot turns raw again.
	// Nil: no teardown needed. The slot is zero-cleared either way, so
	// dead slots never pin memory through stale references.
	Dispose func(*T)
}

// relocates resolves the migration strategy for the element type, once:
// buffer migration relocates values (never fails) unless the type declares
// that duplication is the only safe transfer — a Clone hook without a Move
// hook. Then migration duplicates, keeping every source intact until all
// duplicates succeeded.
func (lc Lifecycle[T]) relocates() bool {
	return lc.Clone == nil || lc.Move != nil
}

func (lc Lifecycle[T]) construct() (T, error) {
	if lc.New != nil {
		return lc.New()
	}
	var zero T
	return zero, nil
}

func (lc Lifecycle[T]) clone(v T) (T, error) {
	if lc.Clone != nil {
		return lc.Clone(v)
	}
	return v, nil
}

func (lc Lifecycle[T]) relocate(src *T) T {
	if lc.Move != nil {
		return lc.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v
}

func (lc Lifecycle[T]) dispose(slot *T) {
	if lc.Dispose != nil {
		lc.Dispose(slot)
	}
	var zero T
	*slot = zero
}
