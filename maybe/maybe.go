// Package maybe provides an optional-value type for accessors that may
// have nothing to return, such as the first or last element of an empty
// container.
package maybe

// Maybe holds either a value of type T or nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust returns true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// Unwrap returns the held value together with a presence flag, in the
// comma-ok style of map access.
func (m Maybe[T]) Unwrap() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the held value, or def if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the held value, if any.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// AndThen chains a computation that may itself come up empty.
func AndThen[T, S any](f func(T) Maybe[S], m Maybe[T]) Maybe[S] {
	if v, ok := m.Unwrap(); ok {
		return f(v)
	}
	return Nothing[S]()
}
