package mem

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned when an Allocator denies a reservation.
var ErrOutOfMemory = errors.New("mem: allocation denied, out of memory")

// Allocator accounts for storage reservations, in bytes. Implementations
// decide whether a reservation is granted; the storage itself always comes
// from the Go runtime. A granted Reserve must eventually be balanced by a
// Free of the same byte count.
type Allocator interface {
	// Reserve requests n bytes of storage. It either grants the full
	// request or returns an error; no partial grants.
	Reserve(n int) error
	// Free returns n previously reserved bytes.
	Free(n int)
}

// GoAllocator grants every reservation. It still keeps count of used
// bytes, which makes leak checks in tests cheap.
//
// The zero value is ready for use, but note that a Vector created without
// options shares the package-wide default instance.
type GoAllocator struct {
	used int
}

// NewGoAllocator returns an unlimited allocator.
func NewGoAllocator() *GoAllocator { return &GoAllocator{} }

func (a *GoAllocator) Reserve(n int) error {
	a.used += n
	return nil
}

func (a *GoAllocator) Free(n int) {
	a.used -= n
	assertThat(a.used >= 0, "more bytes freed than reserved (%d)", a.used)
}

// Used returns the number of currently reserved bytes.
func (a *GoAllocator) Used() int { return a.used }

// LimitAllocator denies reservations beyond a fixed budget. It is the
// means of exercising out-of-memory paths: a container backed by a
// LimitAllocator will see ErrOutOfMemory from growth once the budget is
// exhausted.
type LimitAllocator struct {
	limit int
	used  int
	peak  int
}

// Limited returns an allocator with a budget of limit bytes.
func Limited(limit int) *LimitAllocator {
	return &LimitAllocator{limit: limit}
}

func (a *LimitAllocator) Reserve(n int) error {
	if a.used+n > a.limit {
		tracer().Debugf("reservation of %d bytes denied, %d of %d in use", n, a.used, a.limit)
		return fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrOutOfMemory, n, a.used, a.limit)
	}
	a.used += n
	if a.used > a.peak {
		a.peak = a.used
	}
	return nil
}

func (a *LimitAllocator) Free(n int) {
	a.used -= n
	assertThat(a.used >= 0, "more bytes freed than reserved (%d)", a.used)
}

// Used returns the number of currently reserved bytes.
func (a *LimitAllocator) Used() int { return a.used }

// Peak returns the high-water mark of reserved bytes. It is not lowered
// by Free, so it reflects the maximum footprint over the allocator's
// lifetime.
func (a *LimitAllocator) Peak() int { return a.peak }

var defaultAllocator = NewGoAllocator()

// DefaultAllocator returns the package-wide unlimited allocator, used by
// buffers created without an explicit one.
func DefaultAllocator() Allocator { return defaultAllocator }
