/*
Package vector implements a growable array container built directly on raw
element storage (see package mem), designed for use-cases where element
lifecycle — construction, duplication, relocation, disposal — must be under
the container's explicit control.

A Vector tracks a logical size inside a storage buffer of possibly larger
capacity: slots below the size hold live values, slots above it hold raw
storage. Every mutating operation maintains that split and unwinds partial
work before surfacing a failure, so a vector observed after an error is
either untouched (strong guarantee, the default) or valid-but-rewritten
(erase and the capacity-reuse path of CloneFrom, documented there).

Vectors are not synchronized; concurrent use requires external locking.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vec.vector'.
func tracer() tracing.Trace {
	return tracing.Select("vec.vector")
}
