/*
Package mem provides raw element storage for container implementations.

A RawBuffer owns a block of storage sized for exactly N elements of a type,
without knowing anything about element lifecycle: it hands out slot
addresses, transfers ownership in O(1), and frees its block on release.
Which slots hold live values and which hold raw (dead) storage is a
protocol of the owning container, not of the buffer.

Allocation requests are accounted through an Allocator, so that storage
exhaustion is an observable, testable condition rather than a runtime
abort.
*/
package mem

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'vec.mem'.
func tracer() tracing.Trace {
	return tracing.Select("vec.mem")
}
