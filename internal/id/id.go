// Package id mints process-unique identifiers for buffers and views.
package id

import "sync/atomic"

// BufferID is an opaque, process-unique, never-reused buffer identifier.
type BufferID uint64

// ViewID is an opaque, process-unique, never-reused view identifier.
type ViewID uint64

var (
	nextBuffer uint64
	nextView   uint64
)

// NextBufferID returns the next monotonic buffer id. The counter starts at 1.
func NextBufferID() BufferID {
	return BufferID(atomic.AddUint64(&nextBuffer, 1))
}

// NextViewID returns the next monotonic view id. The counter starts at 1.
func NextViewID() ViewID {
	return ViewID(atomic.AddUint64(&nextView, 1))
}
