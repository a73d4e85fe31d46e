package lookahead

import (
	"errors"
	"runtime"
)

// ErrCancelled is returned from Search/Simplify/SCC/SelectLookahead when
// the caller's Cancel channel fired mid-search.
var ErrCancelled = errors.New("lookahead: cancelled")

// ErrOutOfMemory is returned when the configured memory ceiling was
// exceeded mid-search.
var ErrOutOfMemory = errors.New("lookahead: allocation ceiling exceeded")

// Limits bounds how long and how much memory a single public operation
// may consume. checkpoint() polls them once per iteration of Search's
// decision loop and once on entry to Simplify, SCC and SelectLookahead; a
// lookahead pass (computeWNB) runs to completion without polling them.
type Limits struct {
	// Cancel, if non-nil, is polled at each checkpoint; a ready channel
	// aborts the search with ErrCancelled.
	Cancel <-chan struct{}
	// MaxAllocBytes, if non-zero, bounds runtime.MemStats.Alloc; once
	// exceeded, the search aborts with ErrOutOfMemory.
	MaxAllocBytes uint64
}

// checkpoint polls cancellation and the memory ceiling, returning a plain
// error the caller can propagate rather than unwinding via a panic.
func (e *Engine) checkpoint() error {
	select {
	case <-e.limits.Cancel:
		return ErrCancelled
	default:
	}
	if e.limits.MaxAllocBytes > 0 {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		if ms.Alloc > e.limits.MaxAllocBytes {
			return ErrOutOfMemory
		}
	}
	return nil
}
