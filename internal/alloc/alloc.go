// Package alloc holds the process-wide allocator and debug-print
// callbacks a caller supplies at creation time. Modeled on
// engine/internal/ctxt's single driver/GPU singleton set once by the
// first successful load and read thereafter by every later call.
package alloc

import "sync"

// Callbacks is the caller-supplied allocator pair plus debug-print hook.
// Alloc/Free model the two injected callables of the "caller-
// supplied allocator" note; DebugPrint receives diagnostic detail that
// must never influence control flow.
type Callbacks struct {
	Alloc     func(size uintptr) uintptr
	Free      func(ptr uintptr)
	DebugPrint func(format string, args ...interface{})
}

var (
	mu  sync.Mutex
	set bool
	cbs Callbacks
)

// Set establishes the process-wide callbacks exactly once. Subsequent
// calls are no-ops: once installed by the first successful creation,
// callbacks are read-only for the lifetime of the process.
func Set(c Callbacks) {
	mu.Lock()
	defer mu.Unlock()
	if set {
		return
	}
	cbs = c
	set = true
}

// Get returns the installed callbacks and whether any have been set.
func Get() (Callbacks, bool) {
	mu.Lock()
	defer mu.Unlock()
	return cbs, set
}

// DebugPrintf forwards to the installed DebugPrint callback, if any and
// if non-nil; it is always safe to call even before Set.
func DebugPrintf(format string, args ...interface{}) {
	mu.Lock()
	c, ok := cbs, set
	mu.Unlock()
	if ok && c.DebugPrint != nil {
		c.DebugPrint(format, args...)
	}
}
