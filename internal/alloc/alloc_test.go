package alloc

import "testing"

func TestSetIsOnceOnly(t *testing.T) {
	var calls int
	Set(Callbacks{DebugPrint: func(format string, args ...interface{}) { calls++ }})
	Set(Callbacks{DebugPrint: func(format string, args ...interface{}) { calls += 100 }})

	DebugPrintf("x")
	if calls != 1 {
		t.Fatalf("DebugPrintf after double Set: have %d calls want 1 (second Set should be a no-op)", calls)
	}
}

func TestGetReportsSetAfterSet(t *testing.T) {
	// Set is process-wide and may already have been called by an earlier
	// test in this package; either way, Get must report it as set.
	Set(Callbacks{})
	if _, ok := Get(); !ok {
		t.Fatalf("Get after Set: have ok=false want true")
	}
}
