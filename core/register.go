package core

import (
	"fmt"
	"sync"
)

var (
	// mu guards families. NOTE: currently this mutex is unnecessary,
	// since registration happens only from family packages' init
	// functions and callers are expected to serialize access to a given
	// Instance themselves — kept for symmetry with how
	// a registry ought to behave if that ever changes.
	mu       sync.Mutex
	families = make(map[string]Capabilities)
)

// RegisterFamily makes a Capabilities record available under name for
// later lookup by LookupFamily. Intended to be called from a concrete
// chip-family package's init function; panics on a duplicate name, since
// that can only indicate a programming error.
func RegisterFamily(name string, caps Capabilities) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := families[name]; ok {
		panic(fmt.Sprintf("core: RegisterFamily called twice for %q", name))
	}
	families[name] = caps
}

// LookupFamily returns the Capabilities record registered under name, if
// any.
func LookupFamily(name string) (Capabilities, bool) {
	mu.Lock()
	defer mu.Unlock()
	caps, ok := families[name]
	return caps, ok
}

// Families returns the names of every registered family.
func Families() []string {
	mu.Lock()
	defer mu.Unlock()
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	return names
}
