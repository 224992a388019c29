package transport

import (
	"fmt"
	"sync"
)

var (
	registryMu sync.RWMutex
	builders   = make(map[string]Builder)
)

// Register makes a builder available for the given backend kind. Backends
// register themselves in init; registering a duplicate kind panics.
func Register(kind string, builder Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := builders[kind]; exists {
		panic(fmt.Sprintf("transport: builder for %q already registered", kind))
	}
	builders[kind] = builder
}

// Lookup returns the builder for kind. The second return is false when the
// backend is not compiled in, in which case dispatch must fail closed.
func Lookup(kind string) (Builder, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	builder, ok := builders[kind]
	return builder, ok
}
