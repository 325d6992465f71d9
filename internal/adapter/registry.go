package adapter

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]func() Adapter)
)

// Register makes an adapter factory available under the given type
// name. Adapters register themselves from init.
func Register(name string, factory func() Adapter) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// New returns a fresh, unconnected adapter for the given type name.
func New(name string) (Adapter, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown database type %q (registered: %v)", name, Names())
	}
	return factory(), nil
}

// Names returns the registered adapter type names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
