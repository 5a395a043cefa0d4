package seedpaint

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Sketch{}
)

func init() {
	MustRegister(func() Sketch { return Lines{} })
	MustRegister(func() Sketch { return Rays{} })
}

// Register adds a sketch constructor under the name its sketches report.
// Registering a name twice fails.
func Register(factory func() Sketch) error {
	name := factory().Name()
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		return fmt.Errorf("register sketch %q: already registered", name)
	}
	registry[name] = factory
	return nil
}

// MustRegister is like Register but panics on a duplicate name.
func MustRegister(factory func() Sketch) {
	if err := Register(factory); err != nil {
		panic(err)
	}
}

// Lookup returns a new instance of the named sketch.
func Lookup(name string) (Sketch, bool) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Sketches returns the registered sketch names in sorted order.
func Sketches() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
