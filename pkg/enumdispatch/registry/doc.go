// Package registry provides a generic thread-safe store for values indexed
// by a comparable key. It backs the enumdispatch instance caches.
//
// Registry is designed for read-heavy workloads using sync.RWMutex.
// Entries are never evicted; the eager cache fills a registry up front,
// the lazy cache grows one entry at a time through GetOrCreate.
//
// # Basic Usage
//
//	r := registry.New[string, int]()
//	r.Register("one", 1)
//
//	value, ok := r.Get("one")
//	if ok {
//	    fmt.Println(value) // Output: 1
//	}
//
// # Lazy Initialization
//
// GetOrCreate is atomic: the factory function is called at most once per
// key, even under concurrent access, and every competing caller observes
// the same stored value.
//
//	inst := r.GetOrCreate("users", func() *Instance {
//	    return newInstance("users")
//	})
package registry
