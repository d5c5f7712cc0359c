// Package registry maps event keys to handlers.
package registry

import "sync"

// Handler computes a value from an event payload. A non-nil error aborts
// only that invocation; the loop keeps running.
type Handler func(payload string) (string, error)

// Registry is a thread-safe mapping from event key to handler. The loop
// goroutine registers and looks up; asynchronous workers look up only.
// The zero value is not usable; create with New.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register stores handler under key, overwriting any existing entry.
// Registering a nil handler returns ErrNilHandler and leaves the registry
// unchanged.
func (r *Registry) Register(key string, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[key] = handler
	return nil
}

// Lookup returns the handler for key. It is a pure query with no side
// effects; the second return value is false if no handler is registered.
func (r *Registry) Lookup(key string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[key]
	return h, ok
}

// Remove deletes the handler for key, reporting whether one existed.
func (r *Registry) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.handlers[key]; !ok {
		return false
	}
	delete(r.handlers, key)
	return true
}

// Count returns the number of registered handlers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// Keys returns the registered keys in no particular order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.handlers) == 0 {
		return nil
	}

	keys := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		keys = append(keys, k)
	}
	return keys
}

// Clear removes all handlers.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers = make(map[string]Handler)
}
