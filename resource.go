package renderkit

import (
	"errors"
	"sync"
)

// Registry tracks external resources (timers, image handles, object
// URLs) owned by a scope so they can be released deterministically on
// every exit path, instead of depending on garbage collection or a UI
// framework's unmount lifecycle.
type Registry struct {
	mu       sync.Mutex
	order    []string
	disposal map[string]func() error
	disposed bool
}

// NewRegistry creates an empty resource registry
func NewRegistry() *Registry {
	return &Registry{
		disposal: make(map[string]func() error),
	}
}

// Register records a resource under name with its dispose function.
// Registering an existing name replaces its dispose function but keeps
// its position. Registering after DisposeAll is a silent no-op, because
// owners may register fractionally after requesting teardown.
func (r *Registry) Register(name string, dispose func() error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.disposed {
		return
	}

	if _, exists := r.disposal[name]; !exists {
		r.order = append(r.order, name)
	}
	r.disposal[name] = dispose
}

// Unregister removes a resource without disposing it; the caller takes
// back ownership. No-op if absent.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.disposal[name]; !exists {
		return
	}

	delete(r.disposal, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered resources
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.disposal)
}

// Disposed reports whether DisposeAll has run
func (r *Registry) Disposed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disposed
}

// DisposeAll releases every registered resource in reverse registration
// order and marks the registry disposed. Every dispose function runs
// even when earlier ones fail; their errors are joined. Idempotent.
func (r *Registry) DisposeAll() error {
	r.mu.Lock()
	if r.disposed {
		r.mu.Unlock()
		return nil
	}
	r.disposed = true
	order := r.order
	disposal := r.disposal
	r.order = nil
	r.disposal = make(map[string]func() error)
	r.mu.Unlock()

	var errs []error
	for i := len(order) - 1; i >= 0; i-- {
		if dispose := disposal[order[i]]; dispose != nil {
			if err := dispose(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
