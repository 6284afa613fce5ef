package syncmap

import "sync"

// Map is a thread-safe generic map keyed by name that keeps insertion order.
type Map[T any] struct {
	mux  sync.RWMutex
	m    map[string]T
	keys []string
}

// New creates an empty map.
func New[T any]() *Map[T] {
	return &Map[T]{m: make(map[string]T)}
}

// Get retrieves an item by name.
func (r *Map[T]) Get(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Set adds or replaces an item; a replaced item keeps its position.
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		r.keys = append(r.keys, name)
	}
	r.m[name] = value
}

// SetIfAbsent adds an item unless the name is taken and reports whether it
// was added.
func (r *Map[T]) SetIfAbsent(name string, value T) bool {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; ok {
		return false
	}
	r.keys = append(r.keys, name)
	r.m[name] = value
	return true
}

// Delete removes an item by name.
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		return
	}
	delete(r.m, name)
	for i, k := range r.keys {
		if k == name {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			break
		}
	}
}

// Keys returns names in insertion order.
func (r *Map[T]) Keys() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return append([]string(nil), r.keys...)
}

// List returns items in insertion order.
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.keys))
	for _, k := range r.keys {
		ret = append(ret, r.m[k])
	}
	return ret
}

// Len returns the number of items.
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.keys)
}
