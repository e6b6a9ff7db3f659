// Package registry keeps an ordered collection of mounted entities keyed by
// identity. Order follows each entity's authored position rather than the
// order in which registrations arrive, so siblings that mount out of order
// still end up in document order.
package registry

import "slices"

// Registrant is an entity that can be registered.
type Registrant interface {
	// Key is the stable identity of the entity.
	Key() string

	// Position reports the authored position of the entity. ok is false
	// while the position cannot be resolved yet; such entities sort after
	// everything currently comparable until they are registered again.
	Position() (pos int, ok bool)
}

// Registry is an ordered set of registrants without duplicate keys.
// The zero value is an empty registry ready for use.
type Registry[T Registrant] struct {
	entries []T
	index   map[string]int
}

// New returns an empty registry.
func New[T Registrant]() *Registry[T] {
	return &Registry[T]{}
}

// Register inserts entity before the first registered entity it precedes.
// Registering a key that is already present replaces the old entry and
// recomputes its position, which is how an entity whose position has just
// resolved corrects its place. An entity that sorts at or after the last
// entry is appended without scanning.
func (r *Registry[T]) Register(entity T) {
	r.Deregister(entity.Key())
	if r.index == nil {
		r.index = make(map[string]int)
	}

	newPos, newOK := entity.Position()
	at := len(r.entries)
	if newOK && !r.appendsAfterLast(newPos) {
		for i, current := range r.entries {
			if curPos, curOK := current.Position(); curOK && newPos < curPos {
				at = i
				break
			}
		}
	}

	r.entries = slices.Insert(r.entries, at, entity)
	r.reindex(at)
}

// appendsAfterLast reports whether an entity at pos belongs at the end.
func (r *Registry[T]) appendsAfterLast(pos int) bool {
	if len(r.entries) == 0 {
		return true
	}
	lastPos, lastOK := r.entries[len(r.entries)-1].Position()
	return lastOK && lastPos <= pos
}

// Deregister removes the entity with the given key. Unknown keys are ignored.
func (r *Registry[T]) Deregister(key string) {
	idx := r.IndexOf(key)
	if idx < 0 {
		return
	}

	r.entries = slices.Delete(r.entries, idx, idx+1)
	delete(r.index, key)
	r.reindex(idx)
}

// Reset removes every entity.
func (r *Registry[T]) Reset() {
	r.entries = nil
	r.index = nil
}

// reindex refreshes the key index from entry i onwards.
func (r *Registry[T]) reindex(from int) {
	for i := from; i < len(r.entries); i++ {
		r.index[r.entries[i].Key()] = i
	}
}

// IndexOf returns the position of key in the ordered list, or -1.
func (r *Registry[T]) IndexOf(key string) int {
	if idx, ok := r.index[key]; ok {
		return idx
	}
	return -1
}

// Contains reports whether key is registered.
func (r *Registry[T]) Contains(key string) bool {
	return r.IndexOf(key) >= 0
}

// Get returns the entity registered under key.
func (r *Registry[T]) Get(key string) (T, bool) {
	if idx := r.IndexOf(key); idx >= 0 {
		return r.entries[idx], true
	}
	var zero T
	return zero, false
}

// Len returns the number of registered entities.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// All returns a copy of the ordered entities.
func (r *Registry[T]) All() []T {
	out := make([]T, len(r.entries))
	copy(out, r.entries)
	return out
}

// Keys returns the ordered identities.
func (r *Registry[T]) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key()
	}
	return keys
}
