package registry

import "sync/atomic"

// Snapshot is an atomically replaced immutable map.
// The zero value is an empty map ready for use.
type Snapshot[K comparable, V any] struct {
	ptr atomic.Pointer[map[K]V]
}

// Load returns the current map. It may be nil and must not be modified.
func (s *Snapshot[K, V]) Load() map[K]V {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return nil
}

// Update installs fn(current) until the compare-and-swap succeeds. fn must
// not modify its argument and may run several times; it reports false when
// there is nothing to change, and Update then returns false untouched.
func (s *Snapshot[K, V]) Update(fn func(cur map[K]V) (map[K]V, bool)) bool {
	for {
		old := s.ptr.Load()
		var cur map[K]V
		if old != nil {
			cur = *old
		}
		next, changed := fn(cur)
		if !changed {
			return false
		}
		if s.ptr.CompareAndSwap(old, &next) {
			return true
		}
	}
}
