/*
Package handle implements the registry which maps opaque integer handles to
live protocol objects. Callers of a foreign call surface keep only the
handles.

Every entry has its own lock. Get holds the shared lock and GetMut the
exclusive lock for the whole duration of the callback, so operations against
the same handle are serialized while different handles run concurrently.
*/
package handle

import (
	"math/rand"
	"sync"

	"github.com/AbsaOSS/libvcx/agent/vcxerr"
	"github.com/golang/glog"
)

type entry[T any] struct {
	sync.RWMutex
	obj      T
	released bool
}

// Registry is a synchronized handle map for objects of type T. Use New to
// create one.
type Registry[T any] struct {
	l       sync.RWMutex
	name    string
	missErr vcxerr.Kind
	entries map[uint32]*entry[T]
}

// New creates an empty registry. The missKind is the error kind returned for
// unknown handles.
func New[T any](name string, missKind vcxerr.Kind) *Registry[T] {
	return &Registry[T]{
		name:    name,
		missErr: missKind,
		entries: make(map[uint32]*entry[T]),
	}
}

// Add stores the obj and returns a new handle for it. Handles are never zero.
func (r *Registry[T]) Add(obj T) uint32 {
	r.l.Lock()
	defer r.l.Unlock()

	var h uint32
	for h == 0 || r.entries[h] != nil {
		h = rand.Uint32()
	}
	r.entries[h] = &entry[T]{obj: obj}
	glog.V(5).Infof("%s: added handle %d", r.name, h)
	return h
}

// Has tells if the handle is alive.
func (r *Registry[T]) Has(h uint32) bool {
	r.l.RLock()
	defer r.l.RUnlock()

	_, ok := r.entries[h]
	return ok
}

// Len returns the number of live handles.
func (r *Registry[T]) Len() int {
	r.l.RLock()
	defer r.l.RUnlock()

	return len(r.entries)
}

func (r *Registry[T]) lookup(h uint32) (*entry[T], error) {
	r.l.RLock()
	defer r.l.RUnlock()

	e, ok := r.entries[h]
	if !ok {
		return nil, r.miss(h)
	}
	return e, nil
}

func (r *Registry[T]) miss(h uint32) error {
	return vcxerr.Newf(r.missErr, "%s: handle %d not found", r.name, h)
}

// Get calls f with the object of the handle holding the entry's shared lock.
func (r *Registry[T]) Get(h uint32, f func(obj T) error) error {
	e, err := r.lookup(h)
	if err != nil {
		return err
	}
	e.RLock()
	defer e.RUnlock()

	if e.released {
		return r.miss(h)
	}
	return f(e.obj)
}

// GetMut calls f with the object of the handle holding the entry's
// exclusive lock. The object f returns replaces the current one only when f
// succeeds, a failed f leaves the entry untouched.
func (r *Registry[T]) GetMut(h uint32, f func(obj T) (T, error)) error {
	e, err := r.lookup(h)
	if err != nil {
		return err
	}
	e.Lock()
	defer e.Unlock()

	if e.released {
		return r.miss(h)
	}
	next, err := f(e.obj)
	if err != nil {
		return err
	}
	e.obj = next
	return nil
}

// Release removes the handle. It waits until the operations in progress for
// the handle have finished.
func (r *Registry[T]) Release(h uint32) error {
	r.l.Lock()
	e, ok := r.entries[h]
	delete(r.entries, h)
	r.l.Unlock()

	if !ok {
		return r.miss(h)
	}
	e.Lock()
	e.released = true
	e.Unlock()
	glog.V(5).Infof("%s: released handle %d", r.name, h)
	return nil
}

// ReleaseAll removes every handle of the registry.
func (r *Registry[T]) ReleaseAll() {
	r.l.Lock()
	old := r.entries
	r.entries = make(map[uint32]*entry[T])
	r.l.Unlock()

	for _, e := range old {
		e.Lock()
		e.released = true
		e.Unlock()
	}
	glog.V(3).Infof("%s: released all %d handles", r.name, len(old))
}

// Handles returns the live handles in no particular order.
func (r *Registry[T]) Handles() []uint32 {
	r.l.RLock()
	defer r.l.RUnlock()

	hs := make([]uint32, 0, len(r.entries))
	for h := range r.entries {
		hs = append(hs, h)
	}
	return hs
}
