// Package registry interns string ids of static game data into dense integer ids.
//
// Index 0 always holds a null sentinel so that lookups of a bad id still
// return a usable object. A registry is filled during data load, frozen by
// Finalize and read-only afterwards until Reset.
package registry

import (
	"fmt"

	"wasteland/pkg/engine/debug"
)

// Registry maps string ids to dense indices of T.
type Registry[T any] struct {
	kind   string
	nullID string
	null   func() T

	objs   []T
	ids    []string
	byID   map[string]int
	frozen bool
}

// New creates a registry whose index 0 is the object returned by null, stored under nullID.
func New[T any](kind, nullID string, null func() T) *Registry[T] {
	r := &Registry[T]{kind: kind, nullID: nullID, null: null}
	r.Reset()
	return r
}

// Reset drops everything but the null sentinel and unfreezes the registry.
func (r *Registry[T]) Reset() {
	r.objs = []T{r.null()}
	r.ids = []string{r.nullID}
	r.byID = map[string]int{r.nullID: 0}
	r.frozen = false
}

// Insert adds or replaces the object with the given string id and returns its index.
// Replacing keeps the existing index, so a later data source overrides an earlier one,
// and reports a diagnostic.
func (r *Registry[T]) Insert(id string, obj T) (int, error) {
	if r.frozen {
		return 0, fmt.Errorf("%s registry is finalized, cannot insert %q", r.kind, id)
	}
	if id == "" {
		return 0, fmt.Errorf("%s with empty id", r.kind)
	}
	if id == r.nullID {
		r.objs[0] = obj
		return 0, nil
	}
	if i, ok := r.byID[id]; ok {
		debug.Msg("duplicate %s id %q, replacing", r.kind, id)
		r.objs[i] = obj
		return i, nil
	}
	i := len(r.objs)
	r.objs = append(r.objs, obj)
	r.ids = append(r.ids, id)
	r.byID[id] = i
	return i, nil
}

// Find returns the index of id.
func (r *Registry[T]) Find(id string) (int, bool) {
	i, ok := r.byID[id]
	return i, ok
}

// Lookup returns the index of id, or 0 with a diagnostic when id is unknown.
func (r *Registry[T]) Lookup(id string) int {
	if i, ok := r.byID[id]; ok {
		return i
	}
	debug.Msg("unknown %s id %q", r.kind, id)
	return 0
}

// Get returns the object at index i. An out-of-range index yields the null sentinel.
func (r *Registry[T]) Get(i int) *T {
	if i < 0 || i >= len(r.objs) {
		debug.Msg("invalid %s index %d", r.kind, i)
		return &r.objs[0]
	}
	return &r.objs[i]
}

// ID returns the string id at index i
func (r *Registry[T]) ID(i int) string {
	if i < 0 || i >= len(r.ids) {
		return r.nullID
	}
	return r.ids[i]
}

// Len returns the number of entries including the null sentinel
func (r *Registry[T]) Len() int {
	return len(r.objs)
}

// Valid reports whether i is a valid index
func (r *Registry[T]) Valid(i int) bool {
	return i >= 0 && i < len(r.objs)
}

// Finalize freezes the registry.
func (r *Registry[T]) Finalize() {
	r.frozen = true
}

// Frozen reports whether Finalize has been called since the last Reset
func (r *Registry[T]) Frozen() bool {
	return r.frozen
}

// Each calls fn for every entry in index order, null sentinel first.
func (r *Registry[T]) Each(fn func(i int, id string, obj *T)) {
	for i := range r.objs {
		fn(i, r.ids[i], &r.objs[i])
	}
}
