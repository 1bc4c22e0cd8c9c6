package ecs

import (
	"reflect"
	"sync"
)

// typeID is the bit index a type occupies in a borrow mask: the position a
// component/resource type was assigned the first time it was registered
// with its App.
type typeID = uint32

// maxRegisteredTypes bounds how many distinct component (or resource) types
// a single App can carry: the conflict-detection masks (borrow.go) are
// fixed-width.
const maxRegisteredTypes = 256

// typeRegistry hands out a stable bit index per reflect.Type, registering
// each type on first use and remembering the assignment for the App's
// lifetime.
type typeRegistry struct {
	mu      sync.Mutex
	indices map[reflect.Type]typeID
	names   []string
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{indices: make(map[reflect.Type]typeID)}
}

// idFor returns the stable bit index for T, registering it on first use.
func idFor[T any](r *typeRegistry) typeID {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := reflect.TypeOf((*T)(nil)).Elem()
	if id, ok := r.indices[t]; ok {
		return id
	}
	if len(r.names) >= maxRegisteredTypes {
		panic(traced("type registry: %v", ErrCacheFull{Capacity: maxRegisteredTypes}))
	}
	id := typeID(len(r.names))
	r.indices[t] = id
	r.names = append(r.names, t.String())
	return id
}

// nameOf returns the human-readable type name for a registered id, used for
// diagnostic strings on registration panics.
func (r *typeRegistry) nameOf(id typeID) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if int(id) < len(r.names) {
		return r.names[id]
	}
	return "<unknown>"
}
