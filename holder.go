package ecs

import "sync"

// componentCell is the type-erased handle the App's component map stores
// one per registered component type — the component-side analogue of
// resourceCell. removeEntity lets entity destruction (app.go) drop a value
// for an id it only knows as a typeID, without the caller needing to know
// the concrete component type.
type componentCell interface {
	typeName() string
	removeEntity(e Entity)
}

// componentHolder pairs a componentTable[C] with the RWMutex a system's
// declared borrow acquires for the run-state's lifetime, the same
// lock-per-table convention as resourceHolder: one lock guarding one
// table's worth of state.
type componentHolder[C any] struct {
	mu    sync.RWMutex
	table *componentTable[C]
	name  string
}

func newComponentHolder[C any](name string) *componentHolder[C] {
	return &componentHolder[C]{table: newComponentTable[C](), name: name}
}

func (h *componentHolder[C]) typeName() string { return h.name }

func (h *componentHolder[C]) removeEntity(e Entity) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.table.remove(e)
}

// TryRLock/TryLock and the matching unlocks satisfy rwLocker; a system's
// declared borrows hold them for the whole invocation (lockstate.go).
func (h *componentHolder[C]) TryRLock() bool { return h.mu.TryRLock() }
func (h *componentHolder[C]) RUnlock()       { h.mu.RUnlock() }
func (h *componentHolder[C]) TryLock() bool  { return h.mu.TryLock() }
func (h *componentHolder[C]) Unlock()        { h.mu.Unlock() }

// insert and remove are used by App's direct add_component/remove_component
// operations (outside of any system run), so they take their own lock.
func (h *componentHolder[C]) insert(currentTick uint64, e Entity, v C) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.table.insert(currentTick, e, v)
}

func (h *componentHolder[C]) remove(e Entity) (C, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.table.remove(e)
}

func (h *componentHolder[C]) has(e Entity) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table.has(e)
}
