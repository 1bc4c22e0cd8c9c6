package ecs

import "iter"

// Component is the constraint every component type satisfies: none, beyond
// being an ordinary Go value. Kept as a type alias (rather than an empty
// interface wrapper) so callers write ecs.Component instead of any.
type Component = any

// Ref is the read-only QueryParameter view of a component value: a borrowed
// value plus enough ticks to answer "has this changed since I last ran".
type Ref[C any] struct {
	value            *C
	lastModifiedTick uint64
	lastRunTick      uint64
}

// Get returns a copy of the referenced component value.
func (r Ref[C]) Get() C { return *r.value }

// Changed reports whether the component was inserted or modified (via a
// RefMut.Set or RefMut.Mutate, not SilentlyMutate) more recently than the
// calling system's last run.
func (r Ref[C]) Changed() bool { return r.lastRunTick < r.lastModifiedTick }

// RefMut is the read-write QueryParameter view of a component value. Setting
// the value through Set or Mutate stamps the slot's last-modified tick to
// the current tick; SilentlyMutate bypasses that stamp for callers that
// need to touch the value without participating in change detection.
type RefMut[C any] struct {
	value            *C
	lastModifiedTick *uint64
	lastRunTick      uint64
	currentTick      uint64
}

// Get returns a copy of the referenced component value.
func (r RefMut[C]) Get() C { return *r.value }

// Set replaces the component value and marks it modified as of the current
// tick.
func (r RefMut[C]) Set(v C) {
	*r.value = v
	*r.lastModifiedTick = r.currentTick
}

// Mutate applies fn to the component in place and marks it modified.
func (r RefMut[C]) Mutate(fn func(*C)) {
	fn(r.value)
	*r.lastModifiedTick = r.currentTick
}

// SilentlyMutate applies fn to the component in place without updating the
// last-modified tick, so later Changed() checks by other systems are
// unaffected.
func (r RefMut[C]) SilentlyMutate(fn func(*C)) { fn(r.value) }

// Changed reports whether the component was modified more recently than the
// calling system's last run.
func (r RefMut[C]) Changed() bool { return r.lastRunTick < *r.lastModifiedTick }

// componentSlot is one row of a componentTable: the generation of the entity
// this value belongs to (so a stale Entity handle after slot reuse reads as
// absent), the value itself, and the tick it was last written.
//
// The low bit of generation doubles as the "currently visited by
// getManyMut" marker: a slot's generation is always even while idle, so
// temporarily flipping it odd makes a second lookup of the same entity
// within one getManyMut call fail the liveness comparison, which is what
// catches duplicate entities in the request without an auxiliary set.
type componentSlot[C any] struct {
	generation       uint32
	value            C
	lastModifiedTick uint64
	occupied         bool
}

// componentTable is the per-type sparse store: a slice indexed by entity
// id, growing to fit the highest id inserted.
// componentTable carries no lock of its own; the holder wrapping it
// (holder.go) supplies the RWMutex a system's declared borrow acquires for
// the table's lifetime during a scheduler wave.
type componentTable[C any] struct {
	slots []componentSlot[C]
}

func newComponentTable[C any]() *componentTable[C] {
	return &componentTable[C]{}
}

// insert stores v for e, stamping the slot with e's generation and the
// current tick, growing the slice on demand.
func (t *componentTable[C]) insert(currentTick uint64, e Entity, v C) {
	id := int(e.id)
	if id >= len(t.slots) {
		grown := make([]componentSlot[C], id+1)
		copy(grown, t.slots)
		t.slots = grown
	}
	t.slots[id] = componentSlot[C]{
		generation:       e.generation,
		value:            v,
		lastModifiedTick: currentTick,
		occupied:         true,
	}
}

// remove deletes e's value if present and still current, returning it.
func (t *componentTable[C]) remove(e Entity) (C, bool) {
	var zero C
	id := int(e.id)
	if id >= len(t.slots) {
		return zero, false
	}
	slot := &t.slots[id]
	if !slot.occupied || slot.generation != e.generation {
		return zero, false
	}
	v := slot.value
	*slot = componentSlot[C]{}
	return v, true
}

// has reports whether e currently has a value in this table.
func (t *componentTable[C]) has(e Entity) bool {
	id := int(e.id)
	if id >= len(t.slots) {
		return false
	}
	slot := &t.slots[id]
	return slot.occupied && slot.generation == e.generation
}

// get returns a read-only view of e's value.
func (t *componentTable[C]) get(lastRunTick uint64, e Entity) (Ref[C], bool) {
	id := int(e.id)
	if id >= len(t.slots) {
		return Ref[C]{}, false
	}
	slot := &t.slots[id]
	if !slot.occupied || slot.generation != e.generation {
		return Ref[C]{}, false
	}
	return Ref[C]{value: &slot.value, lastModifiedTick: slot.lastModifiedTick, lastRunTick: lastRunTick}, true
}

// getMut returns a read-write view of e's value.
func (t *componentTable[C]) getMut(lastRunTick, currentTick uint64, e Entity) (RefMut[C], bool) {
	id := int(e.id)
	if id >= len(t.slots) {
		return RefMut[C]{}, false
	}
	slot := &t.slots[id]
	if !slot.occupied || slot.generation != e.generation {
		return RefMut[C]{}, false
	}
	return RefMut[C]{
		value:            &slot.value,
		lastModifiedTick: &slot.lastModifiedTick,
		lastRunTick:      lastRunTick,
		currentTick:      currentTick,
	}, true
}

// getManyMut returns a read-write view for every entity in entities, or
// (nil, false) if any entity is absent or any entity appears more than
// once. The duplicate check is a single forward pass: each visited slot's
// generation is flipped odd (marking it transiently "dead") so a repeated
// id in entities fails the liveness test on its second occurrence, then
// every flipped generation is restored before returning.
func (t *componentTable[C]) getManyMut(lastRunTick, currentTick uint64, entities []Entity) ([]RefMut[C], bool) {
	visited := entities[:0:0]
	ok := true
	for _, e := range entities {
		id := int(e.id)
		if id >= len(t.slots) {
			ok = false
			break
		}
		slot := &t.slots[id]
		if !slot.occupied || slot.generation != e.generation {
			ok = false
			break
		}
		slot.generation |= 1
		visited = append(visited, e)
	}

	for _, e := range visited {
		t.slots[e.id].generation &^= 1
	}

	if !ok {
		return nil, false
	}

	out := make([]RefMut[C], len(entities))
	for i, e := range entities {
		slot := &t.slots[e.id]
		out[i] = RefMut[C]{
			value:            &slot.value,
			lastModifiedTick: &slot.lastModifiedTick,
			lastRunTick:      lastRunTick,
			currentTick:      currentTick,
		}
	}
	return out, true
}

// iter yields every (Entity, Ref[C]) pair currently stored, in ascending id
// order.
func (t *componentTable[C]) iter(lastRunTick uint64, alive func(Entity) bool) iter.Seq2[Entity, Ref[C]] {
	return func(yield func(Entity, Ref[C]) bool) {
		for id := range t.slots {
			slot := &t.slots[id]
			if !slot.occupied {
				continue
			}
			e := Entity{id: uint32(id), generation: slot.generation}
			if !alive(e) {
				continue
			}
			ref := Ref[C]{value: &slot.value, lastModifiedTick: slot.lastModifiedTick, lastRunTick: lastRunTick}
			if !yield(e, ref) {
				return
			}
		}
	}
}

// iterMut yields every (Entity, RefMut[C]) pair currently stored, in
// ascending id order.
func (t *componentTable[C]) iterMut(lastRunTick, currentTick uint64, alive func(Entity) bool) iter.Seq2[Entity, RefMut[C]] {
	return func(yield func(Entity, RefMut[C]) bool) {
		for id := range t.slots {
			slot := &t.slots[id]
			if !slot.occupied {
				continue
			}
			e := Entity{id: uint32(id), generation: slot.generation}
			if !alive(e) {
				continue
			}
			ref := RefMut[C]{
				value:            &slot.value,
				lastModifiedTick: &slot.lastModifiedTick,
				lastRunTick:      lastRunTick,
				currentTick:      currentTick,
			}
			if !yield(e, ref) {
				return
			}
		}
	}
}
