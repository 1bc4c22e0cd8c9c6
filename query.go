package ecs

import "iter"

// QueryParameter is the closed set of admissible types for the inside of a
// Query's type argument: Ref[C], RefMut[C], Option[P], and QTupleN
// compositions of the above. Go has no associated types, so the "view" a
// parameter builds for one entity is handed back type-erased (any) and
// unwrapped with a single type assertion at the call site that already
// knows the concrete type — see Query.Get.
type QueryParameter interface {
	// appendComponentBorrows records this parameter's (typeID, mode) pairs
	// into set. Mode is fixed by the concrete type: Ref is always Shared,
	// RefMut is always Exclusive.
	appendComponentBorrows(app *App, set *borrowSet)
	// lockTables acquires every distinct component table this parameter
	// touches into ls, held for the enclosing Query's lifetime.
	lockTables(app *App, ls *lockState)
	// forEntity builds this parameter's view for e. ok is false only when
	// a non-optional component this parameter requires is absent; absence
	// under an Option never propagates as ok=false.
	forEntity(app *App, e Entity, lastRunTick, currentTick uint64) (view any, ok bool)
	// forMany is the alias-safe variant used across a whole entity batch
	// at once, so a RefMut leaf can run a single generation-marking
	// duplicate pass instead of N independent calls.
	forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) (views []any, ok bool)
}

// Ref is also the QueryParameter leaf for shared component access;
// component.go defines the type and its change-detection methods.

func (Ref[C]) appendComponentBorrows(app *App, set *borrowSet) {
	id := componentTypeID[C](app)
	name := app.componentTypeName(id)
	if !set.add(Borrow{ID: id, Name: name, Mode: Shared}) {
		panic(traced("ecs: %v", DuplicateBorrowError{Kind: "component", Name: name}))
	}
}

func (Ref[C]) lockTables(app *App, ls *lockState) {
	ls.acquire(componentHolderFor[C](app), Shared, "component")
}

func (Ref[C]) forEntity(app *App, e Entity, lastRunTick, currentTick uint64) (any, bool) {
	v, ok := componentHolderFor[C](app).table.get(lastRunTick, e)
	if !ok {
		return nil, false
	}
	return v, true
}

// forMany for a shared Ref never aliases unsafely (any number of readers
// of the same value is fine), so it skips the duplicate-marking pass
// entirely and just repeats get.
func (Ref[C]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	h := componentHolderFor[C](app)
	out := make([]any, len(entities))
	for i, e := range entities {
		v, ok := h.table.get(lastRunTick, e)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func (RefMut[C]) appendComponentBorrows(app *App, set *borrowSet) {
	id := componentTypeID[C](app)
	name := app.componentTypeName(id)
	if !set.add(Borrow{ID: id, Name: name, Mode: Exclusive}) {
		panic(traced("ecs: %v", DuplicateBorrowError{Kind: "component", Name: name}))
	}
}

func (RefMut[C]) lockTables(app *App, ls *lockState) {
	ls.acquire(componentHolderFor[C](app), Exclusive, "component")
}

func (RefMut[C]) forEntity(app *App, e Entity, lastRunTick, currentTick uint64) (any, bool) {
	v, ok := componentHolderFor[C](app).table.getMut(lastRunTick, currentTick, e)
	if !ok {
		return nil, false
	}
	return v, true
}

func (RefMut[C]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	h := componentHolderFor[C](app)
	views, ok := h.table.getManyMut(lastRunTick, currentTick, entities)
	if !ok {
		return nil, false
	}
	out := make([]any, len(views))
	for i, v := range views {
		out[i] = v
	}
	return out, true
}

// Option wraps a QueryParameter P to make its presence optional: a Query
// row or get() call that would otherwise be excluded because P's component
// is absent instead yields Option[P]{Present: false}.
type Option[P QueryParameter] struct {
	Value   P
	Present bool
}

func (Option[P]) appendComponentBorrows(app *App, set *borrowSet) {
	var zero P
	zero.appendComponentBorrows(app, set)
}

func (Option[P]) lockTables(app *App, ls *lockState) {
	var zero P
	zero.lockTables(app, ls)
}

func (Option[P]) forEntity(app *App, e Entity, lastRunTick, currentTick uint64) (any, bool) {
	var zero P
	v, ok := zero.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return Option[P]{}, true
	}
	return Option[P]{Value: v.(P), Present: true}, true
}

// forMany applies forEntity per entity rather than running P's own
// alias-safe batch pass: an absent optional component must never fail the
// whole batch, which a strict duplicate-marking pass can't distinguish from
// a true duplicate without additional bookkeeping. Non-optional members of
// the same tuple still get full batch-level alias safety through their own
// forMany; this only relaxes the guarantee for the optional member itself.
func (o Option[P]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	out := make([]any, len(entities))
	for i, e := range entities {
		v, _ := o.forEntity(app, e, lastRunTick, currentTick)
		out[i] = v
	}
	return out, true
}

// Query is the per-system-invocation handle over the component tables Q
// names, already locked for the run's lifetime.
type Query[Q QueryParameter] struct {
	app         *App
	lastRunTick uint64
	currentTick uint64
}

func newQuery[Q QueryParameter](app *App, lastRunTick, currentTick uint64) Query[Q] {
	return Query[Q]{app: app, lastRunTick: lastRunTick, currentTick: currentTick}
}

// Get returns Q's view for entity, or false if entity is dead or any
// non-optional component Q requires is absent.
func (q Query[Q]) Get(entity Entity) (Q, bool) {
	var zero Q
	if !q.app.entities.Exists(entity) {
		return zero, false
	}
	v, ok := zero.forEntity(q.app, entity, q.lastRunTick, q.currentTick)
	if !ok {
		return zero, false
	}
	return v.(Q), true
}

// GetMut is the same operation as Get: a Query's locking mode is already
// fixed by which of Ref/RefMut appear inside Q, not by which accessor
// method the caller chooses. Both names are kept so calling code reads
// naturally either way.
func (q Query[Q]) GetMut(entity Entity) (Q, bool) { return q.Get(entity) }

// GetManyMut returns Q's view for every entity in entities, aliasing-safe,
// or false if any entity is dead or any RefMut-backed component in Q has a
// duplicate or missing entry.
func (q Query[Q]) GetManyMut(entities []Entity) ([]Q, bool) {
	for _, e := range entities {
		if !q.app.entities.Exists(e) {
			return nil, false
		}
	}
	var zero Q
	views, ok := zero.forMany(q.app, entities, q.lastRunTick, q.currentTick)
	if !ok {
		return nil, false
	}
	out := make([]Q, len(views))
	for i, v := range views {
		out[i] = v.(Q)
	}
	return out, true
}

// Iter walks the entity registry in id order, yielding (Entity, Q) for
// every alive entity where every non-optional component in Q is present.
func (q Query[Q]) Iter() iter.Seq2[Entity, Q] {
	return func(yield func(Entity, Q) bool) {
		for e := range q.app.entities.Iter() {
			var zero Q
			v, ok := zero.forEntity(q.app, e, q.lastRunTick, q.currentTick)
			if !ok {
				continue
			}
			if !yield(e, v.(Q)) {
				return
			}
		}
	}
}

// IterMut is identical to Iter for the same reason GetMut is identical to
// Get.
func (q Query[Q]) IterMut() iter.Seq2[Entity, Q] { return q.Iter() }
