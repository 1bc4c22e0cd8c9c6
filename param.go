package ecs

import "iter"

// SystemParameter is the contract every admissible formal parameter type of
// a user system implements: it statically declares the borrows it needs,
// knows how to acquire them, and knows how to build the view the system
// function actually receives. The closed set of implementers is Query[Q],
// Res[R], ResMut[R], OptRes[R], OptResMut[R], Entities, Commands,
// CurrentTick, and LastRunTick (tick.go). Optional resources are their own
// named types rather than a generic Option[S SystemParameter] wrapper (see
// DESIGN.md's "system-level Option" note for why).
//
// Locks are acquired into a per-invocation lockState (lockstate.go), which
// deduplicates repeated borrows of the same type and releases everything in
// one deferred call on every exit path, including a panicking system body.
type SystemParameter interface {
	appendBorrows(app *App, b *borrows)
	lock(app *App, ls *lockState)
	construct(app *App, cmds Commands, lastRunTick, currentTick uint64) any
}

// Res is the read-only SystemParameter for resource type R. Constructing
// one when R has never been added to the App is a programmer error (the
// parameter is not optional) and panics; OptRes is the variant that
// tolerates an absent resource.
type Res[R any] struct {
	Ref[R]
}

func (Res[R]) appendBorrows(app *App, b *borrows) {
	id := resourceTypeID[R](app)
	name := app.resourceTypeName(id)
	if !b.resources.add(Borrow{ID: id, Name: name, Mode: Shared}) {
		panic(traced("ecs: %v", DuplicateBorrowError{Kind: "resource", Name: name}))
	}
}

func (Res[R]) lock(app *App, ls *lockState) {
	ls.acquire(resourceHolderFor[R](app), Shared, "resource")
}

func (Res[R]) construct(app *App, _ Commands, lastRunTick, _ uint64) any {
	v, ok := resourceHolderFor[R](app).view(lastRunTick)
	if !ok {
		id := resourceTypeID[R](app)
		panic(traced("ecs: Res[%s] requires a resource that was never added to the App", app.resourceTypeName(id)))
	}
	return Res[R]{Ref: v}
}

// ResMut is the read-write SystemParameter for resource type R.
type ResMut[R any] struct {
	RefMut[R]
}

func (ResMut[R]) appendBorrows(app *App, b *borrows) {
	id := resourceTypeID[R](app)
	name := app.resourceTypeName(id)
	if !b.resources.add(Borrow{ID: id, Name: name, Mode: Exclusive}) {
		panic(traced("ecs: %v", DuplicateBorrowError{Kind: "resource", Name: name}))
	}
}

func (ResMut[R]) lock(app *App, ls *lockState) {
	ls.acquire(resourceHolderFor[R](app), Exclusive, "resource")
}

func (ResMut[R]) construct(app *App, _ Commands, lastRunTick, currentTick uint64) any {
	v, ok := resourceHolderFor[R](app).viewMut(lastRunTick, currentTick)
	if !ok {
		id := resourceTypeID[R](app)
		panic(traced("ecs: ResMut[%s] requires a resource that was never added to the App", app.resourceTypeName(id)))
	}
	return ResMut[R]{RefMut: v}
}

// OptRes is the optional variant of Res: the resource's borrow is still
// declared and still locked (a system can't know presence before the lock
// is held), but a missing resource yields Present == false instead of a
// panic.
type OptRes[R any] struct {
	Value   Res[R]
	Present bool
}

func (OptRes[R]) appendBorrows(app *App, b *borrows) { var z Res[R]; z.appendBorrows(app, b) }
func (OptRes[R]) lock(app *App, ls *lockState)       { var z Res[R]; z.lock(app, ls) }

func (OptRes[R]) construct(app *App, _ Commands, lastRunTick, _ uint64) any {
	v, ok := resourceHolderFor[R](app).view(lastRunTick)
	if !ok {
		return OptRes[R]{}
	}
	return OptRes[R]{Value: Res[R]{Ref: v}, Present: true}
}

// OptResMut is the optional variant of ResMut.
type OptResMut[R any] struct {
	Value   ResMut[R]
	Present bool
}

func (OptResMut[R]) appendBorrows(app *App, b *borrows) { var z ResMut[R]; z.appendBorrows(app, b) }
func (OptResMut[R]) lock(app *App, ls *lockState)       { var z ResMut[R]; z.lock(app, ls) }

func (OptResMut[R]) construct(app *App, _ Commands, lastRunTick, currentTick uint64) any {
	v, ok := resourceHolderFor[R](app).viewMut(lastRunTick, currentTick)
	if !ok {
		return OptResMut[R]{}
	}
	return OptResMut[R]{Value: ResMut[R]{RefMut: v}, Present: true}
}

// Entities is the read-only SystemParameter giving a system access to the
// whole entity registry. It declares no borrow: the registry is read-only
// during system execution (structural mutations go through Commands), so
// no lock is needed.
type Entities struct {
	app *App
}

func (Entities) appendBorrows(*App, *borrows) {}
func (Entities) lock(*App, *lockState)        {}

func (Entities) construct(app *App, _ Commands, _, _ uint64) any {
	return Entities{app: app}
}

// Iter yields every currently-alive Entity in ascending id order.
func (e Entities) Iter() iter.Seq[Entity] { return e.app.entities.Iter() }

// Exists reports whether entity currently refers to a live entity.
func (e Entities) Exists(entity Entity) bool { return e.app.entities.Exists(entity) }

// Commands is also a SystemParameter: it declares no borrow (structural
// edits happen after the wave, never against a locked table) and its
// construct step simply forwards the run-state's sender. See commands.go
// for the command-buffer type itself.
func (Commands) appendBorrows(*App, *borrows) {}
func (Commands) lock(*App, *lockState)        {}

func (Commands) construct(_ *App, cmds Commands, _, _ uint64) any { return cmds }

// Query is itself a SystemParameter: Q's component-side borrows become the
// Query's declared borrows, Q's lock step drives table acquisition for the
// run's lifetime, and construct hands back a Query[Q] scoped to this one
// invocation.
func (Query[Q]) appendBorrows(app *App, b *borrows) {
	var zero Q
	zero.appendComponentBorrows(app, b.components)
}

func (Query[Q]) lock(app *App, ls *lockState) {
	var zero Q
	zero.lockTables(app, ls)
}

func (Query[Q]) construct(app *App, _ Commands, lastRunTick, currentTick uint64) any {
	return newQuery[Q](app, lastRunTick, currentTick)
}
