package ecs

import "sync"

// ComponentBundle is an ordered tuple of component values, possibly nested,
// attached/detached as a unit. Single[C] is the one-component leaf;
// Bundle2..Bundle6 compose leaves or other bundles, so nested bundles
// flatten structurally (see DESIGN.md for the arity decision).
type ComponentBundle interface {
	add(app *App, entity Entity)
	remove(app *App, entity Entity)
}

// Single wraps one component value as a ComponentBundle.
type Single[C any] struct{ Value C }

// C is a constructor shorthand for Single[T], so callers write ecs.C(v)
// instead of ecs.Single[T]{Value: v}.
func C[T any](v T) Single[T] { return Single[T]{Value: v} }

func (s Single[C]) add(app *App, entity Entity)  { AddComponent(app, entity, s.Value) }
func (Single[C]) remove(app *App, entity Entity) { RemoveComponent[C](app, entity) }

// Bundle2 composes two ComponentBundles (leaves or nested bundles) into one.
type Bundle2[A ComponentBundle, B ComponentBundle] struct {
	A A
	B B
}

func (b Bundle2[A, B]) add(app *App, entity Entity) {
	b.A.add(app, entity)
	b.B.add(app, entity)
}

func (Bundle2[A, B]) remove(app *App, entity Entity) {
	var a A
	var b B
	a.remove(app, entity)
	b.remove(app, entity)
}

// Bundle3 composes three ComponentBundles into one.
type Bundle3[A ComponentBundle, B ComponentBundle, C ComponentBundle] struct {
	A A
	B B
	C C
}

func (b Bundle3[A, B, C]) add(app *App, entity Entity) {
	b.A.add(app, entity)
	b.B.add(app, entity)
	b.C.add(app, entity)
}

func (Bundle3[A, B, C]) remove(app *App, entity Entity) {
	var a A
	var b B
	var c C
	a.remove(app, entity)
	b.remove(app, entity)
	c.remove(app, entity)
}

// Bundle4 composes four ComponentBundles into one.
type Bundle4[A ComponentBundle, B ComponentBundle, C ComponentBundle, D ComponentBundle] struct {
	A A
	B B
	C C
	D D
}

func (b Bundle4[A, B, C, D]) add(app *App, entity Entity) {
	b.A.add(app, entity)
	b.B.add(app, entity)
	b.C.add(app, entity)
	b.D.add(app, entity)
}

func (Bundle4[A, B, C, D]) remove(app *App, entity Entity) {
	var a A
	var b B
	var c C
	var d D
	a.remove(app, entity)
	b.remove(app, entity)
	c.remove(app, entity)
	d.remove(app, entity)
}

// Bundle5 composes five ComponentBundles into one.
type Bundle5[A ComponentBundle, B ComponentBundle, C ComponentBundle, D ComponentBundle, E ComponentBundle] struct {
	A A
	B B
	C C
	D D
	E E
}

func (b Bundle5[A, B, C, D, E]) add(app *App, entity Entity) {
	b.A.add(app, entity)
	b.B.add(app, entity)
	b.C.add(app, entity)
	b.D.add(app, entity)
	b.E.add(app, entity)
}

func (Bundle5[A, B, C, D, E]) remove(app *App, entity Entity) {
	var a A
	var b B
	var c C
	var d D
	var e E
	a.remove(app, entity)
	b.remove(app, entity)
	c.remove(app, entity)
	d.remove(app, entity)
	e.remove(app, entity)
}

// Bundle6 composes six ComponentBundles into one.
type Bundle6[A ComponentBundle, B ComponentBundle, C ComponentBundle, D ComponentBundle, E ComponentBundle, F ComponentBundle] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

func (b Bundle6[A, B, C, D, E, F]) add(app *App, entity Entity) {
	b.A.add(app, entity)
	b.B.add(app, entity)
	b.C.add(app, entity)
	b.D.add(app, entity)
	b.E.add(app, entity)
	b.F.add(app, entity)
}

func (Bundle6[A, B, C, D, E, F]) remove(app *App, entity Entity) {
	var a A
	var b B
	var c C
	var d D
	var e E
	var f F
	a.remove(app, entity)
	b.remove(app, entity)
	c.remove(app, entity)
	d.remove(app, entity)
	e.remove(app, entity)
	f.remove(app, entity)
}

// deferredCommand is one queued structural mutation, applied against the
// App after the run that queued it completes.
type deferredCommand func(*App)

// commandSender is the multi-producer side of the command buffer: any
// number of concurrent systems within a wave hold a sender, and the App
// drains the queue once the run completes (app.go's App.Run). Backed by a
// mutex-guarded slice rather than a Go channel, the same
// lock-per-shared-structure idiom as componentHolder/resourceHolder: a
// buffered channel would need a capacity fixed in advance, and a system
// queuing more commands than that capacity before the (single, post-run)
// drain would block forever. A slice behind a mutex accepts an unbounded
// number of sends from any number of concurrent producers and never blocks
// a sender.
type commandSender struct {
	mu    sync.Mutex
	queue []deferredCommand
}

func newCommandSender() *commandSender { return &commandSender{} }

func (s *commandSender) push(cmd deferredCommand) {
	s.mu.Lock()
	s.queue = append(s.queue, cmd)
	s.mu.Unlock()
}

// drain applies every queued command, in arrival order, then empties the
// queue. Called once by App.Run after the run's schedulable has finished.
func (s *commandSender) drain(app *App) {
	s.mu.Lock()
	cmds := s.queue
	s.queue = nil
	s.mu.Unlock()
	for _, cmd := range cmds {
		cmd(app)
	}
}

// Commands is the SystemParameter for deferring App mutations until after
// the current run finishes. It is admissible directly as a system
// parameter, not as a QueryParameter.
type Commands struct {
	sender *commandSender
}

// CreateEntity defers creating an entity and attaching bundle to it.
func (c Commands) CreateEntity(bundle ComponentBundle) {
	c.sender.push(func(app *App) {
		entity := app.CreateEntity()
		bundle.add(app, entity)
	})
}

// DestroyEntity defers destroying entity. No-op if already dead when the
// command runs.
func (c Commands) DestroyEntity(entity Entity) {
	c.sender.push(func(app *App) { app.DestroyEntity(entity) })
}

// AddComponents defers attaching bundle to entity, replacing any components
// of the same types already attached. No-op on a dead target when the
// command runs.
func (c Commands) AddComponents(entity Entity, bundle ComponentBundle) {
	c.sender.push(func(app *App) { bundle.add(app, entity) })
}

// RemoveComponents defers detaching bundle's component types from entity.
// No-op on a dead target or already-absent components.
func (c Commands) RemoveComponents(entity Entity, bundle ComponentBundle) {
	c.sender.push(func(app *App) { bundle.remove(app, entity) })
}

// Schedule defers an arbitrary App-mutating closure.
func (c Commands) Schedule(f func(app *App)) {
	c.sender.push(f)
}
