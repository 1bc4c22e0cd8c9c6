package ecs

import "sync"

// App owns the entity registry, every component table, every resource
// entry, and the logical clock. Systems never own any of it: a running
// system borrows what its parameters declare, for exactly one invocation.
type App struct {
	mu sync.Mutex

	entities *entityRegistry

	resourceTypes *typeRegistry
	resources     map[typeID]resourceCell

	componentTypes *typeRegistry
	components     map[typeID]componentCell

	currentTick uint64
}

// NewApp constructs an empty App.
func NewApp() *App {
	return &App{
		entities:       newEntityRegistry(),
		resourceTypes:  newTypeRegistry(),
		resources:      make(map[typeID]resourceCell),
		componentTypes: newTypeRegistry(),
		components:     make(map[typeID]componentCell),
	}
}

func componentTypeID[C any](app *App) typeID {
	return idFor[C](app.componentTypes)
}

func (a *App) componentTypeName(id typeID) string { return a.componentTypes.nameOf(id) }

func resourceTypeID[R any](app *App) typeID {
	return idFor[R](app.resourceTypes)
}

func (a *App) resourceTypeName(id typeID) string { return a.resourceTypes.nameOf(id) }

// componentHolderFor returns (creating on first use) the lockable table for
// component type C.
func componentHolderFor[C any](app *App) *componentHolder[C] {
	id := componentTypeID[C](app)
	app.mu.Lock()
	defer app.mu.Unlock()
	cell, ok := app.components[id]
	if !ok {
		h := newComponentHolder[C](app.componentTypeName(id))
		app.components[id] = h
		return h
	}
	h, ok := cell.(*componentHolder[C])
	if !ok {
		panic(traced("ecs: %v", InvariantBreachError{Detail: "component type registry/map desync"}))
	}
	return h
}

// resourceHolderFor returns (creating on first use) the lockable cell for
// resource type R.
func resourceHolderFor[R any](app *App) *resourceHolder[R] {
	id := resourceTypeID[R](app)
	app.mu.Lock()
	defer app.mu.Unlock()
	cell, ok := app.resources[id]
	if !ok {
		h := newResourceHolder[R](app.resourceTypeName(id))
		app.resources[id] = h
		return h
	}
	h, ok := cell.(*resourceHolder[R])
	if !ok {
		panic(traced("ecs: %v", InvariantBreachError{Detail: "resource type registry/map desync"}))
	}
	return h
}

// AddResource installs resource, replacing and returning any previous value
// of the same type.
func AddResource[R any](app *App, resource R) (previous R, replaced bool) {
	h := resourceHolderFor[R](app)
	return h.set(app.currentTick, resource)
}

// RemoveResource deletes the resource of type R, returning it if present.
func RemoveResource[R any](app *App) (R, bool) {
	h := resourceHolderFor[R](app)
	return h.clear()
}

// CreateEntity allocates a fresh Entity.
func (a *App) CreateEntity() Entity { return a.entities.Create() }

// DestroyEntity destroys entity along with every component attached to it.
// No-op (returns false) if entity is already dead.
func (a *App) DestroyEntity(entity Entity) bool {
	attached, ok := a.entities.Destroy(entity)
	if !ok {
		return false
	}
	for id := range attached {
		a.mu.Lock()
		cell := a.components[id]
		a.mu.Unlock()
		if cell != nil {
			cell.removeEntity(entity)
		}
	}
	return true
}

// EntityExists reports whether entity currently refers to a live entity.
func (a *App) EntityExists(entity Entity) bool { return a.entities.Exists(entity) }

// AddComponent attaches value to entity under type C, replacing any prior
// value of that type. No-op on a dead entity.
func AddComponent[C any](app *App, entity Entity, value C) {
	if !app.entities.Exists(entity) {
		return
	}
	id := componentTypeID[C](app)
	componentHolderFor[C](app).insert(app.currentTick, entity, value)
	app.entities.Attach(entity, id)
}

// RemoveComponent detaches and returns the value of type C from entity, if
// any. No-op on a dead entity.
func RemoveComponent[C any](app *App, entity Entity) (C, bool) {
	var zero C
	if !app.entities.Exists(entity) {
		return zero, false
	}
	id := componentTypeID[C](app)
	app.entities.Detach(entity, id)
	return componentHolderFor[C](app).remove(entity)
}

// HasComponent reports whether entity currently carries a value of type C.
func HasComponent[C any](app *App, entity Entity) bool {
	if !app.entities.Exists(entity) {
		return false
	}
	return componentHolderFor[C](app).has(entity)
}

// NextTick advances the App's logical clock by one.
func (a *App) NextTick() { a.currentTick++ }

// CurrentTickValue returns the App's current logical clock value.
func (a *App) CurrentTickValue() uint64 { return a.currentTick }

// Run builds a run-state carrying the App's current tick and a fresh
// command buffer, runs s to completion, then drains the buffer into the
// App in arrival order. s is typically a *SystemSet (built with
// NewSystemSet and RegisterSystemN) or a single *System1..*System6 (built
// directly with NewSystem1..NewSystem6) run on its own without a set.
//
// If s panics, Run propagates the panic without draining the command
// buffer: any commands queued before the panic are discarded along with
// it.
func (a *App) Run(s schedulable) {
	sender := newCommandSender()
	rs := &runState{app: a, sender: sender, currentTick: a.currentTick}
	s.invoke(rs)
	sender.drain(a)
}
