/*
Package ecs provides a small general-purpose Entity-Component-System (ECS)
runtime for games and simulations.

Entities are opaque (id, generation) handles; components are typed values
attached to an entity at most once per type; resources are App-wide
singleton values. Systems are ordinary Go functions whose parameter types
statically declare exactly the components and resources they read or write,
letting the scheduler pack systems with disjoint borrows into parallel
waves.

Core Concepts:

  - Entity: an opaque (id, generation) handle.
  - Component: a typed value attached to an entity.
  - Resource: an App-wide singleton typed value.
  - Query: a view over one component combination, scoped to one system run.
  - System: a function taking SystemParameter arguments (Query, Res, ResMut,
    Commands, ...), registered against a SystemSet.
  - Tick: the App's monotonic logical clock, used for per-slot change
    detection.

Basic Usage:

	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	app := ecs.NewApp()
	e := app.CreateEntity()
	ecs.AddComponent(app, e, Position{})
	ecs.AddComponent(app, e, Velocity{X: 1})

	set := ecs.NewSystemSet(app)
	ecs.RegisterSystem1(set, func(q ecs.Query[ecs.QTuple2[ecs.RefMut[Position], ecs.Ref[Velocity]]]) {
		for _, view := range q.Iter() {
			pos, vel := view.A, view.B
			v := vel.Get()
			pos.Mutate(func(p *Position) {
				p.X += v.X
				p.Y += v.Y
			})
		}
	})

	app.Run(set)
	app.NextTick()

ecs is the core runtime; windowing/input, math/geometry, and rendering
integrations are deliberately kept out of this package.
*/
package ecs
