package ecs

import "testing"

type appPosition struct{ X int }
type appCounter struct{ N int }

func TestAppChangeDetectionAcrossRuns(t *testing.T) {
	// A system only observes a component as Changed() on the run
	// immediately after it (or another system) wrote it. The reader is a
	// single, reused System so its own lastRunTick advances across runs.
	app := NewApp()
	e := app.CreateEntity()

	app.NextTick() // tick 1
	AddComponent(app, e, appPosition{X: 0})

	var lastSeenChanged bool
	readSet := NewSystemSet(app)
	RegisterSystem1(readSet, func(q Query[Ref[appPosition]]) {
		v, ok := q.Get(e)
		if !ok {
			t.Fatal("entity should carry appPosition")
		}
		lastSeenChanged = v.Changed()
	})

	// Reader's lastRunTick starts at 0, which predates the insert's tick 1.
	app.Run(readSet)
	if !lastSeenChanged {
		t.Fatal("first read after insert should observe Changed() == true")
	}

	app.NextTick() // tick 2, nothing writes appPosition
	app.Run(readSet)
	if lastSeenChanged {
		t.Fatal("a read with no intervening write should observe Changed() == false")
	}

	writeSet := NewSystemSet(app)
	RegisterSystem1(writeSet, func(q Query[RefMut[appPosition]]) {
		v, _ := q.GetMut(e)
		v.Mutate(func(p *appPosition) { p.X = 9 })
	})
	app.NextTick() // tick 3
	app.Run(writeSet)

	app.Run(readSet)
	if !lastSeenChanged {
		t.Fatal("a read right after a write should observe Changed() == true")
	}
}

func TestAppResourceAddRemoveRoundTrip(t *testing.T) {
	app := NewApp()

	prev, replaced := AddResource(app, appCounter{N: 1})
	if replaced {
		t.Fatalf("first AddResource reported replaced=true with previous %+v", prev)
	}

	prev, replaced = AddResource(app, appCounter{N: 2})
	if !replaced || prev.N != 1 {
		t.Fatalf("second AddResource = (%+v, %v), want ({1}, true)", prev, replaced)
	}

	got, ok := RemoveResource[appCounter](app)
	if !ok || got.N != 2 {
		t.Fatalf("RemoveResource = (%+v, %v), want ({2}, true)", got, ok)
	}

	if _, ok := RemoveResource[appCounter](app); ok {
		t.Fatal("removing an already-absent resource should report not-ok")
	}
}

func TestAppMutationsNoOpOnDeadEntity(t *testing.T) {
	app := NewApp()
	e := app.CreateEntity()
	AddComponent(app, e, appPosition{X: 5})
	app.DestroyEntity(e)

	AddComponent(app, e, appPosition{X: 99}) // must not resurrect e
	if app.EntityExists(e) {
		t.Fatal("AddComponent must not resurrect a dead entity")
	}
	if HasComponent[appPosition](app, e) {
		t.Fatal("HasComponent must report false for a dead entity even after a no-op AddComponent")
	}

	if _, ok := RemoveComponent[appPosition](app, e); ok {
		t.Fatal("RemoveComponent on a dead entity should report not-ok")
	}

	if ok := app.DestroyEntity(e); ok {
		t.Fatal("destroying an already-dead entity twice should report false the second time")
	}
}

func TestAppRunDiscardsCommandsOnPanic(t *testing.T) {
	app := NewApp()
	set := NewSystemSet(app)
	RegisterSystem1(set, func(cmds Commands) {
		cmds.CreateEntity(C(appPosition{X: 1}))
		panic("system failure")
	})

	func() {
		defer func() { recover() }()
		app.Run(set)
	}()

	var count int
	for range app.entities.Iter() {
		count++
	}
	if count != 0 {
		t.Fatalf("entities after a panicking run = %d, want 0 (queued commands must be discarded)", count)
	}
}
