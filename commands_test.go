package ecs

import "testing"

type cmdPosition struct{ X int }
type cmdVelocity struct{ V int }

func TestCommandsCreateEntityDefersUntilDrain(t *testing.T) {
	app := NewApp()
	sender := newCommandSender()
	cmds := Commands{sender: sender}

	cmds.CreateEntity(C(cmdPosition{X: 1}))

	var before int
	for range app.entities.Iter() {
		before++
	}
	if before != 0 {
		t.Fatal("CreateEntity must not take effect before drain")
	}

	sender.drain(app)

	var after []Entity
	for e := range app.entities.Iter() {
		after = append(after, e)
	}
	if len(after) != 1 {
		t.Fatalf("after drain, %d entities exist, want 1", len(after))
	}
	if !HasComponent[cmdPosition](app, after[0]) {
		t.Fatal("the deferred entity should carry the bundled component after drain")
	}
}

func TestCommandsBundleAttachDetachRoundTrip(t *testing.T) {
	app := NewApp()
	sender := newCommandSender()
	cmds := Commands{sender: sender}
	e := app.CreateEntity()

	cmds.AddComponents(e, Bundle2[Single[cmdPosition], Single[cmdVelocity]]{
		A: C(cmdPosition{X: 5}),
		B: C(cmdVelocity{V: 7}),
	})
	sender.drain(app)

	if !HasComponent[cmdPosition](app, e) || !HasComponent[cmdVelocity](app, e) {
		t.Fatal("both bundle members should be attached after drain")
	}

	cmds.RemoveComponents(e, Bundle2[Single[cmdPosition], Single[cmdVelocity]]{
		A: C(cmdPosition{}),
		B: C(cmdVelocity{}),
	})
	sender.drain(app)

	if HasComponent[cmdPosition](app, e) || HasComponent[cmdVelocity](app, e) {
		t.Fatal("both bundle members should be detached after the second drain")
	}
}

func TestCommandsOrderingWithinOneDrain(t *testing.T) {
	// Two create commands followed by a destroy of the first, queued
	// within a single run, leave exactly one new alive entity.
	app := NewApp()
	sender := newCommandSender()
	cmds := Commands{sender: sender}

	var first Entity
	cmds.Schedule(func(app *App) { first = app.CreateEntity() })
	cmds.Schedule(func(app *App) { app.CreateEntity() })
	cmds.Schedule(func(app *App) { app.DestroyEntity(first) })

	sender.drain(app)

	var alive []Entity
	for e := range app.entities.Iter() {
		alive = append(alive, e)
	}
	if len(alive) != 1 {
		t.Fatalf("alive entities after drain = %d, want 1", len(alive))
	}
	if app.EntityExists(first) {
		t.Fatal("the first created entity should have been destroyed within the same drain")
	}
}

func TestCommandsDestroyEntityNoOpOnDeadTarget(t *testing.T) {
	app := NewApp()
	e := app.CreateEntity()
	app.DestroyEntity(e)

	sender := newCommandSender()
	cmds := Commands{sender: sender}
	cmds.DestroyEntity(e) // should not panic
	sender.drain(app)
}

func TestCommandSenderDrainEmptiesQueue(t *testing.T) {
	app := NewApp()
	sender := newCommandSender()
	calls := 0
	sender.push(func(*App) { calls++ })
	sender.drain(app)
	sender.drain(app)
	if calls != 1 {
		t.Fatalf("queued command ran %d times, want 1 (drain must empty the queue)", calls)
	}
}
