package ecs

import "testing"

type qA struct{ V int }
type qB struct{ V int }

func TestQueryIterSkipsEntitiesMissingNonOptionalComponent(t *testing.T) {
	app := NewApp()
	e1 := app.CreateEntity()
	e2 := app.CreateEntity()
	e3 := app.CreateEntity()

	AddComponent(app, e1, qA{V: 1})
	AddComponent(app, e1, qB{V: 10})
	AddComponent(app, e2, qA{V: 2})
	AddComponent(app, e3, qB{V: 30})

	q := newQuery[QTuple2[Ref[qA], Option[Ref[qB]]]](app, 0, app.CurrentTickValue())

	type row struct {
		e       Entity
		a       int
		bOK     bool
		b       int
	}
	var got []row
	for e, v := range q.Iter() {
		r := row{e: e, a: v.A.Get().V}
		if v.B.Present {
			r.bOK = true
			r.b = v.B.Value.Get().V
		}
		got = append(got, r)
	}

	if len(got) != 2 {
		t.Fatalf("iterated %d rows, want 2 (e3 lacks qA and must be skipped)", len(got))
	}
	if got[0].e != e1 || got[0].a != 1 || !got[0].bOK || got[0].b != 10 {
		t.Fatalf("row 0 = %+v, want e1 with A=1 and Some(B=10)", got[0])
	}
	if got[1].e != e2 || got[1].a != 2 || got[1].bOK {
		t.Fatalf("row 1 = %+v, want e2 with A=2 and None", got[1])
	}
}

func TestQueryGetManyMutAliasingSafety(t *testing.T) {
	app := NewApp()
	e1 := app.CreateEntity()
	e2 := app.CreateEntity()
	e3 := app.CreateEntity()
	for _, e := range []Entity{e1, e2, e3} {
		AddComponent(app, e, qA{})
	}

	q := newQuery[RefMut[qA]](app, 0, app.CurrentTickValue())

	views, ok := q.GetManyMut([]Entity{e1, e2, e3})
	if !ok || len(views) != 3 {
		t.Fatalf("GetManyMut(distinct) = (%d, %v), want (3, true)", len(views), ok)
	}

	if _, ok := q.GetManyMut([]Entity{e1, e2, e1}); ok {
		t.Fatal("GetManyMut with a duplicate entity should fail")
	}

	views, ok = q.GetManyMut([]Entity{e1, e2, e3})
	if !ok || len(views) != 3 {
		t.Fatal("GetManyMut should succeed again after the prior failed call (no stray marks)")
	}
}

func TestQueryGetReturnsAbsentForDeadEntity(t *testing.T) {
	app := NewApp()
	e := app.CreateEntity()
	AddComponent(app, e, qA{V: 1})
	app.DestroyEntity(e)

	q := newQuery[Ref[qA]](app, 0, app.CurrentTickValue())
	if _, ok := q.Get(e); ok {
		t.Fatal("Get on a destroyed entity should report absent")
	}

	var seen int
	for range q.Iter() {
		seen++
	}
	if seen != 0 {
		t.Fatalf("Iter visited %d rows, want 0 after the only entity was destroyed", seen)
	}
}
