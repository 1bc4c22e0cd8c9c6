package ecs

import "testing"

func TestEntityRegistryCreateAssignsEvenGenerations(t *testing.T) {
	r := newEntityRegistry()

	e1 := r.Create()
	if e1.ID() != 0 || e1.Generation() != 2 {
		t.Fatalf("first entity = %+v, want id=0 generation=2", e1)
	}
	if e1.Generation()&1 != 0 {
		t.Fatalf("first entity generation %d is odd, want even (alive)", e1.Generation())
	}

	e2 := r.Create()
	if e2.ID() != 1 {
		t.Fatalf("second entity id = %d, want 1", e2.ID())
	}
}

func TestEntityRegistryExistsTracksMostRecentHandle(t *testing.T) {
	r := newEntityRegistry()
	e := r.Create()

	if !r.Exists(e) {
		t.Fatal("freshly created entity should exist")
	}

	if _, ok := r.Destroy(e); !ok {
		t.Fatal("Destroy on a live entity should report ok")
	}
	if r.Exists(e) {
		t.Fatal("destroyed entity should no longer exist")
	}

	// A stale handle to a slot that has since been recycled must read as
	// "not that entity".
	e2 := r.Create()
	if e2.ID() != e.ID() {
		t.Fatalf("recycled entity id = %d, want reused id %d", e2.ID(), e.ID())
	}
	if r.Exists(e) {
		t.Fatal("stale handle must not exist once its slot has been recycled")
	}
	if !r.Exists(e2) {
		t.Fatal("new handle at the recycled slot must exist")
	}
}

func TestEntityRegistryGenerationalReuse(t *testing.T) {
	r := newEntityRegistry()
	e1 := r.Create()
	r.Destroy(e1)
	e2 := r.Create()

	if e2.ID() != e1.ID() {
		t.Fatalf("e2.id = %d, want e1.id %d", e2.ID(), e1.ID())
	}
	if e2.Generation() == e1.Generation() {
		t.Fatal("e2.generation must differ from e1.generation")
	}
	if e1.Generation()&1 != 0 || e2.Generation()&1 != 0 {
		t.Fatal("both generations must be even")
	}
	if e2.Generation()-e1.Generation() != 2 {
		t.Fatalf("generations differ by %d, want 2", e2.Generation()-e1.Generation())
	}
}

func TestEntityRegistryDestroyReusesLowestDeadSlot(t *testing.T) {
	r := newEntityRegistry()
	e0 := r.Create()
	e1 := r.Create()
	e2 := r.Create()
	_ = e2

	r.Destroy(e1)
	r.Destroy(e0)

	next := r.Create()
	if next.ID() > e0.ID() {
		t.Fatalf("reused id %d should be <= lowest previously-dead id %d", next.ID(), e0.ID())
	}
}

func TestEntityRegistryDestroyNotAliveReturnsFalse(t *testing.T) {
	r := newEntityRegistry()
	e := r.Create()
	r.Destroy(e)

	if _, ok := r.Destroy(e); ok {
		t.Fatal("destroying an already-dead entity should report not-ok")
	}

	past := Entity{id: 99, generation: 2}
	if _, ok := r.Destroy(past); ok {
		t.Fatal("destroying a past-the-end handle should report not-ok")
	}
}

func TestEntityRegistryIterOrdersByID(t *testing.T) {
	r := newEntityRegistry()
	var created []Entity
	for i := 0; i < 5; i++ {
		created = append(created, r.Create())
	}
	r.Destroy(created[2])

	var got []Entity
	for e := range r.Iter() {
		got = append(got, e)
	}

	want := []Entity{created[0], created[1], created[3], created[4]}
	if len(got) != len(want) {
		t.Fatalf("iterated %d entities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("iter[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestEntityRegistryAttachDetach(t *testing.T) {
	r := newEntityRegistry()
	e := r.Create()

	r.Attach(e, 7)
	if _, ok := r.slots[e.id].attached[7]; !ok {
		t.Fatal("type 7 should be recorded as attached")
	}

	r.Detach(e, 7)
	if _, ok := r.slots[e.id].attached[7]; ok {
		t.Fatal("type 7 should no longer be attached after Detach")
	}

	attached, ok := r.Destroy(e)
	if !ok {
		t.Fatal("destroy should succeed on a live entity")
	}
	if len(attached) != 0 {
		t.Fatalf("attached set at destroy time = %v, want empty", attached)
	}
}
