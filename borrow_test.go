package ecs

import "testing"

func TestBorrowConflictRule(t *testing.T) {
	// Same type-id conflicts iff at least one side is Exclusive;
	// different type-ids never conflict.
	a := Borrow{ID: 1, Name: "A", Mode: Shared}
	b := Borrow{ID: 1, Name: "A", Mode: Shared}
	if a.conflicts(b) {
		t.Fatal("two Shared borrows of the same type must not conflict")
	}

	c := Borrow{ID: 1, Name: "A", Mode: Exclusive}
	if !a.conflicts(c) {
		t.Fatal("Shared and Exclusive borrows of the same type must conflict")
	}
	if !c.conflicts(c) {
		t.Fatal("two Exclusive borrows of the same type must conflict")
	}

	d := Borrow{ID: 2, Name: "B", Mode: Exclusive}
	if a.conflicts(d) {
		t.Fatal("borrows of different types must never conflict")
	}
}

func TestBorrowSetAddRejectsSelfConflict(t *testing.T) {
	s := newBorrowSet()
	if !s.add(Borrow{ID: 1, Name: "A", Mode: Shared}) {
		t.Fatal("first add should succeed")
	}
	if !s.add(Borrow{ID: 1, Name: "A", Mode: Shared}) {
		t.Fatal("repeating an identical-mode borrow should be tolerated (idempotent)")
	}
	if s.add(Borrow{ID: 1, Name: "A", Mode: Exclusive}) {
		t.Fatal("adding a conflicting mode for the same type should fail")
	}
}

func TestBorrowSetConflictsWith(t *testing.T) {
	a := newBorrowSet()
	a.add(Borrow{ID: 1, Name: "A", Mode: Shared})

	b := newBorrowSet()
	b.add(Borrow{ID: 1, Name: "A", Mode: Shared})
	if a.conflictsWith(b) {
		t.Fatal("two Shared sets over the same type should not conflict")
	}

	c := newBorrowSet()
	c.add(Borrow{ID: 1, Name: "A", Mode: Exclusive})
	if !a.conflictsWith(c) {
		t.Fatal("a Shared set and an Exclusive set over the same type should conflict")
	}

	d := newBorrowSet()
	d.add(Borrow{ID: 2, Name: "B", Mode: Exclusive})
	if a.conflictsWith(d) {
		t.Fatal("sets over disjoint types should not conflict")
	}
}

func TestBorrowSetUnionExclusiveDominates(t *testing.T) {
	a := newBorrowSet()
	a.add(Borrow{ID: 1, Name: "A", Mode: Shared})

	b := newBorrowSet()
	b.add(Borrow{ID: 1, Name: "A", Mode: Exclusive})

	a.union(b)
	if a.byID[1].Mode != Exclusive {
		t.Fatalf("union should leave type 1 Exclusive, got %v", a.byID[1].Mode)
	}

	c := newBorrowSet()
	c.add(Borrow{ID: 1, Name: "A", Mode: Shared})
	a.union(c)
	if a.byID[1].Mode != Exclusive {
		t.Fatal("Exclusive must dominate a later Shared union for the same type")
	}
}
