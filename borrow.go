package ecs

import "github.com/TheBitDrifter/mask"

// BorrowMode is whether a system-parameter declares read (Shared) or
// read-write (Exclusive) access to a resource or component type.
type BorrowMode int

const (
	Shared BorrowMode = iota
	Exclusive
)

func (m BorrowMode) String() string {
	if m == Exclusive {
		return "Exclusive"
	}
	return "Shared"
}

// Borrow is the uniform (type-id, name, mode) value used for conflict
// analysis and diagnostics. Resource-side and component-side borrows use
// the same shape but are never compared against each other: a resource and
// a component never conflict even if assigned the same typeID, because
// they're drawn from separate typeRegistry instances.
type Borrow struct {
	ID   typeID
	Name string
	Mode BorrowMode
}

// conflicts reports whether a and b, drawn from the same borrow space,
// conflict: same type id and at least one Exclusive.
func (a Borrow) conflicts(b Borrow) bool {
	if a.ID != b.ID {
		return false
	}
	return a.Mode == Exclusive || b.Mode == Exclusive
}

// borrowSet aggregates a collection of Borrows from one borrow space
// (resources, or components) into a pair of masks for O(1) conflict testing
// against another borrowSet.
//
// exclusive marks every type borrowed Exclusive; all marks every type
// borrowed at all (Shared or Exclusive). A new borrow set B conflicts with
// an existing set A iff B's exclusive types overlap A's borrowed types, or
// A's exclusive types overlap B's borrowed types, checked without a
// per-type loop.
type borrowSet struct {
	exclusive mask.Mask
	all       mask.Mask
	byID      map[typeID]Borrow
}

func newBorrowSet() *borrowSet {
	return &borrowSet{byID: make(map[typeID]Borrow)}
}

// add merges b into the set. If a conflicting borrow for the same type is
// already present (one Shared, one Exclusive), it returns false; the caller
// uses this to detect a single system's own internal conflicts at
// registration time. A repeated identical-mode borrow of the same type is
// tolerated (idempotent).
func (s *borrowSet) add(b Borrow) bool {
	if existing, ok := s.byID[b.ID]; ok {
		if existing.Mode != b.Mode {
			return false
		}
		return true
	}
	s.byID[b.ID] = b
	s.all.Mark(b.ID)
	if b.Mode == Exclusive {
		s.exclusive.Mark(b.ID)
	}
	return true
}

// conflictsWith reports whether s and other, drawn from the same borrow
// space, share any conflicting borrow.
func (s *borrowSet) conflictsWith(other *borrowSet) bool {
	return s.exclusive.ContainsAny(other.all) || other.exclusive.ContainsAny(s.all)
}

// union extends s in place with every borrow in other, with Exclusive
// dominating Shared for any type borrowed by both.
func (s *borrowSet) union(other *borrowSet) {
	for id, b := range other.byID {
		if existing, ok := s.byID[id]; ok && existing.Mode == Exclusive {
			continue
		}
		s.byID[id] = b
		s.all.Mark(id)
		if b.Mode == Exclusive {
			s.exclusive.Mark(id)
		}
	}
}

// borrows is the pair of borrow sets (resource-side, component-side) a
// single system or system set declares, kept separate because a resource
// and a component are never in conflict with one another.
type borrows struct {
	resources  *borrowSet
	components *borrowSet
}

func newBorrows() borrows {
	return borrows{resources: newBorrowSet(), components: newBorrowSet()}
}

func (b borrows) conflictsWith(other borrows) bool {
	return b.resources.conflictsWith(other.resources) || b.components.conflictsWith(other.components)
}

func (b borrows) union(other borrows) {
	b.resources.union(other.resources)
	b.components.union(other.components)
}
