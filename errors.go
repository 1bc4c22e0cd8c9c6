package ecs

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

// traced wraps msg as an error carrying a stack trace, for the two fatal
// failure categories: registration errors and invariant breaches.
func traced(msg string, args ...any) error {
	return bark.AddTrace(fmt.Errorf(msg, args...))
}

// DuplicateBorrowError is raised at system-registration time when a single
// system declares conflicting access (one Shared, one Exclusive borrow) on
// the same resource or component type.
type DuplicateBorrowError struct {
	Kind string // "resource" or "component"
	Name string
}

func (e DuplicateBorrowError) Error() string {
	return fmt.Sprintf("system declares conflicting access to %s %q (both Shared and Exclusive)", e.Kind, e.Name)
}

// InvariantBreachError marks an internal assertion failure: a contended
// try-lock during a wave the scheduler proved disjoint, an odd (dead)
// generation observed on a code path that assumes liveness, or generation
// arithmetic overflow. These are programmer errors, not recoverable
// conditions.
type InvariantBreachError struct {
	Detail string
}

func (e InvariantBreachError) Error() string {
	return fmt.Sprintf("ecs: invariant breach: %s", e.Detail)
}

// ErrCacheFull is raised when the number of distinct component/resource
// types registered exceeds the capacity backing the borrow-set masks.
type ErrCacheFull struct {
	Capacity int
}

func (e ErrCacheFull) Error() string {
	return fmt.Sprintf("type registry at maximum capacity (%d)", e.Capacity)
}
