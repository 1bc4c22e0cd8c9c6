package ecs

// rwLocker is what lockState needs from a component table or resource cell:
// try-lock acquisition in both modes, release, and a name for diagnostics.
// componentHolder and resourceHolder both satisfy it.
type rwLocker interface {
	TryRLock() bool
	RUnlock()
	TryLock() bool
	Unlock()
	typeName() string
}

// lockState tracks every lock a single system invocation holds,
// deduplicating repeated borrows of the same type so an idempotent
// declaration (the same type borrowed Exclusive twice, or Shared twice)
// acquires its lock exactly once; a second exclusive try-lock of the same
// table would otherwise fail and be reported as contention.
//
// Acquisition uses try-locks: the scheduler only runs a system once its
// wave's borrows are proven pairwise disjoint, so every acquisition during
// a wave must succeed immediately. A contended lock is an internal
// scheduling bug and panics rather than blocking.
type lockState struct {
	modes map[rwLocker]BorrowMode
	order []rwLocker
}

func newLockState() *lockState {
	return &lockState{modes: make(map[rwLocker]BorrowMode)}
}

// acquire takes l in the given mode, unless this invocation already holds
// it. Holding it in the other mode means the system declared the same type
// both Shared and Exclusive, which registration validates against — a
// system run without registration hits the same check here.
func (ls *lockState) acquire(l rwLocker, mode BorrowMode, kind string) {
	if held, ok := ls.modes[l]; ok {
		if held != mode {
			panic(traced("ecs: %v", DuplicateBorrowError{Kind: kind, Name: l.typeName()}))
		}
		return
	}
	var ok bool
	if mode == Exclusive {
		ok = l.TryLock()
	} else {
		ok = l.TryRLock()
	}
	if !ok {
		panic(traced("ecs: %v", InvariantBreachError{Detail: "contended lock on " + kind + " " + l.typeName() + " inside a wave"}))
	}
	ls.modes[l] = mode
	ls.order = append(ls.order, l)
}

// release unlocks everything acquired, in reverse acquisition order. Called
// exactly once per invocation, deferred so it runs on every exit path.
func (ls *lockState) release() {
	for i := len(ls.order) - 1; i >= 0; i-- {
		l := ls.order[i]
		if ls.modes[l] == Exclusive {
			l.Unlock()
		} else {
			l.RUnlock()
		}
	}
	ls.order = ls.order[:0]
	clear(ls.modes)
}
