package ecs

import "sync"

// wave is a (resource-borrow-set, component-borrow-set, systems) triple: a
// set of schedulables whose declared borrows are pairwise conflict-free,
// so they run concurrently.
type wave struct {
	borrows borrows
	systems []schedulable
}

// SystemSet is an ordered sequence of waves, built by greedy first-fit
// placement as systems register, bound to one App because typeIDs (and
// therefore borrow conflict tests) are assigned per-App (typeregistry.go).
// A SystemSet is itself a schedulable, so one set can be registered into
// another exactly as a single system can.
type SystemSet struct {
	app   *App
	waves []*wave
}

// NewSystemSet constructs an empty SystemSet bound to app.
func NewSystemSet(app *App) *SystemSet {
	return &SystemSet{app: app}
}

// place registers one schedulable: scan existing waves in order, drop it
// into the first one whose borrow sets don't conflict with its own,
// otherwise append a new wave. This is deliberately greedy first-fit
// rather than optimal bin-packing: placement is then fully predictable
// from registration order alone.
func (s *SystemSet) place(sch schedulable) {
	b := sch.computeBorrows(s.app)
	for _, w := range s.waves {
		if !w.borrows.conflictsWith(b) {
			w.systems = append(w.systems, sch)
			w.borrows.union(b)
			return
		}
	}
	s.waves = append(s.waves, &wave{borrows: b, systems: []schedulable{sch}})
}

// computeBorrows returns the union of every wave's borrows, with Exclusive
// dominating Shared per type. The app argument is accepted to satisfy the
// schedulable interface but ignored: a SystemSet's borrows were already
// computed against the App it was constructed with.
func (s *SystemSet) computeBorrows(*App) borrows {
	agg := newBorrows()
	for _, w := range s.waves {
		agg.union(w.borrows)
	}
	return agg
}

// invoke runs every wave in order, each wave's systems in parallel,
// blocking until the wave completes before starting the next: parallel
// within a wave, sequential across waves.
func (s *SystemSet) invoke(rs *runState) {
	for _, w := range s.waves {
		runWave(w, rs)
	}
}

// runWave executes every system in w concurrently and waits for all of
// them to finish. A system-body panic is recovered inside its goroutine and
// re-raised on the calling goroutine once the wave finishes, so it
// propagates out of App.Run instead of crashing the process outright. If
// more than one system in the wave panics, the first one observed
// (arbitrary, since execution order within a wave is unspecified) is the
// one re-raised.
func runWave(w *wave, rs *runState) {
	var wg sync.WaitGroup
	panics := make(chan any, len(w.systems))

	// A worker pool size configured via Config.SetWorkerPoolSize caps how
	// many of this wave's systems run concurrently; the zero value (the
	// default) leaves it unbounded, one goroutine per system.
	var sem chan struct{}
	if n := Config.workerPoolSize; n > 0 {
		sem = make(chan struct{}, n)
	}

	for _, sch := range w.systems {
		wg.Add(1)
		go func(sch schedulable) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			defer func() {
				if r := recover(); r != nil {
					if Config.panicHook != nil {
						Config.panicHook(r)
					}
					panics <- r
				}
			}()
			sch.invoke(rs)
		}(sch)
	}
	wg.Wait()
	close(panics)
	for r := range panics {
		panic(r)
	}
}

// RegisterSystem1 registers a one-parameter system function against set,
// placing it into the first wave whose declared borrows don't conflict
// with the system's own. Panics with a DuplicateBorrowError if fn's own
// parameter list declares the same resource or component both Shared and
// Exclusive.
func RegisterSystem1[A SystemParameter](set *SystemSet, fn func(A)) {
	set.place(NewSystem1(fn))
}

// RegisterSystem2 registers a two-parameter system function against set.
func RegisterSystem2[A SystemParameter, B SystemParameter](set *SystemSet, fn func(A, B)) {
	set.place(NewSystem2(fn))
}

// RegisterSystem3 registers a three-parameter system function against set.
func RegisterSystem3[A SystemParameter, B SystemParameter, C SystemParameter](set *SystemSet, fn func(A, B, C)) {
	set.place(NewSystem3(fn))
}

// RegisterSystem4 registers a four-parameter system function against set.
func RegisterSystem4[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter](set *SystemSet, fn func(A, B, C, D)) {
	set.place(NewSystem4(fn))
}

// RegisterSystem5 registers a five-parameter system function against set.
func RegisterSystem5[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter, E SystemParameter](set *SystemSet, fn func(A, B, C, D, E)) {
	set.place(NewSystem5(fn))
}

// RegisterSystem6 registers a six-parameter system function against set.
func RegisterSystem6[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter, E SystemParameter, F SystemParameter](set *SystemSet, fn func(A, B, C, D, E, F)) {
	set.place(NewSystem6(fn))
}

// RegisterSet nests child into parent's wave placement, exactly as a single
// system would be. child keeps running its own internal waves in sequence
// whenever parent's wave containing it runs.
func RegisterSet(parent *SystemSet, child *SystemSet) {
	parent.place(child)
}
