package ecs

// runState is the read-only reference bundle a running system borrows:
// {resources, entities, components, command-sender, current-tick} collapsed
// to {app, sender, currentTick} since app already owns the first three. It
// is built once per App.Run call and threaded through every system
// invocation in every wave of that run.
type runState struct {
	app         *App
	sender      *commandSender
	currentTick uint64
}

// schedulable is the uniform contract for anything a SystemSet can place
// into a wave and later invoke: compute the borrows it declares (against a
// specific App, since typeIDs are assigned per-App — see typeregistry.go),
// and run to completion against a run-state. System1..System6 (one per
// supported function arity) and *SystemSet both implement it, so a system
// set is itself a system: nesting is just placing one schedulable inside
// another's wave.
type schedulable interface {
	computeBorrows(app *App) borrows
	invoke(rs *runState)
}

// System1 wraps a single-parameter user system function with its parameter
// protocol and its own last-run tick. System2..System6 repeat the same
// shape for higher arities, one constructor per arity instead of a public
// tuple type, so a user writes `func(q Query[...], r Res[R])` directly
// rather than wrapping their own parameters in a Tuple struct (see
// DESIGN.md).
type System1[A SystemParameter] struct {
	fn          func(A)
	lastRunTick uint64
}

// NewSystem1 wraps fn as a schedulable system taking one parameter.
func NewSystem1[A SystemParameter](fn func(A)) *System1[A] {
	return &System1[A]{fn: fn}
}

func (s *System1[A]) computeBorrows(app *App) borrows {
	b := newBorrows()
	var a A
	a.appendBorrows(app, &b)
	return b
}

// invoke runs the system-wrapper sequence: lock, construct, call, release
// (deferred so it runs on every exit path, including a panicking system
// body), then stamp last-run tick.
func (s *System1[A]) invoke(rs *runState) {
	var a A
	ls := newLockState()
	defer ls.release()
	a.lock(rs.app, ls)
	cmds := Commands{sender: rs.sender}
	av := a.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(A)
	s.fn(av)
	s.lastRunTick = rs.currentTick
}

// System2 wraps a two-parameter user system function.
type System2[A SystemParameter, B SystemParameter] struct {
	fn          func(A, B)
	lastRunTick uint64
}

// NewSystem2 wraps fn as a schedulable system taking two parameters.
func NewSystem2[A SystemParameter, B SystemParameter](fn func(A, B)) *System2[A, B] {
	return &System2[A, B]{fn: fn}
}

func (s *System2[A, B]) computeBorrows(app *App) borrows {
	b := newBorrows()
	var a A
	var bb B
	a.appendBorrows(app, &b)
	bb.appendBorrows(app, &b)
	return b
}

func (s *System2[A, B]) invoke(rs *runState) {
	var a A
	var b B
	ls := newLockState()
	defer ls.release()
	a.lock(rs.app, ls)
	b.lock(rs.app, ls)
	cmds := Commands{sender: rs.sender}
	av := a.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(A)
	bv := b.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(B)
	s.fn(av, bv)
	s.lastRunTick = rs.currentTick
}

// System3 wraps a three-parameter user system function.
type System3[A SystemParameter, B SystemParameter, C SystemParameter] struct {
	fn          func(A, B, C)
	lastRunTick uint64
}

// NewSystem3 wraps fn as a schedulable system taking three parameters.
func NewSystem3[A SystemParameter, B SystemParameter, C SystemParameter](fn func(A, B, C)) *System3[A, B, C] {
	return &System3[A, B, C]{fn: fn}
}

func (s *System3[A, B, C]) computeBorrows(app *App) borrows {
	b := newBorrows()
	var a A
	var bb B
	var c C
	a.appendBorrows(app, &b)
	bb.appendBorrows(app, &b)
	c.appendBorrows(app, &b)
	return b
}

func (s *System3[A, B, C]) invoke(rs *runState) {
	var a A
	var b B
	var c C
	ls := newLockState()
	defer ls.release()
	a.lock(rs.app, ls)
	b.lock(rs.app, ls)
	c.lock(rs.app, ls)
	cmds := Commands{sender: rs.sender}
	av := a.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(A)
	bv := b.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(B)
	cv := c.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(C)
	s.fn(av, bv, cv)
	s.lastRunTick = rs.currentTick
}

// System4 wraps a four-parameter user system function.
type System4[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter] struct {
	fn          func(A, B, C, D)
	lastRunTick uint64
}

// NewSystem4 wraps fn as a schedulable system taking four parameters.
func NewSystem4[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter](fn func(A, B, C, D)) *System4[A, B, C, D] {
	return &System4[A, B, C, D]{fn: fn}
}

func (s *System4[A, B, C, D]) computeBorrows(app *App) borrows {
	b := newBorrows()
	var a A
	var bb B
	var c C
	var d D
	a.appendBorrows(app, &b)
	bb.appendBorrows(app, &b)
	c.appendBorrows(app, &b)
	d.appendBorrows(app, &b)
	return b
}

func (s *System4[A, B, C, D]) invoke(rs *runState) {
	var a A
	var b B
	var c C
	var d D
	ls := newLockState()
	defer ls.release()
	a.lock(rs.app, ls)
	b.lock(rs.app, ls)
	c.lock(rs.app, ls)
	d.lock(rs.app, ls)
	cmds := Commands{sender: rs.sender}
	av := a.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(A)
	bv := b.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(B)
	cv := c.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(C)
	dv := d.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(D)
	s.fn(av, bv, cv, dv)
	s.lastRunTick = rs.currentTick
}

// System5 wraps a five-parameter user system function.
type System5[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter, E SystemParameter] struct {
	fn          func(A, B, C, D, E)
	lastRunTick uint64
}

// NewSystem5 wraps fn as a schedulable system taking five parameters.
func NewSystem5[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter, E SystemParameter](fn func(A, B, C, D, E)) *System5[A, B, C, D, E] {
	return &System5[A, B, C, D, E]{fn: fn}
}

func (s *System5[A, B, C, D, E]) computeBorrows(app *App) borrows {
	b := newBorrows()
	var a A
	var bb B
	var c C
	var d D
	var e E
	a.appendBorrows(app, &b)
	bb.appendBorrows(app, &b)
	c.appendBorrows(app, &b)
	d.appendBorrows(app, &b)
	e.appendBorrows(app, &b)
	return b
}

func (s *System5[A, B, C, D, E]) invoke(rs *runState) {
	var a A
	var b B
	var c C
	var d D
	var e E
	ls := newLockState()
	defer ls.release()
	a.lock(rs.app, ls)
	b.lock(rs.app, ls)
	c.lock(rs.app, ls)
	d.lock(rs.app, ls)
	e.lock(rs.app, ls)
	cmds := Commands{sender: rs.sender}
	av := a.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(A)
	bv := b.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(B)
	cv := c.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(C)
	dv := d.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(D)
	ev := e.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(E)
	s.fn(av, bv, cv, dv, ev)
	s.lastRunTick = rs.currentTick
}

// System6 wraps a six-parameter user system function.
type System6[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter, E SystemParameter, F SystemParameter] struct {
	fn          func(A, B, C, D, E, F)
	lastRunTick uint64
}

// NewSystem6 wraps fn as a schedulable system taking six parameters.
func NewSystem6[A SystemParameter, B SystemParameter, C SystemParameter, D SystemParameter, E SystemParameter, F SystemParameter](fn func(A, B, C, D, E, F)) *System6[A, B, C, D, E, F] {
	return &System6[A, B, C, D, E, F]{fn: fn}
}

func (s *System6[A, B, C, D, E, F]) computeBorrows(app *App) borrows {
	b := newBorrows()
	var a A
	var bb B
	var c C
	var d D
	var e E
	var f F
	a.appendBorrows(app, &b)
	bb.appendBorrows(app, &b)
	c.appendBorrows(app, &b)
	d.appendBorrows(app, &b)
	e.appendBorrows(app, &b)
	f.appendBorrows(app, &b)
	return b
}

func (s *System6[A, B, C, D, E, F]) invoke(rs *runState) {
	var a A
	var b B
	var c C
	var d D
	var e E
	var f F
	ls := newLockState()
	defer ls.release()
	a.lock(rs.app, ls)
	b.lock(rs.app, ls)
	c.lock(rs.app, ls)
	d.lock(rs.app, ls)
	e.lock(rs.app, ls)
	f.lock(rs.app, ls)
	cmds := Commands{sender: rs.sender}
	av := a.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(A)
	bv := b.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(B)
	cv := c.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(C)
	dv := d.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(D)
	ev := e.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(E)
	fv := f.construct(rs.app, cmds, s.lastRunTick, rs.currentTick).(F)
	s.fn(av, bv, cv, dv, ev, fv)
	s.lastRunTick = rs.currentTick
}
