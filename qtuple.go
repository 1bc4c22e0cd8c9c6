package ecs

// QTuple2..QTuple6 compose multiple QueryParameters into one: the closed
// set of QueryParameter is Ref[C], RefMut[C], Option[P], and tuples of
// those, and a Go generic type parameter is always a single named type —
// so a query over more than one component needs an explicit tuple struct
// to serve as that single Q. Nesting QTuple2[QTuple2[A, B], C] reaches
// arities beyond 6, exactly as commands.go's bundle nesting does.
type QTuple2[A QueryParameter, B QueryParameter] struct {
	A A
	B B
}

func (QTuple2[A, B]) appendComponentBorrows(app *App, set *borrowSet) {
	var a A
	var b B
	a.appendComponentBorrows(app, set)
	b.appendComponentBorrows(app, set)
}

func (QTuple2[A, B]) lockTables(app *App, ls *lockState) {
	var a A
	var b B
	a.lockTables(app, ls)
	b.lockTables(app, ls)
}

func (QTuple2[A, B]) forEntity(app *App, e Entity, lastRunTick, currentTick uint64) (any, bool) {
	var a A
	var b B
	av, ok := a.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bv, ok := b.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	return QTuple2[A, B]{A: av.(A), B: bv.(B)}, true
}

func (QTuple2[A, B]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	var a A
	var b B
	avs, ok := a.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bvs, ok := b.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	out := make([]any, len(entities))
	for i := range entities {
		out[i] = QTuple2[A, B]{A: avs[i].(A), B: bvs[i].(B)}
	}
	return out, true
}

// QTuple3 composes three Q-types into one.
type QTuple3[A QueryParameter, B QueryParameter, C QueryParameter] struct {
	A A
	B B
	C C
}

func (QTuple3[A, B, C]) appendComponentBorrows(app *App, set *borrowSet) {
	var a A
	var b B
	var c C
	a.appendComponentBorrows(app, set)
	b.appendComponentBorrows(app, set)
	c.appendComponentBorrows(app, set)
}

func (QTuple3[A, B, C]) lockTables(app *App, ls *lockState) {
	var a A
	var b B
	var c C
	a.lockTables(app, ls)
	b.lockTables(app, ls)
	c.lockTables(app, ls)
}

func (QTuple3[A, B, C]) forEntity(app *App, e Entity, lastRunTick, currentTick uint64) (any, bool) {
	var a A
	var b B
	var c C
	av, ok := a.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bv, ok := b.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cv, ok := c.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	return QTuple3[A, B, C]{A: av.(A), B: bv.(B), C: cv.(C)}, true
}

func (QTuple3[A, B, C]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	var a A
	var b B
	var c C
	avs, ok := a.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bvs, ok := b.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cvs, ok := c.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	out := make([]any, len(entities))
	for i := range entities {
		out[i] = QTuple3[A, B, C]{A: avs[i].(A), B: bvs[i].(B), C: cvs[i].(C)}
	}
	return out, true
}

// QTuple4 composes four Q-types into one.
type QTuple4[A QueryParameter, B QueryParameter, C QueryParameter, D QueryParameter] struct {
	A A
	B B
	C C
	D D
}

func (QTuple4[A, B, C, D]) appendComponentBorrows(app *App, set *borrowSet) {
	var a A
	var b B
	var c C
	var d D
	a.appendComponentBorrows(app, set)
	b.appendComponentBorrows(app, set)
	c.appendComponentBorrows(app, set)
	d.appendComponentBorrows(app, set)
}

func (QTuple4[A, B, C, D]) lockTables(app *App, ls *lockState) {
	var a A
	var b B
	var c C
	var d D
	a.lockTables(app, ls)
	b.lockTables(app, ls)
	c.lockTables(app, ls)
	d.lockTables(app, ls)
}

func (QTuple4[A, B, C, D]) forEntity(app *App, e Entity, lastRunTick, currentTick uint64) (any, bool) {
	var a A
	var b B
	var c C
	var d D
	av, ok := a.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bv, ok := b.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cv, ok := c.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	dv, ok := d.forEntity(app, e, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	return QTuple4[A, B, C, D]{A: av.(A), B: bv.(B), C: cv.(C), D: dv.(D)}, true
}

func (QTuple4[A, B, C, D]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	var a A
	var b B
	var c C
	var d D
	avs, ok := a.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bvs, ok := b.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cvs, ok := c.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	dvs, ok := d.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	out := make([]any, len(entities))
	for i := range entities {
		out[i] = QTuple4[A, B, C, D]{A: avs[i].(A), B: bvs[i].(B), C: cvs[i].(C), D: dvs[i].(D)}
	}
	return out, true
}

// QTuple5 composes five Q-types into one.
type QTuple5[A QueryParameter, B QueryParameter, C QueryParameter, D QueryParameter, E QueryParameter] struct {
	A A
	B B
	C C
	D D
	E E
}

func (QTuple5[A, B, C, D, E]) appendComponentBorrows(app *App, set *borrowSet) {
	var a A
	var b B
	var c C
	var d D
	var e E
	a.appendComponentBorrows(app, set)
	b.appendComponentBorrows(app, set)
	c.appendComponentBorrows(app, set)
	d.appendComponentBorrows(app, set)
	e.appendComponentBorrows(app, set)
}

func (QTuple5[A, B, C, D, E]) lockTables(app *App, ls *lockState) {
	var a A
	var b B
	var c C
	var d D
	var e E
	a.lockTables(app, ls)
	b.lockTables(app, ls)
	c.lockTables(app, ls)
	d.lockTables(app, ls)
	e.lockTables(app, ls)
}

func (QTuple5[A, B, C, D, E]) forEntity(app *App, ent Entity, lastRunTick, currentTick uint64) (any, bool) {
	var a A
	var b B
	var c C
	var d D
	var e E
	av, ok := a.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bv, ok := b.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cv, ok := c.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	dv, ok := d.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	ev, ok := e.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	return QTuple5[A, B, C, D, E]{A: av.(A), B: bv.(B), C: cv.(C), D: dv.(D), E: ev.(E)}, true
}

func (QTuple5[A, B, C, D, E]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	var a A
	var b B
	var c C
	var d D
	var e E
	avs, ok := a.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bvs, ok := b.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cvs, ok := c.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	dvs, ok := d.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	evs, ok := e.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	out := make([]any, len(entities))
	for i := range entities {
		out[i] = QTuple5[A, B, C, D, E]{A: avs[i].(A), B: bvs[i].(B), C: cvs[i].(C), D: dvs[i].(D), E: evs[i].(E)}
	}
	return out, true
}

// QTuple6 composes six Q-types into one.
type QTuple6[A QueryParameter, B QueryParameter, C QueryParameter, D QueryParameter, E QueryParameter, F QueryParameter] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

func (QTuple6[A, B, C, D, E, F]) appendComponentBorrows(app *App, set *borrowSet) {
	var a A
	var b B
	var c C
	var d D
	var e E
	var f F
	a.appendComponentBorrows(app, set)
	b.appendComponentBorrows(app, set)
	c.appendComponentBorrows(app, set)
	d.appendComponentBorrows(app, set)
	e.appendComponentBorrows(app, set)
	f.appendComponentBorrows(app, set)
}

func (QTuple6[A, B, C, D, E, F]) lockTables(app *App, ls *lockState) {
	var a A
	var b B
	var c C
	var d D
	var e E
	var f F
	a.lockTables(app, ls)
	b.lockTables(app, ls)
	c.lockTables(app, ls)
	d.lockTables(app, ls)
	e.lockTables(app, ls)
	f.lockTables(app, ls)
}

func (QTuple6[A, B, C, D, E, F]) forEntity(app *App, ent Entity, lastRunTick, currentTick uint64) (any, bool) {
	var a A
	var b B
	var c C
	var d D
	var e E
	var f F
	av, ok := a.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bv, ok := b.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cv, ok := c.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	dv, ok := d.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	ev, ok := e.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	fv, ok := f.forEntity(app, ent, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	return QTuple6[A, B, C, D, E, F]{A: av.(A), B: bv.(B), C: cv.(C), D: dv.(D), E: ev.(E), F: fv.(F)}, true
}

func (QTuple6[A, B, C, D, E, F]) forMany(app *App, entities []Entity, lastRunTick, currentTick uint64) ([]any, bool) {
	var a A
	var b B
	var c C
	var d D
	var e E
	var f F
	avs, ok := a.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	bvs, ok := b.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	cvs, ok := c.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	dvs, ok := d.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	evs, ok := e.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	fvs, ok := f.forMany(app, entities, lastRunTick, currentTick)
	if !ok {
		return nil, false
	}
	out := make([]any, len(entities))
	for i := range entities {
		out[i] = QTuple6[A, B, C, D, E, F]{A: avs[i].(A), B: bvs[i].(B), C: cvs[i].(C), D: dvs[i].(D), E: evs[i].(E), F: fvs[i].(F)}
	}
	return out, true
}
