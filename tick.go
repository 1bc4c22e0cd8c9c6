package ecs

// CurrentTick is the SystemParameter that hands a system its App's tick at
// the moment it runs.
type CurrentTick uint64

func (CurrentTick) appendBorrows(*App, *borrows) {}
func (CurrentTick) lock(*App, *lockState)        {}

func (CurrentTick) construct(_ *App, _ Commands, _, currentTick uint64) any {
	return CurrentTick(currentTick)
}

// LastRunTick is the SystemParameter that hands a system the tick it was
// last invoked at (0 on its first run), for manual change-detection
// comparisons alongside Ref/RefMut.Changed.
type LastRunTick uint64

func (LastRunTick) appendBorrows(*App, *borrows) {}
func (LastRunTick) lock(*App, *lockState)        {}

func (LastRunTick) construct(_ *App, _ Commands, lastRunTick, _ uint64) any {
	return LastRunTick(lastRunTick)
}
