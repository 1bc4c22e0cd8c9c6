package ecs

// Config holds process-wide scheduler tuning: the wave scheduler's worker
// pool size and an optional panic observer.
var Config config = config{}

type config struct {
	workerPoolSize int
	panicHook      func(recovered any)
}

// SetWorkerPoolSize caps how many systems a single wave runs concurrently.
// n <= 0 (the default) means unbounded: one goroutine per system in the
// wave. Waves themselves always run sequentially regardless of this
// setting.
func (c *config) SetWorkerPoolSize(n int) {
	c.workerPoolSize = n
}

// SetPanicHook installs a callback invoked with the recovered value whenever
// a system panics mid-wave, before the panic is re-raised on App.Run's
// caller (scheduler.go's runWave). Useful for logging a panicking system's
// identity without swallowing the panic itself. A nil hook (the default) is
// a no-op.
func (c *config) SetPanicHook(hook func(recovered any)) {
	c.panicHook = hook
}
