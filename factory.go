package ecs

// factory groups the package's constructors behind a zero-value global.
// Generic constructors stay free functions since Go methods can't carry
// their own type parameters.
type factory struct{}

// Factory is the global factory instance for constructing Apps and
// SystemSets.
var Factory factory

// NewApp constructs an empty App.
func (factory) NewApp() *App { return NewApp() }

// NewSystemSet constructs an empty SystemSet bound to app.
func (factory) NewSystemSet(app *App) *SystemSet { return NewSystemSet(app) }
