package formbind

import (
	"context"

	"github.com/dmitrymomot/formbind/pkg/validator"
)

// contextKey is unexported so only this package can install or look up the
// engine; collisions with other context values are impossible.
type contextKey struct{ name string }

var engineKey = &contextKey{"formbind.engine"}

// Setup configures Install.
type Setup struct {
	// Init runs before the engine is constructed. Register custom checks
	// here: engines snapshot the check table at construction, so anything
	// registered later is invisible to the installed instance.
	Init func()

	// Engine supplies the instance to install. Nil means construct a fresh
	// validator.New() after Init has run.
	Engine func() Engine
}

// Install places a validation engine into the context for every binder to
// resolve. It is intended to run once at application startup and never
// fails:
//
//	ctx := formbind.Install(ctx, formbind.Setup{
//	    Init: func() {
//	        validator.Register("postal_code", checkPostalCode)
//	    },
//	})
func Install(ctx context.Context, setup Setup) context.Context {
	if setup.Init != nil {
		setup.Init()
	}

	var e Engine
	if setup.Engine != nil {
		e = setup.Engine()
	}
	if e == nil {
		e = validator.New()
	}

	return context.WithValue(ctx, engineKey, e)
}

// EngineFrom returns the engine installed in ctx, if any.
func EngineFrom(ctx context.Context) (Engine, bool) {
	e, ok := ctx.Value(engineKey).(Engine)
	return e, ok && e != nil
}
