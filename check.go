package formbind

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/formbind/pkg/observable"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

// Check revalidates an externally owned source against rule on every change
// and returns the error and validated-value observables. Both outputs are
// written unconditionally on every attempt; unlike BindValue there is no
// keep-last-good guard, so the validated observable tracks the engine's
// result even through failures.
//
// The source is any observable.Watchable: an observable the caller already
// holds, or a Computed wrapper over an accessor function.
func Check[T any](ctx context.Context, source observable.Watchable[T], rule *validator.Rule, opts ...Option) (*observable.Value[error], *observable.Value[any]) {
	o := newOptions(opts)
	engine := o.resolveEngine(ctx)
	rule = o.named(rule)

	errObs := observable.New[error](nil)
	validObs := observable.New[any](nil)

	apply := func(started time.Time, result any, err error) {
		errObs.Set(err)
		validObs.Set(result)
		o.logOutcome("check", err, time.Since(started))
	}

	var seq atomic.Uint64
	run := func(v T) {
		started := time.Now()
		if o.async {
			mine := seq.Add(1)
			engine.CheckAsync(ctx, v, rule).Then(func(result any, err error) {
				if o.strict && mine != seq.Load() {
					return
				}
				apply(started, result, err)
			})
			return
		}
		result, err := engine.Check(v, rule)
		apply(started, result, err)
	}

	subscribeRun(ctx, source, o, run)
	return errObs, validObs
}

// CheckOnly is Check without the validated output: it skips computing and
// storing transformed values when only pass/fail plus the failure message
// matter. The engine is resolved once and used by both the synchronous and
// asynchronous branches.
func CheckOnly[T any](ctx context.Context, source observable.Watchable[T], rule *validator.Rule, opts ...Option) *observable.Value[error] {
	o := newOptions(opts)
	engine := o.resolveEngine(ctx)
	rule = o.named(rule)

	errObs := observable.New[error](nil)

	apply := func(started time.Time, err error) {
		errObs.Set(err)
		o.logOutcome("check_only", err, time.Since(started))
	}

	var seq atomic.Uint64
	run := func(v T) {
		started := time.Now()
		if o.async {
			mine := seq.Add(1)
			engine.CheckAsync(ctx, v, rule).Then(func(_ any, err error) {
				if o.strict && mine != seq.Load() {
					return
				}
				apply(started, err)
			})
			return
		}
		_, err := engine.Check(v, rule)
		apply(started, err)
	}

	subscribeRun(ctx, source, o, run)
	return errObs
}

// TestValue revalidates an externally owned source and exposes only a
// boolean outcome. The observable starts true and flips with each completed
// validation; no failure detail is retained.
func TestValue[T any](ctx context.Context, source observable.Watchable[T], rule *validator.Rule, opts ...Option) *observable.Value[bool] {
	o := newOptions(opts)
	engine := o.resolveEngine(ctx)
	rule = o.named(rule)

	okObs := observable.New(true)

	apply := func(started time.Time, ok bool) {
		var outcome error
		if !ok {
			outcome = errTestFailed
		}
		okObs.Set(ok)
		o.logOutcome("test_value", outcome, time.Since(started))
	}

	var seq atomic.Uint64
	run := func(v T) {
		started := time.Now()
		if o.async {
			mine := seq.Add(1)
			engine.TestAsync(ctx, v, rule).Then(func(ok bool, err error) {
				if o.strict && mine != seq.Load() {
					return
				}
				apply(started, ok && err == nil)
			})
			return
		}
		apply(started, engine.Test(v, rule))
	}

	subscribeRun(ctx, source, o, run)
	return okObs
}
