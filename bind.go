package formbind

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/formbind/pkg/observable"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

// Bound is the observable triple produced by BindValue. Value is the live
// observable the caller edits; Err holds the most recent validation failure
// (nil while the last validation passed); Valid holds the most recent
// successfully validated, transformed value and keeps its previous content
// while an attempt is in flight or has failed.
type Bound[T any] struct {
	Value *observable.Value[T]
	Err   *observable.Value[error]
	Valid *observable.Value[T]
}

// BindValue creates an observable around initial and revalidates it against
// rule on every change. Validation runs once at bind time unless
// WithoutImmediate is given. Valid starts at the zero value of T and is only
// written on success; a transformed result that is not a T (possible when a
// custom check changes the value's type) leaves Valid untouched.
//
// The change subscription is detached when ctx is cancelled.
func BindValue[T any](ctx context.Context, initial T, rule *validator.Rule, opts ...Option) *Bound[T] {
	o := newOptions(opts)
	engine := o.resolveEngine(ctx)
	rule = o.named(rule)

	var zero T
	b := &Bound[T]{
		Value: observable.New(initial),
		Err:   observable.New[error](nil),
		Valid: observable.New(zero),
	}

	apply := func(started time.Time, result any, err error) {
		b.Err.Set(err)
		if err == nil {
			if tv, ok := result.(T); ok {
				b.Valid.Set(tv)
			}
		}
		o.logOutcome("bind_value", err, time.Since(started))
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

	subscribeRun(ctx, b.Value, o, run)
	return b
}

// BindValues is BindValue with a positional result, for call sites that
// prefer destructuring:
//
//	value, errObs, valid := formbind.BindValues(ctx, "", rule)
func BindValues[T any](ctx context.Context, initial T, rule *validator.Rule, opts ...Option) (*observable.Value[T], *observable.Value[error], *observable.Value[T]) {
	b := BindValue(ctx, initial, rule, opts...)
	return b.Value, b.Err, b.Valid
}

// Extended is a bound value with the error and validated observables
// attached to the same handle as the original, so x.Get(), x.Err, and
// x.Valid live on one value.
//
// Tradeoff: subscribing to the embedded value does not cover Err or Valid,
// which are separate observables. Consumers that need all three to drive one
// reactive computation should derive it with observable.Computed over the
// handle's parts.
type Extended[T any] struct {
	*observable.Value[T]
	Err   *observable.Value[error]
	Valid *observable.Value[T]
}

// BindValueExtended behaves exactly like BindValue but merges the triple
// onto a single handle instead of returning siblings.
func BindValueExtended[T any](ctx context.Context, initial T, rule *validator.Rule, opts ...Option) *Extended[T] {
	b := BindValue(ctx, initial, rule, opts...)
	return &Extended[T]{Value: b.Value, Err: b.Err, Valid: b.Valid}
}

// subscribeRun wires run to the source's change feed, debounced when
// requested, and fires the immediate validation. A debounced run reads the
// source at fire time, so the burst's last value is the one validated.
func subscribeRun[T any](ctx context.Context, src observable.Watchable[T], o *options, run func(T)) {
	var notify func(T)
	if o.debounce {
		debounced := observable.Debounce(func() { run(src.Get()) }, o.resolveDelay())
		notify = func(T) { debounced() }
	} else {
		notify = run
	}

	cancel := src.Subscribe(notify)
	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			cancel()
		}()
	}

	if o.immediate {
		run(src.Get())
	}
}
