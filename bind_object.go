package formbind

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/formbind/pkg/observable"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

// BoundObject is the observable triple produced by BindObject. Object is
// the live watched map the caller edits; Err holds the most recent
// validation failure; Valid holds exactly what the engine returned for the
// most recent attempt; on failure that is the engine's partial result, not
// the last good one. The asymmetry with Bound is deliberate; call sites
// depend on both behaviors.
type BoundObject struct {
	Object *observable.Object
	Err    *observable.Value[error]
	Valid  *observable.Value[map[string]any]
}

// BindObject creates a watched map around initial and revalidates the whole
// object against schema whenever any field changes. Validation runs once at
// bind time unless WithoutImmediate is given.
//
// The change subscription is detached when ctx is cancelled.
func BindObject(ctx context.Context, initial map[string]any, schema validator.Schema, opts ...Option) *BoundObject {
	o := newOptions(opts)
	engine := o.resolveEngine(ctx)

	b := &BoundObject{
		Object: observable.NewObject(initial),
		Err:    observable.New[error](nil),
		Valid:  observable.New[map[string]any](nil),
	}

	apply := func(started time.Time, result map[string]any, err error) {
		b.Err.Set(err)
		b.Valid.Set(result)
		o.logOutcome("bind_object", err, time.Since(started))
	}

	var seq atomic.Uint64
	run := func(object map[string]any) {
		started := time.Now()
		if o.async {
			mine := seq.Add(1)
			engine.ValidateAsync(ctx, object, schema).Then(func(result map[string]any, err error) {
				if o.strict && mine != seq.Load() {
					return
				}
				apply(started, result, err)
			})
			return
		}
		result, err := engine.Validate(object, schema)
		apply(started, result, err)
	}

	var notify func(map[string]any)
	if o.debounce {
		debounced := observable.Debounce(func() { run(b.Object.Snapshot()) }, o.resolveDelay())
		notify = func(map[string]any) { debounced() }
	} else {
		notify = run
	}

	cancel := b.Object.Subscribe(notify)
	if done := ctx.Done(); done != nil {
		go func() {
			<-done
			cancel()
		}()
	}

	if o.immediate {
		run(b.Object.Snapshot())
	}

	return b
}

// BindObjects is BindObject with a positional result:
//
//	object, errObs, valid := formbind.BindObjects(ctx, form, schema)
func BindObjects(ctx context.Context, initial map[string]any, schema validator.Schema, opts ...Option) (*observable.Object, *observable.Value[error], *observable.Value[map[string]any]) {
	b := BindObject(ctx, initial, schema, opts...)
	return b.Object, b.Err, b.Valid
}
