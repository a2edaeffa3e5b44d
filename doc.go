// Package formbind wires the validation engine to reactive values so form
// fields and derived data are revalidated automatically whenever they
// change.
//
// Every binder follows the same protocol: it subscribes a revalidation
// callback to a value's change notifications, runs the engine synchronously
// or on a goroutine, and writes the outcome into read-mostly observables
// that downstream consumers subscribe to.
//
// # Binding values
//
//	rule := validator.MustCompile("string|trim|min:2|max:10")
//	name := formbind.BindValue(ctx, "John Doe", rule)
//
//	name.Value.Set("J")
//	name.Err.Get()   // min-length failure
//	name.Valid.Get() // still "John Doe": scalar bindings keep the last good value
//
// BindValues returns the same triple positionally, and BindValueExtended
// attaches Err and Valid onto one handle with the original value.
//
// # Binding objects
//
//	schema := validator.MustCompileSchema(map[string]string{
//	    "name":  "required|min:2",
//	    "email": "required|email",
//	})
//	form := formbind.BindObject(ctx, map[string]any{
//	    "name":  "John Doe",
//	    "email": "SomeMail@example.com",
//	}, schema)
//
//	form.Object.Set("email", "not-an-email")
//	form.Err.Get()   // email failure
//	form.Valid.Get() // engine's result for this attempt, partial on failure
//
// Unlike scalar bindings, the object binding's Valid observable is
// overwritten on every attempt, pass or fail. Call sites depend on both
// behaviors, so the asymmetry is deliberate.
//
// # Checking external sources
//
// Check, CheckOnly, and TestValue run the same protocol against any
// observable.Watchable the caller already owns, without creating a new
// source:
//
//	errObs, validObs := formbind.Check(ctx, email, validator.MustCompile("required|email"))
//	okObs := formbind.TestValue(ctx, age, validator.MustCompile("number|min:18"))
//
// # Options
//
// All binders accept the same options: WithEngine overrides engine
// resolution, WithName tags failures with a field name, WithDebounce
// collapses change bursts into one trailing validation, WithAsync moves
// engine calls off the mutating goroutine, WithoutImmediate suppresses the
// initial validation, WithLogger enables debug logging of outcomes.
//
// Engine resolution order is: WithEngine option, then the engine installed
// in the context via Install, then the process-wide default.
//
// # Asynchronous ordering
//
// Undebounced asynchronous validations are not serialized: overlapping
// in-flight calls write their results in completion order, so a slow older
// check can overwrite a fast newer one. This mirrors the legacy behavior
// callers may rely on. WithStrictOrdering opts into a sequence guard that
// discards stale completions.
package formbind
