// Package validator provides the validation engine behind the reactive
// binders: a rule-spec compiler plus a checker with synchronous and
// asynchronous entry points for single values and field maps.
//
// # Rules
//
// A rule is written as a pipe-separated spec and compiled once:
//
//	rule := validator.MustCompile("required|trim|min:2|max:10")
//
// Each segment names a check, optionally with a colon-separated argument.
// Checks run left to right; transform checks (trim, lower, upper, title,
// ucFirst, squish, truncate:N) rewrite the value flowing down the pipeline,
// so "trim|min:2" measures the trimmed value. Checking stops at the first
// failing segment. Compiled rules are immutable and safe to share.
//
// Schemas map field names to rules for whole-object validation:
//
//	schema := validator.MustCompileSchema(map[string]string{
//	    "name":  "required|trim|min:2",
//	    "email": "required|email",
//	})
//
// # Checking
//
//	v := validator.New()
//
//	result, err := v.Check("  John Doe ", rule) // "John Doe", nil
//	result, err := v.Validate(form, schema)     // transformed map, ValidationErrors
//	ok := v.Test(value, rule)                   // pass/fail only
//
// Check returns the transformed value together with any error. Validation
// failures are reported as ValidationErrors, an error value carrying one
// entry per failed field; they are normal outcomes, not faults. A rule
// naming an unregistered check yields ErrUnknownCheck instead, which is an
// engine fault.
//
// Asynchronous variants (CheckAsync, ValidateAsync, TestAsync) dispatch the
// same work on a goroutine and return an async.Future for the result.
//
// # Custom checks
//
// Register adds a named check to the process-wide table. A Validator
// snapshots the table when constructed, so registration must happen before
// New for the instance to recognize the check:
//
//	validator.Register("postal_code", func(value any, arg string) (any, *validator.ValidationError) {
//	    ...
//	})
//	v := validator.New()
//
// Default returns a lazily constructed process-wide instance for callers
// that do not manage their own.
package validator
