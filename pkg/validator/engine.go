package validator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/formbind/pkg/async"
)

// Validator checks values and field maps against compiled rules. It carries
// no mutable state beyond the check table snapshotted at construction, so a
// single instance is safe for concurrent use.
type Validator struct {
	checks map[string]CheckFunc
}

// New constructs a Validator with the built-in checks plus everything
// registered with Register up to this point.
func New() *Validator {
	return &Validator{checks: snapshotChecks()}
}

var (
	defaultOnce sync.Once
	defaultV    *Validator
)

// Default returns the lazily constructed process-wide instance. Checks
// registered after the first call are not visible to it; construct your own
// instance when registration order matters.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultV = New()
	})
	return defaultV
}

// Check runs value through the rule's pipeline and returns the transformed
// value. A validation failure comes back as ValidationErrors; an unknown
// check name or unparsable argument comes back as an engine fault. The
// returned value reflects the transforms applied up to the point of
// failure.
func (v *Validator) Check(value any, rule *Rule) (any, error) {
	if rule == nil {
		return value, nil
	}

	field := rule.field
	if field == "" {
		field = "value"
	}

	result := value
	for _, st := range rule.steps {
		fn, ok := v.checks[st.name]
		if !ok {
			return result, fmt.Errorf("%w: %q", ErrUnknownCheck, st.name)
		}

		res, err := fn(result, st.arg)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				failure := *verr
				failure.Field = field
				if failure.TranslationValues == nil {
					failure.TranslationValues = map[string]any{}
				}
				failure.TranslationValues["field"] = field
				return result, ValidationErrors{failure}
			}
			return result, fmt.Errorf("check %q: %w", st.name, err)
		}
		result = res
	}

	return result, nil
}

// CheckAsync runs Check on its own goroutine and returns a future for the
// result.
func (v *Validator) CheckAsync(ctx context.Context, value any, rule *Rule) *async.Future[any] {
	return async.Async(ctx, value, func(_ context.Context, val any) (any, error) {
		return v.Check(val, rule)
	})
}

// Validate checks every schema field against the corresponding value in
// object and returns the transformed map. Fields outside the schema are
// copied through untouched. On failure the returned map is partial: fields
// that passed carry their transformed values, failed fields carry whatever
// transforms ran before the failing check. Failures across fields are
// aggregated into one ValidationErrors value; an engine fault aborts
// immediately.
func (v *Validator) Validate(object map[string]any, schema Schema) (map[string]any, error) {
	result := make(map[string]any, len(object))
	for k, val := range object {
		result[k] = val
	}

	var errs ValidationErrors
	for _, field := range sortedFields(schema) {
		rule := schema[field]
		if rule.field == "" {
			rule = rule.Named(field)
		}

		res, err := v.Check(result[field], rule)
		result[field] = res
		if err != nil {
			verrs := ExtractValidationErrors(err)
			if verrs == nil {
				return result, err
			}
			errs = append(errs, verrs...)
		}
	}

	if len(errs) > 0 {
		return result, errs
	}
	return result, nil
}

// ValidateAsync validates the object on background goroutines, fanning out
// one check per schema field, and returns a future for the aggregate
// result. Failure aggregation matches Validate.
func (v *Validator) ValidateAsync(ctx context.Context, object map[string]any, schema Schema) *async.Future[map[string]any] {
	return async.Async(ctx, object, func(ctx context.Context, obj map[string]any) (map[string]any, error) {
		fields := sortedFields(schema)

		futures := make([]*async.Future[fieldResult], 0, len(fields))
		for _, field := range fields {
			rule := schema[field]
			if rule.field == "" {
				rule = rule.Named(field)
			}
			futures = append(futures, async.Async(ctx, obj[field], func(_ context.Context, val any) (fieldResult, error) {
				res, err := v.Check(val, rule)
				return fieldResult{field: rule.field, value: res, err: err}, nil
			}))
		}

		// Per-field errors ride inside fieldResult, so WaitAll itself
		// cannot fail here.
		results, _ := async.WaitAll(futures...)

		out := make(map[string]any, len(obj))
		for k, val := range obj {
			out[k] = val
		}

		var errs ValidationErrors
		for _, fr := range results {
			out[fr.field] = fr.value
			if fr.err != nil {
				verrs := ExtractValidationErrors(fr.err)
				if verrs == nil {
					return out, fr.err
				}
				errs = append(errs, verrs...)
			}
		}

		if len(errs) > 0 {
			return out, errs
		}
		return out, nil
	})
}

// Test reports whether value passes the rule, discarding the transformed
// value and any failure detail. Engine faults also report false.
func (v *Validator) Test(value any, rule *Rule) bool {
	_, err := v.Check(value, rule)
	return err == nil
}

// TestAsync runs Test on its own goroutine.
func (v *Validator) TestAsync(ctx context.Context, value any, rule *Rule) *async.Future[bool] {
	return async.Async(ctx, value, func(_ context.Context, val any) (bool, error) {
		return v.Test(val, rule), nil
	})
}

type fieldResult struct {
	field string
	value any
	err   error
}

// sortedFields returns schema fields in lexical order so validation order
// and error aggregation are deterministic.
func sortedFields(schema Schema) []string {
	fields := make([]string, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	return fields
}
