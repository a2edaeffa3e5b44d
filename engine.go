package formbind

import (
	"context"

	"github.com/dmitrymomot/formbind/pkg/async"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

// Engine is the validation capability binders run against. It matches
// *validator.Validator; supply a custom implementation to stub validation
// in tests or to front a remote validation service.
type Engine interface {
	// Check runs a single value through a rule, returning the transformed
	// value. Validation failures come back as validator.ValidationErrors.
	Check(value any, rule *validator.Rule) (any, error)

	// CheckAsync runs Check on its own goroutine.
	CheckAsync(ctx context.Context, value any, rule *validator.Rule) *async.Future[any]

	// Validate checks a field map against a schema, returning the
	// transformed map, partial on failure.
	Validate(object map[string]any, schema validator.Schema) (map[string]any, error)

	// ValidateAsync runs Validate on its own goroutine.
	ValidateAsync(ctx context.Context, object map[string]any, schema validator.Schema) *async.Future[map[string]any]

	// Test reports pass/fail without failure detail.
	Test(value any, rule *validator.Rule) bool

	// TestAsync runs Test on its own goroutine.
	TestAsync(ctx context.Context, value any, rule *validator.Rule) *async.Future[bool]
}

// compile-time conformance check
var _ Engine = (*validator.Validator)(nil)
