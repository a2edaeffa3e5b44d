package formbind_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formbind "github.com/dmitrymomot/formbind"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

func signupSchema(t *testing.T) validator.Schema {
	t.Helper()
	return validator.MustCompileSchema(map[string]string{
		"name":  "required|min:2",
		"email": "required|email",
	})
}

func TestBindObject(t *testing.T) {
	ctx := context.Background()

	t.Run("immediate validation passes a valid object", func(t *testing.T) {
		b := formbind.BindObject(ctx, map[string]any{
			"name":  "John Doe",
			"email": "SomeMail@example.com",
		}, signupSchema(t), formbind.WithEngine(validator.New()))

		assert.NoError(t, b.Err.Get())
		assert.Equal(t, "John Doe", b.Valid.Get()["name"])
		assert.Equal(t, "SomeMail@example.com", b.Valid.Get()["email"])
	})

	t.Run("any field change revalidates the whole object", func(t *testing.T) {
		b := formbind.BindObject(ctx, map[string]any{
			"name":  "John Doe",
			"email": "SomeMail@example.com",
		}, signupSchema(t), formbind.WithEngine(validator.New()))

		b.Object.Set("email", "not-an-email")

		verrs := validator.ExtractValidationErrors(b.Err.Get())
		require.NotEmpty(t, verrs)
		assert.True(t, verrs.Has("email"))
		assert.False(t, verrs.Has("name"))
	})

	t.Run("Valid is overwritten on failure with the partial result", func(t *testing.T) {
		b := formbind.BindObject(ctx, map[string]any{
			"name":  "John Doe",
			"email": "SomeMail@example.com",
		}, signupSchema(t), formbind.WithEngine(validator.New()))

		goodValid := b.Valid.Get()
		require.NoError(t, b.Err.Get())

		b.Object.Set("email", "not-an-email")

		require.Error(t, b.Err.Get())
		failedValid := b.Valid.Get()
		assert.NotEqual(t, goodValid, failedValid)
		assert.Equal(t, "not-an-email", failedValid["email"])
		assert.Equal(t, "John Doe", failedValid["name"])
	})

	t.Run("WithoutImmediate defers validation to the first change", func(t *testing.T) {
		engine := &stubEngine{}
		b := formbind.BindObject(ctx, map[string]any{"a": 1}, nil,
			formbind.WithEngine(engine),
			formbind.WithoutImmediate(),
		)

		engine.mu.Lock()
		objects := len(engine.objects)
		engine.mu.Unlock()
		assert.Zero(t, objects)

		b.Object.Set("a", 2)

		engine.mu.Lock()
		defer engine.mu.Unlock()
		require.Len(t, engine.objects, 1)
		assert.Equal(t, 2, engine.objects[0]["a"])
	})

	t.Run("debounced changes validate the final shape once", func(t *testing.T) {
		engine := &stubEngine{}
		b := formbind.BindObject(ctx, map[string]any{"n": 0}, nil,
			formbind.WithEngine(engine),
			formbind.WithoutImmediate(),
			formbind.WithDebounce(40*time.Millisecond),
		)

		for i := 1; i <= 5; i++ {
			b.Object.Set("n", i)
			time.Sleep(2 * time.Millisecond)
		}

		require.Eventually(t, func() bool {
			engine.mu.Lock()
			defer engine.mu.Unlock()
			return len(engine.objects) == 1
		}, time.Second, 5*time.Millisecond)

		engine.mu.Lock()
		defer engine.mu.Unlock()
		assert.Equal(t, 5, engine.objects[0]["n"])
	})

	t.Run("async validation resolves off the writing goroutine", func(t *testing.T) {
		b := formbind.BindObject(ctx, map[string]any{
			"name":  "John Doe",
			"email": "SomeMail@example.com",
		}, signupSchema(t),
			formbind.WithEngine(validator.New()),
			formbind.WithAsync(),
		)

		require.Eventually(t, func() bool {
			return b.Valid.Get() != nil
		}, time.Second, 5*time.Millisecond)
		assert.NoError(t, b.Err.Get())
	})
}

func TestBindObjects(t *testing.T) {
	t.Run("returns the triple positionally", func(t *testing.T) {
		object, errObs, valid := formbind.BindObjects(context.Background(), map[string]any{
			"name":  "John Doe",
			"email": "SomeMail@example.com",
		}, signupSchema(t), formbind.WithEngine(validator.New()))

		assert.Equal(t, "John Doe", object.Get("name"))
		assert.NoError(t, errObs.Get())
		assert.Equal(t, "John Doe", valid.Get()["name"])
	})
}
