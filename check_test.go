package formbind_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formbind "github.com/dmitrymomot/formbind"
	"github.com/dmitrymomot/formbind/pkg/observable"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("validates an externally owned observable", func(t *testing.T) {
		email := observable.New("SomeMail@example.com")
		rule := validator.MustCompile("required|email")

		errObs, validObs := formbind.Check(ctx, email, rule, formbind.WithEngine(validator.New()))

		assert.NoError(t, errObs.Get())
		assert.Equal(t, "SomeMail@example.com", validObs.Get())

		email.Set("not-an-email")
		assert.Error(t, errObs.Get())
	})

	t.Run("validated output is overwritten even on failure", func(t *testing.T) {
		name := observable.New("  John ")
		rule := validator.MustCompile("trim|min:2")

		_, validObs := formbind.Check(ctx, name, rule, formbind.WithEngine(validator.New()))
		assert.Equal(t, "John", validObs.Get())

		name.Set("  J ")
		// No keep-last-good guard here: the trimmed failing value lands.
		assert.Equal(t, "J", validObs.Get())
	})

	t.Run("works over a computed accessor source", func(t *testing.T) {
		first := observable.New("John")
		last := observable.New("Doe")
		full, stop := observable.Computed(func() string {
			return first.Get() + " " + last.Get()
		}, first, last)
		defer stop()

		rule := validator.MustCompile("min:5")
		errObs, _ := formbind.Check(ctx, full, rule, formbind.WithEngine(validator.New()))
		assert.NoError(t, errObs.Get())

		last.Set("")
		assert.Error(t, errObs.Get())
	})

	t.Run("debounces rechecks of the source", func(t *testing.T) {
		engine := &stubEngine{}
		src := observable.New("v0")

		formbind.Check(ctx, src, nil,
			formbind.WithEngine(engine),
			formbind.WithoutImmediate(),
			formbind.WithDebounce(40*time.Millisecond),
		)

		for _, v := range []string{"v1", "v2", "v3"} {
			src.Set(v)
			time.Sleep(2 * time.Millisecond)
		}

		require.Eventually(t, func() bool {
			return len(engine.checkedValues()) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, []any{"v3"}, engine.checkedValues())
	})
}

func TestCheckOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("exposes only the error observable", func(t *testing.T) {
		age := observable.New(17)
		rule := validator.MustCompile("number|min:18")

		errObs := formbind.CheckOnly(ctx, age, rule, formbind.WithEngine(validator.New()))
		assert.Error(t, errObs.Get())

		age.Set(21)
		assert.NoError(t, errObs.Get())
	})

	t.Run("sync and async branches use the same resolved engine", func(t *testing.T) {
		engine := &stubEngine{}
		src := observable.New("x")

		formbind.CheckOnly(ctx, src, nil,
			formbind.WithEngine(engine),
			formbind.WithAsync(),
		)

		require.Eventually(t, func() bool {
			return len(engine.checkedValues()) == 1
		}, time.Second, 5*time.Millisecond)

		src.Set("y")
		require.Eventually(t, func() bool {
			return len(engine.checkedValues()) == 2
		}, time.Second, 5*time.Millisecond)
	})
}

func TestTestValue(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to true before the first validation", func(t *testing.T) {
		src := observable.New("")
		rule := validator.MustCompile("required")

		okObs := formbind.TestValue(ctx, src, rule,
			formbind.WithEngine(validator.New()),
			formbind.WithoutImmediate(),
		)
		assert.True(t, okObs.Get())

		src.Set(" ")
		assert.False(t, okObs.Get())
	})

	t.Run("flips with each completed validation", func(t *testing.T) {
		src := observable.New("John")
		rule := validator.MustCompile("min:2")

		okObs := formbind.TestValue(ctx, src, rule, formbind.WithEngine(validator.New()))
		assert.True(t, okObs.Get())

		src.Set("J")
		assert.False(t, okObs.Get())

		src.Set("Jane")
		assert.True(t, okObs.Get())
	})

	t.Run("async variant resolves eventually", func(t *testing.T) {
		src := observable.New("J")
		rule := validator.MustCompile("min:2")

		okObs := formbind.TestValue(ctx, src, rule,
			formbind.WithEngine(validator.New()),
			formbind.WithAsync(),
		)

		require.Eventually(t, func() bool {
			return !okObs.Get()
		}, time.Second, 5*time.Millisecond)
	})
}
