package formbind_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formbind "github.com/dmitrymomot/formbind"
	"github.com/dmitrymomot/formbind/pkg/validator"
)

func TestInstall(t *testing.T) {
	t.Run("Init runs before the engine is constructed", func(t *testing.T) {
		validator.Register("country_code", func(value any, _ string) (any, error) {
			s, ok := value.(string)
			if !ok || len(s) != 2 {
				return value, &validator.ValidationError{
					Message:        "must be a two-letter country code",
					TranslationKey: "validation.country_code",
				}
			}
			return s, nil
		})

		ctx := formbind.Install(context.Background(), formbind.Setup{})

		engine, ok := formbind.EngineFrom(ctx)
		require.True(t, ok)

		rule := validator.MustCompile("required|country_code")
		_, err := engine.Check("DE", rule)
		assert.NoError(t, err)

		_, err = engine.Check("Germany", rule)
		verrs := validator.ExtractValidationErrors(err)
		require.NotEmpty(t, verrs)
		assert.Equal(t, "validation.country_code", verrs[0].TranslationKey)
	})

	t.Run("custom checks registered in Init are visible to the installed engine", func(t *testing.T) {
		ctx := formbind.Install(context.Background(), formbind.Setup{
			Init: func() {
				validator.Register("shouting", func(value any, _ string) (any, error) {
					s, ok := value.(string)
					if !ok {
						return value, &validator.ValidationError{Message: "must be a string"}
					}
					if s != "" && s == strings.ToUpper(s) {
						return s, nil
					}
					return value, &validator.ValidationError{
						Message:        "must be all caps",
						TranslationKey: "validation.shouting",
					}
				})
			},
		})

		engine, ok := formbind.EngineFrom(ctx)
		require.True(t, ok)

		rule := validator.MustCompile("shouting")
		_, err := engine.Check("HELLO", rule)
		assert.NoError(t, err)

		_, err = engine.Check("hello", rule)
		assert.Error(t, err)
	})

	t.Run("Engine factory result is the installed instance", func(t *testing.T) {
		custom := &stubEngine{}
		ctx := formbind.Install(context.Background(), formbind.Setup{
			Engine: func() formbind.Engine { return custom },
		})

		engine, ok := formbind.EngineFrom(ctx)
		require.True(t, ok)
		assert.Same(t, custom, engine)
	})

	t.Run("nil Engine factory result falls back to a fresh validator", func(t *testing.T) {
		ctx := formbind.Install(context.Background(), formbind.Setup{
			Engine: func() formbind.Engine { return nil },
		})

		engine, ok := formbind.EngineFrom(ctx)
		require.True(t, ok)
		assert.IsType(t, &validator.Validator{}, engine)
	})
}

func TestEngineFrom(t *testing.T) {
	t.Run("bare context has no engine", func(t *testing.T) {
		engine, ok := formbind.EngineFrom(context.Background())
		assert.False(t, ok)
		assert.Nil(t, engine)
	})
}
