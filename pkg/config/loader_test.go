package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formbind/pkg/config"
)

type loaderTestConfig struct {
	Interval time.Duration `env:"CONFIG_TEST_INTERVAL" envDefault:"1s"`
	Name     string        `env:"CONFIG_TEST_NAME" envDefault:"formbind"`
}

type loaderEnvConfig struct {
	Value string `env:"CONFIG_TEST_VALUE" envDefault:"fallback"`
}

type loaderBadConfig struct {
	Count int `env:"CONFIG_TEST_BAD_COUNT"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env is unset", func(t *testing.T) {
		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, time.Second, cfg.Interval)
		assert.Equal(t, "formbind", cfg.Name)
	})

	t.Run("caches the first parse per type", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_VALUE", "from-env")
		var first loaderEnvConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "from-env", first.Value)

		// Env changes after the first parse are not observed.
		t.Setenv("CONFIG_TEST_VALUE", "changed")
		var second loaderEnvConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "from-env", second.Value)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[loaderTestConfig](nil), config.ErrNilPointer)
	})

	t.Run("wraps parse failures", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_BAD_COUNT", "not-a-number")
		var cfg loaderBadConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on parse failure", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_BAD_COUNT", "still-not-a-number")
		var cfg loaderBadConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
