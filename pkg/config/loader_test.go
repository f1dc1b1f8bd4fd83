package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/remoteauth/pkg/config"
)

type testConfig struct {
	Name    string `env:"TEST_CONFIG_NAME" envDefault:"fallback"`
	Port    int    `env:"TEST_CONFIG_PORT" envDefault:"8080"`
	Enabled bool   `env:"TEST_CONFIG_ENABLED" envDefault:"false"`
}

type requiredConfig struct {
	Secret string `env:"TEST_CONFIG_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "fallback", cfg.Name)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Enabled)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_CONFIG_NAME", "from-env")
	t.Setenv("TEST_CONFIG_PORT", "9090")
	t.Setenv("TEST_CONFIG_ENABLED", "true")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "from-env", cfg.Name)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Enabled)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_CONFIG_NAME", "first")

	var first testConfig
	require.NoError(t, config.Load(&first))

	// Environment changes after the first load are not observed
	t.Setenv("TEST_CONFIG_NAME", "second")

	var second testConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	config.ResetCache()

	err := config.Load[testConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
