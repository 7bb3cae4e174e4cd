package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdengine/sdecs/config"
	"github.com/sdengine/sdecs/log"
)

// go test -run ^TestLoadDefaults$ ./config -count 1
func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

// go test -run ^TestLoadFromEnv$ ./config -count 1
func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SD_LOG_LEVEL", "debug")
	t.Setenv("SD_LOG_FILE", "/tmp/engine.log")
	t.Setenv("SD_FRAMES", "30")
	t.Setenv("SD_FIXED_DELTA", "0.5")
	t.Setenv("SD_SPAWN_COUNT", "8")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/engine.log", cfg.LogFile)
	assert.Equal(t, 30, cfg.Frames)
	assert.Equal(t, 0.5, cfg.FixedDelta)
	assert.Equal(t, 8, cfg.SpawnCount)
	assert.Equal(t, config.Default().InitialEntities, cfg.InitialEntities)
	assert.Equal(t, log.Config{Level: "debug", File: "/tmp/engine.log", Console: true}, cfg.Log(true))
}

// go test -run ^TestValidate$ ./config -count 1
func TestValidate(t *testing.T) {
	bad := []func(*config.Engine){
		func(c *config.Engine) { c.LogLevel = "verbose" },
		func(c *config.Engine) { c.InitialEntities = -1 },
		func(c *config.Engine) { c.Frames = -1 },
		func(c *config.Engine) { c.FixedDelta = 0 },
		func(c *config.Engine) { c.SpawnCount = -3 },
	}
	for i, mutate := range bad {
		cfg := config.Default()
		mutate(&cfg)
		assert.Error(t, cfg.Validate(), "case %d", i)
	}

	cfg := config.Default()
	cfg.FixedDelta = -1
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
}
