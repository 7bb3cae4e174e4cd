// Package config loads the engine settings from the environment.
package config

import (
	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"

	"github.com/sdengine/sdecs/log"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = eris.New("invalid engine config")

// Engine holds the runtime settings of the engine. Every field can be set
// through the environment variable named in its tag.
type Engine struct {
	LogLevel        string  `config:"SD_LOG_LEVEL"`
	LogFile         string  `config:"SD_LOG_FILE"`
	InitialEntities int     `config:"SD_INITIAL_ENTITIES"`
	Frames          int     `config:"SD_FRAMES"`
	FixedDelta      float64 `config:"SD_FIXED_DELTA"`
	SpawnCount      int     `config:"SD_SPAWN_COUNT"`
}

// Default returns the settings used when the environment sets nothing.
func Default() Engine {
	return Engine{
		LogLevel:        "info",
		InitialEntities: 1024,
		Frames:          600,
		FixedDelta:      1.0 / 60.0,
		SpawnCount:      64,
	}
}

// Load reads the environment over Default and validates the result.
func Load() (Engine, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "read engine config from environment")
	}
	return cfg, cfg.Validate()
}

// Validate checks that every field is in range.
func (e Engine) Validate() error {
	if _, err := log.ParseLevel(e.LogLevel); err != nil {
		return eris.Wrapf(ErrInvalid, "log level: %v", err)
	}
	if e.InitialEntities < 0 {
		return eris.Wrapf(ErrInvalid, "initial entities %d is negative", e.InitialEntities)
	}
	if e.Frames < 0 {
		return eris.Wrapf(ErrInvalid, "frames %d is negative", e.Frames)
	}
	if e.FixedDelta <= 0 {
		return eris.Wrapf(ErrInvalid, "fixed delta %g must be positive", e.FixedDelta)
	}
	if e.SpawnCount < 0 {
		return eris.Wrapf(ErrInvalid, "spawn count %d is negative", e.SpawnCount)
	}
	return nil
}

// Log returns the logger settings of e.
func (e Engine) Log(console bool) log.Config {
	return log.Config{
		Level:   e.LogLevel,
		File:    e.LogFile,
		Console: console,
	}
}
