package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/ironclad/pkg/hint"
)

// Enforcement mirrors hint.Options as environment variables, so deployments
// can relax or tighten contract checking without a rebuild.
type Enforcement struct {
	AllowSubclasses bool `env:"ENFORCE_ALLOW_SUBCLASSES" envDefault:"true"`
	CheckDefaults   bool `env:"ENFORCE_CHECK_DEFAULTS" envDefault:"true"`
	StrictBools     bool `env:"ENFORCE_STRICT_BOOLS" envDefault:"true"`
}

// Options converts the parsed environment into matcher options.
func (e Enforcement) Options() hint.Options {
	return hint.Options{
		AllowSubclasses: e.AllowSubclasses,
		CheckDefaults:   e.CheckDefaults,
		StrictBools:     e.StrictBools,
	}
}

var defaultEnvLoaded sync.Once

// Load reads enforcement options from the environment, after a one-shot
// attempt to load a .env file. A missing .env file is not an error.
func Load() (hint.Options, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Enforcement
	if err := env.Parse(&cfg); err != nil {
		return hint.Options{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg.Options(), nil
}

// MustLoad works like Load but panics on failure, for applications whose
// enforcement policy is required at startup.
func MustLoad() hint.Options {
	opts, err := Load()
	if err != nil {
		panic(err)
	}
	return opts
}
