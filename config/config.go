// Package config loads cart settings from the environment and optional dotenv files.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	rustacart "github.com/Wildhoney/Rustacart"
	"github.com/Wildhoney/Rustacart/core"
	"github.com/Wildhoney/Rustacart/logx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable, e.g. RUSTACART_LOG_LEVEL.
const Prefix = "RUSTACART"

type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL"`

	Policy rustacart.Policy `envconfig:"POLICY"`
}

// Load reads envFiles (missing ones are skipped, set variables are never overridden)
// and then processes the environment.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) Env() core.Environment {
	return core.ParseEnvironment(c.Environment)
}

func (c Config) LoggerOpts() logx.LoggerOpts {
	return logx.LoggerOpts{
		Environment: c.Env(),
		Level:       c.LogLevel,
	}
}

func (c Config) CartOptions() []rustacart.Option {
	return []rustacart.Option{rustacart.WithPolicy(c.Policy)}
}
