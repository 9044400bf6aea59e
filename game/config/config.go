package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/wricardo/party-board-game/game/engine"
	"github.com/wricardo/party-board-game/game/render"
	"github.com/wricardo/party-board-game/game/session"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the runtime settings of a run. Game rules are not configurable.
type Config struct {
	LogLevel     string `yaml:"log-level" env:"PARTY_LOG_LEVEL" env-default:"info"`
	Seed         uint64 `yaml:"seed" env:"PARTY_SEED" env-default:"0"`
	PathStrategy string `yaml:"path-strategy" env:"PARTY_PATH_STRATEGY" env-default:"reachability"`
	Movement     string `yaml:"movement" env:"PARTY_MOVEMENT" env-default:"path"`
	Theme        string `yaml:"theme" env:"PARTY_THEME" env-default:"emoji"`
	Headless     bool   `yaml:"headless" env:"PARTY_HEADLESS" env-default:"false"`
}

// LoadEnvFiles loads .env style files into the environment. Missing files are ignored.
func LoadEnvFiles(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("failed to load env file %s: %w", name, err)
		}
		log.WithField("file", name).Debug("loaded environment file")
	}
	return nil
}

// Load reads the configuration from a YAML file and the environment.
// With an empty path only the environment and defaults are used.
// The result is not validated so callers can apply overrides first.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	return &cfg, nil
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log-level: %v", ErrInvalidConfig, err)
	}
	if _, err := engine.StrategyByName(c.PathStrategy); err != nil {
		return fmt.Errorf("%w: path-strategy: %v", ErrInvalidConfig, err)
	}
	if _, err := session.ParseMovement(c.Movement); err != nil {
		return fmt.Errorf("%w: movement: %v", ErrInvalidConfig, err)
	}
	if _, err := render.ThemeByName(c.Theme); err != nil {
		// Not a built-in, so it must name a theme file
		if _, statErr := os.Stat(c.Theme); statErr != nil {
			return fmt.Errorf("%w: theme %q is neither built-in nor a readable file", ErrInvalidConfig, c.Theme)
		}
	}
	return nil
}

// Level returns the parsed log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Strategy returns the configured path strategy
func (c *Config) Strategy() (engine.PathStrategy, error) {
	return engine.StrategyByName(c.PathStrategy)
}

// MovementMode returns the configured movement variant
func (c *Config) MovementMode() (session.Movement, error) {
	return session.ParseMovement(c.Movement)
}
