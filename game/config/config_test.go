package config

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/party-board-game/game/engine"
	"github.com/wricardo/party-board-game/game/session"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	expected := &Config{
		LogLevel:     "info",
		Seed:         0,
		PathStrategy: "reachability",
		Movement:     "path",
		Theme:        "emoji",
		Headless:     false,
	}
	assert.Equal(t, expected, cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "party.yml", `log-level: debug
seed: 42
path-strategy: boundary
movement: walk
theme: ascii
headless: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.True(t, cfg.Headless)

	strategy, err := cfg.Strategy()
	require.NoError(t, err)
	assert.IsType(t, engine.BoundaryWalkStrategy{}, strategy)

	movement, err := cfg.MovementMode()
	require.NoError(t, err)
	assert.Equal(t, session.MovementWalk, movement)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "party.yml", "seed: 3\n")
	t.Setenv("PARTY_SEED", "7")
	t.Setenv("PARTY_THEME", "ascii")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "ascii", cfg.Theme)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{LogLevel: "info", PathStrategy: "reachability", Movement: "path", Theme: "emoji"}
	}
	themeFile := writeFile(t, "theme.ini", "base = ascii\n")

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"bad strategy", func(c *Config) { c.PathStrategy = "spiral" }, false},
		{"bad movement", func(c *Config) { c.Movement = "fly" }, false},
		{"theme file", func(c *Config) { c.Theme = themeFile }, true},
		{"missing theme file", func(c *Config) { c.Theme = "/no/such/theme.ini" }, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := valid()
			test.mutate(&cfg)
			err := cfg.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadEnvFiles(t *testing.T) {
	path := writeFile(t, "test.env", "PARTY_MOVEMENT=walk\n")
	t.Setenv("PARTY_MOVEMENT", "")
	os.Unsetenv("PARTY_MOVEMENT")

	require.NoError(t, LoadEnvFiles(path, filepath.Join(t.TempDir(), "absent.env")))
	assert.Equal(t, "walk", os.Getenv("PARTY_MOVEMENT"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "walk", cfg.Movement)
}

func TestLoad_DoesNotValidate(t *testing.T) {
	t.Setenv("PARTY_MOVEMENT", "teleport")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "teleport", cfg.Movement)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}
