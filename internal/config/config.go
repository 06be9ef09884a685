// Package config loads runtime settings from an optional YAML file and
// IDLEHUNT_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"idlehunt/internal/game"
	"idlehunt/internal/store"
)

// Config holds the settings shared by the local client and the SSH server.
type Config struct {
	DataDir         string  `yaml:"data_dir"`
	TickMs          int     `yaml:"tick_ms"` // driver interval, wall clock
	Speed           float64 `yaml:"speed"`
	AutosaveSeconds int     `yaml:"autosave_seconds"`
	OfflineCapHours float64 `yaml:"offline_cap_hours"`
	Seed            int64   `yaml:"seed"` // 0: time based

	Server ServerConfig `yaml:"server"`
}

// ServerConfig configures the SSH lodge.
type ServerConfig struct {
	Port    int    `yaml:"port"`
	HostKey string `yaml:"host_key"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickMs:          250,
		Speed:           1,
		AutosaveSeconds: 30,
		OfflineCapHours: 24,
		Server: ServerConfig{
			Port:    2222,
			HostKey: "server_host_key",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// fills in the data directory. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if cfg.DataDir == "" {
		dir, err := store.DataDir()
		if err != nil {
			return Config{}, fmt.Errorf("data dir: %w", err)
		}
		cfg.DataDir = dir
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("IDLEHUNT_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if err := envFloat("IDLEHUNT_SPEED", &c.Speed); err != nil {
		return err
	}
	if err := envInt("IDLEHUNT_TICK_MS", &c.TickMs); err != nil {
		return err
	}
	if err := envInt("IDLEHUNT_PORT", &c.Server.Port); err != nil {
		return err
	}
	if v := os.Getenv("IDLEHUNT_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("IDLEHUNT_SEED: %w", err)
		}
		c.Seed = n
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envFloat(key string, dst *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Speed <= 0:
		return fmt.Errorf("speed must be positive, got %v", c.Speed)
	case c.TickMs <= 0:
		return fmt.Errorf("tick_ms must be positive, got %d", c.TickMs)
	case c.AutosaveSeconds <= 0:
		return fmt.Errorf("autosave_seconds must be positive, got %d", c.AutosaveSeconds)
	case c.OfflineCapHours <= 0:
		return fmt.Errorf("offline_cap_hours must be positive, got %v", c.OfflineCapHours)
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	return nil
}

// TickInterval is TickMs as a duration.
func (c Config) TickInterval() time.Duration { return time.Duration(c.TickMs) * time.Millisecond }

// AutosaveInterval is AutosaveSeconds as a duration.
func (c Config) AutosaveInterval() time.Duration {
	return time.Duration(c.AutosaveSeconds) * time.Second
}

// Session returns the play-session options for this configuration. The
// caller sets the character name.
func (c Config) Session() game.Options {
	return game.Options{
		Speed:            c.Speed,
		TickInterval:     c.TickInterval(),
		AutosaveInterval: c.AutosaveInterval(),
		OfflineCapHours:  c.OfflineCapHours,
		Seed:             c.Seed,
	}
}
