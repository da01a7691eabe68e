// Package config loads and validates the engine's runtime configuration:
// server port, logging, and the fixed holiday set. Configuration is read
// once at process start and treated as immutable afterwards.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"claims-engine/internal/holiday"
)

// envPrefix is the environment variable prefix for all settings, so that
// nested keys like "server.port" resolve to "CLAIMS_SERVER_PORT".
const envPrefix = "CLAIMS"

type Config struct {
	Server   ServerConfig `mapstructure:"server"`
	Log      LogConfig    `mapstructure:"log"`
	Holidays []string     `mapstructure:"holidays"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type LogConfig struct {
	// Level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format: "json" or "console".
	Format string `mapstructure:"format"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Defaults are registered on viper itself: AutomaticEnv only resolves
	// keys viper already knows about.
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("holidays", holiday.DefaultEntries())
	return v
}

// Load reads the YAML file at path (optional: an empty path builds the
// config from CLAIMS_* environment variables and defaults alone), applies
// defaults for unset fields, and validates the result.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the process could not run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q not one of debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q not one of json|console", c.Log.Format)
	}
	for _, e := range c.Holidays {
		if _, err := time.Parse("01-02", e); err != nil {
			return fmt.Errorf("holidays entry %q is not zero-padded MM-DD", e)
		}
	}
	return nil
}
