package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the process configuration, loaded from environment variables
// with an optional .env file for local development.
type Config struct {
	Env       string `mapstructure:"ENV"`
	DataDir   string `mapstructure:"DATA_DIR"`
	OutputDir string `mapstructure:"OUTPUT_DIR"`
}

// Load reads configuration from the environment, falling back to a .env
// file when present and to built-in defaults otherwise.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("ENV", "production")
	v.SetDefault("DATA_DIR", defaultDataDir())
	v.SetDefault("OUTPUT_DIR", ".")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("ENV")
	v.BindEnv("DATA_DIR")
	v.BindEnv("OUTPUT_DIR")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("DATA_DIR must not be empty")
	}
	return cfg, nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".medicabinet"
	}
	return filepath.Join(home, ".medicabinet")
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// StorePath is the location of the single data document.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, "medicabinet.json")
}

// SessionPath is the location of the current session token.
func (c *Config) SessionPath() string {
	return filepath.Join(c.DataDir, "session")
}

// KeyPath is the location of the session signing key.
func (c *Config) KeyPath() string {
	return filepath.Join(c.DataDir, "session.key")
}
