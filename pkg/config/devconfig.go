package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	// LocalConfigFile is the project-local developer config filename.
	LocalConfigFile = "rfe.local.toml"

	// globalConfigDir is the directory under $HOME holding global config.
	globalConfigDir = ".rfe"

	globalConfigFile = "config.toml"
)

// DevConfig holds developer configuration resolved with Viper
// precedence: CLI flag > rfe.local.toml (project-local) >
// ~/.rfe/config.toml (global).
type DevConfig struct {
	// Source is the default template source used by `rfe init` when
	// --source is not given. Empty means scaffold from the built-in
	// templates only.
	Source string `toml:"source" mapstructure:"source"`
}

// LoadDevConfig resolves developer configuration. flagSource, if
// non-empty, takes highest precedence (set via --source).
func LoadDevConfig(flagSource string) (*DevConfig, error) {
	globalPath, err := GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return loadDevConfig(flagSource, globalPath, LocalConfigFile)
}

// loadDevConfig is the internal implementation that accepts explicit
// paths, making it testable without touching the real home directory.
func loadDevConfig(flagSource, globalPath, localPath string) (*DevConfig, error) {
	v := viper.New()
	v.SetConfigType("toml")

	// Lowest priority: global config; ignore if missing.
	v.SetConfigFile(globalPath)
	_ = v.ReadInConfig()

	// Higher priority: project-local config.
	if _, err := os.Stat(localPath); err == nil {
		v.SetConfigFile(localPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", localPath, err)
		}
	}

	// Highest priority: CLI flag.
	if flagSource != "" {
		v.Set("source", flagSource)
	}

	cfg := &DevConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling dev config: %w", err)
	}

	return cfg, nil
}

// SaveGlobal writes cfg to ~/.rfe/config.toml, creating the directory
// if necessary.
func SaveGlobal(cfg *DevConfig) error {
	path, err := GlobalConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling dev config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// GlobalConfigPath returns the path of the global config file,
// ~/.rfe/config.toml.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determining home directory: %w", err)
	}
	return filepath.Join(home, globalConfigDir, globalConfigFile), nil
}
