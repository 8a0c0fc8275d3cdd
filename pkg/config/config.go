// Package config loads and validates the aclwire translator
// configuration.
//
// Configuration sources, in order of precedence:
//  1. Environment variables (ACLWIRE_*)
//  2. Configuration file (YAML or TOML)
//  3. Default values
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete aclwire configuration.
type Config struct {
	// Logging controls log output behavior
	Logging LoggingConfig `mapstructure:"logging"`

	// Translator selects the platforms and the unmapped-bit policy
	Translator TranslatorConfig `mapstructure:"translator"`

	// Platforms holds user-defined platform table definitions. Each
	// entry is a raw section decoded by RegisterPlatforms; only the
	// shipped platforms are available without them.
	Platforms []map[string]any `mapstructure:"platforms"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output
	// Valid values: DEBUG, INFO, WARN, ERROR (case-insensitive)
	Level string `mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// TranslatorConfig selects the translation endpoints and policy.
type TranslatorConfig struct {
	// Source is the platform whose native bits are read
	Source string `mapstructure:"source" validate:"required"`

	// Target is the platform whose native bits are produced
	Target string `mapstructure:"target" validate:"required"`

	// OnUnmapped decides what happens when a bit has no counterpart in
	// the target platform's tables:
	//   reject - fail the whole ACL (default)
	//   warn   - log the residue and continue with the mapped subset
	//   strip  - continue with the mapped subset silently
	// Dropping permission bits is security-relevant, so anything other
	// than reject must be chosen explicitly.
	OnUnmapped string `mapstructure:"on_unmapped" validate:"required,oneof=reject warn strip"`
}

// Load reads, defaults and validates the configuration.
//
// If configPath is empty the file is searched in
// $XDG_CONFIG_HOME/aclwire (or ~/.config/aclwire). A missing file is
// fine: defaults plus environment variables apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// setupViper configures environment variable and config file handling.
// Environment variables use the ACLWIRE_ prefix with underscores,
// e.g. ACLWIRE_LOGGING_LEVEL=DEBUG.
func setupViper(v *viper.Viper, configPath string) {
	v.SetEnvPrefix("ACLWIRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(getConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the configuration file if it exists.
func readConfigFile(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file: defaults and environment apply
			return nil
		}
		if _, ok := err.(*os.PathError); ok {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// getConfigDir returns the configuration directory, preferring
// XDG_CONFIG_HOME over ~/.config.
func getConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "aclwire")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "aclwire")
}
