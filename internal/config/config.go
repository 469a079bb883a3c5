// Package config provides configuration management for goconan using Viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/thoreinstein/goconan/internal/errors"
	"github.com/thoreinstein/goconan/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// SupportedVersion is the config schema version this build understands.
const SupportedVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	// Version is the config schema version.
	Version int `mapstructure:"version" yaml:"version"`

	// ConanPath overrides PATH lookup for the conan binary.
	ConanPath string `mapstructure:"conan_path" yaml:"conan_path"`

	// DefaultProfile is applied as -pr when an install does not name one.
	DefaultProfile string `mapstructure:"default_profile" yaml:"default_profile"`

	// DefaultRemote is applied as -r when an install does not name one.
	DefaultRemote string `mapstructure:"default_remote" yaml:"default_remote"`

	// DefaultGenerators seed the generator list for flag-driven installs.
	DefaultGenerators []string `mapstructure:"default_generators" yaml:"default_generators"`

	// InstallFolder is the default install folder.
	InstallFolder string `mapstructure:"install_folder" yaml:"install_folder"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// Environment variable support
	viper.SetEnvPrefix("GOCONAN")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("version", 1)
	viper.SetDefault("default_generators", []string{"json"})
	viper.SetDefault("install_folder", paths.DefaultInstallFolder)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns the loaded configuration or default values if no file is found (when path is empty).
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// If user specified a path, this is an error
			if path != "" {
				return nil, fmt.Errorf("config file not found at %s: %w", path, err)
			}
			// Otherwise (implicit load), it's fine to use defaults
		} else {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.Version != SupportedVersion {
		return nil, errors.Wrapf(errors.ErrInvalidConfig,
			"unsupported config version %d (supported: %d)", cfg.Version, SupportedVersion)
	}

	return &cfg, nil
}
