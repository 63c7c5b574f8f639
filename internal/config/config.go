// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

// EnvPrefix is prepended to config keys when read from the environment,
// e.g. THEMEBUILDER_SERVER_HTTP_PORT.
const EnvPrefix = "THEMEBUILDER"

// DefaultJWTSecret is the placeholder written to new config files. Tokens
// are neither issued nor accepted while it is in effect.
const DefaultJWTSecret = "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR"

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults(filepath.Dir(configPath))

	// Environment overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(dataDir string) {
	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.behind_proxy", false)

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(dataDir, "themes.db"))

	// Auth defaults
	v.SetDefault("auth.jwt_secret", DefaultJWTSecret)
	v.SetDefault("auth.jwt_expiry_hours", 720)

	// Library snapshots
	v.SetDefault("backups.enabled", true)
	v.SetDefault("backups.path", filepath.Join(dataDir, "backups"))
	v.SetDefault("backups.interval", "24h")
	v.SetDefault("backups.keep", 10)

	// Write API protection
	v.SetDefault("ratelimit.capacity", 20)
	v.SetDefault("ratelimit.interval", "1m")
	v.SetDefault("security.blocked_ips", []string{})

	// Logging
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Slider values the builder opens with
	defaults := themes.DefaultSliders()
	v.SetDefault("theme.defaults.warmth", defaults.Warmth)
	v.SetDefault("theme.defaults.saturation", defaults.Saturation)
	v.SetDefault("theme.defaults.contrast", defaults.Contrast)
	v.SetDefault("theme.defaults.accessibility", defaults.Accessibility)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetFloat64 returns a config value as float64
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetStringSlice returns a config value as a string slice
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// DefaultSliders returns the configured opening slider values.
func DefaultSliders() themes.Sliders {
	if v == nil {
		return themes.DefaultSliders()
	}
	return themes.Sliders{
		Warmth:        v.GetFloat64("theme.defaults.warmth"),
		Saturation:    v.GetFloat64("theme.defaults.saturation"),
		Contrast:      v.GetFloat64("theme.defaults.contrast"),
		Accessibility: v.GetFloat64("theme.defaults.accessibility"),
	}
}

// LoadTuning overlays any theme.tuning keys onto the default coefficients.
func LoadTuning() (themes.Tuning, error) {
	tuning := themes.DefaultTuning()
	if v == nil || !v.IsSet("theme.tuning") {
		return tuning, nil
	}
	if err := v.UnmarshalKey("theme.tuning", &tuning); err != nil {
		return tuning, fmt.Errorf("failed to decode theme.tuning: %w", err)
	}
	if err := tuning.Validate(); err != nil {
		return tuning, fmt.Errorf("invalid theme.tuning: %w", err)
	}
	return tuning, nil
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
