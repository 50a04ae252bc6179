// Package config handles loading, validation, and live reloading of the
// sleepywhale configuration (TOML via viper, XDG paths).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const filePerm = 0o644

// Config is the full application configuration.
type Config struct {
	Timer   TimerConfig   `mapstructure:"timer" json:"timer"`
	Suspend SuspendConfig `mapstructure:"suspend" json:"suspend"`
	Idle    IdleConfig    `mapstructure:"idle" json:"idle"`
	History HistoryConfig `mapstructure:"history" json:"history"`
	Window  WindowConfig  `mapstructure:"window" json:"window"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging"`
}

// TimerConfig controls the countdown defaults.
type TimerConfig struct {
	// DefaultMinutes is the duration selected at startup, in [1,480].
	DefaultMinutes int `mapstructure:"default_minutes" json:"default_minutes"`
	// Presets are the quick-select durations shown in the UI, minutes.
	Presets []int `mapstructure:"presets" json:"presets"`
}

// SuspendConfig controls how the host is suspended on session expiry.
type SuspendConfig struct {
	// Command overrides the platform default (e.g. "loginctl suspend").
	// Split on whitespace; empty uses the built-in per-OS mechanism.
	Command string `mapstructure:"command" json:"command"`
	// UseDBus prefers logind over spawning systemctl on Linux.
	UseDBus bool `mapstructure:"use_dbus" json:"use_dbus"`
}

// IdleConfig controls screensaver inhibition during a running session.
type IdleConfig struct {
	Inhibit bool `mapstructure:"inhibit" json:"inhibit"`
}

// HistoryConfig controls the watch-history database.
type HistoryConfig struct {
	Enabled bool `mapstructure:"enabled" json:"enabled"`
	// DatabasePath defaults to <data-dir>/history.db when empty.
	DatabasePath string `mapstructure:"database_path" json:"database_path"`
}

// WindowConfig controls the GTK window geometry.
type WindowConfig struct {
	Width  int `mapstructure:"width" json:"width"`
	Height int `mapstructure:"height" json:"height"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // current directory for development

	v.SetEnvPrefix("SLEEPYWHALE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SLEEPYWHALE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SLEEPYWHALE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SLEEPYWHALE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SLEEPYWHALE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables, creating
// a default config file on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ensureDatabasePath(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if createErr := m.createDefaultConfig(); createErr != nil {
				configDir, _ := GetConfigDir()
				return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
			}
			if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
				return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
			}
			return nil
		}
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, "config.toml")
		}
		return fmt.Errorf("failed to read config file at %s: %w (must be valid TOML)", configFile, err)
	}
	return nil
}

func (m *Manager) createDefaultConfig() error {
	configDir, err := GetConfigDir()
	if err != nil {
		return err
	}
	configFile := filepath.Join(configDir, "config.toml")

	if err := os.WriteFile(configFile, []byte(defaultConfigTOML), filePerm); err != nil {
		return err
	}

	// Schema generation is best-effort; editors use it for completion.
	if err := GenerateSchemaFile(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not generate config schema: %v\n", err)
	}

	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// ConfigFile returns the path of the loaded config file.
func (m *Manager) ConfigFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viper.ConfigFileUsed()
}

// OnChange registers a callback invoked after a successful reload.
func (m *Manager) OnChange(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, fn)
}

func ensureDatabasePath(cfg *Config) error {
	if cfg.History.DatabasePath != "" {
		return nil
	}
	dataDir, err := GetDataDir()
	if err != nil {
		return fmt.Errorf("failed to determine data directory: %w", err)
	}
	cfg.History.DatabasePath = filepath.Join(dataDir, "history.db")
	return nil
}
