package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			DefaultMinutes: 60,
			Presets:        []int{15, 30, 45, 60, 90, 120, 180, 240},
		},
		Suspend: SuspendConfig{UseDBus: true},
		Idle:    IdleConfig{Inhibit: true},
		History: HistoryConfig{Enabled: true, DatabasePath: "/tmp/history.db"},
		Window:  WindowConfig{Width: 1024, Height: 768},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func TestValidateConfigDefaults(t *testing.T) {
	t.Parallel()

	require.NoError(t, validateConfig(defaultTestConfig()))
}

func TestValidateConfigRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"default minutes too low", func(c *Config) { c.Timer.DefaultMinutes = 0 }},
		{"default minutes too high", func(c *Config) { c.Timer.DefaultMinutes = 481 }},
		{"empty presets", func(c *Config) { c.Timer.Presets = nil }},
		{"preset out of range", func(c *Config) { c.Timer.Presets = []int{15, 500} }},
		{"zero window width", func(c *Config) { c.Window.Width = 0 }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultTestConfig()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestValidateConfigBoundaryMinutes(t *testing.T) {
	t.Parallel()

	cfg := defaultTestConfig()
	cfg.Timer.DefaultMinutes = 1
	assert.NoError(t, validateConfig(cfg))

	cfg.Timer.DefaultMinutes = 480
	assert.NoError(t, validateConfig(cfg))
}

func TestEnsureDatabasePathPreservesOverride(t *testing.T) {
	t.Parallel()

	cfg := defaultTestConfig()
	cfg.History.DatabasePath = "/custom/path.db"
	require.NoError(t, ensureDatabasePath(cfg))
	assert.Equal(t, "/custom/path.db", cfg.History.DatabasePath)
}

func TestEnsureDatabasePathDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := defaultTestConfig()
	cfg.History.DatabasePath = ""
	require.NoError(t, ensureDatabasePath(cfg))
	assert.Contains(t, cfg.History.DatabasePath, "sleepywhale")
	assert.Contains(t, cfg.History.DatabasePath, "history.db")
}
