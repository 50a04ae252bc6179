package config

import "fmt"

const (
	minMinutes = 1
	maxMinutes = 480
)

func validateConfig(cfg *Config) error {
	if cfg.Timer.DefaultMinutes < minMinutes || cfg.Timer.DefaultMinutes > maxMinutes {
		return fmt.Errorf("timer.default_minutes must be in [%d,%d], got %d", minMinutes, maxMinutes, cfg.Timer.DefaultMinutes)
	}

	if len(cfg.Timer.Presets) == 0 {
		return fmt.Errorf("timer.presets must not be empty")
	}
	for _, p := range cfg.Timer.Presets {
		if p < minMinutes || p > maxMinutes {
			return fmt.Errorf("timer.presets entries must be in [%d,%d], got %d", minMinutes, maxMinutes, p)
		}
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window dimensions must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}

	switch cfg.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", cfg.Logging.Format)
	}

	return nil
}
