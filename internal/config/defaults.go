package config

// defaultConfigTOML is written on first run.
const defaultConfigTOML = `# sleepywhale configuration
# Schema: config.schema.json (same directory)

[timer]
# Duration selected at startup, minutes (1-480).
default_minutes = 60
# Quick-select presets shown in the UI, minutes.
presets = [15, 30, 45, 60, 90, 120, 180, 240]

[suspend]
# Override the suspend mechanism with a custom command, e.g. "loginctl suspend".
# Empty uses the built-in per-OS default.
command = ""
# Prefer logind over spawning systemctl (Linux only).
use_dbus = true

[idle]
# Keep the screensaver away while a session is counting down.
inhibit = true

[history]
enabled = true
# Defaults to <data-dir>/history.db when empty.
database_path = ""

[window]
width = 1024
height = 768

[logging]
# trace, debug, info, warn, error
level = "info"
# console, json
format = "console"
`

func (m *Manager) setDefaults() {
	m.viper.SetDefault("timer.default_minutes", 60)
	m.viper.SetDefault("timer.presets", []int{15, 30, 45, 60, 90, 120, 180, 240})

	m.viper.SetDefault("suspend.command", "")
	m.viper.SetDefault("suspend.use_dbus", true)

	m.viper.SetDefault("idle.inhibit", true)

	m.viper.SetDefault("history.enabled", true)
	m.viper.SetDefault("history.database_path", "")

	m.viper.SetDefault("window.width", 1024)
	m.viper.SetDefault("window.height", 768)

	m.viper.SetDefault("logging.level", "info")
	m.viper.SetDefault("logging.format", "console")
}
