package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/sleepywhaleco/sleepywhale/internal/logging"
)

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()

		config := &Config{}
		if err := m.viper.Unmarshal(config); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			m.mu.Unlock()
			return
		}
		if err := ensureDatabasePath(config); err != nil {
			log.Warn().Err(err).Msg("failed to resolve database path on reload")
			m.mu.Unlock()
			return
		}
		if err := validateConfig(config); err != nil {
			log.Warn().Err(err).Msg("rejected invalid config on reload")
			m.mu.Unlock()
			return
		}

		m.config = config
		m.notifyCallbacksLocked()
	})

	m.watching = true
}

// notifyCallbacksLocked copies callbacks and config, releases the lock, then
// notifies. Must be called with m.mu held for write.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, cb := range callbacks {
		cb(config)
	}
}
