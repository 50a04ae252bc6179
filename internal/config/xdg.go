package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "sleepywhale"
const dirPerm = 0o750

// GetConfigDir returns the XDG config directory for sleepywhale.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user config dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// GetDataDir returns the XDG data directory for sleepywhale.
func GetDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", appName), nil
}

// GetCacheDir returns the XDG cache directory for sleepywhale.
func GetCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user cache dir: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// EnsureDirectories creates the config, data, and cache directories.
func EnsureDirectories() error {
	for _, get := range []func() (string, error){GetConfigDir, GetDataDir, GetCacheDir} {
		dir, err := get()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
