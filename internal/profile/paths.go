package profile

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.inovira.
func BaseDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".inovira")
}

// Dir returns the profile-specific directory.
func Dir(name string) string {
	return filepath.Join(BaseDir(), "profiles", name)
}

// DBPath returns the profile-owned inovira.db path.
func DBPath(name string) string {
	return filepath.Join(Dir(name), "inovira.db")
}

// RecordingsDir returns where captured voice notes are materialized.
func RecordingsDir(name string) string {
	return filepath.Join(Dir(name), "recordings")
}

// LogDir returns the log directory for a profile.
func LogDir(name string) string {
	return filepath.Join(Dir(name), "logs")
}

// LogPath returns the TUI log file path.
func LogPath(name string) string {
	return filepath.Join(LogDir(name), "inovtui.log")
}

// ConfigPath returns the global config file path.
func ConfigPath() string {
	return filepath.Join(BaseDir(), "config.toml")
}

// EnsureDir creates the profile directory tree with proper permissions.
func EnsureDir(name string) error {
	dirs := []string{
		Dir(name),
		RecordingsDir(name),
		LogDir(name),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
