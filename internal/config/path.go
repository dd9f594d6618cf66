// Package config provides configuration loading for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ and any $VAR environment variables in a
// file path.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// DefaultStoragePath returns the default location of the SQLite database,
// under the user's home directory.
func DefaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "coinkeeper.db"
	}
	return filepath.Join(home, ".local", "share", "coinkeeper", "coinkeeper.db")
}
