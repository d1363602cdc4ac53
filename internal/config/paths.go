// Package config handles settings loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the tidylist directory under the user
	// config dir.
	AppDirName = "tidylist"

	// SlotDirName is the directory holding persistence slot files.
	SlotDirName = "slots"
)

// File names
const (
	SettingsFileName = "settings.yaml"
)

// SlotPathEnv overrides the slot directory when set.
const SlotPathEnv = "TIDYLIST_SLOT"

// AppDir returns the path to the tidylist config directory
// (~/.config/tidylist on Linux).
func AppDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName), nil
}

// SettingsFile returns the path to the settings.yaml file.
func SettingsFile() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// DefaultSlotDir returns the default directory for slot files.
func DefaultSlotDir() (string, error) {
	dir, err := AppDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SlotDirName), nil
}

// EnsureAppDir creates the tidylist config directory if it doesn't exist.
func EnsureAppDir() error {
	dir, err := AppDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o755)
}
