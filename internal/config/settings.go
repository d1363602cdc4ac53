package config

import (
	"os"

	"github.com/tidylist-io/tidylist/internal/models"
)

// LoadSettings loads global settings from the user config dir.
// If the file doesn't exist, returns default settings.
func LoadSettings() (*models.Settings, error) {
	path, err := SettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings saves global settings to the user config dir.
func SaveSettings(settings *models.Settings) error {
	path, err := SettingsFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, settings)
}

// ResolveSlotDir picks the slot directory: the TIDYLIST_SLOT environment
// variable wins, then the settings file, then the default location.
func ResolveSlotDir(settings *models.Settings) (string, error) {
	if env := os.Getenv(SlotPathEnv); env != "" {
		return env, nil
	}
	if settings != nil && settings.SlotPath != "" {
		return settings.SlotPath, nil
	}
	return DefaultSlotDir()
}
