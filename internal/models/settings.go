package models

// Settings represents global tidylist settings.
// This corresponds to ~/.config/tidylist/settings.yaml.
type Settings struct {
	Version       int    `yaml:"version"`
	SlotPath      string `yaml:"slot_path,omitempty"`      // Overrides the default slot location
	DefaultFilter string `yaml:"default_filter,omitempty"` // all | active | completed
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:       1,
		DefaultFilter: string(FilterAll),
	}
}
