package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidylist-io/tidylist/internal/models"
)

func TestLoadYAMLOrDefault_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	got, err := LoadYAMLOrDefault(path, models.NewSettings)
	require.NoError(t, err)
	assert.Equal(t, models.NewSettings(), got)
}

func TestSaveThenLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	in := &models.Settings{Version: 1, SlotPath: "/tmp/slots", DefaultFilter: "active"}
	require.NoError(t, SaveYAML(path, in))

	var out models.Settings
	require.NoError(t, LoadYAML(path, &out))
	assert.Equal(t, *in, out)
}

func TestResolveSlotDir_EnvWins(t *testing.T) {
	t.Setenv(SlotPathEnv, "/tmp/env-slot")

	dir, err := ResolveSlotDir(&models.Settings{SlotPath: "/tmp/from-settings"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-slot", dir)
}

func TestResolveSlotDir_SettingsBeforeDefault(t *testing.T) {
	t.Setenv(SlotPathEnv, "")

	dir, err := ResolveSlotDir(&models.Settings{SlotPath: "/tmp/from-settings"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-settings", dir)

	def, err := ResolveSlotDir(models.NewSettings())
	require.NoError(t, err)
	assert.Contains(t, def, AppDirName)
}
