package slot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSlot_GetAbsent(t *testing.T) {
	s := NewFile(t.TempDir())

	_, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileSlot_SetThenGet(t *testing.T) {
	s := NewFile(t.TempDir())

	require.NoError(t, s.Set("tasks", "tasks: []\n"))

	got, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tasks: []\n", got)
}

func TestFileSlot_Overwrite(t *testing.T) {
	s := NewFile(t.TempDir())

	require.NoError(t, s.Set("tasks", "first"))
	require.NoError(t, s.Set("tasks", "second"))

	got, ok, err := s.Get("tasks")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", got)
}

func TestFileSlot_CreatesBaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "slots")
	s := NewFile(dir)

	require.NoError(t, s.Set("tasks", "x"))

	_, err := os.Stat(s.Path("tasks"))
	assert.NoError(t, err)
}

func TestFileSlot_NoTempFilesLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := NewFile(dir)

	require.NoError(t, s.Set("tasks", "x"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "tasks.yaml", entries[0].Name())
}
