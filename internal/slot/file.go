package slot

import (
	"fmt"
	"os"
	"path/filepath"
)

// File is a Slot backed by one file per key under a base directory.
// Writes go through a temp file and rename so the blob on disk is
// always either the old value or the new one, never a partial write.
type File struct {
	dir string
}

// NewFile creates a file-backed slot rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Path returns the file a key is stored in.
func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+".yaml")
}

// Get reads the blob stored under key. A missing file is absence, not an error.
func (f *File) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes the blob under key, creating the base directory if needed.
func (f *File) Set(key, value string) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create slot directory %s: %w", f.dir, err)
	}

	path := f.Path(key)
	tmp, err := os.CreateTemp(f.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for slot %s: %w", key, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close slot %s: %w", key, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}
	return nil
}
