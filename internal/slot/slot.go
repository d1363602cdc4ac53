// Package slot provides the durable key-value entry the task store
// persists into. A slot holds whole string blobs under named keys;
// callers serialize before writing and parse after reading.
package slot

// Slot is a named string-valued key-value entry.
// Get reports absence via its second return rather than an error,
// so a missing key is distinguishable from a failed read.
type Slot interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Memory is a map-backed Slot for tests and ephemeral runs.
type Memory struct {
	entries map[string]string

	// FailSet, when non-nil, is returned by every Set call.
	// Tests use it to simulate quota/IO failures.
	FailSet error
}

// NewMemory creates an empty in-memory slot.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// Get returns the value stored under key, if any.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.entries[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	if m.FailSet != nil {
		return m.FailSet
	}
	m.entries[key] = value
	return nil
}
