package store

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies timestamps. Injected so tests control time.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator supplies fresh task ids. Injected so tests control ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUID v4 ids. Collisions with existing ids
// are checked by the store at creation anyway.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
