package utils

import (
	"crypto/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateSortableID returns a ULID; ids created later sort after earlier ones.
func GenerateSortableID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
