// Package cache stores remote fact-check oracle responses so repeated runs
// over overlapping feeds do not re-spend rate-limited oracle calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the storage interface for oracle responses.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a cache key from a claim text.
func Key(claimText string) string {
	sum := sha256.Sum256([]byte(claimText))
	return "credlens:v1:" + hex.EncodeToString(sum[:])
}
