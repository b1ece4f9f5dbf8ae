// Package cache provides the in-memory document cache shared by batch runs,
// so a glossary or transcript referenced by every notes file is read once.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching document content
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key generates a cache key from a document path
func Key(path string) string {
	hash := sha256.Sum256([]byte(path))
	return "minutecheck:v1:" + hex.EncodeToString(hash[:])
}
