package store

import (
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
)

var (
	// ErrEmptyKey is returned when a session key is blank.
	ErrEmptyKey = errors.New("session key must not be empty")
)

// SessionStore is a concurrency-safe in-memory session storage.
// It satisfies fiber.Storage so it can back Fiber's session middleware.
//
// Expired entries are invisible to Get but stay in memory until Sweep runs;
// no background janitor goroutine is started.
type SessionStore struct {
	items *cache.Cache
}

// NewSessionStore creates a store whose entries expire after ttl.
// If ttl is <= 0, entries never expire unless Set is given an expiry.
func NewSessionStore(ttl time.Duration) *SessionStore {
	def := ttl
	if def <= 0 {
		def = cache.NoExpiration
	}
	return &SessionStore{
		items: cache.New(def, 0),
	}
}

// Get returns the stored bytes, or nil if the key is missing or expired.
func (s *SessionStore) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	v, ok := s.items.Get(key)
	if !ok {
		return nil, nil
	}
	b, _ := v.([]byte)
	return b, nil
}

// Set stores val under key. exp <= 0 uses the store's default lifetime.
func (s *SessionStore) Set(key string, val []byte, exp time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if len(val) == 0 {
		return nil
	}
	if exp <= 0 {
		exp = cache.DefaultExpiration
	}

	// Copy, the caller may reuse its buffer.
	buf := make([]byte, len(val))
	copy(buf, val)
	s.items.Set(key, buf, exp)
	return nil
}

// Delete removes key.
func (s *SessionStore) Delete(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	s.items.Delete(key)
	return nil
}

// Reset removes every entry.
func (s *SessionStore) Reset() error {
	s.items.Flush()
	return nil
}

// Close is a no-op; there is nothing to release.
func (s *SessionStore) Close() error {
	return nil
}

// Sweep deletes expired entries and returns how many remain.
func (s *SessionStore) Sweep() int {
	s.items.DeleteExpired()
	return s.items.ItemCount()
}
