package httpapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
)

// NewSessionStore builds Fiber's session store on top of storage.
// keyLookup follows Fiber's "source:name" form, e.g. "cookie:weather_session".
func NewSessionStore(storage fiber.Storage, ttl time.Duration, keyLookup string) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		Expiration:     ttl,
		KeyLookup:      keyLookup,
		KeyGenerator:   uuid.NewString,
		CookieHTTPOnly: true,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
}

// sessionValues adapts a Fiber session to weather.Session.
// Writes are buffered in the session and persisted by save.
type sessionValues struct {
	sess  *session.Session
	dirty bool
}

func (s *sessionValues) Get(key string) string {
	v, _ := s.sess.Get(key).(string)
	return v
}

func (s *sessionValues) Put(key, value string) error {
	s.sess.Set(key, value)
	s.dirty = true
	return nil
}

// save persists pending writes. The Fiber session must not be used afterwards.
func (s *sessionValues) save() error {
	if !s.dirty {
		return nil
	}
	s.dirty = false
	return s.sess.Save()
}
