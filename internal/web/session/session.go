// Package session keeps logged in admin sessions in a fiber storage.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/pkg/errors"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// ErrNoSession is returned when the session id is unknown or expired.
var ErrNoSession = errors.New("session not found")

// Store is the global session store instance.
var Store *session.Store

// Data represents the session data structure.
type Data struct {
	UserID   uint64
	Username string
}

// Valid reports whether the session belongs to a user.
func (s *Data) Valid() bool {
	return s.UserID > 0
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	return errors.Wrap(Store.Storage.Set(sessionID, out, exp), "failed to store session")
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return errors.Wrap(err, "failed to read session")
	}

	if len(byteData) == 0 {
		return ErrNoSession
	}

	return errors.Wrap(json.Unmarshal(byteData, s), "failed to decode session")
}

// Delete removes the session with sessionID.
func Delete(sessionID string) error {
	return errors.Wrap(Store.Storage.Delete(sessionID), "failed to delete session")
}

// Init initializes the session store. A nil storage keeps sessions in memory.
func Init(storage fiber.Storage) {
	Store = session.New(session.Config{
		Storage: storage,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", errors.Wrap(err, "failed to generate session id")
	}

	return hex.EncodeToString(b), nil
}
