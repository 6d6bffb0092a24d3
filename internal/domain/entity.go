package domain

import (
	"time"

	"github.com/google/uuid"
)

// PasswordHasher turns a plaintext password into a storable hash.
// It is implemented by the auth package; the domain only depends on the behavior.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// now returns the current UTC time truncated to microseconds, the finest
// precision every supported database keeps.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// touch advances *ts to the current time, never moving it backwards.
func touch(ts *time.Time) {
	if t := now(); t.After(*ts) {
		*ts = t
	}
}

func requireID(id uuid.UUID, field string) error {
	if id == uuid.Nil {
		return requiredError(field)
	}
	return nil
}
