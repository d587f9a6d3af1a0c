package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
// The zero value denotes "no owner": system-initiated scans and system-wide
// threats carry a zero UserID.
type UserID uuid.UUID

// NewUserID returns a freshly generated user ID.
func NewUserID() UserID { return UserID(uuid.New()) }

// ParseUserID parses a user ID from its string form.
func ParseUserID(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err //nolint: wrapcheck
	}

	return UserID(id), nil
}

// IsZero reports whether the ID is unset (system scope).
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form for JSON and text codecs.
func (id UserID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText parses the ID from canonical UUID form.
func (id *UserID) UnmarshalText(data []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(data); err != nil {
		return err //nolint: wrapcheck
	}
	*id = UserID(u)

	return nil
}

// User is an account known to the console. The core only references users by
// ID for ownership attribution; the admin surface additionally lists them.
type User struct {
	ID UserID `json:"id"`

	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IsAdmin     bool   `json:"isAdmin"`

	CreatedAt time.Time `json:"createdAt"`
}
