package storage

import (
	"context"

	"avconsole/pkg/domain"
)

// UserStorage defines the operations on the users collection. The core only
// needs lookups for ownership attribution and admin checks; the admin surface
// additionally lists and counts accounts.
type UserStorage interface {
	// StoreUser upserts a user keyed by ID and returns the stored record.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail fetches a user by email. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// Users returns up to limit users, most recently created first.
	Users(ctx context.Context, limit uint) ([]domain.User, error)
	// CountUsers counts all users.
	CountUsers(ctx context.Context) (int64, error)
}
