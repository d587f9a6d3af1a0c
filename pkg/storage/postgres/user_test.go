package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/domain"
)

func TestPgSQL_StoreUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := domain.User{
		ID:          domain.NewUserID(),
		Email:       "alice@example.com",
		DisplayName: "Alice",
	}

	stored, err := pgSQL.StoreUser(ctx, user)
	require.NoError(t, err)
	require.Equal(t, user.ID, stored.ID)
	require.Equal(t, "alice@example.com", stored.Email)
	require.False(t, stored.IsAdmin)
	require.False(t, stored.CreatedAt.IsZero())

	// upsert updates mutable fields
	user.DisplayName = "Alice A."
	user.IsAdmin = true
	updated, err := pgSQL.StoreUser(ctx, user)
	require.NoError(t, err)
	require.Equal(t, "Alice A.", updated.DisplayName)
	require.True(t, updated.IsAdmin)
	require.True(t, updated.CreatedAt.Equal(stored.CreatedAt))
}

func TestPgSQL_UserLookups(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := domain.User{
		ID:    domain.NewUserID(),
		Email: "bob@example.com",
	}
	_, err := pgSQL.StoreUser(ctx, user)
	require.NoError(t, err)

	byID, err := pgSQL.UserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, user.Email, byID.Email)

	byEmail, err := pgSQL.UserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, user.ID, byEmail.ID)

	missing, err := pgSQL.UserByID(ctx, domain.NewUserID())
	require.NoError(t, err)
	require.Nil(t, missing)

	missing, err = pgSQL.UserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UsersAndCount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	for _, email := range []string{"u1@example.com", "u2@example.com", "u3@example.com"} {
		_, err := pgSQL.StoreUser(ctx, domain.User{
			ID:    domain.NewUserID(),
			Email: email,
		})
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	users, err := pgSQL.Users(ctx, 2)
	require.NoError(t, err)
	require.Len(t, users, 2)

	count, err := pgSQL.CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, count)
}
