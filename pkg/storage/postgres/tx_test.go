package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
	"avconsole/pkg/storage/postgres"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Error paths: commit/rollback on non-tx handle
	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	// Commit persists
	committed := domain.NewScan(domain.ScanTypeQuick, domain.NewUserID(), time.Now().UTC())
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.StoreScans(ctx, committed)
	require.NoError(t, err)
	require.NoError(t, txStorage.Commit())

	got, err := pg.ScanByID(ctx, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Rollback discards
	discarded := domain.NewScan(domain.ScanTypeFull, domain.NewUserID(), time.Now().UTC())
	txStorage, err = pg.Begin(ctx)
	require.NoError(t, err)
	_, err = txStorage.StoreScans(ctx, discarded)
	require.NoError(t, err)
	require.NoError(t, txStorage.Rollback())

	got, err = pg.ScanByID(ctx, discarded.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success callback: should commit
	committed := domain.NewScan(domain.ScanTypeQuick, domain.NewUserID(), time.Now().UTC())
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, e := s.StoreScans(ctx, committed)

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	got, err := pg.ScanByID(ctx, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	// Error in callback: should rollback
	discarded := domain.NewScan(domain.ScanTypeWifi, domain.NewUserID(), time.Now().UTC())
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreScans(ctx, discarded)

		return errors.New("boom")
	})
	require.Error(t, err)

	got, err = pg.ScanByID(ctx, discarded.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
