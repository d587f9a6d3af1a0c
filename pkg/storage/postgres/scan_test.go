package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
)

func TestPgSQL_StoreScans(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	ownerID := domain.NewUserID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("store single scan", func(t *testing.T) {
		t.Parallel()

		s := domain.NewScan(domain.ScanTypeQuick, ownerID, now)

		res, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, s.ID, res[0].ID)
		require.Equal(t, domain.ScanTypeQuick, res[0].Type)
		require.Equal(t, domain.ScanStatusRunning, res[0].Status())
	})

	t.Run("store multiple scans", func(t *testing.T) {
		t.Parallel()

		s1 := domain.NewScan(domain.ScanTypeFull, ownerID, now)
		s2 := domain.NewScan(domain.ScanTypeWifi, ownerID, now)

		res, err := pgSQL.StoreScans(ctx, s1, s2)
		require.NoError(t, err)
		require.Len(t, res, 2)
	})

	t.Run("store empty scans", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreScans(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("upsert by id", func(t *testing.T) {
		t.Parallel()

		s := domain.NewScan(domain.ScanTypeQR, ownerID, now)
		_, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)

		s.TotalScanned = 1
		res, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)
		require.Equal(t, 1, res[0].TotalScanned)

		count, err := pgSQL.CountScans(ctx, storage.ScanFilter{Type: domain.ScanTypeQR})
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})
}

func TestPgSQL_ScanByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	s := domain.NewScan(domain.ScanTypeQuick, domain.NewUserID(), now)
	_, err := pgSQL.StoreScans(ctx, s)
	require.NoError(t, err)

	got, err := pgSQL.ScanByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, s.ID, got.ID)
	require.True(t, got.StartTime.Equal(now))
	require.True(t, got.EndTime.IsZero())
	require.Empty(t, got.Threats)

	missing, err := pgSQL.ScanByID(ctx, domain.NewScanID())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_CompleteScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerID := domain.NewUserID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("completes a running scan", func(t *testing.T) {
		t.Parallel()

		s := domain.NewScan(domain.ScanTypeFull, ownerID, now)
		_, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)

		threats := []domain.Threat{{
			ID:         domain.NewThreatID(),
			OwnerID:    ownerID,
			Name:       "Trojan.AndroidOS.Agent",
			Type:       domain.ThreatTypeTrojan,
			Severity:   domain.SeverityHigh,
			DetectedAt: now,
		}}
		completed, err := pgSQL.CompleteScan(ctx, s.ID, storage.ScanCompletion{
			EndTime:      now.Add(15 * time.Second),
			TotalScanned: 321,
			Threats:      threats,
		})
		require.NoError(t, err)
		require.NotNil(t, completed)
		require.Equal(t, domain.ScanStatusCompleted, completed.Status())
		require.Equal(t, 321, completed.TotalScanned)
		require.Len(t, completed.Threats, 1)
		require.Equal(t, threats[0].ID, completed.Threats[0].ID)
	})

	t.Run("second completion loses", func(t *testing.T) {
		t.Parallel()

		s := domain.NewScan(domain.ScanTypeQuick, ownerID, now)
		_, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)

		completion := storage.ScanCompletion{
			EndTime:      now.Add(5 * time.Second),
			TotalScanned: 100,
			Threats:      []domain.Threat{},
		}
		first, err := pgSQL.CompleteScan(ctx, s.ID, completion)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := pgSQL.CompleteScan(ctx, s.ID, completion)
		require.NoError(t, err)
		require.Nil(t, second)

		// first write stands untouched
		got, err := pgSQL.ScanByID(ctx, s.ID)
		require.NoError(t, err)
		require.True(t, got.EndTime.Equal(first.EndTime))
	})

	t.Run("unknown scan", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.CompleteScan(ctx, domain.NewScanID(), storage.ScanCompletion{
			EndTime: now,
			Threats: []domain.Threat{},
		})
		require.NoError(t, err)
		require.Nil(t, res)
	})

	t.Run("end time clamped to start time", func(t *testing.T) {
		t.Parallel()

		s := domain.NewScan(domain.ScanTypeWifi, ownerID, now)
		_, err := pgSQL.StoreScans(ctx, s)
		require.NoError(t, err)

		// an end time before the start must not violate the time bounds
		completed, err := pgSQL.CompleteScan(ctx, s.ID, storage.ScanCompletion{
			EndTime: now.Add(-time.Hour),
			Threats: []domain.Threat{},
		})
		require.NoError(t, err)
		require.NotNil(t, completed)
		require.True(t, completed.EndTime.Equal(completed.StartTime))
	})
}

func TestPgSQL_OwnerAndRecentScans(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerID := domain.NewUserID()
	otherID := domain.NewUserID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	s1 := domain.NewScan(domain.ScanTypeQuick, ownerID, base)
	s2 := domain.NewScan(domain.ScanTypeFull, ownerID, base.Add(time.Minute))
	s3 := domain.NewScan(domain.ScanTypeQR, otherID, base.Add(2*time.Minute))
	_, err := pgSQL.StoreScans(ctx, s1, s2, s3)
	require.NoError(t, err)

	owned, err := pgSQL.OwnerScans(ctx, ownerID, 10)
	require.NoError(t, err)
	require.Len(t, owned, 2)
	require.Equal(t, s2.ID, owned[0].ID)
	require.Equal(t, s1.ID, owned[1].ID)

	limited, err := pgSQL.OwnerScans(ctx, ownerID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	require.Equal(t, s2.ID, limited[0].ID)

	recent, err := pgSQL.RecentScans(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	require.Equal(t, s3.ID, recent[0].ID)
}

func TestPgSQL_DeleteScan(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	s := domain.NewScan(domain.ScanTypeQuick, domain.NewUserID(), time.Now().UTC())
	_, err := pgSQL.StoreScans(ctx, s)
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteScan(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pgSQL.DeleteScan(ctx, s.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}

func TestPgSQL_CountScans(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerID := domain.NewUserID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	running := domain.NewScan(domain.ScanTypeQuick, ownerID, now)
	completed := domain.NewScan(domain.ScanTypeFull, ownerID, now)
	require.NoError(t, completed.Complete(now.Add(15*time.Second), 200, nil))
	_, err := pgSQL.StoreScans(ctx, running, completed)
	require.NoError(t, err)

	total, err := pgSQL.CountScans(ctx, storage.ScanFilter{OwnerID: ownerID})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)

	isRunning := true
	runningCount, err := pgSQL.CountScans(ctx, storage.ScanFilter{OwnerID: ownerID, Running: &isRunning})
	require.NoError(t, err)
	require.EqualValues(t, 1, runningCount)

	isRunning = false
	doneCount, err := pgSQL.CountScans(ctx, storage.ScanFilter{OwnerID: ownerID, Running: &isRunning})
	require.NoError(t, err)
	require.EqualValues(t, 1, doneCount)
}
