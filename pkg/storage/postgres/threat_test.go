package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
)

func makeThreat(ownerID domain.UserID, typ domain.ThreatType, detectedAt time.Time) domain.Threat {
	return domain.Threat{
		ID:          domain.NewThreatID(),
		OwnerID:     ownerID,
		Name:        "Trojan.AndroidOS.Agent",
		Type:        typ,
		Description: "test threat",
		Severity:    domain.SeverityMedium,
		FilePath:    "/storage/emulated/0/Download/app.apk",
		DetectedAt:  detectedAt,
	}
}

func TestPgSQL_StoreThreats(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerID := domain.NewUserID()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("store and fetch", func(t *testing.T) {
		t.Parallel()

		threat := makeThreat(ownerID, domain.ThreatTypeTrojan, now)
		res, err := pgSQL.StoreThreats(ctx, threat)
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.Equal(t, threat.ID, res[0].ID)
		require.False(t, res[0].Cleaned)
		require.True(t, res[0].DetectedAt.Equal(now))
	})

	t.Run("store empty", func(t *testing.T) {
		t.Parallel()

		res, err := pgSQL.StoreThreats(ctx)
		require.NoError(t, err)
		require.Empty(t, res)
	})

	t.Run("upsert never un-cleans", func(t *testing.T) {
		t.Parallel()

		threat := makeThreat(ownerID, domain.ThreatTypeSpyware, now)
		_, err := pgSQL.StoreThreats(ctx, threat)
		require.NoError(t, err)

		cleaned, err := pgSQL.MarkThreatCleaned(ctx, threat.ID)
		require.NoError(t, err)
		require.True(t, cleaned.Cleaned)

		// re-storing the original record must not reset the flag
		res, err := pgSQL.StoreThreats(ctx, threat)
		require.NoError(t, err)
		require.True(t, res[0].Cleaned)
	})
}

func TestPgSQL_MarkThreatCleaned(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	threat := makeThreat(domain.NewUserID(), domain.ThreatTypeAdware, time.Now().UTC())
	_, err := pgSQL.StoreThreats(ctx, threat)
	require.NoError(t, err)

	first, err := pgSQL.MarkThreatCleaned(ctx, threat.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.True(t, first.Cleaned)

	// idempotent
	second, err := pgSQL.MarkThreatCleaned(ctx, threat.ID)
	require.NoError(t, err)
	require.NotNil(t, second)
	require.True(t, second.Cleaned)

	missing, err := pgSQL.MarkThreatCleaned(ctx, domain.NewThreatID())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_ThreatsFilterAndOrder(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	ownerID := domain.NewUserID()
	otherID := domain.NewUserID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	t1 := makeThreat(ownerID, domain.ThreatTypeTrojan, base)
	t2 := makeThreat(ownerID, domain.ThreatTypeVirus, base.Add(time.Hour))
	t3 := makeThreat(otherID, domain.ThreatTypeTrojan, base.Add(2*time.Hour))
	_, err := pgSQL.StoreThreats(ctx, t1, t2, t3)
	require.NoError(t, err)

	_, err = pgSQL.MarkThreatCleaned(ctx, t1.ID)
	require.NoError(t, err)

	// owner filter, newest first
	owned, err := pgSQL.Threats(ctx, storage.ThreatFilter{OwnerID: ownerID})
	require.NoError(t, err)
	require.Len(t, owned, 2)
	require.Equal(t, t2.ID, owned[0].ID)

	// type filter
	trojans, err := pgSQL.Threats(ctx, storage.ThreatFilter{Type: domain.ThreatTypeTrojan})
	require.NoError(t, err)
	require.Len(t, trojans, 2)

	// cleaned filter
	cleaned := true
	cleanedOnly, err := pgSQL.Threats(ctx, storage.ThreatFilter{OwnerID: ownerID, Cleaned: &cleaned})
	require.NoError(t, err)
	require.Len(t, cleanedOnly, 1)
	require.Equal(t, t1.ID, cleanedOnly[0].ID)

	// counts agree
	count, err := pgSQL.CountThreats(ctx, storage.ThreatFilter{OwnerID: ownerID, Cleaned: &cleaned})
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestPgSQL_DeleteThreat(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	threat := makeThreat(domain.NewUserID(), domain.ThreatTypeWorm, time.Now().UTC())
	_, err := pgSQL.StoreThreats(ctx, threat)
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteThreat(ctx, threat.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = pgSQL.DeleteThreat(ctx, threat.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
