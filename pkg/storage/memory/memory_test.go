package memory_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
	"avconsole/pkg/storage/memory"
)

func TestMemory_ScanRoundTrip(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	scan := domain.NewScan(domain.ScanTypeQuick, domain.NewUserID(), time.Now())
	stored, err := m.StoreScans(ctx, scan)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	got, err := m.ScanByID(ctx, scan.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, scan.ID, got.ID)
	require.Equal(t, domain.ScanStatusRunning, got.Status())

	missing, err := m.ScanByID(ctx, domain.NewScanID())
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestMemory_CompleteScanCAS(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	scan := domain.NewScan(domain.ScanTypeQuick, domain.UserID{}, time.Now())
	_, err := m.StoreScans(ctx, scan)
	require.NoError(t, err)

	completion := storage.ScanCompletion{
		EndTime:      time.Now().Add(5 * time.Second),
		TotalScanned: 120,
		Threats:      []domain.Threat{{ID: domain.NewThreatID(), Name: "Adware.AndroidOS.Ewind"}},
	}

	first, err := m.CompleteScan(ctx, scan.ID, completion)
	require.NoError(t, err)
	require.NotNil(t, first)
	require.Equal(t, domain.ScanStatusCompleted, first.Status())
	require.Equal(t, 120, first.TotalScanned)
	require.Len(t, first.Threats, 1)

	// second attempt loses the compare-and-set
	second, err := m.CompleteScan(ctx, scan.ID, completion)
	require.NoError(t, err)
	require.Nil(t, second)
}

func TestMemory_CompleteScanConcurrent(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	scan := domain.NewScan(domain.ScanTypeFull, domain.UserID{}, time.Now())
	_, err := m.StoreScans(ctx, scan)
	require.NoError(t, err)

	const attempts = 16
	var wg sync.WaitGroup
	wins := make(chan *domain.Scan, attempts)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := m.CompleteScan(ctx, scan.ID, storage.ScanCompletion{
				EndTime:      time.Now(),
				TotalScanned: 300,
			})
			require.NoError(t, err)
			if res != nil {
				wins <- res
			}
		}()
	}
	wg.Wait()
	close(wins)

	var winners int
	for range wins {
		winners++
	}
	require.Equal(t, 1, winners, "exactly one completion may succeed")
}

func TestMemory_OwnerScansOrderedAndLimited(t *testing.T) {
	m := memory.New()
	ctx := context.Background()
	owner := domain.NewUserID()
	base := time.Now()

	for i := range 5 {
		scan := domain.NewScan(domain.ScanTypeQuick, owner, base.Add(time.Duration(i)*time.Minute))
		_, err := m.StoreScans(ctx, scan)
		require.NoError(t, err)
	}
	// another owner's scan must not leak in
	_, err := m.StoreScans(ctx, domain.NewScan(domain.ScanTypeFull, domain.NewUserID(), base))
	require.NoError(t, err)

	scans, err := m.OwnerScans(ctx, owner, 3)
	require.NoError(t, err)
	require.Len(t, scans, 3)
	for i := 1; i < len(scans); i++ {
		require.False(t, scans[i].StartTime.After(scans[i-1].StartTime), "expected most recent first")
	}
	for _, scan := range scans {
		require.Equal(t, owner, scan.OwnerID)
	}
}

func TestMemory_ThreatFilterAndClean(t *testing.T) {
	m := memory.New()
	ctx := context.Background()
	owner := domain.NewUserID()

	active := domain.Threat{
		ID: domain.NewThreatID(), OwnerID: owner,
		Name: "Trojan.AndroidOS.Agent", Type: domain.ThreatTypeTrojan,
		Severity: domain.SeverityHigh, DetectedAt: time.Now(),
	}
	cleaned := domain.Threat{
		ID: domain.NewThreatID(), OwnerID: owner,
		Name: "PUP.AndroidOS.Downloader", Type: domain.ThreatTypePUP,
		Severity: domain.SeverityLow, Cleaned: true, DetectedAt: time.Now().Add(-time.Hour),
	}
	_, err := m.StoreThreats(ctx, active, cleaned)
	require.NoError(t, err)

	isCleaned := false
	got, err := m.Threats(ctx, storage.ThreatFilter{OwnerID: owner, Cleaned: &isCleaned})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, active.ID, got[0].ID)

	updated, err := m.MarkThreatCleaned(ctx, active.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.Cleaned)

	// idempotent: cleaning again still reports the record
	again, err := m.MarkThreatCleaned(ctx, active.ID)
	require.NoError(t, err)
	require.NotNil(t, again)
	require.True(t, again.Cleaned)

	count, err := m.CountThreats(ctx, storage.ThreatFilter{OwnerID: owner, Cleaned: &isCleaned})
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestMemory_StoreThreatsNeverUncleans(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	threat := domain.Threat{ID: domain.NewThreatID(), Name: "Worm.AndroidOS.Selfmite", Cleaned: true}
	_, err := m.StoreThreats(ctx, threat)
	require.NoError(t, err)

	// an upsert carrying Cleaned=false must not reset the flag
	threat.Cleaned = false
	_, err = m.StoreThreats(ctx, threat)
	require.NoError(t, err)

	got, err := m.ThreatByID(ctx, threat.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.Cleaned)
}

func TestMemory_UsersAndJobs(t *testing.T) {
	m := memory.New()
	ctx := context.Background()

	user := domain.User{ID: domain.NewUserID(), Email: "admin@example.com", IsAdmin: true}
	stored, err := m.StoreUser(ctx, user)
	require.NoError(t, err)
	require.False(t, stored.CreatedAt.IsZero())

	byEmail, err := m.UserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, user.ID, byEmail.ID)

	count, err := m.CountUsers(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	added, err := m.AddJob(ctx, nil, nil)
	require.NoError(t, err)
	require.True(t, added)
	require.Len(t, m.Jobs(), 1)
}
