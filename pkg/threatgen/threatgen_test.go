package threatgen_test

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/domain"
	"avconsole/pkg/threatgen"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed)) //nolint: gosec
}

func TestGenerator_GenerateCount(t *testing.T) {
	g := threatgen.New(threatgen.WithRand(seeded(1)))

	require.Empty(t, g.Generate(0, domain.UserID{}))
	require.Empty(t, g.Generate(-3, domain.UserID{}))

	for _, n := range []int{1, 2, 5, 50} {
		require.Len(t, g.Generate(n, domain.UserID{}), n)
	}
}

func TestGenerator_FieldsAreValid(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	g := threatgen.New(
		threatgen.WithRand(seeded(42)),
		threatgen.WithNow(func() time.Time { return now }),
	)

	for _, threat := range g.Generate(200, domain.UserID{}) {
		require.True(t, threat.Type.Valid(), "type %q", threat.Type)
		require.True(t, threat.Severity.Valid(), "severity %q", threat.Severity)
		require.NotEmpty(t, threat.Name)
		require.Contains(t, threat.Name, ".AndroidOS.")
		require.NotEmpty(t, threat.Description)
		require.False(t, threat.Cleaned)
		require.False(t, threat.DetectedAt.After(now))
		require.False(t, threat.DetectedAt.Before(now.Add(-24*time.Hour)))
		if threat.FilePath != "" {
			require.True(t, strings.HasPrefix(threat.FilePath, "/"), "path %q", threat.FilePath)
		}
	}
}

func TestGenerator_OwnerAttribution(t *testing.T) {
	g := threatgen.New(threatgen.WithRand(seeded(7)))
	owner := domain.NewUserID()

	for _, threat := range g.Generate(10, owner) {
		require.Equal(t, owner, threat.OwnerID)
	}
	for _, threat := range g.Generate(10, domain.UserID{}) {
		require.True(t, threat.OwnerID.IsZero())
	}
}

func TestGenerator_DeterministicWithSeed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	gen := func() []domain.Threat {
		g := threatgen.New(
			threatgen.WithRand(seeded(99)),
			threatgen.WithNow(func() time.Time { return now }),
		)

		return g.Generate(20, domain.UserID{})
	}

	a, b := gen(), gen()
	require.Len(t, b, len(a))
	for i := range a {
		// IDs are always fresh; everything sampled must match
		require.Equal(t, a[i].Name, b[i].Name)
		require.Equal(t, a[i].Type, b[i].Type)
		require.Equal(t, a[i].Severity, b[i].Severity)
		require.Equal(t, a[i].FilePath, b[i].FilePath)
		require.Equal(t, a[i].DetectedAt, b[i].DetectedAt)
	}
}

func TestGenerator_FilePathPresenceIsRoughly70Percent(t *testing.T) {
	g := threatgen.New(threatgen.WithRand(seeded(2)))

	const n = 2000
	withPath := 0
	for _, threat := range g.Generate(n, domain.UserID{}) {
		if threat.FilePath != "" {
			withPath++
		}
	}

	ratio := float64(withPath) / n
	require.InDelta(t, 0.7, ratio, 0.05)
}
