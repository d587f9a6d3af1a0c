package simulator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"avconsole/internal/simulator"
	"avconsole/pkg/domain"
)

func TestProfileFor(t *testing.T) {
	t.Parallel()

	for _, typ := range domain.ScanTypes() {
		profile := simulator.ProfileFor(typ)
		require.Positive(t, profile.ExpectedDuration, typ)
		require.Positive(t, profile.MinItems, typ)
		require.GreaterOrEqual(t, profile.MaxItems, profile.MinItems, typ)
		require.Positive(t, profile.MaxThreats, typ)
	}

	// QR is a single-item scan
	qr := simulator.ProfileFor(domain.ScanTypeQR)
	require.Equal(t, 1, qr.MinItems)
	require.Equal(t, 1, qr.MaxItems)

	// unknown types fall back to the default profile
	require.Equal(t,
		simulator.ProfileFor(domain.ScanTypeApp),
		simulator.ProfileFor(domain.ScanType("UNKNOWN")))
}
