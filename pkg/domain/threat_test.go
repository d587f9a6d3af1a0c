package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"avconsole/pkg/domain"
)

func TestThreat_CleanIsIdempotent(t *testing.T) {
	threat := domain.Threat{
		ID:       domain.NewThreatID(),
		Name:     "Spyware.AndroidOS.Tracker",
		Type:     domain.ThreatTypeSpyware,
		Severity: domain.SeverityHigh,
	}

	require.False(t, threat.Cleaned)

	threat.Clean()
	require.True(t, threat.Cleaned)

	// second clean stays true, no error path exists
	threat.Clean()
	require.True(t, threat.Cleaned)
}

func TestThreatType_Valid(t *testing.T) {
	for _, typ := range domain.ThreatTypes() {
		require.True(t, typ.Valid())
	}
	require.False(t, domain.ThreatType("MALWARE").Valid())
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range domain.Severities() {
		require.True(t, s.Valid())
	}
	require.False(t, domain.Severity("CRITICAL").Valid())
}
