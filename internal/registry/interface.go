package registry

import (
	"context"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
)

// Stats is the aggregate snapshot served on the admin surface. Counts are
// read without a transaction, so under concurrent writes the individual
// numbers may be a few records apart.
type Stats struct {
	Users          int64 `json:"totalUsers"`
	Scans          int64 `json:"totalScans"`
	RunningScans   int64 `json:"runningScans"`
	Threats        int64 `json:"totalThreats"`
	ActiveThreats  int64 `json:"activeThreats"`
	CleanedThreats int64 `json:"cleanedThreats"`
}

// Registry is the threat registry: the catalog of detection records
// accumulated by scans, plus the user and aggregate lookups built on the same
// collections.
//
//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	// Threats lists detection records matching the filter, most recently
	// detected first.
	Threats(ctx context.Context, filter storage.ThreatFilter) ([]domain.Threat, error)
	// Threat fetches a single detection record.
	Threat(ctx context.Context, id domain.ThreatID) (*domain.Threat, error)
	// CleanThreat marks a threat cleaned and returns the updated record.
	// Cleaning an already-cleaned threat succeeds without changing anything.
	CleanThreat(ctx context.Context, id domain.ThreatID) (*domain.Threat, error)
	// CreateRandomThreats generates count synthetic threats attributed to
	// ownerID and persists them.
	CreateRandomThreats(ctx context.Context, count int, ownerID domain.UserID) ([]domain.Threat, error)
	// DeleteThreat removes a detection record.
	DeleteThreat(ctx context.Context, id domain.ThreatID) error
	// Stats returns the aggregate snapshot across users, scans and threats.
	Stats(ctx context.Context) (*Stats, error)
	// User fetches a single account.
	User(ctx context.Context, id domain.UserID) (*domain.User, error)
	// Users lists known accounts, newest first.
	Users(ctx context.Context, limit uint) ([]domain.User, error)
}
