package storage

import (
	"context"

	"avconsole/pkg/domain"
)

// ThreatFilter selects threats for listing and counting. Zero-valued fields
// match everything.
type ThreatFilter struct {
	// OwnerID restricts to one owner when non-zero.
	OwnerID domain.UserID
	// Type restricts to one threat type when non-empty.
	Type domain.ThreatType
	// Cleaned restricts to cleaned (true) or active (false) threats when set.
	Cleaned *bool
}

// ThreatStorage defines the operations on the threats collection.
type ThreatStorage interface {
	// StoreThreats upserts one or more threats keyed by ID and returns the
	// stored records.
	StoreThreats(ctx context.Context, threats ...domain.Threat) ([]domain.Threat, error)
	// ThreatByID fetches a threat by ID. Returns nil when not found.
	ThreatByID(ctx context.Context, id domain.ThreatID) (*domain.Threat, error)
	// Threats returns threats matching the filter, most recently detected
	// first.
	Threats(ctx context.Context, filter ThreatFilter) ([]domain.Threat, error)
	// MarkThreatCleaned sets the cleaned flag on a threat and returns the
	// updated record, or nil when the threat does not exist. The flag is
	// one-directional; marking an already-cleaned threat is a no-op that
	// still returns the record.
	MarkThreatCleaned(ctx context.Context, id domain.ThreatID) (*domain.Threat, error)
	// DeleteThreat removes a threat. Reports whether a record was deleted.
	DeleteThreat(ctx context.Context, id domain.ThreatID) (bool, error)
	// CountThreats counts threats matching the filter.
	CountThreats(ctx context.Context, filter ThreatFilter) (int64, error)
}
