package storage

import (
	"context"
	"time"

	"avconsole/pkg/domain"
)

// ScanCompletion carries the terminal values written when a scan finishes.
type ScanCompletion struct {
	// EndTime is the completion timestamp. Backends must never write an
	// EndTime earlier than the stored StartTime.
	EndTime time.Time
	// TotalScanned is the final item count.
	TotalScanned int
	// Threats are embedded into the scan record as values.
	Threats []domain.Threat
}

// ScanFilter selects scans for counting. Zero-valued fields match everything.
type ScanFilter struct {
	// OwnerID restricts to one owner when non-zero.
	OwnerID domain.UserID
	// Type restricts to one scan type when non-empty.
	Type domain.ScanType
	// Running restricts to running (true) or completed (false) scans when set.
	Running *bool
}

// ScanStorage defines the operations on the scans collection. Lookups that
// find nothing return nil without an error; callers translate that to their
// own not-found semantics.
type ScanStorage interface {
	// StoreScans upserts one or more scans keyed by ID and returns the stored
	// records as they exist in the backend.
	StoreScans(ctx context.Context, scans ...domain.Scan) ([]domain.Scan, error)
	// ScanByID fetches a scan by ID. Returns nil when not found.
	ScanByID(ctx context.Context, id domain.ScanID) (*domain.Scan, error)
	// OwnerScans returns up to limit scans belonging to ownerID, most recently
	// started first.
	OwnerScans(ctx context.Context, ownerID domain.UserID, limit uint) ([]domain.Scan, error)
	// RecentScans returns up to limit scans across all owners, most recently
	// started first.
	RecentScans(ctx context.Context, limit uint) ([]domain.Scan, error)
	// CompleteScan atomically finalizes a still-running scan. The write only
	// happens when the stored record has no end time yet (compare-and-set), so
	// at most one completion per scan ever succeeds. Returns the completed
	// record, or nil when no running scan with that ID exists, either because
	// the ID is unknown or because another writer completed it first.
	CompleteScan(ctx context.Context, id domain.ScanID, completion ScanCompletion) (*domain.Scan, error)
	// DeleteScan removes a scan. Reports whether a record was deleted.
	DeleteScan(ctx context.Context, id domain.ScanID) (bool, error)
	// CountScans counts scans matching the filter.
	CountScans(ctx context.Context, filter ScanFilter) (int64, error)
}
