package simulator

import (
	"context"
	"time"

	"avconsole/pkg/domain"
)

// CompletionTrigger records what caused a scan to finish.
type CompletionTrigger string

const (
	// TriggerWorker marks completion by the scheduled background job.
	TriggerWorker CompletionTrigger = "worker"
	// TriggerRead marks lazy completion performed during a status read.
	TriggerRead CompletionTrigger = "read"
	// TriggerExpired marks force-completion of a scan that outlived the
	// maximum scan lifetime; expired scans report zero threats.
	TriggerExpired CompletionTrigger = "expired"
)

// ScanView is a scan together with its derived fields, ready for rendering.
// Status and Progress are computed at read time from the record's time bounds
// so they can never disagree with the persisted state.
type ScanView struct {
	domain.Scan

	Status         domain.ScanStatus `json:"status"`
	Progress       int               `json:"progress"`
	DurationMillis int64             `json:"duration"`
}

// Simulator stands in for a real scanning engine. Starting a scan returns
// immediately; a deferred completion job (or a lazy read) finishes it after
// the type's expected duration with randomized results.
//
//go:generate mockgen -package mocksimulator -source=interface.go -destination=mock/mocksimulator.go *
type Simulator interface {
	// StartScan validates the type, persists a running scan and schedules its
	// deferred completion. The caller is never blocked waiting for the scan.
	StartScan(ctx context.Context, typ domain.ScanType, ownerID domain.UserID) (*ScanView, error)
	// ScanStatus returns the scan with derived status/progress/duration. A
	// running scan whose expected duration has elapsed is finalized before
	// being reported; the view never claims COMPLETED ahead of the write.
	ScanStatus(ctx context.Context, id domain.ScanID) (*ScanView, error)
	// OwnerScans lists a user's scans, most recent first.
	OwnerScans(ctx context.Context, ownerID domain.UserID, limit uint) ([]ScanView, error)
	// RecentScans lists scans across all users, most recent first.
	RecentScans(ctx context.Context, limit uint) ([]ScanView, error)
	// DeleteScan removes a scan record.
	DeleteScan(ctx context.Context, id domain.ScanID) error
	// FinishScan performs the one-shot completion of a running scan: it draws
	// the item count and synthetic threats, persists the threats independently
	// and writes the terminal state. Finishing a scan that already completed
	// returns a conflict error and changes nothing.
	FinishScan(ctx context.Context, id domain.ScanID, trigger CompletionTrigger) (*domain.Scan, error)
}

// Clock returns the current time. Injected so tests drive completion by
// advancing a virtual clock instead of sleeping.
type Clock func() time.Time
