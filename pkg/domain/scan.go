package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrScanCompleted is returned when a completion is attempted on a scan that
// has already reached its terminal state. The transition is one-shot.
var ErrScanCompleted = errors.New("scan already completed")

// ScanID uniquely identifies a scan.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanID uuid.UUID

// NewScanID returns a freshly generated scan ID.
func NewScanID() ScanID { return ScanID(uuid.New()) }

// ParseScanID parses a scan ID from its string form.
func ParseScanID(s string) (ScanID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ScanID{}, err //nolint: wrapcheck
	}

	return ScanID(id), nil
}

func (id ScanID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form for JSON and text codecs.
func (id ScanID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText parses the ID from canonical UUID form.
func (id *ScanID) UnmarshalText(data []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(data); err != nil {
		return err //nolint: wrapcheck
	}
	*id = ScanID(u)

	return nil
}

// ScanType identifies which kind of scan was requested.
type ScanType string

const (
	ScanTypeQuick  ScanType = "QUICK"
	ScanTypeFull   ScanType = "FULL"
	ScanTypeWifi   ScanType = "WIFI"
	ScanTypeQR     ScanType = "QR"
	ScanTypeApp    ScanType = "APP"
	ScanTypeCustom ScanType = "CUSTOM"
	ScanTypeSystem ScanType = "SYSTEM"
)

// ScanTypes lists every known scan type.
func ScanTypes() []ScanType {
	return []ScanType{
		ScanTypeQuick,
		ScanTypeFull,
		ScanTypeWifi,
		ScanTypeQR,
		ScanTypeApp,
		ScanTypeCustom,
		ScanTypeSystem,
	}
}

// Valid reports whether t is one of the known scan types.
func (t ScanType) Valid() bool {
	for _, known := range ScanTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// ScanStatus represents the lifecycle state of a scan. It is never stored;
// it is always derived from the presence of EndTime.
type ScanStatus string

const (
	// ScanStatusRunning indicates the scan has started and has not finished yet.
	ScanStatusRunning ScanStatus = "RUNNING"
	// ScanStatusCompleted indicates the scan finished and its results are final.
	ScanStatusCompleted ScanStatus = "COMPLETED"
)

// Scan represents a single invocation of the simulated scanning engine and
// its outcome. A scan starts RUNNING and transitions exactly once to
// COMPLETED when EndTime is set; status, duration and progress are derived
// from the stored time bounds rather than kept as separate fields, so they
// can never drift out of sync with the record.
type Scan struct {
	// ID is the unique identifier of the scan.
	ID ScanID `json:"id"`
	// OwnerID is the user the scan belongs to. A zero value means the scan
	// was system-initiated.
	OwnerID UserID `json:"userId,omitzero"`

	// Type is the kind of scan requested.
	Type ScanType `json:"type"`

	// StartTime is when the scan was started.
	StartTime time.Time `json:"startTime"`
	// EndTime is when the scan finished. The zero value means the scan is
	// still running. Once set it is never cleared and never precedes StartTime.
	EndTime time.Time `json:"endTime,omitzero"`

	// TotalScanned is the number of items inspected. It stays 0 while the
	// scan is running and is set by Complete.
	TotalScanned int `json:"totalScanned"`
	// Threats holds the threats discovered by the scan, embedded as values.
	// Empty until completion. The same threats are persisted independently
	// for cross-scan querying.
	Threats []Threat `json:"threatsFound"`
}

// NewScan allocates a running scan of the given type. ownerID may be zero for
// system-initiated scans.
func NewScan(typ ScanType, ownerID UserID, now time.Time) Scan {
	return Scan{
		ID:        NewScanID(),
		OwnerID:   ownerID,
		Type:      typ,
		StartTime: now,
	}
}

// Status derives the lifecycle state from the presence of EndTime.
func (s *Scan) Status() ScanStatus {
	if s.EndTime.IsZero() {
		return ScanStatusRunning
	}

	return ScanStatusCompleted
}

// Duration returns how long the scan has been running, or took to complete.
// It is never negative and is non-decreasing while the scan runs.
func (s *Scan) Duration(now time.Time) time.Duration {
	end := s.EndTime
	if end.IsZero() {
		end = now
	}
	if end.Before(s.StartTime) {
		return 0
	}

	return end.Sub(s.StartTime)
}

// Progress estimates completion as an integer percentage. A completed scan is
// exactly 100. A running scan reports elapsed time against the expected
// duration, capped at 99 so the scan never looks finished before the
// completion write happened. Sampling at a later now never yields a smaller
// value.
func (s *Scan) Progress(now time.Time, expected time.Duration) int {
	if s.Status() == ScanStatusCompleted {
		return 100
	}
	if expected <= 0 {
		return 99
	}

	elapsed := s.Duration(now)
	pct := int(elapsed * 100 / expected)
	if pct > 99 {
		pct = 99
	}
	if pct < 0 {
		pct = 0
	}

	return pct
}

// Complete transitions the scan to its terminal state, recording the item
// count and the discovered threats. Completing an already-completed scan
// returns ErrScanCompleted and leaves the record untouched.
func (s *Scan) Complete(now time.Time, totalScanned int, threats []Threat) error {
	if !s.EndTime.IsZero() {
		return ErrScanCompleted
	}
	if now.Before(s.StartTime) {
		now = s.StartTime
	}

	s.EndTime = now
	s.TotalScanned = totalScanned
	s.Threats = threats

	return nil
}
