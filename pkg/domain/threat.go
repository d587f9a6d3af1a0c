package domain

import (
	"time"

	"github.com/google/uuid"
)

// ThreatID uniquely identifies a detected threat.
type ThreatID uuid.UUID

// NewThreatID returns a freshly generated threat ID.
func NewThreatID() ThreatID { return ThreatID(uuid.New()) }

// ParseThreatID parses a threat ID from its string form.
func ParseThreatID(s string) (ThreatID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ThreatID{}, err //nolint: wrapcheck
	}

	return ThreatID(id), nil
}

func (id ThreatID) String() string { return uuid.UUID(id).String() }

// MarshalText renders the ID in canonical UUID form for JSON and text codecs.
func (id ThreatID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText parses the ID from canonical UUID form.
func (id *ThreatID) UnmarshalText(data []byte) error {
	var u uuid.UUID
	if err := u.UnmarshalText(data); err != nil {
		return err //nolint: wrapcheck
	}
	*id = ThreatID(u)

	return nil
}

// ThreatType classifies a detected threat.
type ThreatType string

const (
	ThreatTypeTrojan     ThreatType = "TROJAN"
	ThreatTypeVirus      ThreatType = "VIRUS"
	ThreatTypeSpyware    ThreatType = "SPYWARE"
	ThreatTypeAdware     ThreatType = "ADWARE"
	ThreatTypeRansomware ThreatType = "RANSOMWARE"
	ThreatTypeWorm       ThreatType = "WORM"
	ThreatTypeRootkit    ThreatType = "ROOTKIT"
	ThreatTypeKeylogger  ThreatType = "KEYLOGGER"
	ThreatTypeBackdoor   ThreatType = "BACKDOOR"
	ThreatTypePUP        ThreatType = "PUP"
	ThreatTypeBotnet     ThreatType = "BOTNET"
)

// ThreatTypes lists every known threat type.
func ThreatTypes() []ThreatType {
	return []ThreatType{
		ThreatTypeTrojan,
		ThreatTypeVirus,
		ThreatTypeSpyware,
		ThreatTypeAdware,
		ThreatTypeRansomware,
		ThreatTypeWorm,
		ThreatTypeRootkit,
		ThreatTypeKeylogger,
		ThreatTypeBackdoor,
		ThreatTypePUP,
		ThreatTypeBotnet,
	}
}

// Valid reports whether t is one of the known threat types.
func (t ThreatType) Valid() bool {
	for _, known := range ThreatTypes() {
		if t == known {
			return true
		}
	}

	return false
}

// Severity grades how dangerous a threat is.
type Severity string

const (
	SeverityLow    Severity = "LOW"
	SeverityMedium Severity = "MEDIUM"
	SeverityHigh   Severity = "HIGH"
)

// Severities lists every known severity grade.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh}
}

// Valid reports whether s is one of the known severity grades.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}

	return false
}

// Threat is one simulated malicious-software detection record.
type Threat struct {
	// ID is the unique identifier of the threat.
	ID ThreatID `json:"id"`
	// OwnerID attributes the threat to a user. A zero value means the threat
	// is system-wide.
	OwnerID UserID `json:"userId,omitzero"`

	// Name is the display name, e.g. "Trojan.AndroidOS.Agent".
	Name string `json:"name"`
	// Type classifies the threat.
	Type ThreatType `json:"type"`
	// Description is a human-readable explanation of the threat.
	Description string `json:"description"`
	// Severity grades the threat.
	Severity Severity `json:"severity"`
	// FilePath is the path the threat was found at. Empty when the detection
	// has no associated file.
	FilePath string `json:"filePath,omitempty"`

	// Cleaned reports whether the threat has been cleaned. Cleaning is
	// one-directional: once set it is never reset.
	Cleaned bool `json:"isCleaned"`
	// DetectedAt is the time the threat was detected.
	DetectedAt time.Time `json:"detectionDate"`
}

// Clean marks the threat as cleaned. Cleaning an already-cleaned threat is a
// no-op; the call always succeeds.
func (t *Threat) Clean() {
	t.Cleaned = true
}
