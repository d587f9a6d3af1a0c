package simulator

import (
	"time"

	"avconsole/pkg/domain"
)

// Profile is the fixed simulation shape of one scan type: how long the scan
// pretends to run, how many items it claims to inspect, and how many
// synthetic threats it may surface. The table is not user-configurable.
type Profile struct {
	// ExpectedDuration is how long the scan runs before it is considered done.
	ExpectedDuration time.Duration
	// MinItems and MaxItems bound the reported item count (inclusive).
	MinItems int
	MaxItems int
	// MaxThreats caps the number of synthetic threats the scan may attach.
	MaxThreats int
}

// defaultProfile covers APP, CUSTOM and SYSTEM scans.
var defaultProfile = Profile{ //nolint: gochecknoglobals
	ExpectedDuration: 10 * time.Second,
	MinItems:         100,
	MaxItems:         300,
	MaxThreats:       4,
}

var profiles = map[domain.ScanType]Profile{ //nolint: gochecknoglobals
	domain.ScanTypeQuick: {
		ExpectedDuration: 5 * time.Second,
		MinItems:         50,
		MaxItems:         150,
		MaxThreats:       2,
	},
	domain.ScanTypeFull: {
		ExpectedDuration: 15 * time.Second,
		MinItems:         200,
		MaxItems:         500,
		MaxThreats:       5,
	},
	domain.ScanTypeWifi: {
		ExpectedDuration: 8 * time.Second,
		MinItems:         20,
		MaxItems:         50,
		MaxThreats:       3,
	},
	domain.ScanTypeQR: {
		ExpectedDuration: 3 * time.Second,
		MinItems:         1,
		MaxItems:         1,
		MaxThreats:       1,
	},
	domain.ScanTypeApp:    defaultProfile,
	domain.ScanTypeCustom: defaultProfile,
	domain.ScanTypeSystem: defaultProfile,
}

// ProfileFor returns the simulation profile for the given scan type. Unknown
// types fall back to the default profile; validation of user input happens
// before this point.
func ProfileFor(typ domain.ScanType) Profile {
	if p, ok := profiles[typ]; ok {
		return p
	}

	return defaultProfile
}
