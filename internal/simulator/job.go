package simulator

import (
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"

	"avconsole/pkg/domain"
)

// completeScanMaxAttempts bounds retries of a completion job. A job that
// keeps failing leaves the scan running; callers polling status apply their
// own timeout.
const completeScanMaxAttempts = 3

// CompleteScanJobArgs is the payload of the deferred work that finishes a
// scan. It is scheduled at scan start to fire once the scan type's expected
// duration has elapsed.
type CompleteScanJobArgs struct {
	// ScanID identifies the scan to finish. It is the uniqueness key: at most
	// one live completion job exists per scan.
	ScanID domain.ScanID `json:"scanId" river:"unique"`
}

// Kind returns the job kind used to register and dispatch the completion worker.
func (args CompleteScanJobArgs) Kind() string { return "CompleteScanJob" }

// InsertOpts bounds retries and deduplicates completion jobs per scan. The
// schedule time is per-insert and set by the caller.
func (args CompleteScanJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: completeScanMaxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
