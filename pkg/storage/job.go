package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; args is
// the job payload and opts customizes insertion (schedule time, uniqueness,
// retries). The boolean result reports whether a job was actually inserted;
// false means an equivalent unique job already existed.
//
// When the handle is transactional, the insert participates in the
// surrounding transaction and only becomes visible on commit.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
