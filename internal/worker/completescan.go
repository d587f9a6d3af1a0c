package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"avconsole/internal/simulator"
	"avconsole/pkg/logger"
	"avconsole/pkg/serrors"
)

// CompleteScanWorker finishes scans whose expected duration has elapsed. Jobs
// are scheduled at scan start for the scan's expected end time, so by the time
// Work runs the scan is due.
//
// The completion write is a compare-and-set: when a status read already
// finalized the scan, or the scan was deleted in the meantime, the job has
// nothing left to do and is canceled rather than retried.
type CompleteScanWorker struct {
	river.WorkerDefaults[simulator.CompleteScanJobArgs]

	sim simulator.Simulator
}

// NewCompleteScanWorker constructs a CompleteScanWorker on top of the given
// simulator.
func NewCompleteScanWorker(sim simulator.Simulator) *CompleteScanWorker {
	return &CompleteScanWorker{sim: sim}
}

// Work finishes a single scan.
func (w *CompleteScanWorker) Work(
	ctx context.Context,
	job *river.Job[simulator.CompleteScanJobArgs],
) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("scanId", job.Args.ScanID.String()))

	scan, err := w.sim.FinishScan(ctx, job.Args.ScanID, simulator.TriggerWorker)
	if err != nil {
		if errors.Is(err, serrors.ErrConflict) || errors.Is(err, serrors.ErrNotFound) {
			logger.Debug(ctx, "scan already finished or gone", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "error finishing scan", zap.Error(err))

		return fmt.Errorf("could not finish scan: %w", err)
	}

	logger.Info(ctx, "scan finished",
		zap.String("type", string(scan.Type)),
		zap.Int("threatsFound", len(scan.Threats)))

	return nil
}
