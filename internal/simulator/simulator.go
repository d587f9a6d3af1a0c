// Package simulator implements the simulated scanning engine. Scans start
// instantly and finish asynchronously: a deferred completion job is scheduled
// at start, and status reads finalize overdue scans themselves so callers
// never observe a scan that should have ended but did not. Each scan type has
// a fixed profile controlling duration, item counts and threat ceilings.
package simulator

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"

	"avconsole/pkg/domain"
	"avconsole/pkg/logger"
	"avconsole/pkg/metrics"
	"avconsole/pkg/serrors"
	"avconsole/pkg/storage"
	"avconsole/pkg/threatgen"
)

// Options configures the simulator.
type Options struct {
	// MaxScanLifetime bounds how long a scan may stay RUNNING. A scan found
	// past this bound is force-completed with empty results. Zero disables
	// the bound.
	MaxScanLifetime time.Duration
}

type simulator struct {
	strg    storage.Storage
	options Options

	now Clock

	// mu guards rnd and gen; rand.Rand is not safe for concurrent use and
	// completion jobs run on multiple goroutines.
	mu  sync.Mutex
	rnd *rand.Rand
	gen *threatgen.Generator
}

// Option customizes the simulator, mainly for tests.
type Option func(*simulator)

// WithNow sets the clock.
func WithNow(now Clock) Option {
	return func(s *simulator) { s.now = now }
}

// WithRand sets the random source used for item and threat count draws.
func WithRand(rnd *rand.Rand) Option {
	return func(s *simulator) { s.rnd = rnd }
}

// WithGenerator sets the threat generator.
func WithGenerator(gen *threatgen.Generator) Option {
	return func(s *simulator) { s.gen = gen }
}

// New creates a new Simulator on top of the given storage gateway.
func New(strg storage.Storage, options Options, opts ...Option) Simulator {
	s := &simulator{
		strg:    strg,
		options: options,
		now:     time.Now,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec
		gen:     threatgen.New(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *simulator) view(scan domain.Scan) *ScanView {
	now := s.now()
	profile := ProfileFor(scan.Type)

	return &ScanView{
		Scan:           scan,
		Status:         scan.Status(),
		Progress:       scan.Progress(now, profile.ExpectedDuration),
		DurationMillis: scan.Duration(now).Milliseconds(),
	}
}

func (s *simulator) views(scans []domain.Scan) []ScanView {
	views := make([]ScanView, 0, len(scans))
	for _, scan := range scans {
		views = append(views, *s.view(scan))
	}

	return views
}

// StartScan persists a new running scan and, in the same transaction,
// schedules its completion job for the moment the type's expected duration
// elapses.
func (s *simulator) StartScan(
	ctx context.Context,
	typ domain.ScanType,
	ownerID domain.UserID,
) (*ScanView, error) {
	if !typ.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown scan type %q", typ)
	}

	scan := domain.NewScan(typ, ownerID, s.now().UTC())
	profile := ProfileFor(typ)

	err := s.strg.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreScans(ctx, scan)
		if err != nil {
			return serrors.Wrap(serrors.ErrUnavailable, err, "could not store scan")
		}
		scan = stored[0]

		_, err = tx.AddJob(ctx, CompleteScanJobArgs{ScanID: scan.ID}, &river.InsertOpts{
			ScheduledAt: scan.StartTime.Add(profile.ExpectedDuration),
		})
		if err != nil {
			return serrors.Wrap(serrors.ErrUnavailable, err, "could not schedule scan completion")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ScansStarted.WithLabelValues(string(typ)).Inc()
	logger.Info(ctx, "scan started",
		zap.String("scanId", scan.ID.String()),
		zap.String("type", string(typ)),
		zap.Duration("expectedDuration", profile.ExpectedDuration))

	return s.view(scan), nil
}

// ScanStatus returns the scan with derived fields. An overdue running scan is
// finalized first, so a client polling status sees COMPLETED as soon as the
// expected duration has elapsed even if the background job has not fired yet.
func (s *simulator) ScanStatus(ctx context.Context, id domain.ScanID) (*ScanView, error) {
	scan, err := s.strg.ScanByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load scan")
	}
	if scan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan %s not found", id)
	}

	if scan.Status() == domain.ScanStatusRunning {
		elapsed := s.now().Sub(scan.StartTime)
		if elapsed >= ProfileFor(scan.Type).ExpectedDuration {
			completed, err := s.FinishScan(ctx, id, TriggerRead)
			switch {
			case err == nil:
				scan = completed
			case errors.Is(err, serrors.ErrConflict):
				// Another finisher won the race; reload the terminal record.
				scan, err = s.strg.ScanByID(ctx, id)
				if err != nil {
					return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reload scan")
				}
				if scan == nil {
					return nil, serrors.With(serrors.ErrNotFound, "scan %s not found", id)
				}
			default:
				return nil, err
			}
		}
	}

	return s.view(*scan), nil
}

func (s *simulator) OwnerScans(
	ctx context.Context,
	ownerID domain.UserID,
	limit uint,
) ([]ScanView, error) {
	scans, err := s.strg.OwnerScans(ctx, ownerID, limit)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not list scans")
	}

	return s.views(scans), nil
}

func (s *simulator) RecentScans(ctx context.Context, limit uint) ([]ScanView, error) {
	scans, err := s.strg.RecentScans(ctx, limit)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not list scans")
	}

	return s.views(scans), nil
}

func (s *simulator) DeleteScan(ctx context.Context, id domain.ScanID) error {
	deleted, err := s.strg.DeleteScan(ctx, id)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not delete scan")
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "scan %s not found", id)
	}

	return nil
}

// draw samples the final item count and synthetic threats for a scan.
func (s *simulator) draw(profile Profile, ownerID domain.UserID) (int, []domain.Threat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	totalScanned := profile.MinItems + s.rnd.IntN(profile.MaxItems-profile.MinItems+1)
	threats := s.gen.Generate(s.rnd.IntN(profile.MaxThreats+1), ownerID)

	return totalScanned, threats
}

// FinishScan performs the one-shot completion. The terminal write is a
// compare-and-set on "no end time yet", so when the scheduled job and a lazy
// read race, exactly one of them lands and the other gets a conflict.
func (s *simulator) FinishScan(
	ctx context.Context,
	id domain.ScanID,
	trigger CompletionTrigger,
) (*domain.Scan, error) {
	scan, err := s.strg.ScanByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load scan")
	}
	if scan == nil {
		return nil, serrors.With(serrors.ErrNotFound, "scan %s not found", id)
	}
	if scan.Status() == domain.ScanStatusCompleted {
		return nil, serrors.With(serrors.ErrConflict, "scan %s already completed", id)
	}

	profile := ProfileFor(scan.Type)

	// A scan past its maximum lifetime is considered lost: it is closed with
	// empty results instead of pretending it produced any.
	if lifetime := s.options.MaxScanLifetime; lifetime > 0 &&
		s.now().Sub(scan.StartTime) >= lifetime {
		trigger = TriggerExpired
	}

	completion := storage.ScanCompletion{
		EndTime: scan.StartTime.Add(profile.ExpectedDuration),
		Threats: []domain.Threat{},
	}
	if trigger != TriggerExpired {
		completion.TotalScanned, completion.Threats = s.draw(profile, scan.OwnerID)
	}

	var completed *domain.Scan
	err = s.strg.WithTx(ctx, func(tx storage.AllStorage) error {
		if len(completion.Threats) > 0 {
			if _, err := tx.StoreThreats(ctx, completion.Threats...); err != nil {
				return serrors.Wrap(serrors.ErrUnavailable, err, "could not store threats")
			}
		}

		var err error
		completed, err = tx.CompleteScan(ctx, id, completion)
		if err != nil {
			return serrors.Wrap(serrors.ErrUnavailable, err, "could not complete scan")
		}
		if completed == nil {
			return serrors.With(serrors.ErrConflict, "scan %s already completed", id)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.observeCompletion(ctx, completed, trigger)

	return completed, nil
}

func (s *simulator) observeCompletion(
	ctx context.Context,
	scan *domain.Scan,
	trigger CompletionTrigger,
) {
	typ := string(scan.Type)
	metrics.ScansCompleted.WithLabelValues(typ, string(trigger)).Inc()
	metrics.ScanDurationSeconds.WithLabelValues(typ).
		Observe(scan.Duration(s.now()).Seconds())
	for _, threat := range scan.Threats {
		metrics.ThreatsDetected.WithLabelValues(string(threat.Severity)).Inc()
	}

	logger.Info(ctx, "scan completed",
		zap.String("scanId", scan.ID.String()),
		zap.String("type", typ),
		zap.String("trigger", string(trigger)),
		zap.Int("totalScanned", scan.TotalScanned),
		zap.Int("threatsFound", len(scan.Threats)))
}
