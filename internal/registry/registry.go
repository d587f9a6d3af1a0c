// Package registry implements the threat registry: querying and mutating the
// detection records that scans accumulate, seeding synthetic threats outside
// a scan, and the user and aggregate lookups for the admin surface.
package registry

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"avconsole/pkg/domain"
	"avconsole/pkg/logger"
	"avconsole/pkg/metrics"
	"avconsole/pkg/serrors"
	"avconsole/pkg/storage"
	"avconsole/pkg/threatgen"
)

// maxRandomThreats bounds a single seeding request.
const maxRandomThreats = 100

type registry struct {
	strg storage.Storage

	// mu guards gen; the generator's random source is not safe for
	// concurrent use.
	mu  sync.Mutex
	gen *threatgen.Generator
}

// Option customizes the registry.
type Option func(*registry)

// WithGenerator sets the threat generator. Tests pass a seeded one.
func WithGenerator(gen *threatgen.Generator) Option {
	return func(r *registry) { r.gen = gen }
}

// New creates a Registry on top of the given storage gateway.
func New(strg storage.Storage, opts ...Option) Registry {
	r := &registry{
		strg: strg,
		gen:  threatgen.New(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *registry) Threats(
	ctx context.Context,
	filter storage.ThreatFilter,
) ([]domain.Threat, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown threat type %q", filter.Type)
	}

	threats, err := r.strg.Threats(ctx, filter)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not list threats")
	}

	return threats, nil
}

func (r *registry) Threat(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	threat, err := r.strg.ThreatByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load threat")
	}
	if threat == nil {
		return nil, serrors.With(serrors.ErrNotFound, "threat %s not found", id)
	}

	return threat, nil
}

// CleanThreat marks the threat cleaned. The flag is one-directional, so the
// operation is idempotent: repeating it returns the same record.
func (r *registry) CleanThreat(ctx context.Context, id domain.ThreatID) (*domain.Threat, error) {
	before, err := r.Threat(ctx, id)
	if err != nil {
		return nil, err
	}

	threat, err := r.strg.MarkThreatCleaned(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not clean threat")
	}
	if threat == nil {
		return nil, serrors.With(serrors.ErrNotFound, "threat %s not found", id)
	}

	if !before.Cleaned {
		metrics.ThreatsCleaned.Inc()
		logger.Info(ctx, "threat cleaned",
			zap.String("threatId", id.String()),
			zap.String("name", threat.Name))
	}

	return threat, nil
}

func (r *registry) CreateRandomThreats(
	ctx context.Context,
	count int,
	ownerID domain.UserID,
) ([]domain.Threat, error) {
	if count < 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "negative threat count %d", count)
	}
	if count > maxRandomThreats {
		return nil, serrors.With(serrors.ErrBadRequest,
			"threat count %d exceeds the maximum of %d", count, maxRandomThreats)
	}
	if count == 0 {
		return []domain.Threat{}, nil
	}

	r.mu.Lock()
	threats := r.gen.Generate(count, ownerID)
	r.mu.Unlock()

	stored, err := r.strg.StoreThreats(ctx, threats...)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not store threats")
	}

	for _, threat := range stored {
		metrics.ThreatsDetected.WithLabelValues(string(threat.Severity)).Inc()
	}

	return stored, nil
}

func (r *registry) DeleteThreat(ctx context.Context, id domain.ThreatID) error {
	deleted, err := r.strg.DeleteThreat(ctx, id)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not delete threat")
	}
	if !deleted {
		return serrors.With(serrors.ErrNotFound, "threat %s not found", id)
	}

	return nil
}

func (r *registry) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats

	users, err := r.strg.CountUsers(ctx)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not count users")
	}
	stats.Users = users

	stats.Scans, err = r.strg.CountScans(ctx, storage.ScanFilter{})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not count scans")
	}

	running := true
	stats.RunningScans, err = r.strg.CountScans(ctx, storage.ScanFilter{Running: &running})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not count running scans")
	}

	stats.Threats, err = r.strg.CountThreats(ctx, storage.ThreatFilter{})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not count threats")
	}

	cleaned := true
	stats.CleanedThreats, err = r.strg.CountThreats(ctx, storage.ThreatFilter{Cleaned: &cleaned})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not count cleaned threats")
	}
	stats.ActiveThreats = stats.Threats - stats.CleanedThreats

	return &stats, nil
}

func (r *registry) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := r.strg.UserByID(ctx, id)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not load user")
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user %s not found", id)
	}

	return user, nil
}

func (r *registry) Users(ctx context.Context, limit uint) ([]domain.User, error) {
	users, err := r.strg.Users(ctx, limit)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not list users")
	}

	return users, nil
}
