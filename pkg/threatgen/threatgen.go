// Package threatgen manufactures synthetic threat records for the simulated
// scanning engine. It is pure data construction: no I/O, no persistence, and
// all randomness flows through an injected source so callers can generate
// deterministic fixtures.
package threatgen

import (
	"math/rand/v2"
	"time"

	"avconsole/pkg/domain"
)

// detectionWindow is how far into the past a generated detection date may fall.
const detectionWindow = 24 * time.Hour

// filePathChance is the percent chance a generated threat carries a file path.
const filePathChance = 70

// Generator produces random threats from the built-in catalog.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

// Option customizes a Generator.
type Option func(*Generator)

// WithRand sets the random source. Tests pass a seeded source to get
// reproducible output.
func WithRand(rnd *rand.Rand) Option {
	return func(g *Generator) { g.rnd = rnd }
}

// WithNow sets the clock used for detection dates.
func WithNow(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New creates a Generator. Without options it self-seeds and uses the wall
// clock.
func New(opts ...Option) *Generator {
	g := &Generator{
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint: gosec
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate returns count freshly sampled threats, each attributed to ownerID
// (zero ownerID leaves them system-wide). Every threat has a valid type and
// severity, is not cleaned, and a detection date within the last 24 hours.
// A count of zero or less yields an empty slice.
func (g *Generator) Generate(count int, ownerID domain.UserID) []domain.Threat {
	if count <= 0 {
		return []domain.Threat{}
	}

	now := g.now()
	threats := make([]domain.Threat, 0, count)
	for range count {
		tpl := catalog[g.rnd.IntN(len(catalog))]

		var filePath string
		if g.rnd.IntN(100) < filePathChance {
			filePath = filePaths[g.rnd.IntN(len(filePaths))]
		}

		threats = append(threats, domain.Threat{
			ID:          domain.NewThreatID(),
			OwnerID:     ownerID,
			Name:        tpl.family + ".AndroidOS." + tpl.suffixes[g.rnd.IntN(len(tpl.suffixes))],
			Type:        tpl.typ,
			Description: tpl.description,
			Severity:    tpl.severity,
			FilePath:    filePath,
			DetectedAt:  now.Add(-time.Duration(g.rnd.Int64N(int64(detectionWindow)))),
		})
	}

	return threats
}
