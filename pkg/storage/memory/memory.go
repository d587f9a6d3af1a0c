// Package memory implements the storage gateway on plain maps guarded by a
// mutex. It backs unit tests and local development where a database is not
// worth the ceremony. Job inserts are recorded for inspection instead of
// being dispatched to a real queue.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/riverqueue/river"

	"avconsole/pkg/domain"
	"avconsole/pkg/storage"
)

// Job is one recorded job insert.
type Job struct {
	Args river.JobArgs
	Opts *river.InsertOpts
}

// Memory implements storage.Storage with in-process maps. All operations are
// safe for concurrent use. Transactions are advisory: Begin returns a handle
// sharing the same state, and WithTx simply runs the callback; there is no
// rollback isolation.
type Memory struct {
	mu sync.RWMutex

	scans   map[domain.ScanID]domain.Scan
	threats map[domain.ThreatID]domain.Threat
	users   map[domain.UserID]domain.User
	jobs    []Job
}

// New creates an empty in-memory store.
func New() *Memory {
	return &Memory{
		scans:   make(map[domain.ScanID]domain.Scan),
		threats: make(map[domain.ThreatID]domain.Threat),
		users:   make(map[domain.UserID]domain.User),
	}
}

func (m *Memory) Close() error { return nil }

// Begin returns a handle over the same state. Commit and Rollback are no-ops.
func (m *Memory) Begin(context.Context) (storage.TxStorage, error) {
	return &memTx{Memory: m}, nil
}

func (m *Memory) WithTx(_ context.Context, cb func(storage storage.AllStorage) error) error {
	return cb(m)
}

type memTx struct {
	*Memory
}

func (t *memTx) Commit() error   { return nil }
func (t *memTx) Rollback() error { return nil }

func (m *Memory) StoreScans(_ context.Context, scans ...domain.Scan) ([]domain.Scan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Scan, 0, len(scans))
	for _, scan := range scans {
		m.scans[scan.ID] = cloneScan(scan)
		out = append(out, cloneScan(scan))
	}

	return out, nil
}

func (m *Memory) ScanByID(_ context.Context, id domain.ScanID) (*domain.Scan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scan, ok := m.scans[id]
	if !ok {
		return nil, nil
	}
	scan = cloneScan(scan)

	return &scan, nil
}

func (m *Memory) OwnerScans(_ context.Context, ownerID domain.UserID, limit uint) ([]domain.Scan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var scans []domain.Scan
	for _, scan := range m.scans {
		if scan.OwnerID == ownerID {
			scans = append(scans, cloneScan(scan))
		}
	}

	return sortAndLimitScans(scans, limit), nil
}

func (m *Memory) RecentScans(_ context.Context, limit uint) ([]domain.Scan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	scans := make([]domain.Scan, 0, len(m.scans))
	for _, scan := range m.scans {
		scans = append(scans, cloneScan(scan))
	}

	return sortAndLimitScans(scans, limit), nil
}

func (m *Memory) CompleteScan(_ context.Context,
	id domain.ScanID,
	completion storage.ScanCompletion) (*domain.Scan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	scan, ok := m.scans[id]
	if !ok || !scan.EndTime.IsZero() {
		// unknown ID or lost the completion race
		return nil, nil
	}

	end := completion.EndTime
	if end.Before(scan.StartTime) {
		end = scan.StartTime
	}
	scan.EndTime = end
	scan.TotalScanned = completion.TotalScanned
	scan.Threats = append([]domain.Threat{}, completion.Threats...)
	m.scans[id] = cloneScan(scan)

	scan = cloneScan(scan)

	return &scan, nil
}

func (m *Memory) DeleteScan(_ context.Context, id domain.ScanID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.scans[id]; !ok {
		return false, nil
	}
	delete(m.scans, id)

	return true, nil
}

func (m *Memory) CountScans(_ context.Context, filter storage.ScanFilter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, scan := range m.scans {
		if matchScan(scan, filter) {
			count++
		}
	}

	return count, nil
}

func (m *Memory) StoreThreats(_ context.Context, threats ...domain.Threat) ([]domain.Threat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Threat, 0, len(threats))
	for _, threat := range threats {
		if existing, ok := m.threats[threat.ID]; ok && existing.Cleaned {
			// cleaning is one-directional, an upsert cannot undo it
			threat.Cleaned = true
		}
		m.threats[threat.ID] = threat
		out = append(out, threat)
	}

	return out, nil
}

func (m *Memory) ThreatByID(_ context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	threat, ok := m.threats[id]
	if !ok {
		return nil, nil
	}

	return &threat, nil
}

func (m *Memory) Threats(_ context.Context, filter storage.ThreatFilter) ([]domain.Threat, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var threats []domain.Threat
	for _, threat := range m.threats {
		if matchThreat(threat, filter) {
			threats = append(threats, threat)
		}
	}
	sort.Slice(threats, func(i, j int) bool {
		if !threats[i].DetectedAt.Equal(threats[j].DetectedAt) {
			return threats[i].DetectedAt.After(threats[j].DetectedAt)
		}

		return threats[i].ID.String() > threats[j].ID.String()
	})

	return threats, nil
}

func (m *Memory) MarkThreatCleaned(_ context.Context, id domain.ThreatID) (*domain.Threat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	threat, ok := m.threats[id]
	if !ok {
		return nil, nil
	}
	threat.Cleaned = true
	m.threats[id] = threat

	return &threat, nil
}

func (m *Memory) DeleteThreat(_ context.Context, id domain.ThreatID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.threats[id]; !ok {
		return false, nil
	}
	delete(m.threats, id)

	return true, nil
}

func (m *Memory) CountThreats(_ context.Context, filter storage.ThreatFilter) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, threat := range m.threats {
		if matchThreat(threat, filter) {
			count++
		}
	}

	return count, nil
}

func (m *Memory) StoreUser(_ context.Context, user domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m.users[user.ID] = user

	return &user, nil
}

func (m *Memory) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}

	return &user, nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			return &user, nil
		}
	}

	return nil, nil
}

func (m *Memory) Users(_ context.Context, limit uint) ([]domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]domain.User, 0, len(m.users))
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}

		return users[i].ID.String() > users[j].ID.String()
	})
	if limit > 0 && uint(len(users)) > limit {
		users = users[:limit]
	}

	return users, nil
}

func (m *Memory) CountUsers(context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.users)), nil
}

// AddJob records the insert and reports it as added. No job ever runs.
func (m *Memory) AddJob(_ context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.jobs = append(m.jobs, Job{Args: args, Opts: opts})

	return true, nil
}

// Jobs returns every recorded job insert, oldest first.
func (m *Memory) Jobs() []Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]Job{}, m.jobs...)
}

func cloneScan(scan domain.Scan) domain.Scan {
	scan.Threats = append([]domain.Threat{}, scan.Threats...)

	return scan
}

func sortAndLimitScans(scans []domain.Scan, limit uint) []domain.Scan {
	sort.Slice(scans, func(i, j int) bool {
		if !scans[i].StartTime.Equal(scans[j].StartTime) {
			return scans[i].StartTime.After(scans[j].StartTime)
		}

		return scans[i].ID.String() > scans[j].ID.String()
	})
	if limit > 0 && uint(len(scans)) > limit {
		scans = scans[:limit]
	}
	if scans == nil {
		scans = []domain.Scan{}
	}

	return scans
}

func matchScan(scan domain.Scan, filter storage.ScanFilter) bool {
	if !filter.OwnerID.IsZero() && scan.OwnerID != filter.OwnerID {
		return false
	}
	if filter.Type != "" && scan.Type != filter.Type {
		return false
	}
	if filter.Running != nil && (scan.EndTime.IsZero() != *filter.Running) {
		return false
	}

	return true
}

func matchThreat(threat domain.Threat, filter storage.ThreatFilter) bool {
	if !filter.OwnerID.IsZero() && threat.OwnerID != filter.OwnerID {
		return false
	}
	if filter.Type != "" && threat.Type != filter.Type {
		return false
	}
	if filter.Cleaned != nil && threat.Cleaned != *filter.Cleaned {
		return false
	}

	return true
}
