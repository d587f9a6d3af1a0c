// Package storage defines the persistence gateway the console's domain logic
// depends on. It abstracts three logical collections (users, threats, scans)
// plus background job insertion, so different backends (PostgreSQL, in-memory)
// can provide concrete implementations. Gateways are always passed in
// explicitly; there is no package-level database handle.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is a composite interface covering every collection the console
// reads and writes. Implementations typically embed the narrower per-collection
// interfaces.
type AllStorage interface {
	ScanStorage
	ThreatStorage
	UserStorage
	JobStorage
}

// TxStorage is a storage handle bound to a transaction. It exposes the same
// capabilities as AllStorage plus commit/rollback. Implementations become
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle with the ability to start
// transactions and a Close lifecycle owned by the process entry point.
type Storage interface {
	AllStorage

	// Close releases resources held by the implementation (e.g. the underlying
	// connection pool). The instance must not be used afterwards.
	Close() error

	// Begin starts a new transaction and returns a TxStorage scoped to it.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits on success
	// or rolls back when cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
