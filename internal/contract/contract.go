// Package contract holds shared configuration, interfaces and helpers that
// the engine, the writers and the persistence layer agree on.
package contract

import "github.com/guildtools/raidscope/schema"

// SnapshotStore persists resolution runs and their per-player rows.
// Implementations must be safe for use from a single command invocation;
// a disabled backend is represented by a no-op implementation, never nil.
type SnapshotStore interface {
	// SaveRun stores one run and its player rows atomically.
	SaveRun(run schema.RunRecord, rows []schema.PlayerRowRecord) error

	// ListRuns returns the most recent runs, newest first.
	ListRuns(limit int) ([]schema.RunRecord, error)

	// PlayerRows returns every player row belonging to a run.
	PlayerRows(runID int64) ([]schema.PlayerRowRecord, error)

	// Status reports backend health and row counts.
	Status() (schema.StoreStatus, error)

	// Clear removes all stored runs and player rows.
	Clear() error

	// Close releases the underlying connection.
	Close() error
}

// StoreManager owns the snapshot store lifecycle for one invocation.
type StoreManager interface {
	SnapshotStore() SnapshotStore
	CloseAll() error
}
