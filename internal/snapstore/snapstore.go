// Package snapstore persists resolution runs and their per-player rows to a
// relational backend (sqlite, mysql, postgresql) or a no-op store.
package snapstore

import (
	"fmt"
	"sync"

	"github.com/guildtools/raidscope/internal/contract"
	"github.com/guildtools/raidscope/schema"
)

// Manager owns the snapshot store for one invocation.
type Manager struct {
	store contract.SnapshotStore
}

var _ contract.StoreManager = &Manager{} // Compile-time check

// NewManager opens the snapshot store for the given backend.
func NewManager(backend schema.DatabaseBackend, connStr string) (*Manager, error) {
	store, err := NewSnapshotStore(backend, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot store: %w", err)
	}
	return &Manager{store: store}, nil
}

// SnapshotStore returns the managed store.
func (m *Manager) SnapshotStore() contract.SnapshotStore {
	return m.store
}

// CloseAll releases the underlying connection.
func (m *Manager) CloseAll() error {
	return m.store.Close()
}

var (
	globalMu      sync.Mutex
	globalManager *Manager
)

// InitStore initializes the process-wide manager. Safe to call once per
// command invocation.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	globalMu.Lock()
	defer globalMu.Unlock()
	mgr, err := NewManager(backend, connStr)
	if err != nil {
		return err
	}
	globalManager = mgr
	return nil
}

// Store returns the process-wide snapshot store, or nil before InitStore.
func Store() contract.SnapshotStore {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalManager == nil {
		return nil
	}
	return globalManager.SnapshotStore()
}

// CloseStore closes the process-wide manager if it was initialized.
func CloseStore() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalManager == nil {
		return nil
	}
	err := globalManager.CloseAll()
	globalManager = nil
	return err
}
