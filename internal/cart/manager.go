package cart

import (
	"sync"

	"github.com/shopspring/decimal"
)

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// Manager hands out the cart store for a session key. One Store instance
// lives per active session; it is created on first access (restoring any
// persisted snapshot) and dropped when the session ends.
type Manager struct {
	mu        sync.Mutex
	stores    map[string]*Store
	snapshots SnapshotStore
}

// NewManager creates a cart manager backed by the given snapshot store
func NewManager(snapshots SnapshotStore) *Manager {
	return &Manager{
		stores:    make(map[string]*Store),
		snapshots: snapshots,
	}
}

// Get returns the cart store for a session, creating it if needed
func (m *Manager) Get(sessionKey string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[sessionKey]; ok {
		return store
	}
	store := NewStore(sessionKey, m.snapshots)
	m.stores[sessionKey] = store
	return store
}

// Release drops the in-memory store for a session. The persisted snapshot
// is untouched, so the cart survives until explicitly cleared.
func (m *Manager) Release(sessionKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionKey)
}
