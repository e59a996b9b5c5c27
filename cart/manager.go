package cart

import "sync"

// Manager hands out one Store per session id, creating it on first
// use. Cart endpoints reached without going through the session
// middleware never see a Manager, which is what makes out-of-session
// access a hard usage error at the HTTP layer.
type Manager struct {
	taxRateBP int64

	mu     sync.Mutex
	stores map[string]*Store
}

// NewManager returns a Manager whose stores share the given tax rate.
func NewManager(taxRateBP int64) *Manager {
	return &Manager{
		taxRateBP: taxRateBP,
		stores:    make(map[string]*Store),
	}
}

// Get returns the session's store, creating an empty one on first use.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stores[sessionID]
	if !ok {
		s = NewStore(m.taxRateBP)
		m.stores[sessionID] = s
	}
	return s
}

// Drop discards the session's store.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
