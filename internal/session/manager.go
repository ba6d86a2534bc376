package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager hands out sessions keyed by opaque uuid. Sessions idle past the
// TTL are pruned lazily on the next lookup.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// GetOrCreate returns the session for id, or a fresh one when the id is
// empty, unknown or expired.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pruneLocked()

	if id != "" {
		if s, ok := m.sessions[id]; ok {
			s.bump()
			return s
		}
	}

	s := newSession(uuid.NewString())
	m.sessions[s.ID] = s
	return s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) pruneLocked() {
	now := time.Now()
	for id, s := range m.sessions {
		if s.expired(m.ttl, now) {
			delete(m.sessions, id)
		}
	}
}
