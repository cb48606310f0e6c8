package display

import (
	"sync"
	"time"
)

// HistoryStore tracks when a modal was last shown to a visitor. Concurrent
// tabs race on it with last-write-wins, which is accepted for a marketing
// frequency cap.
type HistoryStore interface {
	// LastShown returns the most recent impression time for the modal and
	// visitor, if any.
	LastShown(modalID uint, visitorID string) (time.Time, bool, error)
	// ShownInSession reports whether the modal was already shown during the
	// given session.
	ShownInSession(modalID uint, visitorID, sessionID string) (bool, error)
	// RecordImpression marks the modal as shown before any subsequent
	// evaluation in the same window.
	RecordImpression(modalID uint, visitorID, sessionID string, at time.Time) error
}

// MemoryHistory is an in-process HistoryStore used in tests and when Redis
// is disabled. State is lost on restart, degrading the cap to per-process.
type MemoryHistory struct {
	mu       sync.RWMutex
	shown    map[historyKey]time.Time
	sessions map[sessionKey]bool
}

type historyKey struct {
	modalID   uint
	visitorID string
}

type sessionKey struct {
	modalID   uint
	visitorID string
	sessionID string
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{
		shown:    make(map[historyKey]time.Time),
		sessions: make(map[sessionKey]bool),
	}
}

func (m *MemoryHistory) LastShown(modalID uint, visitorID string) (time.Time, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	at, ok := m.shown[historyKey{modalID, visitorID}]
	return at, ok, nil
}

func (m *MemoryHistory) ShownInSession(modalID uint, visitorID, sessionID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.sessions[sessionKey{modalID, visitorID, sessionID}], nil
}

func (m *MemoryHistory) RecordImpression(modalID uint, visitorID, sessionID string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.shown[historyKey{modalID, visitorID}] = at
	if sessionID != "" {
		m.sessions[sessionKey{modalID, visitorID, sessionID}] = true
	}
	return nil
}
