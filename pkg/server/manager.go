package server

import (
	"log/slog"
	"sync"
	"time"
)

// Manager tracks active sessions and evicts idle ones. Sessions share
// nothing with each other; the manager only owns their lifecycle.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	idleTimeout time.Duration
	logger      *slog.Logger
	metrics     *Metrics

	done     chan struct{}
	stopOnce sync.Once
}

// evictInterval is how often the idle sweep runs.
const evictInterval = 30 * time.Second

// NewManager creates a session manager. idleTimeout <= 0 disables
// eviction.
func NewManager(idleTimeout time.Duration, logger *slog.Logger, m *Metrics) *Manager {
	mgr := &Manager{
		sessions:    make(map[string]*Session),
		idleTimeout: idleTimeout,
		logger:      logger.With("component", "session_manager"),
		metrics:     m,
		done:        make(chan struct{}),
	}

	if idleTimeout > 0 {
		go mgr.evictLoop()
	}
	return mgr
}

// Add registers a session and hooks its close back into the manager.
func (m *Manager) Add(s *Session) {
	s.onClose = m.remove

	m.mu.Lock()
	m.sessions[s.ID()] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.metrics.SessionsTotal.Inc()
	m.metrics.SessionsActive.Set(float64(count))
	m.logger.Info("session opened", "session", s.ID()[:8], "active", count)
}

func (m *Manager) remove(s *Session) {
	m.mu.Lock()
	delete(m.sessions, s.ID())
	count := len(m.sessions)
	m.mu.Unlock()

	m.metrics.SessionsActive.Set(float64(count))
	m.logger.Info("session closed", "session", s.ID()[:8], "active", count)
}

// Len returns the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// evictLoop sweeps for idle sessions until Shutdown.
func (m *Manager) evictLoop() {
	ticker := time.NewTicker(evictInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case now := <-ticker.C:
			m.evictIdle(now)
		}
	}
}

// evictIdle closes sessions idle past the timeout.
func (m *Manager) evictIdle(now time.Time) {
	m.mu.RLock()
	var idle []*Session
	for _, s := range m.sessions {
		if s.idleSince(now) > m.idleTimeout {
			idle = append(idle, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range idle {
		m.logger.Info("evicting idle session", "session", s.ID()[:8], "idle", s.idleSince(now))
		s.Close()
	}
}

// Shutdown stops eviction and closes every session.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() {
		close(m.done)
	})

	m.mu.RLock()
	open := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		open = append(open, s)
	}
	m.mu.RUnlock()

	for _, s := range open {
		s.Close()
	}
}
