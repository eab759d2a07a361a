// Package session isolates concurrent users: every session owns its own roster,
// stats cache and controller. Only the read-only catalog is shared.
package session

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// NewManager creates a Manager. ctx bounds every session's lifetime; when
// refreshInterval is positive each session refreshes its stats periodically.
func NewManager(ctx context.Context, factory Factory, metrics sessionMetrics, refreshInterval time.Duration) *Manager {
	return &Manager{
		sessions:        make(map[string]*Session),
		factory:         factory,
		metrics:         metrics,
		refreshInterval: refreshInterval,
		ctx:             ctx,
	}
}

// Create starts a new session and runs its initial synchronization.
func (m *Manager) Create() *Session {
	id := uuid.NewString()
	ctx, cancel := context.WithCancel(m.ctx)
	s := &Session{
		ID:         id,
		CreatedAt:  time.Now(),
		Controller: m.factory(id),
		cancel:     cancel,
	}
	s.Controller.Start(ctx)
	if m.refreshInterval > 0 {
		go s.Controller.Run(ctx, m.refreshInterval)
	}

	m.mu.Lock()
	m.sessions[id] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.metrics.SetActiveSessions(count)
	log.Info("Session created", "session", id, "active", count)
	return s
}

// Get returns the session with id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return s, nil
}

// Delete stops and forgets the session with id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	count := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	s.cancel()
	m.metrics.SetActiveSessions(count)
	log.Info("Session deleted", "session", id, "active", count)
	return nil
}

// List returns the live sessions, oldest first.
func (m *Manager) List() []*Session {
	m.mu.RLock()
	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	m.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

// Close stops every session.
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.cancel()
	}
	m.metrics.SetActiveSessions(0)
}
