package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mauv0809/fantasy-roster/internal/app"
)

var ErrSessionNotFound = errors.New("session not found")

// Factory builds the controller of a new session.
type Factory func(id string) *app.Controller

// Session is one user's isolated roster, cache and controller.
type Session struct {
	ID         string
	CreatedAt  time.Time
	Controller *app.Controller

	cancel context.CancelFunc
}

// Manager keeps the live sessions.
type Manager struct {
	mu              sync.RWMutex
	sessions        map[string]*Session
	factory         Factory
	metrics         sessionMetrics
	refreshInterval time.Duration
	ctx             context.Context
}

type sessionMetrics interface {
	SetActiveSessions(count int)
}
