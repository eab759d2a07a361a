package catalog

import (
	"fmt"
	"sync"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
)

// LoadState describes whether the catalog could be fetched.
type LoadState string

const (
	StateNotLoaded LoadState = "not_loaded"
	StateLoaded    LoadState = "loaded"
	StateFailed    LoadState = "failed"
)

// Catalog holds the full list of selectable players. It is read-only once loaded
// and shared by every session.
type Catalog struct {
	mu      sync.RWMutex
	players []fantasy.Player
	byID    map[int]fantasy.Player
	state   LoadState
	err     error
}

// LoadFailure is returned when the catalog fetch failed.
type LoadFailure struct {
	Err error
}

func (e *LoadFailure) Error() string {
	return fmt.Sprintf("catalog not loaded: %v", e.Err)
}

func (e *LoadFailure) Unwrap() error {
	return e.Err
}
