package app

import (
	"fmt"
	"strings"
)

// ParseView converts s into a View.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(s)))
	switch v {
	case ViewHome, ViewTeam, ViewPlayers:
		return v, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownView, s)
}

// ParseSyncPolicy converts s into a SyncPolicy. An empty string selects SyncFull.
func ParseSyncPolicy(s string) (SyncPolicy, error) {
	p := SyncPolicy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "":
		return SyncFull, nil
	case SyncFull, SyncDelta:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSyncPolicy, s)
}

// ActiveView returns the view currently selected.
func (c *Controller) ActiveView() View {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// SetView selects v. Anything outside the known views is rejected and leaves the
// selection unchanged.
func (c *Controller) SetView(v View) error {
	switch v {
	case ViewHome, ViewTeam, ViewPlayers:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownView, v)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.view = v
	return nil
}
