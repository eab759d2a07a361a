package roster

import (
	"github.com/charmbracelet/log"
)

// New creates an empty RosterStore with the standard capacity.
func New() RosterStore {
	return &store{
		ids:      make([]int, 0, Capacity),
		index:    make(map[int]struct{}, Capacity),
		capacity: Capacity,
	}
}

// Add appends playerID to the roster. Duplicates are rejected before capacity is checked.
func (s *store) Add(playerID int) error {
	s.mu.Lock()
	if _, ok := s.index[playerID]; ok {
		s.mu.Unlock()
		log.Debug("Rejected roster add, already rostered", "playerID", playerID)
		return ErrAlreadyRostered
	}
	if len(s.ids) >= s.capacity {
		s.mu.Unlock()
		log.Debug("Rejected roster add, roster full", "playerID", playerID, "size", s.capacity)
		return ErrRosterFull
	}
	s.ids = append(s.ids, playerID)
	s.index[playerID] = struct{}{}
	change := Change{Kind: ChangeAdded, PlayerID: playerID, Roster: s.snapshotLocked()}
	listeners := s.listeners
	s.mu.Unlock()

	log.Info("Player added to roster", "playerID", playerID, "roster", change.Roster)
	notify(listeners, change)
	return nil
}

// Remove drops playerID from the roster. It reports whether anything changed.
func (s *store) Remove(playerID int) bool {
	s.mu.Lock()
	if _, ok := s.index[playerID]; !ok {
		s.mu.Unlock()
		return false
	}
	for i, id := range s.ids {
		if id == playerID {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	delete(s.index, playerID)
	change := Change{Kind: ChangeRemoved, PlayerID: playerID, Roster: s.snapshotLocked()}
	listeners := s.listeners
	s.mu.Unlock()

	log.Info("Player removed from roster", "playerID", playerID, "roster", change.Roster)
	notify(listeners, change)
	return true
}

func (s *store) Contains(playerID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[playerID]
	return ok
}

// Snapshot returns a copy of the roster in insertion order.
func (s *store) Snapshot() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

func (s *store) Capacity() int {
	return s.capacity
}

func (s *store) IsFull() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids) >= s.capacity
}

// Subscribe registers a listener for subsequent mutations.
func (s *store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Copy on write so notify can iterate a slice taken under the lock.
	listeners := make([]Listener, len(s.listeners), len(s.listeners)+1)
	copy(listeners, s.listeners)
	s.listeners = append(listeners, listener)
}

func (s *store) snapshotLocked() []int {
	ids := make([]int, len(s.ids))
	copy(ids, s.ids)
	return ids
}

func notify(listeners []Listener, change Change) {
	for _, l := range listeners {
		c := change
		c.Roster = append([]int(nil), change.Roster...)
		l(c)
	}
}
