package roster

import (
	"errors"
	"sync"
)

// Capacity is the maximum number of players on a roster.
const Capacity = 3

var (
	ErrRosterFull      = errors.New("roster is full")
	ErrAlreadyRostered = errors.New("player is already rostered")
)

// ChangeKind identifies the mutation that produced a Change.
type ChangeKind string

const (
	ChangeAdded   ChangeKind = "added"
	ChangeRemoved ChangeKind = "removed"
)

// Change describes one successful roster mutation. Roster is the membership after it.
type Change struct {
	Kind     ChangeKind
	PlayerID int
	Roster   []int
}

// Listener is notified after every successful mutation.
type Listener func(Change)

// store is the in-memory RosterStore.
type store struct {
	mu        sync.RWMutex
	ids       []int
	index     map[int]struct{}
	capacity  int
	listeners []Listener
}
