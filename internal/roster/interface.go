package roster

// RosterStore owns the bounded, ordered set of rostered player ids.
// It never triggers synchronization itself; interested parties Subscribe to changes.
type RosterStore interface {
	Add(playerID int) error
	Remove(playerID int) bool
	Contains(playerID int) bool
	Snapshot() []int
	Size() int
	Capacity() int
	IsFull() bool
	Subscribe(listener Listener)
}
