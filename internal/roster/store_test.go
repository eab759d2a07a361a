package roster_test

import (
	"sync"
	"testing"

	"github.com/mauv0809/fantasy-roster/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddUpToCapacity(t *testing.T) {
	store := roster.New()

	require.NoError(t, store.Add(1))
	assert.Equal(t, []int{1}, store.Snapshot())
	require.NoError(t, store.Add(4))
	assert.Equal(t, []int{1, 4}, store.Snapshot())
	require.NoError(t, store.Add(6))
	assert.Equal(t, []int{1, 4, 6}, store.Snapshot())

	err := store.Add(9)
	assert.ErrorIs(t, err, roster.ErrRosterFull)
	assert.Equal(t, []int{1, 4, 6}, store.Snapshot(), "rejected add must not change the roster")
	assert.True(t, store.IsFull())
	assert.Equal(t, 3, store.Size())
	assert.Equal(t, roster.Capacity, store.Capacity())
}

func TestAddDuplicate(t *testing.T) {
	store := roster.New()
	require.NoError(t, store.Add(1))
	require.NoError(t, store.Add(4))

	err := store.Add(1)
	assert.ErrorIs(t, err, roster.ErrAlreadyRostered)
	assert.Equal(t, []int{1, 4}, store.Snapshot())

	t.Run("duplicate on a full roster reports already rostered", func(t *testing.T) {
		require.NoError(t, store.Add(6))
		assert.ErrorIs(t, store.Add(4), roster.ErrAlreadyRostered)
	})
}

func TestRemove(t *testing.T) {
	store := roster.New()
	for _, id := range []int{1, 4, 6} {
		require.NoError(t, store.Add(id))
	}

	assert.True(t, store.Remove(4))
	assert.Equal(t, []int{1, 6}, store.Snapshot())
	assert.False(t, store.Contains(4))

	t.Run("absent id is a no-op", func(t *testing.T) {
		assert.False(t, store.Remove(42))
		assert.Equal(t, []int{1, 6}, store.Snapshot())
	})

	t.Run("freed slot can be reused", func(t *testing.T) {
		require.NoError(t, store.Add(9))
		assert.Equal(t, []int{1, 6, 9}, store.Snapshot())
	})
}

func TestSnapshotIsACopy(t *testing.T) {
	store := roster.New()
	require.NoError(t, store.Add(1))
	require.NoError(t, store.Add(4))

	snap := store.Snapshot()
	snap[0] = 99
	_ = append(snap, 7)

	assert.Equal(t, []int{1, 4}, store.Snapshot())
	assert.True(t, store.Contains(1))
	assert.False(t, store.Contains(99))
}

func TestSubscribe(t *testing.T) {
	store := roster.New()
	var changes []roster.Change
	store.Subscribe(func(c roster.Change) {
		changes = append(changes, c)
	})

	require.NoError(t, store.Add(1))
	require.NoError(t, store.Add(4))
	assert.ErrorIs(t, store.Add(1), roster.ErrAlreadyRostered)
	store.Remove(1)
	store.Remove(1)

	require.Len(t, changes, 3, "only successful mutations are published")
	assert.Equal(t, roster.Change{Kind: roster.ChangeAdded, PlayerID: 1, Roster: []int{1}}, changes[0])
	assert.Equal(t, roster.Change{Kind: roster.ChangeAdded, PlayerID: 4, Roster: []int{1, 4}}, changes[1])
	assert.Equal(t, roster.Change{Kind: roster.ChangeRemoved, PlayerID: 1, Roster: []int{4}}, changes[2])
}

func TestConcurrentMutationsKeepInvariants(t *testing.T) {
	store := roster.New()

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			// Every id is attempted twice to race duplicates against each other.
			for j := 0; j < 2; j++ {
				if err := store.Add(id % 10); err == nil {
					mu.Lock()
					accepted++
					mu.Unlock()
				}
			}
			if id%7 == 0 {
				store.Remove(id % 10)
			}
			snap := store.Snapshot()
			assert.LessOrEqual(t, len(snap), roster.Capacity)
		}(i)
	}
	wg.Wait()

	snap := store.Snapshot()
	assert.LessOrEqual(t, len(snap), roster.Capacity)
	seen := make(map[int]bool)
	for _, id := range snap {
		assert.False(t, seen[id], "duplicate id %d in roster", id)
		seen[id] = true
	}
	assert.GreaterOrEqual(t, accepted, len(snap))
}
