package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestLocalClient_SendMessage(t *testing.T) {
	c := NewLocal()
	defer c.Close()

	err := c.SendMessage(context.Background(), EventRosterChanged, RosterChangedMessage{
		SessionID: "s1",
		Kind:      "added",
		PlayerID:  4,
		Roster:    []int{1, 4},
	})
	assert.NoError(t, err)

	err = c.SendMessage(context.Background(), EventStatsSynced, func() {})
	assert.Error(t, err, "functions cannot be encoded")
}

func TestProcessMessage_DecodesStatsSynced(t *testing.T) {
	at := time.Date(2024, 9, 8, 20, 0, 0, 0, time.UTC)
	data, err := msgpack.Marshal(StatsSyncedMessage{
		SessionID: "s1",
		Updated:   []int{1},
		Failed:    []int{4},
		Skipped:   []int{},
		Total:     12,
		At:        at,
	})
	require.NoError(t, err)

	var msg StatsSyncedMessage
	require.NoError(t, NewLocal().ProcessMessage(data, &msg))

	assert.Equal(t, "s1", msg.SessionID)
	assert.Equal(t, []int{1}, msg.Updated)
	assert.Equal(t, []int{4}, msg.Failed)
	assert.Equal(t, float64(12), msg.Total)
	assert.True(t, at.Equal(msg.At))
}

func TestProcessMessage_RejectsGarbage(t *testing.T) {
	var msg RosterChangedMessage
	assert.Error(t, NewLocal().ProcessMessage([]byte{0xc1}, &msg))
}
