package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Load(t *testing.T) {
	client := fantasy.NewMockClient()
	client.GetPlayersFunc = func(ctx context.Context) ([]fantasy.Player, error) {
		return []fantasy.Player{brady, kupp}, nil
	}
	c := New()
	assert.Equal(t, StateNotLoaded, c.State())

	require.NoError(t, c.Load(context.Background(), client))

	assert.True(t, c.Loaded())
	assert.NoError(t, c.Err())
	assert.Equal(t, []fantasy.Player{brady, kupp}, c.Players())
	p, ok := c.Player(2)
	require.True(t, ok)
	assert.Equal(t, kupp, p)
	_, ok = c.Player(99)
	assert.False(t, ok)
	assert.Equal(t, []fantasy.Player{brady}, c.Search("Qb"))
	assert.Equal(t, 1, client.GetPlayersCalls)
}

func TestCatalog_LoadFailure(t *testing.T) {
	upstream := errors.New("connection refused")
	client := fantasy.NewMockClient()
	client.GetPlayersFunc = func(ctx context.Context) ([]fantasy.Player, error) {
		return nil, upstream
	}
	c := New()

	err := c.Load(context.Background(), client)

	var failure *LoadFailure
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, StateFailed, c.State())
	assert.False(t, c.Loaded())
	assert.Empty(t, c.Players())
	assert.Empty(t, c.Search(""))
	assert.ErrorIs(t, c.Err(), upstream)
}

func TestCatalog_FailedReloadKeepsLoadedPlayers(t *testing.T) {
	upstream := errors.New("503 service unavailable")
	calls := 0
	client := fantasy.NewMockClient()
	client.GetPlayersFunc = func(ctx context.Context) ([]fantasy.Player, error) {
		calls++
		if calls == 1 {
			return []fantasy.Player{brady}, nil
		}
		return nil, upstream
	}
	c := New()
	require.NoError(t, c.Load(context.Background(), client))

	err := c.Load(context.Background(), client)

	var failure *LoadFailure
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, err, upstream)
	assert.Equal(t, StateLoaded, c.State())
	assert.True(t, c.Loaded())
	assert.NoError(t, c.Err())
	assert.Equal(t, []fantasy.Player{brady}, c.Players())
	assert.Equal(t, []fantasy.Player{brady}, c.Search("qb"))
	_, ok := c.Player(brady.ID)
	assert.True(t, ok)
}

func TestCatalog_ReloadRecovers(t *testing.T) {
	calls := 0
	client := fantasy.NewMockClient()
	client.GetPlayersFunc = func(ctx context.Context) ([]fantasy.Player, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return []fantasy.Player{kupp}, nil
	}
	c := New()

	require.Error(t, c.Load(context.Background(), client))
	require.NoError(t, c.Load(context.Background(), client))

	assert.Equal(t, StateLoaded, c.State())
	assert.NoError(t, c.Err())
	assert.Equal(t, []fantasy.Player{kupp}, c.Players())
}

func TestCatalog_PlayersReturnsCopy(t *testing.T) {
	c := NewFromPlayers([]fantasy.Player{brady, kupp})
	list := c.Players()
	list[0].Name = "changed"
	assert.Equal(t, "Tom Brady", c.Players()[0].Name)
}
