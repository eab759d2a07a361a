package catalog

import (
	"testing"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"github.com/stretchr/testify/assert"
)

var (
	brady = fantasy.Player{ID: 1, Name: "Tom Brady", Position: "QB", Team: "TB"}
	kupp  = fantasy.Player{ID: 2, Name: "Cooper Kupp", Position: "WR", Team: "LAR"}
	kelce = fantasy.Player{ID: 3, Name: "Travis Kelce", Position: "TE", Team: "KC"}
)

func TestFilter(t *testing.T) {
	players := []fantasy.Player{brady, kupp}

	tests := []struct {
		name string
		term string
		want []fantasy.Player
	}{
		{name: "position match ignores case", term: "qb", want: []fantasy.Player{brady}},
		{name: "team match", term: "tb", want: []fantasy.Player{brady}},
		{name: "empty term is identity", term: "", want: []fantasy.Player{brady, kupp}},
		{name: "name substring", term: "OOP", want: []fantasy.Player{kupp}},
		{name: "no match", term: "xyz", want: []fantasy.Player{}},
		{name: "space is a literal character", term: "m b", want: []fantasy.Player{brady}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.term, players))
		})
	}
}

func TestFilter_PreservesCatalogOrder(t *testing.T) {
	players := []fantasy.Player{kelce, brady, kupp}

	got := Filter("r", players)

	assert.Equal(t, []fantasy.Player{kelce, brady, kupp}, got)
	assert.Equal(t, []fantasy.Player{kelce, kupp}, Filter("e", players))
}

func TestFilter_UnicodeFolding(t *testing.T) {
	players := []fantasy.Player{{ID: 7, Name: "Ömer Straße", Position: "K", Team: "MÜN"}}

	assert.Len(t, Filter("ömer", players), 1)
	assert.Len(t, Filter("STRAßE", players), 1)
	assert.Len(t, Filter("mün", players), 1)
}

func TestFilter_EmptyTermReturnsSameSlice(t *testing.T) {
	players := []fantasy.Player{brady, kupp}
	got := Filter("", players)
	assert.Same(t, &players[0], &got[0])
}
