// Package scoring derives the aggregate score of a roster from cached stats.
package scoring

import "github.com/mauv0809/fantasy-roster/internal/fantasy"

// Contribution returns the points of playerID, or 0 when it was never synced.
func Contribution(playerID int, cache map[int]fantasy.PlayerStats) float64 {
	stats, ok := cache[playerID]
	if !ok {
		return 0
	}
	return stats.Points
}

// Total sums the contributions of every rostered player.
func Total(roster []int, cache map[int]fantasy.PlayerStats) float64 {
	var total float64
	for _, id := range roster {
		total += Contribution(id, cache)
	}
	return total
}
