package catalog

import (
	"strings"

	"github.com/mauv0809/fantasy-roster/internal/fantasy"
	"golang.org/x/text/cases"
)

// Filter returns the players whose name, position or team contains term, ignoring case.
// Matching players keep their catalog order. An empty term returns players unchanged.
func Filter(term string, players []fantasy.Player) []fantasy.Player {
	if term == "" {
		return players
	}
	fold := cases.Fold()
	needle := fold.String(term)

	matches := make([]fantasy.Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(fold.String(p.Name), needle) ||
			strings.Contains(fold.String(p.Position), needle) ||
			strings.Contains(fold.String(p.Team), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}
