package services

import (
	"sort"

	"go-edsm/pkg/edsm/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// RankByName orders systems by how closely their names match query, ignoring
// case. Systems that do not match at all keep their order at the end.
func RankByName(query string, systems []models.System) []models.System {
	if query == "" || len(systems) < 2 {
		return systems
	}

	names := make([]string, len(systems))
	for i, s := range systems {
		names[i] = s.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Stable(ranks)

	out := make([]models.System, 0, len(systems))
	used := make([]bool, len(systems))
	for _, r := range ranks {
		if used[r.OriginalIndex] {
			continue
		}
		used[r.OriginalIndex] = true
		out = append(out, systems[r.OriginalIndex])
	}
	for i, s := range systems {
		if !used[i] {
			out = append(out, s)
		}
	}
	return out
}
