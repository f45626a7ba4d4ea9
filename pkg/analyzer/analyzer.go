package analyzer

import (
	"sort"

	"linkharvest/internal/models"
)

// RankedLink is a URL with the number of category references it earned.
type RankedLink struct {
	URL  string `json:"url"`
	Refs int    `json:"refs"`
}

// RankLinks tallies how many times each URL appears across all categories
// and orders the tally descending, URL ascending on ties. This is a naive
// reference count, not a fixed-point PageRank.
func RankLinks(result models.CategorizedResult) []RankedLink {
	counts := make(map[string]int)
	for _, links := range result {
		for _, link := range links {
			counts[link]++
		}
	}

	ranked := make([]RankedLink, 0, len(counts))
	for link, refs := range counts {
		ranked = append(ranked, RankedLink{URL: link, Refs: refs})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Refs != ranked[j].Refs {
			return ranked[i].Refs > ranked[j].Refs
		}
		return ranked[i].URL < ranked[j].URL
	})
	return ranked
}
