package extractor

import (
	"strings"

	"linkharvest/pkg/utils"
)

// minLabelLen is the shortest text accepted as a category label.
const minLabelLen = 3

// Categories turns heading and list-item texts into candidate category
// labels: trimmed, lowercased, at least three characters. Registration is
// idempotent and values start empty; the engine attaches links later.
func Categories(texts []string) map[string][]string {
	categories := make(map[string][]string)
	for _, text := range texts {
		label := utils.CleanLabel(text)
		if len(label) < minLabelLen {
			continue
		}
		if _, ok := categories[label]; !ok {
			categories[label] = []string{}
		}
	}
	return categories
}

// Score sums the case-insensitive occurrence counts of each keyword in
// text. A keyword appearing three times contributes three, independent of
// the other keywords. The result is never negative.
func Score(text string, keywords []string) int {
	score := 0
	lowered := strings.ToLower(text)
	for _, keyword := range keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword == "" {
			continue
		}
		score += strings.Count(lowered, keyword)
	}
	return score
}
