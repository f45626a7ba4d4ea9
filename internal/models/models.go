package models

// Status describes how a crawl run ended.
type Status string

const (
	// StatusCompleted means the run exhausted its frontier or hit a limit.
	StatusCompleted Status = "completed"
	// StatusStopped means cancellation was requested by the caller.
	StatusStopped Status = "stopped"
)

// FrontierItem is a pending unit of crawl work. Score orders items in the
// best-first frontier; depth-first ignores it.
type FrontierItem struct {
	Score int
	URL   string
	Depth int
}

// CategorizedResult maps a category label to the URLs grouped under it.
// Link lists carry no ordering guarantee and the same URL may appear under
// several categories.
type CategorizedResult map[string][]string

// Merge folds one page's category→links lists into the result. Links are
// de-duplicated within the page only; later pages may add the same URL to a
// category again.
func (r CategorizedResult) Merge(page map[string][]string) {
	for category, links := range page {
		if len(links) == 0 {
			continue
		}
		seen := make(map[string]bool, len(links))
		for _, link := range links {
			if seen[link] {
				continue
			}
			seen[link] = true
			r[category] = append(r[category], link)
		}
	}
}

// PageSummary records metadata about one visited page.
type PageSummary struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Depth       int    `json:"depth"`
}

// CrawlReport is the accumulated outcome of a single run.
type CrawlReport struct {
	Seed       string            `json:"seed"`
	Categories CategorizedResult `json:"categories"`
	Pages      []PageSummary     `json:"pages"`
	Visited    int               `json:"visited"`
	Status     Status            `json:"status"`
}
