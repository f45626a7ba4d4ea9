package crawler

import (
	"linkharvest/pkg/parser"
)

// Fetcher retrieves a document by URL. Fetches are blocking and performed
// strictly one at a time by the engine.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}

// PageParser builds a queryable page from raw document bytes.
type PageParser interface {
	Parse(body []byte) (*parser.Page, error)
}

// PageParserFunc adapts a plain function to the PageParser interface.
type PageParserFunc func(body []byte) (*parser.Page, error)

// Parse implements PageParser.
func (f PageParserFunc) Parse(body []byte) (*parser.Page, error) {
	return f(body)
}

// ErrorSink records per-URL failures. Calls are fire-and-forget; the engine
// never inspects the outcome.
type ErrorSink interface {
	LogError(url, message string)
}

type noopSink struct{}

func (noopSink) LogError(string, string) {}

// ProgressFunc is invoked after every fetch attempt with the number of
// visited pages and the page limit. It runs on the crawl worker and must
// not block for long.
type ProgressFunc func(visited, max int)
