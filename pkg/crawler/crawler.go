package crawler

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"linkharvest/internal/config"
	"linkharvest/internal/models"
	"linkharvest/pkg/extractor"
	"linkharvest/pkg/fetcher"
	"linkharvest/pkg/parser"
	"linkharvest/pkg/utils"
)

// Engine orchestrates a single crawl run: fetch, parse, categorize, score,
// enqueue. The frontier, visited set and result are created fresh per run
// and mutated only on the goroutine executing Run; the sole cross-thread
// interactions are context cancellation and the progress callback.
type Engine struct {
	cfg      config.CrawlerConfig
	fetcher  Fetcher
	parse    PageParser
	errors   ErrorSink
	progress ProgressFunc
	log      zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f Fetcher) Option {
	return func(e *Engine) { e.fetcher = f }
}

// WithParser replaces the default document parser.
func WithParser(p PageParser) Option {
	return func(e *Engine) { e.parse = p }
}

// WithErrorSink sets the sink receiving per-URL failure entries.
func WithErrorSink(s ErrorSink) Option {
	return func(e *Engine) { e.errors = s }
}

// WithProgress sets the callback invoked after every fetch attempt.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// WithLogger sets the engine's debug logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New validates cfg and builds an engine. Invalid configuration is rejected
// here; Run never starts with a bad config.
func New(cfg config.CrawlerConfig, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:      cfg,
		fetcher:  fetcher.New(cfg.Timeout, cfg.UserAgent),
		parse:    PageParserFunc(parser.Parse),
		errors:   noopSink{},
		progress: func(int, int) {},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Run executes the crawl to completion and returns the accumulated report.
// It blocks the calling goroutine; use Start for the asynchronous form.
// Cancelling ctx is a normal termination path, observed between pages: the
// in-flight fetch finishes and whatever was gathered so far is returned
// with StatusStopped.
func (e *Engine) Run(ctx context.Context) (*models.CrawlReport, error) {
	seed := strings.TrimRight(strings.TrimSpace(e.cfg.Seed), "/")
	frontier := e.newFrontier()
	visited := make(map[string]bool)
	report := &models.CrawlReport{
		Seed:       seed,
		Categories: make(models.CategorizedResult),
		Status:     models.StatusCompleted,
	}

	frontier.Push(models.FrontierItem{URL: seed, Depth: 0})

	for {
		if ctx.Err() != nil {
			report.Status = models.StatusStopped
			e.log.Info().Str("seed", seed).Int("visited", len(visited)).Msg("crawl stopped by caller")
			break
		}
		if frontier.Len() == 0 || len(visited) >= e.cfg.MaxPages {
			break
		}

		item, ok := frontier.Pop()
		if !ok {
			break
		}
		// Lazy rejection: the same URL may sit in the frontier many times.
		if visited[item.URL] || item.Depth > e.cfg.MaxDepth {
			continue
		}

		e.crawlPage(item, frontier, visited, report)
		e.progress(len(visited), e.cfg.MaxPages)
	}

	report.Visited = len(visited)
	return report, nil
}

// crawlPage fetches and processes one frontier item. Fetch and parse
// failures are terminal for the URL within this run: the URL is reported to
// the error sink and never enters the visited set, and since nothing
// re-enqueues it the run simply moves on.
func (e *Engine) crawlPage(item models.FrontierItem, frontier Frontier, visited map[string]bool, report *models.CrawlReport) {
	body, err := e.fetcher.Fetch(item.URL)
	if err != nil {
		e.errors.LogError(item.URL, err.Error())
		return
	}
	page, err := e.parse.Parse(body)
	if err != nil {
		e.errors.LogError(item.URL, err.Error())
		return
	}

	visited[item.URL] = true

	categories := extractor.Categories(page.HeadingsAndListItems())

	// Depth-first never consults the scorer; best-first scores the whole
	// page once when keywords are supplied and falls back to URL length
	// per link otherwise.
	bestFirst := e.cfg.Strategy == config.StrategyBestFirst
	useKeywords := bestFirst && len(e.cfg.Keywords) > 0
	pageScore := 0
	if useKeywords {
		pageScore = extractor.Score(page.VisibleText(), e.cfg.Keywords)
	}

	for _, anchor := range page.Anchors() {
		link, err := utils.NormalizeURL(item.URL, anchor.Href)
		if err != nil || link == "" {
			continue
		}
		if visited[link] {
			continue
		}

		score := pageScore
		if bestFirst && !useKeywords {
			score = len(link)
		}
		frontier.Push(models.FrontierItem{Score: score, URL: link, Depth: item.Depth + 1})

		// Best-effort association: a category claims the link when its
		// label occurs inside the anchor's own text.
		anchorText := utils.CleanLabel(anchor.Text)
		for label := range categories {
			if strings.Contains(anchorText, label) {
				categories[label] = append(categories[label], link)
			}
		}
	}

	report.Categories.Merge(categories)
	report.Pages = append(report.Pages, models.PageSummary{
		URL:         item.URL,
		Title:       page.Title(),
		Description: page.MetaDescription(),
		Summary:     page.Summary(),
		Depth:       item.Depth,
	})

	e.log.Debug().Str("url", item.URL).Int("depth", item.Depth).Int("categories", len(categories)).Msg("crawled page")
}

func (e *Engine) newFrontier() Frontier {
	if e.cfg.Strategy == config.StrategyDepthFirst {
		return NewDepthFirstFrontier()
	}
	return NewBestFirstFrontier()
}

// Handle tracks an asynchronous crawl run started with Start.
type Handle struct {
	done   chan struct{}
	report *models.CrawlReport
	err    error
}

// Start launches Run on its own goroutine and returns a handle the caller
// can wait on. Cancel the context to stop the run early; the partial report
// is still delivered through the handle.
func (e *Engine) Start(ctx context.Context) *Handle {
	h := &Handle{done: make(chan struct{})}
	go func() {
		defer close(h.done)
		h.report, h.err = e.Run(ctx)
	}()
	return h
}

// Done is closed once the run has finished.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Report blocks until the run finishes and returns its result.
func (h *Handle) Report() (*models.CrawlReport, error) {
	<-h.done
	return h.report, h.err
}
