package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Crawler.MaxPages)
	assert.Equal(t, 3, cfg.Crawler.MaxDepth)
	assert.Equal(t, StrategyBestFirst, cfg.Crawler.Strategy)
	assert.Equal(t, 15*time.Second, cfg.Crawler.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestCrawlerConfigValidate(t *testing.T) {
	valid := CrawlerConfig{
		Seed:     "https://example.com",
		MaxPages: 10,
		MaxDepth: 2,
		Strategy: StrategyBestFirst,
	}

	tests := []struct {
		name    string
		mutate  func(*CrawlerConfig)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *CrawlerConfig) {},
		},
		{
			name:   "depth-first valid",
			mutate: func(c *CrawlerConfig) { c.Strategy = StrategyDepthFirst },
		},
		{
			name:    "empty seed",
			mutate:  func(c *CrawlerConfig) { c.Seed = "  " },
			wantErr: "seed",
		},
		{
			name:    "max pages below one",
			mutate:  func(c *CrawlerConfig) { c.MaxPages = 0 },
			wantErr: "max_pages",
		},
		{
			name:    "negative depth",
			mutate:  func(c *CrawlerConfig) { c.MaxDepth = -1 },
			wantErr: "max_depth",
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *CrawlerConfig) { c.Strategy = "breadth-first" },
			wantErr: "strategy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
