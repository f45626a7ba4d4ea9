package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client fetches raw documents over HTTP. The engine calls Fetch one page
// at a time; there are no retries and no politeness delays.
type Client struct {
	client    *http.Client
	userAgent string
}

// New creates a Client with the given request timeout and user agent.
func New(timeout time.Duration, userAgent string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     30 * time.Second,
	}
	return &Client{
		client:    &http.Client{Transport: transport, Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch retrieves the document at pageURL. Transport failures, non-2xx
// statuses and non-webpage content types all come back as errors.
func (c *Client) Fetch(pageURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !isWebpageMIME(ct) {
		return nil, fmt.Errorf("non-webpage content type %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func isWebpageMIME(contentType string) bool {
	mimeType := strings.TrimSpace(strings.Split(strings.ToLower(contentType), ";")[0])
	webpageMIMEs := []string{"text/html", "application/xhtml+xml", "application/xhtml", "text/xml", "application/xml"}
	for _, mime := range webpageMIMEs {
		if mime == mimeType {
			return true
		}
	}
	return false
}
