package feed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/cache"
)

// maxFeedSize bounds how much of a feed document is read, some misbehaving
// sources serve unbounded bodies
const maxFeedSize = 5 * 1024 * 1024

// Fetcher retrieves raw feed documents over HTTP. Responses are cached for
// a short TTL and transient failures are retried with backoff.
type Fetcher struct {
	client    *http.Client
	cache     *cache.Cache
	ttl       time.Duration
	userAgent string
	attempts  int
}

// NewFetcher creates a feed fetcher. attempts is the total number of tries
// per URL, ttl is how long successful responses stay cached.
func NewFetcher(timeout, ttl time.Duration, userAgent string, attempts int) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		cache:     cache.New(),
		ttl:       ttl,
		userAgent: userAgent,
		attempts:  attempts,
	}
}

// Fetch returns the raw feed body for the URL, empty string on any failure.
// One broken feed must never abort aggregation across the remaining feeds
// for a topic, so errors are logged and swallowed here.
func (f *Fetcher) Fetch(ctx context.Context, url string) string {
	if body, ok := f.cache.Get(url); ok {
		return body
	}

	var body string
	retrier := repeater.NewBackoff(f.attempts, 100*time.Millisecond, repeater.WithMaxDelay(time.Second))
	err := retrier.Do(ctx, func() error {
		b, err := f.fetch(ctx, url)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		log.Printf("[WARN] feed fetch failed for %s: %v", url, err)
		return ""
	}

	f.cache.Set(url, body, f.ttl)
	return body
}

func (f *Fetcher) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedSize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}
