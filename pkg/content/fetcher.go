package content

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/cache"
)

// maxPageSize bounds how much of an article page is read
const maxPageSize = 10 * 1024 * 1024

// trackingParams are RSS click-tracking query parameters stripped before
// fetching, they break some publishers' canonical URLs and defeat caching
var trackingParams = map[string]struct{}{
	"ref": {}, "feedref": {}, "ftag": {}, "cmpid": {}, "ncid": {}, "sref": {}, "xtor": {},
}

// Fetcher retrieves article pages with browser-like headers. Pages are
// cached for a longer TTL than feeds and fetches are rate limited to stay
// polite with publishers.
type Fetcher struct {
	client    *http.Client
	cache     *cache.Cache
	ttl       time.Duration
	userAgent string
	limiter   *rate.Limiter
}

// NewFetcher creates an article page fetcher. rateLimit is the minimum
// delay between outbound fetches, zero disables limiting.
func NewFetcher(timeout, ttl time.Duration, userAgent string, rateLimit time.Duration) *Fetcher {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Every(rateLimit), 1)
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		cache:     cache.New(),
		ttl:       ttl,
		userAgent: userAgent,
		limiter:   limiter,
	}
}

// Fetch returns the raw HTML of the page, empty string on any failure:
// malformed URL, network error, timeout or non-2xx status.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) string {
	cleaned := stripTrackingParams(rawURL)
	if cleaned == "" {
		log.Printf("[WARN] refusing to fetch malformed article URL %q", rawURL)
		return ""
	}

	if body, ok := f.cache.Get(cleaned); ok {
		return body
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return ""
	}

	body, err := f.fetch(ctx, cleaned)
	if err != nil {
		log.Printf("[WARN] article fetch failed for %s: %v", cleaned, err)
		return ""
	}

	f.cache.Set(cleaned, body, f.ttl)
	return body
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}

// stripTrackingParams removes utm_* and known RSS tracking parameters.
// Returns empty string for URLs that are not absolute http(s).
func stripTrackingParams(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}

	q := u.Query()
	for key := range q {
		if strings.HasPrefix(key, "utm_") {
			q.Del(key)
			continue
		}
		if _, ok := trackingParams[key]; ok {
			q.Del(key)
		}
	}
	u.RawQuery = q.Encode()
	return u.String()
}
