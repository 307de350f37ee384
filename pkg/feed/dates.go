package feed

import (
	"sort"
	"strings"
	"time"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

// dateLayouts covers the publish-date formats actually seen across the
// polled sources: RFC 822 style pubDate in several variants plus ISO 8601
// used by a few CMSes.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate parses a raw feed date, zero time when no layout matches.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// sortByDate orders items newest first. Items with unparsable dates sort as
// oldest and the sort is stable, so when nothing parses the merged feed
// order is preserved.
func sortByDate(items []domain.FeedItem) {
	times := make([]time.Time, len(items))
	for i, item := range items {
		times[i] = parseDate(item.Date)
	}

	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return times[idx[a]].After(times[idx[b]])
	})

	sorted := make([]domain.FeedItem, len(items))
	for i, j := range idx {
		sorted[i] = items[j]
	}
	copy(items, sorted)
}
