package feed

import (
	"strings"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

// fingerprintLen is the number of title characters used to detect
// near-duplicate headlines. Kept at 50 for compatibility with the frontend:
// two distinct articles sharing a long lede merge on purpose.
const fingerprintLen = 50

// Deduplicate drops items whose lowercased title shares its first 50
// characters with an earlier item. The first occurrence wins and relative
// order among survivors is preserved.
func Deduplicate(items []domain.FeedItem) []domain.FeedItem {
	seen := make(map[string]struct{}, len(items))
	result := make([]domain.FeedItem, 0, len(items))

	for _, item := range items {
		fp := fingerprint(item.Title)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		result = append(result, item)
	}
	return result
}

func fingerprint(title string) string {
	runes := []rune(strings.ToLower(title))
	if len(runes) > fingerprintLen {
		runes = runes[:fingerprintLen]
	}
	return string(runes)
}
