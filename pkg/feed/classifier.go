package feed

import (
	"strings"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/config"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

// Classifier filters items against per-topic include/exclude keyword sets.
// The feed URL list already gives a topic its coarse bias, keywords only
// refine it, so topics without a keyword set pass everything through.
type Classifier struct {
	topics map[string]config.Topic
}

// NewClassifier creates a classifier over the given topic registry.
func NewClassifier(topics map[string]config.Topic) *Classifier {
	return &Classifier{topics: topics}
}

// Filter keeps items accepted for the topic: at least one include keyword
// matches (or the include set is empty) and no exclude keyword matches,
// case-insensitively, in title+description. Filtering is idempotent.
func (c *Classifier) Filter(items []domain.FeedItem, topic string) []domain.FeedItem {
	t, ok := c.topics[topic]
	if !ok || (len(t.Include) == 0 && len(t.Exclude) == 0) {
		return items
	}

	result := make([]domain.FeedItem, 0, len(items))
	for _, item := range items {
		if accepted(t, item) {
			result = append(result, item)
		}
	}
	return result
}

func accepted(t config.Topic, item domain.FeedItem) bool {
	text := strings.ToLower(item.Title + " " + item.Description)

	for _, kw := range t.Exclude {
		if strings.Contains(text, strings.ToLower(kw)) {
			return false
		}
	}

	if len(t.Include) == 0 {
		return true
	}
	for _, kw := range t.Include {
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
