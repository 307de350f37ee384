package feed

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/config"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

// DefaultLimit is used when the caller does not supply an item limit.
const DefaultLimit = 10

// FeedFetcher retrieves a raw feed document, empty string on failure.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Aggregator runs the full pipeline for one topic: fetch all feeds with
// bounded parallelism, parse, classify, deduplicate, sort by date and
// truncate. It never fails, broken feeds simply contribute nothing.
type Aggregator struct {
	topics        map[string]config.Topic
	defaultTopic  string
	fetcher       FeedFetcher
	parser        *Parser
	classifier    *Classifier
	maxConcurrent int
}

// NewAggregator creates an aggregator over the given topic registry. The
// registry is read-only after construction and safe for concurrent use.
func NewAggregator(topics map[string]config.Topic, defaultTopic string, fetcher FeedFetcher, parser *Parser, maxConcurrent int) *Aggregator {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Aggregator{
		topics:        topics,
		defaultTopic:  defaultTopic,
		fetcher:       fetcher,
		parser:        parser,
		classifier:    NewClassifier(topics),
		maxConcurrent: maxConcurrent,
	}
}

// ResolveTopic maps a requested topic key to the one actually served:
// unknown or empty keys fall back to the default topic.
func (a *Aggregator) ResolveTopic(topic string) string {
	if _, ok := a.topics[topic]; ok {
		return topic
	}
	return a.defaultTopic
}

// Aggregate returns up to limit items for the topic, newest first. The only
// ordering guarantee is the final date sort, fetch completion order is not
// observable in the output.
func (a *Aggregator) Aggregate(ctx context.Context, topic string, limit int) []domain.FeedItem {
	key := a.ResolveTopic(topic)
	t := a.topics[key]
	if limit <= 0 {
		limit = DefaultLimit
	}

	// fan out fetches, results keep the registry's URL order so the
	// pre-sort merge stays deterministic
	results := make([][]domain.FeedItem, len(t.URLs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxConcurrent)
	for i, url := range t.URLs {
		g.Go(func() error {
			results[i] = a.parser.Parse(a.fetcher.Fetch(gctx, url))
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, fetch failures degrade to empty bodies

	items := make([]domain.FeedItem, 0)
	for _, r := range results {
		items = append(items, r...)
	}
	log.Printf("[DEBUG] topic %s: %d items merged from %d feeds", key, len(items), len(t.URLs))

	items = a.classifier.Filter(items, key)
	items = Deduplicate(items)
	sortByDate(items)

	if len(items) > limit {
		items = items[:limit]
	}
	return items
}
