// Package warmer keeps popular topics' feed caches fresh so the first
// request after a TTL expiry is still served warm. It is a pure latency
// optimization: items remain request-scoped, only raw HTTP bodies are
// cached by the fetchers.
package warmer

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

//go:generate moq -out mocks/aggregator.go -pkg mocks -skip-ensure -fmt goimports . Aggregator

// Aggregator runs the feed pipeline for one topic.
type Aggregator interface {
	Aggregate(ctx context.Context, topic string, limit int) []domain.FeedItem
}

// Warmer re-aggregates configured topics on a cron schedule.
type Warmer struct {
	aggregator Aggregator
	topics     []string
	limit      int
	cron       *cron.Cron
}

// New creates a warmer for the given topics.
func New(aggregator Aggregator, topics []string, limit int) *Warmer {
	return &Warmer{aggregator: aggregator, topics: topics, limit: limit}
}

// Start schedules periodic warming and stops it when ctx is canceled. An
// empty schedule disables warming.
func (w *Warmer) Start(ctx context.Context, schedule string) error {
	if schedule == "" || len(w.topics) == 0 {
		return nil
	}

	w.cron = cron.New()
	if _, err := w.cron.AddFunc(schedule, func() { w.Refresh(ctx) }); err != nil {
		return fmt.Errorf("add warmup schedule %q: %w", schedule, err)
	}
	w.cron.Start()

	go func() {
		<-ctx.Done()
		w.cron.Stop()
	}()

	log.Printf("[INFO] cache warming scheduled %q for topics %v", schedule, w.topics)
	return nil
}

// Refresh warms all configured topics once.
func (w *Warmer) Refresh(ctx context.Context) {
	for _, topic := range w.topics {
		items := w.aggregator.Aggregate(ctx, topic, w.limit)
		log.Printf("[INFO] warmed topic %s: %d items", topic, len(items))
	}
}
