package feed

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/config"
)

// stubFetcher serves canned feed documents, unknown URLs behave like a
// broken upstream and return an empty body
type stubFetcher struct {
	feeds map[string]string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) string {
	return s.feeds[url]
}

func rssDoc(items ...string) string {
	doc := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel>`
	for _, item := range items {
		doc += item
	}
	return doc + `</channel></rss>`
}

func rssItem(title, link, date string) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><description>opis</description><pubDate>%s</pubDate></item>`, title, link, date)
}

func newTestAggregator(topics map[string]config.Topic, fetcher FeedFetcher) *Aggregator {
	return NewAggregator(topics, "biznes", fetcher, NewParser(300), 2)
}

func TestAggregator_Aggregate(t *testing.T) {
	topics := map[string]config.Topic{
		"biznes": {URLs: []string{"https://feeds.test/a", "https://feeds.test/b", "https://feeds.test/broken"}},
	}
	fetcher := &stubFetcher{feeds: map[string]string{
		"https://feeds.test/a": rssDoc(
			rssItem("Starsza wiadomość biznesowa", "https://a.test/1", "Mon, 02 Jan 2006 10:00:00 +0000"),
			rssItem("Najnowsza wiadomość biznesowa", "https://a.test/2", "Wed, 04 Jan 2006 10:00:00 +0000"),
		),
		"https://feeds.test/b": rssDoc(
			rssItem("Środkowa wiadomość biznesowa", "https://b.test/1", "Tue, 03 Jan 2006 10:00:00 +0000"),
		),
	}}

	agg := newTestAggregator(topics, fetcher)
	items := agg.Aggregate(context.Background(), "biznes", 10)

	require.Len(t, items, 3, "broken feed contributes nothing, the rest aggregate")
	assert.Equal(t, "Najnowsza wiadomość biznesowa", items[0].Title)
	assert.Equal(t, "Środkowa wiadomość biznesowa", items[1].Title)
	assert.Equal(t, "Starsza wiadomość biznesowa", items[2].Title)
}

func TestAggregator_Aggregate_DeduplicatesAcrossFeeds(t *testing.T) {
	// syndication partners publish identical headlines under different URLs
	topics := map[string]config.Topic{
		"biznes": {URLs: []string{"https://feeds.test/a", "https://feeds.test/b"}},
	}
	fetcher := &stubFetcher{feeds: map[string]string{
		"https://feeds.test/a": rssDoc(rssItem("Ta sama wiadomość w obu serwisach", "https://a.test/1", "Mon, 02 Jan 2006 10:00:00 +0000")),
		"https://feeds.test/b": rssDoc(rssItem("Ta sama wiadomość w obu serwisach", "https://b.test/1", "Mon, 02 Jan 2006 11:00:00 +0000")),
	}}

	agg := newTestAggregator(topics, fetcher)
	items := agg.Aggregate(context.Background(), "biznes", 10)

	require.Len(t, items, 1)
	assert.Equal(t, "https://a.test/1", items[0].Link, "first feed in registry order wins")
}

func TestAggregator_Aggregate_AppliesKeywordFilter(t *testing.T) {
	topics := map[string]config.Topic{
		"biznes": {URLs: []string{"https://feeds.test/a"}},
		"crypto": {
			URLs:    []string{"https://feeds.test/a"},
			Include: []string{"bitcoin"},
		},
	}
	fetcher := &stubFetcher{feeds: map[string]string{
		"https://feeds.test/a": rssDoc(
			rssItem("Bitcoin osiągnął nowy rekord", "https://a.test/1", "Mon, 02 Jan 2006 10:00:00 +0000"),
			rssItem("WIG20 rośnie", "https://a.test/2", "Mon, 02 Jan 2006 11:00:00 +0000"),
		),
	}}

	agg := newTestAggregator(topics, fetcher)
	items := agg.Aggregate(context.Background(), "crypto", 10)

	require.Len(t, items, 1)
	assert.Equal(t, "Bitcoin osiągnął nowy rekord", items[0].Title)
}

func TestAggregator_Aggregate_Limit(t *testing.T) {
	var feedItems []string
	for i := 0; i < 15; i++ {
		feedItems = append(feedItems, rssItem(
			fmt.Sprintf("Wiadomość numer %d z rynku kapitałowego", i),
			fmt.Sprintf("https://a.test/%d", i),
			fmt.Sprintf("Mon, 02 Jan 2006 %02d:00:00 +0000", i),
		))
	}
	topics := map[string]config.Topic{
		"biznes": {URLs: []string{"https://feeds.test/a"}},
	}
	fetcher := &stubFetcher{feeds: map[string]string{"https://feeds.test/a": rssDoc(feedItems...)}}
	agg := newTestAggregator(topics, fetcher)

	t.Run("explicit limit", func(t *testing.T) {
		assert.Len(t, agg.Aggregate(context.Background(), "biznes", 5), 5)
	})

	t.Run("default limit when non-positive", func(t *testing.T) {
		assert.Len(t, agg.Aggregate(context.Background(), "biznes", 0), DefaultLimit)
	})
}

func TestAggregator_Aggregate_AllFeedsBroken(t *testing.T) {
	topics := map[string]config.Topic{
		"biznes": {URLs: []string{"https://feeds.test/x", "https://feeds.test/y"}},
	}
	agg := newTestAggregator(topics, &stubFetcher{})

	items := agg.Aggregate(context.Background(), "biznes", 10)
	assert.Empty(t, items, "fully failed topic yields an empty list, not an error")
}

func TestAggregator_ResolveTopic(t *testing.T) {
	topics := map[string]config.Topic{
		"biznes": {URLs: []string{"https://feeds.test/a"}},
		"crypto": {URLs: []string{"https://feeds.test/b"}},
	}
	agg := newTestAggregator(topics, &stubFetcher{})

	assert.Equal(t, "crypto", agg.ResolveTopic("crypto"))
	assert.Equal(t, "biznes", agg.ResolveTopic("nieznany"))
	assert.Equal(t, "biznes", agg.ResolveTopic(""))
}

func TestAggregator_Aggregate_UnknownTopicFallsBack(t *testing.T) {
	topics := map[string]config.Topic{
		"biznes": {URLs: []string{"https://feeds.test/a"}},
	}
	fetcher := &stubFetcher{feeds: map[string]string{
		"https://feeds.test/a": rssDoc(rssItem("Wiadomość domyślnego tematu", "https://a.test/1", "Mon, 02 Jan 2006 10:00:00 +0000")),
	}}
	agg := newTestAggregator(topics, fetcher)

	items := agg.Aggregate(context.Background(), "nie-ma-takiego", 10)
	require.Len(t, items, 1)
	assert.Equal(t, "Wiadomość domyślnego tematu", items[0].Title)
}
