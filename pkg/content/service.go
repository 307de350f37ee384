package content

import (
	"context"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

// PageFetcher retrieves raw article page HTML, empty string on failure.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) string
}

// Service fetches an article page and extracts its readable body text.
type Service struct {
	fetcher   PageFetcher
	extractor *Extractor
}

// NewService creates the article content service.
func NewService(fetcher PageFetcher, extractor *Extractor) *Service {
	return &Service{fetcher: fetcher, extractor: extractor}
}

// Article returns the extraction result for one URL. Content is empty when
// every tier failed, the HTTP layer substitutes its fallback message. The
// remaining metadata fields stay empty on purpose: callers already know
// title and date from the feed item.
func (s *Service) Article(ctx context.Context, rawURL string) domain.ArticleContent {
	html := s.fetcher.Fetch(ctx, rawURL)
	text := s.extractor.Extract(rawURL, html)

	return domain.ArticleContent{
		Content: text,
		Source:  rawURL,
	}
}
