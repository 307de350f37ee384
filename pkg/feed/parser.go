package feed

import (
	"log"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/content"
	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/domain"
)

var imgSrcRe = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)

// Parser converts raw RSS/Atom documents into normalized feed items.
type Parser struct {
	parser           *gofeed.Parser
	descriptionLimit int
}

// NewParser creates a parser. descriptionLimit bounds the plain-text
// description kept for list views.
func NewParser(descriptionLimit int) *Parser {
	return &Parser{
		parser:           gofeed.NewParser(),
		descriptionLimit: descriptionLimit,
	}
}

// Parse extracts items from a raw feed document. Unparsable input yields
// nil, items missing a title or link after normalization are dropped.
func (p *Parser) Parse(raw string) []domain.FeedItem {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	feed, err := p.parser.ParseString(raw)
	if err != nil {
		log.Printf("[WARN] unparsable feed document: %v", err)
		return nil
	}

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		title := content.HTMLToText(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}

		// prefer the richer content:encoded field over description
		body := it.Content
		if strings.TrimSpace(body) == "" {
			body = it.Description
		}

		item := domain.FeedItem{
			Title:       title,
			Link:        link,
			Description: content.Truncate(content.HTMLToText(it.Description), p.descriptionLimit),
			Content:     content.HTMLToText(body),
			Date:        publishedString(it),
			Image:       resolveImage(it, body),
		}
		if item.Content == "" {
			item.Content = item.Description
		}

		items = append(items, item)
	}
	return items
}

// publishedString returns the raw publish-date string as provided by the
// source. Formats vary between publishers and are parsed lazily at sort
// time, tolerating failures.
func publishedString(it *gofeed.Item) string {
	if it.Published != "" {
		return it.Published
	}
	return it.Updated
}

// resolveImage picks a best-effort thumbnail: enclosure, then
// media:content, then media:thumbnail, then the first <img> in the body.
func resolveImage(it *gofeed.Item, body string) string {
	for _, enc := range it.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if enc.Type == "" || strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	if media, ok := it.Extensions["media"]; ok {
		for _, key := range []string{"content", "thumbnail"} {
			for _, ext := range media[key] {
				if u := ext.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}

	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}

	if m := imgSrcRe.FindStringSubmatch(body); m != nil {
		return m[1]
	}
	return ""
}
