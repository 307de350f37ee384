package domain

// FeedItem is a single syndicated news entry after parsing and normalization.
// Title and Link are always non-empty, items missing either are dropped
// during parsing. Date carries the raw publish-date string as emitted by the
// source since formats vary between publishers.
type FeedItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Date        string `json:"date"`
	Image       string `json:"image,omitempty"`
}

// ArticleContent is the result of extracting the readable body of one
// article page. Title, Description and Date may be empty, callers fall back
// to the values already known from the feed item.
type ArticleContent struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Source      string `json:"source"`
}
