package content

// DefaultSiteRules maps hostnames (without the leading "www.") to ordered
// lists of CSS selectors tuned to each publisher's known markup. The first
// selector whose captured HTML clears the minimum length wins, short
// matches are assumed to be teasers rather than the article body.
func DefaultSiteRules() map[string][]string {
	return map[string][]string{
		"bankier.pl": {
			"div#articleContent",
			"div.article-body",
			"section.o-article-content",
		},
		"money.pl": {
			"div.article--content",
			"div#article-body",
		},
		"forsal.pl": {
			"div.articleBody",
			"div.article-content",
		},
		"comparic.pl": {
			"div.entry-content",
			"div.td-post-content",
		},
		"bithub.pl": {
			"div.entry-content",
			"article div.content",
		},
		"parkiet.com": {
			"div.article--text",
			"div#article-body",
		},
		"stockwatch.pl": {
			"div.news-content",
			"div#newsContent",
		},
		"strefainwestorow.pl": {
			"div.field--name-body",
			"div.article-content",
		},
		"fxmag.pl": {
			"div.article__content",
			"div.article-body",
		},
	}
}
