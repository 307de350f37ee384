package content

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"

	"github.com/TomaszChromy/fusionfinance.pl-sub001/pkg/config"
)

// genericSelectors are tried in order when no site-specific rule matched.
// They cover the content wrappers common across CMSes used by financial
// news sites.
var genericSelectors = []string{
	"article",
	`div[class*="article-body"]`,
	`div[class*="article-content"]`,
	`div[class*="entry-content"]`,
	`div[class*="post-content"]`,
	`div[class*="text-content"]`,
	`div[class*="story-body"]`,
	"main",
}

// boilerplateRes reject harvested paragraphs that are navigation chrome
// rather than article text
var boilerplateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)czytaj (też|także|więcej|dalej|również)`),
	regexp.MustCompile(`(?i)zobacz (też|także|również)`),
	regexp.MustCompile(`(?i)read (more|also)`),
	regexp.MustCompile(`(?i)\breklam|advertisement|sponsorowan`),
	regexp.MustCompile(`(?i)cookie|rodo|polityk\w* prywatności|privacy policy`),
	regexp.MustCompile(`(?i)udostępnij|skomentuj|\bshare\b|comments?\b`),
	regexp.MustCompile(`(?i)zapisz się|newsletter|subskryb`),
}

// Extractor pulls readable article text out of arbitrary page HTML using a
// cascade of strategies: site-specific selectors, generic selectors and
// JSON-LD, paragraph harvesting, and optionally a readability engine. Later
// tiers exist to compensate for the failure modes of earlier ones, so the
// precedence order is part of the contract.
type Extractor struct {
	siteRules map[string][]string
	cfg       config.ExtractionConfig
}

// NewExtractor creates an extractor with the given site rule registry. The
// registry is read-only after construction.
func NewExtractor(siteRules map[string][]string, cfg config.ExtractionConfig) *Extractor {
	return &Extractor{siteRules: siteRules, cfg: cfg}
}

// Extract returns paragraphed plain text for the page, empty string when
// nothing usable was found. It never fails: malformed markup just falls
// through to the next tier.
func (e *Extractor) Extract(pageURL, rawHTML string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	if text := e.siteSpecific(pageURL, doc); text != "" {
		return text
	}
	if text := e.generic(doc); text != "" {
		return text
	}
	if text := e.harvestParagraphs(doc); text != "" {
		return text
	}
	if !e.cfg.DisableReadability {
		return e.readability(pageURL, rawHTML)
	}
	return ""
}

// siteSpecific tries the selector rules registered for the page's host.
func (e *Extractor) siteSpecific(pageURL string, doc *goquery.Document) string {
	rules, ok := e.siteRules[normalizeHost(pageURL)]
	if !ok {
		return ""
	}

	for _, sel := range rules {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		h, err := node.Html()
		if err != nil || len(h) <= e.cfg.MinSiteRuleLength {
			continue
		}
		if text := NormalizeArticle(h); text != "" {
			return text
		}
	}
	return ""
}

// generic tries structured data first, then common container conventions.
// JSON-LD is accepted on successful parse regardless of length since it is
// structured data rather than a loose match.
func (e *Extractor) generic(doc *goquery.Document) string {
	if body := jsonLDBody(doc); body != "" {
		return HTMLToText(body)
	}

	for _, sel := range genericSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		h, err := node.Html()
		if err != nil || len(h) <= e.cfg.MinGenericLength {
			continue
		}
		if text := NormalizeArticle(h); text != "" {
			return text
		}
	}
	return ""
}

// harvestParagraphs is the last selector tier: collect every <p> long
// enough to be prose and not matching a boilerplate pattern.
func (e *Extractor) harvestParagraphs(doc *goquery.Document) string {
	var parts []string

	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(collapseWhitespace(s.Text()))
		if utf8.RuneCountInString(text) <= e.cfg.MinParagraphLength {
			return
		}
		for _, re := range boilerplateRes {
			if re.MatchString(text) {
				return
			}
		}
		parts = append(parts, text)
	})

	return strings.Join(parts, "\n\n")
}

// readability runs trafilatura over the whole document as the final
// fallback, its own heuristics sometimes recover text the selector tiers
// cannot locate.
func (e *Extractor) readability(pageURL, rawHTML string) string {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}
	if u, err := url.Parse(pageURL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil {
		return ""
	}
	return strings.TrimSpace(result.ContentText)
}

// jsonLDBody looks for an articleBody field in ld+json blocks, either as a
// single object or an array of them.
func jsonLDBody(doc *goquery.Document) string {
	var body string

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}

		var single struct {
			ArticleBody string `json:"articleBody"`
		}
		if err := json.Unmarshal([]byte(raw), &single); err == nil && single.ArticleBody != "" {
			body = single.ArticleBody
			return false
		}

		var list []struct {
			ArticleBody string `json:"articleBody"`
		}
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			for _, el := range list {
				if el.ArticleBody != "" {
					body = el.ArticleBody
					return false
				}
			}
		}
		return true
	})

	return body
}

// normalizeHost returns the URL's hostname without a leading "www.".
func normalizeHost(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
