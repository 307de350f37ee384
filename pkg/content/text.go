package content

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// tag-stripping policy, removes all markup and the content of script/style
var strict = bluemonday.StrictPolicy()

var (
	blankLineTagRe = regexp.MustCompile(`(?i)</p>|</h[1-6]>|</blockquote>`)
	newlineTagRe   = regexp.MustCompile(`(?i)<br\s*/?>|</div>|</li>|</tr>`)
	listItemTagRe  = regexp.MustCompile(`(?i)<li[^>]*>`)
	entityRe       = regexp.MustCompile(`&#?[a-zA-Z0-9]{2,8};`)
	multiSpaceRe   = regexp.MustCompile(`[ \t]{2,}`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// elements whose content never belongs in readable article text
var droppedElements = []string{
	"script", "style", "nav", "header", "footer", "aside",
	"iframe", "figure", "button", "form", "svg",
}

var droppedElementRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, 0, len(droppedElements)+1)
	for _, tag := range droppedElements {
		res = append(res, regexp.MustCompile(`(?is)<`+tag+`[\s>].*?</`+tag+`\s*>`))
	}
	res = append(res, regexp.MustCompile(`(?i)<img[^>]*>`))
	return res
}()

// entityReplacer decodes the entities commonly seen in financial news
// markup. strings.Replacer is single-pass, so double-encoded input like
// &amp;lt; stays literal instead of being decoded twice.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#34;", `"`,
	"&ndash;", "–",
	"&mdash;", "—",
	"&hellip;", "…",
	"&#8211;", "–",
	"&#8212;", "—",
	"&#8217;", "'",
	"&#8220;", "“",
	"&#8221;", "”",
	"&#8230;", "…",
	"&amp;", "&",
)

// HTMLToText converts a fragment of markup to plain text: block-level
// closing tags become line breaks, list items become bullets, remaining
// tags are stripped and common entities decoded. Whitespace is collapsed so
// no more than one blank line separates paragraphs.
func HTMLToText(s string) string {
	if s == "" {
		return ""
	}
	s = blankLineTagRe.ReplaceAllString(s, "\n\n")
	s = listItemTagRe.ReplaceAllString(s, "\n• ")
	s = newlineTagRe.ReplaceAllString(s, "\n")
	s = strict.Sanitize(s)
	s = decodeEntities(s)
	return collapseWhitespace(s)
}

// NormalizeArticle cleans extracted article HTML into paragraphed plain
// text. Unlike HTMLToText it first removes entire non-content elements
// (scripts, navigation, figures and similar chrome) including their text.
func NormalizeArticle(s string) string {
	for _, re := range droppedElementRes {
		s = re.ReplaceAllString(s, " ")
	}
	return HTMLToText(s)
}

// decodeEntities decodes known entities and blanks out the rest, so no
// "&xyz;" leftovers end up in user-visible text.
func decodeEntities(s string) string {
	s = entityReplacer.Replace(s)
	return entityRe.ReplaceAllString(s, " ")
}

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ") // sanitizer decodes &nbsp; to NBSP
	s = strings.ReplaceAll(s, "\t", " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")

	s = multiNewlineRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// Truncate shortens s to at most limit runes, appending an ellipsis when
// anything was cut. A non-positive limit disables truncation.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
