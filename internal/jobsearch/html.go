package jobsearch

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// StripHTML reduces an HTML job description to plain text. Providers mix
// plain-text and HTML descriptions; anything without markup passes through
// with only whitespace normalization.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return normalizeWhitespace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return normalizeWhitespace(s)
	}

	doc.Find("script, style").Remove()
	return normalizeWhitespace(doc.Text())
}

func normalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
