package pipeline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// headingSelectors in priority order: the most prominent heading wins.
var headingSelectors = []string{"h1", "h2", "h3"}

// FirstHeading returns the text of the most prominent heading in an HTML
// fragment, or "" when the fragment has no h1-h3 element or cannot be
// parsed. Used as a title fallback for untitled documents.
func FirstHeading(htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	for _, sel := range headingSelectors {
		if heading := doc.Find(sel).First(); heading.Length() > 0 {
			if text := strings.TrimSpace(heading.Text()); text != "" {
				return text
			}
		}
	}
	return ""
}
