package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const blockSelectors = "p, li, h1, h2, h3, h4, h5, h6, div, br, tr, section, article, header, footer"

// HTMLText returns the visible text of an HTML document, one block per line.
func HTMLText(doc string) (string, error) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("%w: html: %v", ErrExtractionFailure, err)
	}
	parsed.Find("script, style, noscript, template").Remove()
	parsed.Find(blockSelectors).Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	root := parsed.Find("body")
	if root.Length() == 0 {
		root = parsed.Selection
	}

	lines := strings.Split(root.Text(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), nil
}
