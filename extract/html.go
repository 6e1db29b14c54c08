package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/guilgui51/keyhub"
)

// defaultKeyAttrs are the attributes scanned for key references, in order.
var defaultKeyAttrs = []string{"data-i18n", "data-i18n-key"}

// HTMLExtractor discovers keys referenced by data-i18n attributes in HTML
// templates. Multiple references in one attribute are separated by
// semicolons, and each may carry an i18next selector prefix like
// "[title]ns:key" which is stripped.
type HTMLExtractor struct {
	attrs []string
}

// NewHTMLExtractor creates an HTML extractor scanning the default key
// attributes.
func NewHTMLExtractor() *HTMLExtractor {
	return &HTMLExtractor{attrs: defaultKeyAttrs}
}

// NewHTMLExtractorWithAttrs creates an HTML extractor scanning custom
// attributes.
func NewHTMLExtractorWithAttrs(attrs []string) *HTMLExtractor {
	return &HTMLExtractor{attrs: attrs}
}

// Extensions returns the file extensions handled by the extractor.
func (e *HTMLExtractor) Extensions() []string {
	return []string{".html", ".htm"}
}

// Extract parses HTML and collects the keys its elements reference.
func (e *HTMLExtractor) Extract(content string) ([]Key, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, &keyhub.CatalogError{Message: "parsing HTML", Cause: err}
	}

	var keys []Key
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				if !e.isKeyAttr(attr.Key) {
					continue
				}
				for _, ref := range strings.Split(attr.Val, ";") {
					if k, ok := splitKey(stripSelector(ref)); ok {
						keys = append(keys, k)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return keys, nil
}

func (e *HTMLExtractor) isKeyAttr(name string) bool {
	for _, a := range e.attrs {
		if name == a {
			return true
		}
	}
	return false
}

// stripSelector removes the "[attr]" target prefix of an i18next reference.
func stripSelector(ref string) string {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "[") {
		if end := strings.Index(ref, "]"); end >= 0 {
			return ref[end+1:]
		}
	}
	return ref
}

// Verify HTMLExtractor implements Extractor
var _ Extractor = (*HTMLExtractor)(nil)
