package dailywords

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

const (
	DefaultNotFoundMarker = "Page Not Found"
	DefaultBodySelector   = `p[itemprop="articleBody"]`
)

type Extractor interface {
	Extract(url string, html []byte) (Document, error)
}

// HTMLExtractor parses article pages. goquery builds the tree with the
// html5 parsing algorithm, so unbalanced or sloppy markup is repaired on
// the way in.
type HTMLExtractor struct {
	notFoundMarker      string
	bodySelector        string
	readabilityFallback bool
}

type ExtractorOption func(*HTMLExtractor)

func WithNotFoundMarker(marker string) ExtractorOption {
	return func(e *HTMLExtractor) {
		e.notFoundMarker = marker
	}
}

func WithBodySelector(selector string) ExtractorOption {
	return func(e *HTMLExtractor) {
		e.bodySelector = selector
	}
}

// WithReadabilityFallback makes pages without any body paragraph fall back
// to the main content found by go-readability.
func WithReadabilityFallback(enabled bool) ExtractorOption {
	return func(e *HTMLExtractor) {
		e.readabilityFallback = enabled
	}
}

func NewHTMLExtractor(options ...ExtractorOption) *HTMLExtractor {
	e := &HTMLExtractor{
		notFoundMarker: DefaultNotFoundMarker,
		bodySelector:   DefaultBodySelector,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *HTMLExtractor) Extract(rawURL string, html []byte) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Document{}, fmt.Errorf("parse %s: %w", rawURL, err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if e.notFoundMarker != "" && strings.Contains(strings.ToLower(title), strings.ToLower(e.notFoundMarker)) {
		d := NewDocument(rawURL, title, "")
		d.NotFound = true
		return d, nil
	}

	var parts []string
	doc.Find(e.bodySelector).Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	body := strings.Join(parts, " ")

	// The fallback is best effort: a page readability can't make sense of
	// is treated like an article with no body.
	if body == "" && e.readabilityFallback {
		if text, err := readableText(rawURL, html); err == nil {
			body = text
		}
	}
	return NewDocument(rawURL, title, body), nil
}

// readableBlocks are the elements whose text is kept from readability's
// cleaned content, one part per block.
const readableBlocks = "h1,h2,h3,h4,h5,h6,p,li,blockquote,pre"

func readableText(rawURL string, html []byte) (string, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %s: %w", rawURL, err)
	}
	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(html), pageURL)
	if err != nil {
		return "", fmt.Errorf("readability %s: %w", rawURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("parse readable content %s: %w", rawURL, err)
	}
	var parts []string
	doc.Find(readableBlocks).Each(func(_ int, s *goquery.Selection) {
		// 入れ子のブロックは外側でまとめて拾う
		if s.ParentsFiltered(readableBlocks).Length() > 0 {
			return
		}
		if text := strings.Join(strings.Fields(s.Text()), " "); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return strings.Join(strings.Fields(article.TextContent), " "), nil
	}
	return strings.Join(parts, " "), nil
}
