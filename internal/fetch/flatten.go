package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fhttp "github.com/bogdanfinn/fhttp"

	"github.com/MrJJimenez/jobscan/internal/network"
)

// MaxTextLen caps the flattened page text handed to the analyzer.
const MaxTextLen = 15000

// Page is the linearized rendering of a fetched posting page.
type Page struct {
	URL     string
	Site    string
	Title   string
	Company string
	Text    string
}

// Fetch downloads target and flattens it to posting text.
func Fetch(ctx context.Context, client *network.Client, target string) (*Page, error) {
	doc, err := fetchDocument(ctx, client, target)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, target), nil
}

// FromDocument flattens an already-parsed page. Site-specific selectors are
// tried before the generic chain; body text is the last resort.
func FromDocument(doc *goquery.Document, target string) *Page {
	site := SiteGeneric
	if parsed, err := url.Parse(target); err == nil {
		site = DetectSite(parsed.Hostname())
	}

	sel := siteSelectors[site]
	generic := siteSelectors[SiteGeneric]

	title := trySelectors(doc, sel.Title)
	if title == "" {
		title = trySelectors(doc, generic.Title)
	}

	company := trySelectors(doc, sel.Company)
	if company == "" {
		company = trySelectors(doc, generic.Company)
	}

	text := trySelectors(doc, sel.Description)
	if text == "" {
		text = trySelectors(doc, generic.Description)
	}
	if text == "" {
		text = doc.Find("body").Text()
	}

	text = flattenText(text)
	if len(text) > MaxTextLen {
		text = text[:MaxTextLen]
	}

	return &Page{
		URL:     target,
		Site:    site,
		Title:   collapseSpaces(title),
		Company: collapseSpaces(company),
		Text:    text,
	}
}

func fetchDocument(ctx context.Context, client *network.Client, target string) (*goquery.Document, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("accept-language", "en-US,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("http %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

func trySelectors(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		text := strings.TrimSpace(doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// flattenText collapses intra-line whitespace but keeps line breaks; the
// field extractor's fallbacks depend on line boundaries.
func flattenText(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = collapseSpaces(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func collapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
