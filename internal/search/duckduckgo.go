package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DuckDuckGoEndpoint is the JavaScript-free DuckDuckGo results page.
const DuckDuckGoEndpoint = "https://html.duckduckgo.com/html/"

const userAgent = "Mozilla/5.0 (compatible; tripplan/1.0)"

// DuckDuckGoSearcher scrapes the DuckDuckGo HTML results page. It needs no key.
type DuckDuckGoSearcher struct {
	endpoint string
	client   *http.Client
}

func NewDuckDuckGoSearcher() *DuckDuckGoSearcher {
	return &DuckDuckGoSearcher{
		endpoint: DuckDuckGoEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// WithEndpoint points the searcher at a different results page.
func (d *DuckDuckGoSearcher) WithEndpoint(endpoint string) *DuckDuckGoSearcher {
	d.endpoint = endpoint
	return d
}

func (d *DuckDuckGoSearcher) Name() string {
	return "duckduckgo"
}

func (d *DuckDuckGoSearcher) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}
	limit = clampLimit(limit)

	form := url.Values{"q": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing results page: %w", err)
	}
	return parseResults(doc, limit), nil
}

// parseResults extracts hits from a DuckDuckGo results document. Ads and
// entries without a link are skipped.
func parseResults(doc *goquery.Document, limit int) []Result {
	var results []Result
	doc.Find(".result").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.HasClass("result--ad") {
			return true
		}
		link := s.Find(".result__a").First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}
		results = append(results, Result{
			Title:   strings.TrimSpace(link.Text()),
			URL:     resolveRedirect(href),
			Snippet: strings.TrimSpace(s.Find(".result__snippet").First().Text()),
		})
		return len(results) < limit
	})
	return results
}

// resolveRedirect unwraps DuckDuckGo's "/l/?uddg=<target>" redirect links.
func resolveRedirect(href string) string {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" && strings.HasPrefix(u.Path, "/l/") {
		return target
	}
	return href
}
