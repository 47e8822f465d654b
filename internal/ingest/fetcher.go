package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/temoto/robotstxt"

	"github.com/credlens/credlens/internal/model"
)

// Fetcher retrieves a single article page and normalizes it. robots.txt is
// checked per host before fetching.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64

	robotsMu sync.RWMutex
	robots   map[string]*robotstxt.RobotsData
}

// NewFetcher creates a fetcher from the HTTP configuration.
func NewFetcher(cfg model.HTTPConfig) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    make(map[string]*robotstxt.RobotsData),
	}
}

// Fetch retrieves the page at rawURL and returns it as a normalized Article.
// The page title becomes the article title and the stripped body text the
// content.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*model.Article, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}

	if !f.allowed(ctx, parsed) {
		return nil, fmt.Errorf("disallowed by robots.txt: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	finalURL := resp.Request.URL.String()
	page := string(body)

	return &model.Article{
		ID:          model.ArticleID(finalURL),
		Title:       pageTitle(page),
		Content:     StripHTML(page),
		Source:      parsed.Host,
		URL:         finalURL,
		PublishedAt: time.Now().UTC(),
	}, nil
}

// allowed checks robots.txt for the URL's host, caching per host. An
// unreachable robots.txt allows fetching.
func (f *Fetcher) allowed(ctx context.Context, u *url.URL) bool {
	f.robotsMu.RLock()
	data, cached := f.robots[u.Host]
	f.robotsMu.RUnlock()

	if !cached {
		data = f.fetchRobots(ctx, u)
		f.robotsMu.Lock()
		f.robots[u.Host] = data
		f.robotsMu.Unlock()
	}

	if data == nil {
		return true
	}
	return data.TestAgent(u.Path, f.userAgent)
}

func (f *Fetcher) fetchRobots(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	robotsURL := fmt.Sprintf("%s://%s/robots.txt", u.Scheme, u.Host)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return data
}

// pageTitle extracts the <title> text from a page, if any.
func pageTitle(page string) string {
	lower := strings.ToLower(page)
	start := strings.Index(lower, "<title")
	if start < 0 {
		return ""
	}
	open := strings.Index(page[start:], ">")
	if open < 0 {
		return ""
	}
	rest := page[start+open+1:]
	end := strings.Index(strings.ToLower(rest), "</title>")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}
