package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// fetchTimeout bounds one job-posting fetch.
const fetchTimeout = 30 * time.Second

// userAgent identifies the agent to job boards that reject blank agents.
const userAgent = "Mozilla/5.0 (compatible; PlacementAgent/1.0)"

var (
	// ErrInvalidURL is returned when the URL is not absolute http/https.
	ErrInvalidURL = fmt.Errorf("invalid URL")
	// ErrFetchFailed is returned when the HTTP request fails.
	ErrFetchFailed = fmt.Errorf("fetch failed")
)

// FromURL fetches a job posting page and extracts its readable text. Script,
// style and navigation chrome are stripped before text extraction; the result
// is cleaned the same way as pasted text.
func FromURL(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	text, err := extractText(string(body))
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

// extractText pulls readable text out of an HTML document, preferring a main
// content region over the full body.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner").Remove()

	content := doc.Find("main, article, [role=main], .job-description, #job-description").First()
	if content.Length() == 0 {
		content = doc.Find("body")
	}
	return content.Text(), nil
}
