// Package pointhub provides a client for fetching published point
// valuations from a remote JSON feed.
package pointhub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cardworth/internal/config"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
)

var (
	// ErrUnauthorized indicates the feed requires credentials this client lacks.
	ErrUnauthorized = errors.New("pointhub: unauthorized")
	// ErrRateLimited indicates the feed's rate limit was hit.
	ErrRateLimited = errors.New("pointhub: rate limited")
	// ErrEmptyFeed indicates the feed parsed but contained no usable programs.
	ErrEmptyFeed = errors.New("pointhub: feed contains no valuations")
)

// Client fetches point valuations from a feed URL.
type Client struct {
	feedURL string
	http    *http.Client
}

// NewClient creates a client for the given feed URL.
// Returns nil if the URL is empty or not http(s).
func NewClient(feedURL string) *Client {
	feedURL = strings.TrimSpace(feedURL)
	if feedURL == "" {
		return nil
	}
	u, err := url.Parse(feedURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil
	}
	return &Client{
		feedURL: feedURL,
		http:    &http.Client{},
	}
}

// Fetch downloads and parses the feed into a merge-ready valuation set.
// Program names are normalized to canonical slugs; entries without a
// parseable cents-per-point value are counted in Skipped and dropped.
func (c *Client) Fetch(ctx context.Context) (*ValuationSet, error) {
	body, err := c.get(ctx)
	if err != nil {
		return nil, err
	}

	var feed Feed
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("pointhub: parsing feed: %w", err)
	}

	set := &ValuationSet{
		Values:    make(map[string]float64, len(feed.Programs)),
		Source:    feed.Source,
		FetchedAt: time.Now(),
	}
	if feed.UpdatedAt != nil {
		if t, err := time.Parse(time.RFC3339, *feed.UpdatedAt); err == nil {
			set.UpdatedAt = t
		}
	}

	for _, p := range feed.Programs {
		name := config.NormalizeProgramName(p.Program)
		cents, ok := parseCents(p.CentsPerPoint)
		if name == "" || !ok {
			set.Skipped++
			continue
		}
		set.Values[name] = cents
	}

	if len(set.Values) == 0 {
		return nil, ErrEmptyFeed
	}
	return set, nil
}

// get performs the GET request and returns the response body.
func (c *Client) get(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pointhub: creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cardworth/1.0")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pointhub: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pointhub: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("pointhub: reading response: %w", err)
	}
	return body, nil
}

// parseCents parses the polymorphic cents-per-point field.
// Handles numbers (1.25), strings ("1.25"), and cent-suffixed
// strings ("1.25¢" or "1.25c"). Rejects non-positive values.
func parseCents(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, f > 0
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		s = strings.TrimSuffix(s, "¢")
		s = strings.TrimSuffix(s, "c")
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v, v > 0
		}
	}

	return 0, false
}
