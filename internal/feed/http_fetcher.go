package feed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"
)

// ErrBadStatus is returned when the feed server answers with a non-2xx code.
var ErrBadStatus = errors.New("unexpected feed status")

const userAgent = "Mozilla/5.0 (compatible; sarkari-tracker/1.0; +https://www.freejobalert.com/feed)"

type HTTPFetcher struct {
	client *http.Client
	parser *gofeed.Parser
	log    *zap.Logger
}

func NewHTTPFetcher(timeout time.Duration, log *zap.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
		parser: gofeed.NewParser(),
		log:    log,
	}
}

func (f *HTTPFetcher) Name() string {
	return "HTTP feed"
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	parsed, err := f.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		if it == nil {
			continue
		}
		entries = append(entries, toEntry(it))
	}
	f.log.Debug("feed parsed",
		zap.String("feed_title", parsed.Title),
		zap.String("feed_type", parsed.FeedType),
		zap.Int("items", len(entries)),
	)
	return entries, nil
}

func toEntry(it *gofeed.Item) Entry {
	var published time.Time
	switch {
	case it.PublishedParsed != nil:
		published = *it.PublishedParsed
	case it.UpdatedParsed != nil:
		published = *it.UpdatedParsed
	}

	summary := it.Description
	if summary == "" {
		summary = it.Content
	}

	return Entry{
		Title:     it.Title,
		Link:      it.Link,
		Published: published,
		Summary:   summary,
	}
}
