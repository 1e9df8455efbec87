package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-sarkari-tracker/internal/dedup"
	"go-sarkari-tracker/internal/feed"
	"go-sarkari-tracker/internal/filter"
	"go-sarkari-tracker/internal/models"
	"go-sarkari-tracker/internal/reporter"

	"go.uber.org/zap"
)

// Notifier announces newly seen jobs. *telegram.Bot implements it.
type Notifier interface {
	Announce(ctx context.Context, jobs []models.Job) (int, error)
}

type Options struct {
	Fetcher       feed.Fetcher
	Classifier    *filter.Classifier
	Store         *dedup.Store
	Renderer      *reporter.HTMLRenderer
	Notifier      Notifier // optional
	FeedURL       string
	OutputPath    string
	RetentionDays int
	Location      *time.Location
	Clock         func() time.Time // defaults to time.Now
	Logger        *zap.Logger
}

type Tracker struct {
	opts Options
	log  *zap.Logger
}

// Summary describes one run.
type Summary struct {
	Fetched     int
	Added       int
	Duplicates  int
	Expired     int
	Total       int
	Notified    int
	PerCategory map[models.Category]int
	// FetchErr is set when the feed could not be read; the run still
	// completes with no new jobs.
	FetchErr error
}

func New(opts Options) *Tracker {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.RetentionDays <= 0 {
		opts.RetentionDays = filter.DefaultRetentionDays
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Tracker{opts: opts, log: opts.Logger}
}

// Run does one fetch, merge, save, render cycle under the history lock.
func (t *Tracker) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	unlock, err := t.opts.Store.Lock()
	if err != nil {
		return sum, err
	}
	defer func() {
		if err := unlock(); err != nil {
			t.log.Warn("⚠️ Failed to release history lock", zap.Error(err))
		}
	}()

	history, err := t.opts.Store.Load()
	if err != nil {
		return sum, err
	}

	now := t.opts.Clock().In(t.opts.Location)
	today := filter.Today(now, t.opts.Location)

	t.log.Info("📥 Fetching feed", zap.String("source", t.opts.Fetcher.Name()), zap.String("url", t.opts.FeedURL))
	entries, err := t.opts.Fetcher.Fetch(ctx, t.opts.FeedURL)
	if err != nil {
		// the page is still re-rendered so expiry keeps working while the feed is down
		t.log.Error("❌ Feed fetch failed, continuing with no new jobs", zap.Error(err))
		sum.FetchErr = err
		entries = nil
	}
	sum.Fetched = len(entries)

	fresh := make([]models.Job, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Link) == "" {
			t.log.Debug("skipping entry without link", zap.String("title", e.Title))
			continue
		}
		fresh = append(fresh, t.opts.Classifier.ToJob(e, today))
	}

	res := dedup.Merge(history, fresh, today, t.opts.RetentionDays)
	sum.Added = len(res.Added)
	sum.Duplicates = res.Duplicates
	sum.Expired = res.Expired
	sum.Total = len(res.Jobs)
	sum.PerCategory = countByCategory(res.Jobs)
	t.log.Info("🔍 Deduplication",
		zap.Int("fetched", sum.Fetched),
		zap.Int("added", sum.Added),
		zap.Int("duplicates", sum.Duplicates),
		zap.Int("expired", sum.Expired),
		zap.Int("total", sum.Total),
	)

	if err := t.opts.Store.Save(res.Jobs); err != nil {
		return sum, err
	}

	if err := t.opts.Renderer.WriteFile(t.opts.OutputPath, res.Jobs, now); err != nil {
		return sum, fmt.Errorf("render %s: %w", t.opts.OutputPath, err)
	}
	t.log.Info("📁 Page written", zap.String("path", t.opts.OutputPath))

	if t.opts.Notifier != nil && len(res.Added) > 0 {
		sent, err := t.opts.Notifier.Announce(ctx, res.Added)
		if err != nil {
			t.log.Warn("⚠️ Notification stopped early", zap.Error(err))
		}
		sum.Notified = sent
	}

	return sum, nil
}

func countByCategory(jobs []models.Job) map[models.Category]int {
	out := make(map[models.Category]int, len(models.Categories))
	for cat, part := range reporter.Partition(jobs) {
		out[cat] = len(part)
	}
	return out
}
