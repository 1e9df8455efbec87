package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go-sarkari-tracker/internal/config"
	"go-sarkari-tracker/internal/dedup"
	"go-sarkari-tracker/internal/feed"
	"go-sarkari-tracker/internal/filter"
	"go-sarkari-tracker/internal/logging"
	"go-sarkari-tracker/internal/reporter"
	"go-sarkari-tracker/internal/telegram"
	"go-sarkari-tracker/internal/tracker"

	"go.uber.org/zap"
)

func main() {
	//load config
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("🔧 Config loaded",
		zap.String("feed", cfg.FeedURL),
		zap.String("history", cfg.HistoryPath),
		zap.String("output", cfg.OutputPath),
		zap.Int("retention_days", cfg.RetentionDays),
	)

	//setup context with timeout = 5 mins
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	opts := tracker.Options{
		Fetcher:       feed.NewHTTPFetcher(cfg.FetchTimeout, log),
		Classifier:    filter.NewClassifier(cfg.WBKeywords, cfg.CentralKeywords),
		Store:         dedup.NewStore(cfg.HistoryPath, log),
		Renderer:      reporter.NewHTMLRenderer(cfg.Location(), cfg.PageTitle),
		FeedURL:       cfg.FeedURL,
		OutputPath:    cfg.OutputPath,
		RetentionDays: cfg.RetentionDays,
		Location:      cfg.Location(),
		Logger:        log,
	}

	//init telegram bot, optional
	if cfg.NotifyEnabled() {
		bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID, cfg.Categories(), log)
		if err != nil {
			log.Warn("⚠️ Telegram disabled", zap.Error(err))
		} else {
			opts.Notifier = bot
			log.Info("🤖 Telegram Bot initialized.")
		}
	}

	log.Info("🚀 Starting Sarkari Job Tracker...")
	sum, err := tracker.New(opts).Run(ctx)
	if err != nil {
		log.Fatal("❌ Run failed", zap.Error(err))
	}

	log.Info("🏁 Execution finished.",
		zap.Int("added", sum.Added),
		zap.Int("expired", sum.Expired),
		zap.Int("total", sum.Total),
		zap.Int("wb", sum.PerCategory["WB"]),
		zap.Int("central", sum.PerCategory["CENTRAL"]),
		zap.Int("other", sum.PerCategory["OTHER"]),
		zap.Int("notified", sum.Notified),
		zap.Bool("feed_ok", sum.FetchErr == nil),
	)
	fmt.Println("Website generated successfully.")
}
