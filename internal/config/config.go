// Load envs from .env
// Load YAML config over built-in defaults
// Override with env vars
// Validate config

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // Asia/Kolkata must resolve on hosts without zoneinfo

	"go-sarkari-tracker/internal/filter"
	"go-sarkari-tracker/internal/models"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath  = "configs/config.yaml"
	DefaultFeedURL     = "https://www.freejobalert.com/feed"
	DefaultHistoryPath = "jobs.json"
	DefaultOutputPath  = "index.html"
	DefaultTimezone    = "Asia/Kolkata"
)

type Config struct {
	FeedURL      string        `yaml:"feed_url" env:"TRACKER_FEED_URL"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"TRACKER_FETCH_TIMEOUT"`
	//Paths
	HistoryPath string `yaml:"history_path" env:"TRACKER_HISTORY_PATH"`
	OutputPath  string `yaml:"output_path" env:"TRACKER_OUTPUT_PATH"`
	//Policy
	RetentionDays int    `yaml:"retention_days" env:"TRACKER_RETENTION_DAYS"`
	Timezone      string `yaml:"timezone" env:"TRACKER_TIMEZONE"`
	PageTitle     string `yaml:"page_title" env:"TRACKER_PAGE_TITLE"`
	//Classification
	WBKeywords      []string `yaml:"wb_keywords" env:"TRACKER_WB_KEYWORDS" envSeparator:","`
	CentralKeywords []string `yaml:"central_keywords" env:"TRACKER_CENTRAL_KEYWORDS" envSeparator:","`
	//Notifications, disabled when the token is empty
	TelegramToken    string   `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   int64    `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	NotifyCategories []string `yaml:"notify_categories" env:"TRACKER_NOTIFY_CATEGORIES" envSeparator:","`
	//Logging
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT"`
}

// Default holds the built-in behaviour used when nothing is configured.
func Default() *Config {
	return &Config{
		FeedURL:          DefaultFeedURL,
		FetchTimeout:     30 * time.Second,
		HistoryPath:      DefaultHistoryPath,
		OutputPath:       DefaultOutputPath,
		RetentionDays:    filter.DefaultRetentionDays,
		Timezone:         DefaultTimezone,
		WBKeywords:       append([]string(nil), filter.DefaultWBKeywords...),
		CentralKeywords:  append([]string(nil), filter.DefaultCentralKeywords...),
		NotifyCategories: []string{string(models.CategoryWB), string(models.CategoryCentral)},
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// Path returns the config file to read, TRACKER_CONFIG winning over the default.
func Path() string {
	if p := os.Getenv("TRACKER_CONFIG"); p != "" {
		return p
	}
	return DefaultConfigPath
}

// Load layers defaults, the optional YAML file at path and the environment.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string

	if c.FeedURL == "" {
		errs = append(errs, "feed_url is required")
	} else if !strings.HasPrefix(c.FeedURL, "http://") && !strings.HasPrefix(c.FeedURL, "https://") {
		errs = append(errs, "feed_url must be an http(s) URL")
	}
	if c.FetchTimeout <= 0 {
		errs = append(errs, "fetch_timeout must be > 0")
	}
	if c.HistoryPath == "" {
		errs = append(errs, "history_path is required")
	}
	if c.OutputPath == "" {
		errs = append(errs, "output_path is required")
	}
	if c.RetentionDays < 1 {
		errs = append(errs, "retention_days must be >= 1")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Sprintf("timezone %q: %v", c.Timezone, err))
	}
	if c.TelegramToken != "" && c.TelegramChatID == 0 {
		errs = append(errs, "telegram_chat_id is required when telegram_token is set")
	}
	for _, cat := range c.NotifyCategories {
		if !validCategory(cat) {
			errs = append(errs, fmt.Sprintf("notify_categories: unknown category %q", cat))
		}
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func validCategory(s string) bool {
	for _, c := range models.Categories {
		if string(c) == strings.ToUpper(strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}

// Location resolves Timezone. Validate has already checked it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) NotifyEnabled() bool {
	return c.TelegramToken != ""
}

func (c *Config) Categories() []models.Category {
	out := make([]models.Category, 0, len(c.NotifyCategories))
	for _, s := range c.NotifyCategories {
		out = append(out, models.Category(strings.ToUpper(strings.TrimSpace(s))))
	}
	return out
}
