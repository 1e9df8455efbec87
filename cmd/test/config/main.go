package main

import (
	"fmt"
	"os"

	"go-sarkari-tracker/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Feed URL: %s\n", cfg.FeedURL)
	fmt.Printf("   Fetch Timeout: %s\n", cfg.FetchTimeout)
	fmt.Printf("   History Path: %s\n", cfg.HistoryPath)
	fmt.Printf("   Output Path: %s\n", cfg.OutputPath)
	fmt.Printf("   Retention: %d days\n", cfg.RetentionDays)
	fmt.Printf("   Timezone: %s\n", cfg.Timezone)
	fmt.Printf("   WB Keywords: %d\n", len(cfg.WBKeywords))
	fmt.Printf("   Central Keywords: %d\n", len(cfg.CentralKeywords))
	if cfg.NotifyEnabled() {
		fmt.Printf("   Telegram: on (chat %d, categories %v)\n", cfg.TelegramChatID, cfg.NotifyCategories)
	} else {
		fmt.Println("   Telegram: off")
	}
}
