package telegram

import (
	"context"
	"fmt"
	"strings"

	"go-sarkari-tracker/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// sender is the part of *tgbotapi.BotAPI the bot needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api     sender
	chatID  int64
	limiter *rate.Limiter
	notify  map[models.Category]bool
	log     *zap.Logger
}

// NewBot connects to the Bot API. Only jobs in the given categories are
// announced; Telegram allows roughly one message per second per chat.
func NewBot(token string, chatID int64, categories []models.Category, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return newBot(api, chatID, rate.NewLimiter(rate.Limit(1), 1), categories, log), nil
}

func newBot(api sender, chatID int64, limiter *rate.Limiter, categories []models.Category, log *zap.Logger) *Bot {
	notify := make(map[models.Category]bool, len(categories))
	for _, c := range categories {
		notify[c] = true
	}
	return &Bot{
		api:     api,
		chatID:  chatID,
		limiter: limiter,
		notify:  notify,
		log:     log,
	}
}

func (b *Bot) escapeMarkdown(text string) string {
	replacer := strings.NewReplacer(
		"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(", "\\(",
		")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>", "#", "\\#",
		"+", "\\+", "-", "\\-", "=", "\\=", "|", "\\|", "{", "\\{",
		"}", "\\}", ".", "\\.", "!", "\\!",
	)
	return replacer.Replace(text)
}

// escapeURL escapes what MarkdownV2 reserves inside the (...) of a link.
func (b *Bot) escapeURL(url string) string {
	return strings.NewReplacer(")", "\\)", "\\", "\\\\").Replace(url)
}

var categoryLabel = map[models.Category]string{
	models.CategoryWB:      "🟢 West Bengal",
	models.CategoryCentral: "🔵 Central",
	models.CategoryOther:   "⚪ Other",
}

func (b *Bot) formatJob(job models.Job) string {
	msgText := fmt.Sprintf("🆕 *%s*\n", b.escapeMarkdown(job.Title))
	msgText += fmt.Sprintf("🏛 %s\n", b.escapeMarkdown(categoryLabel[job.Category]))
	msgText += fmt.Sprintf("📅 Last Date: %s\n", b.escapeMarkdown(job.LastDate))
	msgText += fmt.Sprintf("🔗 [View Details](%s)\n", b.escapeURL(job.Link))
	return msgText
}

func (b *Bot) SendJob(ctx context.Context, job models.Job) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔗 View Job", job.Link),
		),
	)

	msg := tgbotapi.NewMessage(b.chatID, b.formatJob(job))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = keyboard
	msg.DisableWebPagePreview = true

	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendStatus(ctx context.Context, message string) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(b.chatID, "ℹ️ "+message)
	_, err := b.api.Send(msg)
	return err
}

// Announce sends every job in a watched category and a closing status line.
// Send failures are logged and skipped; only a cancelled context stops it.
func (b *Bot) Announce(ctx context.Context, jobs []models.Job) (int, error) {
	sent := 0
	for _, job := range jobs {
		if !b.notify[job.Category] {
			continue
		}
		if err := b.SendJob(ctx, job); err != nil {
			if ctx.Err() != nil {
				return sent, ctx.Err()
			}
			b.log.Warn("⚠️ Failed to send job to Telegram", zap.String("link", job.Link), zap.Error(err))
			continue
		}
		sent++
	}

	if sent > 0 {
		if err := b.SendStatus(ctx, fmt.Sprintf("Found %d new government jobs.", sent)); err != nil {
			b.log.Warn("⚠️ Failed to send status to Telegram", zap.Error(err))
		}
	}
	return sent, nil
}
