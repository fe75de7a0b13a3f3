package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramSink delivers local notifications to the user's Telegram chat.
// With an empty token the sink is disabled and delivery is a logged no-op,
// so the rest of the app works without a bot configured.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID *int64
	log    logger.Logger
}

func NewTelegramSink(token string, chatID *int64, log logger.Logger) (*TelegramSink, error) {
	if token == "" {
		log.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramSink{bot: nil, chatID: chatID, log: log}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramSink{bot: bot, chatID: chatID, log: log}, nil
}

func (t *TelegramSink) Deliver(ctx context.Context, n Notification) error {
	if t.bot == nil {
		t.log.Debug("notification skipped (bot disabled)", logger.String("title", n.Title))
		return nil
	}
	if t.chatID == nil {
		t.log.Debug("notification skipped (no chat_id)", logger.String("title", n.Title))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(*t.chatID, fmt.Sprintf("*%s*\n\n%s", n.Title, n.Body))
	msg.ParseMode = "Markdown"

	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
