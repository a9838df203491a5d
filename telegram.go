package notify

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// TelegramNotifier sends notifications via a Telegram bot.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// NewTelegramNotifier creates a new instance of TelegramNotifier. Creating
// the bot client verifies the token against the Telegram API, so unlike the
// webhook notifiers this constructor does go to the network.
func NewTelegramNotifier(cfg TelegramConfig, logger *zerolog.Logger) (*TelegramNotifier, error) {
	if cfg.BotToken == "" {
		return nil, &ConfigurationError{Channel: "telegram", Field: "bot_token", Reason: "must not be empty"}
	}
	if cfg.ChatID == 0 {
		return nil, &ConfigurationError{Channel: "telegram", Field: "chat_id", Reason: "must not be zero"}
	}

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, &ConfigurationError{Channel: "telegram", Field: "bot_token", Reason: "rejected by telegram api", Err: err}
	}

	return &TelegramNotifier{
		bot:    bot,
		chatID: cfg.ChatID,
		logger: logger.With().Str("component", "telegram_notifier").Logger(),
	}, nil
}

// Name implements the Notifier interface.
func (n *TelegramNotifier) Name() string { return "telegram" }

// Send implements the Notifier interface for Telegram.
func (n *TelegramNotifier) Send(_ context.Context, message string) error {
	msg := tgbotapi.NewMessage(n.chatID, message)

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error().Err(err).Int64("chat_id", n.chatID).Msg("failed to send telegram message")
		return &DeliveryError{Channel: n.Name(), Err: err}
	}

	n.logger.Info().Int64("chat_id", n.chatID).Msg("telegram message sent successfully")
	return nil
}
