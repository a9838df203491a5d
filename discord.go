package notify

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// Discord messages have a size limit of 2000 characters.
const discordMessageLimit = 2000

// DiscordNotifier sends notifications to a Discord channel through a webhook
// (https://discord.com/developers/docs/resources/webhook).
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
	logger     zerolog.Logger
}

// NewDiscordNotifier creates a new instance of DiscordNotifier.
func NewDiscordNotifier(webhookURL string, logger *zerolog.Logger) (*DiscordNotifier, error) {
	if err := validateWebhookURL("discord", webhookURL); err != nil {
		return nil, err
	}
	return &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: webhookTimeout},
		logger:     logger.With().Str("component", "discord_notifier").Logger(),
	}, nil
}

// Name implements the Notifier interface.
func (n *DiscordNotifier) Name() string { return "discord" }

// Send implements the Notifier interface for Discord. Discord uses "content"
// instead of "text" in its webhook payload and rejects oversized messages,
// so long messages are truncated.
func (n *DiscordNotifier) Send(ctx context.Context, message string) error {
	if len(message) > discordMessageLimit {
		message = message[:discordMessageLimit-3] + "..."
	}
	payload := map[string]string{"content": message}

	if err := postJSON(ctx, n.client, n.Name(), n.webhookURL, payload); err != nil {
		n.logger.Error().Err(err).Msg("failed to send discord message")
		return err
	}

	n.logger.Info().Msg("discord message sent successfully")
	return nil
}
