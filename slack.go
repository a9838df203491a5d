package notify

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// SlackNotifier sends notifications to a Slack channel through an incoming
// webhook (https://api.slack.com/messaging/webhooks).
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
	logger     zerolog.Logger
}

// NewSlackNotifier creates a new instance of SlackNotifier. It validates the
// webhook URL and performs no network call.
func NewSlackNotifier(webhookURL string, logger *zerolog.Logger) (*SlackNotifier, error) {
	if err := validateWebhookURL("slack", webhookURL); err != nil {
		return nil, err
	}
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: webhookTimeout},
		logger:     logger.With().Str("component", "slack_notifier").Logger(),
	}, nil
}

// Name implements the Notifier interface.
func (n *SlackNotifier) Name() string { return "slack" }

// Send implements the Notifier interface for Slack.
func (n *SlackNotifier) Send(ctx context.Context, message string) error {
	payload := map[string]string{"text": message}

	if err := postJSON(ctx, n.client, n.Name(), n.webhookURL, payload); err != nil {
		n.logger.Error().Err(err).Msg("failed to send slack message")
		return err
	}

	n.logger.Info().Msg("slack message sent successfully")
	return nil
}
