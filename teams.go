package notify

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// TeamsNotifier sends notifications to a Microsoft Teams channel through an
// incoming webhook connector. The connector accepts a simple message card
// with a "text" field.
type TeamsNotifier struct {
	webhookURL string
	client     *http.Client
	logger     zerolog.Logger
}

// NewTeamsNotifier creates a new instance of TeamsNotifier.
func NewTeamsNotifier(webhookURL string, logger *zerolog.Logger) (*TeamsNotifier, error) {
	if err := validateWebhookURL("teams", webhookURL); err != nil {
		return nil, err
	}
	return &TeamsNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: webhookTimeout},
		logger:     logger.With().Str("component", "teams_notifier").Logger(),
	}, nil
}

// Name implements the Notifier interface.
func (n *TeamsNotifier) Name() string { return "teams" }

// Send implements the Notifier interface for Teams.
func (n *TeamsNotifier) Send(ctx context.Context, message string) error {
	payload := map[string]string{"text": message}

	if err := postJSON(ctx, n.client, n.Name(), n.webhookURL, payload); err != nil {
		n.logger.Error().Err(err).Msg("failed to send teams message")
		return err
	}

	n.logger.Info().Msg("teams message sent successfully")
	return nil
}
