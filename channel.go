package notify

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
)

// ChannelNotifier sends notifications to a generic webhook channel, such as a
// notify.run channel or any endpoint accepting `{"text": <message>}`. It is
// the escape hatch for services without a dedicated notifier.
type ChannelNotifier struct {
	channelURL string
	client     *http.Client
	logger     zerolog.Logger
}

// NewChannelNotifier creates a new instance of ChannelNotifier.
func NewChannelNotifier(channelURL string, logger *zerolog.Logger) (*ChannelNotifier, error) {
	if err := validateWebhookURL("channel", channelURL); err != nil {
		return nil, err
	}
	return &ChannelNotifier{
		channelURL: channelURL,
		client:     &http.Client{Timeout: webhookTimeout},
		logger:     logger.With().Str("component", "channel_notifier").Logger(),
	}, nil
}

// Name implements the Notifier interface.
func (n *ChannelNotifier) Name() string { return "channel" }

// Send implements the Notifier interface for generic webhook channels.
func (n *ChannelNotifier) Send(ctx context.Context, message string) error {
	payload := map[string]string{"text": message}

	if err := postJSON(ctx, n.client, n.Name(), n.channelURL, payload); err != nil {
		n.logger.Error().Err(err).Msg("failed to send channel message")
		return err
	}

	n.logger.Info().Msg("channel message sent successfully")
	return nil
}
