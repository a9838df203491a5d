package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// LogNotifier is a mock notifier that implements the Notifier interface.
// It simply logs the message to the console instead of sending it through a
// real channel. This is extremely useful for development and testing.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a new instance of LogNotifier.
func NewLogNotifier(logger *zerolog.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With().Str("component", "log_notifier").Logger(),
	}
}

// Name implements the Notifier interface.
func (n *LogNotifier) Name() string { return "log" }

// Send implements the Notifier interface. It never fails.
func (n *LogNotifier) Send(_ context.Context, message string) error {
	n.logger.Info().
		Str("message", message).
		Msg(">>> MOCK SEND: notification dispatched")

	return nil
}
