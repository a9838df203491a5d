package notify

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// MultiNotifier is a composite notifier that fans a message out to several
// channel-specific notifiers. It implements the Notifier interface itself.
type MultiNotifier struct {
	notifiers []Notifier
	logger    zerolog.Logger
}

// NewMultiNotifier creates a new MultiNotifier over the given notifiers.
func NewMultiNotifier(logger *zerolog.Logger, notifiers ...Notifier) *MultiNotifier {
	return &MultiNotifier{
		notifiers: notifiers,
		logger:    logger.With().Str("component", "multi_notifier").Logger(),
	}
}

// Name implements the Notifier interface.
func (m *MultiNotifier) Name() string { return "multi" }

// Send implements the Notifier interface. Every notifier is attempted even
// when earlier ones fail; the failures are joined into the returned error.
func (m *MultiNotifier) Send(ctx context.Context, message string) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Send(ctx, message); err != nil {
			m.logger.Error().Err(err).Str("channel", n.Name()).Msg("notifier failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
