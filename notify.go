// Package notify sends script and job notifications to external channels
// (Slack, Discord, Microsoft Teams, generic webhooks, email, Telegram) and
// provides Wrap, which decorates a function so that its start, success, or
// failure is reported through a Notifier automatically.
package notify

import "context"

// Notifier defines the interface for any notification sending service.
// This allows us to easily swap or add new notification channels (e.g., SMS, Slack).
type Notifier interface {
	// Name returns the channel identifier for this notifier (e.g. "slack").
	Name() string

	// Send dispatches the message to the channel. It blocks for the duration
	// of the underlying network call and returns a *DeliveryError on
	// transport failure. No retries are performed.
	Send(ctx context.Context, message string) error
}
