package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Func is the shape of a watched function without a meaningful result.
type Func func(ctx context.Context) error

type watchOptions struct {
	notifyOnStart   bool
	notifyOnSuccess bool
	notifyOnFailure bool
	errorDetail     ErrorDetail
	logger          zerolog.Logger
}

// Option configures the behavior of Wrap and WrapResult.
type Option func(*watchOptions)

// WithStartNotification enables a notification before the function runs.
// Off by default.
func WithStartNotification() Option {
	return func(o *watchOptions) { o.notifyOnStart = true }
}

// WithoutSuccessNotification disables the notification sent when the
// function returns without error.
func WithoutSuccessNotification() Option {
	return func(o *watchOptions) { o.notifyOnSuccess = false }
}

// WithoutFailureNotification disables the notification sent when the
// function returns an error.
func WithoutFailureNotification() Option {
	return func(o *watchOptions) { o.notifyOnFailure = false }
}

// WithErrorDetail sets how much of a failure is included in the failure
// notification. Defaults to ErrorDetailMessage.
func WithErrorDetail(d ErrorDetail) Option {
	return func(o *watchOptions) { o.errorDetail = d }
}

// WithLogger sets the logger used to report delivery failures of the
// notifications themselves. Defaults to a disabled logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *watchOptions) { o.logger = logger }
}

// Wrap decorates fn so that its success or failure is reported through the
// notifier. The returned function behaves exactly like fn: its error, if
// any, propagates unchanged. A failure to deliver a notification never masks
// the outcome of fn itself; it is logged and dropped.
func Wrap(n Notifier, name string, fn Func, opts ...Option) Func {
	wrapped := WrapResult(n, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	}, opts...)

	return func(ctx context.Context) error {
		_, err := wrapped(ctx)
		return err
	}
}

// WrapResult is Wrap for functions that return a value alongside the error.
// The value passes through untouched.
func WrapResult[T any](n Notifier, name string, fn func(ctx context.Context) (T, error), opts ...Option) func(ctx context.Context) (T, error) {
	o := watchOptions{
		notifyOnSuccess: true,
		notifyOnFailure: true,
		errorDetail:     ErrorDetailMessage,
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With().Str("component", "watch").Str("function", name).Logger()

	return func(ctx context.Context) (T, error) {
		if o.notifyOnStart {
			event := newEvent(name, OutcomeStarted)
			event.StartedAt = time.Now()
			deliver(ctx, n, &event, &o, log)
		}

		start := time.Now()
		result, err := fn(ctx)
		finish := time.Now()

		event := newEvent(name, OutcomeSucceeded)
		event.StartedAt = start
		event.FinishedAt = finish
		event.Elapsed = finish.Sub(start)

		if err != nil {
			event.Outcome = OutcomeFailed
			event.Err = err
			if o.notifyOnFailure {
				deliver(ctx, n, &event, &o, log)
			}
			// The function's own error is the primary outcome.
			return result, err
		}

		if o.notifyOnSuccess {
			deliver(ctx, n, &event, &o, log)
		}
		return result, nil
	}
}

// deliver sends the event and demotes any delivery failure to a log line, so
// the watched function's result stays the primary outcome.
func deliver(ctx context.Context, n Notifier, event *Event, o *watchOptions, log zerolog.Logger) {
	if err := n.Send(ctx, event.Message(o.errorDetail)); err != nil {
		log.Error().Err(err).
			Stringer("event_id", event.ID).
			Str("outcome", string(event.Outcome)).
			Msg("failed to deliver notification")
	}
}
