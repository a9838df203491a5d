package notify

import "fmt"

// ConfigurationError reports invalid or missing notifier settings. It is
// returned only at construction time; a notifier that was built successfully
// never returns it from Send.
type ConfigurationError struct {
	Channel string // channel the notifier serves, e.g. "slack"
	Field   string // offending setting, e.g. "webhook_url"
	Reason  string
	Err     error // underlying cause, may be nil
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: invalid %s: %s: %v", e.Channel, e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: invalid %s: %s", e.Channel, e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// DeliveryError reports a transport failure while sending a notification
// (network error, authentication error, non-2xx webhook response).
type DeliveryError struct {
	Channel string
	Err     error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: delivery failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
