package notify

import (
	"errors"
	"testing"
)

func TestConfigurationError_Error(t *testing.T) {
	err := &ConfigurationError{
		Channel: "slack",
		Field:   "webhook_url",
		Reason:  "must not be empty",
	}

	want := "slack: invalid webhook_url: must not be empty"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestConfigurationError_Error_WithCause(t *testing.T) {
	cause := errors.New("missing '@' or angle-addr")
	err := &ConfigurationError{
		Channel: "email",
		Field:   "from",
		Reason:  "not a valid address",
		Err:     cause,
	}

	want := "email: invalid from: not a valid address: missing '@' or angle-addr"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestDeliveryError_Error(t *testing.T) {
	cause := errors.New("connection refused")
	err := &DeliveryError{Channel: "discord", Err: cause}

	want := "discord: delivery failed: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Unwrap() != cause {
		t.Errorf("Unwrap() = %v, want %v", err.Unwrap(), cause)
	}
}

func TestDeliveryError_As(t *testing.T) {
	var wrapped error = &DeliveryError{Channel: "teams", Err: errors.New("timeout")}

	var de *DeliveryError
	if !errors.As(wrapped, &de) {
		t.Fatal("errors.As should match *DeliveryError")
	}
	if de.Channel != "teams" {
		t.Errorf("Channel = %q, want %q", de.Channel, "teams")
	}
}
