package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const webhookTimeout = 10 * time.Second

// validateWebhookURL checks that a webhook URL is present, parseable, and
// uses an http(s) scheme. This is the only validation performed; the URL is
// otherwise trusted literally.
func validateWebhookURL(channel, webhookURL string) error {
	if webhookURL == "" {
		return &ConfigurationError{Channel: channel, Field: "webhook_url", Reason: "must not be empty"}
	}
	u, err := url.Parse(webhookURL)
	if err != nil {
		return &ConfigurationError{Channel: channel, Field: "webhook_url", Reason: "not a valid URL", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ConfigurationError{Channel: channel, Field: "webhook_url", Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return &ConfigurationError{Channel: channel, Field: "webhook_url", Reason: "missing host"}
	}
	return nil
}

// postJSON issues a single POST of the payload to the webhook URL. Any
// transport error or non-2xx response is returned as a *DeliveryError.
func postJSON(ctx context.Context, client *http.Client, channel, webhookURL string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &DeliveryError{Channel: channel, Err: fmt.Errorf("failed to encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{Channel: channel, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return &DeliveryError{Channel: channel, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Webhook endpoints put the failure reason in the body, keep a snippet.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &DeliveryError{
			Channel: channel,
			Err:     fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(snippet)),
		}
	}

	return nil
}
