package notify

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

const defaultEmailSubject = "Script notification"

// EmailNotifier sends notifications via SMTP. Each Send opens one SMTP
// session, delivers the message, and closes the session, so a single
// instance is reusable for any number of notifications.
type EmailNotifier struct {
	dialer  *gomail.Dialer
	from    string
	to      string
	subject string
	logger  zerolog.Logger
}

// NewEmailNotifier creates a new instance of EmailNotifier. It validates the
// SMTP host, port, and both addresses up front and performs no network call;
// the connection is only dialed on Send.
func NewEmailNotifier(cfg EmailConfig, logger *zerolog.Logger) (*EmailNotifier, error) {
	if cfg.Host == "" {
		return nil, &ConfigurationError{Channel: "email", Field: "host", Reason: "must not be empty"}
	}
	if cfg.Port <= 0 {
		return nil, &ConfigurationError{Channel: "email", Field: "port", Reason: fmt.Sprintf("must be positive, got %d", cfg.Port)}
	}
	if _, err := mail.ParseAddress(cfg.From); err != nil {
		return nil, &ConfigurationError{Channel: "email", Field: "from", Reason: "not a valid address", Err: err}
	}
	if _, err := mail.ParseAddress(cfg.To); err != nil {
		return nil, &ConfigurationError{Channel: "email", Field: "to", Reason: "not a valid address", Err: err}
	}

	subject := cfg.Subject
	if subject == "" {
		subject = defaultEmailSubject
	}

	return &EmailNotifier{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		to:      cfg.To,
		subject: subject,
		logger:  logger.With().Str("component", "email_notifier").Logger(),
	}, nil
}

// Name implements the Notifier interface.
func (n *EmailNotifier) Name() string { return "email" }

// Send implements the Notifier interface for email.
func (n *EmailNotifier) Send(_ context.Context, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", n.subject)
	m.SetBody("text/plain", message)

	// DialAndSend opens a connection, sends the email, and closes it.
	if err := n.dialer.DialAndSend(m); err != nil {
		n.logger.Error().Err(err).Str("recipient", n.to).Msg("failed to send email")
		return &DeliveryError{Channel: n.Name(), Err: err}
	}

	n.logger.Info().Str("recipient", n.to).Msg("email sent successfully")
	return nil
}
