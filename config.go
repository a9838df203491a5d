package notify

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is the main struct that holds the notifier configuration.
type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Notifiers NotifiersConfig `mapstructure:"notifiers"`
}

// LoggerConfig holds logging-specific settings.
type LoggerConfig struct {
	Level string `mapstructure:"level"`
}

// NotifiersConfig holds configurations for all notification channels.
type NotifiersConfig struct {
	// Mode can be "log_only" or "production".
	// In "log_only" mode, all notifiers are replaced by the LogNotifier.
	Mode     string         `mapstructure:"mode"`
	Slack    WebhookConfig  `mapstructure:"slack"`
	Discord  WebhookConfig  `mapstructure:"discord"`
	Teams    WebhookConfig  `mapstructure:"teams"`
	Channel  WebhookConfig  `mapstructure:"channel"`
	Email    EmailConfig    `mapstructure:"email"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// WebhookConfig holds settings for a webhook-based notifier
// (Slack, Discord, Teams, generic channel).
type WebhookConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// EmailConfig holds SMTP settings for the email notifier.
type EmailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	To       string `mapstructure:"to"`
	Subject  string `mapstructure:"subject"`
}

// TelegramConfig holds settings for the Telegram notifier.
type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// LoadConfig parses the YAML file and environment variables to return a
// configuration struct.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	v.SetDefault("logger.level", "info")
	v.SetDefault("notifiers.mode", "log_only")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewFromConfig builds a ready-to-use Notifier from the configuration.
// In "log_only" mode it returns the LogNotifier. In "production" mode it
// builds every channel whose required field is set and fans out to all of
// them through a MultiNotifier.
func NewFromConfig(cfg *Config, logger *zerolog.Logger) (Notifier, error) {
	log := logger.With().Str("component", "config").Logger()
	log.Info().Str("mode", cfg.Notifiers.Mode).Msg("initializing notifiers")

	if cfg.Notifiers.Mode != "production" {
		return NewLogNotifier(logger), nil
	}

	var notifiers []Notifier

	webhooks := []struct {
		name string
		cfg  WebhookConfig
		ctor func(string, *zerolog.Logger) (Notifier, error)
	}{
		{"slack", cfg.Notifiers.Slack, func(u string, l *zerolog.Logger) (Notifier, error) { return NewSlackNotifier(u, l) }},
		{"discord", cfg.Notifiers.Discord, func(u string, l *zerolog.Logger) (Notifier, error) { return NewDiscordNotifier(u, l) }},
		{"teams", cfg.Notifiers.Teams, func(u string, l *zerolog.Logger) (Notifier, error) { return NewTeamsNotifier(u, l) }},
		{"channel", cfg.Notifiers.Channel, func(u string, l *zerolog.Logger) (Notifier, error) { return NewChannelNotifier(u, l) }},
	}
	for _, w := range webhooks {
		if w.cfg.WebhookURL == "" {
			continue
		}
		n, err := w.ctor(w.cfg.WebhookURL, logger)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
		log.Info().Str("channel", w.name).Msg("notifier enabled")
	}

	if cfg.Notifiers.Email.Host != "" {
		n, err := NewEmailNotifier(cfg.Notifiers.Email, logger)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
		log.Info().Str("channel", "email").Msg("notifier enabled")
	}

	if cfg.Notifiers.Telegram.BotToken != "" {
		n, err := NewTelegramNotifier(cfg.Notifiers.Telegram, logger)
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
		log.Info().Str("channel", "telegram").Msg("notifier enabled")
	}

	if len(notifiers) == 0 {
		log.Warn().Msg("no channels configured, falling back to log notifier")
		return NewLogNotifier(logger), nil
	}
	if len(notifiers) == 1 {
		return notifiers[0], nil
	}

	return NewMultiNotifier(logger, notifiers...), nil
}
