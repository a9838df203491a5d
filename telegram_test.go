package notify

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewTelegramNotifier_MissingToken(t *testing.T) {
	logger := zerolog.Nop()

	n, err := NewTelegramNotifier(TelegramConfig{ChatID: 42}, &logger)
	if n != nil {
		t.Error("got non-nil notifier for empty token")
	}
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
	if ce.Field != "bot_token" {
		t.Errorf("Field = %q, want bot_token", ce.Field)
	}
}

func TestNewTelegramNotifier_MissingChatID(t *testing.T) {
	logger := zerolog.Nop()

	n, err := NewTelegramNotifier(TelegramConfig{BotToken: "123:abc"}, &logger)
	if n != nil {
		t.Error("got non-nil notifier for zero chat id")
	}
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want *ConfigurationError", err)
	}
	if ce.Field != "chat_id" {
		t.Errorf("Field = %q, want chat_id", ce.Field)
	}
}
