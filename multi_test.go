package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// recordingNotifier records every message it is asked to deliver.
type recordingNotifier struct {
	name     string
	messages []string
}

func (r *recordingNotifier) Name() string {
	if r.name != "" {
		return r.name
	}
	return "recording"
}

func (r *recordingNotifier) Send(_ context.Context, message string) error {
	r.messages = append(r.messages, message)
	return nil
}

// failingNotifier fails every Send with a DeliveryError.
type failingNotifier struct {
	calls int
}

func (f *failingNotifier) Name() string { return "failing" }

func (f *failingNotifier) Send(_ context.Context, _ string) error {
	f.calls++
	return &DeliveryError{Channel: f.Name(), Err: errors.New("boom")}
}

func TestMultiNotifier_Send_FansOut(t *testing.T) {
	logger := zerolog.Nop()
	a := &recordingNotifier{name: "a"}
	b := &recordingNotifier{name: "b"}

	m := NewMultiNotifier(&logger, a, b)
	if err := m.Send(context.Background(), "hello"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	for _, r := range []*recordingNotifier{a, b} {
		if len(r.messages) != 1 || r.messages[0] != "hello" {
			t.Errorf("notifier %s got %v, want exactly [hello]", r.Name(), r.messages)
		}
	}
}

func TestMultiNotifier_Send_FailureDoesNotStopOthers(t *testing.T) {
	logger := zerolog.Nop()
	failing := &failingNotifier{}
	recording := &recordingNotifier{}

	m := NewMultiNotifier(&logger, failing, recording)
	err := m.Send(context.Background(), "hello")

	if err == nil {
		t.Fatal("Send() should report the failed notifier")
	}
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Errorf("error = %v, want to unwrap to *DeliveryError", err)
	}
	if len(recording.messages) != 1 {
		t.Errorf("later notifier got %d messages, want 1", len(recording.messages))
	}
}

func TestMultiNotifier_Send_Empty(t *testing.T) {
	logger := zerolog.Nop()

	m := NewMultiNotifier(&logger)
	if err := m.Send(context.Background(), "hello"); err != nil {
		t.Errorf("Send() on empty multi notifier error = %v, want nil", err)
	}
}
