package notify

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
)

// Outcome represents the state of a watched function call.
type Outcome string

const (
	OutcomeStarted   Outcome = "started"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// ErrorDetail controls how much of a failure is included in the
// notification text.
type ErrorDetail int

const (
	// ErrorDetailType includes only the error's Go type.
	ErrorDetailType ErrorDetail = iota + 1
	// ErrorDetailMessage includes the error's type and message.
	ErrorDetailMessage
	// ErrorDetailStack includes the message and a stack trace captured at
	// notification time.
	ErrorDetailStack
)

// Event describes one boundary of a watched function call. It is built by
// Wrap at call time, formatted into the notification message, and discarded;
// events are never persisted.
type Event struct {
	ID         uuid.UUID
	Function   string
	Outcome    Outcome
	StartedAt  time.Time
	FinishedAt time.Time
	Elapsed    time.Duration
	Err        error // set only when Outcome is OutcomeFailed
}

func newEvent(function string, outcome Outcome) Event {
	return Event{
		ID:       uuid.New(),
		Function: function,
		Outcome:  outcome,
	}
}

// Message renders the event as the notification text sent through a Notifier.
func (e *Event) Message(detail ErrorDetail) string {
	switch e.Outcome {
	case OutcomeStarted:
		return fmt.Sprintf("Function %s is starting.", e.Function)
	case OutcomeSucceeded:
		return fmt.Sprintf("Function %s completed successfully, elapsed=%s.", e.Function, e.Elapsed)
	case OutcomeFailed:
		return fmt.Sprintf("Function %s failed after elapsed=%s, error=%s", e.Function, e.Elapsed, formatError(e.Err, detail))
	default:
		return fmt.Sprintf("Function %s reported unknown outcome %q.", e.Function, e.Outcome)
	}
}

// formatError renders err according to the requested detail level. The stack
// trace is captured here rather than at the error's origin; Go errors do not
// carry one.
func formatError(err error, detail ErrorDetail) string {
	switch detail {
	case ErrorDetailType:
		return fmt.Sprintf("an error of type %T occurred", err)
	case ErrorDetailStack:
		return fmt.Sprintf("%v\n%s", err, debug.Stack())
	default:
		return fmt.Sprintf("an error of type %T occurred: %v", err, err)
	}
}
