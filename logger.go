package notify

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger creates a new configured instance of zerolog.Logger.
// It parses the given level and adds default fields like library name and caller.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		// Default to info level if the configured level is invalid or missing
		lvl = zerolog.InfoLevel
	}

	// For local development, a pretty console output is much more readable.
	// For production, you'd typically remove ConsoleWriter to get pure JSON.
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr}

	return zerolog.New(consoleWriter).With().
		Timestamp().
		Str("service", "go-notify").
		Caller().
		Logger().
		Level(lvl)
}
