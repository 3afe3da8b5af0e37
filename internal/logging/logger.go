package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog.Logger writing to w. Development gets debug level
// and human-readable console output; everything else gets JSON at info.
func New(appEnv string, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	if appEnv == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339})
	}

	return logger
}
