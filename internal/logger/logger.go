package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// InitLogger creates the process logger.
// Console output is used in dev, JSON everywhere else.
func InitLogger(logLevelStr string, environment string) *zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(logLevelStr)
	if err != nil {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logger zerolog.Logger

	if environment == "dev" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	return &logger
}
