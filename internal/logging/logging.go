// Package logging configures structured logging for the spotify-mcp server.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the logger type handed around the codebase.
type Logger = *logrus.Logger

// Fields represents structured logging fields.
type Fields = logrus.Fields

// NewLogger creates a new JSON-formatted logger. The level is taken from
// the LOG_LEVEL environment variable and defaults to info when unset or
// unparseable.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logLevel())
	return logger
}

// NewLoggerWithService creates a logger that tags every entry with a
// service field.
func NewLoggerWithService(serviceName string) *logrus.Logger {
	logger := NewLogger()
	logger = logger.WithField("service", serviceName).Logger
	return logger
}

func logLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
