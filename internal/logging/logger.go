package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger. JSON output outside development,
// level from config with info as the fallback.
func NewLogger(logLevel, environment string) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(logLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(environment) == "development" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return logger
}
