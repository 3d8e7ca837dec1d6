package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{level: "debug", want: logrus.DebugLevel},
		{level: "INFO", want: logrus.InfoLevel},
		{level: "warn", want: logrus.WarnLevel},
		{level: "nonsense", want: logrus.InfoLevel},
		{level: "", want: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger(tt.level, "development")
			assert.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLoggerFormatterByEnvironment(t *testing.T) {
	dev := NewLogger("info", "development")
	assert.IsType(t, &logrus.TextFormatter{}, dev.Formatter)

	prod := NewLogger("info", "production")
	assert.IsType(t, &logrus.JSONFormatter{}, prod.Formatter)
}
