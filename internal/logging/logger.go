package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// New creates a logrus logger for the given level and environment.
// Development gets human-readable text, every other environment gets JSON.
func New(logLevel string, environment string) *logrus.Logger {
	return NewWithOutput(logLevel, environment, os.Stdout)
}

// NewWithOutput is New with an explicit writer.
func NewWithOutput(logLevel string, environment string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(ParseLogrusLevel(logLevel))

	if strings.EqualFold(strings.TrimSpace(environment), "development") {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
	}

	return logger
}

// Discard returns a logger that drops everything; analyzers fall back to it when
// constructed without one.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// WithComponent creates a log entry tagged with a component name
func WithComponent(logger *logrus.Logger, componentName string) *logrus.Entry {
	if logger == nil {
		logger = Discard()
	}
	return logger.WithField("component", componentName)
}

// ParseLogrusLevel converts string level to logrus.Level
func ParseLogrusLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
