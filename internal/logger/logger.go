package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger provides structured logging with a component tag
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps a configuration string onto a zerolog level.
// Unknown values fall back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NopLogger discards all log events
type NopLogger struct{}

func (NopLogger) Debug(component, message string, fields map[string]interface{})   {}
func (NopLogger) Info(component, message string, fields map[string]interface{})    {}
func (NopLogger) Warning(component, message string, fields map[string]interface{}) {}
func (NopLogger) Error(component string, err error, fields map[string]interface{}) {}
