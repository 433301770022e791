package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	logger *log.Logger
	once   sync.Once
)

// LogLevel represents available log levels
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// InitLogger initializes the process logger from the LOG_LEVEL environment variable.
// Later calls are no-ops.
func InitLogger() {
	once.Do(func() {
		logger = log.New(os.Stderr)
		level := ParseLevel(os.Getenv("LOG_LEVEL"))
		SetLevel(logger, level)
		logger.SetReportTimestamp(true)
		logger.Debug("logger initialized", "level", level)
	})
}

// ParseLevel maps a level name to a LogLevel, defaulting to info.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// SetLevel configures l with the given level.
func SetLevel(l *log.Logger, level LogLevel) {
	switch level {
	case DebugLevel:
		l.SetLevel(log.DebugLevel)
	case WarnLevel:
		l.SetLevel(log.WarnLevel)
	case ErrorLevel:
		l.SetLevel(log.ErrorLevel)
	default:
		l.SetLevel(log.InfoLevel)
	}
}

// GetLogger returns the process logger, initializing it on first use.
func GetLogger() *log.Logger {
	InitLogger()
	return logger
}

// WithFields creates a logger with contextual fields
func WithFields(fields ...any) *log.Logger {
	return GetLogger().With(fields...)
}

// WithComponent tags log lines with the emitting engine component.
func WithComponent(name string) *log.Logger {
	return WithFields("component", name)
}
