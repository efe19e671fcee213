// Package logging provides structured logging for jobboss2-mcp.
//
// Logs are written with log/slog in text or JSON form. The level and format
// come from the config file's logging node and may be overridden with:
//   - JOBBOSS2_MCP_LOG_LEVEL: DEBUG, INFO, WARN, ERROR (default: WARN)
//   - JOBBOSS2_MCP_LOG_FORMAT: text, json (default: text)
//
// stdout carries the MCP JSON-RPC stream, so every logger built here writes
// to stderr unless a test supplies its own writer.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Environment variable names for logging configuration.
const (
	LogLevelEnvVar  = "JOBBOSS2_MCP_LOG_LEVEL"
	LogFormatEnvVar = "JOBBOSS2_MCP_LOG_FORMAT"
)

// Default logging configuration.
const (
	DefaultLevel  = slog.LevelWarn
	DefaultFormat = "text"
)

// Logger is the interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// With returns a Logger that adds the given key-value pairs to every record.
	With(args ...any) Logger
}

type logger struct {
	slog *slog.Logger
}

func (l *logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }
func (l *logger) Info(msg string, args ...any)  { l.slog.Info(msg, args...) }
func (l *logger) Warn(msg string, args ...any)  { l.slog.Warn(msg, args...) }
func (l *logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }

func (l *logger) With(args ...any) Logger {
	return &logger{slog: l.slog.With(args...)}
}

var (
	defaultLogger Logger
	once          sync.Once
)

// Default returns the process logger, built from the environment on first use.
func Default() Logger {
	once.Do(func() {
		if defaultLogger == nil {
			defaultLogger = NewFromEnv()
		}
	})
	return defaultLogger
}

// SetDefault replaces the process logger. The CLI calls it once after
// configuration has been loaded; components built with a nil logger pick it
// up through Default.
func SetDefault(l Logger) {
	once.Do(func() {})
	defaultLogger = l
}

// NewFromEnv creates a Logger configured only from environment variables.
func NewFromEnv() Logger {
	return NewFromSettings("", "")
}

// NewFromSettings creates a stderr Logger from configured level and format
// strings. Non-empty environment variables take precedence over both.
func NewFromSettings(level, format string) Logger {
	if env := os.Getenv(LogLevelEnvVar); env != "" {
		level = env
	}
	if env := os.Getenv(LogFormatEnvVar); env != "" {
		format = env
	}
	if format == "" {
		format = DefaultFormat
	}
	return New(os.Stderr, ParseLevel(level), format)
}

// New creates a Logger writing to w at the given minimum level.
// Format is "text" or "json"; anything else falls back to text.
func New(w io.Writer, level slog.Level, format string) Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &logger{slog: slog.New(handler)}
}

// ParseLevel parses a level name (case-insensitive).
// Empty or unknown values yield DefaultLevel.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (n nopLogger) With(...any) Logger { return n }

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nopLogger{}
}
