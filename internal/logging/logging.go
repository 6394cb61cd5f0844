package logging

import (
	"io"
	"log/slog"
	"slices"

	"github.com/leg100/hub/internal/pubsub"
	"golang.org/x/exp/maps"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level. Returns the
// default log level first.
func ValidLevels() []string {
	keys := maps.Keys(levels)
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		// Sort remaining in alphabetical order.
		if a < b {
			return -1
		}
		return 1
	})
	return keys
}

type Options struct {
	// The log level of the logger
	Level string
	// Any additional writers the log handler should write to, e.g. a log
	// file.
	AdditionalWriters []io.Writer
}

// Logger wraps slog, emitting each log record as an event so that the TUI
// can surface it.
type Logger struct {
	logger *slog.Logger
	writer *writer

	*pubsub.Broker[Message]
}

// NewLogger constructs Logger.
func NewLogger(opts Options) *Logger {
	logger := &Logger{}
	broker := pubsub.NewBroker[Message](logger)
	logger.writer = &writer{broker: broker}
	logger.Broker = broker

	handler := slog.NewTextHandler(
		io.MultiWriter(append(opts.AdditionalWriters, logger.writer)...),
		&slog.HandlerOptions{
			Level: levels[opts.Level],
		},
	)
	logger.logger = slog.New(handler)

	return logger
}

func (l *Logger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Messages lists the log messages received thus far, oldest first.
func (l *Logger) Messages() []Message {
	return l.writer.list()
}
