package transport

import (
	"log/slog"
	"sync/atomic"
)

var baseLogger atomic.Pointer[slog.Logger]

// SetLogger replaces the logger transports derive their loggers from.
// A nil logger restores slog.Default.
func SetLogger(logger *slog.Logger) {
	baseLogger.Store(logger)
}

func transportLogger(name string, attrs ...any) *slog.Logger {
	base := baseLogger.Load()
	if base == nil {
		base = slog.Default()
	}
	logger := base.With("component", "transport", "transport", name)
	if len(attrs) == 0 {
		return logger
	}

	return logger.With(attrs...)
}
