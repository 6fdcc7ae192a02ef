package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/skobkin/meshlink/internal/config"
)

// Manager owns app logger configuration and optional log file lifecycle.
// Logs go to the console writer (stderr by default) so stdout stays free for event output.
type Manager struct {
	mu      sync.RWMutex
	console io.Writer
	level   *slog.LevelVar
	logger  *slog.Logger
	file    *os.File
}

func NewManager() *Manager {
	return NewManagerWithWriter(os.Stderr)
}

func NewManagerWithWriter(console io.Writer) *Manager {
	if console == nil {
		console = io.Discard
	}
	m := &Manager{
		console: console,
		level:   new(slog.LevelVar),
	}
	m.level.Set(slog.LevelInfo)
	m.logger = slog.New(slog.NewTextHandler(console, &slog.HandlerOptions{Level: m.level}))

	return m
}

func (m *Manager) Configure(cfg config.LoggingConfig, filePath string) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.file != nil {
		_ = m.file.Close()
		m.file = nil
	}

	writer := m.console
	if cfg.LogToFile {
		if strings.TrimSpace(cfg.File) != "" {
			filePath = cfg.File
		}
		cleanPath := filepath.Clean(filePath)
		if err := os.MkdirAll(filepath.Dir(cleanPath), 0o750); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
		// #nosec G304 -- path is resolved by app runtime and points to user config dir.
		file, err := os.OpenFile(cleanPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		m.file = file
		writer = newFanoutWriter(m.console, file)
	}

	m.level.Set(level)
	opts := &slog.HandlerOptions{Level: m.level}
	var h slog.Handler
	if cfg.Format == config.LogFormatJSON {
		h = slog.NewJSONHandler(writer, opts)
	} else {
		h = slog.NewTextHandler(writer, opts)
	}
	m.logger = slog.New(h)
	slog.SetDefault(m.logger)

	return nil
}

// SetLevel changes the level of every logger handed out so far.
func (m *Manager) SetLevel(raw string) error {
	level, err := parseLevel(raw)
	if err != nil {
		return err
	}
	m.level.Set(level)

	return nil
}

func (m *Manager) Logger(component string) *slog.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.logger.With("component", component)
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.file != nil {
		if err := m.file.Close(); err != nil {
			return err
		}
		m.file = nil
	}

	return nil
}

func parseLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unsupported log level: %q", raw)
	}
}

type fanoutWriter struct {
	writers []io.Writer
}

func newFanoutWriter(writers ...io.Writer) io.Writer {
	filtered := make([]io.Writer, 0, len(writers))
	for _, w := range writers {
		if w != nil {
			filtered = append(filtered, w)
		}
	}

	return &fanoutWriter{writers: filtered}
}

// Write succeeds if at least one destination accepted the whole buffer.
func (w *fanoutWriter) Write(p []byte) (int, error) {
	var (
		wroteAny bool
		firstErr error
	)

	for _, dst := range w.writers {
		n, err := dst.Write(p)
		if err == nil && n != len(p) {
			err = io.ErrShortWrite
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}
		wroteAny = true
	}

	if wroteAny || firstErr == nil {
		return len(p), nil
	}

	return 0, firstErr
}
