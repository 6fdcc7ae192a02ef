package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skobkin/meshlink/internal/config"
)

func TestFanoutWriter_ContinuesWhenOneDestinationFails(t *testing.T) {
	var dst bytes.Buffer
	w := newFanoutWriter(errorWriter{err: errors.New("broken stderr")}, &dst)

	n, err := w.Write([]byte("test"))
	if err != nil {
		t.Fatalf("write returned error: %v", err)
	}
	if n != len("test") {
		t.Fatalf("unexpected bytes written: got %d, want %d", n, len("test"))
	}
	if got := dst.String(); got != "test" {
		t.Fatalf("unexpected destination contents: got %q", got)
	}
}

func TestFanoutWriter_AllDestinationsFail(t *testing.T) {
	want := errors.New("first")
	w := newFanoutWriter(errorWriter{err: want}, errorWriter{err: errors.New("second")})

	if _, err := w.Write([]byte("x")); !errors.Is(err, want) {
		t.Fatalf("expected first error, got %v", err)
	}
}

func TestManagerConfigure_LogFileStillReceivesLogsWhenConsoleFails(t *testing.T) {
	origDefault := slog.Default()
	t.Cleanup(func() { slog.SetDefault(origDefault) })

	logPath := filepath.Join(t.TempDir(), "logs", "app.log")
	m := NewManagerWithWriter(errorWriter{err: errors.New("broken console")})
	t.Cleanup(func() { _ = m.Close() })

	if err := m.Configure(config.LoggingConfig{Level: "debug", LogToFile: true}, logPath); err != nil {
		t.Fatalf("configure manager: %v", err)
	}

	slog.Info("file must receive this message")

	if err := m.Close(); err != nil {
		t.Fatalf("close manager: %v", err)
	}

	cleanLogPath := filepath.Clean(logPath)
	// #nosec G304 -- logPath is created from t.TempDir() in this test.
	raw, err := os.ReadFile(cleanLogPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !bytes.Contains(raw, []byte("file must receive this message")) {
		t.Fatalf("log file does not contain test message, contents: %q", string(raw))
	}
}

func TestManagerConfigure_JSONFormatAndComponent(t *testing.T) {
	origDefault := slog.Default()
	t.Cleanup(func() { slog.SetDefault(origDefault) })

	var out bytes.Buffer
	m := NewManagerWithWriter(&out)
	if err := m.Configure(config.LoggingConfig{Level: "info", Format: config.LogFormatJSON}, ""); err != nil {
		t.Fatalf("configure manager: %v", err)
	}

	m.Logger("radio").Info("frame dropped", "len", 3)

	var record map[string]any
	if err := json.Unmarshal(out.Bytes(), &record); err != nil {
		t.Fatalf("expected json log line, got %q: %v", out.String(), err)
	}
	if record["component"] != "radio" {
		t.Fatalf("expected component radio, got %v", record["component"])
	}
	if record["msg"] != "frame dropped" {
		t.Fatalf("expected message, got %v", record["msg"])
	}
}

func TestManagerSetLevelAppliesToExistingLoggers(t *testing.T) {
	origDefault := slog.Default()
	t.Cleanup(func() { slog.SetDefault(origDefault) })

	var out bytes.Buffer
	m := NewManagerWithWriter(&out)
	if err := m.Configure(config.LoggingConfig{Level: "info"}, ""); err != nil {
		t.Fatalf("configure manager: %v", err)
	}
	logger := m.Logger("transport")

	logger.Debug("hidden")
	if out.Len() != 0 {
		t.Fatalf("expected debug record to be filtered, got %q", out.String())
	}

	if err := m.SetLevel("debug"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	logger.Debug("visible")
	if !strings.Contains(out.String(), "visible") {
		t.Fatalf("expected debug record after level change, got %q", out.String())
	}

	if err := m.SetLevel("chatty"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestManagerConfigure_RejectsUnknownLevel(t *testing.T) {
	m := NewManagerWithWriter(nil)
	if err := m.Configure(config.LoggingConfig{Level: "trace"}, ""); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

type errorWriter struct {
	err error
}

func (w errorWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}
