package app

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/skobkin/meshlink/internal/radio"
	"github.com/skobkin/meshlink/internal/transport"
)

// ReplayFormat selects how a capture is split into frames.
type ReplayFormat string

const (
	// ReplayHex is one FromRadio frame per line as hex, optionally with the
	// 0x94 0xC3 stream header. Blank lines and lines starting with # are skipped.
	ReplayHex ReplayFormat = "hex"
	// ReplayStream is a raw serial/TCP capture including frame headers.
	ReplayStream ReplayFormat = "stream"

	maxReplayLine = 64 * 1024
)

type ReplayStats struct {
	Frames       int
	Handled      int
	Failed       int
	SkippedBytes int
}

func ParseReplayFormat(raw string) (ReplayFormat, error) {
	switch ReplayFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case ReplayHex, "":
		return ReplayHex, nil
	case ReplayStream:
		return ReplayStream, nil
	default:
		return "", fmt.Errorf("unknown replay format: %q", raw)
	}
}

// OpenReplay opens a capture file, decompressing .gz and .zst transparently.
func OpenReplay(path string) (io.ReadCloser, error) {
	cleanPath := filepath.Clean(path)
	// #nosec G304 -- replay path is given explicitly by the user.
	f, err := os.Open(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}

	switch strings.ToLower(filepath.Ext(cleanPath)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open gzip replay: %w", err)
		}
		return &stackedCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("open zstd replay: %w", err)
		}
		rc := dec.IOReadCloser()
		return &stackedCloser{Reader: rc, closers: []io.Closer{rc, f}}, nil
	default:
		return f, nil
	}
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (c *stackedCloser) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Replay feeds every frame of r to handle. Frames that fail to decode are
// counted and logged; only a closed interface or a read error stops the
// replay.
func Replay(ctx context.Context, r io.Reader, format ReplayFormat, handle func([]byte) error, logger *slog.Logger) (ReplayStats, error) {
	if logger == nil {
		logger = slog.Default()
	}
	var stats ReplayStats

	feed := func(frame []byte, where string) error {
		stats.Frames++
		if err := handle(frame); err != nil {
			if errors.Is(err, radio.ErrClosed) {
				return err
			}
			stats.Failed++
			logger.Warn("replay frame dropped", "at", where, "len", len(frame), "error", err)
			return nil
		}
		stats.Handled++
		return nil
	}

	switch format {
	case ReplayStream:
		fr := transport.NewFrameReader(r)
		for {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			frame, err := fr.Next()
			stats.SkippedBytes = fr.Skipped
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			if err != nil {
				return stats, fmt.Errorf("read replay stream: %w", err)
			}
			if err := feed(frame, fmt.Sprintf("frame %d", stats.Frames+1)); err != nil {
				return stats, err
			}
		}
	case ReplayHex, "":
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 4096), maxReplayLine)
		lineNo := 0
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			lineNo++
			frame, ok, err := parseHexLine(sc.Text())
			if !ok {
				continue
			}
			where := fmt.Sprintf("line %d", lineNo)
			if err != nil {
				stats.Frames++
				stats.Failed++
				logger.Warn("replay line skipped", "at", where, "error", err)
				continue
			}
			if err := feed(frame, where); err != nil {
				return stats, err
			}
		}
		if err := sc.Err(); err != nil {
			return stats, fmt.Errorf("read replay lines: %w", err)
		}
		return stats, nil
	default:
		return stats, fmt.Errorf("unknown replay format: %q", format)
	}
}

// parseHexLine returns ok=false for lines carrying no frame.
func parseHexLine(line string) ([]byte, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false, nil
	}
	line = strings.NewReplacer(" ", "", ":", "", "\t", "").Replace(line)
	line = strings.TrimPrefix(strings.TrimPrefix(line, "0x"), "0X")
	raw, err := hex.DecodeString(line)
	if err != nil {
		return nil, true, fmt.Errorf("decode hex: %w", err)
	}
	payload, _ := transport.UnwrapFrame(raw)

	return payload, true, nil
}
