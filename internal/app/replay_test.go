package app

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/skobkin/meshlink/internal/radio"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func framed(payload []byte) []byte {
	out := []byte{0x94, 0xc3, byte(len(payload) >> 8), byte(len(payload))}
	return append(out, payload...)
}

type recorder struct {
	frames [][]byte
	fail   map[string]error
}

func (r *recorder) handle(frame []byte) error {
	if err, ok := r.fail[string(frame)]; ok {
		return err
	}
	r.frames = append(r.frames, append([]byte(nil), frame...))
	return nil
}

func TestParseReplayFormat(t *testing.T) {
	tests := []struct {
		raw     string
		want    ReplayFormat
		wantErr bool
	}{
		{raw: "", want: ReplayHex},
		{raw: "HEX", want: ReplayHex},
		{raw: " stream ", want: ReplayStream},
		{raw: "pcap", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseReplayFormat(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.raw)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%q: expected %q, got %q (%v)", tc.raw, tc.want, got, err)
		}
	}
}

func TestReplayHexLines(t *testing.T) {
	capture := strings.Join([]string{
		"# captured from a T-Beam",
		"",
		"0a0b0c",
		"0x 01:02:03",
		hex.EncodeToString(framed([]byte{0x08, 0x01})),
		"zz-not-hex",
		"ffff",
	}, "\n")

	rec := &recorder{fail: map[string]error{"\xff\xff": errors.New("bad frame")}}
	stats, err := Replay(context.Background(), strings.NewReader(capture), ReplayHex, rec.handle, discardLogger())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}

	if stats.Frames != 5 || stats.Handled != 3 || stats.Failed != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	want := [][]byte{{0x0a, 0x0b, 0x0c}, {0x01, 0x02, 0x03}, {0x08, 0x01}}
	if len(rec.frames) != len(want) {
		t.Fatalf("expected %d frames, got %d", len(want), len(rec.frames))
	}
	for i := range want {
		if !bytes.Equal(rec.frames[i], want[i]) {
			t.Fatalf("frame %d: expected %x, got %x", i, want[i], rec.frames[i])
		}
	}
}

func TestReplayStream(t *testing.T) {
	var capture bytes.Buffer
	capture.WriteString("boot\r\n")
	capture.Write(framed([]byte{0x01}))
	capture.Write(framed([]byte{0x02, 0x03}))

	rec := &recorder{}
	stats, err := Replay(context.Background(), &capture, ReplayStream, rec.handle, discardLogger())
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if stats.Frames != 2 || stats.Handled != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.SkippedBytes != len("boot\r\n") {
		t.Fatalf("expected %d skipped bytes, got %d", len("boot\r\n"), stats.SkippedBytes)
	}
}

func TestReplayStopsOnClosedInterface(t *testing.T) {
	capture := "01\n02\n03\n"
	calls := 0
	handle := func([]byte) error {
		calls++
		if calls == 2 {
			return radio.ErrClosed
		}
		return nil
	}

	stats, err := Replay(context.Background(), strings.NewReader(capture), ReplayHex, handle, discardLogger())
	if !errors.Is(err, radio.ErrClosed) {
		t.Fatalf("expected closed error, got %v", err)
	}
	if calls != 2 || stats.Handled != 1 {
		t.Fatalf("expected replay to stop at second frame, calls=%d stats=%+v", calls, stats)
	}
}

func TestReplayHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Replay(ctx, strings.NewReader("01\n"), ReplayHex, (&recorder{}).handle, discardLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestOpenReplayCompressed(t *testing.T) {
	dir := t.TempDir()
	content := []byte("# capture\n0a0b\n")

	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	if _, err := gw.Write(content); err != nil {
		t.Fatalf("write gzip: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}

	var zs bytes.Buffer
	zw, err := zstd.NewWriter(&zs)
	if err != nil {
		t.Fatalf("new zstd writer: %v", err)
	}
	if _, err := zw.Write(content); err != nil {
		t.Fatalf("write zstd: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zstd: %v", err)
	}

	files := map[string][]byte{
		"capture.txt":     content,
		"capture.txt.gz":  gz.Bytes(),
		"capture.txt.zst": zs.Bytes(),
	}
	for name, raw := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}

		rc, err := OpenReplay(path)
		if err != nil {
			t.Fatalf("%s: open replay: %v", name, err)
		}
		rec := &recorder{}
		stats, err := Replay(context.Background(), rc, ReplayHex, rec.handle, discardLogger())
		if cerr := rc.Close(); cerr != nil {
			t.Fatalf("%s: close replay: %v", name, cerr)
		}
		if err != nil {
			t.Fatalf("%s: replay: %v", name, err)
		}
		if stats.Handled != 1 || !bytes.Equal(rec.frames[0], []byte{0x0a, 0x0b}) {
			t.Fatalf("%s: unexpected replay result %+v %x", name, stats, rec.frames)
		}
	}
}

func TestOpenReplayMissingFile(t *testing.T) {
	if _, err := OpenReplay(filepath.Join(t.TempDir(), "missing.gz")); err == nil {
		t.Fatalf("expected error for missing capture")
	}
}
