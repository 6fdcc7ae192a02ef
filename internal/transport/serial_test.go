package transport

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.bug.st/serial"
)

// fakePort serves reads from a buffer. Reads on an empty buffer behave like
// a serial read timeout and return zero bytes.
type fakePort struct {
	serial.Port

	mu      sync.Mutex
	rx      bytes.Buffer
	tx      bytes.Buffer
	timeout time.Duration
	closed  bool
}

func (p *fakePort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rx.Len() == 0 {
		return 0, nil
	}
	return p.rx.Read(b)
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.tx.Write(b)
}

func (p *fakePort) SetReadTimeout(d time.Duration) error {
	p.timeout = d
	return nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func newFakeSerial(t *testing.T) (*SerialTransport, *fakePort) {
	t.Helper()
	port := &fakePort{}
	tr := NewSerialTransport("/dev/ttyUSB0", 0)
	tr.open = func(name string, mode *serial.Mode) (serial.Port, error) {
		if name != "/dev/ttyUSB0" || mode.BaudRate != DefaultSerialBaud {
			t.Errorf("unexpected open %s %d", name, mode.BaudRate)
		}
		return port, nil
	}

	return tr, port
}

func TestSerialTransportReadWrite(t *testing.T) {
	tr, port := newFakeSerial(t)
	if err := tr.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if port.timeout != defaultSerialReadTimeout {
		t.Fatalf("expected read timeout %v, got %v", defaultSerialReadTimeout, port.timeout)
	}

	port.rx.Write([]byte("DEBUG | ??:??:?? 3 booting\n"))
	port.rx.Write([]byte{frameStart1, frameStart2, 0x00, 0x03, 0x0a, 0x0b, 0x0c})
	got, err := tr.ReadFrame(context.Background())
	if err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if !bytes.Equal(got, []byte{0x0a, 0x0b, 0x0c}) {
		t.Fatalf("unexpected payload %x", got)
	}

	if err := tr.WriteFrame(context.Background(), []byte{0x42}); err != nil {
		t.Fatalf("write frame: %v", err)
	}
	if !bytes.Equal(port.tx.Bytes(), []byte{frameStart1, frameStart2, 0x00, 0x01, 0x42}) {
		t.Fatalf("unexpected written bytes %x", port.tx.Bytes())
	}

	if err := tr.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !port.closed {
		t.Fatalf("expected port to be closed")
	}
	if _, err := tr.ReadFrame(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Fatalf("expected ErrNotConnected, got %v", err)
	}
}

func TestSerialTransportReadStopsOnContext(t *testing.T) {
	tr, _ := newFakeSerial(t)
	if err := tr.Connect(context.Background()); err != nil {
		t.Fatalf("connect: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := tr.ReadFrame(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestSerialTransportConnectValidation(t *testing.T) {
	if err := NewSerialTransport("", 0).Connect(context.Background()); err == nil {
		t.Fatalf("expected error for empty port")
	}
	if err := NewSerialTransport("/dev/ttyUSB0", -1).Connect(context.Background()); err == nil {
		t.Fatalf("expected error for invalid baud rate")
	}
}
