package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.bug.st/serial"
)

const (
	DefaultSerialBaud        = 115200
	defaultSerialReadTimeout = 300 * time.Millisecond
)

type openPortFunc func(name string, mode *serial.Mode) (serial.Port, error)

// SerialTransport talks to a radio attached over USB serial.
type SerialTransport struct {
	portName string
	baudRate int
	open     openPortFunc

	mu      sync.Mutex
	port    serial.Port
	writeMu sync.Mutex
}

func NewSerialTransport(portName string, baudRate int) *SerialTransport {
	if baudRate == 0 {
		baudRate = DefaultSerialBaud
	}

	return &SerialTransport{
		portName: portName,
		baudRate: baudRate,
		open:     serial.Open,
	}
}

// ListSerialPorts returns the serial ports present on this machine, sorted.
func ListSerialPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	sort.Strings(ports)

	return ports, nil
}

func (t *SerialTransport) Name() string {
	return "serial"
}

func (t *SerialTransport) StatusTarget() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.portName
}

func (t *SerialTransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.port != nil
}

func (t *SerialTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	logger := transportLogger("serial", "port", t.portName, "baud", t.baudRate)
	if t.port != nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if t.portName == "" {
		return errors.New("serial port is empty")
	}
	if t.baudRate <= 0 {
		return fmt.Errorf("invalid serial baud rate: %d", t.baudRate)
	}

	logger.Info("opening serial port")
	port, err := t.open(t.portName, &serial.Mode{BaudRate: t.baudRate})
	if err != nil {
		logger.Warn("open serial port failed", "error", err)
		return fmt.Errorf("open serial port %q: %w", t.portName, err)
	}
	if err := port.SetReadTimeout(defaultSerialReadTimeout); err != nil {
		_ = port.Close()
		return fmt.Errorf("set serial read timeout: %w", err)
	}
	t.port = port
	logger.Info("serial port opened")

	return nil
}

func (t *SerialTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	transportLogger("serial", "port", t.portName).Info("serial port closed")
	return err
}

func (t *SerialTransport) ReadFrame(ctx context.Context) ([]byte, error) {
	port, err := t.currentPort()
	if err != nil {
		return nil, err
	}

	payload, skipped, err := newFrameScanner(func(buf []byte) error {
		return readFullContext(ctx, port, buf)
	}).next()
	if skipped > 0 {
		// Firmware debug output shares the stream with frames.
		transportLogger("serial").Debug("skipped stray bytes before frame", "count", skipped)
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (t *SerialTransport) WriteFrame(ctx context.Context, payload []byte) error {
	port, err := t.currentPort()
	if err != nil {
		return err
	}

	frame, err := encodeFrame(payload)
	if err != nil {
		return err
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if err := writeFull(ctx, port, frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func (t *SerialTransport) currentPort() (serial.Port, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return nil, ErrNotConnected
	}
	return t.port, nil
}

// readFullContext fills buf from a reader with a short read timeout, so ctx
// is observed between timed-out reads that return zero bytes.
func readFullContext(ctx context.Context, r io.Reader, buf []byte) error {
	read := 0
	for read < len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := r.Read(buf[read:])
		if err != nil {
			return err
		}
		read += n
	}

	return nil
}

func writeFull(ctx context.Context, w io.Writer, buf []byte) error {
	written := 0
	for written < len(buf) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := w.Write(buf[written:])
		if err != nil {
			return err
		}
		written += n
	}
	return nil
}
