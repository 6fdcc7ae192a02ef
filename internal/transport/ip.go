package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"
)

const (
	DefaultIPPort      = 4403
	defaultDialTimeout = 6 * time.Second
)

type dialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// IPTransport sends and receives framed traffic over a TCP socket, as exposed
// by WiFi and Ethernet capable radios on port 4403.
type IPTransport struct {
	host string
	port int
	dial dialFunc

	mu      sync.Mutex
	conn    net.Conn
	writeMu sync.Mutex
}

func NewIPTransport(host string, port int) *IPTransport {
	if port == 0 {
		port = DefaultIPPort
	}
	dialer := &net.Dialer{Timeout: defaultDialTimeout}

	return &IPTransport{host: host, port: port, dial: dialer.DialContext}
}

func (t *IPTransport) Name() string {
	return "ip"
}

func (t *IPTransport) StatusTarget() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.targetLocked()
}

func (t *IPTransport) targetLocked() string {
	if t.host == "" {
		return ""
	}

	return net.JoinHostPort(t.host, strconv.Itoa(t.port))
}

func (t *IPTransport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.conn != nil
}

func (t *IPTransport) Connect(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	target := t.targetLocked()
	logger := transportLogger("ip", "target", target)
	if t.conn != nil {
		logger.Debug("connect skipped: already connected")

		return nil
	}
	if target == "" {
		logger.Warn("connect failed: host is empty")

		return errors.New("ip host is empty")
	}

	logger.Info("connecting")
	conn, err := t.dial(ctx, "tcp", target)
	if err != nil {
		logger.Warn("connect failed", "error", err)

		return fmt.Errorf("dial tcp: %w", err)
	}
	t.conn = conn
	logger.Info("connected", "remote", conn.RemoteAddr().String())

	return nil
}

func (t *IPTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	logger := transportLogger("ip", "target", t.targetLocked())
	if t.conn == nil {
		logger.Debug("close skipped: not connected")

		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	if err != nil {
		logger.Warn("close failed", "error", err)

		return err
	}
	logger.Info("closed")

	return nil
}

func (t *IPTransport) ReadFrame(ctx context.Context) ([]byte, error) {
	logger := transportLogger("ip")
	conn, err := t.currentConn()
	if err != nil {
		return nil, err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	} else {
		_ = conn.SetReadDeadline(time.Time{})
	}

	payload, skipped, err := newFrameScanner(ioReadFullFunc(conn)).next()
	if skipped > 0 {
		logger.Debug("skipped stray bytes before frame", "count", skipped)
	}
	if err != nil {
		logger.Debug("read frame failed", "error", err)

		return nil, err
	}
	logger.Debug("read frame", "len", len(payload))

	return payload, nil
}

func (t *IPTransport) WriteFrame(ctx context.Context, payload []byte) error {
	logger := transportLogger("ip")
	conn, err := t.currentConn()
	if err != nil {
		return err
	}

	frame, err := encodeFrame(payload)
	if err != nil {
		logger.Warn("encode frame failed", "payload_len", len(payload), "error", err)

		return err
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetWriteDeadline(deadline)
	} else {
		_ = conn.SetWriteDeadline(time.Time{})
	}
	if _, err := conn.Write(frame); err != nil {
		logger.Warn("write frame failed", "frame_len", len(frame), "error", err)

		return fmt.Errorf("write frame: %w", err)
	}
	logger.Debug("write frame", "payload_len", len(payload), "frame_len", len(frame))

	return nil
}

func (t *IPTransport) currentConn() (net.Conn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil, ErrNotConnected
	}

	return t.conn, nil
}
