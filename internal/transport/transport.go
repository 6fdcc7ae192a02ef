package transport

import (
	"context"
	"errors"
)

var ErrNotConnected = errors.New("transport is not connected")

// Transport moves whole FromRadio/ToRadio payloads to and from a device.
// ReadFrame and WriteFrame may be called concurrently with each other but
// each of them is only called from one goroutine at a time.
type Transport interface {
	Name() string
	Connect(ctx context.Context) error
	Close() error
	ReadFrame(ctx context.Context) ([]byte, error)
	WriteFrame(ctx context.Context, payload []byte) error
}

// StatusTargetResolver is implemented by transports that can describe what
// they are connected to, e.g. "10.0.0.5:4403" or "/dev/ttyUSB0".
type StatusTargetResolver interface {
	StatusTarget() string
}
