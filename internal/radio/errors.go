package radio

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by every operation on a closed Interface.
	ErrClosed = errors.New("radio interface is closed")
	// ErrSchemaViolation marks a well-formed frame that does not carry exactly
	// one usable payload.
	ErrSchemaViolation = errors.New("fromradio schema violation")
	// ErrNoProto is returned by operations that need a transport when the
	// interface runs without one.
	ErrNoProto = errors.New("radio interface has no transport")
)

// DecodeError reports a frame that could not be parsed at all.
type DecodeError struct {
	Len int
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode fromradio frame (%d bytes): %v", e.Len, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func schemaViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrSchemaViolation, fmt.Sprintf(format, args...))
}
