package transport

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	frameStart1 = 0x94
	frameStart2 = 0xC3

	// MaxFramePayload is the largest payload the firmware puts in one frame.
	MaxFramePayload = 512
)

var (
	ErrFrameTooLarge = errors.New("frame payload too large")
	ErrEmptyFrame    = errors.New("frame payload is empty")
)

type readFullFunc func(buf []byte) error

// encodeFrame prefixes payload with the stream header and big-endian length.
func encodeFrame(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyFrame
	}
	if len(payload) > MaxFramePayload {
		return nil, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, len(payload), MaxFramePayload)
	}

	frame := make([]byte, 4+len(payload))
	frame[0] = frameStart1
	frame[1] = frameStart2
	// #nosec G115 -- length is bounded by MaxFramePayload above.
	binary.BigEndian.PutUint16(frame[2:4], uint16(len(payload)))
	copy(frame[4:], payload)

	return frame, nil
}

// frameScanner pulls framed payloads out of a byte stream. Bytes between
// frames (device debug output, line noise) and headers announcing an
// impossible length are skipped.
type frameScanner struct {
	readFull readFullFunc
}

func newFrameScanner(readFull readFullFunc) *frameScanner {
	return &frameScanner{readFull: readFull}
}

// next returns the next payload and how many stray bytes preceded it.
func (s *frameScanner) next() ([]byte, int, error) {
	skipped := 0
	headerSeen := false
	for {
		if !headerSeen {
			n, err := syncToHeader(s.readFull)
			skipped += n
			if err != nil {
				return nil, skipped, err
			}
		}
		headerSeen = false

		var lenBuf [2]byte
		if err := s.readFull(lenBuf[:]); err != nil {
			return nil, skipped, fmt.Errorf("read frame length: %w", err)
		}
		ln := int(binary.BigEndian.Uint16(lenBuf[:]))
		if ln == 0 || ln > MaxFramePayload {
			skipped += 2
			// The bogus length may itself be the start of the next frame.
			if lenBuf[0] == frameStart1 && lenBuf[1] == frameStart2 {
				headerSeen = true
			} else {
				skipped += 2
			}
			continue
		}

		payload := make([]byte, ln)
		if err := s.readFull(payload); err != nil {
			return nil, skipped, fmt.Errorf("read frame payload: %w", err)
		}

		return payload, skipped, nil
	}
}

func syncToHeader(readFull readFullFunc) (int, error) {
	var b [1]byte
	skipped := 0
	prevStart := false
	for {
		if err := readFull(b[:]); err != nil {
			return skipped, fmt.Errorf("read frame header: %w", err)
		}
		if prevStart && b[0] == frameStart2 {
			return skipped, nil
		}
		if prevStart {
			skipped++
		}
		prevStart = b[0] == frameStart1
		if !prevStart {
			skipped++
		}
	}
}

func readFrame(readFull readFullFunc) ([]byte, error) {
	payload, _, err := newFrameScanner(readFull).next()
	return payload, err
}

func ioReadFullFunc(r io.Reader) readFullFunc {
	return func(buf []byte) error {
		_, err := io.ReadFull(r, buf)

		return err
	}
}

// UnwrapFrame strips the stream header from one complete frame. Anything
// that is not exactly one valid frame is returned unchanged with ok=false.
func UnwrapFrame(b []byte) ([]byte, bool) {
	if len(b) < 5 || b[0] != frameStart1 || b[1] != frameStart2 {
		return b, false
	}
	ln := int(binary.BigEndian.Uint16(b[2:4]))
	if ln == 0 || ln > MaxFramePayload || ln != len(b)-4 {
		return b, false
	}

	return b[4:], true
}

// FrameReader pulls payloads out of a captured serial or TCP byte stream.
type FrameReader struct {
	scanner *frameScanner
	// Skipped counts stray bytes dropped between frames so far.
	Skipped int
}

func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{scanner: newFrameScanner(ioReadFullFunc(r))}
}

// Next returns the next payload, or io.EOF once the stream is exhausted.
func (r *FrameReader) Next() ([]byte, error) {
	payload, skipped, err := r.scanner.next()
	r.Skipped += skipped
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}

	return payload, nil
}
