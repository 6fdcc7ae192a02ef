package radio

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/transport"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 15 * time.Second
)

type SendResult struct {
	Message domain.ChatMessage
	Err     error
}

type sendRequest struct {
	chatKey string
	text    string
	result  chan SendResult
}

// Start runs the connect loop until ctx ends or the interface is closed.
func (i *Interface) Start(ctx context.Context) error {
	if i.opts.NoProto {
		return ErrNoProto
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return ErrClosed
	}
	if i.started {
		return errors.New("radio interface already started")
	}
	i.started = true

	runCtx, cancel := context.WithCancel(ctx)
	i.cancel = cancel
	i.wg.Add(2)
	go func() {
		defer i.wg.Done()
		i.runOutbox(runCtx)
	}()
	go func() {
		defer i.wg.Done()
		i.runConnector(runCtx)
	}()

	return nil
}

// SendText queues a text message for chatKey ("channel:N" or "dm:!id"). The
// result is delivered once the frame was written to the transport.
func (i *Interface) SendText(chatKey, text string) <-chan SendResult {
	resCh := make(chan SendResult, 1)
	fail := func(err error) <-chan SendResult {
		resCh <- SendResult{Err: err}
		close(resCh)
		return resCh
	}

	if i.opts.NoProto {
		return fail(ErrNoProto)
	}
	chatKey = strings.TrimSpace(chatKey)
	if chatKey == "" {
		return fail(errors.New("chat key is required"))
	}
	if utf8.RuneCountInString(text) == 0 {
		return fail(errors.New("message body is empty"))
	}
	if len(text) > MaxTextBytes {
		return fail(fmt.Errorf("message body exceeds %d bytes: %d", MaxTextBytes, len(text)))
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return fail(ErrClosed)
	}
	select {
	case i.outbox <- sendRequest{chatKey: chatKey, text: text, result: resCh}:
	default:
		return fail(errors.New("outbox is full"))
	}

	return resCh
}

func (i *Interface) runConnector(ctx context.Context) {
	tr := i.opts.Transport
	backoff := initialBackoff
	attempt := 0
	for {
		if err := ctx.Err(); err != nil {
			return
		}
		if attempt > 0 {
			i.metrics.incReconnects()
		}
		attempt++

		i.publishConnStatus(connectors.ConnectionStateConnecting, nil)
		if err := tr.Connect(ctx); err != nil {
			i.publishConnStatus(connectors.ConnectionStateReconnecting, err)
			i.logger.Error("transport connect failed", "error", err, "retry_in", backoff)
			if !sleepWithContext(ctx, backoff) {
				return
			}
			backoff = nextBackoff(backoff)
			continue
		}
		if ctx.Err() != nil {
			_ = tr.Close()
			return
		}

		backoff = initialBackoff
		i.publishConnStatus(connectors.ConnectionStateConnected, nil)
		if err := i.sendWantConfig(ctx); err != nil {
			i.logger.Warn("want_config send failed", "error", err)
		}

		keepAliveCtx, cancelKeepAlive := context.WithCancel(ctx)
		i.wg.Add(1)
		go func() {
			defer i.wg.Done()
			i.runKeepAlive(keepAliveCtx)
		}()
		err := i.runReader(ctx)
		cancelKeepAlive()
		_ = tr.Close()
		if ctx.Err() != nil {
			i.publishConnStatus(connectors.ConnectionStateDisconnected, nil)
			return
		}
		i.logger.Warn("transport reader stopped", "error", err)
		i.publishConnStatus(connectors.ConnectionStateReconnecting, err)

		if !sleepWithContext(ctx, backoff) {
			return
		}
		backoff = nextBackoff(backoff)
	}
}

func (i *Interface) runReader(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		readCtx, cancel := context.WithTimeout(ctx, i.opts.ReadTimeout)
		payload, err := i.opts.Transport.ReadFrame(readCtx)
		cancel()
		if err != nil {
			return err
		}

		i.bus.Publish(connectors.TopicRawFrameIn, rawFrame(payload))
		if err := i.HandleFromRadio(payload); err != nil {
			if errors.Is(err, ErrClosed) {
				return err
			}
			i.logger.Warn("fromradio frame dropped", "error", err, "len", len(payload))
		}
	}
}

func (i *Interface) runKeepAlive(ctx context.Context) {
	ticker := time.NewTicker(i.opts.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			payload, err := i.codec.EncodeHeartbeat()
			if err != nil {
				i.logger.Debug("encode heartbeat failed", "error", err)
				continue
			}
			if err := i.writeFrame(ctx, payload, 5*time.Second); err != nil {
				i.logger.Debug("heartbeat write failed", "error", err)
			}
		}
	}
}

func (i *Interface) runOutbox(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-i.outbox:
			res := i.handleSend(ctx, req)
			req.result <- res
			close(req.result)
		}
	}
}

func (i *Interface) handleSend(ctx context.Context, req sendRequest) SendResult {
	encoded, err := i.codec.EncodeText(req.chatKey, req.text)
	if err != nil {
		return SendResult{Err: fmt.Errorf("encode outgoing message: %w", err)}
	}
	if encoded.WantAck {
		i.acks.markTracked(encoded.DeviceMessageID, encoded.To)
	}
	if err := i.writeFrame(ctx, encoded.Payload, 8*time.Second); err != nil {
		return SendResult{Err: fmt.Errorf("send outgoing frame: %w", err)}
	}

	status := domain.MessageStatusSent
	if encoded.WantAck {
		status = domain.MessageStatusPending
	}
	msg := domain.ChatMessage{
		DeviceMessageID: encoded.DeviceMessageID,
		ChatKey:         req.chatKey,
		FromNodeNum:     i.codec.LocalNodeNum(),
		Direction:       domain.MessageDirectionOut,
		Body:            req.text,
		Status:          status,
		At:              time.Now(),
	}

	i.frameMu.Lock()
	i.emit(TextMessageEvent{Message: msg})
	i.frameMu.Unlock()

	return SendResult{Message: msg}
}

func (i *Interface) sendWantConfig(ctx context.Context) error {
	payload, err := i.codec.EncodeWantConfig()
	if err != nil {
		return err
	}
	i.logger.Debug("requesting radio configuration", "want_config_id", i.codec.WantConfigID())

	return i.writeFrame(ctx, payload, 6*time.Second)
}

func (i *Interface) writeFrame(ctx context.Context, payload []byte, timeout time.Duration) error {
	writeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := i.opts.Transport.WriteFrame(writeCtx, payload); err != nil {
		return err
	}
	i.metrics.incFramesWritten()
	i.bus.Publish(connectors.TopicRawFrameOut, rawFrame(payload))

	return nil
}

func (i *Interface) publishConnStatus(state connectors.ConnectionState, err error) {
	status := connectors.ConnectionStatus{
		State:         state,
		TransportName: i.opts.Transport.Name(),
		Timestamp:     time.Now(),
	}
	if resolver, ok := i.opts.Transport.(transport.StatusTargetResolver); ok {
		status.Target = resolver.StatusTarget()
	}
	if err != nil {
		status.Err = err.Error()
	}
	i.bus.Publish(connectors.TopicConnStatus, status)
}

func rawFrame(payload []byte) connectors.RawFrame {
	return connectors.RawFrame{Hex: strings.ToUpper(hex.EncodeToString(payload)), Len: len(payload)}
}

func nextBackoff(d time.Duration) time.Duration {
	if d >= maxBackoff {
		return maxBackoff
	}
	d *= 2
	if d > maxBackoff {
		return maxBackoff
	}

	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
