package radio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/protobuf/proto"

	"github.com/skobkin/meshlink/internal/meshpb"
)

// fakeTransport feeds frames pushed to in and records written frames on out.
type fakeTransport struct {
	in  chan []byte
	out chan []byte

	mu        sync.Mutex
	connected bool
	closes    int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		in:  make(chan []byte, 16),
		out: make(chan []byte, 16),
	}
}

func (f *fakeTransport) Name() string { return "fake" }

func (f *fakeTransport) Connect(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = true
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connected = false
	f.closes++
	return nil
}

func (f *fakeTransport) isConnected() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connected
}

func (f *fakeTransport) ReadFrame(ctx context.Context) ([]byte, error) {
	if !f.isConnected() {
		return nil, errors.New("not connected")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case b := <-f.in:
		return b, nil
	}
}

func (f *fakeTransport) WriteFrame(_ context.Context, payload []byte) error {
	if !f.isConnected() {
		return errors.New("not connected")
	}
	select {
	case f.out <- append([]byte(nil), payload...):
	default:
	}
	return nil
}

func readToRadio(t *testing.T, ch <-chan []byte) *meshpb.ToRadio {
	t.Helper()
	select {
	case b := <-ch:
		var msg meshpb.ToRadio
		if err := proto.Unmarshal(b, &msg); err != nil {
			t.Fatalf("decode written frame: %v", err)
		}
		return &msg
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for written frame")
	}
	return nil
}

func TestLiveHandshakeAndSend(t *testing.T) {
	tr := newFakeTransport()
	metrics, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}
	iface, err := New(testLogger(), Options{
		Transport:         tr,
		Metrics:           metrics,
		HeartbeatInterval: time.Hour,
	})
	if err != nil {
		t.Fatalf("new interface: %v", err)
	}
	defer iface.Close()

	if err := iface.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := iface.Start(context.Background()); err == nil {
		t.Fatalf("expected second start to fail")
	}

	want := readToRadio(t, tr.out)
	id := want.GetWantConfigId()
	if id == 0 || id != iface.Codec().WantConfigID() {
		t.Fatalf("expected want_config id %d, got %d", iface.Codec().WantConfigID(), id)
	}

	// A config complete for a different request does not finish the handshake.
	stale, _ := proto.Marshal(&meshpb.FromRadio{PayloadVariant: &meshpb.FromRadio_ConfigCompleteId{ConfigCompleteId: id + 1}})
	tr.in <- stale
	complete, _ := proto.Marshal(&meshpb.FromRadio{PayloadVariant: &meshpb.FromRadio_ConfigCompleteId{ConfigCompleteId: id}})
	tr.in <- complete

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := iface.WaitConfigured(ctx); err != nil {
		t.Fatalf("wait configured: %v", err)
	}
	if got := testutil.ToFloat64(metrics.ConfigComplete); got != 1 {
		t.Fatalf("expected config complete gauge 1, got %v", got)
	}

	res := <-iface.SendText("dm:!0000cafe", "ping")
	if res.Err != nil {
		t.Fatalf("send text: %v", res.Err)
	}
	sent := readToRadio(t, tr.out).GetPacket()
	if sent.GetTo() != 0x0000cafe || !sent.GetWantAck() {
		t.Fatalf("unexpected packet: to=%x want_ack=%v", sent.GetTo(), sent.GetWantAck())
	}
	if string(sent.GetDecoded().GetPayload()) != "ping" {
		t.Fatalf("unexpected payload %q", sent.GetDecoded().GetPayload())
	}
	if _, ok := iface.acks.stateFor(res.Message.DeviceMessageID); !ok {
		t.Fatalf("expected dm to be tracked for acks")
	}

	if err := iface.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := iface.Start(context.Background()); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed from Start after close, got %v", err)
	}
	if res := <-iface.SendText("channel:0", "late"); !errors.Is(res.Err, ErrClosed) {
		t.Fatalf("expected ErrClosed from SendText after close, got %v", res.Err)
	}
}

func TestLiveDecodeErrorsDoNotStopReader(t *testing.T) {
	tr := newFakeTransport()
	metrics, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}
	iface, err := New(testLogger(), Options{Transport: tr, Metrics: metrics, HeartbeatInterval: time.Hour})
	if err != nil {
		t.Fatalf("new interface: %v", err)
	}
	defer iface.Close()

	if err := iface.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	want := readToRadio(t, tr.out)

	tr.in <- []byte{0xff}
	complete, _ := proto.Marshal(&meshpb.FromRadio{PayloadVariant: &meshpb.FromRadio_ConfigCompleteId{ConfigCompleteId: want.GetWantConfigId()}})
	tr.in <- complete

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := iface.WaitConfigured(ctx); err != nil {
		t.Fatalf("wait configured: %v", err)
	}
	if got := testutil.ToFloat64(metrics.Frames.WithLabelValues(frameResultDecode)); got != 1 {
		t.Fatalf("expected one decode error, got %v", got)
	}
}

func TestSendTextValidation(t *testing.T) {
	iface, err := New(testLogger(), Options{Transport: newFakeTransport()})
	if err != nil {
		t.Fatalf("new interface: %v", err)
	}
	defer iface.Close()

	long := make([]byte, MaxTextBytes+1)
	for idx := range long {
		long[idx] = 'a'
	}
	tests := []struct {
		name    string
		chatKey string
		text    string
	}{
		{name: "empty key", chatKey: " ", text: "hi"},
		{name: "empty body", chatKey: "channel:0", text: ""},
		{name: "too long", chatKey: "channel:0", text: string(long)},
	}
	for _, tt := range tests {
		res := <-iface.SendText(tt.chatKey, tt.text)
		if res.Err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestNextBackoff(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want time.Duration
	}{
		{in: time.Second, want: 2 * time.Second},
		{in: 8 * time.Second, want: maxBackoff},
		{in: maxBackoff, want: maxBackoff},
	}
	for _, tt := range tests {
		if got := nextBackoff(tt.in); got != tt.want {
			t.Fatalf("nextBackoff(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
