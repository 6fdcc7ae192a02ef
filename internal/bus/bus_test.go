package bus

import (
	"io"
	"log/slog"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func receive(t *testing.T, ch Subscription) any {
	t.Helper()
	select {
	case msg, ok := <-ch:
		if !ok {
			t.Fatalf("subscription closed unexpectedly")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for message")
	}
	return nil
}

func TestPubSubBusDeliversByTopic(t *testing.T) {
	b := New(testLogger())
	defer b.Close()

	nodes := b.Subscribe("node.info")
	texts := b.Subscribe("text.message")

	b.Publish("node.info", 42)
	b.Publish("text.message", "hello")

	if got := receive(t, nodes); got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}
	if got := receive(t, texts); got != "hello" {
		t.Fatalf("expected hello, got %v", got)
	}
}

func TestPubSubBusUnsubscribeClosesChannel(t *testing.T) {
	b := New(testLogger())
	defer b.Close()

	ch := b.Subscribe("node.info")
	b.Unsubscribe(ch, "node.info")

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for channel close")
	}
}

func TestPubSubBusCloseIsIdempotent(t *testing.T) {
	b := NewWithCapacity(nil, 0)
	ch := b.Subscribe("node.info")
	b.Close()
	b.Close()

	b.Publish("node.info", 1)

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected subscription to be closed after shutdown")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for shutdown")
	}

	late := b.Subscribe("node.info")
	if _, ok := <-late; ok {
		t.Fatalf("expected closed subscription from closed bus")
	}
	b.Unsubscribe(late)
}
