package persistence

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	maxWriteAttempts  = 3
	defaultRetryDelay = 300 * time.Millisecond
)

type writeCmd struct {
	name string
	fn   func(context.Context) error
}

// WriterQueue runs persistence writes one at a time, in order, retrying
// failed ones a few times before giving up on them.
type WriterQueue struct {
	logger     *slog.Logger
	queue      chan writeCmd
	pending    sync.WaitGroup
	retryDelay time.Duration
	writes     *prometheus.CounterVec
}

func NewWriterQueue(logger *slog.Logger, capacity int) *WriterQueue {
	if logger == nil {
		logger = slog.Default()
	}
	if capacity <= 0 {
		capacity = 256
	}
	return &WriterQueue{
		logger:     logger,
		queue:      make(chan writeCmd, capacity),
		retryDelay: defaultRetryDelay,
	}
}

// RegisterMetrics exposes write outcomes as meshlink_db_writes_total.
func (w *WriterQueue) RegisterMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	writes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshlink_db_writes_total",
		Help: "Persistence writes, labeled by command and result.",
	}, []string{"cmd", "result"})
	if err := reg.Register(writes); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return err
		}
		writes = existing
	}
	w.writes = writes

	return nil
}

// Enqueue never blocks the caller. When the buffer is full the command is
// handed over from a goroutine and may run out of order.
func (w *WriterQueue) Enqueue(name string, fn func(context.Context) error) {
	cmd := writeCmd{name: name, fn: fn}
	w.pending.Add(1)
	select {
	case w.queue <- cmd:
	default:
		go func() { w.queue <- cmd }()
	}
}

func (w *WriterQueue) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cmd := <-w.queue:
				w.runWithRetry(ctx, cmd)
				w.pending.Done()
			}
		}
	}()
}

// Flush waits until every enqueued write has been attempted or ctx ends.
func (w *WriterQueue) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *WriterQueue) runWithRetry(ctx context.Context, cmd writeCmd) {
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		err := cmd.fn(ctx)
		if err == nil {
			w.observe(cmd.name, "ok")
			return
		}
		w.logger.Error("db write failed", "cmd", cmd.name, "attempt", attempt, "error", err)
		if attempt == maxWriteAttempts {
			w.observe(cmd.name, "failed")
			return
		}
		w.observe(cmd.name, "retry")
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * w.retryDelay):
		}
	}
}

func (w *WriterQueue) observe(cmd, result string) {
	if w.writes == nil {
		return
	}
	w.writes.WithLabelValues(cmd, result).Inc()
}
