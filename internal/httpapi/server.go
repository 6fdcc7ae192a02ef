package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/domain"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	shutdownTimeout          = 5 * time.Second
)

// NodeSource is the read side of a radio interface.
type NodeSource interface {
	LocalNode() domain.Node
	Nodes() []domain.Node
	Node(num uint32) (domain.Node, bool)
}

// Config configures the status HTTP server.
type Config struct {
	ListenAddr string
	Nodes      NodeSource
	// Status reports the current connection state; optional.
	Status func() connectors.ConnectionStatus
	// Metrics serves /metrics; promhttp.Handler() when nil.
	Metrics http.Handler
	// Bus feeds /api/events; the endpoint is not registered when nil.
	Bus    bus.MessageBus
	Logger *slog.Logger

	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
}

var ErrNilNodes = errors.New("http api: node source is nil")

// NewHandler builds the route table. /api/events streams bus events over a
// websocket; every other route is a plain JSON GET.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Nodes == nil {
		return nil, ErrNilNodes
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default().With("component", "httpapi")
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metrics)
	mux.HandleFunc("GET /healthz", healthHandler(cfg.Status))
	mux.HandleFunc("GET /api/nodes", nodesHandler(cfg.Nodes))
	mux.HandleFunc("GET /api/nodes/{id}", nodeHandler(cfg.Nodes))
	mux.HandleFunc("GET /api/local", localHandler(cfg.Nodes))
	mux.HandleFunc("GET /api/local/config", localConfigHandler(cfg.Nodes))
	if cfg.Bus != nil {
		mux.Handle("GET /api/events", newEventStream(cfg.Bus, cfg.Logger))
	}

	return mux, nil
}

// Start serves the API on cfg.ListenAddr until ctx ends. The returned channel
// receives a terminal serve error, if any, and is closed when serving stops.
func Start(ctx context.Context, cfg Config) (*http.Server, <-chan error, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().With("component", "httpapi")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: durationOr(cfg.ReadHeaderTimeout, defaultReadHeaderTimeout),
		IdleTimeout:       durationOr(cfg.IdleTimeout, defaultIdleTimeout),
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http api listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return srv, errCh, nil
}

func durationOr(v time.Duration, d time.Duration) time.Duration {
	if v <= 0 {
		return d
	}
	return v
}
