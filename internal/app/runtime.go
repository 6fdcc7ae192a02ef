package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/config"
	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/httpapi"
	"github.com/skobkin/meshlink/internal/logging"
	"github.com/skobkin/meshlink/internal/persistence"
	"github.com/skobkin/meshlink/internal/radio"
	"github.com/skobkin/meshlink/internal/transport"
)

// Options tune Initialize. The zero value loads the config from the user
// config dir and logs to stderr.
type Options struct {
	// ConfigPath overrides the config file location.
	ConfigPath string
	// Configure adjusts the loaded config, e.g. from command line flags,
	// before it is validated.
	Configure func(*config.AppConfig)
	// LogWriter receives console logs; stderr when nil.
	LogWriter io.Writer
	// Registry collects metrics; a fresh registry with Go and process
	// collectors when nil.
	Registry *prometheus.Registry
}

type Runtime struct {
	Ctx    context.Context
	cancel context.CancelFunc

	SessionID string
	Paths     Paths
	Config    config.AppConfig

	LogManager *logging.Manager
	Registry   *prometheus.Registry
	Metrics    *radio.Metrics
	Bus        *bus.PubSubBus
	DB         *sql.DB

	NodeRepo    *persistence.NodeRepo
	ConfigRepo  *persistence.LocalConfigRepo
	WriterQueue *persistence.WriterQueue

	NodeStore *domain.NodeStore
	Discovery *NodeDiscoveryProjection
	Radio     *radio.Interface

	logger    *slog.Logger
	closeOnce sync.Once
	closeErr  error

	httpErr        <-chan error
	projectionDone <-chan struct{}

	connStatusMu sync.RWMutex
	connStatus   connectors.ConnectionStatus
}

func Initialize(parent context.Context, opts Options) (*Runtime, error) {
	paths, err := ResolvePaths()
	if err != nil {
		return nil, err
	}
	paths = paths.WithOverrides(opts.ConfigPath, "", "")
	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return nil, err
	}
	if opts.Configure != nil {
		opts.Configure(&cfg)
	}
	cfg.FillMissingDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	paths = paths.WithOverrides("", cfg.Storage.Path, cfg.Logging.File)

	ctx, cancel := context.WithCancel(parent)
	rt := &Runtime{
		Ctx:        ctx,
		cancel:     cancel,
		SessionID:  uuid.NewString(),
		Paths:      paths,
		Config:     cfg,
		connStatus: ConnectionStatusFromConfig(cfg.Connection),
	}

	logMgr := logging.NewManager()
	if opts.LogWriter != nil {
		logMgr = logging.NewManagerWithWriter(opts.LogWriter)
	}
	if err := logMgr.Configure(cfg.Logging, paths.LogFile); err != nil {
		_ = logMgr.Close()
		cancel()
		return nil, fmt.Errorf("configure logging: %w", err)
	}
	rt.LogManager = logMgr
	rt.logger = logMgr.Logger("app").With("session", rt.SessionID)
	transport.SetLogger(logMgr.Logger("transport"))
	rt.logger.Info("starting meshlink runtime",
		"version", BuildVersion(),
		"build_date", BuildDateYMD(),
		"connector", cfg.Connection.Connector,
		"target", ConnectionTarget(cfg.Connection),
	)

	rt.Registry = opts.Registry
	if rt.Registry == nil {
		rt.Registry = prometheus.NewRegistry()
		rt.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	metrics, err := radio.NewMetrics(rt.Registry)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("register radio metrics: %w", err)
	}
	rt.Metrics = metrics

	b := bus.New(logMgr.Logger("bus"))
	rt.Bus = b
	connSub := b.Subscribe(connectors.TopicConnStatus)
	go rt.captureConnStatus(ctx, connSub)

	rt.NodeStore = domain.NewNodeStore()
	if cfg.Storage.Enabled {
		if err := rt.openStorage(ctx); err != nil {
			_ = rt.Close()
			return nil, err
		}
	}

	rt.Discovery = NewNodeDiscoveryProjection(rt.NodeStore, logMgr.Logger("app.node_discovery"))
	rt.Discovery.Start(ctx, b)

	tr, err := NewTransportForConnection(cfg.Connection)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("initialize transport: %w", err)
	}
	radioOpts := radio.Options{
		NoProto:   tr == nil,
		Transport: tr,
		Bus:       b,
		Store:     rt.NodeStore,
		Metrics:   metrics,
	}
	if cfg.Connection.HeartbeatSeconds > 0 {
		radioOpts.HeartbeatInterval = time.Duration(cfg.Connection.HeartbeatSeconds) * time.Second
	}
	rt.Radio, err = radio.New(logMgr.Logger("radio"), radioOpts)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("initialize radio: %w", err)
	}

	return rt, nil
}

func (r *Runtime) openStorage(ctx context.Context) error {
	db, err := persistence.Open(ctx, r.Paths.DBFile)
	if err != nil {
		return err
	}
	r.DB = db
	r.NodeRepo = persistence.NewNodeRepo(db)
	r.ConfigRepo = persistence.NewLocalConfigRepo(db)

	if err := domain.LoadStoresFromRepositories(ctx, r.NodeStore, r.NodeRepo, r.ConfigRepo); err != nil {
		return fmt.Errorf("load node cache: %w", err)
	}
	r.logger.Info("node cache loaded", "path", r.Paths.DBFile, "nodes", r.NodeStore.RemoteCount())

	r.WriterQueue = persistence.NewWriterQueue(r.LogManager.Logger("persistence"), writerQueueCapacity)
	if err := r.WriterQueue.RegisterMetrics(r.Registry); err != nil {
		return fmt.Errorf("register persistence metrics: %w", err)
	}
	r.WriterQueue.Start(ctx)
	r.projectionDone = domain.StartPersistenceProjection(ctx, r.Bus, r.WriterQueue, r.NodeRepo, r.ConfigRepo)

	return nil
}

// Offline reports whether the runtime has no radio transport.
func (r *Runtime) Offline() bool {
	return r.Config.Connection.Connector == config.ConnectorNone
}

// Start connects to the radio. Offline runtimes have nothing to start.
func (r *Runtime) Start() error {
	if r.Offline() {
		return nil
	}
	return r.Radio.Start(r.Ctx)
}

// ServeHTTP starts the status API when an address is configured.
func (r *Runtime) ServeHTTP() error {
	addr := r.Config.HTTP.ListenAddr
	if addr == "" {
		return nil
	}
	_, errCh, err := httpapi.Start(r.Ctx, httpapi.Config{
		ListenAddr: addr,
		Nodes:      r.Radio,
		Status:     r.CurrentConnStatus,
		Metrics:    r.MetricsHandler(),
		Bus:        r.Bus,
		Logger:     r.LogManager.Logger("httpapi"),
	})
	if err != nil {
		return fmt.Errorf("start http api: %w", err)
	}
	r.httpErr = errCh

	return nil
}

// HTTPErrors yields a terminal error of the status API; nil when the API is
// not running.
func (r *Runtime) HTTPErrors() <-chan error {
	return r.httpErr
}

func (r *Runtime) MetricsHandler() http.Handler {
	return r.Metrics.Handler()
}

func (r *Runtime) captureConnStatus(ctx context.Context, sub bus.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-sub:
			if !ok {
				return
			}
			status, ok := raw.(connectors.ConnectionStatus)
			if !ok {
				continue
			}
			r.setConnStatus(status)
		}
	}
}

func (r *Runtime) setConnStatus(status connectors.ConnectionStatus) {
	r.connStatusMu.Lock()
	r.connStatus = status
	r.connStatusMu.Unlock()
}

func (r *Runtime) CurrentConnStatus() connectors.ConnectionStatus {
	r.connStatusMu.RLock()
	defer r.connStatusMu.RUnlock()

	return r.connStatus
}

// ClearDatabase wipes the node cache and everything learned so far.
func (r *Runtime) ClearDatabase() error {
	if r.DB == nil {
		return errors.New("database is not initialized")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if r.WriterQueue != nil {
		if err := r.WriterQueue.Flush(ctx); err != nil {
			return fmt.Errorf("flush pending writes: %w", err)
		}
	}
	if err := persistence.ClearDatabase(ctx, r.DB); err != nil {
		return err
	}
	if r.NodeStore != nil {
		r.NodeStore.Reset()
	}
	if r.Discovery != nil {
		r.Discovery.ResetFromStore(r.NodeStore)
	}
	r.logger.Info("database cleared")

	return nil
}

// Close stops the radio, flushes pending cache writes and releases every
// resource. It is safe to call more than once.
func (r *Runtime) Close() error {
	r.closeOnce.Do(func() {
		var errs []error
		if r.Radio != nil {
			if err := r.Radio.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		// Closing the bus first lets the persistence projection enqueue
		// whatever it still has buffered before the writer queue is flushed.
		if r.Bus != nil {
			r.Bus.Close()
		}
		ctx, cancel := context.WithTimeout(context.Background(), closeFlushTimeout)
		if r.projectionDone != nil {
			select {
			case <-r.projectionDone:
			case <-ctx.Done():
				errs = append(errs, errors.New("persistence projection did not drain"))
			}
		}
		if r.WriterQueue != nil {
			if err := r.WriterQueue.Flush(ctx); err != nil {
				errs = append(errs, fmt.Errorf("flush pending writes: %w", err))
			}
		}
		cancel()
		if r.cancel != nil {
			r.cancel()
		}
		if r.DB != nil {
			if err := r.DB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close database: %w", err))
			}
		}
		if r.LogManager != nil {
			_ = r.LogManager.Close()
		}
		r.closeErr = errors.Join(errs...)
	})

	return r.closeErr
}
