package radio

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Frame results recorded in meshlink_frames_total.
const (
	frameResultOK     = "ok"
	frameResultDecode = "decode_error"
	frameResultSchema = "schema_violation"
	frameResultClosed = "closed"
)

// Metrics bundles the Prometheus collectors of one radio interface. A nil
// *Metrics records nothing.
type Metrics struct {
	gatherer prometheus.Gatherer

	Frames         *prometheus.CounterVec
	FrameBytes     prometheus.Histogram
	Events         *prometheus.CounterVec
	ConfigMerges   *prometheus.CounterVec
	RemoteNodes    prometheus.Gauge
	Reconnects     prometheus.Counter
	FramesWritten  prometheus.Counter
	ConfigComplete prometheus.Gauge
}

// NewMetrics registers radio metrics against reg, defaulting to the global
// registry when nil. Registering twice against one registry reuses the
// existing collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	frames, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshlink_frames_total",
		Help: "FromRadio frames handled, labeled by result.",
	}, []string{"result"}), "meshlink_frames_total")
	if err != nil {
		return nil, err
	}
	frameBytes, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "meshlink_frame_bytes",
		Help:    "Size of handled FromRadio frames in bytes.",
		Buckets: []float64{8, 16, 32, 64, 128, 256, 512},
	}), "meshlink_frame_bytes")
	if err != nil {
		return nil, err
	}
	events, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshlink_events_total",
		Help: "Events delivered to listeners, labeled by event.",
	}, []string{"event"}), "meshlink_events_total")
	if err != nil {
		return nil, err
	}
	merges, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "meshlink_config_merges_total",
		Help: "Config sections merged into the local node, labeled by section.",
	}, []string{"section"}), "meshlink_config_merges_total")
	if err != nil {
		return nil, err
	}
	remoteNodes, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "meshlink_remote_nodes",
		Help: "Remote nodes currently known to the node store.",
	}), "meshlink_remote_nodes")
	if err != nil {
		return nil, err
	}
	reconnects, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meshlink_reconnects_total",
		Help: "Transport reconnect attempts.",
	}), "meshlink_reconnects_total")
	if err != nil {
		return nil, err
	}
	written, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "meshlink_frames_written_total",
		Help: "ToRadio frames written to the transport.",
	}), "meshlink_frames_written_total")
	if err != nil {
		return nil, err
	}
	complete, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "meshlink_config_complete",
		Help: "1 once the radio finished its configuration dump.",
	}), "meshlink_config_complete")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		gatherer:       gatherer,
		Frames:         frames,
		FrameBytes:     frameBytes,
		Events:         events,
		ConfigMerges:   merges,
		RemoteNodes:    remoteNodes,
		Reconnects:     reconnects,
		FramesWritten:  written,
		ConfigComplete: complete,
	}, nil
}

// Handler exposes a /metrics handler for the registry the metrics live in.
func (m *Metrics) Handler() http.Handler {
	gatherer := prometheus.DefaultGatherer
	if m != nil && m.gatherer != nil {
		gatherer = m.gatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) observeFrame(result string, size int) {
	if m == nil {
		return
	}
	m.Frames.WithLabelValues(result).Inc()
	if result != frameResultClosed {
		m.FrameBytes.Observe(float64(size))
	}
}

func (m *Metrics) observeEvent(ev Event) {
	if m == nil {
		return
	}
	m.Events.WithLabelValues(EventName(ev)).Inc()
}

func (m *Metrics) observeMerge(section string) {
	if m == nil {
		return
	}
	m.ConfigMerges.WithLabelValues(section).Inc()
}

func (m *Metrics) setRemoteNodes(n int) {
	if m == nil {
		return
	}
	m.RemoteNodes.Set(float64(n))
}

func (m *Metrics) incReconnects() {
	if m == nil {
		return
	}
	m.Reconnects.Inc()
}

func (m *Metrics) incFramesWritten() {
	if m == nil {
		return
	}
	m.FramesWritten.Inc()
}

func (m *Metrics) setConfigComplete(done bool) {
	if m == nil {
		return
	}
	if done {
		m.ConfigComplete.Set(1)
		return
	}
	m.ConfigComplete.Set(0)
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return c, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return g, nil
}
