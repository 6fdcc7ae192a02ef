package radio

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetricsReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("first registration: %v", err)
	}
	second, err := NewMetrics(reg)
	if err != nil {
		t.Fatalf("second registration: %v", err)
	}

	first.incReconnects()
	second.incReconnects()
	if got := testutil.ToFloat64(first.Reconnects); got != 2 {
		t.Fatalf("expected shared reconnect counter at 2, got %v", got)
	}
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	metrics, err := NewMetrics(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("new metrics: %v", err)
	}
	metrics.observeFrame(frameResultOK, 12)
	metrics.observeMerge("traffic_management")
	metrics.setRemoteNodes(3)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`meshlink_frames_total{result="ok"} 1`,
		`meshlink_config_merges_total{section="traffic_management"} 1`,
		`meshlink_remote_nodes 3`,
	} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, body)
		}
	}
}

func TestNilMetricsRecordNothing(t *testing.T) {
	var m *Metrics
	m.observeFrame(frameResultDecode, 1)
	m.observeEvent(RebootedEvent{})
	m.observeMerge("mqtt")
	m.setRemoteNodes(1)
	m.incReconnects()
	m.incFramesWritten()
	m.setConfigComplete(true)
}
