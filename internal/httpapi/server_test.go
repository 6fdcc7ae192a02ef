package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
)

type fakeNodes struct {
	local   domain.Node
	remotes []domain.Node
}

func (f fakeNodes) LocalNode() domain.Node { return f.local }
func (f fakeNodes) Nodes() []domain.Node   { return f.remotes }

func (f fakeNodes) Node(num uint32) (domain.Node, bool) {
	for _, n := range f.remotes {
		if n.Num == num {
			return n, true
		}
	}
	return domain.Node{}, false
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = testLogger()
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return h
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func sampleNodes() fakeNodes {
	rssi := -90
	snr := 5.5
	return fakeNodes{
		local: domain.Node{
			Num:      0x1c8,
			NodeID:   "!000001c8",
			LongName: "Base",
			ModuleConfig: &meshpb.LocalModuleConfig{
				TrafficManagement: &meshpb.ModuleConfig_TrafficManagementConfig{
					Enabled:          true,
					RateLimitEnabled: true,
				},
			},
		},
		remotes: []domain.Node{
			{Num: 0xabcd, NodeID: "!0000abcd", ShortName: "AB", RSSI: &rssi, SNR: &snr, LastHeardAt: time.Unix(1_735_000_000, 0)},
			{Num: 0x42},
		},
	}
}

func TestNewHandlerRequiresNodeSource(t *testing.T) {
	if _, err := NewHandler(Config{}); !errors.Is(err, ErrNilNodes) {
		t.Fatalf("expected ErrNilNodes, got %v", err)
	}
}

func TestNodesHandler(t *testing.T) {
	h := newTestHandler(t, Config{Nodes: sampleNodes()})

	rr := doGet(t, h, "/api/nodes")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type: %q", ct)
	}

	var out struct {
		Local nodeView   `json:"local"`
		Nodes []nodeView `json:"nodes"`
		Count int        `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out.Count != 2 || len(out.Nodes) != 2 {
		t.Fatalf("expected two nodes, got %d", out.Count)
	}
	if out.Local.Name != "Base" {
		t.Fatalf("expected local name Base, got %q", out.Local.Name)
	}
	if out.Nodes[0].Signal != "good" || out.Nodes[0].Name != "AB" {
		t.Fatalf("unexpected first node: %+v", out.Nodes[0])
	}
	if out.Nodes[1].ID != "!00000042" || out.Nodes[1].LastHeardAt != nil {
		t.Fatalf("unexpected second node: %+v", out.Nodes[1])
	}
}

func TestNodeHandler(t *testing.T) {
	h := newTestHandler(t, Config{Nodes: sampleNodes()})

	tests := []struct {
		name     string
		target   string
		wantCode int
		wantID   string
	}{
		{name: "remote by bang id", target: "/api/nodes/!0000abcd", wantCode: http.StatusOK, wantID: "!0000abcd"},
		{name: "remote by decimal", target: "/api/nodes/66", wantCode: http.StatusOK, wantID: "!00000042"},
		{name: "local", target: "/api/nodes/0x1c8", wantCode: http.StatusOK, wantID: "!000001c8"},
		{name: "unknown", target: "/api/nodes/!00000001", wantCode: http.StatusNotFound},
		{name: "garbage", target: "/api/nodes/!zz", wantCode: http.StatusBadRequest},
	}

	for _, tc := range tests {
		rr := doGet(t, h, tc.target)
		if rr.Code != tc.wantCode {
			t.Fatalf("%s: expected %d, got %d (%s)", tc.name, tc.wantCode, rr.Code, rr.Body.String())
		}
		if tc.wantID == "" {
			continue
		}
		var view nodeView
		if err := json.Unmarshal(rr.Body.Bytes(), &view); err != nil {
			t.Fatalf("%s: decode body: %v", tc.name, err)
		}
		if view.ID != tc.wantID {
			t.Fatalf("%s: expected id %q, got %q", tc.name, tc.wantID, view.ID)
		}
	}
}

func TestLocalConfigHandler(t *testing.T) {
	h := newTestHandler(t, Config{Nodes: sampleNodes()})

	rr := doGet(t, h, "/api/local/config")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var out struct {
		Num          uint32 `json:"num"`
		ModuleConfig struct {
			TrafficManagement struct {
				Enabled          *bool `json:"enabled"`
				RateLimitEnabled *bool `json:"rate_limit_enabled"`
			} `json:"traffic_management"`
		} `json:"module_config"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	tm := out.ModuleConfig.TrafficManagement
	if tm.Enabled == nil || !*tm.Enabled || tm.RateLimitEnabled == nil || !*tm.RateLimitEnabled {
		t.Fatalf("expected traffic management flags in config dump, got %s", rr.Body.String())
	}
}

func TestHealthHandlerReportsConnection(t *testing.T) {
	h := newTestHandler(t, Config{
		Nodes: sampleNodes(),
		Status: func() connectors.ConnectionStatus {
			return connectors.ConnectionStatus{State: connectors.ConnectionStateConnected, TransportName: "ip", Target: "radio:4403"}
		},
	})

	rr := doGet(t, h, "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"state":"connected"`) {
		t.Fatalf("expected connection state in body, got %s", rr.Body.String())
	}
}

func TestMetricsRouteUsesGivenHandler(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "meshlink_frames_total 1\n")
	})
	h := newTestHandler(t, Config{Nodes: sampleNodes(), Metrics: metrics})

	rr := doGet(t, h, "/metrics")
	if !strings.Contains(rr.Body.String(), "meshlink_frames_total") {
		t.Fatalf("expected metrics body, got %q", rr.Body.String())
	}
}

func TestEventStreamRouteNeedsBus(t *testing.T) {
	h := newTestHandler(t, Config{Nodes: sampleNodes()})
	if rr := doGet(t, h, "/api/events"); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without bus, got %d", rr.Code)
	}
}

func TestEventStreamRejectsUnknownTopic(t *testing.T) {
	b := bus.New(testLogger())
	t.Cleanup(b.Close)
	h := newTestHandler(t, Config{Nodes: sampleNodes(), Bus: b})

	if rr := doGet(t, h, "/api/events?topic=raw.frame.in"); rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown topic, got %d", rr.Code)
	}
}

func TestEventStreamDeliversBusEvents(t *testing.T) {
	b := bus.New(testLogger())
	t.Cleanup(b.Close)
	srv := httptest.NewServer(newTestHandler(t, Config{Nodes: sampleNodes(), Bus: b}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/events?topic=" + connectors.TopicNodeInfo
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial event stream: %v", err)
	}
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })

	b.Publish(connectors.TopicChannels, domain.ChannelList{})
	b.Publish(connectors.TopicNodeInfo, domain.NodeUpdate{
		Node: domain.Node{Num: 0x99, LongName: "Ninety Nine"},
		Type: domain.NodeUpdateTypeNodeInfoPacket,
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env struct {
		Topic   string         `json:"topic"`
		Payload nodeUpdateView `json:"payload"`
	}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read event: %v", err)
	}
	if env.Topic != connectors.TopicNodeInfo {
		t.Fatalf("expected node info topic, got %q", env.Topic)
	}
	if env.Payload.Type != domain.NodeUpdateTypeNodeInfoPacket || env.Payload.Node.ID != "!00000099" {
		t.Fatalf("unexpected payload: %+v", env.Payload)
	}
	if env.Payload.Node.Name != "Ninety Nine" {
		t.Fatalf("expected display name, got %q", env.Payload.Node.Name)
	}
}

func TestRequestedTopics(t *testing.T) {
	tests := []struct {
		query  string
		want   []string
		wantOK bool
	}{
		{query: "", want: StreamTopics, wantOK: true},
		{query: "topic=node.info&topic=node.info&topic=channels", want: []string{"node.info", "channels"}, wantOK: true},
		{query: "topic=nope"},
	}

	for _, tc := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/events?"+tc.query, nil)
		got, ok := requestedTopics(r)
		if ok != tc.wantOK {
			t.Fatalf("%q: expected ok=%v, got %v", tc.query, tc.wantOK, ok)
		}
		if !tc.wantOK {
			continue
		}
		if strings.Join(got, ",") != strings.Join(tc.want, ",") {
			t.Fatalf("%q: expected %v, got %v", tc.query, tc.want, got)
		}
	}
}
