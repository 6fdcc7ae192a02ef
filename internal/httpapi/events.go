package httpapi

import (
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/connectors"
)

const (
	eventBufferSize = 64
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
)

// StreamTopics are the bus topics a client may ask for with ?topic=.
// Without the parameter a client receives all of them.
var StreamTopics = []string{
	connectors.TopicConnStatus,
	connectors.TopicNodeInfo,
	connectors.TopicNodeDiscovered,
	connectors.TopicLocalNode,
	connectors.TopicChannels,
	connectors.TopicTextMessage,
	connectors.TopicMessageStatus,
	connectors.TopicConfigComplete,
}

// Envelope is one websocket message.
type Envelope struct {
	Topic   string    `json:"topic"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

type eventStream struct {
	bus      bus.MessageBus
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func newEventStream(b bus.MessageBus, logger *slog.Logger) *eventStream {
	return &eventStream{
		bus:    b,
		logger: logger,
		upgrader: websocket.Upgrader{
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

func (s *eventStream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	topics, ok := requestedTopics(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown topic")
		return
	}

	// Subscribe before the handshake so nothing published after the client
	// sees the upgrade is lost.
	out := make(chan Envelope, eventBufferSize)
	var dropped atomic.Int64
	subs := make([]bus.Subscription, 0, len(topics))
	var forwarders sync.WaitGroup
	for _, topic := range topics {
		sub := s.bus.Subscribe(topic)
		subs = append(subs, sub)
		forwarders.Add(1)
		go func(topic string, sub bus.Subscription) {
			defer forwarders.Done()
			// Drain until the bus closes the channel; a blocked subscriber
			// would stall every publisher.
			for msg := range sub {
				select {
				case out <- Envelope{Topic: topic, At: time.Now(), Payload: payloadView(msg)}:
				default:
					dropped.Add(1)
				}
			}
		}(topic, sub)
	}

	clientID := uuid.NewString()
	logger := s.logger.With("client_id", clientID, "remote", r.RemoteAddr)
	defer func() {
		for i, sub := range subs {
			s.bus.Unsubscribe(sub, topics[i])
		}
		forwarders.Wait()
		logger.Info("event stream closed", "dropped", dropped.Load())
	}()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("event stream upgrade failed", "error", err)
		return
	}
	defer func() { _ = conn.Close() }()
	logger.Info("event stream opened", "topics", topics)

	closed := make(chan struct{})
	go readPump(conn, closed)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()
	for {
		select {
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case <-closed:
			return
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				logger.Debug("event stream ping failed", "error", err)
				return
			}
		case env := <-out:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(env); err != nil {
				logger.Debug("event stream write failed", "topic", env.Topic, "error", err)
				return
			}
		}
	}
}

// readPump consumes client frames so control messages get processed and a
// closed connection is noticed.
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func requestedTopics(r *http.Request) ([]string, bool) {
	requested := r.URL.Query()["topic"]
	if len(requested) == 0 {
		return slices.Clone(StreamTopics), true
	}
	topics := make([]string, 0, len(requested))
	for _, topic := range requested {
		if !slices.Contains(StreamTopics, topic) {
			return nil, false
		}
		if !slices.Contains(topics, topic) {
			topics = append(topics, topic)
		}
	}

	return topics, true
}
