package radio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
	"github.com/skobkin/meshlink/internal/transport"
)

const (
	defaultHeartbeatInterval = 25 * time.Second
	defaultReadTimeout       = 30 * time.Second
	outboxSize               = 128
)

// Options configure an Interface.
type Options struct {
	// NoProto disables all transport IO. HandleFromRadio keeps working, which
	// makes the interface usable for replays and tests.
	NoProto bool
	// Transport is required unless NoProto is set.
	Transport transport.Transport
	// Bus receives a copy of every event. A private bus is used when nil.
	Bus bus.MessageBus
	// Store lets callers seed the node store, for example from a cache.
	Store   *domain.NodeStore
	Metrics *Metrics

	HeartbeatInterval time.Duration
	ReadTimeout       time.Duration
}

type handlerEntry struct {
	id uint64
	fn Handler
}

// Interface is a handle on one radio. All state lives in the handle, so any
// number of them can coexist in a process.
type Interface struct {
	logger  *slog.Logger
	opts    Options
	store   *domain.NodeStore
	codec   *Codec
	bus     bus.MessageBus
	ownsBus bool
	metrics *Metrics
	acks    *ackTracker
	outbox  chan sendRequest

	// frameMu serializes frame handling and event delivery.
	frameMu sync.Mutex

	mu          sync.Mutex
	closed      bool
	started     bool
	cancel      context.CancelFunc
	handlers    []handlerEntry
	nextHandler uint64

	done           chan struct{}
	configured     chan struct{}
	configuredOnce sync.Once
	wg             sync.WaitGroup
}

func New(logger *slog.Logger, opts Options) (*Interface, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !opts.NoProto && opts.Transport == nil {
		return nil, errors.New("transport is required unless NoProto is set")
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = defaultHeartbeatInterval
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = defaultReadTimeout
	}

	codec, err := NewCodec()
	if err != nil {
		return nil, err
	}

	store := opts.Store
	if store == nil {
		store = domain.NewNodeStore()
	}
	b := opts.Bus
	ownsBus := false
	if b == nil {
		b = bus.New(logger.With("component", "bus"))
		ownsBus = true
	}

	return &Interface{
		logger:     logger,
		opts:       opts,
		store:      store,
		codec:      codec,
		bus:        b,
		ownsBus:    ownsBus,
		metrics:    opts.Metrics,
		acks:       newAckTracker(),
		outbox:     make(chan sendRequest, outboxSize),
		done:       make(chan struct{}),
		configured: make(chan struct{}),
	}, nil
}

// LocalNode returns a snapshot of the local node, including its merged
// configuration.
func (i *Interface) LocalNode() domain.Node {
	return i.store.Local()
}

// Node returns the remote node with the given number.
func (i *Interface) Node(num uint32) (domain.Node, bool) {
	return i.store.Remote(num)
}

// Nodes returns all remote nodes, most recently heard first.
func (i *Interface) Nodes() []domain.Node {
	return i.store.RemotesSorted()
}

func (i *Interface) Store() *domain.NodeStore {
	return i.store
}

func (i *Interface) Codec() *Codec {
	return i.codec
}

// Subscribe registers h for every event emitted after the call returns. The
// returned function removes the registration and is safe to call twice.
func (i *Interface) Subscribe(h Handler) func() {
	if h == nil {
		return func() {}
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return func() {}
	}
	i.nextHandler++
	id := i.nextHandler
	i.handlers = append(i.handlers, handlerEntry{id: id, fn: h})

	return func() {
		i.mu.Lock()
		defer i.mu.Unlock()
		for idx, entry := range i.handlers {
			if entry.id == id {
				i.handlers = append(i.handlers[:idx:idx], i.handlers[idx+1:]...)
				return
			}
		}
	}
}

// Configured is closed once the radio acknowledged the configuration request.
func (i *Interface) Configured() <-chan struct{} {
	return i.configured
}

// WaitConfigured blocks until the configuration dump finished, ctx ends or
// the interface is closed.
func (i *Interface) WaitConfigured(ctx context.Context) error {
	select {
	case <-i.configured:
		return nil
	case <-i.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (i *Interface) isClosed() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.closed
}

// HandleFromRadio processes one FromRadio frame. Config and module config
// sections replace the stored section of the local node, node infos are upserted into the node store and
// everything is reported to listeners. A failed frame never affects the
// handling of the next one.
func (i *Interface) HandleFromRadio(frame []byte) error {
	i.frameMu.Lock()
	defer i.frameMu.Unlock()

	if i.isClosed() {
		i.metrics.observeFrame(frameResultClosed, len(frame))
		return ErrClosed
	}

	msg, err := meshpb.UnmarshalFromRadio(frame)
	if err != nil {
		if errors.Is(err, meshpb.ErrConflictingVariants) {
			i.metrics.observeFrame(frameResultSchema, len(frame))
			return fmt.Errorf("%w: %w", ErrSchemaViolation, err)
		}
		i.metrics.observeFrame(frameResultDecode, len(frame))
		return &DecodeError{Len: len(frame), Err: err}
	}

	events, err := i.dispatch(msg, time.Now())
	if err != nil {
		i.metrics.observeFrame(frameResultSchema, len(frame))
		return err
	}
	i.metrics.observeFrame(frameResultOK, len(frame))

	for _, ev := range events {
		i.emit(ev)
	}

	return nil
}

func (i *Interface) dispatch(msg *meshpb.FromRadio, now time.Time) ([]Event, error) {
	switch v := msg.GetPayloadVariant().(type) {
	case *meshpb.FromRadio_ModuleConfig:
		// Sections arrive as full snapshots; a field turned off is simply absent.
		section, err := i.store.ReplaceLocalModuleConfig(v.ModuleConfig)
		if err != nil {
			return nil, fmt.Errorf("%w: module config: %w", ErrSchemaViolation, err)
		}
		i.metrics.observeMerge(section)
		i.logger.Debug("module config stored", "section", section)
		return []Event{ModuleConfigEvent{Section: section, Local: i.store.Local()}}, nil

	case *meshpb.FromRadio_Config:
		section, err := i.store.ReplaceLocalConfig(v.Config)
		if err != nil {
			return nil, fmt.Errorf("%w: config: %w", ErrSchemaViolation, err)
		}
		i.codec.observeConfig(v.Config)
		i.metrics.observeMerge(section)
		i.logger.Debug("config stored", "section", section)
		return []Event{ConfigEvent{Section: section, Local: i.store.Local()}}, nil

	case *meshpb.FromRadio_NodeInfo:
		if v.NodeInfo.GetNum() == 0 {
			return nil, schemaViolation("node info without node number")
		}
		update := decodeNodeInfo(v.NodeInfo, now)
		stored := i.store.UpsertRemote(update.Node)
		if update.Node.Num == i.codec.LocalNodeNum() {
			i.store.UpdateLocalIdentity(update.Node)
		}
		i.metrics.setRemoteNodes(i.store.RemoteCount())
		return []Event{NodeUpdatedEvent{Update: update, Node: stored}}, nil

	case *meshpb.FromRadio_MyInfo:
		num := v.MyInfo.GetMyNodeNum()
		if num != 0 {
			i.codec.setLocalNodeNum(num)
			i.store.SetLocalNum(num)
		}
		return []Event{MyInfoEvent{NodeNum: num, RebootCount: v.MyInfo.GetRebootCount()}}, nil

	case *meshpb.FromRadio_Packet:
		if v.Packet == nil {
			return nil, schemaViolation("empty packet")
		}
		return i.dispatchPacket(v.Packet, now), nil

	case *meshpb.FromRadio_ConfigCompleteId:
		id := v.ConfigCompleteId
		expected := i.opts.NoProto || i.codec.isExpectedConfigComplete(id)
		if expected {
			i.markConfigured()
		} else {
			i.logger.Debug("config complete for another request", "id", id, "want", i.codec.WantConfigID())
		}
		return []Event{ConfigCompleteEvent{ID: id, Expected: expected}}, nil

	case *meshpb.FromRadio_Channel:
		ev := ChannelEvent{Channel: v.Channel}
		if info, ok := decodeChannelInfo(v.Channel, i.codec.defaultPresetChannelTitle()); ok {
			ev.Info = &info
		}
		return []Event{ev}, nil

	case *meshpb.FromRadio_QueueStatus:
		events := []Event{QueueStatusEvent{Status: v.QueueStatus}}
		if update, ok := decodeQueueStatus(v.QueueStatus); ok {
			events = append(events, MessageStatusEvent{Update: i.acks.normalize(update)})
		}
		return events, nil

	case *meshpb.FromRadio_Rebooted:
		return []Event{RebootedEvent{}}, nil

	case *meshpb.FromRadio_LogRecord:
		return []Event{LogRecordEvent{Record: v.LogRecord}}, nil

	case *meshpb.FromRadio_Metadata:
		return []Event{MetadataEvent{Metadata: v.Metadata}}, nil

	case nil:
		return nil, schemaViolation("no payload variant")

	default:
		return nil, schemaViolation("unsupported payload %T", v)
	}
}

func (i *Interface) dispatchPacket(packet *meshpb.MeshPacket, now time.Time) []Event {
	events := []Event{PacketEvent{Packet: packet}}
	res := i.codec.decodePacket(packet, now)

	if res.NodeUpdate != nil {
		stored := i.store.MergeRemote(res.NodeUpdate.Node)
		if res.NodeUpdate.Node.Num == i.codec.LocalNodeNum() {
			i.store.UpdateLocalIdentity(res.NodeUpdate.Node)
		}
		i.metrics.setRemoteNodes(i.store.RemoteCount())
		events = append(events, NodeUpdatedEvent{Update: *res.NodeUpdate, Node: stored})
	}
	if res.TextMessage != nil {
		events = append(events, TextMessageEvent{Message: *res.TextMessage})
	}
	if res.MessageStatus != nil {
		events = append(events, MessageStatusEvent{Update: i.acks.normalize(*res.MessageStatus)})
	}

	return events
}

func (i *Interface) markConfigured() {
	i.configuredOnce.Do(func() {
		close(i.configured)
		i.metrics.setConfigComplete(true)
		i.logger.Info("radio configuration complete")
	})
}

// emit delivers ev to listeners, then mirrors it on the bus. Callers hold
// frameMu.
func (i *Interface) emit(ev Event) {
	i.metrics.observeEvent(ev)

	i.mu.Lock()
	handlers := make([]Handler, 0, len(i.handlers))
	for _, entry := range i.handlers {
		handlers = append(handlers, entry.fn)
	}
	i.mu.Unlock()

	for _, h := range handlers {
		i.callHandler(h, ev)
	}
	i.bus.Publish(ev.busTopic(), ev.busPayload())
}

func (i *Interface) callHandler(h Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			i.logger.Error("event handler panicked", "event", EventName(ev), "panic", r)
		}
	}()
	h(ev)
}

// Close stops live loops, closes the transport and waits for a frame that is
// being handled. Later calls to HandleFromRadio return ErrClosed. Close is
// idempotent.
func (i *Interface) Close() error {
	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		return nil
	}
	i.closed = true
	cancel := i.cancel
	close(i.done)
	i.mu.Unlock()

	var err error
	if !i.opts.NoProto {
		i.sendDisconnect()
	}
	if cancel != nil {
		cancel()
	}
	if !i.opts.NoProto {
		if cerr := i.opts.Transport.Close(); cerr != nil {
			err = fmt.Errorf("close transport: %w", cerr)
		}
	}
	i.wg.Wait()

	i.frameMu.Lock()
	i.mu.Lock()
	i.handlers = nil
	i.mu.Unlock()
	i.frameMu.Unlock()

	i.failPendingSends()
	if i.ownsBus {
		i.bus.Close()
	}
	i.logger.Debug("radio interface closed")

	return err
}

func (i *Interface) sendDisconnect() {
	payload, err := i.codec.EncodeDisconnect()
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := i.opts.Transport.WriteFrame(ctx, payload); err != nil {
		i.logger.Debug("disconnect write skipped", "error", err)
	}
}

func (i *Interface) failPendingSends() {
	for {
		select {
		case req := <-i.outbox:
			req.result <- SendResult{Err: ErrClosed}
			close(req.result)
		default:
			return
		}
	}
}
