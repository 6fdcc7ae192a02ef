package radio

import (
	"time"

	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
)

// Event is one notification produced while handling a frame. The set of
// implementations is closed; switch on the concrete type.
type Event interface {
	isEvent()
	// busTopic and busPayload describe how the event is mirrored on the bus.
	busTopic() string
	busPayload() any
}

// Handler receives events synchronously from the goroutine handling the
// frame. Handlers must not call HandleFromRadio or Close.
type Handler func(Event)

// NodeUpdatedEvent follows every change to a remote node record.
type NodeUpdatedEvent struct {
	Update domain.NodeUpdate
	// Node is the stored record after the update was applied.
	Node domain.Node
}

// ModuleConfigEvent follows a module config section merge into the local node.
type ModuleConfigEvent struct {
	Section string
	Local   domain.Node
}

// ConfigEvent follows a radio config section merge into the local node.
type ConfigEvent struct {
	Section string
	Local   domain.Node
}

type MyInfoEvent struct {
	NodeNum     uint32
	RebootCount uint32
}

type TextMessageEvent struct {
	Message domain.ChatMessage
}

type MessageStatusEvent struct {
	Update domain.MessageStatusUpdate
}

type ChannelEvent struct {
	Channel *meshpb.Channel
	// Info is set for enabled channels only.
	Info *domain.ChannelInfo
}

// ConfigCompleteEvent ends the configuration dump. Expected is true when the
// id matches the want_config request this interface sent.
type ConfigCompleteEvent struct {
	ID       uint32
	Expected bool
}

// PacketEvent is emitted for every mesh packet, before any event derived
// from its payload.
type PacketEvent struct {
	Packet *meshpb.MeshPacket
}

type QueueStatusEvent struct {
	Status *meshpb.QueueStatus
}

type RebootedEvent struct{}

type LogRecordEvent struct {
	Record *meshpb.LogRecord
}

type MetadataEvent struct {
	Metadata *meshpb.DeviceMetadata
}

func (NodeUpdatedEvent) isEvent()    {}
func (ModuleConfigEvent) isEvent()   {}
func (ConfigEvent) isEvent()         {}
func (MyInfoEvent) isEvent()         {}
func (TextMessageEvent) isEvent()    {}
func (MessageStatusEvent) isEvent()  {}
func (ChannelEvent) isEvent()        {}
func (ConfigCompleteEvent) isEvent() {}
func (PacketEvent) isEvent()         {}
func (QueueStatusEvent) isEvent()    {}
func (RebootedEvent) isEvent()       {}
func (LogRecordEvent) isEvent()      {}
func (MetadataEvent) isEvent()       {}

func (NodeUpdatedEvent) busTopic() string    { return connectors.TopicNodeInfo }
func (ModuleConfigEvent) busTopic() string   { return connectors.TopicLocalNode }
func (ConfigEvent) busTopic() string         { return connectors.TopicLocalNode }
func (MyInfoEvent) busTopic() string         { return connectors.TopicRadioFrom }
func (TextMessageEvent) busTopic() string    { return connectors.TopicTextMessage }
func (MessageStatusEvent) busTopic() string  { return connectors.TopicMessageStatus }
func (ChannelEvent) busTopic() string        { return connectors.TopicChannels }
func (ConfigCompleteEvent) busTopic() string { return connectors.TopicConfigComplete }
func (PacketEvent) busTopic() string         { return connectors.TopicRadioFrom }
func (QueueStatusEvent) busTopic() string    { return connectors.TopicRadioFrom }
func (RebootedEvent) busTopic() string       { return connectors.TopicRadioFrom }
func (LogRecordEvent) busTopic() string      { return connectors.TopicRadioFrom }
func (MetadataEvent) busTopic() string       { return connectors.TopicRadioFrom }

func (e NodeUpdatedEvent) busPayload() any   { return e.Update }
func (e ModuleConfigEvent) busPayload() any  { return e.Local }
func (e ConfigEvent) busPayload() any        { return e.Local }
func (e MyInfoEvent) busPayload() any        { return e }
func (e TextMessageEvent) busPayload() any   { return e.Message }
func (e MessageStatusEvent) busPayload() any { return e.Update }
func (e PacketEvent) busPayload() any        { return e }
func (e QueueStatusEvent) busPayload() any   { return e }
func (e RebootedEvent) busPayload() any      { return e }
func (e LogRecordEvent) busPayload() any     { return e }
func (e MetadataEvent) busPayload() any      { return e }

func (e ChannelEvent) busPayload() any {
	if e.Info == nil {
		return domain.ChannelList{}
	}
	return domain.ChannelList{Items: []domain.ChannelInfo{*e.Info}}
}

func (e ConfigCompleteEvent) busPayload() any {
	return connectors.ConfigComplete{ID: e.ID, Expected: e.Expected, At: time.Now()}
}

// EventName is a stable label for metrics and logs.
func EventName(ev Event) string {
	switch ev.(type) {
	case NodeUpdatedEvent:
		return "node_updated"
	case ModuleConfigEvent:
		return "module_config"
	case ConfigEvent:
		return "config"
	case MyInfoEvent:
		return "my_info"
	case TextMessageEvent:
		return "text_message"
	case MessageStatusEvent:
		return "message_status"
	case ChannelEvent:
		return "channel"
	case ConfigCompleteEvent:
		return "config_complete"
	case PacketEvent:
		return "packet"
	case QueueStatusEvent:
		return "queue_status"
	case RebootedEvent:
		return "rebooted"
	case LogRecordEvent:
		return "log_record"
	case MetadataEvent:
		return "metadata"
	default:
		return "unknown"
	}
}
