package domain

import (
	"time"

	"github.com/skobkin/meshlink/internal/meshpb"
)

type MessageDirection int

const (
	MessageDirectionIn MessageDirection = iota + 1
	MessageDirectionOut
)

type MessageStatus int

const (
	MessageStatusPending MessageStatus = iota + 1
	MessageStatusSent
	MessageStatusAcked
	MessageStatusFailed
)

func (s MessageStatus) String() string {
	switch s {
	case MessageStatusPending:
		return "pending"
	case MessageStatusSent:
		return "sent"
	case MessageStatusAcked:
		return "acked"
	case MessageStatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type ChatMessage struct {
	DeviceMessageID string
	ChatKey         string
	FromNodeNum     uint32
	Direction       MessageDirection
	Body            string
	Status          MessageStatus
	At              time.Time
	MetaJSON        string
}

type MessageStatusUpdate struct {
	DeviceMessageID string
	Status          MessageStatus
	Reason          string
	FromNodeNum     uint32
}

// Node is one mesh participant as last reported by the radio.
type Node struct {
	Num                uint32
	NodeID             string
	LongName           string
	ShortName          string
	BoardModel         string
	Role               string
	IsUnmessageable    *bool
	Channel            *uint32
	HopsAway           *uint32
	Latitude           *float64
	Longitude          *float64
	Altitude           *int32
	BatteryLevel       *uint32
	Voltage            *float64
	ChannelUtilization *float64
	AirUtilTx          *float64
	Temperature        *float64
	Humidity           *float64
	Pressure           *float64
	RSSI               *int
	SNR                *float64
	LastHeardAt        time.Time
	UpdatedAt          time.Time

	// Config and ModuleConfig are populated for the local node only. Snapshots
	// share them, so callers must treat both trees as read-only.
	Config       *meshpb.LocalConfig
	ModuleConfig *meshpb.LocalModuleConfig
}

type NodeUpdateType string

const (
	NodeUpdateTypeNodeInfoSnapshot NodeUpdateType = "node_info_snapshot"
	NodeUpdateTypeNodeInfoPacket   NodeUpdateType = "node_info_packet"
	NodeUpdateTypeTelemetryPacket  NodeUpdateType = "telemetry_packet"
	NodeUpdateTypePositionPacket   NodeUpdateType = "position_packet"
)

// NodeUpdate is a node change decoded from one frame. Snapshot updates carry
// the complete record; packet updates are sparse.
type NodeUpdate struct {
	Node       Node
	LastHeard  time.Time
	FromPacket bool
	Type       NodeUpdateType
}

// IsSnapshot reports whether the update replaces the stored record as a whole.
func (u NodeUpdate) IsSnapshot() bool {
	return u.Type == NodeUpdateTypeNodeInfoSnapshot
}

// NodeDiscovered reports a node first heard after the initial config dump.
type NodeDiscovered struct {
	Node         Node
	NodeID       string
	DiscoveredAt time.Time
	Source       string
}

type ChannelList struct {
	Items []ChannelInfo
}

type ChannelInfo struct {
	Index int
	Title string
	Role  string
}
