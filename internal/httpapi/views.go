package httpapi

import (
	"time"

	"github.com/skobkin/meshlink/internal/domain"
)

type nodeView struct {
	Num             uint32     `json:"num"`
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	LongName        string     `json:"long_name,omitempty"`
	ShortName       string     `json:"short_name,omitempty"`
	BoardModel      string     `json:"board_model,omitempty"`
	Role            string     `json:"role,omitempty"`
	IsUnmessageable *bool      `json:"is_unmessageable,omitempty"`
	Channel         *uint32    `json:"channel,omitempty"`
	HopsAway        *uint32    `json:"hops_away,omitempty"`
	Latitude        *float64   `json:"latitude,omitempty"`
	Longitude       *float64   `json:"longitude,omitempty"`
	Altitude        *int32     `json:"altitude,omitempty"`
	BatteryLevel    *uint32    `json:"battery_level,omitempty"`
	Voltage         *float64   `json:"voltage,omitempty"`
	ChannelUtil     *float64   `json:"channel_utilization,omitempty"`
	AirUtilTx       *float64   `json:"air_util_tx,omitempty"`
	Temperature     *float64   `json:"temperature,omitempty"`
	Humidity        *float64   `json:"humidity,omitempty"`
	Pressure        *float64   `json:"pressure,omitempty"`
	RSSI            *int       `json:"rssi,omitempty"`
	SNR             *float64   `json:"snr,omitempty"`
	Signal          string     `json:"signal"`
	LastHeardAt     *time.Time `json:"last_heard_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func newNodeView(n domain.Node) nodeView {
	id := n.NodeID
	if id == "" && n.Num != 0 {
		id = domain.FormatNodeID(n.Num)
	}

	return nodeView{
		Num:             n.Num,
		ID:              id,
		Name:            n.DisplayName(),
		LongName:        n.LongName,
		ShortName:       n.ShortName,
		BoardModel:      n.BoardModel,
		Role:            n.Role,
		IsUnmessageable: n.IsUnmessageable,
		Channel:         n.Channel,
		HopsAway:        n.HopsAway,
		Latitude:        n.Latitude,
		Longitude:       n.Longitude,
		Altitude:        n.Altitude,
		BatteryLevel:    n.BatteryLevel,
		Voltage:         n.Voltage,
		ChannelUtil:     n.ChannelUtilization,
		AirUtilTx:       n.AirUtilTx,
		Temperature:     n.Temperature,
		Humidity:        n.Humidity,
		Pressure:        n.Pressure,
		RSSI:            n.RSSI,
		SNR:             n.SNR,
		Signal:          n.SignalQuality().String(),
		LastHeardAt:     timePtr(n.LastHeardAt),
		UpdatedAt:       timePtr(n.UpdatedAt),
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

type nodeUpdateView struct {
	Type     domain.NodeUpdateType `json:"type"`
	Snapshot bool                  `json:"snapshot"`
	Node     nodeView              `json:"node"`
}

type nodeDiscoveredView struct {
	Source       string    `json:"source"`
	DiscoveredAt time.Time `json:"discovered_at"`
	Node         nodeView  `json:"node"`
}

// payloadView converts domain payloads to their JSON views. Config trees on
// the local node are left out; /api/local/config serves them.
func payloadView(msg any) any {
	switch v := msg.(type) {
	case domain.NodeUpdate:
		return nodeUpdateView{Type: v.Type, Snapshot: v.IsSnapshot(), Node: newNodeView(v.Node)}
	case domain.Node:
		return newNodeView(v)
	case domain.NodeDiscovered:
		return nodeDiscoveredView{Source: v.Source, DiscoveredAt: v.DiscoveredAt, Node: newNodeView(v.Node)}
	default:
		return msg
	}
}
