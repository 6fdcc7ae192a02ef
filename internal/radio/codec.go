package radio

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
)

const (
	positionScale = 1e-7
	// MaxTextBytes is the largest text payload the firmware accepts.
	MaxTextBytes = 200
)

// EncodedText contains an outbound text frame and its tracking metadata.
type EncodedText struct {
	Payload         []byte
	DeviceMessageID string
	To              uint32
	WantAck         bool
}

// Codec translates between meshpb messages and domain values. It also
// remembers the want_config id it issued and the local node number, which the
// dispatcher needs to classify later frames.
type Codec struct {
	wantConfigID atomic.Uint32
	packetID     atomic.Uint32
	localNodeNum atomic.Uint32
	modemPreset  atomic.Int32
}

func NewCodec() (*Codec, error) {
	var seedRaw [4]byte
	if _, err := rand.Read(seedRaw[:]); err != nil {
		return nil, fmt.Errorf("seed codec packet id: %w", err)
	}
	c := &Codec{}
	c.packetID.Store(binary.BigEndian.Uint32(seedRaw[:]))
	c.modemPreset.Store(int32(meshpb.Config_LoRaConfig_LONG_FAST))

	return c, nil
}

func (c *Codec) LocalNodeNum() uint32 {
	return c.localNodeNum.Load()
}

func (c *Codec) setLocalNodeNum(num uint32) {
	c.localNodeNum.Store(num)
}

// WantConfigID returns the id of the last want_config request, or zero.
func (c *Codec) WantConfigID() uint32 {
	return c.wantConfigID.Load()
}

func (c *Codec) isExpectedConfigComplete(id uint32) bool {
	expected := c.wantConfigID.Load()
	return expected != 0 && id == expected
}

func (c *Codec) EncodeWantConfig() ([]byte, error) {
	id := c.nextNonZeroID()
	payload, err := proto.Marshal(&meshpb.ToRadio{
		PayloadVariant: &meshpb.ToRadio_WantConfigId{WantConfigId: id},
	})
	if err != nil {
		return nil, err
	}
	c.wantConfigID.Store(id)

	return payload, nil
}

func (c *Codec) EncodeHeartbeat() ([]byte, error) {
	return proto.Marshal(&meshpb.ToRadio{
		PayloadVariant: &meshpb.ToRadio_Heartbeat{Heartbeat: &meshpb.Heartbeat{}},
	})
}

func (c *Codec) EncodeDisconnect() ([]byte, error) {
	return proto.Marshal(&meshpb.ToRadio{
		PayloadVariant: &meshpb.ToRadio_Disconnect{Disconnect: true},
	})
}

func (c *Codec) EncodeText(chatKey, text string) (EncodedText, error) {
	to, channel, err := parseChatTarget(chatKey)
	if err != nil {
		return EncodedText{}, err
	}
	packetID := c.nextNonZeroID()

	packet := &meshpb.MeshPacket{
		To:      to,
		Channel: channel,
		Id:      packetID,
		WantAck: to != domain.BroadcastNodeNum,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum: meshpb.PortNum_TEXT_MESSAGE_APP,
			Payload: []byte(text),
		}},
	}
	payload, err := proto.Marshal(&meshpb.ToRadio{PayloadVariant: &meshpb.ToRadio_Packet{Packet: packet}})
	if err != nil {
		return EncodedText{}, err
	}

	return EncodedText{
		Payload:         payload,
		DeviceMessageID: strconv.FormatUint(uint64(packetID), 10),
		To:              to,
		WantAck:         packet.GetWantAck(),
	}, nil
}

func (c *Codec) observeConfig(cfg *meshpb.Config) {
	lora := cfg.GetLora()
	if lora == nil {
		return
	}
	c.modemPreset.Store(int32(lora.GetModemPreset()))
}

func (c *Codec) defaultPresetChannelTitle() string {
	return modemPresetTitle(meshpb.Config_LoRaConfig_ModemPreset(c.modemPreset.Load()))
}

func (c *Codec) nextNonZeroID() uint32 {
	for {
		id := c.packetID.Add(1)
		if id != 0 {
			return id
		}
	}
}

// packetResult holds what one mesh packet means beyond its raw form.
type packetResult struct {
	NodeUpdate    *domain.NodeUpdate
	TextMessage   *domain.ChatMessage
	MessageStatus *domain.MessageStatusUpdate
}

func (c *Codec) decodePacket(packet *meshpb.MeshPacket, now time.Time) packetResult {
	var out packetResult
	decoded := packet.GetDecoded()
	if decoded == nil {
		return out
	}
	if status, ok := decodePacketStatus(packet, decoded); ok {
		out.MessageStatus = &status
	}

	switch decoded.GetPortnum() {
	case meshpb.PortNum_TEXT_MESSAGE_APP, meshpb.PortNum_TEXT_MESSAGE_COMPRESSED_APP, meshpb.PortNum_DETECTION_SENSOR_APP, meshpb.PortNum_ALERT_APP:
		if msg, ok := decodeTextMessage(packet, decoded, c.localNodeNum.Load(), now); ok {
			out.TextMessage = &msg
		}
	case meshpb.PortNum_NODEINFO_APP:
		if update, ok := decodeNodeFromPacketPayload(packet, decoded.GetPayload(), now); ok {
			out.NodeUpdate = &update
		}
	case meshpb.PortNum_TELEMETRY_APP:
		if update, ok := decodeNodeTelemetryFromPacket(packet, decoded.GetPayload(), now); ok {
			out.NodeUpdate = &update
		}
	case meshpb.PortNum_POSITION_APP:
		if update, ok := decodeNodePositionFromPacket(packet, decoded.GetPayload(), now); ok {
			out.NodeUpdate = &update
		}
	}

	return out
}

func decodeTextMessage(packet *meshpb.MeshPacket, decoded *meshpb.Data, localNode uint32, now time.Time) (domain.ChatMessage, bool) {
	text := strings.TrimSpace(string(decoded.GetPayload()))
	if text == "" {
		return domain.ChatMessage{}, false
	}

	direction := domain.MessageDirectionIn
	if localNode != 0 && packet.GetFrom() == localNode {
		direction = domain.MessageDirectionOut
	}
	status := domain.MessageStatusSent
	if direction == domain.MessageDirectionOut && packet.GetWantAck() {
		status = domain.MessageStatusPending
	}

	msg := domain.ChatMessage{
		ChatKey:     chatKeyForPacket(packet, direction),
		FromNodeNum: packet.GetFrom(),
		Direction:   direction,
		Body:        text,
		Status:      status,
		At:          packetTimestamp(packet.GetRxTime(), now),
		MetaJSON:    packetMetaJSON(decoded.GetPortnum(), packet),
	}
	if packet.GetId() != 0 {
		msg.DeviceMessageID = strconv.FormatUint(uint64(packet.GetId()), 10)
	}

	return msg, true
}

func decodeQueueStatus(queueStatus *meshpb.QueueStatus) (domain.MessageStatusUpdate, bool) {
	packetID := queueStatus.GetMeshPacketId()
	if packetID == 0 {
		return domain.MessageStatusUpdate{}, false
	}

	update := domain.MessageStatusUpdate{
		DeviceMessageID: strconv.FormatUint(uint64(packetID), 10),
		Status:          domain.MessageStatusSent,
	}
	if res := meshpb.Routing_Error(queueStatus.GetRes()); res != meshpb.Routing_NONE {
		update.Status = domain.MessageStatusFailed
		update.Reason = res.String()
	}

	return update, true
}

func decodePacketStatus(packet *meshpb.MeshPacket, decoded *meshpb.Data) (domain.MessageStatusUpdate, bool) {
	requestID := decoded.GetRequestId()
	if requestID == 0 {
		return domain.MessageStatusUpdate{}, false
	}

	isRouting := decoded.GetPortnum() == meshpb.PortNum_ROUTING_APP
	isAck := packet.GetPriority() == meshpb.MeshPacket_ACK
	if !isRouting && !isAck {
		return domain.MessageStatusUpdate{}, false
	}

	update := domain.MessageStatusUpdate{
		DeviceMessageID: strconv.FormatUint(uint64(requestID), 10),
		Status:          domain.MessageStatusAcked,
		FromNodeNum:     packet.GetFrom(),
	}

	if isRouting {
		var routing meshpb.Routing
		if err := proto.Unmarshal(decoded.GetPayload(), &routing); err == nil {
			if reason := routing.GetErrorReason(); reason != meshpb.Routing_NONE {
				update.Status = domain.MessageStatusFailed
				update.Reason = reason.String()
			}
		}
	}

	return update, true
}

// decodeNodeInfo turns a node database entry into a snapshot update. The
// caller checks that the node number is set.
func decodeNodeInfo(nodeInfo *meshpb.NodeInfo, now time.Time) domain.NodeUpdate {
	user := nodeInfo.GetUser()
	node := domain.Node{
		Num:         nodeInfo.GetNum(),
		NodeID:      domain.FormatNodeID(nodeInfo.GetNum()),
		LastHeardAt: packetTimestamp(nodeInfo.GetLastHeard(), now),
		UpdatedAt:   now,
		HopsAway:    nodeInfo.HopsAway,
	}
	applyUser(&node, user)
	applyPositionCoordinates(&node, nodeInfo.GetPosition())
	applyDeviceMetrics(&node, nodeInfo.GetDeviceMetrics())

	if ch := nodeInfo.GetChannel(); ch != 0 {
		node.Channel = uint32Ptr(ch)
	}
	if snr := nodeInfo.GetSnr(); snr != 0 {
		snrVal := float64(snr)
		node.SNR = &snrVal
	}

	return domain.NodeUpdate{
		Node:      node,
		LastHeard: node.LastHeardAt,
		Type:      domain.NodeUpdateTypeNodeInfoSnapshot,
	}
}

func decodeNodeFromPacketPayload(packet *meshpb.MeshPacket, payload []byte, now time.Time) (domain.NodeUpdate, bool) {
	if packet.GetFrom() == 0 {
		return domain.NodeUpdate{}, false
	}

	var user meshpb.User
	if err := proto.Unmarshal(payload, &user); err != nil {
		return domain.NodeUpdate{}, false
	}

	node := packetNode(packet, now)
	applyUser(&node, &user)

	return domain.NodeUpdate{
		Node:       node,
		LastHeard:  node.LastHeardAt,
		FromPacket: true,
		Type:       domain.NodeUpdateTypeNodeInfoPacket,
	}, true
}

func decodeNodeTelemetryFromPacket(packet *meshpb.MeshPacket, payload []byte, now time.Time) (domain.NodeUpdate, bool) {
	if packet.GetFrom() == 0 {
		return domain.NodeUpdate{}, false
	}

	var telemetry meshpb.Telemetry
	if err := proto.Unmarshal(payload, &telemetry); err != nil {
		return domain.NodeUpdate{}, false
	}
	if telemetry.GetDeviceMetrics() == nil && telemetry.GetEnvironmentMetrics() == nil {
		return domain.NodeUpdate{}, false
	}

	node := packetNode(packet, now)
	applyDeviceMetrics(&node, telemetry.GetDeviceMetrics())
	applyEnvironmentMetrics(&node, telemetry.GetEnvironmentMetrics())

	return domain.NodeUpdate{
		Node:       node,
		LastHeard:  node.LastHeardAt,
		FromPacket: true,
		Type:       domain.NodeUpdateTypeTelemetryPacket,
	}, true
}

func decodeNodePositionFromPacket(packet *meshpb.MeshPacket, payload []byte, now time.Time) (domain.NodeUpdate, bool) {
	if packet.GetFrom() == 0 {
		return domain.NodeUpdate{}, false
	}

	var position meshpb.Position
	if err := proto.Unmarshal(payload, &position); err != nil {
		return domain.NodeUpdate{}, false
	}
	node := packetNode(packet, now)
	if !applyPositionCoordinates(&node, &position) {
		return domain.NodeUpdate{}, false
	}

	return domain.NodeUpdate{
		Node:       node,
		LastHeard:  node.LastHeardAt,
		FromPacket: true,
		Type:       domain.NodeUpdateTypePositionPacket,
	}, true
}

// packetNode is the sparse node record every packet tells us about its sender.
func packetNode(packet *meshpb.MeshPacket, now time.Time) domain.Node {
	node := domain.Node{
		Num:         packet.GetFrom(),
		NodeID:      domain.FormatNodeID(packet.GetFrom()),
		Channel:     uint32Ptr(packet.GetChannel()),
		LastHeardAt: packetTimestamp(packet.GetRxTime(), now),
		UpdatedAt:   now,
	}
	if rssi := packet.GetRxRssi(); rssi != 0 {
		rssiVal := int(rssi)
		node.RSSI = &rssiVal
	}
	if snr := packet.GetRxSnr(); snr != 0 {
		snrVal := float64(snr)
		node.SNR = &snrVal
	}
	if hops, ok := packetHops(packet); ok {
		v := uint32(hops)
		node.HopsAway = &v
	}

	return node
}

func decodeChannelInfo(channelInfo *meshpb.Channel, defaultPresetTitle string) (domain.ChannelInfo, bool) {
	if channelInfo.GetRole() == meshpb.Channel_DISABLED {
		return domain.ChannelInfo{}, false
	}
	idx := int(channelInfo.GetIndex())
	if idx < 0 {
		return domain.ChannelInfo{}, false
	}

	title := strings.TrimSpace(channelInfo.GetSettings().GetName())
	if title == "" {
		title = strings.TrimSpace(defaultPresetTitle)
		if title == "" {
			title = fmt.Sprintf("Channel %d", idx)
		}
	}

	return domain.ChannelInfo{Index: idx, Title: title, Role: channelInfo.GetRole().String()}, true
}

func modemPresetTitle(preset meshpb.Config_LoRaConfig_ModemPreset) string {
	switch preset {
	case meshpb.Config_LoRaConfig_LONG_SLOW:
		return "LongSlow"
	case meshpb.Config_LoRaConfig_VERY_LONG_SLOW:
		return "VeryLongSlow"
	case meshpb.Config_LoRaConfig_MEDIUM_SLOW:
		return "MediumSlow"
	case meshpb.Config_LoRaConfig_MEDIUM_FAST:
		return "MediumFast"
	case meshpb.Config_LoRaConfig_SHORT_SLOW:
		return "ShortSlow"
	case meshpb.Config_LoRaConfig_SHORT_FAST:
		return "ShortFast"
	case meshpb.Config_LoRaConfig_LONG_MODERATE:
		return "LongModerate"
	case meshpb.Config_LoRaConfig_SHORT_TURBO:
		return "ShortTurbo"
	case meshpb.Config_LoRaConfig_LONG_TURBO:
		return "LongTurbo"
	default:
		return "LongFast"
	}
}

func applyUser(node *domain.Node, user *meshpb.User) {
	if user == nil {
		return
	}
	node.LongName = strings.TrimSpace(user.GetLongName())
	node.ShortName = strings.TrimSpace(user.GetShortName())
	if model := user.GetHwModel(); model != meshpb.HardwareModel_UNSET {
		node.BoardModel = model.String()
	}
	node.Role = user.GetRole().String()
	if user.IsUnmessagable != nil {
		v := user.GetIsUnmessagable()
		node.IsUnmessageable = &v
	}
}

func isValidNodeCoordinate(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

func applyPositionCoordinates(node *domain.Node, position *meshpb.Position) bool {
	if node == nil || position == nil || position.LatitudeI == nil || position.LongitudeI == nil {
		return false
	}

	lat := float64(position.GetLatitudeI()) * positionScale
	lon := float64(position.GetLongitudeI()) * positionScale
	if !isValidNodeCoordinate(lat, lon) {
		return false
	}

	node.Latitude = &lat
	node.Longitude = &lon
	if position.Altitude != nil {
		alt := position.GetAltitude()
		node.Altitude = &alt
	}

	return true
}

func applyDeviceMetrics(node *domain.Node, dm *meshpb.DeviceMetrics) {
	if dm == nil || node == nil {
		return
	}
	if dm.BatteryLevel != nil {
		v := dm.GetBatteryLevel()
		node.BatteryLevel = &v
	}
	if dm.Voltage != nil {
		v := float64(dm.GetVoltage())
		node.Voltage = &v
	}
	if dm.ChannelUtilization != nil {
		v := float64(dm.GetChannelUtilization())
		node.ChannelUtilization = &v
	}
	if dm.AirUtilTx != nil {
		v := float64(dm.GetAirUtilTx())
		node.AirUtilTx = &v
	}
}

func applyEnvironmentMetrics(node *domain.Node, env *meshpb.EnvironmentMetrics) {
	if env == nil || node == nil {
		return
	}
	if env.Temperature != nil {
		v := float64(env.GetTemperature())
		node.Temperature = &v
	}
	if env.RelativeHumidity != nil {
		v := float64(env.GetRelativeHumidity())
		node.Humidity = &v
	}
	if env.BarometricPressure != nil {
		v := float64(env.GetBarometricPressure())
		node.Pressure = &v
	}
	// Some older firmware reports supply voltage in the environment payload.
	if env.Voltage != nil && node.Voltage == nil {
		v := float64(env.GetVoltage())
		node.Voltage = &v
	}
}

func parseChatTarget(chatKey string) (to uint32, channel uint32, err error) {
	chatKey = strings.TrimSpace(chatKey)
	switch {
	case strings.HasPrefix(chatKey, "channel:"):
		idx, parseErr := strconv.ParseUint(strings.TrimPrefix(chatKey, "channel:"), 10, 32)
		if parseErr != nil {
			return 0, 0, fmt.Errorf("invalid channel chat key: %q", chatKey)
		}

		return domain.BroadcastNodeNum, uint32(idx), nil
	case strings.HasPrefix(chatKey, "dm:"):
		nodeNum, parseErr := domain.ParseNodeID(strings.TrimPrefix(chatKey, "dm:"))
		if parseErr != nil || nodeNum == 0 {
			return 0, 0, fmt.Errorf("invalid dm chat key: %q", chatKey)
		}

		return nodeNum, 0, nil
	default:
		return 0, 0, fmt.Errorf("unsupported chat key: %q", chatKey)
	}
}

func chatKeyForPacket(packet *meshpb.MeshPacket, direction domain.MessageDirection) string {
	if packet.GetTo() == domain.BroadcastNodeNum {
		return domain.ChatKeyForChannel(int(packet.GetChannel()))
	}
	if direction == domain.MessageDirectionOut && packet.GetTo() != 0 {
		return domain.ChatKeyForDM(domain.FormatNodeID(packet.GetTo()))
	}
	if packet.GetFrom() != 0 {
		return domain.ChatKeyForDM(domain.FormatNodeID(packet.GetFrom()))
	}
	if packet.GetTo() != 0 {
		return domain.ChatKeyForDM(domain.FormatNodeID(packet.GetTo()))
	}

	return domain.ChatKeyForDM("unknown")
}

func packetTimestamp(epochSec uint32, fallback time.Time) time.Time {
	if epochSec == 0 {
		return fallback
	}

	return time.Unix(int64(epochSec), 0)
}

func packetMetaJSON(port meshpb.PortNum, packet *meshpb.MeshPacket) string {
	meta := map[string]any{
		"portnum":   port.String(),
		"from":      domain.FormatNodeID(packet.GetFrom()),
		"to":        domain.FormatNodeID(packet.GetTo()),
		"channel":   packet.GetChannel(),
		"packet_id": packet.GetId(),
	}
	if hops, ok := packetHops(packet); ok {
		meta["hops"] = hops
	}
	if hopStart := packet.GetHopStart(); hopStart != 0 {
		meta["hop_start"] = hopStart
	}
	if hopLimit := packet.GetHopLimit(); hopLimit != 0 {
		meta["hop_limit"] = hopLimit
	}
	if rxRssi := packet.GetRxRssi(); rxRssi != 0 {
		meta["rx_rssi"] = int(rxRssi)
	}
	if rxSnr := packet.GetRxSnr(); rxSnr != 0 {
		meta["rx_snr"] = float64(rxSnr)
	}
	if packet.GetViaMqtt() {
		meta["via_mqtt"] = true
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return ""
	}

	return string(raw)
}

func packetHops(packet *meshpb.MeshPacket) (int, bool) {
	hopStart := packet.GetHopStart()
	hopLimit := packet.GetHopLimit()
	if hopStart == 0 {
		return 0, false
	}
	if hopStart < hopLimit {
		return 0, false
	}

	return int(hopStart - hopLimit), true
}

func uint32Ptr(v uint32) *uint32 {
	return &v
}
