package radio

import (
	"math"
	"testing"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
)

func mustNewCodec(t *testing.T) *Codec {
	t.Helper()

	codec, err := NewCodec()
	if err != nil {
		t.Fatalf("initialize codec: %v", err)
	}

	return codec
}

func marshalPayload(t *testing.T, msg proto.Message) []byte {
	t.Helper()
	b, err := proto.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}

	return b
}

func assertFloatPtr(t *testing.T, got *float64, want float64, field string) {
	t.Helper()
	if got == nil {
		t.Fatalf("expected %s", field)
	}
	if math.Abs(*got-want) > 0.0001 {
		t.Fatalf("unexpected %s value: got %v want %v", field, *got, want)
	}
}

func TestCodec_EncodeTextIncludesDeviceMessageID(t *testing.T) {
	codec := mustNewCodec(t)
	encoded, err := codec.EncodeText("dm:!1234abcd", "hello")
	if err != nil {
		t.Fatalf("encode text: %v", err)
	}
	if encoded.DeviceMessageID == "" {
		t.Fatalf("expected non-empty device message id")
	}
	if len(encoded.Payload) == 0 {
		t.Fatalf("expected non-empty payload")
	}
	if !encoded.WantAck {
		t.Fatalf("expected want_ack for direct message")
	}
	if encoded.To != 0x1234abcd {
		t.Fatalf("expected destination 0x1234abcd, got %x", encoded.To)
	}
}

func TestCodec_EncodeTextChannelBroadcast(t *testing.T) {
	codec := mustNewCodec(t)
	encoded, err := codec.EncodeText("channel:2", "hello")
	if err != nil {
		t.Fatalf("encode text: %v", err)
	}
	if encoded.WantAck {
		t.Fatalf("expected no want_ack for broadcast")
	}

	var msg meshpb.ToRadio
	if err := proto.Unmarshal(encoded.Payload, &msg); err != nil {
		t.Fatalf("decode toradio: %v", err)
	}
	packet := msg.GetPacket()
	if packet.GetTo() != domain.BroadcastNodeNum || packet.GetChannel() != 2 {
		t.Fatalf("unexpected packet: to=%x channel=%d", packet.GetTo(), packet.GetChannel())
	}
}

func TestCodec_EncodeTextRejectsBadChatKeys(t *testing.T) {
	codec := mustNewCodec(t)
	for _, key := range []string{"", "channel:x", "dm:", "dm:!00000000", "group:1"} {
		if _, err := codec.EncodeText(key, "hello"); err == nil {
			t.Fatalf("expected error for chat key %q", key)
		}
	}
}

func TestCodec_EncodeWantConfigStoresID(t *testing.T) {
	codec := mustNewCodec(t)
	if codec.WantConfigID() != 0 {
		t.Fatalf("expected no want_config id before first request")
	}
	payload, err := codec.EncodeWantConfig()
	if err != nil {
		t.Fatalf("encode want_config: %v", err)
	}

	var msg meshpb.ToRadio
	if err := proto.Unmarshal(payload, &msg); err != nil {
		t.Fatalf("decode toradio: %v", err)
	}
	if msg.GetWantConfigId() != codec.WantConfigID() {
		t.Fatalf("expected want_config id %d, got %d", codec.WantConfigID(), msg.GetWantConfigId())
	}
	if !codec.isExpectedConfigComplete(msg.GetWantConfigId()) {
		t.Fatalf("expected id to be accepted as config complete")
	}
	if codec.isExpectedConfigComplete(msg.GetWantConfigId() + 1) {
		t.Fatalf("expected other id to be rejected")
	}
}

func TestCodec_DecodePacketTelemetryEnvironment(t *testing.T) {
	codec := mustNewCodec(t)

	telemetryPayload := marshalPayload(t, &meshpb.Telemetry{
		Variant: &meshpb.Telemetry_EnvironmentMetrics{
			EnvironmentMetrics: &meshpb.EnvironmentMetrics{
				Temperature:        proto.Float32(22.7),
				RelativeHumidity:   proto.Float32(47.3),
				BarometricPressure: proto.Float32(1008.6),
				Voltage:            proto.Float32(4.12),
			},
		},
	})

	res := codec.decodePacket(&meshpb.MeshPacket{
		From:   0x1234abcd,
		RxTime: 1_735_123_456,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum: meshpb.PortNum_TELEMETRY_APP,
			Payload: telemetryPayload,
		}},
	}, time.Now())
	if res.NodeUpdate == nil {
		t.Fatalf("expected node update")
	}
	node := res.NodeUpdate.Node
	if node.NodeID != "!1234abcd" {
		t.Fatalf("unexpected node id: %q", node.NodeID)
	}
	if res.NodeUpdate.Type != domain.NodeUpdateTypeTelemetryPacket {
		t.Fatalf("unexpected update type: %q", res.NodeUpdate.Type)
	}
	if !node.LastHeardAt.Equal(time.Unix(1_735_123_456, 0)) {
		t.Fatalf("expected rx time as last heard, got %v", node.LastHeardAt)
	}
	assertFloatPtr(t, node.Temperature, 22.7, "temperature")
	assertFloatPtr(t, node.Humidity, 47.3, "humidity")
	assertFloatPtr(t, node.Pressure, 1008.6, "pressure")
	assertFloatPtr(t, node.Voltage, 4.12, "voltage")
}

func TestCodec_DecodePacketTelemetryDevice(t *testing.T) {
	codec := mustNewCodec(t)

	telemetryPayload := marshalPayload(t, &meshpb.Telemetry{
		Variant: &meshpb.Telemetry_DeviceMetrics{
			DeviceMetrics: &meshpb.DeviceMetrics{
				BatteryLevel:       proto.Uint32(87),
				Voltage:            proto.Float32(3.98),
				ChannelUtilization: proto.Float32(12.5),
			},
		},
	})

	res := codec.decodePacket(&meshpb.MeshPacket{
		From:     0x7654dcba,
		RxRssi:   -101,
		RxSnr:    4.5,
		HopStart: 3,
		HopLimit: 1,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum: meshpb.PortNum_TELEMETRY_APP,
			Payload: telemetryPayload,
		}},
	}, time.Now())
	if res.NodeUpdate == nil {
		t.Fatalf("expected node update")
	}
	node := res.NodeUpdate.Node
	if node.BatteryLevel == nil || *node.BatteryLevel != 87 {
		t.Fatalf("expected battery level 87, got %v", node.BatteryLevel)
	}
	assertFloatPtr(t, node.Voltage, 3.98, "voltage")
	assertFloatPtr(t, node.ChannelUtilization, 12.5, "channel utilization")
	assertFloatPtr(t, node.SNR, 4.5, "snr")
	if node.RSSI == nil || *node.RSSI != -101 {
		t.Fatalf("expected rssi -101, got %v", node.RSSI)
	}
	if node.HopsAway == nil || *node.HopsAway != 2 {
		t.Fatalf("expected hops away 2, got %v", node.HopsAway)
	}
}

func TestCodec_DecodePacketPosition(t *testing.T) {
	codec := mustNewCodec(t)

	positionPayload := marshalPayload(t, &meshpb.Position{
		LatitudeI:  proto.Int32(37_774_9000),
		LongitudeI: proto.Int32(-122_419_4000),
		Altitude:   proto.Int32(16),
	})

	res := codec.decodePacket(&meshpb.MeshPacket{
		From:   0x1234abcd,
		RxTime: 1_735_123_456,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum: meshpb.PortNum_POSITION_APP,
			Payload: positionPayload,
		}},
	}, time.Now())
	if res.NodeUpdate == nil {
		t.Fatalf("expected node update")
	}
	assertFloatPtr(t, res.NodeUpdate.Node.Latitude, 37.7749, "latitude")
	assertFloatPtr(t, res.NodeUpdate.Node.Longitude, -122.4194, "longitude")
	if alt := res.NodeUpdate.Node.Altitude; alt == nil || *alt != 16 {
		t.Fatalf("expected altitude 16, got %v", alt)
	}
}

func TestCodec_DecodePacketPositionInvalidCoordinatesIgnored(t *testing.T) {
	codec := mustNewCodec(t)

	positionPayload := marshalPayload(t, &meshpb.Position{
		LatitudeI:  proto.Int32(910_000_000),
		LongitudeI: proto.Int32(0),
	})

	res := codec.decodePacket(&meshpb.MeshPacket{
		From: 0x1234abcd,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum: meshpb.PortNum_POSITION_APP,
			Payload: positionPayload,
		}},
	}, time.Now())
	if res.NodeUpdate != nil {
		t.Fatalf("expected no node update for invalid coordinates")
	}
}

func TestCodec_DecodePacketEncryptedIgnored(t *testing.T) {
	codec := mustNewCodec(t)

	res := codec.decodePacket(&meshpb.MeshPacket{
		From:           0x1234abcd,
		PayloadVariant: &meshpb.MeshPacket_Encrypted{Encrypted: []byte{1, 2, 3}},
	}, time.Now())
	if res.NodeUpdate != nil || res.TextMessage != nil || res.MessageStatus != nil {
		t.Fatalf("expected empty result for encrypted packet, got %+v", res)
	}
}

func TestDecodeNodeInfoIncludesStaticPosition(t *testing.T) {
	now := time.Now()
	update := decodeNodeInfo(&meshpb.NodeInfo{
		Num:       0x1234abcd,
		LastHeard: 1_735_123_456,
		HopsAway:  proto.Uint32(1),
		User: &meshpb.User{
			LongName:  " Alpha ",
			ShortName: "ALPH",
			HwModel:   meshpb.HardwareModel_HELTEC_V3,
		},
		Position: &meshpb.Position{
			LatitudeI:  proto.Int32(37_774_9000),
			LongitudeI: proto.Int32(-122_419_4000),
		},
	}, now)

	if !update.IsSnapshot() {
		t.Fatalf("expected snapshot update, got %q", update.Type)
	}
	node := update.Node
	if node.NodeID != "!1234abcd" {
		t.Fatalf("unexpected node id: %q", node.NodeID)
	}
	if node.LongName != "Alpha" || node.ShortName != "ALPH" {
		t.Fatalf("unexpected names: %q %q", node.LongName, node.ShortName)
	}
	if node.BoardModel != "HELTEC_V3" {
		t.Fatalf("unexpected board model: %q", node.BoardModel)
	}
	if node.HopsAway == nil || *node.HopsAway != 1 {
		t.Fatalf("expected hops away 1, got %v", node.HopsAway)
	}
	assertFloatPtr(t, node.Latitude, 37.7749, "latitude")
	assertFloatPtr(t, node.Longitude, -122.4194, "longitude")
}

func TestDecodeQueueStatus(t *testing.T) {
	tests := []struct {
		name       string
		status     *meshpb.QueueStatus
		ok         bool
		wantStatus domain.MessageStatus
		wantReason string
	}{
		{
			name:       "success",
			status:     &meshpb.QueueStatus{MeshPacketId: 42, Res: int32(meshpb.Routing_NONE)},
			ok:         true,
			wantStatus: domain.MessageStatusSent,
		},
		{
			name:       "failure",
			status:     &meshpb.QueueStatus{MeshPacketId: 42, Res: int32(meshpb.Routing_NO_ROUTE)},
			ok:         true,
			wantStatus: domain.MessageStatusFailed,
			wantReason: "NO_ROUTE",
		},
		{
			name:   "no packet id",
			status: &meshpb.QueueStatus{Free: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update, ok := decodeQueueStatus(tt.status)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if update.DeviceMessageID != "42" {
				t.Fatalf("unexpected device id: %q", update.DeviceMessageID)
			}
			if update.Status != tt.wantStatus {
				t.Fatalf("unexpected status: %v", update.Status)
			}
			if update.Reason != tt.wantReason {
				t.Fatalf("unexpected reason: %q", update.Reason)
			}
		})
	}
}

func TestCodec_DecodePacketAck(t *testing.T) {
	codec := mustNewCodec(t)

	res := codec.decodePacket(&meshpb.MeshPacket{
		From:     0x0000cafe,
		Priority: meshpb.MeshPacket_ACK,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum:   meshpb.PortNum_TEXT_MESSAGE_APP,
			RequestId: 777,
		}},
	}, time.Now())
	if res.MessageStatus == nil {
		t.Fatalf("expected message status update")
	}
	if res.MessageStatus.DeviceMessageID != "777" {
		t.Fatalf("unexpected device id: %q", res.MessageStatus.DeviceMessageID)
	}
	if res.MessageStatus.Status != domain.MessageStatusAcked {
		t.Fatalf("unexpected status: %v", res.MessageStatus.Status)
	}
	if res.MessageStatus.FromNodeNum != 0x0000cafe {
		t.Fatalf("unexpected ack sender: %x", res.MessageStatus.FromNodeNum)
	}
	if res.TextMessage != nil {
		t.Fatalf("expected empty ack payload not to produce a text message")
	}
}

func TestCodec_DecodePacketRoutingError(t *testing.T) {
	codec := mustNewCodec(t)

	routingPayload := marshalPayload(t, &meshpb.Routing{Variant: &meshpb.Routing_ErrorReason{ErrorReason: meshpb.Routing_NO_ROUTE}})

	res := codec.decodePacket(&meshpb.MeshPacket{
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum:   meshpb.PortNum_ROUTING_APP,
			RequestId: 9001,
			Payload:   routingPayload,
		}},
	}, time.Now())
	if res.MessageStatus == nil {
		t.Fatalf("expected message status update")
	}
	if res.MessageStatus.DeviceMessageID != "9001" {
		t.Fatalf("unexpected device id: %q", res.MessageStatus.DeviceMessageID)
	}
	if res.MessageStatus.Status != domain.MessageStatusFailed {
		t.Fatalf("unexpected status: %v", res.MessageStatus.Status)
	}
	if res.MessageStatus.Reason != "NO_ROUTE" {
		t.Fatalf("unexpected reason: %q", res.MessageStatus.Reason)
	}
}

func TestCodec_DecodePacketLocalEchoIsPendingWhenWantAck(t *testing.T) {
	codec := mustNewCodec(t)
	codec.setLocalNodeNum(123)

	res := codec.decodePacket(&meshpb.MeshPacket{
		From:    123,
		To:      456,
		WantAck: true,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum: meshpb.PortNum_TEXT_MESSAGE_APP,
			Payload: []byte("hello"),
		}},
	}, time.Now())
	if res.TextMessage == nil {
		t.Fatalf("expected text message")
	}
	if res.TextMessage.Direction != domain.MessageDirectionOut {
		t.Fatalf("expected outgoing direction, got %v", res.TextMessage.Direction)
	}
	if res.TextMessage.Status != domain.MessageStatusPending {
		t.Fatalf("expected pending status, got %v", res.TextMessage.Status)
	}
	if res.TextMessage.ChatKey != "dm:!000001c8" {
		t.Fatalf("expected dm chat keyed by destination, got %q", res.TextMessage.ChatKey)
	}
}

func TestCodec_DecodePacketIncomingChannelText(t *testing.T) {
	codec := mustNewCodec(t)
	codec.setLocalNodeNum(123)

	res := codec.decodePacket(&meshpb.MeshPacket{
		From:    0x1234abcd,
		To:      domain.BroadcastNodeNum,
		Channel: 1,
		Id:      55,
		PayloadVariant: &meshpb.MeshPacket_Decoded{Decoded: &meshpb.Data{
			Portnum: meshpb.PortNum_TEXT_MESSAGE_APP,
			Payload: []byte("  hi all  "),
		}},
	}, time.Now())
	if res.TextMessage == nil {
		t.Fatalf("expected text message")
	}
	msg := res.TextMessage
	if msg.ChatKey != "channel:1" {
		t.Fatalf("unexpected chat key: %q", msg.ChatKey)
	}
	if msg.Body != "hi all" {
		t.Fatalf("unexpected body: %q", msg.Body)
	}
	if msg.Direction != domain.MessageDirectionIn || msg.Status != domain.MessageStatusSent {
		t.Fatalf("unexpected direction/status: %v/%v", msg.Direction, msg.Status)
	}
	if msg.DeviceMessageID != "55" {
		t.Fatalf("unexpected device id: %q", msg.DeviceMessageID)
	}
	if msg.MetaJSON == "" {
		t.Fatalf("expected packet metadata")
	}
}

func TestDecodeChannelInfoDefaultTitles(t *testing.T) {
	tests := []struct {
		name    string
		channel *meshpb.Channel
		preset  string
		want    string
		ok      bool
	}{
		{
			name:    "empty primary uses preset",
			channel: &meshpb.Channel{Index: 1, Role: meshpb.Channel_PRIMARY, Settings: &meshpb.ChannelSettings{}},
			preset:  "LongFast",
			want:    "LongFast",
			ok:      true,
		},
		{
			name:    "empty secondary uses preset",
			channel: &meshpb.Channel{Index: 2, Role: meshpb.Channel_SECONDARY, Settings: &meshpb.ChannelSettings{Psk: []byte{1}}},
			preset:  "LongFast",
			want:    "LongFast",
			ok:      true,
		},
		{
			name:    "named channel",
			channel: &meshpb.Channel{Index: 3, Role: meshpb.Channel_SECONDARY, Settings: &meshpb.ChannelSettings{Name: " ops "}},
			preset:  "LongFast",
			want:    "ops",
			ok:      true,
		},
		{
			name:    "no preset falls back to index",
			channel: &meshpb.Channel{Index: 4, Role: meshpb.Channel_SECONDARY},
			want:    "Channel 4",
			ok:      true,
		},
		{
			name:    "disabled",
			channel: &meshpb.Channel{Index: 5, Role: meshpb.Channel_DISABLED},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, ok := decodeChannelInfo(tt.channel, tt.preset)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && info.Title != tt.want {
				t.Fatalf("expected title %q, got %q", tt.want, info.Title)
			}
		})
	}
}

func TestCodec_ConfigPresetAffectsEmptyPrimaryName(t *testing.T) {
	codec := mustNewCodec(t)
	if got := codec.defaultPresetChannelTitle(); got != "LongFast" {
		t.Fatalf("expected LongFast before config, got %q", got)
	}

	codec.observeConfig(&meshpb.Config{
		PayloadVariant: &meshpb.Config_Lora{Lora: &meshpb.Config_LoRaConfig{
			ModemPreset: meshpb.Config_LoRaConfig_MEDIUM_FAST,
		}},
	})
	// A LoRa section without a preset keeps the previous one.
	codec.observeConfig(&meshpb.Config{
		PayloadVariant: &meshpb.Config_Lora{Lora: &meshpb.Config_LoRaConfig{HopLimit: 3}},
	})

	info, ok := decodeChannelInfo(&meshpb.Channel{Index: 0, Role: meshpb.Channel_PRIMARY}, codec.defaultPresetChannelTitle())
	if !ok {
		t.Fatalf("expected channel to be decoded")
	}
	if info.Title != "MediumFast" {
		t.Fatalf("expected MediumFast title, got %q", info.Title)
	}
}

func TestPacketHops(t *testing.T) {
	tests := []struct {
		start, limit uint32
		want         int
		ok           bool
	}{
		{start: 0, limit: 3},
		{start: 3, limit: 3, want: 0, ok: true},
		{start: 7, limit: 4, want: 3, ok: true},
		{start: 2, limit: 5},
	}
	for _, tt := range tests {
		got, ok := packetHops(&meshpb.MeshPacket{HopStart: tt.start, HopLimit: tt.limit})
		if ok != tt.ok || got != tt.want {
			t.Fatalf("packetHops(%d,%d): expected %d/%v, got %d/%v", tt.start, tt.limit, tt.want, tt.ok, got, ok)
		}
	}
}
