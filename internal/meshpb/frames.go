package meshpb

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrMalformed is wrapped by every decode failure caused by truncated or corrupt input.
	ErrMalformed = errors.New("malformed protobuf")
	// ErrConflictingVariants reports an envelope carrying more than one oneof member.
	ErrConflictingVariants = errors.New("conflicting oneof variants")
)

// Section names as they appear in the schema; used for logging and events.
const (
	SectionDevice    = "device"
	SectionPosition  = "position"
	SectionLoRa      = "lora"
	SectionBluetooth = "bluetooth"

	SectionMQTT              = "mqtt"
	SectionSerial            = "serial"
	SectionRangeTest         = "range_test"
	SectionTelemetry         = "telemetry"
	SectionNeighborInfo      = "neighbor_info"
	SectionTrafficManagement = "traffic_management"
)

// PayloadVariant is the oneof that carries the actual content of the
// FromRadio, Config and ModuleConfig envelopes.
const PayloadVariant protoreflect.Name = "payload_variant"

// SectionName returns the schema name of the populated section, or "" when
// no section is set.
func (x *Config) SectionName() string { return variantName(x) }

// SectionName returns the schema name of the populated section, or "" when
// no section is set.
func (x *ModuleConfig) SectionName() string { return variantName(x) }

func variantName(m proto.Message) string {
	msg := m.ProtoReflect()
	if !msg.IsValid() {
		return ""
	}
	fd := msg.WhichOneof(msg.Descriptor().Oneofs().ByName(PayloadVariant))
	if fd == nil {
		return ""
	}

	return string(fd.Name())
}

// UnmarshalFromRadio decodes one device frame. Besides malformed input it
// rejects envelopes whose oneof is populated by more than one member, at the
// top level or inside a config or module config section.
func UnmarshalFromRadio(b []byte) (*FromRadio, error) {
	md := (*FromRadio)(nil).ProtoReflect().Descriptor()
	if err := checkSingleVariant(b, md.Oneofs().ByName(PayloadVariant)); err != nil {
		return nil, fmt.Errorf("fromradio: %w", err)
	}
	for _, name := range []protoreflect.Name{"config", "moduleConfig"} {
		fd := md.Fields().ByName(name)
		nested := fd.Message().Oneofs().ByName(PayloadVariant)
		if err := checkSingleVariant(rawVariant(b, fd.Number()), nested); err != nil {
			return nil, fmt.Errorf("fromradio %s: %w", name, err)
		}
	}

	var out FromRadio
	if err := proto.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("fromradio: %w: %v", ErrMalformed, err)
	}

	return &out, nil
}

// checkSingleVariant fails when b carries two different members of od. A
// member only counts when it arrives with the wire type of its declared kind;
// anything else is kept as an unknown field by the decoder.
func checkSingleVariant(b []byte, od protoreflect.OneofDescriptor) error {
	fields := od.Fields()
	var seen protowire.Number
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed("tag", n)
		}
		b = b[n:]
		m := protowire.ConsumeFieldValue(num, typ, b)
		if m < 0 {
			return malformed(fmt.Sprintf("field %d", num), m)
		}
		b = b[m:]

		fd := fields.ByNumber(num)
		if fd == nil || wireType(fd.Kind()) != typ {
			continue
		}
		if seen != 0 && seen != num {
			return fmt.Errorf("%w: %s fields %d and %d", ErrConflictingVariants, od.Name(), seen, num)
		}
		seen = num
	}

	return nil
}

// rawVariant returns the concatenated payloads of every length-delimited
// occurrence of want, which the decoder merges into one message. b must
// already be known to be well-formed.
func rawVariant(b []byte, want protowire.Number) []byte {
	var out []byte
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		b = b[n:]
		if num == want && typ == protowire.BytesType {
			v, m := protowire.ConsumeBytes(b)
			out = append(out, v...)
			b = b[m:]

			continue
		}
		b = b[protowire.ConsumeFieldValue(num, typ, b):]
	}

	return out
}

func wireType(k protoreflect.Kind) protowire.Type {
	switch k {
	case protoreflect.BoolKind, protoreflect.EnumKind,
		protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Uint32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Uint64Kind:
		return protowire.VarintType
	case protoreflect.Fixed32Kind, protoreflect.Sfixed32Kind, protoreflect.FloatKind:
		return protowire.Fixed32Type
	case protoreflect.Fixed64Kind, protoreflect.Sfixed64Kind, protoreflect.DoubleKind:
		return protowire.Fixed64Type
	case protoreflect.GroupKind:
		return protowire.StartGroupType
	default:
		return protowire.BytesType
	}
}

func malformed(what string, code int) error {
	return fmt.Errorf("%w: %s: %v", ErrMalformed, what, protowire.ParseError(code))
}
