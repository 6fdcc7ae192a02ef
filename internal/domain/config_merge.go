package domain

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/skobkin/meshlink/internal/meshpb"
)

var (
	// ErrNoSection is returned for a config frame that names no section.
	ErrNoSection = errors.New("config update has no section")
	// ErrUnknownSection is returned for a section this build cannot store.
	ErrUnknownSection = errors.New("unknown config section")
)

// SectionPolicy says how a section update combines with the stored section.
type SectionPolicy int

const (
	// SectionMerge assigns the fields set in the update and keeps the rest.
	SectionMerge SectionPolicy = iota
	// SectionReplace stores the update as the whole section. Device frames
	// are full snapshots: a proto3 field reset to its zero value is simply
	// not on the wire, so merging them could never turn a flag off.
	SectionReplace
)

func (p SectionPolicy) String() string {
	if p == SectionReplace {
		return "replace"
	}
	return "merge"
}

// MergeModuleConfig folds the section carried by update into target and
// returns the section name. Only fields set in the update are assigned, so
// applying the same update twice leaves target unchanged after the first.
// The section is validated before target is touched.
func MergeModuleConfig(target *meshpb.LocalModuleConfig, update *meshpb.ModuleConfig) (string, error) {
	return ApplyModuleConfig(target, update, SectionMerge)
}

// MergeConfig is MergeModuleConfig for radio config sections.
func MergeConfig(target *meshpb.LocalConfig, update *meshpb.Config) (string, error) {
	return ApplyConfig(target, update, SectionMerge)
}

// ReplaceModuleConfigSection swaps the stored section for a copy of the one
// carried by update.
func ReplaceModuleConfigSection(target *meshpb.LocalModuleConfig, update *meshpb.ModuleConfig) (string, error) {
	return ApplyModuleConfig(target, update, SectionReplace)
}

// ReplaceConfigSection is ReplaceModuleConfigSection for radio config sections.
func ReplaceConfigSection(target *meshpb.LocalConfig, update *meshpb.Config) (string, error) {
	return ApplyConfig(target, update, SectionReplace)
}

// ApplyModuleConfig stores the section carried by update in target using policy.
func ApplyModuleConfig(target *meshpb.LocalModuleConfig, update *meshpb.ModuleConfig, policy SectionPolicy) (string, error) {
	if target == nil {
		return "", errors.New("apply to nil module config")
	}

	return applySection(target, update, policy)
}

// ApplyConfig stores the radio config section carried by update in target.
func ApplyConfig(target *meshpb.LocalConfig, update *meshpb.Config, policy SectionPolicy) (string, error) {
	if target == nil {
		return "", errors.New("apply to nil config")
	}

	return applySection(target, update, policy)
}

// applySection finds the populated payload_variant member of update and the
// field of the same name in target. An empty section in the update still
// marks the section as present.
func applySection(target, update proto.Message, policy SectionPolicy) (string, error) {
	src := update.ProtoReflect()
	if !src.IsValid() {
		return "", ErrNoSection
	}
	fd := src.WhichOneof(src.Descriptor().Oneofs().ByName(meshpb.PayloadVariant))
	if fd == nil {
		return "", ErrNoSection
	}

	dst := target.ProtoReflect()
	tfd := dst.Descriptor().Fields().ByName(fd.Name())
	if fd.Message() == nil || tfd == nil || tfd.Message() == nil || tfd.Message().FullName() != fd.Message().FullName() {
		return "", fmt.Errorf("%w: %s", ErrUnknownSection, fd.Name())
	}

	section := src.Get(fd).Message()
	switch policy {
	case SectionReplace:
		if !section.IsValid() {
			dst.Set(tfd, dst.NewField(tfd))
			break
		}
		dst.Set(tfd, protoreflect.ValueOfMessage(proto.Clone(section.Interface()).ProtoReflect()))
	default:
		stored := dst.Mutable(tfd).Message()
		if section.IsValid() {
			proto.Merge(stored.Interface(), section.Interface())
		}
	}

	return string(fd.Name()), nil
}
