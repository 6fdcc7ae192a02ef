package domain

import (
	"sort"
	"sync"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/skobkin/meshlink/internal/meshpb"
)

// NodeStore holds the local node and every remote node heard so far. Records
// are handed out by value and the config trees they point to are never
// mutated in place, so a reader always sees a whole state.
type NodeStore struct {
	mu      sync.RWMutex
	local   Node
	remotes map[uint32]Node
	changes chan struct{}
}

func NewNodeStore() *NodeStore {
	return &NodeStore{
		local:   emptyLocalNode(),
		remotes: make(map[uint32]Node),
		changes: make(chan struct{}, 1),
	}
}

func emptyLocalNode() Node {
	return Node{
		Config:       &meshpb.LocalConfig{},
		ModuleConfig: &meshpb.LocalModuleConfig{},
	}
}

// Local returns a snapshot of the local node.
func (s *NodeStore) Local() Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.local
}

func (s *NodeStore) SetLocalNum(num uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local.Num = num
	s.local.NodeID = FormatNodeID(num)
	s.local.UpdatedAt = time.Now()
	s.notify()
}

// RestoreLocal seeds the local node from cached config trees. It does nothing
// once a live radio reported its node number.
func (s *NodeStore) RestoreLocal(num uint32, cfg *meshpb.LocalConfig, module *meshpb.LocalModuleConfig) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.local.Num != 0 || num == 0 {
		return false
	}

	s.local.Num = num
	s.local.NodeID = FormatNodeID(num)
	if cfg != nil {
		s.local.Config = proto.Clone(cfg).(*meshpb.LocalConfig)
	}
	if module != nil {
		s.local.ModuleConfig = proto.Clone(module).(*meshpb.LocalModuleConfig)
	}
	s.notify()

	return true
}

// MergeLocalModuleConfig folds one module config section into the local node.
// On error the local record is left untouched.
func (s *NodeStore) MergeLocalModuleConfig(update *meshpb.ModuleConfig) (string, error) {
	return s.applyLocalModuleConfig(update, SectionMerge)
}

// ReplaceLocalModuleConfig stores a module config section reported by the
// device as the whole section.
func (s *NodeStore) ReplaceLocalModuleConfig(update *meshpb.ModuleConfig) (string, error) {
	return s.applyLocalModuleConfig(update, SectionReplace)
}

// MergeLocalConfig folds one radio config section into the local node.
func (s *NodeStore) MergeLocalConfig(update *meshpb.Config) (string, error) {
	return s.applyLocalConfig(update, SectionMerge)
}

// ReplaceLocalConfig stores a radio config section reported by the device.
func (s *NodeStore) ReplaceLocalConfig(update *meshpb.Config) (string, error) {
	return s.applyLocalConfig(update, SectionReplace)
}

func (s *NodeStore) applyLocalModuleConfig(update *meshpb.ModuleConfig, policy SectionPolicy) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := &meshpb.LocalModuleConfig{}
	if s.local.ModuleConfig != nil {
		next = proto.Clone(s.local.ModuleConfig).(*meshpb.LocalModuleConfig)
	}
	section, err := ApplyModuleConfig(next, update, policy)
	if err != nil {
		return "", err
	}
	s.local.ModuleConfig = next
	s.local.UpdatedAt = time.Now()
	s.notify()

	return section, nil
}

func (s *NodeStore) applyLocalConfig(update *meshpb.Config, policy SectionPolicy) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := &meshpb.LocalConfig{}
	if s.local.Config != nil {
		next = proto.Clone(s.local.Config).(*meshpb.LocalConfig)
	}
	section, err := ApplyConfig(next, update, policy)
	if err != nil {
		return "", err
	}
	s.local.Config = next
	s.local.UpdatedAt = time.Now()
	s.notify()

	return section, nil
}

// UpdateLocalIdentity copies identity and telemetry from a node report about
// ourselves. Number and config trees are kept.
func (s *NodeStore) UpdateLocalIdentity(node Node) {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := mergeSparse(s.local, node)
	merged.Num = s.local.Num
	merged.NodeID = s.local.NodeID
	merged.Config = s.local.Config
	merged.ModuleConfig = s.local.ModuleConfig
	s.local = merged
	s.notify()
}

// UpsertRemote replaces the record for node.Num with node.
func (s *NodeStore) UpsertRemote(node Node) Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	node = remoteRecord(node)
	if node.UpdatedAt.IsZero() {
		node.UpdatedAt = time.Now()
	}
	s.remotes[node.Num] = node
	s.notify()

	return node
}

// MergeRemote merges a sparse update (for example one telemetry packet) into
// the record for node.Num without wiping cached metadata.
func (s *NodeStore) MergeRemote(node Node) Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	node = remoteRecord(node)
	if existing, ok := s.remotes[node.Num]; ok {
		node = mergeSparse(existing, node)
	}
	if node.UpdatedAt.IsZero() {
		node.UpdatedAt = time.Now()
	}
	s.remotes[node.Num] = node
	s.notify()

	return node
}

func (s *NodeStore) Remote(num uint32) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.remotes[num]

	return node, ok
}

func (s *NodeStore) RemoteCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.remotes)
}

// RemotesSorted returns remote nodes, most recently heard first.
func (s *NodeStore) RemotesSorted() []Node {
	s.mu.RLock()
	out := make([]Node, 0, len(s.remotes))
	for _, node := range s.remotes {
		out = append(out, node)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].LastHeardAt.Equal(out[j].LastHeardAt) {
			return out[i].Num < out[j].Num
		}

		return out[i].LastHeardAt.After(out[j].LastHeardAt)
	})

	return out
}

// Load seeds remote records, typically from the local cache. Existing
// records win over loaded ones.
func (s *NodeStore) Load(nodes []Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, node := range nodes {
		if node.Num == 0 {
			continue
		}
		if _, ok := s.remotes[node.Num]; ok {
			continue
		}
		s.remotes[node.Num] = remoteRecord(node)
	}
	s.notify()
}

// Reset drops everything learned from the radio, as after a reconnect to a
// different device.
func (s *NodeStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.local = emptyLocalNode()
	s.remotes = make(map[uint32]Node)
	s.notify()
}

// Changes signals (coalesced) that the store was modified.
func (s *NodeStore) Changes() <-chan struct{} {
	return s.changes
}

func (s *NodeStore) notify() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func remoteRecord(node Node) Node {
	if node.NodeID == "" {
		node.NodeID = FormatNodeID(node.Num)
	}
	node.Config = nil
	node.ModuleConfig = nil

	return node
}

func mergeSparse(existing, node Node) Node {
	if node.LongName == "" {
		node.LongName = existing.LongName
	}
	if node.ShortName == "" {
		node.ShortName = existing.ShortName
	}
	if node.BoardModel == "" {
		node.BoardModel = existing.BoardModel
	}
	if node.Role == "" {
		node.Role = existing.Role
	}
	if node.IsUnmessageable == nil {
		node.IsUnmessageable = existing.IsUnmessageable
	}
	if node.Channel == nil {
		node.Channel = existing.Channel
	}
	if node.HopsAway == nil {
		node.HopsAway = existing.HopsAway
	}
	if node.Latitude == nil {
		node.Latitude = existing.Latitude
	}
	if node.Longitude == nil {
		node.Longitude = existing.Longitude
	}
	if node.Altitude == nil {
		node.Altitude = existing.Altitude
	}
	if node.BatteryLevel == nil {
		node.BatteryLevel = existing.BatteryLevel
	}
	if node.Voltage == nil {
		node.Voltage = existing.Voltage
	}
	if node.ChannelUtilization == nil {
		node.ChannelUtilization = existing.ChannelUtilization
	}
	if node.AirUtilTx == nil {
		node.AirUtilTx = existing.AirUtilTx
	}
	if node.Temperature == nil {
		node.Temperature = existing.Temperature
	}
	if node.Humidity == nil {
		node.Humidity = existing.Humidity
	}
	if node.Pressure == nil {
		node.Pressure = existing.Pressure
	}
	if node.RSSI == nil {
		node.RSSI = existing.RSSI
	}
	if node.SNR == nil {
		node.SNR = existing.SNR
	}
	if node.LastHeardAt.IsZero() || existing.LastHeardAt.After(node.LastHeardAt) {
		node.LastHeardAt = existing.LastHeardAt
	}
	if existing.UpdatedAt.After(node.UpdatedAt) {
		node.UpdatedAt = existing.UpdatedAt
	}

	return node
}
