package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/domain"
)

const nodeDiscoverySourceNodeInfoPacket = "nodeinfo_packet"

// NodeDiscoveryProjection emits TopicNodeDiscovered for node info packets from
// nodes that were unknown when the radio finished its configuration dump.
type NodeDiscoveryProjection struct {
	logger *slog.Logger

	mu               sync.Mutex
	bootstrapReady   bool
	bootstrapCutover time.Time
	knownNodeIDs     map[string]struct{}
	seenNodeIDs      map[string]struct{}
}

func NewNodeDiscoveryProjection(nodeStore *domain.NodeStore, logger *slog.Logger) *NodeDiscoveryProjection {
	if logger == nil {
		logger = slog.Default().With("component", "app.node_discovery")
	}

	return &NodeDiscoveryProjection{
		logger:       logger,
		knownNodeIDs: snapshotNodeIDs(nodeStore),
		seenNodeIDs:  make(map[string]struct{}),
	}
}

func (p *NodeDiscoveryProjection) Start(ctx context.Context, messageBus bus.MessageBus) {
	if p == nil || messageBus == nil {
		return
	}
	nodeSub := messageBus.Subscribe(connectors.TopicNodeInfo)
	completeSub := messageBus.Subscribe(connectors.TopicConfigComplete)
	connSub := messageBus.Subscribe(connectors.TopicConnStatus)

	go func() {
		defer messageBus.Unsubscribe(nodeSub, connectors.TopicNodeInfo)
		defer messageBus.Unsubscribe(completeSub, connectors.TopicConfigComplete)
		defer messageBus.Unsubscribe(connSub, connectors.TopicConnStatus)
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-connSub:
				if !ok {
					return
				}
				status, ok := raw.(connectors.ConnectionStatus)
				if !ok {
					continue
				}
				p.handleConnStatus(status)
			case raw, ok := <-completeSub:
				if !ok {
					return
				}
				complete, ok := raw.(connectors.ConfigComplete)
				if !ok {
					continue
				}
				p.handleConfigComplete(complete)
			case raw, ok := <-nodeSub:
				if !ok {
					return
				}
				update, ok := raw.(domain.NodeUpdate)
				if !ok {
					continue
				}
				event, shouldPublish := p.nodeDiscoveredEvent(update)
				if !shouldPublish {
					continue
				}
				messageBus.Publish(connectors.TopicNodeDiscovered, event)
				p.logger.Info("node discovered", "node_id", event.NodeID, "source", event.Source)
			}
		}
	}()
}

// ResetFromStore updates discovery baseline and clears runtime deduplication.
func (p *NodeDiscoveryProjection) ResetFromStore(nodeStore *domain.NodeStore) {
	if p == nil {
		return
	}
	known := snapshotNodeIDs(nodeStore)
	p.mu.Lock()
	p.bootstrapReady = false
	p.bootstrapCutover = time.Time{}
	p.knownNodeIDs = known
	p.seenNodeIDs = make(map[string]struct{})
	p.mu.Unlock()
	p.logger.Info("node discovery baseline reset", "known_nodes", len(known))
}

// A lost connection disarms discovery until the next configuration dump.
func (p *NodeDiscoveryProjection) handleConnStatus(status connectors.ConnectionStatus) {
	if p == nil || status.State == "" || status.State == connectors.ConnectionStateConnected {
		return
	}
	p.mu.Lock()
	p.bootstrapReady = false
	p.bootstrapCutover = time.Time{}
	p.mu.Unlock()
}

func (p *NodeDiscoveryProjection) handleConfigComplete(complete connectors.ConfigComplete) {
	if p == nil || !complete.Expected {
		return
	}
	cutover := complete.At
	if cutover.IsZero() {
		cutover = time.Now()
	}
	p.mu.Lock()
	if p.bootstrapReady {
		p.mu.Unlock()

		return
	}
	p.bootstrapReady = true
	p.bootstrapCutover = cutover
	p.mu.Unlock()
	p.logger.Debug("node discovery armed after initial bootstrap", "config_id", complete.ID)
}

func (p *NodeDiscoveryProjection) nodeDiscoveredEvent(update domain.NodeUpdate) (domain.NodeDiscovered, bool) {
	if p == nil || update.Type != domain.NodeUpdateTypeNodeInfoPacket {
		return domain.NodeDiscovered{}, false
	}
	nodeID := strings.TrimSpace(update.Node.NodeID)
	if nodeID == "" && update.Node.Num != 0 {
		nodeID = domain.FormatNodeID(update.Node.Num)
	}
	if nodeID == "" {
		return domain.NodeDiscovered{}, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.bootstrapReady {
		return domain.NodeDiscovered{}, false
	}
	if !nodeUpdateAtOrAfterCutover(update, p.bootstrapCutover) {
		return domain.NodeDiscovered{}, false
	}
	if _, ok := p.knownNodeIDs[nodeID]; ok {
		return domain.NodeDiscovered{}, false
	}
	if _, ok := p.seenNodeIDs[nodeID]; ok {
		return domain.NodeDiscovered{}, false
	}
	p.knownNodeIDs[nodeID] = struct{}{}
	p.seenNodeIDs[nodeID] = struct{}{}

	return domain.NodeDiscovered{
		Node:         update.Node,
		NodeID:       nodeID,
		DiscoveredAt: time.Now(),
		Source:       nodeDiscoverySourceNodeInfoPacket,
	}, true
}

func nodeUpdateAtOrAfterCutover(update domain.NodeUpdate, cutover time.Time) bool {
	if cutover.IsZero() {
		return true
	}
	observedAt := update.Node.UpdatedAt
	if observedAt.IsZero() {
		return true
	}

	return !observedAt.Before(cutover)
}

func snapshotNodeIDs(nodeStore *domain.NodeStore) map[string]struct{} {
	known := make(map[string]struct{})
	if nodeStore == nil {
		return known
	}
	if local := nodeStore.Local(); local.Num != 0 {
		known[domain.FormatNodeID(local.Num)] = struct{}{}
	}
	for _, node := range nodeStore.RemotesSorted() {
		id := strings.TrimSpace(node.NodeID)
		if id == "" {
			continue
		}
		known[id] = struct{}{}
	}

	return known
}
