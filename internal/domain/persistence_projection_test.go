package domain

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/connectors"
	"github.com/skobkin/meshlink/internal/meshpb"
)

// inlineQueue runs writes immediately and records their names.
type inlineQueue struct {
	mu    sync.Mutex
	names []string
}

func (q *inlineQueue) Enqueue(name string, fn func(context.Context) error) {
	q.mu.Lock()
	q.names = append(q.names, name)
	q.mu.Unlock()
	_ = fn(context.Background())
}

type memNodeRepo struct {
	mu    sync.Mutex
	nodes []Node
	err   error
}

func (r *memNodeRepo) Upsert(_ context.Context, n Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes = append(r.nodes, n)
	return nil
}

func (r *memNodeRepo) ListSortedByLastHeard(context.Context) ([]Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Node(nil), r.nodes...), r.err
}

func (r *memNodeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}

type savedConfig struct {
	num    uint32
	cfg    *meshpb.LocalConfig
	module *meshpb.LocalModuleConfig
}

type memConfigRepo struct {
	mu    sync.Mutex
	saved []savedConfig
}

func (r *memConfigRepo) Save(_ context.Context, num uint32, cfg *meshpb.LocalConfig, module *meshpb.LocalModuleConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saved = append(r.saved, savedConfig{num: num, cfg: cfg, module: module})
	return nil
}

func (r *memConfigRepo) Load(_ context.Context, num uint32) (*meshpb.LocalConfig, *meshpb.LocalModuleConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for idx := len(r.saved) - 1; idx >= 0; idx-- {
		if r.saved[idx].num == num {
			return r.saved[idx].cfg, r.saved[idx].module, nil
		}
	}
	return nil, nil, ErrNotFound
}

func (r *memConfigRepo) LatestNodeNum(context.Context) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saved) == 0 {
		return 0, ErrNotFound
	}
	return r.saved[len(r.saved)-1].num, nil
}

func (r *memConfigRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.saved)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestStartPersistenceProjection(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := bus.New(nil)
	defer b.Close()
	queue := &inlineQueue{}
	nodeRepo := &memNodeRepo{}
	cfgRepo := &memConfigRepo{}
	StartPersistenceProjection(ctx, b, queue, nodeRepo, cfgRepo)

	b.Publish(connectors.TopicNodeInfo, NodeUpdate{Node: Node{Num: 0}})
	b.Publish(connectors.TopicNodeInfo, NodeUpdate{Node: Node{
		Num:          0x1234abcd,
		LongName:     "Alpha",
		ModuleConfig: &meshpb.LocalModuleConfig{},
	}})
	b.Publish(connectors.TopicLocalNode, Node{ModuleConfig: &meshpb.LocalModuleConfig{}})

	module := &meshpb.LocalModuleConfig{
		Mqtt: &meshpb.ModuleConfig_MQTTConfig{Enabled: true},
	}
	b.Publish(connectors.TopicLocalNode, Node{Num: 42, Config: &meshpb.LocalConfig{}, ModuleConfig: module})

	waitFor(t, "node write", func() bool { return nodeRepo.count() == 1 })
	waitFor(t, "config write", func() bool { return cfgRepo.count() == 1 })

	node := nodeRepo.nodes[0]
	if node.NodeID != "!1234abcd" {
		t.Fatalf("expected derived node id, got %q", node.NodeID)
	}
	if node.ModuleConfig != nil {
		t.Fatalf("expected remote record without config")
	}
	saved := cfgRepo.saved[0]
	if saved.num != 42 || !saved.module.GetMqtt().GetEnabled() {
		t.Fatalf("unexpected saved config: %+v", saved)
	}
}

func TestStartPersistenceProjectionDrainsOnBusClose(t *testing.T) {
	b := bus.New(nil)
	queue := &inlineQueue{}
	nodeRepo := &memNodeRepo{}
	done := StartPersistenceProjection(context.Background(), b, queue, nodeRepo, &memConfigRepo{})

	for num := uint32(1); num <= 20; num++ {
		b.Publish(connectors.TopicNodeInfo, NodeUpdate{Node: Node{Num: num}})
	}
	b.Close()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for projection to drain")
	}
	if nodeRepo.count() != 20 {
		t.Fatalf("expected every buffered update to be written, got %d", nodeRepo.count())
	}
}

func TestLoadStoresFromRepositories(t *testing.T) {
	ctx := context.Background()
	heard := time.Unix(1_735_000_000, 0)
	nodeRepo := &memNodeRepo{nodes: []Node{
		{Num: 7, LongName: "Seven", LastHeardAt: heard},
		{Num: 9, LongName: "Nine", LastHeardAt: heard.Add(time.Minute)},
	}}
	cfgRepo := &memConfigRepo{}
	_ = cfgRepo.Save(ctx, 42, &meshpb.LocalConfig{}, &meshpb.LocalModuleConfig{
		TrafficManagement: &meshpb.ModuleConfig_TrafficManagementConfig{Enabled: true},
	})

	store := NewNodeStore()
	if err := LoadStoresFromRepositories(ctx, store, nodeRepo, cfgRepo); err != nil {
		t.Fatalf("load stores: %v", err)
	}

	remotes := store.RemotesSorted()
	if len(remotes) != 2 || remotes[0].Num != 9 {
		t.Fatalf("unexpected remotes: %+v", remotes)
	}
	local := store.Local()
	if local.Num != 42 || local.NodeID != "!0000002a" {
		t.Fatalf("expected restored local node 42, got %d %q", local.Num, local.NodeID)
	}
	if !local.ModuleConfig.GetTrafficManagement().GetEnabled() {
		t.Fatalf("expected restored traffic management config")
	}
}

func TestLoadStoresFromRepositoriesEmptyCache(t *testing.T) {
	store := NewNodeStore()
	if err := LoadStoresFromRepositories(context.Background(), store, &memNodeRepo{}, &memConfigRepo{}); err != nil {
		t.Fatalf("load stores: %v", err)
	}
	if store.Local().Num != 0 || store.RemoteCount() != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestLoadStoresFromRepositoriesNodeError(t *testing.T) {
	repoErr := errors.New("disk on fire")
	err := LoadStoresFromRepositories(context.Background(), NewNodeStore(), &memNodeRepo{err: repoErr}, &memConfigRepo{})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestRestoreLocalSkipsLiveNode(t *testing.T) {
	store := NewNodeStore()
	store.SetLocalNum(5)
	if store.RestoreLocal(42, &meshpb.LocalConfig{}, &meshpb.LocalModuleConfig{}) {
		t.Fatalf("expected restore to be skipped once the radio reported its node")
	}
	if store.Local().Num != 5 {
		t.Fatalf("expected live node number to win, got %d", store.Local().Num)
	}
}
