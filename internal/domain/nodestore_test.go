package domain

import (
	"sync"
	"testing"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/skobkin/meshlink/internal/meshpb"
)

func trafficUpdate(tm *meshpb.ModuleConfig_TrafficManagementConfig) *meshpb.ModuleConfig {
	return &meshpb.ModuleConfig{
		PayloadVariant: &meshpb.ModuleConfig_TrafficManagement{TrafficManagement: tm},
	}
}

func TestNodeStoreLocalStartsWithEmptyConfig(t *testing.T) {
	store := NewNodeStore()
	local := store.Local()
	if local.ModuleConfig == nil || local.Config == nil {
		t.Fatalf("expected local config trees to exist")
	}
	if local.ModuleConfig.GetTrafficManagement() != nil {
		t.Fatalf("expected no traffic management section yet")
	}
}

func TestNodeStoreMergeRemote_PreservesCoordinatesOnSparseUpdates(t *testing.T) {
	store := NewNodeStore()
	lat := 37.7749
	lon := -122.4194
	alt := int32(123)

	store.MergeRemote(Node{
		Num:        0x11111111,
		Latitude:   &lat,
		Longitude:  &lon,
		Altitude:   &alt,
		LongName:   "Alpha",
		ShortName:  "ALPH",
		BoardModel: "T-Echo",
	})
	store.MergeRemote(Node{
		Num:      0x11111111,
		LongName: "Alpha Updated",
	})

	node, ok := store.Remote(0x11111111)
	if !ok {
		t.Fatalf("expected node in store")
	}
	if node.NodeID != "!11111111" {
		t.Fatalf("expected node id to be derived, got %q", node.NodeID)
	}
	if node.Latitude == nil || *node.Latitude != lat {
		t.Fatalf("expected latitude preserved, got %v", node.Latitude)
	}
	if node.Longitude == nil || *node.Longitude != lon {
		t.Fatalf("expected longitude preserved, got %v", node.Longitude)
	}
	if node.Altitude == nil || *node.Altitude != alt {
		t.Fatalf("expected altitude preserved, got %v", node.Altitude)
	}
	if node.LongName != "Alpha Updated" {
		t.Fatalf("expected long name update to apply, got %q", node.LongName)
	}
	if node.ShortName != "ALPH" {
		t.Fatalf("expected short name preserved, got %q", node.ShortName)
	}
}

func TestNodeStoreUpsertRemoteReplacesRecord(t *testing.T) {
	store := NewNodeStore()
	lat := 1.5
	store.UpsertRemote(Node{Num: 7, LongName: "Old", Latitude: &lat})
	store.UpsertRemote(Node{Num: 7, ShortName: "NEW"})

	node, ok := store.Remote(7)
	if !ok {
		t.Fatalf("expected node 7")
	}
	if node.LongName != "" || node.Latitude != nil {
		t.Fatalf("expected full replace, got %+v", node)
	}
	if node.ShortName != "NEW" {
		t.Fatalf("expected short name NEW, got %q", node.ShortName)
	}
	if node.UpdatedAt.IsZero() {
		t.Fatalf("expected updated at to be stamped")
	}
	if _, ok := store.Remote(8); ok {
		t.Fatalf("expected unknown node to be absent")
	}
}

func TestNodeStoreRemoteNeverCarriesConfig(t *testing.T) {
	store := NewNodeStore()
	store.UpsertRemote(Node{Num: 3, ModuleConfig: &meshpb.LocalModuleConfig{Version: 1}})
	node, _ := store.Remote(3)
	if node.ModuleConfig != nil || node.Config != nil {
		t.Fatalf("expected remote record without config trees")
	}
}

func TestNodeStoreRemotesSorted(t *testing.T) {
	store := NewNodeStore()
	base := time.Unix(1_700_000_000, 0)
	store.UpsertRemote(Node{Num: 1, LastHeardAt: base})
	store.UpsertRemote(Node{Num: 2, LastHeardAt: base.Add(time.Minute)})
	store.UpsertRemote(Node{Num: 3, LastHeardAt: base})

	got := store.RemotesSorted()
	want := []uint32{2, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(got))
	}
	for i, num := range want {
		if got[i].Num != num {
			t.Fatalf("position %d: expected %d, got %d", i, num, got[i].Num)
		}
	}
}

func TestNodeStoreLoadKeepsLiveRecords(t *testing.T) {
	store := NewNodeStore()
	store.UpsertRemote(Node{Num: 5, LongName: "live"})
	store.Load([]Node{{Num: 5, LongName: "cached"}, {Num: 6, LongName: "cached"}, {Num: 0}})

	if n, _ := store.Remote(5); n.LongName != "live" {
		t.Fatalf("expected live record to win, got %q", n.LongName)
	}
	if n, ok := store.Remote(6); !ok || n.LongName != "cached" {
		t.Fatalf("expected cached record for 6, got %+v", n)
	}
	if len(store.RemotesSorted()) != 2 {
		t.Fatalf("expected zero node num to be skipped")
	}
}

func TestNodeStoreMergeLocalModuleConfig(t *testing.T) {
	store := NewNodeStore()
	section, err := store.ReplaceLocalModuleConfig(trafficUpdate(&meshpb.ModuleConfig_TrafficManagementConfig{
		Enabled:             true,
		RateLimitWindowSecs: 60,
	}))
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if section != meshpb.SectionTrafficManagement {
		t.Fatalf("expected section %q, got %q", meshpb.SectionTrafficManagement, section)
	}
	before := store.Local()

	if _, err := store.MergeLocalModuleConfig(trafficUpdate(&meshpb.ModuleConfig_TrafficManagementConfig{
		RateLimitMaxPackets: 5,
	})); err != nil {
		t.Fatalf("merge: %v", err)
	}
	tm := store.Local().ModuleConfig.GetTrafficManagement()
	if !tm.GetEnabled() || tm.GetRateLimitWindowSecs() != 60 || tm.GetRateLimitMaxPackets() != 5 {
		t.Fatalf("expected merge to keep stored fields, got %v", tm)
	}

	if _, err := store.ReplaceLocalModuleConfig(trafficUpdate(&meshpb.ModuleConfig_TrafficManagementConfig{
		RateLimitEnabled: true,
	})); err != nil {
		t.Fatalf("replace: %v", err)
	}
	tm = store.Local().ModuleConfig.GetTrafficManagement()
	if tm.GetEnabled() || tm.GetRateLimitWindowSecs() != 0 || !tm.GetRateLimitEnabled() {
		t.Fatalf("expected device snapshot to replace the section, got %v", tm)
	}
	if !before.ModuleConfig.GetTrafficManagement().GetEnabled() {
		t.Fatalf("expected earlier snapshot to stay unchanged")
	}
}

func TestNodeStoreMergeLocalModuleConfigRejectsEmpty(t *testing.T) {
	store := NewNodeStore()
	before := store.Local()
	if _, err := store.MergeLocalModuleConfig(&meshpb.ModuleConfig{}); err == nil {
		t.Fatalf("expected error for update without section")
	}
	if store.Local().ModuleConfig != before.ModuleConfig {
		t.Fatalf("expected local config untouched after failed merge")
	}
}

func TestNodeStoreLocalIdentityKeepsConfig(t *testing.T) {
	store := NewNodeStore()
	store.SetLocalNum(0xabcdef01)
	if _, err := store.MergeLocalConfig(&meshpb.Config{PayloadVariant: &meshpb.Config_Lora{
		Lora: &meshpb.Config_LoRaConfig{HopLimit: 3},
	}}); err != nil {
		t.Fatalf("merge config: %v", err)
	}

	store.UpdateLocalIdentity(Node{Num: 99, LongName: "Home", ShortName: "HM"})

	local := store.Local()
	if local.Num != 0xabcdef01 || local.NodeID != "!abcdef01" {
		t.Fatalf("expected local number kept, got %d %q", local.Num, local.NodeID)
	}
	if local.LongName != "Home" {
		t.Fatalf("expected long name Home, got %q", local.LongName)
	}
	if local.Config.GetLora().GetHopLimit() != 3 {
		t.Fatalf("expected lora config kept")
	}
}

func TestNodeStoreReset(t *testing.T) {
	store := NewNodeStore()
	store.SetLocalNum(1)
	store.UpsertRemote(Node{Num: 2})
	store.Reset()

	if store.Local().Num != 0 {
		t.Fatalf("expected local num cleared")
	}
	if store.Local().ModuleConfig == nil {
		t.Fatalf("expected fresh empty module config")
	}
	if len(store.RemotesSorted()) != 0 {
		t.Fatalf("expected no remotes after reset")
	}
}

func TestNodeStoreChangesCoalesce(t *testing.T) {
	store := NewNodeStore()
	store.UpsertRemote(Node{Num: 1})
	store.UpsertRemote(Node{Num: 2})

	select {
	case <-store.Changes():
	default:
		t.Fatalf("expected change notification")
	}
	select {
	case <-store.Changes():
		t.Fatalf("expected notifications to be coalesced")
	default:
	}
}

func TestNodeStoreReadersSeeWholeSections(t *testing.T) {
	store := NewNodeStore()
	stateA := &meshpb.ModuleConfig_TrafficManagementConfig{
		Enabled:             true,
		RateLimitEnabled:    true,
		RateLimitWindowSecs: 10,
		RateLimitMaxPackets: 100,
	}
	stateB := &meshpb.ModuleConfig_TrafficManagementConfig{
		RateLimitWindowSecs: 20,
		RateLimitMaxPackets: 200,
	}
	if _, err := store.ReplaceLocalModuleConfig(trafficUpdate(stateA)); err != nil {
		t.Fatalf("seed replace: %v", err)
	}

	var wg sync.WaitGroup
	done := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			next := stateA
			if i%2 == 0 {
				next = stateB
			}
			if _, err := store.ReplaceLocalModuleConfig(trafficUpdate(next)); err != nil {
				t.Errorf("replace %d: %v", i, err)
				return
			}
		}
		close(done)
	}()

	for {
		tm := store.Local().ModuleConfig.GetTrafficManagement()
		if !proto.Equal(tm, stateA) && !proto.Equal(tm, stateB) {
			t.Fatalf("observed torn section: %v", tm)
		}
		select {
		case <-done:
			wg.Wait()
			return
		default:
		}
	}
}
