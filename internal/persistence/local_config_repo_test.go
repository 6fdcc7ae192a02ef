package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
)

func TestLocalConfigRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalConfigRepo(openTestDB(t))

	cfg := &meshpb.LocalConfig{
		Lora: &meshpb.Config_LoRaConfig{
			ModemPreset: meshpb.Config_LoRaConfig_MEDIUM_FAST,
			HopLimit:    3,
		},
	}
	module := &meshpb.LocalModuleConfig{
		TrafficManagement: &meshpb.ModuleConfig_TrafficManagementConfig{
			Enabled:          true,
			RateLimitEnabled: false,
		},
	}
	if err := repo.Save(ctx, 42, cfg, module); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotCfg, gotModule, err := repo.Load(ctx, 42)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !proto.Equal(gotCfg, cfg) {
		t.Fatalf("config mismatch after round trip")
	}
	if !proto.Equal(gotModule, module) {
		t.Fatalf("module config mismatch after round trip")
	}
	if tm := gotModule.GetTrafficManagement(); tm == nil || !tm.GetEnabled() || tm.GetRateLimitEnabled() {
		t.Fatalf("unexpected traffic management after round trip: %v", tm)
	}
}

func TestLocalConfigRepoSavesEmptyTrees(t *testing.T) {
	tests := []struct {
		name   string
		cfg    *meshpb.LocalConfig
		module *meshpb.LocalModuleConfig
	}{
		{
			name: "module only",
			cfg:  &meshpb.LocalConfig{},
			module: &meshpb.LocalModuleConfig{
				TrafficManagement: &meshpb.ModuleConfig_TrafficManagementConfig{Enabled: true},
			},
		},
		{
			name: "config only",
			cfg: &meshpb.LocalConfig{
				Device: &meshpb.Config_DeviceConfig{Role: meshpb.Config_DeviceConfig_ROUTER},
			},
			module: &meshpb.LocalModuleConfig{},
		},
		{name: "both empty", cfg: &meshpb.LocalConfig{}, module: &meshpb.LocalModuleConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := NewLocalConfigRepo(openTestDB(t))

			if err := repo.Save(ctx, 0x1234, tt.cfg, tt.module); err != nil {
				t.Fatalf("save: %v", err)
			}
			gotCfg, gotModule, err := repo.Load(ctx, 0x1234)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !proto.Equal(gotCfg, tt.cfg) || !proto.Equal(gotModule, tt.module) {
				t.Fatalf("expected %v / %v, got %v / %v", tt.cfg, tt.module, gotCfg, gotModule)
			}
			num, err := repo.LatestNodeNum(ctx)
			if err != nil {
				t.Fatalf("latest node: %v", err)
			}
			if num != 0x1234 {
				t.Fatalf("expected latest node 0x1234, got %#x", num)
			}
		})
	}
}

func TestLocalConfigRepoLoadMissing(t *testing.T) {
	repo := NewLocalConfigRepo(openTestDB(t))
	if _, _, err := repo.Load(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.LatestNodeNum(context.Background()); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for latest node, got %v", err)
	}
}

func TestLocalConfigRepoLatestNodeNum(t *testing.T) {
	ctx := context.Background()
	repo := NewLocalConfigRepo(openTestDB(t))
	clock := time.Unix(1_735_000_000, 0)
	repo.now = func() time.Time { return clock }

	if err := repo.Save(ctx, 1, nil, nil); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	clock = clock.Add(time.Minute)
	if err := repo.Save(ctx, 2, nil, nil); err != nil {
		t.Fatalf("save 2: %v", err)
	}
	clock = clock.Add(time.Minute)
	if err := repo.Save(ctx, 1, &meshpb.LocalConfig{}, &meshpb.LocalModuleConfig{}); err != nil {
		t.Fatalf("save 1 again: %v", err)
	}

	num, err := repo.LatestNodeNum(ctx)
	if err != nil {
		t.Fatalf("latest node: %v", err)
	}
	if num != 1 {
		t.Fatalf("expected latest node 1, got %d", num)
	}
}

func TestLocalConfigRepoSaveRequiresNodeNumber(t *testing.T) {
	repo := NewLocalConfigRepo(openTestDB(t))
	if err := repo.Save(context.Background(), 0, nil, nil); err == nil {
		t.Fatalf("expected error for node number 0")
	}
}
