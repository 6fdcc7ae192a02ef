package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
)

// LocalConfigRepo stores the config trees of local radios in their protobuf
// wire encoding, so fields added to the schema later survive a round trip.
type LocalConfigRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewLocalConfigRepo(db *sql.DB) *LocalConfigRepo {
	return &LocalConfigRepo{db: db, now: time.Now}
}

func (r *LocalConfigRepo) Save(ctx context.Context, num uint32, cfg *meshpb.LocalConfig, module *meshpb.LocalModuleConfig) error {
	if num == 0 {
		return fmt.Errorf("save local config: node number is required")
	}
	if cfg == nil {
		cfg = &meshpb.LocalConfig{}
	}
	if module == nil {
		module = &meshpb.LocalModuleConfig{}
	}
	cfgBlob, err := proto.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode local config: %w", err)
	}
	moduleBlob, err := proto.Marshal(module)
	if err != nil {
		return fmt.Errorf("encode local module config: %w", err)
	}
	// An empty message encodes to nil, which the driver binds as NULL.
	if cfgBlob == nil {
		cfgBlob = []byte{}
	}
	if moduleBlob == nil {
		moduleBlob = []byte{}
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO local_config(node_num, config, module_config, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(node_num) DO UPDATE SET
			config = excluded.config,
			module_config = excluded.module_config,
			updated_at = excluded.updated_at
	`, int64(num), cfgBlob, moduleBlob, toUnixMillis(r.now()))
	if err != nil {
		return fmt.Errorf("save local config: %w", err)
	}

	return nil
}

func (r *LocalConfigRepo) Load(ctx context.Context, num uint32) (*meshpb.LocalConfig, *meshpb.LocalModuleConfig, error) {
	var cfgBlob, moduleBlob []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT config, module_config FROM local_config WHERE node_num = ?
	`, int64(num)).Scan(&cfgBlob, &moduleBlob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load local config: %w", err)
	}

	cfg := &meshpb.LocalConfig{}
	if err := proto.Unmarshal(cfgBlob, cfg); err != nil {
		return nil, nil, fmt.Errorf("decode local config: %w", err)
	}
	module := &meshpb.LocalModuleConfig{}
	if err := proto.Unmarshal(moduleBlob, module); err != nil {
		return nil, nil, fmt.Errorf("decode local module config: %w", err)
	}

	return cfg, module, nil
}

func (r *LocalConfigRepo) LatestNodeNum(ctx context.Context) (uint32, error) {
	var num int64
	err := r.db.QueryRowContext(ctx, `
		SELECT node_num FROM local_config ORDER BY updated_at DESC, node_num DESC LIMIT 1
	`).Scan(&num)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("load latest local node: %w", err)
	}

	return uint32(num), nil
}
