package domain

import (
	"context"
	"errors"
	"fmt"
)

// LoadStoresFromRepositories warms the node store from the cache: remote
// nodes first, then the config trees of the last local radio seen.
func LoadStoresFromRepositories(ctx context.Context, nodes *NodeStore, nodeRepo NodeRepository, cfgRepo LocalConfigRepository) error {
	nodeItems, err := nodeRepo.ListSortedByLastHeard(ctx)
	if err != nil {
		return fmt.Errorf("load nodes from db: %w", err)
	}
	nodes.Load(nodeItems)

	num, err := cfgRepo.LatestNodeNum(ctx)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load local node from db: %w", err)
	}
	cfg, module, err := cfgRepo.Load(ctx, num)
	if err != nil {
		return fmt.Errorf("load local config from db: %w", err)
	}
	nodes.RestoreLocal(num, cfg, module)

	return nil
}
