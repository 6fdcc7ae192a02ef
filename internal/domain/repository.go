package domain

import (
	"context"
	"errors"

	"github.com/skobkin/meshlink/internal/meshpb"
)

var ErrNotFound = errors.New("not found")

// NodeRepository caches remote nodes between runs. Upsert keeps stored values
// for fields the given node leaves unset.
type NodeRepository interface {
	Upsert(ctx context.Context, n Node) error
	ListSortedByLastHeard(ctx context.Context) ([]Node, error)
}

// LocalConfigRepository caches the config trees of local radios by node number.
type LocalConfigRepository interface {
	Save(ctx context.Context, num uint32, cfg *meshpb.LocalConfig, module *meshpb.LocalModuleConfig) error
	Load(ctx context.Context, num uint32) (*meshpb.LocalConfig, *meshpb.LocalModuleConfig, error)
	// LatestNodeNum returns the most recently saved local node, or ErrNotFound.
	LatestNodeNum(ctx context.Context) (uint32, error)
}
