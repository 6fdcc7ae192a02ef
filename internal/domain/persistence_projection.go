package domain

import (
	"context"
	"sync"

	"github.com/skobkin/meshlink/internal/bus"
	"github.com/skobkin/meshlink/internal/connectors"
)

// WriteQueue serializes persistence writes from async domain events.
type WriteQueue interface {
	Enqueue(name string, fn func(context.Context) error)
}

// StartPersistenceProjection mirrors node updates and local config snapshots
// published on the bus into the repositories. It runs until ctx ends or the
// bus is closed; after a bus close every event still buffered is enqueued
// before the returned channel is closed.
func StartPersistenceProjection(ctx context.Context, b bus.MessageBus, queue WriteQueue, nodeRepo NodeRepository, cfgRepo LocalConfigRepository) <-chan struct{} {
	nodeSub := b.Subscribe(connectors.TopicNodeInfo)
	localSub := b.Subscribe(connectors.TopicLocalNode)

	var wg sync.WaitGroup
	wg.Add(2)
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	go func() {
		defer wg.Done()
		defer b.Unsubscribe(nodeSub, connectors.TopicNodeInfo)
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-nodeSub:
				if !ok {
					return
				}
				update, ok := raw.(NodeUpdate)
				if !ok || update.Node.Num == 0 {
					continue
				}
				n := remoteRecord(update.Node)
				queue.Enqueue("upsert_node", func(writeCtx context.Context) error {
					return nodeRepo.Upsert(writeCtx, n)
				})
			}
		}
	}()

	go func() {
		defer wg.Done()
		defer b.Unsubscribe(localSub, connectors.TopicLocalNode)
		for {
			select {
			case <-ctx.Done():
				return
			case raw, ok := <-localSub:
				if !ok {
					return
				}
				local, ok := raw.(Node)
				// Config seen before my_info has no node to be filed under.
				if !ok || local.Num == 0 {
					continue
				}
				// Snapshot trees are never mutated, so they can cross goroutines.
				num, cfg, module := local.Num, local.Config, local.ModuleConfig
				queue.Enqueue("save_local_config", func(writeCtx context.Context) error {
					return cfgRepo.Save(writeCtx, num, cfg, module)
				})
			}
		}
	}()

	return done
}
