package persistence

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/skobkin/meshlink/internal/domain"
	"github.com/skobkin/meshlink/internal/meshpb"
)

func TestOpen_MigratesV1DatabaseToCurrent(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	for _, stmt := range append(append([]string(nil), migrations[0]...), `PRAGMA user_version = 1;`,
		`INSERT INTO nodes(node_num, node_id, long_name, updated_at) VALUES (7, '!00000007', 'Seven', 1);`) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			t.Fatalf("seed v1 schema: %v", err)
		}
	}
	_ = db.Close()

	migrated, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("open migrated db: %v", err)
	}
	defer func() { _ = migrated.Close() }()

	var version int
	if err := migrated.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&version); err != nil {
		t.Fatalf("read user_version: %v", err)
	}
	if version != SchemaVersion {
		t.Fatalf("expected schema version %d, got %d", SchemaVersion, version)
	}

	var table string
	if err := migrated.QueryRowContext(ctx, `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name = 'local_config'
	`).Scan(&table); err != nil {
		t.Fatalf("expected local_config table after migration: %v", err)
	}

	nodes, err := NewNodeRepo(migrated).ListSortedByLastHeard(ctx)
	if err != nil {
		t.Fatalf("list nodes: %v", err)
	}
	if len(nodes) != 1 || nodes[0].LongName != "Seven" {
		t.Fatalf("expected seeded node to survive migration, got %+v", nodes)
	}
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "app.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA user_version = 99;`); err != nil {
		t.Fatalf("set version: %v", err)
	}
	_ = db.Close()

	if db, err := Open(ctx, dbPath); err == nil {
		_ = db.Close()
		t.Fatalf("expected error for newer schema")
	}
}

func TestClearDatabase_ClearsAllTables(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	if err := NewNodeRepo(db).Upsert(ctx, domain.Node{Num: 1, UpdatedAt: time.Now()}); err != nil {
		t.Fatalf("seed nodes: %v", err)
	}
	if err := NewLocalConfigRepo(db).Save(ctx, 1, &meshpb.LocalConfig{}, &meshpb.LocalModuleConfig{}); err != nil {
		t.Fatalf("seed local config: %v", err)
	}

	if err := ClearDatabase(ctx, db); err != nil {
		t.Fatalf("clear database: %v", err)
	}

	for _, table := range []string{"nodes", "local_config"} {
		var count int
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			t.Fatalf("count rows in %s: %v", table, err)
		}
		if count != 0 {
			t.Fatalf("expected %s to be empty after clear, got %d rows", table, count)
		}
	}
}

func TestWriterQueueRetriesAndFlushes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWriterQueue(nil, 1)
	w.retryDelay = time.Millisecond
	reg := prometheus.NewRegistry()
	if err := w.RegisterMetrics(reg); err != nil {
		t.Fatalf("register metrics: %v", err)
	}
	w.Start(ctx)

	var (
		mu    sync.Mutex
		order []string
		calls atomic.Int32
	)
	w.Enqueue("flaky", func(context.Context) error {
		if calls.Add(1) < 2 {
			return errors.New("busy")
		}
		mu.Lock()
		order = append(order, "flaky")
		mu.Unlock()
		return nil
	})
	w.Enqueue("broken", func(context.Context) error { return errors.New("always") })
	w.Enqueue("ok", func(context.Context) error {
		mu.Lock()
		order = append(order, "ok")
		mu.Unlock()
		return nil
	})

	flushCtx, flushCancel := context.WithTimeout(ctx, 3*time.Second)
	defer flushCancel()
	if err := w.Flush(flushCtx); err != nil {
		t.Fatalf("flush: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 {
		t.Fatalf("expected two successful writes, got %v", order)
	}
	if got := testutil.ToFloat64(w.writes.WithLabelValues("flaky", "retry")); got != 1 {
		t.Fatalf("expected one retry of flaky write, got %v", got)
	}
	if got := testutil.ToFloat64(w.writes.WithLabelValues("broken", "failed")); got != 1 {
		t.Fatalf("expected broken write to fail once, got %v", got)
	}
}

func TestWriterQueueFlushHonorsContext(t *testing.T) {
	w := NewWriterQueue(nil, 4)
	w.Enqueue("never_started", func(context.Context) error { return nil })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := w.Flush(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
