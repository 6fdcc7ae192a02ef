package persistence

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; the schema version is the count of
// applied entries, kept in PRAGMA user_version.
var migrations = [][]string{
	// 1: remote node cache keyed by node number.
	{
		`CREATE TABLE IF NOT EXISTS nodes (
			node_num INTEGER PRIMARY KEY,
			node_id TEXT NOT NULL,
			long_name TEXT NOT NULL DEFAULT '',
			short_name TEXT NOT NULL DEFAULT '',
			board_model TEXT NULL,
			device_role TEXT NULL,
			is_unmessageable INTEGER NULL,
			channel INTEGER NULL,
			hops_away INTEGER NULL,
			latitude REAL NULL,
			longitude REAL NULL,
			altitude INTEGER NULL,
			battery_level INTEGER NULL,
			voltage REAL NULL,
			channel_utilization REAL NULL,
			air_util_tx REAL NULL,
			temperature REAL NULL,
			humidity REAL NULL,
			pressure REAL NULL,
			rssi INTEGER NULL,
			snr REAL NULL,
			last_heard_at INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS nodes_last_heard_at_idx ON nodes(last_heard_at DESC);`,
	},
	// 2: local radio config trees as encoded protobuf blobs.
	{
		`CREATE TABLE IF NOT EXISTS local_config (
			node_num INTEGER PRIMARY KEY,
			config BLOB NOT NULL,
			module_config BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS local_config_updated_at_idx ON local_config(updated_at DESC);`,
	},
}

// SchemaVersion is the version a freshly opened database ends up at.
var SchemaVersion = len(migrations)

func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > len(migrations) {
		return fmt.Errorf("database schema version %d is newer than supported %d", version, len(migrations))
	}

	for idx := version; idx < len(migrations); idx++ {
		if err := applyMigration(ctx, db, idx+1, migrations[idx]); err != nil {
			return err
		}
	}

	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, version int, stmts []string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration %d: %w", version, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", version, err)
		}
	}
	// PRAGMA does not take bound parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d;`, version)); err != nil {
		return fmt.Errorf("set schema version %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration %d: %w", version, err)
	}

	return nil
}
