package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skobkin/meshlink/internal/domain"
)

type NodeRepo struct {
	db *sql.DB
}

func NewNodeRepo(db *sql.DB) *NodeRepo {
	return &NodeRepo{db: db}
}

// Upsert stores n. Names and optional metrics missing from n keep their
// stored values, so sparse packet updates do not erase a full snapshot.
func (r *NodeRepo) Upsert(ctx context.Context, n domain.Node) error {
	if n.Num == 0 {
		return fmt.Errorf("upsert node: node number is required")
	}
	nodeID := n.NodeID
	if nodeID == "" {
		nodeID = domain.FormatNodeID(n.Num)
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO nodes(node_num, node_id, long_name, short_name, board_model, device_role, is_unmessageable,
			channel, hops_away, latitude, longitude, altitude, battery_level, voltage, channel_utilization,
			air_util_tx, temperature, humidity, pressure, rssi, snr, last_heard_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(node_num) DO UPDATE SET
			node_id = excluded.node_id,
			long_name = CASE WHEN excluded.long_name <> '' THEN excluded.long_name ELSE nodes.long_name END,
			short_name = CASE WHEN excluded.short_name <> '' THEN excluded.short_name ELSE nodes.short_name END,
			board_model = COALESCE(excluded.board_model, nodes.board_model),
			device_role = COALESCE(excluded.device_role, nodes.device_role),
			is_unmessageable = COALESCE(excluded.is_unmessageable, nodes.is_unmessageable),
			channel = COALESCE(excluded.channel, nodes.channel),
			hops_away = COALESCE(excluded.hops_away, nodes.hops_away),
			latitude = COALESCE(excluded.latitude, nodes.latitude),
			longitude = COALESCE(excluded.longitude, nodes.longitude),
			altitude = COALESCE(excluded.altitude, nodes.altitude),
			battery_level = COALESCE(excluded.battery_level, nodes.battery_level),
			voltage = COALESCE(excluded.voltage, nodes.voltage),
			channel_utilization = COALESCE(excluded.channel_utilization, nodes.channel_utilization),
			air_util_tx = COALESCE(excluded.air_util_tx, nodes.air_util_tx),
			temperature = COALESCE(excluded.temperature, nodes.temperature),
			humidity = COALESCE(excluded.humidity, nodes.humidity),
			pressure = COALESCE(excluded.pressure, nodes.pressure),
			rssi = COALESCE(excluded.rssi, nodes.rssi),
			snr = COALESCE(excluded.snr, nodes.snr),
			last_heard_at = MAX(excluded.last_heard_at, nodes.last_heard_at),
			updated_at = excluded.updated_at
	`,
		int64(n.Num), nodeID, n.LongName, n.ShortName, nullableString(n.BoardModel), nullableString(n.Role),
		nullableBool(n.IsUnmessageable), nullable(n.Channel), nullable(n.HopsAway), nullable(n.Latitude),
		nullable(n.Longitude), nullable(n.Altitude), nullable(n.BatteryLevel), nullable(n.Voltage),
		nullable(n.ChannelUtilization), nullable(n.AirUtilTx), nullable(n.Temperature), nullable(n.Humidity),
		nullable(n.Pressure), nullable(n.RSSI), nullable(n.SNR), toUnixMillis(n.LastHeardAt), toUnixMillis(n.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("upsert node: %w", err)
	}
	return nil
}

func (r *NodeRepo) ListSortedByLastHeard(ctx context.Context) ([]domain.Node, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT node_num, node_id, long_name, short_name, board_model, device_role, is_unmessageable,
			channel, hops_away, latitude, longitude, altitude, battery_level, voltage, channel_utilization,
			air_util_tx, temperature, humidity, pressure, rssi, snr, last_heard_at, updated_at
		FROM nodes
		ORDER BY last_heard_at DESC, node_num ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list nodes: %w", err)
	}
	defer rows.Close()

	var out []domain.Node
	for rows.Next() {
		var (
			n             domain.Node
			num           int64
			heardMs       int64
			updMs         int64
			board         sql.NullString
			role          sql.NullString
			unmessageable sql.NullInt64
			channel       sql.NullInt64
			hopsAway      sql.NullInt64
			latitude      sql.NullFloat64
			longitude     sql.NullFloat64
			altitude      sql.NullInt64
			battery       sql.NullInt64
			voltage       sql.NullFloat64
			chUtil        sql.NullFloat64
			airUtil       sql.NullFloat64
			temperature   sql.NullFloat64
			humidity      sql.NullFloat64
			pressure      sql.NullFloat64
			rssi          sql.NullInt64
			snr           sql.NullFloat64
		)
		if err := rows.Scan(&num, &n.NodeID, &n.LongName, &n.ShortName, &board, &role, &unmessageable,
			&channel, &hopsAway, &latitude, &longitude, &altitude, &battery, &voltage, &chUtil,
			&airUtil, &temperature, &humidity, &pressure, &rssi, &snr, &heardMs, &updMs); err != nil {
			return nil, fmt.Errorf("scan node: %w", err)
		}
		n.Num = uint32(num)
		n.LastHeardAt = fromUnixMillis(heardMs)
		n.UpdatedAt = fromUnixMillis(updMs)
		n.BoardModel = board.String
		n.Role = role.String
		if unmessageable.Valid {
			v := unmessageable.Int64 != 0
			n.IsUnmessageable = &v
		}
		if channel.Valid {
			v := uint32(channel.Int64)
			n.Channel = &v
		}
		if hopsAway.Valid {
			v := uint32(hopsAway.Int64)
			n.HopsAway = &v
		}
		if altitude.Valid {
			v := int32(altitude.Int64)
			n.Altitude = &v
		}
		if battery.Valid {
			v := uint32(battery.Int64)
			n.BatteryLevel = &v
		}
		if rssi.Valid {
			v := int(rssi.Int64)
			n.RSSI = &v
		}
		n.Latitude = floatPtr(latitude)
		n.Longitude = floatPtr(longitude)
		n.Voltage = floatPtr(voltage)
		n.ChannelUtilization = floatPtr(chUtil)
		n.AirUtilTx = floatPtr(airUtil)
		n.Temperature = floatPtr(temperature)
		n.Humidity = floatPtr(humidity)
		n.Pressure = floatPtr(pressure)
		n.SNR = floatPtr(snr)
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate nodes: %w", err)
	}
	return out, nil
}
