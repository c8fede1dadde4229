package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// SyncStats summarizes indexed chain state for a network.
func (r *Repository) SyncStats(ctx context.Context, network model.Network) (model.SyncStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("sync_stats", network, err, start)
	}()

	const query = `
SELECT
	count() AS blocks,
	coalesce(max(slot), toUInt64(0)) AS max_slot,
	coalesce(max(height), toUInt64(0)) AS max_height
FROM cardano_blocks
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return model.SyncStats{}, fmt.Errorf("query sync stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var stats model.SyncStats
	if !rows.Next() {
		err = fmt.Errorf("sync stats not found")
		return model.SyncStats{}, err
	}
	if err = rows.Scan(&stats.Blocks, &stats.MaxSlot, &stats.MaxHeight); err != nil {
		return model.SyncStats{}, fmt.Errorf("scan sync stats: %w", err)
	}
	if err = rows.Err(); err != nil {
		return model.SyncStats{}, fmt.Errorf("iterate sync stats: %w", err)
	}

	return stats, nil
}
