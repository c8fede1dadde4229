package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// MaxSlot returns the highest indexed slot for a network, zero when the
// store holds no blocks yet.
func (r *Repository) MaxSlot(ctx context.Context, network model.Network) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("max_slot", network, err, start)
	}()

	const query = `
SELECT coalesce(max(slot), toUInt64(0))
FROM cardano_blocks
WHERE network = ?`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return 0, fmt.Errorf("query max slot: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var slot uint64
	if !rows.Next() {
		err = fmt.Errorf("max slot not found")
		return 0, err
	}
	if err = rows.Scan(&slot); err != nil {
		return 0, fmt.Errorf("scan max slot: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max slot: %w", err)
	}

	return slot, nil
}
