package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// ResumePoints returns up to limit most recently indexed chain positions,
// most recent first, with the chain origin appended as the final fallback.
// The result is therefore never empty for a healthy store.
func (r *Repository) ResumePoints(ctx context.Context, network model.Network, limit uint64) ([]model.Point, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("resume_points", network, err, start)
	}()

	const query = `
SELECT slot, hash
FROM cardano_blocks
WHERE network = ?
ORDER BY slot DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, network, limit)
	if err != nil {
		return nil, fmt.Errorf("query resume points: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	points := make([]model.Point, 0, limit+1)
	for rows.Next() {
		var point model.Point
		if err = rows.Scan(&point.Slot, &point.Hash); err != nil {
			return nil, fmt.Errorf("scan resume point: %w", err)
		}
		points = append(points, point)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resume points: %w", err)
	}

	return append(points, model.OriginPoint()), nil
}
