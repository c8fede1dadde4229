package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// RollbackAfterSlot retracts every block and transaction above the given
// slot, honoring a chain reorganization back to that point.
func (r *Repository) RollbackAfterSlot(ctx context.Context, network model.Network, slot uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("rollback_after_slot", network, err, start)
	}()

	// mutations_sync makes the delete visible to the next read, which the
	// resume flow depends on right after a rollback.
	const blocksQuery = `
ALTER TABLE cardano_blocks DELETE
WHERE network = ? AND slot > ?
SETTINGS mutations_sync = 2`

	const txsQuery = `
ALTER TABLE cardano_transactions DELETE
WHERE network = ? AND slot > ?
SETTINGS mutations_sync = 2`

	if err = r.conn.Exec(ctx, blocksQuery, network, slot); err != nil {
		return fmt.Errorf("rollback blocks after slot %d: %w", slot, err)
	}
	if err = r.conn.Exec(ctx, txsQuery, network, slot); err != nil {
		return fmt.Errorf("rollback transactions after slot %d: %w", slot, err)
	}
	return nil
}
