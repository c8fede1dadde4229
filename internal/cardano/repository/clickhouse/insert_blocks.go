package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// InsertBlocks stores block rows in ClickHouse.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.BlockRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_blocks", firstNetwork(blocks), err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	const query = `
INSERT INTO cardano_blocks (
	network,
	slot,
	height,
	hash,
	prev_hash,
	era,
	body_size,
	tx_count
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, block := range blocks {
		if err = batch.Append(
			string(block.Network),
			block.Slot,
			block.Height,
			block.Hash,
			block.PrevHash,
			block.Era,
			block.BodySize,
			block.TxCount,
		); err != nil {
			return fmt.Errorf("append block: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
