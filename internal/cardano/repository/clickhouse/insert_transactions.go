package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// InsertTransactions stores transaction rows in ClickHouse.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.TxRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transactions", firstNetwork(txs), err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	const query = `
INSERT INTO cardano_transactions (
	network,
	slot,
	height,
	block_hash,
	tx_hash,
	idx,
	fee,
	size,
	input_count,
	output_count,
	valid
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Network),
			tx.Slot,
			tx.Height,
			tx.BlockHash,
			tx.TxHash,
			tx.Index,
			tx.Fee,
			tx.Size,
			tx.InputCount,
			tx.OutputCount,
			tx.Valid,
		); err != nil {
			return fmt.Errorf("append transaction: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
