package chainsync

import (
	"context"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/goodnatureofminers/cardanoinsight-backend/pkg/eventqueue"
)

// StoreFromHeight wraps inner so that transactions of blocks below the
// height threshold are still seen but flagged as not-to-store. Resume and
// RollBackward events pass through untouched, so rollback handling stays
// consistent while the backend skips persistence below the threshold.
func StoreFromHeight(threshold uint64, inner Handler) Handler {
	return HandlerFunc(func(ctx context.Context, event model.ChainSyncEvent) error {
		if event.Kind != model.EventRollForward || event.Block.Height() >= threshold {
			return inner.Handle(ctx, event)
		}

		block := cloneBlock(event.Block)
		for i := range block.Txs {
			block.Txs[i].Options = block.Txs[i].Options.NarrowStore(false)
		}
		return inner.Handle(ctx, model.NewRollForward(block, event.Tip))
	})
}

// FilterTxs wraps inner so RollForward blocks carry only transactions
// accepted by isAccepted, with the store flag of survivors narrowed by
// isStored. Relative transaction order is preserved; Resume and
// RollBackward events pass through untouched. Predicates must be total.
func FilterTxs(isAccepted, isStored func(model.Tx) bool, inner Handler) Handler {
	return HandlerFunc(func(ctx context.Context, event model.ChainSyncEvent) error {
		if event.Kind != model.EventRollForward {
			return inner.Handle(ctx, event)
		}

		block := *event.Block
		block.Txs = make([]model.Tx, 0, len(event.Block.Txs))
		for _, tx := range event.Block.Txs {
			if !isAccepted(tx) {
				continue
			}
			tx.Options = tx.Options.NarrowStore(isStored(tx))
			block.Txs = append(block.Txs, tx)
		}
		return inner.Handle(ctx, model.NewRollForward(&block, event.Tip))
	})
}

// QueueSink is a terminal Handler pushing events onto the queue. It blocks
// the producing session while the queue is full and fails with
// eventqueue.ErrClosed once the consumer has shut the queue down.
func QueueSink(queue *eventqueue.Queue[model.ChainSyncEvent]) Handler {
	return HandlerFunc(func(ctx context.Context, event model.ChainSyncEvent) error {
		return queue.Push(ctx, event)
	})
}

func cloneBlock(b *model.Block) *model.Block {
	block := *b
	block.Txs = make([]model.Tx, len(b.Txs))
	copy(block.Txs, b.Txs)
	return &block
}
