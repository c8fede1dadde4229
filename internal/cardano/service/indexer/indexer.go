package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/goodnatureofminers/cardanoinsight-backend/pkg/eventqueue"
	"github.com/goodnatureofminers/cardanoinsight-backend/pkg/safe"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Indexer drains the pipeline queue in order and applies backend effects:
// batched block/transaction inserts for roll-forwards, row deletion for
// rollbacks. Any backend failure ends the run.
type Indexer struct {
	source         EventSource
	repo           ClickhouseRepository
	state          *StateCell
	metrics        Metrics
	logger         *zap.Logger
	network           model.Network
	securityParam     uint64
	rollbackWarnSlots uint64
	flushThreshold    int
	limiter           ratelimit.Limiter

	pendingBlocks []model.BlockRow
	pendingTxs    []model.TxRow
}

func NewIndexer(
	source EventSource,
	repo ClickhouseRepository,
	state *StateCell,
	metrics Metrics,
	network model.Network,
	securityParam uint64,
	logger *zap.Logger,
) (*Indexer, error) {
	if source == nil {
		return nil, errors.New("event source is required")
	}
	if repo == nil {
		return nil, errors.New("clickhouse repository is required")
	}
	if state == nil {
		return nil, errors.New("state cell is required")
	}
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}
	if securityParam == 0 {
		securityParam = DefaultSecurityParam
	}

	return &Indexer{
		source:            source,
		repo:              repo,
		state:             state,
		metrics:           metrics,
		logger:            logger.With(zap.String("network", string(network))),
		network:           network,
		securityParam:     securityParam,
		rollbackWarnSlots: securityParam * slotsPerBlockEstimate,
		flushThreshold:    defaultFlushThreshold,
		limiter:           ratelimit.New(defaultFlushesPerSecond),
	}, nil
}

// Run consumes events until the queue closes or a backend effect fails.
// A closed queue is the clean end of the stream: remaining rows are
// flushed and Run returns nil. On a backend failure Run closes the queue,
// which stops the producing session, and returns the failure.
func (ix *Indexer) Run(ctx context.Context) error {
	for {
		event, err := ix.source.Pop(ctx)
		if err != nil {
			if errors.Is(err, eventqueue.ErrClosed) {
				return ix.flush(ctx)
			}
			return err
		}

		started := time.Now()
		err = ix.apply(ctx, event)
		ix.metrics.ObserveApply(event.Kind, err, started)
		if err != nil {
			ix.source.Close()
			return fmt.Errorf("apply %s event: %w", event.Kind, err)
		}
	}
}

func (ix *Indexer) apply(ctx context.Context, event model.ChainSyncEvent) error {
	switch event.Kind {
	case model.EventResume:
		return ix.applyResume(ctx, event)
	case model.EventRollForward:
		return ix.applyRollForward(ctx, event)
	case model.EventRollBackward:
		return ix.applyRollBackward(ctx, event)
	default:
		return fmt.Errorf("unknown event kind %d", event.Kind)
	}
}

func (ix *Indexer) applyResume(ctx context.Context, event model.ChainSyncEvent) error {
	if err := ix.flush(ctx); err != nil {
		return err
	}

	ix.state.Resume(event.Point)
	ix.logger.Info("resumed chain synchronization", zap.Stringer("point", event.Point))
	return nil
}

func (ix *Indexer) applyRollForward(ctx context.Context, event model.ChainSyncEvent) error {
	block := event.Block
	if block == nil {
		return errors.New("roll forward event without block")
	}

	txCount, err := safe.Uint32(len(block.Txs))
	if err != nil {
		return fmt.Errorf("block %d tx count: %w", block.Height(), err)
	}

	ix.pendingBlocks = append(ix.pendingBlocks, model.BlockRow{
		Network:  ix.network,
		Slot:     block.Point().Slot,
		Height:   block.Height(),
		Hash:     block.Point().Hash,
		PrevHash: block.PrevHash,
		Era:      block.Era,
		BodySize: block.BodySize,
		TxCount:  txCount,
	})
	for i, tx := range block.Txs {
		if !tx.Options.StoreTx() {
			continue
		}
		idx, err := safe.Uint32(i)
		if err != nil {
			return fmt.Errorf("block %d tx index: %w", block.Height(), err)
		}
		ix.pendingTxs = append(ix.pendingTxs, model.TxRow{
			Network:     ix.network,
			Slot:        block.Point().Slot,
			Height:      block.Height(),
			BlockHash:   block.Point().Hash,
			TxHash:      tx.Hash,
			Index:       idx,
			Fee:         tx.Fee,
			Size:        tx.Size,
			InputCount:  tx.InputCount,
			OutputCount: tx.OutputCount,
			Valid:       tx.Valid,
		})
	}

	ix.state.Advance(block.Point(), block.Height(), event.Tip)

	atTip := block.Point() == event.Tip.Point
	if len(ix.pendingBlocks) >= ix.flushThreshold || atTip {
		return ix.flush(ctx)
	}
	return nil
}

func (ix *Indexer) applyRollBackward(ctx context.Context, event model.ChainSyncEvent) error {
	if err := ix.flush(ctx); err != nil {
		return err
	}

	prev := ix.state.Snapshot().Point
	if prev.Slot > event.Point.Slot {
		depth := prev.Slot - event.Point.Slot
		ix.metrics.ObserveRollbackDepth(depth)
		if depth > ix.rollbackWarnSlots {
			ix.logger.Warn("rollback deeper than security horizon",
				zap.Uint64("depth_slots", depth),
				zap.Uint64("horizon_slots", ix.rollbackWarnSlots),
				zap.Uint64("security_param", ix.securityParam),
			)
		}
	}

	if err := ix.repo.RollbackAfterSlot(ctx, ix.network, event.Point.Slot); err != nil {
		return err
	}

	ix.state.Rollback(event.Point, event.Tip)
	ix.logger.Info("rolled back", zap.Stringer("point", event.Point), zap.Uint64("tip_slot", event.Tip.Point.Slot))
	return nil
}

// flush persists pending rows. Transactions land before blocks so that a
// stored block row always implies its transactions are stored, which the
// resume points query relies on.
func (ix *Indexer) flush(ctx context.Context) error {
	if len(ix.pendingBlocks) == 0 && len(ix.pendingTxs) == 0 {
		return nil
	}

	ix.limiter.Take()

	started := time.Now()
	err := ix.repo.InsertTransactions(ctx, ix.pendingTxs)
	if err == nil {
		err = ix.repo.InsertBlocks(ctx, ix.pendingBlocks)
	}
	ix.metrics.ObserveFlush(err, len(ix.pendingBlocks), len(ix.pendingTxs), started)
	if err != nil {
		return err
	}

	ix.pendingBlocks = ix.pendingBlocks[:0]
	ix.pendingTxs = ix.pendingTxs[:0]
	return nil
}
