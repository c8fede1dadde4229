package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ClickhouseRepository interface {
		InsertBlocks(ctx context.Context, blocks []model.BlockRow) error
		InsertTransactions(ctx context.Context, txs []model.TxRow) error
		RollbackAfterSlot(ctx context.Context, network model.Network, slot uint64) error
		ResumePoints(ctx context.Context, network model.Network, limit uint64) ([]model.Point, error)
	}

	// EventSource is the consuming side of the pipeline queue.
	EventSource interface {
		Pop(ctx context.Context) (model.ChainSyncEvent, error)
		Close()
	}

	Metrics interface {
		ObserveApply(kind model.EventKind, err error, started time.Time)
		ObserveFlush(err error, blocks, txs int, started time.Time)
		ObserveRollbackDepth(depth uint64)
	}
)
