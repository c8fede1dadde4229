package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

func (s *RepositorySuite) TestRollbackAfterSlot() {
	blocks := []model.BlockRow{
		newBlockRow(100, 4100, "a"),
		newBlockRow(101, 4120, "b"),
		newBlockRow(102, 4140, "c"),
	}
	txs := []model.TxRow{
		newTxRow(100, 4100, 0, "a"),
		newTxRow(101, 4120, 0, "b"),
		newTxRow(102, 4140, 0, "c"),
	}

	s.metrics.EXPECT().Observe("insert_blocks", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_transactions", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("rollback_after_slot", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))
	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))

	s.Require().NoError(s.repo.RollbackAfterSlot(s.testCtx, model.Mainnet, 4120))

	s.Equal(uint64(2), s.countRows("cardano_blocks"))
	s.Equal(uint64(2), s.countRows("cardano_transactions"))
}

func (s *RepositorySuite) TestRollbackAfterSlotLeavesOtherNetworksAlone() {
	mainnet := newBlockRow(100, 4100, "a")
	preprod := newBlockRow(100, 4100, "b")
	preprod.Network = model.Preprod

	s.metrics.EXPECT().Observe("insert_blocks", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("insert_blocks", model.Preprod, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("rollback_after_slot", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.BlockRow{mainnet}))
	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, []model.BlockRow{preprod}))

	s.Require().NoError(s.repo.RollbackAfterSlot(s.testCtx, model.Mainnet, 0))

	s.Equal(uint64(1), s.countRows("cardano_blocks"))
}
