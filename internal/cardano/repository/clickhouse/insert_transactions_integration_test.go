package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

func (s *RepositorySuite) TestInsertTransactions() {
	txs := []model.TxRow{
		newTxRow(100, 4100, 0, "a"),
		newTxRow(100, 4100, 1, "b"),
		newTxRow(101, 4120, 0, "c"),
	}

	s.metrics.EXPECT().Observe("insert_transactions", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))
	s.Equal(uint64(len(txs)), s.countRows("cardano_transactions"))
}

func (s *RepositorySuite) TestInsertTransactionsEmptySkipsBatch() {
	s.metrics.EXPECT().Observe("insert_transactions", model.Network(""), gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, nil))
	s.Equal(uint64(0), s.countRows("cardano_transactions"))
}
