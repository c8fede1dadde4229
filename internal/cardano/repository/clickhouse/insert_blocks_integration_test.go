package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

func (s *RepositorySuite) TestInsertBlocks() {
	blocks := []model.BlockRow{
		newBlockRow(100, 4100, "a"),
		newBlockRow(101, 4120, "b"),
	}

	s.metrics.EXPECT().Observe("insert_blocks", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))
	s.Equal(uint64(len(blocks)), s.countRows("cardano_blocks"))
}

func (s *RepositorySuite) TestInsertBlocksEmptySkipsBatch() {
	s.metrics.EXPECT().Observe("insert_blocks", model.Network(""), gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, nil))
	s.Equal(uint64(0), s.countRows("cardano_blocks"))
}
