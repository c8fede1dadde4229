package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

func (s *RepositorySuite) TestSyncStatsEmptyStore() {
	s.metrics.EXPECT().Observe("sync_stats", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	stats, err := s.repo.SyncStats(s.testCtx, model.Mainnet)
	s.Require().NoError(err)
	s.Equal(model.SyncStats{}, stats)
}

func (s *RepositorySuite) TestSyncStats() {
	blocks := []model.BlockRow{
		newBlockRow(100, 4100, "a"),
		newBlockRow(101, 4120, "b"),
		newBlockRow(102, 4140, "c"),
	}

	s.metrics.EXPECT().Observe("insert_blocks", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("sync_stats", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))

	stats, err := s.repo.SyncStats(s.testCtx, model.Mainnet)
	s.Require().NoError(err)
	s.Equal(model.SyncStats{Blocks: 3, MaxSlot: 4140, MaxHeight: 102}, stats)
}
