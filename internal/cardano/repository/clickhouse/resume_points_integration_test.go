package clickhouse

import (
	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

func (s *RepositorySuite) TestResumePointsEmptyStoreReturnsOrigin() {
	s.metrics.EXPECT().Observe("resume_points", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	points, err := s.repo.ResumePoints(s.testCtx, model.Mainnet, 10)
	s.Require().NoError(err)
	s.Require().Len(points, 1)
	s.True(points[0].Origin())
}

func (s *RepositorySuite) TestResumePointsMostRecentFirst() {
	blocks := []model.BlockRow{
		newBlockRow(100, 4100, "a"),
		newBlockRow(101, 4120, "b"),
		newBlockRow(102, 4140, "c"),
	}

	s.metrics.EXPECT().Observe("insert_blocks", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("resume_points", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))

	points, err := s.repo.ResumePoints(s.testCtx, model.Mainnet, 10)
	s.Require().NoError(err)
	s.Require().Len(points, 4)

	s.Equal(uint64(4140), points[0].Slot)
	s.Equal(blocks[2].Hash, points[0].Hash)
	s.Equal(uint64(4120), points[1].Slot)
	s.Equal(uint64(4100), points[2].Slot)
	s.True(points[3].Origin())
}

func (s *RepositorySuite) TestResumePointsHonorsLimit() {
	blocks := []model.BlockRow{
		newBlockRow(100, 4100, "a"),
		newBlockRow(101, 4120, "b"),
		newBlockRow(102, 4140, "c"),
	}

	s.metrics.EXPECT().Observe("insert_blocks", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("resume_points", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))

	points, err := s.repo.ResumePoints(s.testCtx, model.Mainnet, 2)
	s.Require().NoError(err)
	s.Require().Len(points, 3)
	s.Equal(uint64(4140), points[0].Slot)
	s.Equal(uint64(4120), points[1].Slot)
	s.True(points[2].Origin())
}
