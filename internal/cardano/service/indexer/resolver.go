package indexer

import (
	"context"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/chainsync"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
)

// ResumePointSource adapts stored block positions to the driver's resolver.
type ResumePointSource struct {
	repo    ClickhouseRepository
	network model.Network
	limit   uint64
}

func NewResumePointSource(repo ClickhouseRepository, network model.Network, limit uint64) *ResumePointSource {
	if limit == 0 {
		limit = chainsync.DefaultResumePointLimit
	}
	return &ResumePointSource{repo: repo, network: network, limit: limit}
}

func (s *ResumePointSource) ResumePoints(ctx context.Context) ([]model.Point, error) {
	return s.repo.ResumePoints(ctx, s.network, s.limit)
}
