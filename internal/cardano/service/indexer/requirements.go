package indexer

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/repository/clickhouse"
	"go.uber.org/zap"
)

// Requirements are the run-scoped resources every part of the pipeline
// depends on: the trace sink, the shared position cell, the storage pool
// and the protocol security parameter.
type Requirements struct {
	Logger        *zap.Logger
	State         *StateCell
	Repository    *clickhouse.Repository
	SecurityParam uint64
}

type RequirementsConfig struct {
	ClickhouseDSN     string
	RepositoryMetrics clickhouse.Metrics
	Logger            *zap.Logger
	SecurityParam     uint64
}

// WithRequirements acquires the run-scoped resources, invokes fn with them,
// and releases everything in reverse order once fn returns. The resources
// must not escape fn.
func WithRequirements(cfg RequirementsConfig, fn func(*Requirements) error) error {
	if cfg.Logger == nil {
		return errors.New("logger is required")
	}
	if cfg.SecurityParam == 0 {
		cfg.SecurityParam = DefaultSecurityParam
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, cfg.RepositoryMetrics)
	if err != nil {
		return fmt.Errorf("acquire clickhouse repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			cfg.Logger.Warn("close clickhouse repository", zap.Error(closeErr))
		}
		_ = cfg.Logger.Sync()
	}()

	return fn(&Requirements{
		Logger:        cfg.Logger,
		State:         NewStateCell(),
		Repository:    repo,
		SecurityParam: cfg.SecurityParam,
	})
}
