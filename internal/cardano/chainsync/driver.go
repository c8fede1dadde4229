package chainsync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/pkg/eventqueue"
	"go.uber.org/zap"
)

// Driver orchestrates one synchronization run: resolve resume points, start
// the node session with the configured handler, block until the session
// ends cleanly or fails. A resolver failure, or a session failure other
// than the event queue being closed by the consumer, is fatal for the run.
type Driver struct {
	resolver ResumePointResolver
	session  Session
	handler  Handler
	metrics  DriverMetrics
	logger   *zap.Logger
}

// NewDriver builds a Driver with dependencies.
func NewDriver(
	resolver ResumePointResolver,
	session Session,
	handler Handler,
	metrics DriverMetrics,
	logger *zap.Logger,
) (*Driver, error) {
	if resolver == nil {
		return nil, errors.New("resume point resolver is required")
	}
	if session == nil {
		return nil, errors.New("session is required")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}
	if metrics == nil {
		return nil, errors.New("driver metrics is required")
	}

	return &Driver{
		resolver: resolver,
		session:  session,
		handler:  handler,
		metrics:  metrics,
		logger:   logger.Named("syncDriver"),
	}, nil
}

// Run executes the resolve and sync phases. It returns nil when the session
// ended cleanly or the consumer closed the queue, and an error for every
// fatal condition. The node session is never started without resume points.
func (d *Driver) Run(ctx context.Context) error {
	started := time.Now()
	points, err := d.resolver.ResumePoints(ctx)
	if err == nil && len(points) == 0 {
		err = errors.New("no resume points available")
	}
	d.metrics.ObserveResolve(err, len(points), started)
	if err != nil {
		d.logger.Error("resolving resume points failed", zap.Error(err))
		return fmt.Errorf("resolve resume points: %w", err)
	}

	d.logger.Info("starting chain sync session",
		zap.Uint64("resume_slot", points[0].Slot),
		zap.Int("resume_points", len(points)),
	)

	started = time.Now()
	err = d.session.Run(ctx, points, d.handler)
	d.metrics.ObserveSession(err, started)
	if err != nil {
		if errors.Is(err, eventqueue.ErrClosed) {
			d.logger.Info("event queue closed by consumer, session stopped")
			return nil
		}
		d.logger.Error("chain sync session failed", zap.Error(err))
		return fmt.Errorf("chain sync session: %w", err)
	}

	d.logger.Info("chain sync session ended")
	return nil
}
