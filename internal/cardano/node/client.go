// Package node wraps the Ouroboros chain-sync client: connection lifecycle
// and the adapter translating node-native callbacks into pipeline events.
package node

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	ouroboros "github.com/blinklabs-io/gouroboros"
	gchainsync "github.com/blinklabs-io/gouroboros/protocol/chainsync"
	ocommon "github.com/blinklabs-io/gouroboros/protocol/common"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/chainsync"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"go.uber.org/zap"
)

const (
	defaultPipelineLimit = 50
	defaultBlockTimeout  = 10 * time.Second
)

type (
	// Metrics records node connection outcomes.
	Metrics interface {
		ObserveConnect(err error, started time.Time)
		ObserveSessionEnd(err error, started time.Time)
	}
)

// Config describes how to reach the node. Exactly one of SocketPath and
// Address must be set.
type Config struct {
	Network       model.Network
	SocketPath    string
	Address       string
	PipelineLimit int
	BlockTimeout  time.Duration
}

// Client runs chain-sync sessions against a Cardano node over the
// node-to-client protocol. Events are delivered to the session handler on
// the protocol's calling context, so a slow handler throttles the session.
type Client struct {
	cfg     Config
	metrics Metrics
	logger  *zap.Logger
}

// NewClient validates the config and builds a Client.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if (cfg.SocketPath == "") == (cfg.Address == "") {
		return nil, errors.New("exactly one of socket path and address is required")
	}
	if _, err := cfg.Network.Magic(); err != nil {
		return nil, err
	}
	if metrics == nil {
		return nil, errors.New("node metrics is required")
	}
	if cfg.PipelineLimit <= 0 {
		cfg.PipelineLimit = defaultPipelineLimit
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = defaultBlockTimeout
	}

	return &Client{
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("nodeClient").With(zap.String("network", string(cfg.Network))),
	}, nil
}

// Run starts a chain-sync session from the given resume points and blocks
// until the session ends. The first handler error (including a closed event
// queue) is returned in preference to the transport error it caused.
func (c *Client) Run(ctx context.Context, resumePoints []model.Point, handler chainsync.Handler) (err error) {
	if len(resumePoints) == 0 {
		return errors.New("resume points are required")
	}

	magic, err := c.cfg.Network.Magic()
	if err != nil {
		return err
	}

	sessionStarted := time.Now()
	defer func() {
		c.metrics.ObserveSessionEnd(err, sessionStarted)
	}()

	sh := &sessionHandler{ctx: ctx, handler: handler}
	conn, err := ouroboros.NewConnection(
		ouroboros.WithNetworkMagic(magic),
		ouroboros.WithNodeToNode(false),
		ouroboros.WithKeepAlive(true),
		ouroboros.WithChainSyncConfig(gchainsync.NewConfig(
			gchainsync.WithRollForwardFunc(sh.rollForward),
			gchainsync.WithRollBackwardFunc(sh.rollBackward),
			gchainsync.WithPipelineLimit(c.cfg.PipelineLimit),
			gchainsync.WithBlockTimeout(c.cfg.BlockTimeout),
		)),
	)
	if err != nil {
		c.metrics.ObserveConnect(err, sessionStarted)
		return fmt.Errorf("create node connection: %w", err)
	}

	proto, addr := c.dialTarget()
	if err := conn.Dial(proto, addr); err != nil {
		c.metrics.ObserveConnect(err, sessionStarted)
		return fmt.Errorf("dial node %s %s: %w", proto, addr, err)
	}
	c.metrics.ObserveConnect(nil, sessionStarted)
	defer func() {
		_ = conn.Close()
	}()
	c.logger.Info("connected to node", zap.String("proto", proto), zap.String("addr", addr))

	// The session (re)starts from the first resolved point.
	if err := handler.Handle(ctx, model.NewResume(resumePoints[0])); err != nil {
		return fmt.Errorf("emit resume event: %w", err)
	}

	points := make([]ocommon.Point, 0, len(resumePoints))
	for _, p := range resumePoints {
		np, convErr := chainsync.PointToNode(p)
		if convErr != nil {
			return fmt.Errorf("convert resume point: %w", convErr)
		}
		points = append(points, np)
	}

	if err := conn.ChainSync().Client.Sync(points); err != nil {
		return fmt.Errorf("start chain sync: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case sessionErr := <-conn.ErrorChan():
		if cause := sh.cause(); cause != nil {
			return cause
		}
		if sessionErr != nil {
			return fmt.Errorf("node session: %w", sessionErr)
		}
		return nil
	}
}

func (c *Client) dialTarget() (string, string) {
	if c.cfg.SocketPath != "" {
		return "unix", c.cfg.SocketPath
	}
	return "tcp", c.cfg.Address
}

// sessionHandler bridges gouroboros callbacks to the pipeline Handler and
// remembers the first handler error, which otherwise only surfaces as a
// generic protocol shutdown on the connection error channel.
type sessionHandler struct {
	ctx     context.Context
	handler chainsync.Handler

	mu  sync.Mutex
	err error
}

func (s *sessionHandler) record(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()
}

func (s *sessionHandler) cause() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *sessionHandler) rollForward(_ gchainsync.CallbackContext, _ uint, blockData any, tip gchainsync.Tip) error {
	event, err := chainsync.RollForwardEvent(blockData, tip)
	if err != nil {
		s.record(err)
		return err
	}
	if err := s.handler.Handle(s.ctx, event); err != nil {
		s.record(err)
		return err
	}
	return nil
}

func (s *sessionHandler) rollBackward(_ gchainsync.CallbackContext, point ocommon.Point, tip gchainsync.Tip) error {
	if err := s.handler.Handle(s.ctx, chainsync.RollBackwardEvent(point, tip)); err != nil {
		s.record(err)
		return err
	}
	return nil
}
