package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/chainsync"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/node"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/service/indexer"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/clock"
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/metrics"
	"github.com/goodnatureofminers/cardanoinsight-backend/pkg/eventqueue"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"CARDANO_INGESTER_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network         model.Network `long:"network" env:"CARDANO_INGESTER_NETWORK" description:"network name" default:"mainnet"`
	NodeSocketPath  string        `long:"node-socket" env:"CARDANO_INGESTER_NODE_SOCKET" description:"node-to-client unix socket path"`
	NodeAddress     string        `long:"node-address" env:"CARDANO_INGESTER_NODE_ADDRESS" description:"node TCP address (host:port)"`
	StoreFromHeight uint64        `long:"store-from-height" env:"CARDANO_INGESTER_STORE_FROM_HEIGHT" description:"persist transaction rows only from this block height"`
	SkipInvalidTxs  bool          `long:"skip-invalid-txs" env:"CARDANO_INGESTER_SKIP_INVALID_TXS" description:"drop phase-2 invalid transactions from the pipeline"`
	SecurityParam   uint64        `long:"security-param" env:"CARDANO_INGESTER_SECURITY_PARAM" description:"protocol security parameter k" default:"2160"`
	QueueCapacity   int           `long:"queue-capacity" env:"CARDANO_INGESTER_QUEUE_CAPACITY" description:"event queue capacity" default:"50"`
	MetricsAddr     string        `long:"metrics-addr" env:"CARDANO_INGESTER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

const fatalFlushGrace = 2 * time.Second

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fatal(logger, fmt.Errorf("parse flags: %w", err))
	}

	if cfg.ClickhouseDSN == "" {
		fatal(logger, errors.New("ClickHouse DSN is required"))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		fatal(logger, err)
	}
	logger.Info("cardano ingester stopped")
}

// fatal is the single exit path for unrecoverable errors: one diagnostic,
// flushed logs, a short grace delay for in-flight scrapes, non-zero exit.
func fatal(logger *zap.Logger, err error) {
	logger.Error("cardano ingester failed", zap.Error(err))
	_ = logger.Sync()
	_ = clock.SleepWithContext(context.Background(), fatalFlushGrace)
	os.Exit(1)
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	return indexer.WithRequirements(indexer.RequirementsConfig{
		ClickhouseDSN:     cfg.ClickhouseDSN,
		RepositoryMetrics: metrics.NewClickhouseRepository(),
		Logger:            logger,
		SecurityParam:     cfg.SecurityParam,
	}, func(reqs *indexer.Requirements) error {
		return runPipeline(ctx, cfg, reqs)
	})
}

func runPipeline(ctx context.Context, cfg config, reqs *indexer.Requirements) error {
	maxSlot, err := reqs.Repository.MaxSlot(ctx, cfg.Network)
	if err != nil {
		return fmt.Errorf("read indexed position: %w", err)
	}
	reqs.Logger.Info("starting from indexed position",
		zap.String("network", string(cfg.Network)),
		zap.Uint64("max_slot", maxSlot),
	)

	queue := eventqueue.New[model.ChainSyncEvent](cfg.QueueCapacity)

	client, err := node.NewClient(node.Config{
		Network:    cfg.Network,
		SocketPath: cfg.NodeSocketPath,
		Address:    cfg.NodeAddress,
	}, metrics.NewNodeClient(cfg.Network), reqs.Logger)
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}

	var handler chainsync.Handler = chainsync.QueueSink(queue)
	if cfg.StoreFromHeight > 0 {
		handler = chainsync.StoreFromHeight(cfg.StoreFromHeight, handler)
	}
	if cfg.SkipInvalidTxs {
		handler = chainsync.FilterTxs(
			func(tx model.Tx) bool { return tx.Valid },
			func(model.Tx) bool { return true },
			handler,
		)
	}

	resolver := indexer.NewResumePointSource(reqs.Repository, cfg.Network, chainsync.DefaultResumePointLimit)
	driver, err := chainsync.NewDriver(resolver, client, handler, metrics.NewChainsyncDriver(cfg.Network), reqs.Logger)
	if err != nil {
		return fmt.Errorf("init sync driver: %w", err)
	}

	consumer, err := indexer.NewIndexer(
		queue,
		reqs.Repository,
		reqs.State,
		metrics.NewIndexer(cfg.Network),
		cfg.Network,
		reqs.SecurityParam,
		reqs.Logger,
	)
	if err != nil {
		return fmt.Errorf("init indexer: %w", err)
	}

	pipelineMetrics := metrics.NewPipeline(cfg.Network)
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				pipelineMetrics.SetQueueDepth(queue.Len())
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Closing the queue ends the consumer's drain loop cleanly once the
		// session is over, however it ended.
		defer queue.Close()
		return driver.Run(gctx)
	})
	g.Go(func() error {
		return consumer.Run(gctx)
	})
	return g.Wait()
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
