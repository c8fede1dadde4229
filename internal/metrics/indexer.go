package metrics

import (
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerApplyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanoinsight",
		Subsystem: "indexer",
		Name:      "events_applied_total",
		Help:      "Count of pipeline events applied to the backend.",
	}, []string{"network", "kind", "status"})

	indexerApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "indexer",
		Name:      "event_apply_duration_seconds",
		Help:      "Duration of applying one pipeline event.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "kind", "status"})

	indexerFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanoinsight",
		Subsystem: "indexer",
		Name:      "flushes_total",
		Help:      "Count of pending-row flushes.",
	}, []string{"network", "status"})

	indexerFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "indexer",
		Name:      "flush_duration_seconds",
		Help:      "Duration of one pending-row flush.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	indexerFlushRows = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "indexer",
		Name:      "flush_rows",
		Help:      "Rows written per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network", "table"})

	indexerRollbackDepth = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "indexer",
		Name:      "rollback_depth_slots",
		Help:      "Slot depth of chain rollbacks.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"network"})
)

// Indexer tracks metrics for the backend indexer.
type Indexer struct {
	network model.Network
}

// NewIndexer constructs an Indexer metrics collector for a network.
func NewIndexer(network model.Network) *Indexer {
	if network == "" {
		network = "unknown"
	}
	return &Indexer{network: network}
}

// ObserveApply records the outcome and duration of applying one event.
func (m Indexer) ObserveApply(kind model.EventKind, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	indexerApplyTotal.WithLabelValues(string(m.network), kind.String(), status).Inc()
	indexerApplyDuration.WithLabelValues(string(m.network), kind.String(), status).
		Observe(time.Since(started).Seconds())
}

// ObserveFlush records a pending-row flush.
func (m Indexer) ObserveFlush(err error, blocks, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	indexerFlushTotal.WithLabelValues(string(m.network), status).Inc()
	indexerFlushDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	indexerFlushRows.WithLabelValues(string(m.network), "cardano_blocks").Observe(float64(blocks))
	indexerFlushRows.WithLabelValues(string(m.network), "cardano_transactions").Observe(float64(txs))
}

// ObserveRollbackDepth records the slot depth of a rollback.
func (m Indexer) ObserveRollbackDepth(depth uint64) {
	indexerRollbackDepth.WithLabelValues(string(m.network)).Observe(float64(depth))
}
