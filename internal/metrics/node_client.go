package metrics

import (
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeConnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanoinsight",
		Subsystem: "node_client",
		Name:      "connects_total",
		Help:      "Count of node connection attempts.",
	}, []string{"network", "status"})

	nodeConnectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "node_client",
		Name:      "connect_duration_seconds",
		Help:      "Duration of node connection attempts.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	nodeSessionEndsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanoinsight",
		Subsystem: "node_client",
		Name:      "session_ends_total",
		Help:      "Count of ended node sessions by outcome.",
	}, []string{"network", "status"})

	nodeSessionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "node_client",
		Name:      "session_duration_seconds",
		Help:      "Lifetime of node sessions.",
		Buckets:   []float64{1, 10, 60, 300, 1800, 3600, 21600, 86400},
	}, []string{"network", "status"})
)

// NodeClient tracks metrics for the Ouroboros node connection.
type NodeClient struct {
	network model.Network
}

// NewNodeClient constructs a NodeClient metrics collector.
func NewNodeClient(network model.Network) *NodeClient {
	if network == "" {
		network = "unknown"
	}
	return &NodeClient{network: network}
}

// ObserveConnect records a connection attempt.
func (m NodeClient) ObserveConnect(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	nodeConnectsTotal.WithLabelValues(string(m.network), status).Inc()
	nodeConnectDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}

// ObserveSessionEnd records the end of a chain-sync session.
func (m NodeClient) ObserveSessionEnd(err error, started time.Time) {
	status := "clean"
	if err != nil {
		status = "error"
	}
	nodeSessionEndsTotal.WithLabelValues(string(m.network), status).Inc()
	nodeSessionDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}
