package metrics

import (
	"time"

	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	driverResolveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanoinsight",
		Subsystem: "chainsync_driver",
		Name:      "resolves_total",
		Help:      "Count of resume point resolutions.",
	}, []string{"network", "status"})

	driverResolveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "chainsync_driver",
		Name:      "resolve_duration_seconds",
		Help:      "Duration of resume point resolution.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	driverResolvePoints = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "chainsync_driver",
		Name:      "resolve_points",
		Help:      "Resume points yielded per resolution.",
		Buckets:   prometheus.LinearBuckets(0, 1, 12),
	}, []string{"network"})

	driverSessionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cardanoinsight",
		Subsystem: "chainsync_driver",
		Name:      "sessions_total",
		Help:      "Count of chain-sync sessions by outcome.",
	}, []string{"network", "status"})

	driverSessionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cardanoinsight",
		Subsystem: "chainsync_driver",
		Name:      "session_duration_seconds",
		Help:      "Duration of chain-sync sessions.",
		Buckets:   []float64{1, 10, 60, 300, 1800, 3600, 21600, 86400},
	}, []string{"network", "status"})
)

// ChainsyncDriver tracks metrics for the sync driver state machine.
type ChainsyncDriver struct {
	network model.Network
}

// NewChainsyncDriver constructs a ChainsyncDriver metrics collector.
func NewChainsyncDriver(network model.Network) *ChainsyncDriver {
	if network == "" {
		network = "unknown"
	}
	return &ChainsyncDriver{network: network}
}

// ObserveResolve records a resume point resolution.
func (m ChainsyncDriver) ObserveResolve(err error, points int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	driverResolveTotal.WithLabelValues(string(m.network), status).Inc()
	driverResolveDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		driverResolvePoints.WithLabelValues(string(m.network)).Observe(float64(points))
	}
}

// ObserveSession records a finished chain-sync session.
func (m ChainsyncDriver) ObserveSession(err error, started time.Time) {
	status := "clean"
	if err != nil {
		status = "fatal"
	}
	driverSessionTotal.WithLabelValues(string(m.network), status).Inc()
	driverSessionDuration.WithLabelValues(string(m.network), status).
		Observe(time.Since(started).Seconds())
}
