package metrics

import (
	"github.com/goodnatureofminers/cardanoinsight-backend/internal/cardano/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pipelineQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "cardanoinsight",
	Subsystem: "pipeline",
	Name:      "queue_depth",
	Help:      "Events currently buffered in the pipeline queue.",
}, []string{"network"})

// Pipeline tracks metrics for the event queue between session and indexer.
type Pipeline struct {
	network model.Network
}

// NewPipeline constructs a Pipeline metrics collector.
func NewPipeline(network model.Network) *Pipeline {
	if network == "" {
		network = "unknown"
	}
	return &Pipeline{network: network}
}

// SetQueueDepth records the current queue depth.
func (m Pipeline) SetQueueDepth(depth int) {
	pipelineQueueDepth.WithLabelValues(string(m.network)).Set(float64(depth))
}
