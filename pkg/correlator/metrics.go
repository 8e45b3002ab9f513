package correlator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pendingTriples = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "callsight_correlator_pending_triples",
		Help: "Calls currently waiting on analysis fragments.",
	})

	triplesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "callsight_correlator_triples_completed_total",
		Help: "Triples assembled and handed to the audit stage.",
	})

	pipelineGaps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "callsight_correlator_pipeline_gaps_total",
		Help: "Partial triples evicted after the TTL with fragments missing.",
	})
)
