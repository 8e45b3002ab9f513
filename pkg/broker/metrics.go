package broker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Consumer outcome labels.
const (
	OutcomeAck        = "ack"
	OutcomeDeadLetter = "dead_letter"
)

var (
	messagesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callsight_consumer_messages_total",
		Help: "Messages handled per stage, by terminal outcome.",
	}, []string{"stage", "outcome"})

	handlerRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "callsight_consumer_retries_total",
		Help: "Transient handler failures that were retried, per stage.",
	}, []string{"stage"})
)
