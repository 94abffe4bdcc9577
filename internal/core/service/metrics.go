package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stocktrail_mutations_total",
		Help: "Committed ledger mutations by action type.",
	}, []string{"action"})

	conflictRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stocktrail_ledger_conflict_retries_total",
		Help: "Ledger transactions retried after a write conflict.",
	})

	syncDropsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stocktrail_sync_queue_drops_total",
		Help: "Post-commit sync jobs dropped because the queue was full.",
	})
)
