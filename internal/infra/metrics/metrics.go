package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lushop_purchases_total",
		Help: "Purchase attempts by outcome.",
	},
	[]string{"outcome"},
)
