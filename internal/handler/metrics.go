package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var planRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "site_plan_requests_total",
		Help: "Total number of AI plan requests by outcome.",
	},
	[]string{"outcome"},
)

const (
	planOutcomeGenerated = "generated"
	planOutcomeFallback  = "fallback"
	planOutcomeInvalid   = "invalid"
)
