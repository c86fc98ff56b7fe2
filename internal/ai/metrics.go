package ai

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	aiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_ai_requests_total",
			Help: "Total number of plan generation requests to the AI API.",
		},
		[]string{"client", "model", "status"},
	)
	aiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_ai_request_duration_seconds",
			Help:    "Histogram of AI API request durations.",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"client", "model"},
	)
	aiPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_ai_prompt_tokens",
			Help:    "Histogram of prompt token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 15),
		},
		[]string{"client", "model"},
	)
	aiCompletionTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_ai_completion_tokens",
			Help:    "Histogram of completion token counts.",
			Buckets: prometheus.LinearBuckets(100, 100, 15),
		},
		[]string{"client", "model"},
	)
)

// Значения метки status.
const (
	statusSuccess       = "success"
	statusError         = "error"
	statusTimeout       = "timeout"
	statusEmptyResponse = "error_empty_response"
	statusParseError    = "error_parse"
)

func observeTokens(client, model string, prompt, completion int) {
	if prompt > 0 {
		aiPromptTokens.WithLabelValues(client, model).Observe(float64(prompt))
	}
	if completion > 0 {
		aiCompletionTokens.WithLabelValues(client, model).Observe(float64(completion))
	}
}
