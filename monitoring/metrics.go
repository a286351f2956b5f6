// Package monitoring exposes prediction metrics and a websocket event feed.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PredictionsTotal counts served predictions by model and predicted label.
	PredictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "studentrisk",
		Name:      "predictions_total",
		Help:      "Predictions served, by model and predicted label.",
	}, []string{"model", "label"})

	// ValidationFailures counts requests rejected by input validation.
	ValidationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "studentrisk",
		Name:      "validation_failures_total",
		Help:      "Prediction requests rejected by input validation.",
	})

	// CacheHits counts predictions answered from the memoization cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "studentrisk",
		Name:      "prediction_cache_hits_total",
		Help:      "Predictions served from the in-process cache.",
	})

	// PredictLatency observes end-to-end prediction duration in seconds.
	PredictLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "studentrisk",
		Name:      "predict_duration_seconds",
		Help:      "Time spent validating, scoring and explaining one request.",
		Buckets:   prometheus.DefBuckets,
	})

	// ModelReloads counts successful artifact hot reloads.
	ModelReloads = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "studentrisk",
		Name:      "model_reloads_total",
		Help:      "Successful model artifact reloads.",
	})
)
