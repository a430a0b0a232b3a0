// Package metrics holds the prometheus collectors of the analysis pipeline.
// They register on the default registry, which /metrics serves.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "moodscope"

var (
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Completed analyses by overall mood.",
	}, []string{"overall"})

	EmptyInputsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "empty_inputs_total",
		Help:      "Analysis requests rejected because the text was blank.",
	})

	DetectionFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "language_detection_fallbacks_total",
		Help:      "Analyses where language detection fell back to the default language.",
	})

	TranslationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "translations_total",
		Help:      "Translation attempts by source language and result.",
	}, []string{"source", "result"})

	CompoundScore = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "compound_score",
		Help:      "Distribution of VADER compound scores.",
		Buckets:   []float64{-0.75, -0.5, -0.25, -0.05, 0.05, 0.25, 0.5, 0.75, 1},
	})
)

const (
	TranslationSucceeded = "ok"
	TranslationFailed    = "failed"
)
