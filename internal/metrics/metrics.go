// Package metrics exposes Prometheus instruments for the scoring pipeline.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/irfndi/opportunity-scoring/internal/utils"
)

const namespace = "opportunity_scoring"

// Failure reasons recorded on AnalysisFailures.
const (
	ReasonValidation = "validation"
	ReasonCanceled   = "canceled"
	ReasonOther      = "other"
)

// PipelineMetrics holds the pipeline instruments. A nil *PipelineMetrics is valid
// and records nothing.
type PipelineMetrics struct {
	AnalysesCompleted *prometheus.CounterVec
	AnalysisFailures  *prometheus.CounterVec
	VerdictsReplaced  prometheus.Counter
	StageDuration     *prometheus.HistogramVec
	SuccessScore      prometheus.Histogram
}

// New registers the pipeline instruments on reg. Registering twice on the same
// registerer panics, as promauto does.
func New(reg prometheus.Registerer) *PipelineMetrics {
	factory := promauto.With(reg)
	return &PipelineMetrics{
		AnalysesCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_completed_total",
				Help:      "Total number of completed market analyses by final verdict",
			},
			[]string{"recommendation"},
		),
		AnalysisFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analysis_failures_total",
				Help:      "Total number of rejected market analyses",
			},
			[]string{"reason"},
		),
		VerdictsReplaced: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "verdicts_replaced_total",
				Help:      "Analyses whose supplied verdict was missing or unknown",
			},
		),
		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of one pipeline stage in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"stage"},
		),
		SuccessScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "success_score",
				Help:      "Distribution of computed success scores",
				Buckets:   prometheus.LinearBuckets(10, 10, 9),
			},
		),
	}
}

// ObserveStage records how long one stage took.
func (m *PipelineMetrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// RecordCompleted counts a finished analysis.
func (m *PipelineMetrics) RecordCompleted(recommendation string, successScore int, verdictReplaced bool) {
	if m == nil {
		return
	}
	m.AnalysesCompleted.WithLabelValues(recommendation).Inc()
	m.SuccessScore.Observe(float64(successScore))
	if verdictReplaced {
		m.VerdictsReplaced.Inc()
	}
}

// RecordFailure counts a rejected analysis, classifying err.
func (m *PipelineMetrics) RecordFailure(err error) {
	if m == nil || err == nil {
		return
	}
	reason := ReasonOther
	switch {
	case utils.IsValidationError(err):
		reason = ReasonValidation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		reason = ReasonCanceled
	}
	m.AnalysisFailures.WithLabelValues(reason).Inc()
}
