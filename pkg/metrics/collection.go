// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	phaseElapsedTime prometheus.HistogramVec
	slowPhases       prometheus.CounterVec
	pairingsCreated  prometheus.CounterVec
	colorAssignments prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)

	//nolint:promlinter
	phaseElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ab_arena_pairing_phase_elapsed_time_ms",
			Help:    "A histogram of pairing phases elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}, []string{"phase"})
	slowPhases := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_arena_pairing_slow_phases_total",
			Help: "Number of pairing phases that exceeded their time budget",
		}, []string{"phase"})
	pairingsCreated := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_arena_pairing_pairings_created_total",
			Help: "Number of pairings created per strategy",
		}, []string{"strategy"})
	colorAssignments := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_arena_pairing_color_assignments_total",
			Help: "Number of colors assigned per assignment mode",
		}, []string{"mode"})

	return prometheusMetrics{
		phaseElapsedTime: *phaseElapsedTime,
		slowPhases:       *slowPhases,
		pairingsCreated:  *pairingsCreated,
		colorAssignments: *colorAssignments,
	}
}

func (metrics prometheusMetrics) AddPhaseElapsedTimeMs(phase string, elapsedTime time.Duration) {
	metrics.phaseElapsedTime.With(prometheus.Labels{"phase": phase}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddSlowPhase(phase string) {
	metrics.slowPhases.With(prometheus.Labels{"phase": phase}).Inc()
}

func (metrics prometheusMetrics) AddPairingsCreated(strategy string, count int) {
	metrics.pairingsCreated.With(prometheus.Labels{"strategy": strategy}).Add(float64(count))
}

func (metrics prometheusMetrics) AddColorAssignment(mode string, count int) {
	metrics.colorAssignments.With(prometheus.Labels{"mode": mode}).Add(float64(count))
}
