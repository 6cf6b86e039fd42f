// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package metrics defines the Prometheus instrumentation emitted by the
// reader and evaluator.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters and histograms recorded while reading and
// evaluating expressions. All metrics are registered against the registry
// supplied to New; callers that don't need a /metrics endpoint can pass
// prometheus.NewRegistry() and discard it.
type Metrics struct {
	ParseTotal   *prometheus.CounterVec
	EvalTotal    *prometheus.CounterVec
	EvalDuration prometheus.Histogram
	EnvDepth     prometheus.Gauge
}

// New creates and registers the metrics against reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		ParseTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dial_parse_total",
			Help: "Total number of top-level expressions read, by outcome.",
		}, []string{"outcome"}),
		EvalTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dial_eval_total",
			Help: "Total number of top-level evaluations, by outcome.",
		}, []string{"outcome"}),
		EvalDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dial_eval_duration_seconds",
			Help:    "Latency of a single top-level evaluation.",
			Buckets: prometheus.DefBuckets,
		}),
		EnvDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dial_env_depth",
			Help: "Depth of the lexical environment chain for the most recent evaluation.",
		}),
	}

	return m
}

// RecordParse records the outcome of a single read. outcome is one of
// "ok", "unclosed_paren", "unexpected_close", or "unexpected_eoi".
func (m *Metrics) RecordParse(outcome string) {
	if m == nil {
		return
	}
	m.ParseTotal.WithLabelValues(outcome).Inc()
}

// RecordEval records the outcome and latency of a single top-level
// evaluation. outcome is "ok" or "error".
func (m *Metrics) RecordEval(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.EvalTotal.WithLabelValues(outcome).Inc()
	m.EvalDuration.Observe(elapsed.Seconds())
}

// RecordEnvDepth records depth, the number of frames between an
// environment and the root (env.Environment.Depth); the REPL passes the
// depth of the environment it evaluated the most recent line in.
func (m *Metrics) RecordEnvDepth(depth int) {
	if m == nil {
		return
	}
	m.EnvDepth.Set(float64(depth))
}
