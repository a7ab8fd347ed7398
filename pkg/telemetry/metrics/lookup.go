// Package metrics exposes Prometheus instrumentation for the translation
// engine and its rule repositories.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcomes reported on the lookups counter.
const (
	OutcomeMatch    = "match"    // a candidate rule won
	OutcomeFallback = "fallback" // the identity rule was synthesized
)

// LookupMetrics tracks translate-call behavior.
//
// Metrics:
//   - rosetta_engine_lookups_total: translate calls by outcome
//   - rosetta_engine_lookup_duration_seconds: translate call duration
//   - rosetta_engine_guard_errors_total: guard expressions skipped as malformed
//   - rosetta_engine_missing_arguments_total: placeholder substitutions
//     without a corresponding argument
//   - rosetta_lexicon_reloads_total: repository reloads by result
//
// All methods are nil-safe so the engine can run without a registry.
type LookupMetrics struct {
	lookupsTotal     *prometheus.CounterVec
	lookupDuration   prometheus.Histogram
	guardErrorsTotal prometheus.Counter
	missingArgsTotal prometheus.Counter
	reloadsTotal     *prometheus.CounterVec
}

// Options names the metric namespace and subsystem.
type Options struct {
	Namespace string
	Subsystem string
}

// NewLookupMetrics creates and registers lookup metrics with the provided
// registry.
func NewLookupMetrics(opts Options, registry *prometheus.Registry) *LookupMetrics {
	if opts.Namespace == "" {
		opts.Namespace = "rosetta"
	}
	if opts.Subsystem == "" {
		opts.Subsystem = "engine"
	}

	m := &LookupMetrics{
		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "lookups_total",
				Help:      "Total number of translate calls by outcome",
			},
			[]string{"outcome"},
		),

		lookupDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "lookup_duration_seconds",
				Help:      "Duration of translate calls in seconds",
				// Lookups are in-memory computations (< 1ms)
				Buckets: prometheus.ExponentialBuckets(0.000001, 2, 12), // 1µs to 2ms
			},
		),

		guardErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "guard_errors_total",
				Help:      "Total number of rules skipped because their guard expression was malformed",
			},
		),

		missingArgsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: opts.Subsystem,
				Name:      "missing_arguments_total",
				Help:      "Total number of placeholder substitutions with no corresponding argument",
			},
		),

		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: opts.Namespace,
				Subsystem: "lexicon",
				Name:      "reloads_total",
				Help:      "Total number of rule repository reloads by result",
			},
			[]string{"result"},
		),
	}

	if registry != nil {
		registry.MustRegister(
			m.lookupsTotal,
			m.lookupDuration,
			m.guardErrorsTotal,
			m.missingArgsTotal,
			m.reloadsTotal,
		)
	}

	return m
}

// ObserveLookup records one translate call.
func (m *LookupMetrics) ObserveLookup(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.lookupsTotal.WithLabelValues(outcome).Inc()
	m.lookupDuration.Observe(duration.Seconds())
}

// IncGuardError records a rule skipped for a malformed guard.
func (m *LookupMetrics) IncGuardError() {
	if m == nil {
		return
	}
	m.guardErrorsTotal.Inc()
}

// IncMissingArgument records a placeholder with no matching argument.
func (m *LookupMetrics) IncMissingArgument() {
	if m == nil {
		return
	}
	m.missingArgsTotal.Inc()
}

// ObserveReload records a repository reload result ("success" or "error").
func (m *LookupMetrics) ObserveReload(result string) {
	if m == nil {
		return
	}
	m.reloadsTotal.WithLabelValues(result).Inc()
}
