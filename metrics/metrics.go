// Package metrics provides Prometheus observability metrics for the meeting scheduler.
// It includes Critical and Important metrics for business and operational visibility.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// CRITICAL METRICS - Business Impact Visibility
// =============================================================================

// MeetingsScheduled tracks meetings in the selected schedule.
var MeetingsScheduled = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "meetings_scheduled",
	Help:      "Number of meetings in the selected schedule",
})

// RequestsUnfulfilled tracks unfulfilled request entries in the selected schedule.
// High values indicate caps that are too tight or requests that do not resolve.
var RequestsUnfulfilled = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "requests_unfulfilled",
	Help:      "Number of request entries without a meeting in the selected schedule",
})

// RequestsByOutcome breaks the selected schedule's request entries down by outcome.
var RequestsByOutcome = factory.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "requests_by_outcome",
	Help:      "Request entries in the selected schedule by outcome",
}, []string{"outcome"})

// MissingSuppliers tracks suppliers absent from the summary mapping.
var MissingSuppliers = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "scheduler",
	Name:      "missing_suppliers",
	Help:      "Suppliers that did not appear in the schedule summaries",
})

// SubstitutionsTotal counts reps removed from a request, by availability reason.
var SubstitutionsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "substitutions_total",
	Help:      "Reps substituted out of a request across all passes",
}, []string{"reason"})

// =============================================================================
// IMPORTANT METRICS - Operational Health
// =============================================================================

// ParserErrorsTotal tracks parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// ParserRecordsTotal tracks records successfully parsed, by input kind.
var ParserRecordsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "records_total",
	Help:      "Total CSV records successfully parsed",
}, []string{"kind"})

// ParserDurationSeconds tracks time to parse input files.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse a CSV input file",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
})

// PassesTotal counts completed scheduling passes.
var PassesTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "scheduler",
	Name:      "passes_total",
	Help:      "Total scheduling passes completed",
})

// PassDurationSeconds tracks the time of a single pass.
var PassDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "scheduler",
	Name:      "pass_duration_seconds",
	Help:      "Time taken by one scheduling pass",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// RunDurationSeconds tracks time to run all seeds and select the best pass.
var RunDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "scheduler",
	Name:      "duration_seconds",
	Help:      "Time taken to run every seed and select the schedule",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
})

// SeedUnfulfilled tracks the spread of unfulfilled counts across seeds.
var SeedUnfulfilled = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "scheduler",
	Name:      "seed_unfulfilled",
	Help:      "Unfulfilled request entries per seed",
	Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetSchedulerGauges resets all scheduler gauges before a new scheduling run.
func ResetSchedulerGauges() {
	MeetingsScheduled.Set(0)
	RequestsUnfulfilled.Set(0)
	MissingSuppliers.Set(0)
	RequestsByOutcome.Reset()
}
