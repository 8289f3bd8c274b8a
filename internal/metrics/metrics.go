package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"

	ResultQualified    = "qualified"
	ResultNotQualified = "not_qualified"
)

var (
	ApplicationsChecked = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qualifier_applications_checked_total",
			Help: "Total number of submitted applications by validation outcome",
		},
		[]string{"outcome"},
	)

	ValidationErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qualifier_validation_errors_total",
			Help: "Total number of individual field validation errors",
		},
	)

	PositionResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "qualifier_position_results_total",
			Help: "Total number of position evaluations by result",
		},
		[]string{"position", "result"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "qualifier_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)
