package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOk         = "ok"
	ResultInputError = "input_error"
	ResultError      = "error"
)

// Registry holds the prometheus collectors for portfolio calculations and
// the HTTP surface in front of them
type Registry struct {
	CalculationDuration *prometheus.HistogramVec
	Calculations        *prometheus.CounterVec
	SeriesLength        prometheus.Histogram
	HttpRequests        *prometheus.CounterVec
}

// NewRegistry creates the collectors and registers them with reg
func NewRegistry(reg prometheus.Registerer) *Registry {
	r := &Registry{
		CalculationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "etfbuilder_calculation_duration_seconds",
				Help:    "Duration of portfolio calculations including catalog lookup",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"result"},
		),
		Calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etfbuilder_calculations_total",
				Help: "Total number of portfolio calculations by result",
			},
			[]string{"result"},
		),
		SeriesLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "etfbuilder_series_length",
				Help:    "Number of monthly periods in calculated value series",
				Buckets: prometheus.LinearBuckets(12, 24, 10),
			},
		),
		HttpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "etfbuilder_http_requests_total",
				Help: "Total number of HTTP requests by route, method and status",
			},
			[]string{"route", "method", "status"},
		),
	}

	reg.MustRegister(
		r.CalculationDuration,
		r.Calculations,
		r.SeriesLength,
		r.HttpRequests,
	)

	return r
}

func (r *Registry) ObserveCalculation(result string, elapsed time.Duration, seriesLength int) {
	r.Calculations.WithLabelValues(result).Inc()
	r.CalculationDuration.WithLabelValues(result).Observe(elapsed.Seconds())
	if result == ResultOk {
		r.SeriesLength.Observe(float64(seriesLength))
	}
}
