package main

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"disarium"
)

// searchMetrics collects per digit count search metrics into a private
// registry, written out as a node exporter textfile at exit.
type searchMetrics struct {
	registry *prometheus.Registry

	duration *prometheus.HistogramVec
	scanned  *prometheus.CounterVec
	found    *prometheus.CounterVec
}

func newSearchMetrics() *searchMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &searchMetrics{
		registry: reg,
		// duration of one digit count search, 1ms to ~1h
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "disarium_digit_count_duration_seconds",
			Help:    "Time spent searching one digit count",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		}, []string{"digits"}),
		scanned: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "disarium_candidates_scanned_total",
			Help: "Candidates tested after range narrowing, by digit count",
		}, []string{"digits"}),
		found: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "disarium_numbers_found_total",
			Help: "Disarium numbers found, by digit count",
		}, []string{"digits"}),
	}
}

// ObserveDigitCount implements disarium.Observer.
func (m *searchMetrics) ObserveDigitCount(s disarium.DigitCountStats) {
	digits := strconv.Itoa(s.DigitCount)
	m.duration.WithLabelValues(digits).Observe(s.Elapsed.Seconds())
	m.scanned.WithLabelValues(digits).Add(float64(s.Scanned))
	m.found.WithLabelValues(digits).Add(float64(s.Found))
}

func (m *searchMetrics) writeTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
