package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server's collectors on a private registry.
type metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	duration    prometheus.Histogram
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &metrics{
		registry: registry,
		generations: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "gameforge_generations_total",
				Help: "Total number of generation requests, partitioned by template and result status.",
			},
			[]string{"template", "status"},
		),
		duration: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "gameforge_generation_duration_seconds",
				Help:    "Time spent generating a project.",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *metrics) observeGeneration(templateID, status string, elapsed time.Duration) {
	m.generations.WithLabelValues(templateID, status).Inc()
	m.duration.Observe(elapsed.Seconds())
}
