package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry = prometheus.NewRegistry()

	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_operations_total",
		Help: "Completed relay operations by result source.",
	}, []string{"operation", "source"})

	fallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_fallbacks_total",
		Help: "Provider responses replaced by a fallback result, by decode failure.",
	}, []string{"operation", "reason"})

	providerErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "relay_provider_errors_total",
		Help: "Failed provider calls by failure kind.",
	}, []string{"operation", "kind"})

	providerDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "relay_provider_duration_seconds",
		Help:    "Provider call duration in seconds, retries included.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"operation"})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		operationsTotal,
		fallbacksTotal,
		providerErrorsTotal,
		providerDuration,
	)
}

// IncOperation counts a finished operation; source is "provider" or "fallback".
func IncOperation(operation, source string) {
	operationsTotal.WithLabelValues(operation, source).Inc()
}

// IncFallback counts a fallback substitution.
func IncFallback(operation, reason string) {
	fallbacksTotal.WithLabelValues(operation, reason).Inc()
}

// IncProviderError counts a provider failure.
func IncProviderError(operation, kind string) {
	providerErrorsTotal.WithLabelValues(operation, kind).Inc()
}

// ObserveProviderDuration records how long a provider call took.
func ObserveProviderDuration(operation string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	providerDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
