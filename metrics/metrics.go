package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry guarda só os coletores da aplicação (mais o de processo/go).
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Requisições HTTP em andamento.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total de requisições HTTP atendidas.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duração das requisições HTTP.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "path"},
	)

	rateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "rate_limited_total",
			Help:      "Requisições recusadas pelo limite de taxa.",
		},
	)

	dbUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "db",
			Name:      "up",
			Help:      "1 quando o último ping no banco respondeu.",
		},
	)

	dbConnections = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "db",
			Name:      "connections",
			Help:      "Conexões do pool por estado.",
		},
		[]string{"state"},
	)

	entityWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "marketplace",
			Subsystem: "store",
			Name:      "writes_total",
			Help:      "Escritas concluídas por recurso e operação.",
		},
		[]string{"resource", "operation"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		rateLimited,
		dbUp,
		dbConnections,
		entityWrites,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler expõe o registry no formato texto do prometheus.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

func IncInFlight() {
	httpInFlight.Inc()
}

func DecInFlight() {
	httpInFlight.Dec()
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordRateLimited() {
	rateLimited.Inc()
}

// RecordWrite conta criações, atualizações e remoções feitas com sucesso.
func RecordWrite(resource, operation string) {
	entityWrites.WithLabelValues(resource, operation).Inc()
}

func SetDBUp(up bool) {
	if up {
		dbUp.Set(1)
		return
	}
	dbUp.Set(0)
}

func SetDBConnections(open, inUse int) {
	dbConnections.WithLabelValues("open").Set(float64(open))
	dbConnections.WithLabelValues("in_use").Set(float64(inUse))
}
