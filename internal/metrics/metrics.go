// metrics содержит Prometheus-коллекторы сервиса сессий.
//
// Коллекторы регистрируются в переданном Registerer, а не в глобальном
// реестре, поэтому в тестах каждый экземпляр независим.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "session_service"

// Metrics — набор коллекторов HTTP-слоя и операций аутентификации.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	auth     *prometheus.CounterVec
	swept    prometheus.Counter
	gatherer prometheus.Gatherer
}

// New создаёт коллекторы в собственном реестре (вместе с go/process коллекторами).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return NewWithRegistry(reg, reg)
}

// NewWithRegistry регистрирует коллекторы в reg; g используется для /metrics.
func NewWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		auth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "auth_operations_total",
			Help:      "Authentication operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		swept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expired_slots_cleared_total",
			Help:      "Expired refresh slots cleared by the janitor.",
		}),
		gatherer: g,
	}

	reg.MustRegister(m.requests, m.duration, m.auth, m.swept)

	return m
}

// ObserveHTTP учитывает завершённый HTTP-запрос.
// route — шаблон маршрута chi (например, /api/v1/users/login), а не сырой путь.
func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if route == "" {
		route = "unmatched"
	}

	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// AuthOutcome учитывает результат операции (login, refresh, ...).
func (m *Metrics) AuthOutcome(operation, outcome string) {
	m.auth.WithLabelValues(operation, outcome).Inc()
}

// SlotsCleared учитывает слоты, очищенные фоновой задачей.
func (m *Metrics) SlotsCleared(n int64) {
	if n > 0 {
		m.swept.Add(float64(n))
	}
}

// Handler отдаёт метрики в формате Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
