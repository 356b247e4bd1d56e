package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	integrationRequestsTotal *prometheus.CounterVec

	paymentPollsTotal        *prometheus.CounterVec
	paymentTrackResultsTotal *prometheus.CounterVec
}

// New создает и регистрирует метрики в default-регистре
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request processing duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		integrationRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "integration_requests_total",
			Help: "Total number of outgoing requests to external collaborators",
		}, []string{"service", "target", "operation", "result"}),

		paymentPollsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_status_polls_total",
			Help: "Total number of checkout status poll attempts",
		}, []string{"service"}),

		paymentTrackResultsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_track_results_total",
			Help: "Terminal states reached by the payment status tracker",
		}, []string{"service", "state"}),
	}
}

// RecordHTTPRequest фиксирует обработанный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// RecordIntegrationRequest фиксирует исходящий запрос к внешнему сервису
func (m *Metrics) RecordIntegrationRequest(target, operation, result string) {
	m.integrationRequestsTotal.WithLabelValues(m.serviceName, target, operation, result).Inc()
}

// AddPaymentPolls прибавляет количество выполненных опросов статуса оплаты
func (m *Metrics) AddPaymentPolls(n int) {
	m.paymentPollsTotal.WithLabelValues(m.serviceName).Add(float64(n))
}

// RecordPaymentTrackResult фиксирует терминальное состояние трекера оплаты
func (m *Metrics) RecordPaymentTrackResult(state string) {
	m.paymentTrackResultsTotal.WithLabelValues(m.serviceName, state).Inc()
}
