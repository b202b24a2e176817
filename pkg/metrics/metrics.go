package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор Prometheus коллекторов сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передается nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	spotOperations    *prometheus.CounterVec
	branchUnits       *prometheus.GaugeVec
	notifications     *prometheus.CounterVec
	notificationQueue prometheus.Gauge
	passOperations    *prometheus.CounterVec
}

// New создает и регистрирует коллекторы в собственном реестре
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "route"}),
		spotOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_spot_operations_total",
			Help:        "Spot registry operations by operation, spot type and result",
			ConstLabels: constLabels,
		}, []string{"operation", "spot_type", "result"}),
		branchUnits: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "parking_branch_units",
			Help:        "Dashboard counters per branch: available car spots, free bike slots, occupied units",
			ConstLabels: constLabels,
		}, []string{"branch", "kind"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservation_notifications_total",
			Help:        "Notifications to the remote reservation service by kind and result",
			ConstLabels: constLabels,
		}, []string{"kind", "result"}),
		notificationQueue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "reservation_notification_queue_length",
			Help:        "Notifications waiting in the dispatcher queue",
			ConstLabels: constLabels,
		}),
		passOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "parking_pass_operations_total",
			Help:        "Pass operations by operation and result",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.spotOperations,
		m.branchUnits,
		m.notifications,
		m.notificationQueue,
		m.passOperations,
	)

	return m
}

// Handler возвращает HTTP handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncSpotOperation учитывает операцию над местом (reserve, cancel, extend)
func (m *Metrics) IncSpotOperation(operation, spotType, result string) {
	if m == nil {
		return
	}
	m.spotOperations.WithLabelValues(operation, spotType, result).Inc()
}

// SetBranchUnits обновляет счетчики дашборда филиала
func (m *Metrics) SetBranchUnits(branch string, availableCars, availableBikeSlots, occupied int) {
	if m == nil {
		return
	}
	m.branchUnits.WithLabelValues(branch, "available_car_spots").Set(float64(availableCars))
	m.branchUnits.WithLabelValues(branch, "available_bike_slots").Set(float64(availableBikeSlots))
	m.branchUnits.WithLabelValues(branch, "occupied_units").Set(float64(occupied))
}

// IncNotification учитывает результат отправки уведомления
func (m *Metrics) IncNotification(kind, result string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind, result).Inc()
}

// SetNotificationQueueLength обновляет длину очереди уведомлений
func (m *Metrics) SetNotificationQueueLength(n int) {
	if m == nil {
		return
	}
	m.notificationQueue.Set(float64(n))
}

// IncPassOperation учитывает операцию над абонементом
func (m *Metrics) IncPassOperation(operation, result string) {
	if m == nil {
		return
	}
	m.passOperations.WithLabelValues(operation, result).Inc()
}
