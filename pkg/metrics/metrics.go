package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики подбора комнат
	AllocationsTotal *prometheus.CounterVec

	// Метрики персистентности снапшотов
	SnapshotSaveFailures *prometheus.CounterVec
	SnapshotLoadFailures *prometheus.CounterVec

	// Метрики запросов к БД (используются pkg/dbmetrics)
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec
}

// New создает и регистрирует метрики в глобальном регистре Prometheus
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		AllocationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "room_allocations_total",
			Help:        "Room allocation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		SnapshotSaveFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "snapshot_save_failures_total",
			Help:        "Failed snapshot save operations by store",
			ConstLabels: constLabels,
		}, []string{"store"}),

		SnapshotLoadFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "snapshot_load_failures_total",
			Help:        "Failed snapshot load operations by store",
			ConstLabels: constLabels,
		}, []string{"store"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{}),
	}
}

// Метки исходов подбора комнаты
const (
	AllocationOutcomeAllocated = "allocated"
	AllocationOutcomeNoRoom    = "no_room"
	AllocationOutcomeError     = "error"
)

// ObserveAllocation инкрементирует счетчик попыток подбора комнаты
func (m *Metrics) ObserveAllocation(outcome string) {
	if m == nil {
		return
	}
	m.AllocationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveSnapshotSaveFailure инкрементирует счетчик неудачных сохранений снапшота
func (m *Metrics) ObserveSnapshotSaveFailure(store string) {
	if m == nil {
		return
	}
	m.SnapshotSaveFailures.WithLabelValues(store).Inc()
}

// ObserveSnapshotLoadFailure инкрементирует счетчик неудачных загрузок снапшота
func (m *Metrics) ObserveSnapshotLoadFailure(store string) {
	if m == nil {
		return
	}
	m.SnapshotLoadFailures.WithLabelValues(store).Inc()
}
