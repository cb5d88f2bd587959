package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Login counters
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simlog_login_total",
			Help: "Total number of login attempts",
		},
	)

	// Registration counters
	RegisterCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "simlog_register_total",
			Help: "Total number of user registrations",
		},
	)

	// Order operation counter
	OrderOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simlog_order_operations_total",
			Help: "Total number of order operations",
		},
		[]string{"operation"}, // operation can be "create", "confirm", "list"
	)

	// Shipment operation counter
	ShipmentOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simlog_shipment_operations_total",
			Help: "Total number of shipment operations",
		},
		[]string{"operation"}, // operation can be "update_status", "list"
	)

	// Catalog operation counter
	CatalogOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simlog_catalog_operations_total",
			Help: "Total number of product and supplier operations",
		},
		[]string{"operation"},
	)

	// Error counters
	WorkflowErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simlog_workflow_errors_total",
			Help: "Total number of workflow errors",
		},
		[]string{"type"}, // type can be "not_found", "unauthorized", "conflict", "validation"
	)

	// Auth error counter
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simlog_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"},
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simlog_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "simlog_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "simlog_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // operation can be "query", "insert", "update", "delete"
	)
)

// Gauge metrics
var (
	// Pending orders
	PendingOrdersGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "simlog_pending_orders",
			Help: "Number of orders currently in pending status",
		},
	)

	// Low stock products
	LowStockGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "simlog_low_stock_products",
			Help: "Number of products at or below their minimum stock level",
		},
	)

	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "simlog_info",
			Help: "Information about the logistics service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(RegisterCounter)
	prometheus.MustRegister(OrderOperationCounter)
	prometheus.MustRegister(ShipmentOperationCounter)
	prometheus.MustRegister(CatalogOperationCounter)
	prometheus.MustRegister(WorkflowErrorCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(HTTPRequestCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	prometheus.MustRegister(PendingOrdersGauge)
	prometheus.MustRegister(LowStockGauge)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// RecordOrderOperation records an order operation
func RecordOrderOperation(operation string) {
	OrderOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordShipmentOperation records a shipment operation
func RecordShipmentOperation(operation string) {
	ShipmentOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordCatalogOperation records a product or supplier operation
func RecordCatalogOperation(operation string) {
	CatalogOperationCounter.With(prometheus.Labels{"operation": operation}).Inc()
}

// RecordWorkflowError records a workflow error by type
func RecordWorkflowError(errorType string) {
	WorkflowErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}
