package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "essentia_http_requests_total",
			Help: "Total HTTP requests by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "essentia_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// -------- Negócio --------

	AgendamentosCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "essentia_agendamentos_created_total",
			Help: "Bookings created, by origin (admin, lead, checkout).",
		},
		[]string{"origin"},
	)

	LeadsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "essentia_leads_created_total",
		Help: "Leads captured from public forms.",
	})

	LeadsConverted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "essentia_leads_converted_total",
		Help: "Leads converted into a customer booking.",
	})

	StatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "essentia_status_changes_total",
			Help: "Board status changes by target status.",
		},
		[]string{"status"},
	)

	DashboardCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "essentia_dashboard_cache_total",
			Help: "Dashboard stats cache lookups by result (hit, miss).",
		},
		[]string{"result"},
	)

	BoardClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "essentia_board_ws_clients",
		Help: "Open kanban board websocket connections.",
	})

	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "essentia_uploads_total",
			Help: "Stored uploads by content type.",
		},
		[]string{"content_type"},
	)
)
