package monitoring

import (
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ticketOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_operations_total",
			Help: "Total ticket lifecycle operations",
		},
		[]string{"operation", "status"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_login_attempts_total",
			Help: "Total admin login attempts",
		},
		[]string{"status"},
	)

	exportDownloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_downloads_total",
			Help: "Total CSV export downloads",
		},
		[]string{"type"},
	)
)

func ObserveTicketOperation(operation string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	ticketOperations.WithLabelValues(operation, status).Inc()
}

func ObserveLogin(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	loginAttempts.WithLabelValues(status).Inc()
}

func ObserveExport(exportType string) {
	exportDownloads.WithLabelValues(exportType).Inc()
}

// StartMetricsServer serves /metrics on a side port, away from the API.
func StartMetricsServer(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(":"+port, mux); err != nil {
		log.Printf("metrics server stopped: %v", err)
	}
}
