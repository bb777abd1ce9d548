package metrics

import "github.com/prometheus/client_golang/prometheus"

// Métricas Prometheus del servicio
var (
	ScansTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbox_scans_total",
			Help: "Total de escaneos QR recibidos, por variante y resultado",
		},
		[]string{"variant", "outcome"},
	)

	ActuationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbox_actuations_total",
			Help: "Total de comandos TOGGLE enviados al dispositivo",
		},
		[]string{"result"},
	)

	ActuationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "smartbox_actuation_duration_seconds",
			Help:    "Duración del round-trip con el ESP32",
			Buckets: prometheus.DefBuckets,
		},
	)

	GPSReportsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "smartbox_gps_reports_total",
			Help: "Total de reportes GPS recibidos del dispositivo",
		},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbox_notifications_total",
			Help: "Total de emails de notificación enviados",
		},
		[]string{"result"},
	)
)

// Register registra todas las métricas en el registry por defecto
func Register() {
	prometheus.MustRegister(ScansTotal)
	prometheus.MustRegister(ActuationsTotal)
	prometheus.MustRegister(ActuationDuration)
	prometheus.MustRegister(GPSReportsTotal)
	prometheus.MustRegister(NotificationsTotal)
}
