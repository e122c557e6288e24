package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// GatewayOutcomesTotal counts classified gateway responses. code is a
	// known vendor code, "unrecognized", or a transport marker
	// (transport_error, http_error, decode_error, circuit_open).
	GatewayOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mpesa",
			Subsystem: "c2b",
			Name:      "outcomes_total",
			Help:      "Total C2B payment outcomes by response code and severity",
		},
		[]string{"code", "severity"},
	)

	GatewayEscalationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mpesa",
			Subsystem: "c2b",
			Name:      "escalations_total",
			Help:      "Outcomes flagged for operator attention",
		},
		[]string{"code"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mpesa",
			Subsystem: "c2b",
			Name:      "request_duration_seconds",
			Help:      "Round trip time of the C2B single stage call",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(GatewayOutcomesTotal, GatewayEscalationsTotal, GatewayRequestDuration)
}

func IncOutcome(code, severity string) {
	GatewayOutcomesTotal.WithLabelValues(code, severity).Inc()
}

func IncEscalation(code string) {
	GatewayEscalationsTotal.WithLabelValues(code).Inc()
}

func ObserveDuration(result string, seconds float64) {
	GatewayRequestDuration.WithLabelValues(result).Observe(seconds)
}
