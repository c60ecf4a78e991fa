// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the attendance and enrollment lifecycles.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestDuration observes request latency per route and status.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "daycare_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// CheckInsTotal counts successful attendance check-ins.
	CheckInsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daycare_check_ins_total",
		Help: "Number of successful attendance check-ins.",
	})

	// CheckOutsTotal counts successful attendance check-outs.
	CheckOutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "daycare_check_outs_total",
		Help: "Number of successful attendance check-outs.",
	})

	// CurrentlyPresent tracks open attendance records. It moves with the
	// check-in and check-out event stream, so a restart resets it until the
	// next lifecycle event; the dashboard count is the authoritative number.
	CurrentlyPresent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "daycare_currently_present",
		Help: "Children currently checked in.",
	})

	// EnrollmentsTotal counts enrollment changes by direction.
	EnrollmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daycare_enrollments_total",
			Help: "Number of enrollment changes by direction (enrolled, unenrolled).",
		},
		[]string{"direction"},
	)
)

// Handler returns the HTTP handler serving the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
