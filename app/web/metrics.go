package web

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umputun/jobwise/app/store"
)

// metrics keeps server's prometheus collectors in own registry
type metrics struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	mutations *prometheus.CounterVec
}

func newMetrics(jobs JobStore) *metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	m := &metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobwise_http_requests_total",
			Help: "Total number of http requests handled by the service.",
		}, []string{"method", "code"}),
		mutations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "jobwise_job_mutations_total",
			Help: "Total number of successful job changes.",
		}, []string{"op"}),
	}
	for _, status := range store.StatusValues {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Name:        "jobwise_jobs",
			Help:        "Number of tracked jobs by status.",
			ConstLabels: prometheus.Labels{"status": status.String()},
		}, func() float64 { return float64(len(jobs.ByStatus(status))) })
	}
	return m
}

// mutation counts a successful add, update or delete
func (m *metrics) mutation(op string) {
	m.mutations.WithLabelValues(op).Inc()
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// middleware counts requests by method and response code
func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		iw := &instrumentedWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(iw, r)
		m.requests.WithLabelValues(r.Method, strconv.Itoa(iw.statusCode)).Inc()
	})
}

type instrumentedWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *instrumentedWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Unwrap lets http.ResponseController reach the original writer
func (w *instrumentedWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
