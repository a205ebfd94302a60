package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "monblog"

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	LegalPageWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "legal_page_writes_total", Help: "Successful legal page writes by operation."},
		[]string{"op"},
	)
	LegalPageNotFound = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "legal_page_not_found_total", Help: "Legal page lookups that ended in not found, by audience."},
		[]string{"audience"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency by route.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route", "status"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(LegalPageWrites)
	reg.MustRegister(LegalPageNotFound)
	reg.MustRegister(HTTPRequestDuration)
}
