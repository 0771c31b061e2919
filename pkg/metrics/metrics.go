package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardapio", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardapio", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	FoodsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "cardapio", Name: "foods_created_total", Help: "Number of food records persisted."},
	)
	StorageErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardapio", Name: "storage_errors_total", Help: "Number of failed repository calls by operation."},
		[]string{"op"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "cardapio", Name: "http_requests_total", Help: "Number of HTTP requests by route, method and status."},
		[]string{"route", "method", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: "cardapio", Name: "http_request_duration_seconds", Help: "HTTP request latency by route and method.", Buckets: prometheus.DefBuckets},
		[]string{"route", "method"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(FoodsCreated)
	reg.MustRegister(StorageErrors)
	reg.MustRegister(HTTPRequests)
	reg.MustRegister(HTTPRequestDuration)
}
