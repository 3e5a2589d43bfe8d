package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "endpoint", "status", "service"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "service"},
	)

	// APIRequestsTotal 은 블로그 API 호출 수다. 응답을 받지 못하면 status 는 "error" 다.
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blog_api_requests_total",
			Help: "Total number of requests sent to the blog API",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "blog_api_request_duration_seconds",
			Help:    "Duration of blog API requests in seconds",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method"},
	)

	// ViewStatesTotal 은 렌더링된 화면 수를 최종 상태별로 센다.
	ViewStatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_states_total",
			Help: "Rendered views by final state",
		},
		[]string{"view", "state"},
	)
)
