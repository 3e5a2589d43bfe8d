package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"blog-web/cmd/web/metrics"
)

// Prometheus 는 http_requests_total, http_request_duration_seconds 를 기록한다.
// endpoint 라벨은 라우트 패턴이라 /posts/:slug 는 하나의 시리즈가 된다.
func Prometheus(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status, serviceName).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, serviceName).
			Observe(time.Since(start).Seconds())
	}
}
