package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-web/cmd/web/dto"
)

// Pinger 는 블로그 API 의 상태를 확인한다.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 3 * time.Second

// HealthHandler 는 블로그 API 에 닿으면 200, 아니면 503 을 돌려준다.
func HealthHandler(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.HealthDTO{Status: "degraded", BlogAPI: "down", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok", BlogAPI: "up"})
	}
}
