package middleware

import (
	"Orbit/internal/pkg/redis"
	"Orbit/internal/pkg/response"
	"Orbit/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimit 基于 Redis 计数器的简单限流，按客户端 IP 与路由维度计数
func RateLimit(limit int64, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := redis.IncrWithWindow(c.Request.Context(), key, window)
		if err != nil {
			// 限流器故障时放行，不拦截正常请求
			c.Next()
			return
		}
		if count > limit {
			response.Fail(c, http.StatusTooManyRequests, service.ErrTooManyRequests.Error())
			c.Abort()
			return
		}

		c.Next()
	}
}
