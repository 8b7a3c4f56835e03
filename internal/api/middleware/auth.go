package middleware

import (
	"Orbit/internal/pkg/redis"
	"Orbit/internal/pkg/response"
	"Orbit/internal/pkg/security"
	"Orbit/internal/service"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 验证 JWT 并从数据库重新解析用户，保证角色变更即时生效
func AuthMiddleware(userService service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, service.ErrUnauthenticated.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		value, err := redis.GetValue(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if value != "" {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			c.Abort()
			return
		}

		user, err := userService.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, service.ErrUnauthenticated.Error())
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("role", user.Role)
		c.Set("token", tokenString)

		newCtx := context.WithValue(c.Request.Context(), "user_id", user.ID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
