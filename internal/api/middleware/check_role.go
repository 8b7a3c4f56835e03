package middleware

import (
	"Orbit/internal/pkg/response"
	"Orbit/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckRoles 检查当前用户角色是否在允许列表内
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		response.Fail(c, http.StatusForbidden, service.ErrForbidden.Error())
		c.Abort()
	}
}
