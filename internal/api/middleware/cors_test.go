package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddlewarePreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodOptions, "/api/v1/login", nil)
	c.Request.Header.Set("Origin", "https://example.com")

	CORSMiddleware()(c)

	if w.Code != http.StatusNoContent {
		t.Errorf("预检请求应返回 204，实际 %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Errorf("Allow-Origin 应回写来源，实际 %q", got)
	}
	methods := w.Header().Get("Access-Control-Allow-Methods")
	if strings.Contains(methods, "UPDATE") {
		t.Errorf("Allow-Methods 不应包含非法方法: %q", methods)
	}
	for _, m := range []string{"GET", "POST", "PUT", "DELETE"} {
		if !strings.Contains(methods, m) {
			t.Errorf("Allow-Methods 缺少 %s: %q", m, methods)
		}
	}
}

func TestCORSMiddlewareSkipsWithoutOrigin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/get-all-posts", nil)

	CORSMiddleware()(c)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("无 Origin 请求不应设置跨域头，实际 %q", got)
	}
}
