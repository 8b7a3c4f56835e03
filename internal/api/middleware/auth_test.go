package middleware

import (
	"Orbit/internal/model"
	"Orbit/internal/pkg/security"
	"Orbit/internal/service"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// fakeUserService 只回答 GetUserByID，其余方法走内嵌接口的空实现
type fakeUserService struct {
	service.UserService
	user *model.User
	err  error
}

func (f *fakeUserService) GetUserByID(_ context.Context, _ uint64) (*model.User, error) {
	return f.user, f.err
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	AuthMiddleware(&fakeUserService{})(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("缺少凭证应返回 401，得到 %d", w.Code)
	}
	if !c.IsAborted() {
		t.Error("请求应被中断")
	}
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Authorization", "Bearer not-a-jwt")

	AuthMiddleware(&fakeUserService{})(c)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("非法 Token 应返回 401，得到 %d", w.Code)
	}
}

func TestExtractSignature(t *testing.T) {
	if _, err := security.ExtractSignature("a.b"); err == nil {
		t.Error("两段式 Token 应被拒绝")
	}
	sig, err := security.ExtractSignature("header.payload.signature")
	if err != nil {
		t.Fatalf("三段式 Token 解析失败: %v", err)
	}
	if sig != "signature" {
		t.Errorf("期望 signature，得到 %s", sig)
	}
}
