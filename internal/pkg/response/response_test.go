package response

import (
	"Orbit/internal/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext()
	Success(c, "posts", []string{"a"})

	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，得到 %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("响应不是合法 JSON: %v", err)
	}
	if body["success"] != true {
		t.Error("success 标志应为 true")
	}
	if _, ok := body["posts"]; !ok {
		t.Error("payload 应挂在 posts 键下")
	}
}

func TestErrorMappedStatus(t *testing.T) {
	c, w := newTestContext()
	Error(c, service.ErrPostNotFound)

	if w.Code != http.StatusNotFound {
		t.Errorf("期望 404，得到 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) {
		t.Errorf("失败响应应携带 success:false: %s", w.Body.String())
	}
}

func TestErrorUnknownFallsBack(t *testing.T) {
	c, w := newTestContext()
	Error(c, http.ErrBodyNotAllowed)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("未登记错误应回退 500，得到 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), service.UnExpectedError.Error()) {
		t.Errorf("兜底消息不符: %s", w.Body.String())
	}
}

func TestErrorUnmarshalType(t *testing.T) {
	c, w := newTestContext()
	Error(c, &json.UnmarshalTypeError{Value: "string", Field: "views"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("类型错误应返回 400，得到 %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), service.ErrParamInvalid.Error()) {
		t.Errorf("应返回参数错误提示: %s", w.Body.String())
	}
}
