package security

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("哈希失败: %v", err)
	}
	if err = CheckPasswordHash("s3cret-pass", hash); err != nil {
		t.Errorf("正确密码校验不应失败: %v", err)
	}
	if err = CheckPasswordHash("wrong-pass", hash); err == nil {
		t.Error("错误密码应校验失败")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword(""); err == nil {
		t.Error("空密码应被拒绝")
	}
}

func TestHashPasswordRejectsOverlong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("a", maxPasswordBytes+1)); err == nil {
		t.Error("超长密码应被拒绝")
	}
}
