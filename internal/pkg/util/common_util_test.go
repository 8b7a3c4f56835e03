package util

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Go & Gin!  ", "go-gin"},
		{"already-slugged", "already-slugged"},
		{"Multiple   Spaces", "multiple-spaces"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) 期望 %q，得到 %q", c.in, c.want, got)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("golang"); got != "Golang" {
		t.Errorf("期望 Golang，得到 %s", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("空串应原样返回，得到 %q", got)
	}
}

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP(6)
	if len(otp) != 6 {
		t.Fatalf("期望 6 位，得到 %d 位", len(otp))
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			t.Errorf("OTP 应只含数字，得到 %q", otp)
		}
	}
}
